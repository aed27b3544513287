package config

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/prebid/adx-fixtures/adx/adxtest"
	"github.com/prebid/adx-fixtures/adx/crypto"
	"github.com/prebid/adx-fixtures/errortypes"
	"github.com/spf13/viper"
)

// Configuration drives the fixture dump command.
type Configuration struct {
	OutputDir    string `mapstructure:"output_dir"`
	Shapes       []int  `mapstructure:"shapes"`
	Coppa        bool   `mapstructure:"coppa"`
	AttachMobile bool   `mapstructure:"attach_mobile"`
	AttachVideo  bool   `mapstructure:"attach_video"`
	Keys         Keys   `mapstructure:"keys"`
}

// Keys is the hyperlocal key material in web-safe base64.
type Keys struct {
	Encryption string `mapstructure:"encryption"`
	Integrity  string `mapstructure:"integrity"`
}

// Parse decodes the configured keys.
func (k Keys) Parse() (*crypto.Keys, error) {
	return crypto.KeysFromWebSafeBase64(k.Encryption, k.Integrity)
}

// SetupViper registers defaults, the config file name and the environment binding on v.
// An empty filename skips config file lookup.
func SetupViper(v *viper.Viper, filename string) {
	if filename != "" {
		v.SetConfigName(filename)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/config")
	}

	v.SetDefault("output_dir", "testdata")
	v.SetDefault("shapes", []int{adxtest.NoSlot, 0, 1, 2, 3, 4, 5})
	v.SetDefault("coppa", false)
	v.SetDefault("attach_mobile", false)
	v.SetDefault("attach_video", false)
	v.SetDefault("keys.encryption", adxtest.TestEncryptionKey)
	v.SetDefault("keys.integrity", adxtest.TestIntegrityKey)

	v.SetEnvPrefix("ADXFIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if filename != "" {
		if err := v.ReadInConfig(); err != nil {
			glog.Warningf("Unable to read %s config file, using defaults and environment: %v", filename, err)
		}
	}
}

// New uses viper to get the fixture configuration. Warnings found during validation are logged
// and their cause corrected; any other problem is returned in an AggregateErrors.
func New(v *viper.Viper) (*Configuration, error) {
	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("viper failed to unmarshal app config: %v", err)
	}

	errs := c.validate(nil)
	for _, warning := range errortypes.WarningOnly(errs) {
		glog.Warning(warning.Error())
	}
	if fatal := errortypes.FatalOnly(errs); len(fatal) > 0 {
		return &c, errortypes.NewAggregateErrors("validation errors", fatal)
	}
	return &c, nil
}

func (c *Configuration) validate(errs []error) []error {
	if c.OutputDir == "" {
		errs = append(errs, fmt.Errorf("output_dir must not be empty"))
	}
	if len(c.Shapes) == 0 {
		errs = append(errs, fmt.Errorf("shapes must list at least one shape"))
	}

	seen := make(map[int]bool, len(c.Shapes))
	unique := c.Shapes[:0]
	for _, shape := range c.Shapes {
		if shape < adxtest.NoSlot {
			errs = append(errs, fmt.Errorf("shapes: %d is invalid, shapes start at %d", shape, adxtest.NoSlot))
			continue
		}
		if seen[shape] {
			errs = append(errs, &errortypes.Warning{
				Message:     fmt.Sprintf("shapes: %d is listed more than once, it will be generated once", shape),
				WarningCode: errortypes.DuplicateShapeWarningCode,
			})
			continue
		}
		seen[shape] = true
		unique = append(unique, shape)
	}
	c.Shapes = unique

	if _, err := c.Keys.Parse(); err != nil {
		errs = append(errs, fmt.Errorf("keys: %v", err))
	}
	return errs
}
