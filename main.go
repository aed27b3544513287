package main

import (
	"flag"

	"github.com/prebid/adx-fixtures/config"
	"github.com/prebid/adx-fixtures/fixturegen"

	"github.com/golang/glog"
	"github.com/spf13/viper"
)

// Rev holds binary revision string, set at build time with -ldflags "-X main.Rev=..."
var Rev string

func main() {
	flag.Parse() // required for glog flags and testing package flags
	defer glog.Flush()

	cfg, err := loadConfig()
	if err != nil {
		glog.Exitf("Configuration could not be loaded or did not pass validation: %v", err)
	}

	if err := run(cfg); err != nil {
		glog.Exitf("adx-fixtures failed: %v", err)
	}
}

const configFileName = "adxfixtures"

func loadConfig() (*config.Configuration, error) {
	v := viper.New()
	config.SetupViper(v, configFileName)
	return config.New(v)
}

func run(cfg *config.Configuration) error {
	glog.Infof("adx-fixtures %s: generating %d request shapes into %s", Rev, len(cfg.Shapes), cfg.OutputDir)
	fixtures, err := fixturegen.Generate(cfg)
	if err != nil {
		return err
	}
	return fixturegen.Write(cfg.OutputDir, fixtures)
}
