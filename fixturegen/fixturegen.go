// Package fixturegen writes the adxtest fixtures to disk as indented JSON, so adapter tests in
// other repos can load them as golden files.
package fixturegen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang/glog"
	"github.com/prebid/adx-fixtures/adx/adxtest"
	"github.com/prebid/adx-fixtures/adx/crypto"
	"github.com/prebid/adx-fixtures/config"
	"github.com/prebid/adx-fixtures/errortypes"
)

// Fixture is one generated value and the file name it is written under.
type Fixture struct {
	Name  string
	Value interface{}
}

// Generate builds a request fixture per configured shape, followed by both bid fixtures.
func Generate(cfg *config.Configuration) ([]Fixture, error) {
	keys, err := cfg.Keys.Parse()
	if err != nil {
		return nil, err
	}
	opts := []adxtest.RequestOption{adxtest.WithHyperlocalEncrypter(crypto.NewHyperlocal(keys))}
	if cfg.AttachMobile {
		opts = append(opts, adxtest.WithMobile())
	}
	if cfg.AttachVideo {
		opts = append(opts, adxtest.WithVideo())
	}

	fixtures := make([]Fixture, 0, len(cfg.Shapes)+2)
	for _, shape := range cfg.Shapes {
		req, err := adxtest.NewRequest(shape, cfg.Coppa, opts...)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", shape, err)
		}
		fixtures = append(fixtures, Fixture{Name: RequestFileName(shape, cfg.Coppa), Value: req})
	}
	fixtures = append(fixtures,
		Fixture{Name: "bid.json", Value: adxtest.NewBid(false)},
		Fixture{Name: "bid_size_deal.json", Value: adxtest.NewBid(true)})
	return fixtures, nil
}

// RequestFileName names the request fixture for shape, e.g. request_3.json, request_noslot.json
// or request_2_coppa.json.
func RequestFileName(shape int, coppa bool) string {
	name := "request_" + strconv.Itoa(shape)
	if shape == adxtest.NoSlot {
		name = "request_noslot"
	}
	if coppa {
		name += "_coppa"
	}
	return name + ".json"
}

// Write stores each fixture in dir, creating dir if needed.
func Write(dir string, fixtures []Fixture) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &errortypes.FailedToWrite{Message: fmt.Sprintf("create output dir: %v", err)}
	}
	for _, fixture := range fixtures {
		data, err := json.MarshalIndent(fixture.Value, "", "  ")
		if err != nil {
			return &errortypes.FailedToMarshal{Message: fmt.Sprintf("%s: %v", fixture.Name, err)}
		}
		path := filepath.Join(dir, fixture.Name)
		if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
			return &errortypes.FailedToWrite{Message: fmt.Sprintf("%s: %v", fixture.Name, err)}
		}
		glog.Infof("Wrote fixture %s (%d bytes)", path, len(data)+1)
	}
	return nil
}
