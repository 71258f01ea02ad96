// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package correlator

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// Depth is the reference number of layers
	Depth = 10
	// Width is the reference layer width
	Width = 10
	// CW is the reference weight variance
	CW = 1.0
	// Trials is the reference number of trials
	Trials = 5000
	// InputScale is the reference scale of the uniform model input
	InputScale = 3.0
)

// Config is the configuration of a simulation
type Config struct {
	Depth      int     `yaml:"depth"`
	Width      int     `yaml:"width"`
	CW         float64 `yaml:"c_w"`
	Trials     int     `yaml:"trials"`
	Seed       int64   `yaml:"seed"`
	Workers    int     `yaml:"workers"` // 0 means one per CPU
	InputScale float64 `yaml:"input_scale"`
	Indices    Indices `yaml:"indices"`
}

// Default returns the reference configuration
func Default() Config {
	return Config{
		Depth:      Depth,
		Width:      Width,
		CW:         CW,
		Trials:     Trials,
		Seed:       1,
		InputScale: InputScale,
		Indices:    DefaultIndices(),
	}
}

// Load reads a yaml configuration, fields missing from the file keep their defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to parse config")
	}
	return cfg, cfg.Validate()
}

// Validate checks the sizes, the weight variance and the statistic indices
func (c Config) Validate() error {
	switch {
	case c.Depth < 1:
		return errors.Wrapf(ErrInvalidConfiguration, "depth %d", c.Depth)
	case c.Width < 1:
		return errors.Wrapf(ErrInvalidConfiguration, "width %d", c.Width)
	case !(c.CW > 0) || math.IsInf(c.CW, 1):
		return errors.Wrapf(ErrInvalidConfiguration, "c_w %g", c.CW)
	case c.Trials < 1:
		return errors.Wrapf(ErrInvalidConfiguration, "trials %d", c.Trials)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "workers %d", c.Workers)
	}
	return c.Indices.Validate(c.Width)
}
