// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/pointlander/correlators/correlator"
	"github.com/pointlander/correlators/mark1"
	"github.com/pointlander/correlators/mark2"
	"github.com/pointlander/correlators/mark3"
)

var (
	// FlagMark1 is the layer 1 check
	FlagMark1 = flag.Bool("mark1", false, "mark1 layer 1 correlators")
	// FlagMark2 is the depth sweep
	FlagMark2 = flag.Bool("mark2", false, "mark2 correlators of every layer")
	// FlagMark3 is the input independence check
	FlagMark3 = flag.Bool("mark3", false, "mark3 input independence")
	// FlagConfig is a yaml configuration file
	FlagConfig = flag.String("config", "", "yaml configuration file")
	// FlagDepth is the number of layers
	FlagDepth = flag.Int("depth", correlator.Depth, "number of layers")
	// FlagWidth is the width of the layers
	FlagWidth = flag.Int("width", correlator.Width, "width of the layers")
	// FlagCW is the weight variance
	FlagCW = flag.Float64("cw", correlator.CW, "weight variance C_W")
	// FlagTrials is the number of trials
	FlagTrials = flag.Int("trials", correlator.Trials, "number of trials")
	// FlagSeed is the random seed
	FlagSeed = flag.Int64("seed", 1, "random seed")
	// FlagWorkers is the number of workers
	FlagWorkers = flag.Int("workers", 0, "number of workers, 0 for one per cpu")
	// FlagDir is where plots are written
	FlagDir = flag.String("dir", ".", "output directory for plots")
	// FlagLevel is the log level
	FlagLevel = flag.String("level", "info", "log level: debug or info")
)

// NewLogger creates a leveled logger writing to stderr
func NewLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	if strings.EqualFold(level, "debug") {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// Configure loads the configuration file and applies the flags set on the command line
func Configure() (correlator.Config, error) {
	cfg := correlator.Default()
	if *FlagConfig != "" {
		var err error
		cfg, err = correlator.Load(*FlagConfig)
		if err != nil {
			return cfg, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "depth":
			cfg.Depth = *FlagDepth
		case "width":
			cfg.Width = *FlagWidth
		case "cw":
			cfg.CW = *FlagCW
		case "trials":
			cfg.Trials = *FlagTrials
		case "seed":
			cfg.Seed = *FlagSeed
		case "workers":
			cfg.Workers = *FlagWorkers
		}
	})
	return cfg, cfg.Validate()
}

func main() {
	flag.Parse()
	logger := NewLogger(*FlagLevel)

	cfg, err := Configure()
	if err != nil {
		logger.Error("bad configuration", "err", err)
		os.Exit(1)
	}

	switch {
	case *FlagMark1:
		err = mark1.Mark1(cfg, logger, os.Stdout, *FlagDir)
	case *FlagMark2:
		err = mark2.Mark2(cfg, logger, os.Stdout, *FlagDir)
	case *FlagMark3:
		err = mark3.Mark3(cfg, logger, os.Stdout)
	default:
		flag.Usage()
		return
	}
	if err != nil {
		logger.Error("experiment failed", "err", err)
		os.Exit(1)
	}
}
