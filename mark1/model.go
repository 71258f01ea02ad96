// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mark1

import (
	"io"
	"log/slog"
	"math/rand"
	"path/filepath"
	"time"

	. "github.com/pointlander/correlators/correlator"
)

// Mark1 checks the layer 1 correlators against their closed forms
func Mark1(cfg Config, logger *slog.Logger, out io.Writer, dir string) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	input := UniformInput(rng, cfg.Width, cfg.InputScale)

	logger.Info("simulating",
		"depth", cfg.Depth, "width", cfg.Width, "c_w", cfg.CW, "trials", cfg.Trials, "seed", cfg.Seed)
	start := time.Now()
	samples, err := Simulate(cfg, input)
	if err != nil {
		return err
	}
	logger.Info("simulated", "g0", samples.G0, "elapsed", time.Since(start))

	comparisons, err := Summarize(samples, 1)
	if err != nil {
		return err
	}
	if err := Format(out, 1, comparisons); err != nil {
		return err
	}

	for _, s := range []Statistic{SamePair, TwoPairs} {
		path := filepath.Join(dir, "layer1_"+s.String()+".png")
		if err := PlotHistogram(samples, 1, s, path); err != nil {
			return err
		}
		logger.Debug("saved histogram", "path", path)
	}
	return nil
}
