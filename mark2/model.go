// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mark2

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"path/filepath"
	"time"

	. "github.com/pointlander/correlators/correlator"
)

// Mark2 compares every layer of the network against the deep linear closed forms
func Mark2(cfg Config, logger *slog.Logger, out io.Writer, dir string) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	input := UniformInput(rng, cfg.Width, cfg.InputScale)

	start := time.Now()
	samples, err := Simulate(cfg, input)
	if err != nil {
		return err
	}
	logger.Info("simulated", "depth", cfg.Depth, "trials", cfg.Trials, "elapsed", time.Since(start))

	for layer := 1; layer <= samples.Depth; layer++ {
		comparisons, err := Summarize(samples, layer)
		if err != nil {
			return err
		}
		if err := Format(out, layer, comparisons); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	for _, s := range []Statistic{SamePair, TwoPairs} {
		path := filepath.Join(dir, "depth_"+s.String()+".png")
		if err := PlotDepth(samples, s, path); err != nil {
			return err
		}
		logger.Debug("saved plot", "path", path)
	}
	return nil
}
