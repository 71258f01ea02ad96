// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mark3

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"text/tabwriter"

	. "github.com/pointlander/correlators/correlator"
)

// Shape is the input independent part of the last layer statistics
type Shape struct {
	Input string
	G0    float64
	// Ratio is E[z1122] / E[z11]^2
	Ratio float64
}

// Measure simulates cfg with input and returns the shape of the last layer
func Measure(cfg Config, name string, input []float64) (Shape, error) {
	samples, err := Simulate(cfg, input)
	if err != nil {
		return Shape{}, err
	}
	comparisons, err := Summarize(samples, samples.Depth)
	if err != nil {
		return Shape{}, err
	}
	same := comparisons[SamePair].Observed
	return Shape{
		Input: name,
		G0:    samples.G0,
		Ratio: comparisons[TwoPairs].Observed / (same * same),
	}, nil
}

// Mark3 shows that the shape of the output distribution does not depend on the input
func Mark3(cfg Config, logger *slog.Logger, out io.Writer) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	uniform := UniformInput(rng, cfg.Width, cfg.InputScale)
	flowers, err := IrisInput(cfg.Width)
	if err != nil {
		return err
	}

	inputs := []struct {
		name  string
		input []float64
	}{
		{"uniform", uniform},
		{"iris", flowers},
	}
	shapes := make([]Shape, 0, len(inputs))
	for _, in := range inputs {
		shape, err := Measure(cfg, in.name, in.input)
		if err != nil {
			return err
		}
		logger.Info("measured", "input", shape.Input, "g0", shape.G0, "ratio", shape.Ratio)
		shapes = append(shapes, shape)
	}

	expected := math.Pow(1+2/float64(cfg.Width), float64(cfg.Depth-1))
	tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "input\tg0\tz1122/z11^2\texpected\n")
	for _, shape := range shapes {
		fmt.Fprintf(tw, "%s\t%.5f\t%.5f\t%.5f\n", shape.Input, shape.G0, shape.Ratio, expected)
	}
	return tw.Flush()
}
