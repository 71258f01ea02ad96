// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mark3

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"testing"

	. "github.com/pointlander/correlators/correlator"
)

func TestMeasureDoesNotDependOnInput(t *testing.T) {
	if testing.Short() {
		t.Skip("long monte carlo run")
	}
	cfg := Default()
	cfg.Trials = 50000
	cfg.Depth = 2

	uniform := UniformInput(rand.New(rand.NewSource(5)), cfg.Width, InputScale)
	flowers, err := IrisInput(cfg.Width)
	if err != nil {
		t.Fatalf("IrisInput failed: %v", err)
	}
	a, err := Measure(cfg, "uniform", uniform)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	b, err := Measure(cfg, "iris", flowers)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if a.G0 == b.G0 {
		t.Fatal("inputs have the same g0")
	}

	expected := 1 + 2/float64(cfg.Width)
	for _, shape := range []Shape{a, b} {
		if math.Abs(shape.Ratio-expected)/expected > 0.1 {
			t.Errorf("%s: ratio %g, expected %g", shape.Input, shape.Ratio, expected)
		}
	}
	if math.Abs(a.Ratio-b.Ratio)/expected > 0.15 {
		t.Errorf("ratios differ: %g and %g", a.Ratio, b.Ratio)
	}
}

func TestMark3(t *testing.T) {
	cfg := Default()
	cfg.Trials = 256
	cfg.Depth = 2
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := Mark3(cfg, logger, &out); err != nil {
		t.Fatalf("Mark3 failed: %v", err)
	}
	for _, want := range []string{"uniform", "iris", "expected"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report is missing %q:\n%s", want, out.String())
		}
	}
}
