// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package correlator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestPlots(t *testing.T) {
	samples, err := Simulate(small(128, 3, 10), ones(10))
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	dir := t.TempDir()

	depth := filepath.Join(dir, "depth.png")
	if err := PlotDepth(samples, TwoPairs, depth); err != nil {
		t.Fatalf("PlotDepth failed: %v", err)
	}
	histogram := filepath.Join(dir, "histogram.png")
	if err := PlotHistogram(samples, 2, SamePair, histogram); err != nil {
		t.Fatalf("PlotHistogram failed: %v", err)
	}
	for _, path := range []string{depth, histogram} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("plot was not written: %v", err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}

	if err := PlotHistogram(samples, 4, SamePair, histogram); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}
