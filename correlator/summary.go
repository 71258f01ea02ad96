// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package correlator

import (
	"math"

	"github.com/pkg/errors"
	"github.com/ziutek/blas"
	"gonum.org/v1/gonum/stat"
)

// G0 is the mean squared entry of the model input
func G0(input []float64) float64 {
	if len(input) == 0 {
		return 0
	}
	return blas.Ddot(len(input), input, 1, input, 1) / float64(len(input))
}

// Expected is the closed form of each statistic at a one based layer of a deep
// linear network. Given the previous layer, the outputs of a layer are
// independent Gaussians with variance cw*|z|^2/width, which gives
// E[z1 z1] = cw^l g0 and E[z1 z1 z2 z2] = cw^2l g0^2 (1 + 2/width)^(l-1).
// The odd and distinct correlators vanish.
func Expected(layer, width int, cw, g0 float64) MomentRecord {
	var record MomentRecord
	l := float64(layer)
	record[SamePair] = math.Pow(cw, l) * g0
	record[TwoPairs] = math.Pow(cw, 2*l) * g0 * g0 * math.Pow(1+2/float64(width), l-1)
	return record
}

// Comparison is the observed mean of a statistic against its closed form
type Comparison struct {
	Statistic Statistic
	Expected  float64
	Observed  float64
	StdErr    float64
}

// Summarize averages every statistic across trials at a one based layer
func Summarize(samples *Samples, layer int) ([]Comparison, error) {
	if layer < 1 || layer > samples.Depth {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "layer %d of %d", layer, samples.Depth)
	}
	expected := Expected(layer, samples.Width, samples.CW, samples.G0)
	comparisons := make([]Comparison, 0, Statistics)
	for _, s := range AllStatistics() {
		column := samples.Column(layer-1, s)
		mean, stddev := stat.MeanStdDev(column, nil)
		stderr := 0.0
		if len(column) > 1 {
			stderr = stddev / math.Sqrt(float64(len(column)))
		}
		comparisons = append(comparisons, Comparison{
			Statistic: s,
			Expected:  expected[s],
			Observed:  mean,
			StdErr:    stderr,
		})
	}
	return comparisons, nil
}
