// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package correlator estimates the correlators of deep linear networks at initialization
package correlator

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/pointlander/matrix"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Layer is a linear layer without bias
type Layer struct {
	W *mat.Dense
}

// NewLayer samples a width by width layer with weights drawn from N(0, cw/width)
func NewLayer(rng *rand.Rand, width int, cw float64) Layer {
	stddev := float32(math.Sqrt(cw / float64(width)))
	random := matrix.NewRandomMatrix(width, width)
	for i := range random.Data {
		random.Data[i] = matrix.Random{
			Mean:   0,
			StdDev: stddev,
		}
	}
	sample := random.Sample(rng)
	data := make([]float64, width*width)
	for i, value := range sample.Data {
		data[i] = float64(value)
	}
	return Layer{
		W: mat.NewDense(width, width, data),
	}
}

// Width is the width of the layer
func (l Layer) Width() int {
	if l.W == nil {
		return 0
	}
	_, c := l.W.Dims()
	return c
}

// Moments returns the sample mean and variance of the weights
func (l Layer) Moments() (mean, variance float64) {
	return stat.MeanVariance(l.W.RawMatrix().Data, nil)
}

// Stack is a deep linear network
type Stack []Layer

// BuildStack samples depth fresh layers
func BuildStack(rng *rand.Rand, depth, width int, cw float64) (Stack, error) {
	if depth < 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "depth %d", depth)
	}
	if width < 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "width %d", width)
	}
	if !(cw > 0) || math.IsInf(cw, 1) {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "c_w %g", cw)
	}
	stack := make(Stack, depth)
	for i := range stack {
		stack[i] = NewLayer(rng, width, cw)
	}
	return stack, nil
}

// Depth is the number of layers
func (s Stack) Depth() int {
	return len(s)
}

// Width is the width of the layers
func (s Stack) Width() int {
	if len(s) == 0 {
		return 0
	}
	return s[0].Width()
}
