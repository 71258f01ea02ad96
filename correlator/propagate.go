// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package correlator

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Propagate runs input through the stack and records the statistics of every layer output
func Propagate(stack Stack, input []float64, indices Indices) (TrialResult, error) {
	if err := check(stack, input, indices); err != nil {
		return nil, err
	}
	result := make(TrialResult, stack.Depth())
	propagate(stack, input, indices, result)
	return result, nil
}

func check(stack Stack, input []float64, indices Indices) error {
	width := stack.Width()
	if width == 0 {
		return errors.Wrap(ErrInvalidConfiguration, "empty stack")
	}
	for i, layer := range stack {
		if layer.W == nil {
			return errors.Wrapf(ErrInvalidConfiguration, "layer %d has no weights", i+1)
		}
		if r, c := layer.W.Dims(); r != width || c != width {
			return errors.Wrapf(ErrInvalidConfiguration, "layer %d is %dx%d, expected %dx%d", i+1, r, c, width, width)
		}
	}
	if len(input) != width {
		return errors.Wrapf(ErrInvalidConfiguration, "input length %d, expected %d", len(input), width)
	}
	return indices.Validate(width)
}

// propagate writes one record per layer into out, which must have the stack depth
func propagate(stack Stack, input []float64, indices Indices, out []MomentRecord) {
	width := stack.Width()
	z := mat.NewVecDense(width, append([]float64(nil), input...))
	next := mat.NewVecDense(width, nil)
	for i, layer := range stack {
		next.MulVec(layer.W, z)
		z, next = next, z
		out[i].fill(z.RawVector().Data, indices)
	}
}
