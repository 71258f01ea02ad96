// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package correlator

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/pointlander/datum/iris"
)

// UniformInput draws a model input with entries uniform in [0, scale)
func UniformInput(rng *rand.Rand, width int, scale float64) []float64 {
	input := make([]float64, width)
	for i := range input {
		input[i] = scale * rng.Float64()
	}
	return input
}

// IrisInput fills a model input with the unit length measurements of the
// iris flowers in data set order
func IrisInput(width int) ([]float64, error) {
	if width < 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "width %d", width)
	}
	data, err := iris.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load iris")
	}
	input := make([]float64, 0, width)
	for _, flower := range data.Fisher {
		sum := 0.0
		for _, v := range flower.Measures {
			sum += v * v
		}
		length := math.Sqrt(sum)
		for _, v := range flower.Measures {
			if len(input) == width {
				return input, nil
			}
			input = append(input, v/length)
		}
	}
	if len(input) < width {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "width %d exceeds the iris measurements", width)
	}
	return input, nil
}
