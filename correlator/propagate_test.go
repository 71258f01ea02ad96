// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package correlator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func scaled(width int, factor float64) Layer {
	w := mat.NewDense(width, width, nil)
	for i := 0; i < width; i++ {
		w.Set(i, i, factor)
	}
	return Layer{W: w}
}

func TestPropagateDiagonal(t *testing.T) {
	input := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	stack := Stack{scaled(10, 2), scaled(10, 3)}
	result, err := Propagate(stack, input, DefaultIndices())
	if err != nil {
		t.Fatalf("Propagate failed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 records, got %d", len(result))
	}

	for layer, factor := range []float64{2, 6} {
		z := make([]float64, len(input))
		for i, x := range input {
			z[i] = factor * x
		}
		if want := Record(z, DefaultIndices()); result[layer] != want {
			t.Errorf("layer %d: got %v, want %v", layer+1, result[layer], want)
		}
	}
	if input[1] != 1 {
		t.Error("Propagate modified the input")
	}
}

func TestPropagateMatchesMatVec(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	stack, err := BuildStack(rng, 3, 10, 1)
	if err != nil {
		t.Fatalf("BuildStack failed: %v", err)
	}
	input := UniformInput(rng, 10, InputScale)
	result, err := Propagate(stack, input, DefaultIndices())
	if err != nil {
		t.Fatalf("Propagate failed: %v", err)
	}

	z := append([]float64(nil), input...)
	for layer := range stack {
		next := make([]float64, len(z))
		for i := range next {
			for j := range z {
				next[i] += stack[layer].W.At(i, j) * z[j]
			}
		}
		z = next
		want := Record(z, DefaultIndices())
		for s := range want {
			if math.Abs(want[s]-result[layer][s]) > 1e-9*(1+math.Abs(want[s])) {
				t.Errorf("layer %d %s: got %g, want %g", layer+1, Statistic(s), result[layer][s], want[s])
			}
		}
	}
}

func TestPropagateErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	stack, _ := BuildStack(rng, 2, 10, 1)

	if _, err := Propagate(stack, make([]float64, 9), DefaultIndices()); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("short input: expected ErrInvalidConfiguration, got %v", err)
	}

	narrow, _ := BuildStack(rng, 2, 5, 1)
	if _, err := Propagate(narrow, make([]float64, 5), DefaultIndices()); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("narrow stack: expected ErrIndexOutOfRange, got %v", err)
	}

	mixed := Stack{scaled(10, 1), scaled(8, 1)}
	if _, err := Propagate(mixed, make([]float64, 10), DefaultIndices()); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("mixed widths: expected ErrInvalidConfiguration, got %v", err)
	}

	tall := Stack{{W: mat.NewDense(8, 10, nil)}}
	if _, err := Propagate(tall, make([]float64, 10), DefaultIndices()); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("non square layer: expected ErrInvalidConfiguration, got %v", err)
	}

	missing := Stack{scaled(10, 1), {}}
	if _, err := Propagate(missing, make([]float64, 10), DefaultIndices()); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("layer without weights: expected ErrInvalidConfiguration, got %v", err)
	}

	if _, err := Propagate(nil, nil, DefaultIndices()); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("empty stack: expected ErrInvalidConfiguration, got %v", err)
	}
}
