// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package correlator

import (
	"github.com/pkg/errors"
)

// Statistic is one of the recorded monomials of a preactivation vector
type Statistic int

const (
	// SamePair is z_i z_i
	SamePair Statistic = iota
	// DiffPair is z_i z_j
	DiffPair
	// FourDistinct is z_i z_j z_k z_l
	FourDistinct
	// ThreeDistinctOneRepeated is z_i z_i z_j z_k
	ThreeDistinctOneRepeated
	// TwoPairs is z_i z_i z_j z_j
	TwoPairs
)

// Statistics is the number of recorded statistics
const Statistics = 5

var names = [Statistics]string{"z11", "z12", "z1234", "z1123", "z1122"}

// String returns the short correlator name
func (s Statistic) String() string {
	if s < 0 || int(s) >= Statistics {
		return "unknown"
	}
	return names[s]
}

// AllStatistics lists the statistics in record order
func AllStatistics() []Statistic {
	return []Statistic{SamePair, DiffPair, FourDistinct, ThreeDistinctOneRepeated, TwoPairs}
}

// Indices are the coordinates each statistic reads. In Repeated the first
// index is the squared one.
type Indices struct {
	SamePair     []int `yaml:"same_pair"`
	DiffPair     []int `yaml:"diff_pair"`
	FourDistinct []int `yaml:"four_distinct"`
	Repeated     []int `yaml:"three_distinct_one_repeated"`
	TwoPairs     []int `yaml:"two_pairs"`
}

// DefaultIndices are the coordinates of the reference experiment. Coordinates
// are distinct within a statistic but shared across statistics, so that every
// index stays below 8.
func DefaultIndices() Indices {
	return Indices{
		SamePair:     []int{1},
		DiffPair:     []int{2, 3},
		FourDistinct: []int{4, 5, 6, 7},
		Repeated:     []int{1, 2, 3},
		TwoPairs:     []int{4, 5},
	}
}

// Max returns the largest coordinate used
func (i Indices) Max() int {
	max := -1
	for _, set := range [][]int{i.SamePair, i.DiffPair, i.FourDistinct, i.Repeated, i.TwoPairs} {
		for _, index := range set {
			if index > max {
				max = index
			}
		}
	}
	return max
}

// Validate checks the arity of every statistic, that the coordinates of a
// statistic are distinct and that all of them are below width
func (i Indices) Validate(width int) error {
	sets := []struct {
		stat    Statistic
		indices []int
		arity   int
	}{
		{SamePair, i.SamePair, 1},
		{DiffPair, i.DiffPair, 2},
		{FourDistinct, i.FourDistinct, 4},
		{ThreeDistinctOneRepeated, i.Repeated, 3},
		{TwoPairs, i.TwoPairs, 2},
	}
	for _, set := range sets {
		if len(set.indices) != set.arity {
			return errors.Wrapf(ErrInvalidConfiguration, "%s needs %d indices, got %d",
				set.stat, set.arity, len(set.indices))
		}
		seen := make(map[int]bool, set.arity)
		for _, index := range set.indices {
			if index < 0 || index >= width {
				return errors.Wrapf(ErrIndexOutOfRange, "%s index %d with width %d",
					set.stat, index, width)
			}
			if seen[index] {
				return errors.Wrapf(ErrInvalidConfiguration, "%s repeats index %d", set.stat, index)
			}
			seen[index] = true
		}
	}
	return nil
}

// MomentRecord is the statistics of one layer output
type MomentRecord [Statistics]float64

// TrialResult is a moment record per layer, first layer first
type TrialResult []MomentRecord

// Record computes the monomials of z. The indices must have been validated.
func Record(z []float64, i Indices) MomentRecord {
	var record MomentRecord
	record.fill(z, i)
	return record
}

func (r *MomentRecord) fill(z []float64, i Indices) {
	a := z[i.SamePair[0]]
	r[SamePair] = a * a
	r[DiffPair] = z[i.DiffPair[0]] * z[i.DiffPair[1]]
	r[FourDistinct] = z[i.FourDistinct[0]] * z[i.FourDistinct[1]] *
		z[i.FourDistinct[2]] * z[i.FourDistinct[3]]
	b := z[i.Repeated[0]]
	r[ThreeDistinctOneRepeated] = b * b * z[i.Repeated[1]] * z[i.Repeated[2]]
	c, d := z[i.TwoPairs[0]], z[i.TwoPairs[1]]
	r[TwoPairs] = c * c * d * d
}
