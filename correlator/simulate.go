// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package correlator

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// TrialsPerChunk is the number of trials a worker claims at a time
const TrialsPerChunk = 16

// Samples are the statistics of every trial, indexed by (trial, layer, statistic)
type Samples struct {
	Trials int
	Depth  int
	Width  int
	CW     float64
	G0     float64
	Data   []float64
}

// NewSamples allocates the sample collection of a run
func NewSamples(trials, depth, width int, cw, g0 float64) *Samples {
	return &Samples{
		Trials: trials,
		Depth:  depth,
		Width:  width,
		CW:     cw,
		G0:     g0,
		Data:   make([]float64, trials*depth*Statistics),
	}
}

func (s *Samples) offset(trial, layer int) int {
	return (trial*s.Depth + layer) * Statistics
}

// At returns one statistic of one trial, layer is zero based
func (s *Samples) At(trial, layer int, stat Statistic) float64 {
	return s.Data[s.offset(trial, layer)+int(stat)]
}

// Record returns the record of a trial at a zero based layer
func (s *Samples) Record(trial, layer int) MomentRecord {
	var record MomentRecord
	copy(record[:], s.Data[s.offset(trial, layer):])
	return record
}

// Trial returns the result of one trial
func (s *Samples) Trial(trial int) TrialResult {
	result := make(TrialResult, s.Depth)
	for layer := range result {
		result[layer] = s.Record(trial, layer)
	}
	return result
}

// Column returns a statistic at a zero based layer across all trials
func (s *Samples) Column(layer int, stat Statistic) []float64 {
	column := make([]float64, s.Trials)
	for trial := range column {
		column[trial] = s.At(trial, layer, stat)
	}
	return column
}

func (s *Samples) store(trial int, result TrialResult) {
	offset := s.offset(trial, 0)
	for layer, record := range result {
		copy(s.Data[offset+layer*Statistics:], record[:])
	}
}

// TrialSeed derives the seed of a trial from the run seed with splitmix64
func TrialSeed(seed int64, trial int) int64 {
	z := uint64(seed) + uint64(trial+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// RunTrial builds a fresh stack for a trial and propagates input through it
func RunTrial(cfg Config, input []float64, trial int) (TrialResult, error) {
	if err := validate(cfg, input); err != nil {
		return nil, err
	}
	result := make(TrialResult, cfg.Depth)
	if err := runTrial(cfg, input, trial, result); err != nil {
		return nil, err
	}
	return result, nil
}

func validate(cfg Config, input []float64) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(input) != cfg.Width {
		return errors.Wrapf(ErrInvalidConfiguration, "input length %d, expected %d", len(input), cfg.Width)
	}
	return nil
}

// runTrial writes the records of a trial into out, the configuration must be valid
func runTrial(cfg Config, input []float64, trial int, out TrialResult) error {
	rng := rand.New(rand.NewSource(TrialSeed(cfg.Seed, trial)))
	stack, err := BuildStack(rng, cfg.Depth, cfg.Width, cfg.CW)
	if err != nil {
		return errors.Wrapf(err, "trial %d", trial)
	}
	propagate(stack, input, cfg.Indices, out)
	return nil
}

// Workers is the number of goroutines a simulation of cfg uses, never more
// than the number of chunks of trials
func Workers(cfg Config) int {
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if chunks := (cfg.Trials + TrialsPerChunk - 1) / TrialsPerChunk; workers > chunks {
		workers = chunks
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// Simulate runs cfg.Trials independent trials across cfg.Workers goroutines.
// Every trial has its own random source so the samples only depend on the seed.
func Simulate(cfg Config, input []float64) (*Samples, error) {
	if err := validate(cfg, input); err != nil {
		return nil, err
	}
	samples := NewSamples(cfg.Trials, cfg.Depth, cfg.Width, cfg.CW, G0(input))

	workers := Workers(cfg)
	var (
		next  int
		first error
		mu    sync.Mutex
		wg    sync.WaitGroup
	)
	claim := func() (int, int) {
		mu.Lock()
		defer mu.Unlock()
		if first != nil {
			return 0, 0
		}
		start := next
		next += TrialsPerChunk
		if next > cfg.Trials {
			next = cfg.Trials
		}
		return start, next
	}
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if first == nil {
			first = err
		}
	}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			out := make(TrialResult, cfg.Depth)
			for {
				start, end := claim()
				if start >= end {
					return
				}
				for trial := start; trial < end; trial++ {
					if err := runTrial(cfg, input, trial, out); err != nil {
						fail(err)
						return
					}
					samples.store(trial, out)
				}
			}
		}()
	}
	wg.Wait()
	if first != nil {
		return nil, first
	}
	return samples, nil
}
