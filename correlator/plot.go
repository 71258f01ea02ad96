// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package correlator

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Bins is the number of histogram bins
const Bins = 256

var (
	observedColor = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 255}
	expectedColor = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 255}
)

// PlotDepth plots the observed and expected mean of a statistic against the layer
func PlotDepth(samples *Samples, s Statistic, path string) error {
	observed := make(plotter.XYs, samples.Depth)
	expected := make(plotter.XYs, samples.Depth)
	for layer := 0; layer < samples.Depth; layer++ {
		x := float64(layer + 1)
		observed[layer] = plotter.XY{X: x, Y: stat.Mean(samples.Column(layer, s), nil)}
		expected[layer] = plotter.XY{X: x, Y: Expected(layer+1, samples.Width, samples.CW, samples.G0)[s]}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s, width %d, %d trials", s, samples.Width, samples.Trials)
	p.X.Label.Text = "layer"
	p.Y.Label.Text = "mean"
	p.Legend.Top = true

	line, err := plotter.NewLine(expected)
	if err != nil {
		return errors.Wrap(err, "failed to plot expected")
	}
	line.LineStyle.Color = expectedColor
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	scatter, err := plotter.NewScatter(observed)
	if err != nil {
		return errors.Wrap(err, "failed to plot observed")
	}
	scatter.GlyphStyle.Radius = vg.Length(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Color = observedColor
	p.Add(line, scatter)
	p.Legend.Add("expected", line)
	p.Legend.Add("observed", scatter)

	return errors.Wrapf(p.Save(8*vg.Inch, 8*vg.Inch, path), "failed to save %s", path)
}

// PlotHistogram plots the distribution of a statistic over the trials at a one based layer
func PlotHistogram(samples *Samples, layer int, s Statistic, path string) error {
	if layer < 1 || layer > samples.Depth {
		return errors.Wrapf(ErrIndexOutOfRange, "layer %d of %d", layer, samples.Depth)
	}
	values := plotter.Values(samples.Column(layer-1, s))

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s distribution at layer %d", s, layer)
	histogram, err := plotter.NewHist(values, Bins)
	if err != nil {
		return errors.Wrap(err, "failed to build histogram")
	}
	p.Add(histogram)

	return errors.Wrapf(p.Save(8*vg.Inch, 8*vg.Inch, path), "failed to save %s", path)
}
