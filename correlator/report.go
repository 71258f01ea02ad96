// Copyright 2024 The Correlators Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package correlator

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Format writes the comparisons of a layer as a table
func Format(w io.Writer, layer int, comparisons []Comparison) error {
	if _, err := fmt.Fprintf(w, "layer %d\n", layer); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "statistic\texpected\tobserved\tstderr")
	for _, c := range comparisons {
		fmt.Fprintf(tw, "%s\t%.5f\t%.5f\t%.5f\n", c.Statistic, c.Expected, c.Observed, c.StdErr)
	}
	return tw.Flush()
}
