// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReadDofSeries reads n values from a whitespace-separated token stream
// aligned to the coefficient-dof ordering of the vessel network.
func ReadDofSeries(path string, n int) (vals []float64, err error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read per-dof data file %q:\n%v", path, err)
	}
	toks := strings.Fields(string(b))
	if len(toks) < n {
		return nil, chk.Err("per-dof data file %q has %d values but %d are required", path, len(toks), n)
	}
	vals = make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i], err = strconv.ParseFloat(toks[i], 64)
		if err != nil {
			return nil, chk.Err("per-dof data file %q: token %d (%q) is not a number", path, i, toks[i])
		}
	}
	return
}

// ImportOrDefault reads a per-dof series falling back to an analytic default
// when the file is optional and missing. A fallback emits a warning only.
func ImportOrDefault(path, what string, n int, def func(i int) float64) []float64 {
	if path != "" {
		vals, err := ReadDofSeries(path, n)
		if err == nil {
			return vals
		}
		io.Pfred("warning: cannot import %s from %q; using default values\n", what, path)
	}
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = def(i)
	}
	return vals
}
