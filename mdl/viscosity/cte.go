// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscosity

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Cte implements a constant viscosity, independent of hematocrit and
// vessel calibre
type Cte struct {
	µ float64 // viscosity value
}

// add model to factory
func init() {
	allocators["cte"] = func() Model { return new(Cte) }
}

// Init initialises the model
func (o *Cte) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "mu":
			o.µ = p.V
		default:
			return chk.Err("cte: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.µ <= 0 {
		return chk.Err("cte: mu must be positive")
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Cte) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "mu", V: 3e-3},
	}
}

// Mu returns the constant viscosity
func (o *Cte) Mu(H, R float64) float64 { return o.µ }
