// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lymph

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Lin implements the linear drainage law: q(pt) := Q_LF·(pt - PL)
type Lin struct {
	qlf float64 // lymphatic conductivity
	pl  float64 // lymphatic pressure
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises the model
func (o *Lin) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "qlf":
			o.qlf = p.V
		case "pl":
			o.pl = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "qlf", V: 6.66e-2},
		&fun.Prm{N: "pl", V: 0},
	}
}

// Linear returns true
func (o Lin) Linear() bool { return true }

// Coef returns the matrix coefficient Q_LF
func (o Lin) Coef() float64 { return o.qlf }

// Rate computes the drainage rate at tissue pressure pt
func (o Lin) Rate(pt float64) float64 { return o.qlf * (pt - o.pl) }
