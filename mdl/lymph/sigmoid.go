// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lymph

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Sigmoid implements the sigmoid drainage law:
//  q(pt) := A - B / (1 + exp((pt - C)/D))
type Sigmoid struct {
	a float64 // upper plateau
	b float64 // plateau span
	c float64 // inflection pressure
	d float64 // transition width
}

// add model to factory
func init() {
	allocators["sigmoid"] = func() Model { return new(Sigmoid) }
}

// Init initialises the model
func (o *Sigmoid) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "a":
			o.a = p.V
		case "b":
			o.b = p.V
		case "c":
			o.c = p.V
		case "d":
			o.d = p.V
		default:
			return chk.Err("sigmoid: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.d == 0 {
		return chk.Err("sigmoid: transition width d must be nonzero")
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Sigmoid) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "a", V: 0.2},
		&fun.Prm{N: "b", V: 0.2},
		&fun.Prm{N: "c", V: 0.5},
		&fun.Prm{N: "d", V: 0.1},
	}
}

// Linear returns false
func (o Sigmoid) Linear() bool { return false }

// Coef returns zero: the sigmoid law carries no matrix coefficient
func (o Sigmoid) Coef() float64 { return 0 }

// Rate computes the drainage rate at tissue pressure pt
func (o Sigmoid) Rate(pt float64) float64 {
	return o.a - o.b/(1.0+math.Exp((pt-o.c)/o.d))
}
