// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lymph implements lymphatic drainage laws for the tissue
// interstitium. The linear law contributes a constant matrix
// coefficient; the sigmoid law is nonlinear and enters the right-hand
// side at every fixed-point iteration.
package lymph

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model computes the lymphatic drainage rate per unit tissue volume
type Model interface {
	Init(prms fun.Prms) error      // initialises the model
	GetPrms(example bool) fun.Prms // gets (an example) of parameters
	Linear() bool                  // drainage is linear in the tissue pressure
	Coef() float64                 // matrix coefficient (zero for nonlinear laws)
	Rate(pt float64) float64       // drainage rate at tissue pressure pt
}

// New returns a new lymphatic drainage model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find lymphatic drainage model named %q", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
