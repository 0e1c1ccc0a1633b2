// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package viscosity implements hematocrit-dependent blood viscosity laws
//  References:
//   [1] Pries AR, Secomb TW (2005) Microvascular blood viscosity in vivo and the
//       endothelial surface layer. Am J Physiol Heart Circ Physiol 289:H2657-H2664
//       http://dx.doi.org/10.1152/ajpheart.00297.2005
//   [2] Pries AR, Neuhaus D, Gaehtgens P (1992) Blood viscosity in tube flow:
//       dependence on diameter and hematocrit. Am J Physiol 263:H1770-H1778
package viscosity

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model computes the effective blood viscosity of a vessel element
type Model interface {
	Init(prms fun.Prms) error      // initialises the model
	GetPrms(example bool) fun.Prms // gets (an example) of parameters
	Mu(H, R float64) float64       // effective viscosity for discharge hematocrit H and dimensionless radius R
}

// New returns a new viscosity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find viscosity model named %q", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
