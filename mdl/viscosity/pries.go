// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscosity

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// pries holds the data shared by the in-vivo and in-vitro laws. The
// fitted formulae take the vessel diameter in micrometres; dchar
// converts the dimensionless radius back to physical units.
type pries struct {
	µplasma float64 // plasma viscosity
	dchar   float64 // characteristic length [m]
}

func (o *pries) init(prms fun.Prms, name string) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "muplasma":
			o.µplasma = p.V
		case "d":
			o.dchar = p.V
		default:
			return chk.Err("%s: parameter named %q is incorrect\n", name, p.N)
		}
	}
	if o.µplasma <= 0 || o.dchar <= 0 {
		return chk.Err("%s: muplasma and d must be positive", name)
	}
	return
}

// diamUm returns the vessel diameter in micrometres
func (o *pries) diamUm(R float64) float64 {
	return 2.0 * R * o.dchar * 1e6
}

// shapeC is the curvature coefficient of the hematocrit dependence
func shapeC(D float64) float64 {
	d12 := math.Pow(D, 12.0)
	g := 1.0 / (1.0 + 1e-11*d12)
	return (0.8+math.Exp(-0.075*D))*(-1.0+g) + g
}

// Vitro implements the in-vitro (glass tube) Pries viscosity law
type Vitro struct {
	pries
}

// add model to factory
func init() {
	allocators["vitro"] = func() Model { return new(Vitro) }
}

// Init initialises the model
func (o *Vitro) Init(prms fun.Prms) error { return o.init(prms, "vitro") }

// GetPrms gets (an example) of parameters
func (o Vitro) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "muplasma", V: 1.05e-3},
		&fun.Prm{N: "d", V: 5e-5},
	}
}

// Mu computes the effective viscosity. H == 0 gives exactly the
// plasma viscosity.
func (o *Vitro) Mu(H, R float64) float64 {
	if H == 0 {
		return o.µplasma
	}
	D := o.diamUm(R)
	µ45 := 220.0*math.Exp(-1.3*D) + 3.2 - 2.44*math.Exp(-0.06*math.Pow(D, 0.645))
	C := shapeC(D)
	µrel := 1.0 + (µ45-1.0)*(math.Pow(1.0-H, C)-1.0)/(math.Pow(1.0-0.45, C)-1.0)
	return µrel * o.µplasma
}

// Vivo implements the in-vivo Pries viscosity law, accounting for the
// endothelial surface layer
type Vivo struct {
	pries
}

// add model to factory
func init() {
	allocators["vivo"] = func() Model { return new(Vivo) }
}

// Init initialises the model
func (o *Vivo) Init(prms fun.Prms) error { return o.init(prms, "vivo") }

// GetPrms gets (an example) of parameters
func (o Vivo) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "muplasma", V: 1.05e-3},
		&fun.Prm{N: "d", V: 5e-5},
	}
}

// Mu computes the effective viscosity. H == 0 gives exactly the
// plasma viscosity.
func (o *Vivo) Mu(H, R float64) float64 {
	if H == 0 {
		return o.µplasma
	}
	D := o.diamUm(R)
	µ45 := 6.0*math.Exp(-0.085*D) + 3.2 - 2.44*math.Exp(-0.06*math.Pow(D, 0.645))
	C := shapeC(D)
	w := D / (D - 1.1)
	w2 := w * w
	µrel := (1.0 + (µ45-1.0)*(math.Pow(1.0-H, C)-1.0)/(math.Pow(1.0-0.45, C)-1.0)*w2) * w2
	return µrel * o.µplasma
}
