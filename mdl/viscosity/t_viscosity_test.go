// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscosity

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func alloc(tst *testing.T, name string) Model {
	mdl, err := New(name)
	if err != nil {
		tst.Fatalf("cannot allocate %q:\n%v", name, err)
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Fatalf("cannot initialise %q:\n%v", name, err)
	}
	return mdl
}

func Test_visc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("visc01. plasma limit and factory")

	// unknown law
	if _, err := New("??"); err == nil {
		tst.Errorf("New must fail for an unknown law")
		return
	}

	// at H = 0 every law returns exactly the plasma viscosity
	for _, name := range []string{"vivo", "vitro"} {
		mdl := alloc(tst, name)
		chk.Scalar(tst, name+" @ H=0", 0, mdl.Mu(0, 0.08), 1.05e-3)
	}

	// constant law ignores both arguments
	cte := alloc(tst, "cte")
	chk.Scalar(tst, "cte", 0, cte.Mu(0.45, 0.08), 3e-3)
	chk.Scalar(tst, "cte", 0, cte.Mu(0.0, 0.5), 3e-3)
}

func Test_visc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("visc02. Pries laws: monotonicity in hematocrit")

	for _, name := range []string{"vivo", "vitro"} {
		mdl := alloc(tst, name)
		R := 0.08 // diameter = 8 µm with d = 50 µm
		prev := mdl.Mu(0, R)
		for _, H := range []float64{0.1, 0.2, 0.3, 0.45, 0.6} {
			µ := mdl.Mu(H, R)
			if µ <= prev {
				tst.Errorf("%s: viscosity must grow with hematocrit: µ(%g)=%g <= %g", name, H, µ, prev)
				return
			}
			prev = µ
		}
	}
}

func Test_visc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("visc03. in-vitro relative viscosity at reference hematocrit")

	// at H = 0.45 the relative viscosity equals µ45 by construction
	mdl := alloc(tst, "vitro")
	R := 0.08
	D := 2.0 * R * 5e-5 * 1e6 // 8 µm
	µ45 := 220.0*math.Exp(-1.3*D) + 3.2 - 2.44*math.Exp(-0.06*math.Pow(D, 0.645))
	chk.Scalar(tst, "µrel(0.45)", 1e-14, mdl.Mu(0.45, R)/1.05e-3, µ45)
}
