// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compliance

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func newModel(tst *testing.T) *Model {
	var mdl Model
	err := mdl.Init([]*fun.Prm{
		&fun.Prm{N: "nu", V: 0.5},
		&fun.Prm{N: "gamma", V: 2},
		&fun.Prm{N: "scale", V: 1},
	})
	if err != nil {
		tst.Fatalf("Init failed:\n%v", err)
	}
	return &mdl
}

func Test_comp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comp01. zero transmural pressure keeps the reference radius")

	mdl := newModel(tst)
	R0, estar := 0.08, 100.0

	// thin wall
	s := mdl.Eval(R0, 0.05*R0, estar, 0, 2.0, 2.0)
	if s.Regime != ThinCircular {
		tst.Errorf("wrong regime: %v", s.Regime)
		return
	}
	chk.Scalar(tst, "R (thin)", 1e-15, s.R, R0)
	chk.Scalar(tst, "area", 1e-15, s.Area, math.Pi*R0*R0)
	chk.Scalar(tst, "per", 1e-15, s.Per, 2*math.Pi*R0)

	// conductance at Poiseuille: area²·2(γ+2)/π/R⁴ = π·8... check closed form
	condRef := math.Pi * R0 * R0 * math.Pi * R0 * R0 * 2 * 4 / math.Pi / (R0 * R0 * R0 * R0)
	chk.Scalar(tst, "cond", 1e-12, s.Cond, condRef)

	// thick wall with equal internal and external pressures still
	// deforms (the Lamé constants do not vanish for p ≠ 0)
	s = mdl.Eval(R0, 0.2*R0, estar, 0, 0.0, 0.0)
	if s.Regime != ThickWalled {
		tst.Errorf("wrong regime: %v", s.Regime)
		return
	}
	chk.Scalar(tst, "R (thick, p=0)", 1e-15, s.R, R0)
}

func Test_comp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comp02. regime selection and continuity at the buckling threshold")

	mdl := newModel(tst)
	R0, estar := 0.08, 100.0
	h := 0.05 * R0
	ratio := h / R0

	// buckling threshold
	τ := 3.0 * estar * ratio * ratio * ratio / (12.0 * (1.0 - 0.25))

	// just below: circular, compressed
	sA := mdl.Eval(R0, h, estar, 0, 0.0, τ*0.999999)
	if sA.Regime != ThinCircular {
		tst.Errorf("wrong regime below threshold: %v", sA.Regime)
		return
	}
	if sA.R >= R0 {
		tst.Errorf("compression must reduce the radius: %g >= %g", sA.R, R0)
		return
	}

	// just above: buckled
	sB := mdl.Eval(R0, h, estar, 0, 0.0, τ*1.000001)
	if sB.Regime != Buckled {
		tst.Errorf("wrong regime above threshold: %v", sB.Regime)
		return
	}
	if sB.Per != 2*math.Pi*R0 {
		tst.Errorf("buckled perimeter must stay at the reference value")
		return
	}

	// the fitted tube law meets the circular cross section at the
	// threshold to within the accuracy of the fit
	if math.Abs(sA.Area-sB.Area)/sA.Area > 2e-2 {
		tst.Errorf("area jumps across the buckling threshold: %g vs %g", sA.Area, sB.Area)
		return
	}

	// determinism: same inputs, same state
	sC := mdl.Eval(R0, h, estar, 0, 0.0, τ*1.000001)
	chk.Scalar(tst, "R repeat", 1e-17, sC.R, sB.R)
	chk.Scalar(tst, "cond repeat", 1e-17, sC.Cond, sB.Cond)
}

func Test_comp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comp03. tube-law clipping")

	mdl := newModel(tst)
	R0, estar := 0.08, 100.0
	h := 0.05 * R0

	// two very large compressions must give the same clipped state
	s1 := mdl.Eval(R0, h, estar, 0, 0.0, 1e3)
	s2 := mdl.Eval(R0, h, estar, 0, 0.0, 1e6)
	if s1.Regime != Buckled || s2.Regime != Buckled {
		tst.Errorf("wrong regimes: %v %v", s1.Regime, s2.Regime)
		return
	}
	chk.Scalar(tst, "clipped area", 1e-17, s1.Area, s2.Area)
	chk.Scalar(tst, "clipped cond", 1e-17, s1.Cond, s2.Cond)

	// clipped values from the fitted laws at p* = 5
	chk.Scalar(tst, "area @ clip", 1e-14, s1.Area, 15.95*math.Exp(-0.545*5.0)*R0*R0)
	chk.Scalar(tst, "integral @ clip", 1e-12, s1.Cond, s1.Area*s1.Area/(R0*R0*R0*R0)/(69.56*math.Exp(-1.74*5.0)))
}
