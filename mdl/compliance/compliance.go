// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package compliance implements the vessel-wall mechanical response:
// the deformed radius, cross-section area, perimeter and hydraulic
// conductance of a vessel element under a given transmural pressure.
//  References:
//   [1] Possenti L et al. (2019) A computational model for microcirculation including
//       Fahraeus-Lindqvist effect, plasma skimming and fluid exchange with the tissue
//       interstitium. Int J Numer Method Biomed Eng, 35(3):e3165
//       http://dx.doi.org/10.1002/cnm.3165
package compliance

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Regime labels the mechanical regime of the wall
type Regime int

const (
	// ThickWalled is the Lamé thick-walled cylinder regime (h/R0 >= 0.1)
	ThickWalled Regime = iota

	// ThinCircular is the thin-walled regime with a circular cross
	// section (transmural compression below the buckling threshold)
	ThinCircular

	// Buckled is the thin-walled post-buckling regime with a collapsed
	// cross section described by the tube law
	Buckled
)

func (r Regime) String() string {
	switch r {
	case ThickWalled:
		return "thick"
	case ThinCircular:
		return "thin"
	case Buckled:
		return "buckled"
	}
	return "unknown"
}

// State holds the deformed geometry and conductance of one vessel element
type State struct {
	Regime Regime  // active mechanical regime
	R      float64 // deformed radius (hydraulic radius when buckled)
	Area   float64 // cross-section area
	Per    float64 // perimeter
	Cond   float64 // hydraulic conductance coefficient, viscosity excluded
}

// Model holds the wall-law parameters shared by all elements. The
// element-wise fields (reference radius, thickness, Young modulus,
// curvature) are passed to Eval per call.
type Model struct {
	Nu    float64 // wall Poisson coefficient
	Gamma float64 // velocity profile order; 2 => Poiseuille
	Scale float64 // conductance scaling U/(P·d)
}

// Init initialises the model
func (o *Model) Init(prms fun.Prms) (err error) {
	o.Nu = 0.5
	o.Gamma = 2
	o.Scale = 1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "nu":
			o.Nu = p.V
		case "gamma":
			o.Gamma = p.V
		case "scale":
			o.Scale = p.V
		default:
			return chk.Err("compliance: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "nu", V: 0.5},
		&fun.Prm{N: "gamma", V: 2},
		&fun.Prm{N: "scale", V: 1},
	}
}

// pstarMax clips the dimensionless transmural pressure of the tube
// law; beyond it the fitted exponentials are evaluated at the clip
const pstarMax = 5.0

// Eval computes the deformed state of one vessel element.
//  R0    -- reference (unloaded) radius
//  h     -- wall thickness
//  estar -- dimensionless Young modulus E/P
//  curve -- centreline curvature
//  pv    -- luminal (vessel) pressure
//  pext  -- external (interstitial) pressure
// All pressures and lengths are dimensionless.
func (o *Model) Eval(R0, h, estar, curve, pv, pext float64) (s State) {

	ratio := h / R0
	Δp := pext - pv

	// thick-walled: Lamé solution for a pressurised cylinder
	if ratio >= 0.1 {
		s.Regime = ThickWalled
		Ro := R0 + h
		den := Ro*Ro - R0*R0
		B1 := (pv*R0*R0 - pext*Ro*Ro) / den
		B2 := Δp * R0 * R0 * Ro * Ro / den
		s.R = R0 * (1.0 + (1.0-o.Nu)/estar*B1 - (1.0+o.Nu)/estar*B2/(R0*R0))
		o.round(&s, curve)
		return
	}

	// thin-walled, circular: below the buckling threshold
	τ := 3.0 * estar * ratio * ratio * ratio / (12.0 * (1.0 - o.Nu*o.Nu))
	if Δp <= τ {
		s.Regime = ThinCircular
		s.R = R0 * (1.0 - (1.0-o.Nu*o.Nu)/ratio/estar*Δp)
		o.round(&s, curve)
		return
	}

	// buckled: tube law with fitted area and resistance integrals
	s.Regime = Buckled
	pstar := Δp * 12.0 * (1.0 - o.Nu*o.Nu) / estar / (ratio * ratio * ratio)
	if pstar > pstarMax {
		pstar = pstarMax
	}
	s.Area = 15.95 * math.Exp(-0.545*pstar) * R0 * R0
	s.Per = 2.0 * math.Pi * R0
	s.R = s.Area / s.Per // hydraulic radius
	integral := 69.56 * math.Exp(-1.74*pstar)
	s.Cond = o.Scale * s.Area * s.Area / (R0 * R0 * R0 * R0) / integral
	return
}

// Rigid returns the undeformed state of a rigid vessel element
func (o *Model) Rigid(R0, curve float64) (s State) {
	s.Regime = ThinCircular
	s.R = R0
	o.round(&s, curve)
	return
}

// round completes the state of a circular cross section
func (o *Model) round(s *State, curve float64) {
	s.Area = math.Pi * s.R * s.R
	s.Per = 2.0 * math.Pi * s.R
	R4 := s.R * s.R * s.R * s.R
	s.Cond = o.Scale * s.Area * s.Area * 2.0 * (o.Gamma + 2.0) / math.Pi / R4 * (1.0 + curve*curve*s.R*s.R)
}
