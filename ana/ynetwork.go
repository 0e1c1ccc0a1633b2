// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides analytic solutions used as references in tests
package ana

// YNetwork is the analytic solution of a rigid, uncoupled Y-shaped
// network of three Poiseuille branches meeting at one junction, with
// pressures prescribed at the three extrema. Branch b carries the
// conductance g = Kv/L and the flow from its extremum towards the
// junction is Q = g·(P - PJ).
type YNetwork struct {

	// input
	Kv [3]float64 // branch conductivities
	L  [3]float64 // branch lengths
	P  [3]float64 // extremal pressures

	// derived
	G  [3]float64 // branch conductances Kv/L
	PJ float64    // junction pressure
	Q  [3]float64 // flows from extremum towards junction
}

// NewYNetwork computes the analytic solution
func NewYNetwork(kv, l, p [3]float64) (o *YNetwork) {
	o = &YNetwork{Kv: kv, L: l, P: p}
	num, den := 0.0, 0.0
	for b := 0; b < 3; b++ {
		o.G[b] = kv[b] / l[b]
		num += o.G[b] * p[b]
		den += o.G[b]
	}
	o.PJ = num / den
	for b := 0; b < 3; b++ {
		o.Q[b] = o.G[b] * (p[b] - o.PJ)
	}
	return
}

// Velocity returns the velocity of branch b for cross-section area,
// measured from the extremum towards the junction
func (o *YNetwork) Velocity(b int, area float64) float64 {
	return o.Q[b] / area
}

// Pressure returns the pressure at arc-length coordinate s measured
// from the extremum of branch b
func (o *YNetwork) Pressure(b int, s float64) float64 {
	return o.P[b] + (o.PJ-o.P[b])*s/o.L[b]
}
