// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Status is the terminal state of the fixed-point iteration
type Status int

const (
	// Converged means all residuals dropped below their tolerances
	Converged Status = iota

	// MaxIterationsReached means the iteration cap was hit; the last
	// iterate is returned and the caller must inspect the residuals
	MaxIterationsReached
)

func (s Status) String() string {
	if s == Converged {
		return "converged"
	}
	return "max iterations reached"
}

// ResRow holds the residuals of one fixed-point iteration
type ResRow struct {
	It     int     // iteration number
	ResSol float64 // relative change of the flow solution
	ResCM  float64 // mass conservation residual
	ResH   float64 // relative change of the hematocrit
}

// Results holds the outcome of a run
type Results struct {
	Status  Status   // terminal state
	It      int      // number of iterations performed
	TFR     float64  // total flow rate through the vessel walls
	FRLymph float64  // lymphatic flow rate
	FRCube  float64  // net flow rate imbalance of the tissue domain
	History []ResRow // residuals per iteration
}

// SaveFunc is called every SaveIt iterations and once at termination
type SaveFunc func(dom *Domain, it int)

// FlowRates computes the wall exchange, lymphatic and imbalance flow
// rates of the current solution
func (o *Domain) FlowRates() (tfr, frlymph, frcube float64) {
	prm := &o.Sim.Prm
	for _, c := range o.Msh.Cells {
		s := &o.Geo.Wall[c.Id]
		q := s.Per * prm.LpScaled[c.Id]
		if q == 0 {
			continue
		}
		w := q * o.Msh.CellLen(c.Id) / 2.0
		σΔπ := prm.Sigma[c.Id] * (prm.PiV - prm.PiT)
		for e := 0; e < 2; e++ {
			v := c.V[e]
			vx := o.Msh.Verts[v].C
			pt := o.TissueAt(vx[0], vx[1], vx[2])
			pv := o.U[o.PvDof(v)]
			tfr += w * (pv - pt - σΔπ)
		}
	}
	for t := 0; t < o.Npt; t++ {
		frlymph += o.Lymph.Rate(o.U[t]) * o.Grd.Vol(t)
	}
	frcube = tfr - frlymph
	return
}

// relDiff computes ‖a-b‖₂/‖b‖₂
func relDiff(a, b []float64) float64 {
	num, den := 0.0, 0.0
	for i := range a {
		d := a[i] - b[i]
		num += d * d
		den += b[i] * b[i]
	}
	return math.Sqrt(num) / math.Sqrt(den)
}

// Init computes the initial iterate: a flow solve with the uniform
// hematocrit guess followed by a single hematocrit solve
func (o *Domain) Init() {
	o.UpdateGeometry()
	o.AssembleFlow()
	err := o.SolveFlow(o.U)
	if err != nil {
		chk.Panic("initial flow solve failed:\n%v", err)
	}
	o.UpdateGeometry()
	o.AssembleHt()
	err = o.SolveHt(o.H)
	if err != nil {
		chk.Panic("initial hematocrit solve failed:\n%v", err)
	}
}

// Solve runs the fixed-point iteration until all residuals fall below
// their tolerances or the iteration cap is hit. Hitting the cap is a
// warning, not an error: the last iterate stays in the domain and the
// returned status must be inspected.
func (o *Domain) Solve(save SaveFunc) (res *Results) {

	sd := &o.Sim.Solver
	res = new(Results)
	o.Init()

	Uold := make([]float64, o.Nflow)
	Hold := make([]float64, o.Nuv)
	Uraw := make([]float64, o.Nflow)
	Hraw := make([]float64, o.Nuv)

	it := 0
	for {
		it++
		copy(Uold, o.U)
		copy(Hold, o.H)

		// flow subsystem with under-relaxation
		o.UpdateGeometry()
		o.AssembleFlow()
		err := o.SolveFlow(Uraw)
		if err != nil {
			chk.Panic("flow solve failed at iteration %d:\n%v", it, err)
		}
		for i := range o.U {
			o.U[i] = sd.Alpha*Uraw[i] + (1.0-sd.Alpha)*Uold[i]
		}
		resSol := relDiff(o.U, Uold)

		// hematocrit subsystem with under-relaxation
		o.AssembleHt()
		err = o.SolveHt(Hraw)
		if err != nil {
			chk.Panic("hematocrit solve failed at iteration %d:\n%v", it, err)
		}
		for i := range o.H {
			o.H[i] = sd.AlphaH*Hraw[i] + (1.0-sd.AlphaH)*Hold[i]
		}
		resH := relDiff(o.H, Hold)

		// mass conservation residual
		res.TFR, res.FRLymph, res.FRCube = o.FlowRates()
		resCM := math.Abs(res.FRCube / res.TFR)

		res.History = append(res.History, ResRow{It: it, ResSol: resSol, ResCM: resCM, ResH: resH})
		if sd.ShowRes {
			io.Pf("it=%4d  resSol=%13.6e  resCM=%13.6e  resH=%13.6e\n", it, resSol, resCM, resH)
		}
		if save != nil && sd.SaveIt > 0 && it%sd.SaveIt == 0 {
			save(o, it)
		}

		// loop guard
		if resSol <= sd.EpsSol && resCM <= sd.EpsCM && resH <= sd.EpsH {
			res.Status = Converged
			break
		}
		if it >= sd.MaxIt {
			io.Pfred("warning: fixed-point iteration cap reached (%d); residuals: sol=%g cm=%g ht=%g\n",
				it, resSol, resCM, resH)
			res.Status = MaxIterationsReached
			break
		}
	}

	res.It = it
	if save != nil {
		save(o, it)
	}
	return
}

// MaxVelocity returns the largest velocity magnitude of the network
func (o *Domain) MaxVelocity() float64 {
	return la.VecLargest(o.U[o.OffUv:o.OffPv], 1)
}
