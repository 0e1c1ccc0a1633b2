// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/lpossenti/haima/asm"
	"github.com/lpossenti/haima/net"
)

// ArtificialDiff computes the global artificial diffusivity estimate:
// per branch, the product of the largest velocity magnitude and the
// largest element size; the estimate is half the largest product
// scaled by θ
func (o *Domain) ArtificialDiff() float64 {
	maxprod := 0.0
	for b := 0; b < o.Msh.NbBranches; b++ {
		maxu, maxle := 0.0, 0.0
		for k, cid := range o.Msh.BranchCells[b] {
			d0, d1 := o.Top.CellDofs(b, k)
			maxu = math.Max(maxu, math.Abs(o.U[o.UvDof(d0)]))
			maxu = math.Max(maxu, math.Abs(o.U[o.UvDof(d1)]))
			maxle = math.Max(maxle, o.Msh.CellLen(cid))
		}
		maxprod = math.Max(maxprod, maxu*maxle)
	}
	return maxprod * o.Sim.Solver.Theta / 2.0
}

// endFlux returns the blood flux of branch end e, positive when the
// flow enters the junction
func (o *Domain) endFlux(e net.BranchEnd) float64 {
	area := o.Geo.Wall[o.Top.EndCell(e)].Area
	u := o.U[o.UvDof(o.Top.EndDof(e))]
	if e.Ending {
		return area * u
	}
	return -area * u
}

// diamUm returns the deformed diameter of branch end e in micrometres
func (o *Domain) diamUm(e net.BranchEnd) float64 {
	return 2.0 * o.Geo.Wall[o.Top.EndCell(e)].R * o.Sim.Phys.D * 1e6
}

// phaseFrac computes the fraction of the red-cell influx delivered to
// the first of two receiving branches of a diverging bifurcation,
// according to the Pries-Secomb phase separation law.
//  x      -- fractional blood flow into the first receiver
//  dα, dβ -- receiver diameters [µm]
//  dF     -- feeding branch diameter [µm]
//  hF     -- feeding branch discharge hematocrit
func phaseFrac(x, dα, dβ, dF, hF float64) float64 {
	x0 := 0.964 * (1.0 - hF) / dF
	if x <= x0 {
		return 0
	}
	if x >= 1.0-x0 {
		return 1
	}
	ratio := dα * dα / (dβ * dβ)
	A := -13.29 * ((ratio - 1.0) / (ratio + 1.0)) * (1.0 - hF) / dF
	B := 1.0 + 6.98*(1.0-hF)/dF
	logit := math.Log((x - x0) / (1.0 - x - x0))
	e := math.Exp(A + B*logit)
	return e / (1.0 + e)
}

// AssembleHt rebuilds the hematocrit transport system from the current
// flow solution: conservative advection with artificial diffusion per
// branch, red-cell partition at junctions and boundary closures at the
// network extrema. The phase separation coefficients lag behind one
// iteration (they use the previous hematocrit iterate).
func (o *Domain) AssembleHt() {

	o.Kh.Start()
	la.VecFill(o.Fh, 0)
	D := o.ArtificialDiff()

	// per-cell advection and artificial diffusion
	for b := 0; b < o.Msh.NbBranches; b++ {
		for k, cid := range o.Msh.BranchCells[b] {
			le := o.Msh.CellLen(cid)
			s := &o.Geo.Wall[cid]
			a := o.CellU(b, k) * s.Area
			d0, d1 := o.Top.CellDofs(b, k)

			// conservative advection, integrated by parts
			asm.AddNegT(o.Kh, d0, d1, d0, d1, asm.Advection(a))

			// artificial diffusion, scaled by the deformed area
			asm.Add(o.Kh, d0, d1, d0, d1, asm.Diffusion(D*s.Area, le))
		}
	}

	// junctions: advective closure for feeding branches, red-cell
	// partition for receiving branches
	for _, jn := range o.Top.Junctions {
		var feeders, receivers []net.BranchEnd
		var fluxIn []float64
		totalIn := 0.0
		for _, e := range jn.Ends {
			f := o.endFlux(e)
			if f > 0 {
				feeders = append(feeders, e)
				fluxIn = append(fluxIn, f)
				totalIn += f
			} else if f < 0 {
				receivers = append(receivers, e)
			}
		}
		if totalIn == 0 {
			continue
		}

		// feeders: outflow closure at the branch end
		for i, e := range feeders {
			dof := o.Top.EndDof(e)
			o.Kh.Put(dof, dof, fluxIn[i])
		}

		// receivers: upwind influx from the junction red-cell balance
		for r, e := range receivers {
			frac := -o.endFlux(e) / totalIn // flow-proportional split
			if len(feeders) == 1 && len(receivers) == 2 {
				other := receivers[1-r]
				hF := o.H[o.Top.EndDof(feeders[0])]
				x := -o.endFlux(e) / totalIn
				fr := phaseFrac(x, o.diamUm(e), o.diamUm(other), o.diamUm(feeders[0]), hF)
				if r == 1 {
					// conserve red cells exactly across the pair
					x1 := -o.endFlux(receivers[0]) / totalIn
					fr = 1.0 - phaseFrac(x1, o.diamUm(receivers[0]), o.diamUm(e), o.diamUm(feeders[0]), hF)
				}
				frac = fr
			}
			dof := o.Top.EndDof(e)
			for i, ef := range feeders {
				o.Kh.Put(dof, o.Top.EndDof(ef), -frac*fluxIn[i])
			}
		}
	}

	// network extrema: advective closure on outflow, Robin condition
	// with the prescribed hematocrit on inflow
	βH := o.Sim.Solver.BetaH
	for _, ex := range o.Top.Extrema {
		var dof int
		var cid int
		if ex.AtStart {
			dof = o.Top.FirstDof(ex.Branch)
			cid = o.Msh.BranchCells[ex.Branch][0]
		} else {
			dof = o.Top.LastDof(ex.Branch)
			cells := o.Msh.BranchCells[ex.Branch]
			cid = cells[len(cells)-1]
		}
		area := o.Geo.Wall[cid].Area
		u := o.U[o.UvDof(dof)]
		outward := area * u
		if ex.AtStart {
			outward = -outward
		}
		if outward > 0 {
			o.Kh.Put(dof, dof, outward)
		} else {
			o.Kh.Put(dof, dof, βH)
			o.Fh[dof] += βH*ex.Bc.Hval - outward*ex.Bc.Hval
		}
	}
}

// SolveHt factorises the hematocrit matrix and solves into res
func (o *Domain) SolveHt(res []float64) (err error) {
	if !o.iniHt {
		err = o.lsHt.InitR(o.Kh, false, o.Sim.LinSol.Verbose, o.Sim.LinSol.Timing)
		if err != nil {
			return
		}
		o.iniHt = true
	}
	err = o.lsHt.Fact()
	if err != nil {
		return
	}
	return o.lsHt.SolveR(res, o.Fh, false)
}
