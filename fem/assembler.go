// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"

	"github.com/lpossenti/haima/asm"
)

// assembleConstant records the blocks of the flow system that never
// change across iterations: the tissue Darcy stencil, the linear
// lymphatic sink and the constant part of the rhs
func (o *Domain) assembleConstant() {
	o.cblock = new(block)
	qlf := o.Lymph.Coef()
	o.Grd.AssembleDarcy(o.cblock, 0, o.Sim.Prm.Kt, qlf)
	if o.Lymph.Linear() && qlf != 0 {
		pl := o.Sim.PL()
		for t := 0; t < o.Npt; t++ {
			o.crhs[t] = qlf * pl * o.Grd.Vol(t)
		}
	}

	// linear solvers
	o.lsFlow = la.GetSolver(o.Sim.LinSol.Name)
	o.lsHt = la.GetSolver(o.Sim.LinSol.Name)
}

// putPv puts an entry on the vessel pressure row of vertex v unless
// that row is replaced by a Dirichlet condition
func (o *Domain) putPv(v, col int, x float64) {
	if o.dirPv[v] {
		return
	}
	o.Kb.Put(o.PvDof(v), col, x)
}

// AssembleFlow rebuilds the monolithic flow system from the current
// geometry state. The triplet is restarted so state-dependent entries
// never accumulate on top of a populated block.
func (o *Domain) AssembleFlow() {

	prm := &o.Sim.Prm
	o.Kb.Start()
	o.cblock.Replay(o.Kb)
	copy(o.Fb, o.crhs)

	// per-cell vessel blocks: momentum (resistance mass matrix plus
	// pressure coupling integrated by parts) and the direct-form mass
	// conservation on the interior pressure rows
	for b := 0; b < o.Msh.NbBranches; b++ {
		for k, cid := range o.Msh.BranchCells[b] {
			c := o.Msh.Cells[cid]
			le := o.Msh.CellLen(cid)
			s := &o.Geo.Wall[cid]
			ciM := s.Cond * o.Geo.Mu[cid]

			d0, d1 := o.Top.CellDofs(b, k)
			u0, u1 := o.UvDof(d0), o.UvDof(d1)
			p0, p1 := o.PvDof(c.V[0]), o.PvDof(c.V[1])

			// momentum: resistance mass matrix and -∫ φu' area pv
			asm.Add(o.Kb, u0, u1, u0, u1, asm.Mass(ciM, le))
			adv := asm.Advection(s.Area)
			asm.AddNegT(o.Kb, u0, u1, p0, p1, adv)

			// mass conservation, ∫ φp (area u)', on the plain
			// interior vertices only: junction vertices carry the
			// flux balance instead and extrema their bc row
			if o.vkind[c.V[0]] == vertInterior {
				o.Kb.Put(p0, u0, adv[0][0])
				o.Kb.Put(p0, u1, adv[0][1])
			}
			if o.vkind[c.V[1]] == vertInterior {
				o.Kb.Put(p1, u0, adv[1][0])
				o.Kb.Put(p1, u1, adv[1][1])
			}

			// wall exchange, lumped at the two cell endpoints
			q := s.Per * prm.LpScaled[cid]
			if q != 0 {
				w := q * le / 2.0
				σΔπ := prm.Sigma[cid] * (prm.PiV - prm.PiT)
				for e := 0; e < 2; e++ {
					v := c.V[e]
					pv := o.PvDof(v)
					vx := o.Msh.Verts[v].C
					nodes, wts := o.Grd.InterpWeights(vx[0], vx[1], vx[2])

					// vessel row: +q(pv - p̄t - σΔπ)
					if !o.dirPv[v] {
						o.Kb.Put(pv, pv, w)
						for n := range nodes {
							o.Kb.Put(pv, nodes[n], -w*wts[n])
						}
						o.Fb[pv] += w * σΔπ
					}

					// tissue rows: -q(pv - p̄t - σΔπ)
					for n := range nodes {
						o.Kb.Put(nodes[n], pv, -w*wts[n])
						for m := range nodes {
							o.Kb.Put(nodes[n], nodes[m], w*wts[n]*wts[m])
						}
						o.Fb[nodes[n]] -= w * wts[n] * σΔπ
					}
				}
			}
		}
	}

	// momentum boundary terms at branch endpoints
	for b := 0; b < o.Msh.NbBranches; b++ {
		cells := o.Msh.BranchCells[b]
		first, last := cells[0], cells[len(cells)-1]
		v0 := o.Msh.BranchVerts[b][0]
		v1 := o.Msh.BranchVerts[b][len(o.Msh.BranchVerts[b])-1]
		o.Kb.Put(o.UvDof(o.Top.FirstDof(b)), o.PvDof(v0), -o.Geo.Wall[first].Area)
		o.Kb.Put(o.UvDof(o.Top.LastDof(b)), o.PvDof(v1), o.Geo.Wall[last].Area)
	}

	// junction continuity: boundary flux terms of the mass rows
	for _, jn := range o.Top.Junctions {
		for _, e := range jn.Ends {
			areaLoc := o.Geo.Wall[o.Top.EndCell(e)].Area
			col := o.UvDof(o.Top.EndDof(e))
			if e.Ending {
				o.putPv(jn.Vert, col, areaLoc)
			} else {
				o.putPv(jn.Vert, col, -areaLoc)
			}
		}
	}

	// network boundary conditions
	for _, ex := range o.Top.Extrema {
		row := o.PvDof(ex.Vert)
		switch ex.Bc.Label {
		case "DIR":
			o.Kb.Put(row, row, 1)
			o.Fb[row] = ex.Bc.Value
		default: // MIX: far-field Robin condition
			areaLoc := 0.0
			if ex.AtStart {
				areaLoc = o.Geo.Wall[o.Msh.BranchCells[ex.Branch][0]].Area
				o.Kb.Put(row, o.UvDof(o.Top.FirstDof(ex.Branch)), -areaLoc)
			} else {
				cells := o.Msh.BranchCells[ex.Branch]
				areaLoc = o.Geo.Wall[cells[len(cells)-1]].Area
				o.Kb.Put(row, o.UvDof(o.Top.LastDof(ex.Branch)), areaLoc)
			}
			o.Kb.Put(row, row, ex.Bc.Beta)
			o.Fb[row] += ex.Bc.Beta * ex.Bc.Value
		}
	}

	// nonlinear lymphatic drainage goes to the rhs with the current
	// tissue pressure
	if !o.Lymph.Linear() {
		for t := 0; t < o.Npt; t++ {
			o.Fb[t] -= o.Lymph.Rate(o.U[t]) * o.Grd.Vol(t)
		}
	}
}

// SolveFlow factorises the flow matrix and solves into res
func (o *Domain) SolveFlow(res []float64) (err error) {
	if !o.iniFlw {
		err = o.lsFlow.InitR(o.Kb, o.Sim.LinSol.Symmetric, o.Sim.LinSol.Verbose, o.Sim.LinSol.Timing)
		if err != nil {
			return
		}
		o.iniFlw = true
	}
	err = o.lsFlow.Fact()
	if err != nil {
		return
	}
	return o.lsFlow.SolveR(res, o.Fb, false)
}
