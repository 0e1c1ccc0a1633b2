// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/lpossenti/haima/ana"
	"github.com/lpossenti/haima/inp"
)

func init() {
	io.Verbose = false
}

func Test_asm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm01. structure of the monolithic flow matrix")

	sim := inp.ReadSim("data/ynet.sim", false, false)
	dom := NewDomain(sim)
	defer dom.Free()
	dom.AssembleFlow()
	K := dom.Kb.ToMatrix(nil).ToDense()

	// Dirichlet pressure rows carry only the identity
	for _, ex := range dom.Top.Extrema {
		if ex.Bc.Label != "DIR" {
			continue
		}
		row := dom.PvDof(ex.Vert)
		sum := 0.0
		for j := 0; j < dom.Nflow; j++ {
			sum += math.Abs(K[row][j])
		}
		chk.Scalar(tst, io.Sf("dirichlet row %d", row), 1e-15, sum, 1.0)
		chk.Scalar(tst, "diag", 1e-15, K[row][row], 1.0)
		chk.Scalar(tst, "rhs", 1e-15, dom.Fb[row], ex.Bc.Value)
	}

	// the junction pressure row carries one signed area entry per
	// incident branch end: + for the ending branch, - for the two
	// starting ones
	jn := dom.Top.Junctions[0]
	row := dom.PvDof(jn.Vert)
	npos, nneg := 0, 0
	for _, e := range jn.Ends {
		areaLoc := dom.Geo.Wall[dom.Top.EndCell(e)].Area
		col := dom.UvDof(dom.Top.EndDof(e))
		if e.Ending {
			chk.Scalar(tst, "ending entry", 1e-15, K[row][col], areaLoc)
			npos++
		} else {
			chk.Scalar(tst, "starting entry", 1e-15, K[row][col], -areaLoc)
			nneg++
		}
	}
	chk.IntAssert(npos, 1)
	chk.IntAssert(nneg, 2)

	// an interior pressure row carries the central difference of the
	// volumetric flux: vertex 4 sits between the first and third dofs
	// of branch 0, so the contributions to the shared dof cancel
	area := dom.Geo.Wall[0].Area
	prow := dom.PvDof(4)
	chk.Scalar(tst, "interior row: left", 1e-15, K[prow][dom.UvDof(0)], -area/2.0)
	chk.Scalar(tst, "interior row: mid", 1e-15, K[prow][dom.UvDof(1)], 0.0)
	chk.Scalar(tst, "interior row: right", 1e-15, K[prow][dom.UvDof(2)], area/2.0)

	// momentum rows are diagonally dominated by the resistance mass
	// matrix (nonzero diagonal)
	for d := 0; d < dom.Nuv; d++ {
		if K[dom.UvDof(d)][dom.UvDof(d)] <= 0 {
			tst.Errorf("momentum diagonal %d is not positive", d)
			return
		}
	}
}

func Test_flow01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flow01. rigid Y-network against the analytic solution")

	sim := inp.ReadSim("data/ynet.sim", false, false)
	dom := NewDomain(sim)
	defer dom.Free()
	res := dom.Solve(nil)

	if res.Status != Converged {
		tst.Errorf("run did not converge: %v after %d iterations", res.Status, res.It)
		return
	}

	// analytic reference: branch conductances from the dimensionless
	// Poiseuille conductivity and the common branch length 0.5
	kv := sim.Prm.Kv[0]
	y := ana.NewYNetwork([3]float64{kv, kv, kv}, [3]float64{0.5, 0.5, 0.5}, [3]float64{4.0, 1.5, 1.0})
	area := dom.Geo.Wall[0].Area

	// vessel pressures
	tol := 1e-6
	chk.Scalar(tst, "pv inlet", tol, dom.U[dom.PvDof(0)], 4.0)
	chk.Scalar(tst, "pv outlet a", tol, dom.U[dom.PvDof(2)], 1.5)
	chk.Scalar(tst, "pv outlet b", tol, dom.U[dom.PvDof(3)], 1.0)
	chk.Scalar(tst, "pv junction", tol, dom.U[dom.PvDof(1)], y.PJ)

	// velocities: branch 0 is oriented towards the junction, branches
	// 1 and 2 away from it
	for d := dom.Top.FirstDof(0); d <= dom.Top.LastDof(0); d++ {
		chk.Scalar(tst, "u branch 0", tol, dom.U[dom.UvDof(d)], y.Velocity(0, area))
	}
	for d := dom.Top.FirstDof(1); d <= dom.Top.LastDof(1); d++ {
		chk.Scalar(tst, "u branch 1", tol, dom.U[dom.UvDof(d)], -y.Velocity(1, area))
	}
	for d := dom.Top.FirstDof(2); d <= dom.Top.LastDof(2); d++ {
		chk.Scalar(tst, "u branch 2", tol, dom.U[dom.UvDof(d)], -y.Velocity(2, area))
	}

	// hematocrit: the prescribed value enters at the inlet and the
	// red-cell flux balances at the junction
	chk.Scalar(tst, "H inlet", 1e-4, dom.H[dom.Top.FirstDof(0)], 0.45)
	rbcIn := y.Q[0] * dom.H[dom.Top.LastDof(0)]
	rbcOut := -y.Q[1]*dom.H[dom.Top.FirstDof(1)] - y.Q[2]*dom.H[dom.Top.FirstDof(2)]
	chk.Scalar(tst, "red-cell balance", 1e-6*math.Abs(rbcIn), rbcOut, rbcIn)

	// mass conservation: lymphatic drainage balances the wall leakage
	chk.Scalar(tst, "FRCube/TFR", 1e-3, res.FRCube/res.TFR, 0)
}

func Test_flow02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flow02. frozen coefficients converge in a single sweep")

	// rigid walls and constant viscosity freeze every coefficient, so
	// the first corrector reproduces the initial solve exactly and the
	// loop must stop after one iteration
	sim := inp.ReadSim("data/straight.sim", false, false)
	dom := NewDomain(sim)
	defer dom.Free()
	res := dom.Solve(nil)

	if res.Status != Converged {
		tst.Errorf("run did not converge: %v after %d iterations", res.Status, res.It)
		return
	}
	chk.IntAssert(res.It, 1)

	// linear pressure profile along the vessel
	tol := 1e-6
	chk.Scalar(tst, "pv inlet", tol, dom.U[dom.PvDof(0)], 2.0)
	chk.Scalar(tst, "pv mid", tol, dom.U[dom.PvDof(1)], 1.5)
	chk.Scalar(tst, "pv outlet", tol, dom.U[dom.PvDof(2)], 1.0)

	// constant velocity and uniform hematocrit
	uRef := dom.U[dom.UvDof(0)]
	if uRef <= 0 {
		tst.Errorf("flow must run from the high- to the low-pressure end")
		return
	}
	for d := 1; d < dom.Nuv; d++ {
		chk.Scalar(tst, io.Sf("u dof %d", d), tol, dom.U[dom.UvDof(d)], uRef)
	}
	for d := 0; d < dom.Nuv; d++ {
		chk.Scalar(tst, io.Sf("H dof %d", d), 1e-9, dom.H[d], 0.45)
	}
}

func Test_ht01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ht01. phase separation law")

	dF, h := 10.0, 0.45

	// symmetric split of equal daughters
	chk.Scalar(tst, "even split", 1e-15, phaseFrac(0.5, 8.0, 8.0, dF, h), 0.5)

	// the pair always sums to one for equal daughters
	f1 := phaseFrac(0.3, 8.0, 8.0, dF, h)
	f2 := phaseFrac(0.7, 8.0, 8.0, dF, h)
	chk.Scalar(tst, "pair sum", 1e-12, f1+f2, 1.0)

	// below the critical fractional flow no red cells enter
	x0 := 0.964 * (1.0 - h) / dF
	chk.Scalar(tst, "below X0", 1e-17, phaseFrac(x0/2.0, 8.0, 8.0, dF, h), 0)
	chk.Scalar(tst, "above 1-X0", 1e-17, phaseFrac(1.0-x0/2.0, 8.0, 8.0, dF, h), 1)

	// at equal flow the larger daughter runs slower and collects
	// fewer red cells
	fbig := phaseFrac(0.5, 10.0, 6.0, dF, h)
	if fbig >= 0.5 {
		tst.Errorf("larger daughter must collect fewer red cells: %g", fbig)
		return
	}

	// monotone in the fractional flow
	prev := 0.0
	for x := x0 * 1.01; x < 1.0-x0; x += 0.1 {
		f := phaseFrac(x, 8.0, 8.0, dF, h)
		if f < prev {
			tst.Errorf("phase separation must be monotone in x")
			return
		}
		prev = f
	}
}

func Test_diff01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diff01. global artificial diffusivity estimate")

	sim := inp.ReadSim("data/ynet.sim", false, false)
	dom := NewDomain(sim)
	defer dom.Free()

	// prescribe velocities: branch 1 has the largest magnitude
	for d := 0; d < dom.Nuv; d++ {
		dom.U[dom.UvDof(d)] = 1.0
	}
	dom.U[dom.UvDof(dom.Top.FirstDof(1))] = -4.0

	// all elements have size 0.25, so D = 4·0.25·θ/2
	chk.Scalar(tst, "D", 1e-15, dom.ArtificialDiff(), 4.0*0.25*sim.Solver.Theta/2.0)
}
