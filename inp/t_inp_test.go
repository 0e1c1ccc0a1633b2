// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. Y-shaped network mesh")

	msh, err := ReadMsh("data", "ynet.msh")
	if err != nil {
		tst.Errorf("ReadMsh failed:\n%v", err)
		return
	}

	chk.IntAssert(msh.NbBranches, 3)
	chk.IntAssert(len(msh.Verts), 7)
	chk.IntAssert(len(msh.Cells), 6)
	chk.Ints(tst, "branch 0 cells", msh.BranchCells[0], []int{0, 1})
	chk.Ints(tst, "branch 1 cells", msh.BranchCells[1], []int{2, 3})
	chk.Ints(tst, "branch 2 cells", msh.BranchCells[2], []int{4, 5})
	chk.Ints(tst, "branch 0 verts", msh.BranchVerts[0], []int{0, 4, 1})
	chk.Ints(tst, "cell2branch", msh.Cell2branch, []int{0, 0, 1, 1, 2, 2})

	// vertex degrees: junction at 1, extrema at 0, 2, 3
	chk.IntAssert(msh.VertDegree(0), 1)
	chk.IntAssert(msh.VertDegree(1), 3)
	chk.IntAssert(msh.VertDegree(2), 1)
	chk.IntAssert(msh.VertDegree(4), 2)

	// geometry
	chk.Scalar(tst, "len(cell 0)", 1e-15, msh.CellLen(0), 0.25)
	lx, ly, lz := msh.Tangent(0)
	chk.Scalar(tst, "lx", 1e-15, lx, 1)
	chk.Scalar(tst, "ly", 1e-15, ly, 0)
	chk.Scalar(tst, "lz", 1e-15, lz, 0)

	// nodal dof counts per branch
	ndofs := 0
	for b := 0; b < msh.NbBranches; b++ {
		ndofs += msh.BranchNdofs(b)
	}
	chk.IntAssert(ndofs, 9)
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. simulation file and dimensionless groups")

	sim := ReadSim("data/ynet.sim", false, false)

	chk.IntAssert(sim.Solver.MaxIt, 50)
	chk.Scalar(tst, "alpha", 1e-15, sim.Solver.Alpha, 0.9)
	chk.Scalar(tst, "hstart", 1e-15, sim.Solver.HStart, 0.45)

	// radius default: r = 4e-6 / 5e-5 = 0.08
	n := len(sim.Msh.Cells)
	chk.IntAssert(len(sim.Prm.Radius), n)
	chk.Scalar(tst, "radius", 1e-15, sim.Prm.Radius[0], 0.08)

	// thickness default: h = 0.2 R
	chk.Scalar(tst, "thickness", 1e-15, sim.Prm.Thick[0], 0.2*0.08)

	// kt = k/mut * P/U/d
	chk.Scalar(tst, "kt", 1e-19, sim.Prm.Kt, 1e-18/1.2e-3*133.32/1e-4/5e-5)

	// kv = pi/2/(gamma+2)/muv * P d/U * r^4
	kvRef := 3.141592653589793 / 2.0 / 4.0 / 3e-3 * 133.32 * 5e-5 / 1e-4 * 0.08 * 0.08 * 0.08 * 0.08
	chk.Scalar(tst, "kv", 1e-10, sim.Prm.Kv[0], kvRef)

	// Q = 2 pi Lp P/U r
	qRef := 2.0 * 3.141592653589793 * 1e-12 * 133.32 / 1e-4 * 0.08
	chk.Scalar(tst, "Q", 1e-15, sim.Prm.Q[0], qRef)

	// oncotic pressures scaled by P
	chk.Scalar(tst, "pit", 1e-15, sim.Prm.PiT, 1866.5/133.32)
	chk.Scalar(tst, "piv", 1e-15, sim.Prm.PiV, 3733.0/133.32)

	// linear lymphatics
	chk.Scalar(tst, "QLF", 1e-15, sim.Prm.QLF, 1e-9*133.32*5e-5/1e-4)

	// boundary conditions
	if bc := sim.BcByVert(0); bc == nil || bc.Label != "DIR" || bc.Value != 4.0 {
		tst.Errorf("wrong bc at vertex 0: %v", bc)
		return
	}
	if bc := sim.BcByVert(1); bc != nil {
		tst.Errorf("vertex 1 must not carry a bc")
		return
	}
}
