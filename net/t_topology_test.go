// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package net

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/lpossenti/haima/inp"
)

func init() {
	io.Verbose = false
}

func readYnet(tst *testing.T) (*inp.Mesh, *inp.Simulation) {
	msh, err := inp.ReadMsh("data", "ynet.msh")
	if err != nil {
		tst.Fatalf("cannot read mesh:\n%v", err)
	}
	sim := &inp.Simulation{
		Bcs: []inp.VesselBc{
			{Vert: 0, Label: "DIR", Value: 4.0, Hval: 0.45},
			{Vert: 2, Label: "DIR", Value: 1.5},
			{Vert: 3, Label: "DIR", Value: 1.0},
		},
	}
	return msh, sim
}

func Test_topo01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("topo01. Y-network classification")

	msh, sim := readYnet(tst)
	radius := make([]float64, len(msh.Cells))
	for i := range radius {
		radius[i] = 0.08
	}
	top := Build(msh, sim, radius)

	// dof layout: three branches with 3 nodal dofs each
	chk.Ints(tst, "offsets", top.Offsets, []int{0, 3, 6, 9})
	chk.IntAssert(top.NdofUv, 9)
	chk.IntAssert(top.FirstDof(1), 3)
	chk.IntAssert(top.LastDof(1), 5)

	// one junction at vertex 1 with three branch ends, one ending and
	// two starting
	chk.IntAssert(len(top.Junctions), 1)
	jn := top.Junctions[0]
	chk.IntAssert(jn.Vert, 1)
	chk.IntAssert(jn.Region, 4) // the inlet extremum takes the first free id
	chk.IntAssert(len(jn.Ends), 3)
	nend := 0
	for _, e := range jn.Ends {
		if e.Ending {
			nend++
		}
	}
	chk.IntAssert(nend, 1)
	chk.Scalar(tst, "junction value", 1e-15, jn.Value, 3*0.08)

	// three extrema, all with boundary conditions and fresh region ids
	chk.IntAssert(len(top.Extrema), 3)
	chk.IntAssert(top.Extrema[0].Region, 3) // inlet, visited first
	for _, ex := range top.Extrema {
		if ex.Bc == nil {
			tst.Errorf("extremum at vertex %d has no bc", ex.Vert)
			return
		}
		r, ok := top.Regions.Region(ex.Vert)
		if !ok || r != ex.Region {
			tst.Errorf("region lookup failed at vertex %d: %d %v", ex.Vert, r, ok)
			return
		}
	}

	// region map round trip
	r, ok := top.Regions.Region(1)
	if !ok || r != 4 {
		tst.Errorf("region lookup failed: %d %v", r, ok)
		return
	}
	v, ok := top.Regions.Vert(4)
	if !ok || v != 1 {
		tst.Errorf("vertex lookup failed: %d %v", v, ok)
		return
	}
	chk.IntAssert(top.Regions.Len(), 4)

	// junction end dofs: ending branch exposes its last dof
	for _, e := range jn.Ends {
		if e.Ending {
			chk.IntAssert(top.EndDof(e), top.LastDof(e.Branch))
		} else {
			chk.IntAssert(top.EndDof(e), top.FirstDof(e.Branch))
		}
	}
}

func Test_topo02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("topo02. missing boundary condition is fatal")

	msh, sim := readYnet(tst)
	sim.Bcs = sim.Bcs[:2] // drop the bc at vertex 3
	radius := make([]float64, len(msh.Cells))

	defer func() {
		if recover() == nil {
			tst.Errorf("Build must panic on an extremum without bc")
		}
	}()
	Build(msh, sim, radius)
}

func Test_topo03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("topo03. straight branch: two boundary regions, no junction")

	msh, err := inp.ReadMsh("data", "straight.msh")
	if err != nil {
		tst.Fatalf("cannot read mesh:\n%v", err)
	}
	sim := &inp.Simulation{
		Bcs: []inp.VesselBc{
			{Vert: 0, Label: "DIR", Value: 2.0, Hval: 0.45},
			{Vert: 2, Label: "DIR", Value: 1.0},
		},
	}
	radius := make([]float64, len(msh.Cells))
	top := Build(msh, sim, radius)

	chk.IntAssert(len(top.Junctions), 0)
	chk.IntAssert(len(top.Extrema), 2)
	chk.IntAssert(top.Regions.Len(), 2)

	// both boundary vertices receive a fresh region id after the single
	// branch region
	chk.IntAssert(top.Extrema[0].Vert, 0)
	chk.IntAssert(top.Extrema[0].Region, 1)
	chk.IntAssert(top.Extrema[1].Vert, 2)
	chk.IntAssert(top.Extrema[1].Region, 2)
}
