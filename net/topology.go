// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package net classifies the vertices of the 1D vessel network and
// builds the junction and boundary records used by the assembler
package net

import (
	"github.com/cpmech/gosl/chk"

	"github.com/lpossenti/haima/inp"
)

// BranchEnd records one branch terminating at a junction. Ending
// means the branch's last vertex sits at the junction; a branch that
// starts there has Ending == false.
type BranchEnd struct {
	Branch int  // branch id
	Ending bool // branch's last vertex is the junction vertex
}

// Junction holds a network junction: the meeting point of two or more
// branches. Trivial junctions (two branches meeting end to end) are
// included as well.
type Junction struct {
	Vert   int         // vertex id
	Region int         // allocated region id
	Ends   []BranchEnd // incident branch ends, in visiting order
	Value  float64     // sum of the radii of the incident branches
}

// Extremum holds an extremal vertex of the network (degree 1). Every
// extremum must carry a boundary condition.
type Extremum struct {
	Vert    int           // vertex id
	Region  int           // allocated region id
	Branch  int           // branch id
	AtStart bool          // vertex is the branch's first vertex
	Bc      *inp.VesselBc // boundary condition (never nil)
}

// Topology holds the classified network: branch dof layout, junction
// records, extrema and the region map. It is built once per run and
// read-only afterwards.
type Topology struct {
	Msh       *inp.Mesh
	Offsets   []int       // [nbranches+1] prefix sums of per-branch nodal dof counts
	NdofUv    int         // total number of per-branch nodal dofs
	Junctions []*Junction // junctions, in visiting order
	Extrema   []*Extremum // extremal vertices, in visiting order
	Regions   *RegionMap  // boundary and junction vertices <=> region ids
}

// Build classifies every vertex of the network. Each cell is visited
// once and both endpoints are classified by vertex degree; junctions
// are deduplicated through a seen-set. The per-cell radius field
// provides the junction Value accumulation. Panics on an extremum
// without a registered boundary condition and on a branch crossing a
// junction without terminating there.
func Build(msh *inp.Mesh, sim *inp.Simulation, radius []float64) (o *Topology) {

	o = new(Topology)
	o.Msh = msh
	o.Regions = NewRegionMap(msh.NbBranches)

	// branch dof layout
	o.Offsets = make([]int, msh.NbBranches+1)
	for b := 0; b < msh.NbBranches; b++ {
		o.Offsets[b+1] = o.Offsets[b] + msh.BranchNdofs(b)
	}
	o.NdofUv = o.Offsets[msh.NbBranches]

	// classify endpoints, visiting each cell once
	seen := make(map[int]bool) // junction vertices already recorded
	for _, c := range msh.Cells {
		for k := 0; k < 2; k++ {
			v := c.V[k]
			switch deg := msh.VertDegree(v); {

			// extremum: boundary condition is mandatory
			case deg == 1:
				bc := sim.BcByVert(v)
				if bc == nil {
					chk.Panic("extremal vertex %d of branch %d carries no boundary condition", v, c.Branch)
				}
				o.Extrema = append(o.Extrema, &Extremum{
					Vert:    v,
					Region:  o.Regions.Alloc(v),
					Branch:  c.Branch,
					AtStart: k == 0,
					Bc:      bc,
				})

			// interior vertex of a branch, or a trivial junction
			case deg == 2:
				ca, cb := msh.Cells[msh.Vert2cells[v][0]], msh.Cells[msh.Vert2cells[v][1]]
				if ca.Branch == cb.Branch {
					continue // same branch: nothing to record
				}
				if seen[v] {
					continue
				}
				seen[v] = true
				o.addJunction(v, radius)

			// proper junction
			default:
				if seen[v] {
					continue
				}
				seen[v] = true
				o.addJunction(v, radius)
			}
		}
	}
	return
}

// addJunction records the junction at vertex v, allocating its region
// id and collecting the signed branch ends
func (o *Topology) addJunction(v int, radius []float64) {
	msh := o.Msh
	jn := &Junction{Vert: v, Region: o.Regions.Alloc(v)}
	visited := make(map[int]bool) // branches already attached to this junction
	for _, cid := range msh.Vert2cells[v] {
		c := msh.Cells[cid]
		b := c.Branch
		if visited[b] {
			chk.Panic("branch %d crosses the junction at vertex %d without terminating there", b, v)
		}
		visited[b] = true
		first := msh.BranchCells[b][0]
		last := msh.BranchCells[b][len(msh.BranchCells[b])-1]
		switch {
		case cid == last && c.V[1] == v:
			jn.Ends = append(jn.Ends, BranchEnd{Branch: b, Ending: true})
		case cid == first && c.V[0] == v:
			jn.Ends = append(jn.Ends, BranchEnd{Branch: b, Ending: false})
		default:
			chk.Panic("branch %d crosses the junction at vertex %d without terminating there", b, v)
		}
		jn.Value += radius[cid]
	}
	o.Junctions = append(o.Junctions, jn)
}

// FirstDof returns the global index (within the Uv block) of the first
// nodal dof of branch b
func (o *Topology) FirstDof(b int) int { return o.Offsets[b] }

// LastDof returns the global index (within the Uv block) of the last
// nodal dof of branch b
func (o *Topology) LastDof(b int) int { return o.Offsets[b+1] - 1 }

// EndDof returns the Uv-block dof of branch end e
func (o *Topology) EndDof(e BranchEnd) int {
	if e.Ending {
		return o.LastDof(e.Branch)
	}
	return o.FirstDof(e.Branch)
}

// EndCell returns the cell of branch end e adjacent to the junction
func (o *Topology) EndCell(e BranchEnd) int {
	cells := o.Msh.BranchCells[e.Branch]
	if e.Ending {
		return cells[len(cells)-1]
	}
	return cells[0]
}

// CellDofs returns the two Uv-block dofs of the k-th cell of branch b
func (o *Topology) CellDofs(b, k int) (d0, d1 int) {
	return o.Offsets[b] + k, o.Offsets[b] + k + 1
}
