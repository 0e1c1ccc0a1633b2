// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Vert holds a vertex of the 1D vessel network embedded in 3D space
type Vert struct {
	Id int       `json:"id"` // id
	C  []float64 `json:"c"`  // coordinates [3]
}

// Cell holds a 2-vertex line element of the vessel network.
// Each cell is tagged with the branch (mesh region) it belongs to.
type Cell struct {
	Id     int    `json:"id"`     // id
	V      [2]int `json:"v"`      // endpoint vertex ids, ordered along the branch
	Branch int    `json:"branch"` // branch region id
}

// Mesh holds the 1D vessel network mesh
type Mesh struct {

	// input
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // line elements, grouped by branch, ordered along each branch

	// derived
	NbBranches  int     // number of branches
	BranchCells [][]int // [nbranches] ordered cell ids of each branch
	BranchVerts [][]int // [nbranches] ordered vertex ids of each branch (ncells+1 per branch)
	Vert2cells  [][]int // [nverts] ids of cells touching each vertex
	Cell2branch []int   // [ncells] branch id of each cell; O(1) containment lookup
}

// ReadMsh reads the 1D network mesh from a JSON file and builds derived maps
func ReadMsh(dir, fn string) (m *Mesh, err error) {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read network mesh file %q:\n%v", fn, err)
	}

	// decode
	m = new(Mesh)
	err = json.Unmarshal(b, m)
	if err != nil {
		return nil, chk.Err("cannot unmarshal network mesh file %q:\n%v", fn, err)
	}

	// derive
	err = m.derive()
	if err != nil {
		return nil, chk.Err("network mesh %q is inconsistent:\n%v", fn, err)
	}
	return
}

// derive checks the mesh and computes the derived maps
func (o *Mesh) derive() (err error) {

	// basic checks
	if len(o.Verts) < 2 || len(o.Cells) < 1 {
		return chk.Err("mesh must have at least 2 vertices and 1 cell")
	}
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertex ids must be sequential: %d != %d", v.Id, i)
		}
		if len(v.C) != 3 {
			return chk.Err("vertex %d must have 3 coordinates", v.Id)
		}
	}

	// branch count and cell grouping
	o.NbBranches = 0
	o.Cell2branch = make([]int, len(o.Cells))
	for i, c := range o.Cells {
		if c.Id != i {
			return chk.Err("cell ids must be sequential: %d != %d", c.Id, i)
		}
		if c.V[0] == c.V[1] {
			return chk.Err("cell %d is degenerate", c.Id)
		}
		if c.Branch < o.NbBranches-1 {
			return chk.Err("cells must be grouped by ascending branch id; cell %d has branch %d", c.Id, c.Branch)
		}
		if c.Branch > o.NbBranches {
			return chk.Err("branch ids must be contiguous; cell %d jumps to branch %d", c.Id, c.Branch)
		}
		if c.Branch == o.NbBranches {
			o.NbBranches++
		}
		o.Cell2branch[i] = c.Branch
	}

	// cells per branch, in order
	o.BranchCells = make([][]int, o.NbBranches)
	for _, c := range o.Cells {
		o.BranchCells[c.Branch] = append(o.BranchCells[c.Branch], c.Id)
	}

	// ordered vertex runs per branch
	o.BranchVerts = make([][]int, o.NbBranches)
	for b, cids := range o.BranchCells {
		verts := []int{o.Cells[cids[0]].V[0]}
		for k, cid := range cids {
			c := o.Cells[cid]
			if k > 0 {
				prev := o.Cells[cids[k-1]]
				if c.V[0] != prev.V[1] {
					return chk.Err("cells of branch %d are not chained: cell %d starts at %d, previous ends at %d", b, c.Id, c.V[0], prev.V[1])
				}
			}
			verts = append(verts, c.V[1])
		}
		o.BranchVerts[b] = verts
	}

	// vertex adjacency
	o.Vert2cells = make([][]int, len(o.Verts))
	for _, c := range o.Cells {
		for _, v := range c.V {
			if v < 0 || v >= len(o.Verts) {
				return chk.Err("cell %d references unknown vertex %d", c.Id, v)
			}
			o.Vert2cells[v] = append(o.Vert2cells[v], c.Id)
		}
	}
	return
}

// VertDegree returns the number of cells touching vertex v
func (o *Mesh) VertDegree(v int) int { return len(o.Vert2cells[v]) }

// CellLen returns the length of cell with given id
func (o *Mesh) CellLen(id int) float64 {
	c := o.Cells[id]
	a, b := o.Verts[c.V[0]].C, o.Verts[c.V[1]].C
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	dz := b[2] - a[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Tangent returns the unit tangent versor of cell with given id
func (o *Mesh) Tangent(id int) (lx, ly, lz float64) {
	c := o.Cells[id]
	a, b := o.Verts[c.V[0]].C, o.Verts[c.V[1]].C
	l := o.CellLen(id)
	return (b[0] - a[0]) / l, (b[1] - a[1]) / l, (b[2] - a[2]) / l
}

// BranchNcells returns the number of cells in branch b
func (o *Mesh) BranchNcells(b int) int { return len(o.BranchCells[b]) }

// BranchNdofs returns the number of nodal (P1) dofs of branch b
func (o *Mesh) BranchNdofs(b int) int { return len(o.BranchCells[b]) + 1 }
