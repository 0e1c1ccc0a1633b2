// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the monolithic assembly and the fixed-point
// solution of the coupled tissue/vessel flow and hematocrit transport
// problem
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"

	"github.com/lpossenti/haima/inp"
	"github.com/lpossenti/haima/mdl/compliance"
	"github.com/lpossenti/haima/mdl/lymph"
	"github.com/lpossenti/haima/mdl/viscosity"
	"github.com/lpossenti/haima/net"
	"github.com/lpossenti/haima/tissue"
)

// vertex kinds of the mass-conservation rows
const (
	vertInterior = iota // plain branch-interior vertex
	vertJunction        // junction vertex (flux-balance row)
	vertExtremum        // extremal vertex (boundary-condition row)
)

// GeometryState holds the per-element deformed geometry and effective
// viscosity of the vessel network, indexed by cell id
type GeometryState struct {
	Wall []compliance.State // [ncells] deformed wall state
	Mu   []float64          // [ncells] effective viscosity
}

// Domain holds the coupled problem: dof layout, models, solution
// vectors and assembly buffers
type Domain struct {

	// input
	Sim *inp.Simulation // simulation data
	Msh *inp.Mesh       // network mesh
	Top *net.Topology   // classified network
	Grd *tissue.Grid    // tissue grid

	// models
	Wall  *compliance.Model // wall mechanics
	Visco viscosity.Model   // blood viscosity
	Lymph lymph.Model       // lymphatic drainage

	// dof layout: flow unknowns ordered [Pt | Uv | Pv]
	Npt   int // number of tissue pressure dofs
	Nuv   int // number of per-branch vessel velocity dofs
	Npv   int // number of vessel pressure dofs (one per vertex)
	Nflow int // total number of flow unknowns
	OffUv int // offset of the Uv block
	OffPv int // offset of the Pv block

	// solution
	U   []float64      // [Nflow] flow unknowns
	H   []float64      // [Nuv] discharge hematocrit, on the Uv dofs
	Geo *GeometryState // per-element geometry and viscosity

	// assembly buffers
	Kb     *la.Triplet // flow system matrix
	Fb     []float64   // flow system rhs
	Kh     *la.Triplet // hematocrit system matrix
	Fh     []float64   // hematocrit system rhs
	cblock *block      // constant entries of the flow matrix
	crhs   []float64   // constant entries of the flow rhs
	dirPv  []bool      // [nverts] vertex holds a Dirichlet pressure row
	vkind  []int       // [nverts] vertex kind for the mass-conservation rows

	// linear solvers
	lsFlow la.LinSol // flow system solver
	lsHt   la.LinSol // hematocrit system solver
	iniFlw bool      // flow solver initialised
	iniHt  bool      // hematocrit solver initialised
}

// block records matrix entries once so they can be replayed into the
// triplet at every iteration without being recomputed
type block struct {
	i, j []int
	v    []float64
}

// Put records one entry
func (o *block) Put(i, j int, x float64) {
	o.i = append(o.i, i)
	o.j = append(o.j, j)
	o.v = append(o.v, x)
}

// Replay copies all recorded entries into T
func (o *block) Replay(T *la.Triplet) {
	for k := range o.v {
		T.Put(o.i[k], o.j[k], o.v[k])
	}
}

// NewDomain builds the coupled domain: network topology, tissue grid,
// constitutive models, dof layout and buffers
func NewDomain(sim *inp.Simulation) (o *Domain) {

	o = new(Domain)
	o.Sim = sim
	o.Msh = sim.Msh

	// topology and tissue grid
	o.Top = net.Build(o.Msh, sim, sim.Prm.Radius)
	o.Grd = tissue.NewGrid(sim.Grid.N, sim.Grid.L)

	// wall mechanics
	p := &sim.Phys
	o.Wall = new(compliance.Model)
	err := o.Wall.Init([]*fun.Prm{
		&fun.Prm{N: "nu", V: p.Nu},
		&fun.Prm{N: "gamma", V: p.Gamma},
		&fun.Prm{N: "scale", V: p.U / (p.P * p.D)},
	})
	if err != nil {
		chk.Panic("cannot initialise wall model:\n%v", err)
	}

	// viscosity
	law := p.ViscoLaw
	if law == "" {
		law = "cte"
	}
	o.Visco, err = viscosity.New(law)
	if err != nil {
		chk.Panic("cannot allocate viscosity law:\n%v", err)
	}
	switch law {
	case "cte":
		err = o.Visco.Init([]*fun.Prm{&fun.Prm{N: "mu", V: p.MuV}})
	default:
		err = o.Visco.Init([]*fun.Prm{
			&fun.Prm{N: "muplasma", V: p.MuPlasma},
			&fun.Prm{N: "d", V: p.D},
		})
	}
	if err != nil {
		chk.Panic("cannot initialise viscosity law:\n%v", err)
	}

	// lymphatic drainage
	if p.LinearLymph {
		o.Lymph, err = lymph.New("lin")
		if err == nil {
			err = o.Lymph.Init([]*fun.Prm{
				&fun.Prm{N: "qlf", V: sim.Prm.QLF},
				&fun.Prm{N: "pl", V: sim.PL()},
			})
		}
	} else {
		o.Lymph, err = lymph.New("sigmoid")
		if err == nil {
			err = o.Lymph.Init([]*fun.Prm{
				&fun.Prm{N: "a", V: sim.Prm.QLFA},
				&fun.Prm{N: "b", V: sim.Prm.QLFB},
				&fun.Prm{N: "c", V: sim.Prm.QLFC},
				&fun.Prm{N: "d", V: sim.Prm.QLFD},
			})
		}
	}
	if err != nil {
		chk.Panic("cannot initialise lymphatic drainage law:\n%v", err)
	}

	// dof layout
	o.Npt = o.Grd.Nnod
	o.Nuv = o.Top.NdofUv
	o.Npv = len(o.Msh.Verts)
	o.Nflow = o.Npt + o.Nuv + o.Npv
	o.OffUv = o.Npt
	o.OffPv = o.Npt + o.Nuv

	// vertex classification for the mass-conservation rows: plain
	// branch-interior vertices carry the weak d(area·u)/ds equation,
	// junction vertices carry the flux balance, extremal vertices
	// carry their boundary condition
	o.dirPv = make([]bool, o.Npv)
	o.vkind = make([]int, o.Npv)
	for _, jn := range o.Top.Junctions {
		o.vkind[jn.Vert] = vertJunction
	}
	for _, ex := range o.Top.Extrema {
		o.vkind[ex.Vert] = vertExtremum
		if ex.Bc.Label == "DIR" {
			o.dirPv[ex.Vert] = true
		}
	}

	// solution vectors
	o.U = make([]float64, o.Nflow)
	o.H = make([]float64, o.Nuv)
	la.VecFill(o.H, sim.Solver.HStart)
	ncells := len(o.Msh.Cells)
	o.Geo = &GeometryState{
		Wall: make([]compliance.State, ncells),
		Mu:   make([]float64, ncells),
	}

	// assembly buffers
	nnz := o.Grd.NnzStencil() + 300*ncells + 16*o.Npv
	o.Kb = new(la.Triplet)
	o.Kb.Init(o.Nflow, o.Nflow, nnz)
	o.Fb = make([]float64, o.Nflow)
	o.Kh = new(la.Triplet)
	o.Kh.Init(o.Nuv, o.Nuv, 30*ncells)
	o.Fh = make([]float64, o.Nuv)
	o.crhs = make([]float64, o.Nflow)

	// constant blocks and reference geometry
	o.assembleConstant()
	o.UpdateGeometry()
	return
}

// PvDof returns the flow-vector index of the vessel pressure at vertex v
func (o *Domain) PvDof(v int) int { return o.OffPv + v }

// UvDof returns the flow-vector index of the Uv-block dof d
func (o *Domain) UvDof(d int) int { return o.OffUv + d }

// CellH returns the hematocrit at the midpoint of the k-th cell of branch b
func (o *Domain) CellH(b, k int) float64 {
	d0, d1 := o.Top.CellDofs(b, k)
	return 0.5 * (o.H[d0] + o.H[d1])
}

// CellU returns the velocity at the midpoint of the k-th cell of branch b
func (o *Domain) CellU(b, k int) float64 {
	d0, d1 := o.Top.CellDofs(b, k)
	return 0.5 * (o.U[o.UvDof(d0)] + o.U[o.UvDof(d1)])
}

// CellMid returns the midpoint coordinates of cell with id cid
func (o *Domain) CellMid(cid int) (x, y, z float64) {
	c := o.Msh.Cells[cid]
	a, b := o.Msh.Verts[c.V[0]].C, o.Msh.Verts[c.V[1]].C
	return 0.5 * (a[0] + b[0]), 0.5 * (a[1] + b[1]), 0.5 * (a[2] + b[2])
}

// TissueAt interpolates the tissue pressure of the current solution at
// point (x,y,z)
func (o *Domain) TissueAt(x, y, z float64) float64 {
	nodes, w := o.Grd.InterpWeights(x, y, z)
	pt := 0.0
	for n := range nodes {
		pt += w[n] * o.U[nodes[n]]
	}
	return pt
}

// UpdateGeometry recomputes the per-element wall state and effective
// viscosity from the current solution. With rigid walls the reference
// geometry is kept and only the viscosity is refreshed.
func (o *Domain) UpdateGeometry() {
	prm := &o.Sim.Prm
	for b := 0; b < o.Msh.NbBranches; b++ {
		for k, cid := range o.Msh.BranchCells[b] {
			c := o.Msh.Cells[cid]

			// wall state
			if o.Sim.Phys.Compliant {
				x, y, z := o.CellMid(cid)
				pext := o.TissueAt(x, y, z) + prm.Pext
				pv := 0.5 * (o.U[o.PvDof(c.V[0])] + o.U[o.PvDof(c.V[1])])
				o.Geo.Wall[cid] = o.Wall.Eval(prm.Radius[cid], prm.Thick[cid], prm.Estar[cid], prm.Curve[cid], pv, pext)
			} else {
				o.Geo.Wall[cid] = o.Wall.Rigid(prm.Radius[cid], prm.Curve[cid])
			}

			// effective viscosity
			o.Geo.Mu[cid] = o.Visco.Mu(o.CellH(b, k), o.Geo.Wall[cid].R)
		}
	}
}

// Free releases the linear solvers
func (o *Domain) Free() {
	if o.iniFlw {
		o.lsFlow.Free()
	}
	if o.iniHt {
		o.lsHt.Free()
	}
}
