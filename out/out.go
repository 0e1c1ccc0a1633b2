// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out writes the result artifacts of a run: the residual
// history table, legacy-VTK field dumps of the network and tissue
// fields and a residual-history plot
package out

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/lpossenti/haima/fem"
)

// WriteResiduals writes the residual history table (Residuals.txt)
func WriteResiduals(dirout string, hist []fem.ResRow) {
	s := "Iteration\tSolution Residual\tMass Conservation Residual\tHematocrit Residual\n"
	for _, r := range hist {
		s += io.Sf("%d\t%e\t%e\t%e\n", r.It, r.ResSol, r.ResCM, r.ResH)
	}
	io.WriteFileSD(dirout, "Residuals.txt", s)
}

// WriteVtkNetwork dumps the vessel network fields at iteration it as a
// legacy-VTK polydata file: vessel pressure per point; hematocrit,
// viscosity, deformed radius and area, and wall exchange flow rate per
// cell
func WriteVtkNetwork(dom *fem.Domain, dirout string, it int) {

	msh := dom.Msh
	prm := &dom.Sim.Prm

	s := "# vtk DataFile Version 3.0\n"
	s += io.Sf("vessel network, iteration %d\n", it)
	s += "ASCII\nDATASET POLYDATA\n"

	// points
	s += io.Sf("POINTS %d double\n", len(msh.Verts))
	for _, v := range msh.Verts {
		s += io.Sf("%g %g %g\n", v.C[0], v.C[1], v.C[2])
	}

	// lines
	s += io.Sf("LINES %d %d\n", len(msh.Cells), 3*len(msh.Cells))
	for _, c := range msh.Cells {
		s += io.Sf("2 %d %d\n", c.V[0], c.V[1])
	}

	// vessel pressure per point
	s += io.Sf("POINT_DATA %d\n", len(msh.Verts))
	s += "SCALARS Pv double 1\nLOOKUP_TABLE default\n"
	for v := range msh.Verts {
		s += io.Sf("%g\n", dom.U[dom.PvDof(v)])
	}

	// per-cell fields
	s += io.Sf("CELL_DATA %d\n", len(msh.Cells))
	s += "SCALARS Ht double 1\nLOOKUP_TABLE default\n"
	for b := 0; b < msh.NbBranches; b++ {
		for k := range msh.BranchCells[b] {
			s += io.Sf("%g\n", dom.CellH(b, k))
		}
	}
	s += "SCALARS MU double 1\nLOOKUP_TABLE default\n"
	for _, c := range msh.Cells {
		s += io.Sf("%g\n", dom.Geo.Mu[c.Id])
	}
	s += "SCALARS Radius double 1\nLOOKUP_TABLE default\n"
	for _, c := range msh.Cells {
		s += io.Sf("%g\n", dom.Geo.Wall[c.Id].R)
	}
	s += "SCALARS Area double 1\nLOOKUP_TABLE default\n"
	for _, c := range msh.Cells {
		s += io.Sf("%g\n", dom.Geo.Wall[c.Id].Area)
	}
	s += "SCALARS ExchangeFlowRate double 1\nLOOKUP_TABLE default\n"
	for _, c := range msh.Cells {
		w := dom.Geo.Wall[c.Id].Per * prm.LpScaled[c.Id] * msh.CellLen(c.Id) / 2.0
		σΔπ := prm.Sigma[c.Id] * (prm.PiV - prm.PiT)
		fr := 0.0
		for e := 0; e < 2; e++ {
			vx := msh.Verts[c.V[e]].C
			pt := dom.TissueAt(vx[0], vx[1], vx[2])
			fr += w * (dom.U[dom.PvDof(c.V[e])] - pt - σΔπ)
		}
		s += io.Sf("%g\n", fr)
	}

	io.WriteFileSD(dirout, io.Sf("network_%06d.vtk", it), s)
}

// WriteVtkTissue dumps the tissue pressure field at iteration it as a
// legacy-VTK structured-points file
func WriteVtkTissue(dom *fem.Domain, dirout string, it int) {

	g := dom.Grd
	s := "# vtk DataFile Version 3.0\n"
	s += io.Sf("tissue interstitium, iteration %d\n", it)
	s += "ASCII\nDATASET STRUCTURED_POINTS\n"
	s += io.Sf("DIMENSIONS %d %d %d\n", g.Nn[0], g.Nn[1], g.Nn[2])
	s += "ORIGIN 0 0 0\n"
	s += io.Sf("SPACING %g %g %g\n", g.H[0], g.H[1], g.H[2])
	s += io.Sf("POINT_DATA %d\n", g.Nnod)
	s += "SCALARS Pt double 1\nLOOKUP_TABLE default\n"
	for t := 0; t < g.Nnod; t++ {
		s += io.Sf("%g\n", dom.U[t])
	}

	io.WriteFileSD(dirout, io.Sf("tissue_%06d.vtk", it), s)
}

// PlotResiduals saves the residual-history plot (log y-axis).
// Nonpositive residuals are skipped.
func PlotResiduals(dirout string, hist []fem.ResRow) (err error) {

	pick := func(get func(r fem.ResRow) float64) plotter.XYs {
		var xys plotter.XYs
		for _, r := range hist {
			if v := get(r); v > 0 {
				xys = append(xys, plotter.XY{X: float64(r.It), Y: v})
			}
		}
		return xys
	}

	p := plot.New()
	p.Title.Text = "residual history"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "residual"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	err = plotutil.AddLines(p,
		"solution", pick(func(r fem.ResRow) float64 { return r.ResSol }),
		"mass conservation", pick(func(r fem.ResRow) float64 { return r.ResCM }),
		"hematocrit", pick(func(r fem.ResRow) float64 { return r.ResH }),
	)
	if err != nil {
		return chk.Err("cannot build residual plot:\n%v", err)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filepath.Join(dirout, "residuals.png"))
}

// Save returns a SaveFunc dumping the network and tissue fields into
// dirout, honouring the vtkout switch
func Save(dirout string, vtk bool) fem.SaveFunc {
	return func(dom *fem.Domain, it int) {
		if vtk {
			WriteVtkNetwork(dom, dirout, it)
			WriteVtkTissue(dom, dirout, it)
		}
	}
}
