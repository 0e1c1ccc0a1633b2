// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/lpossenti/haima/mdl/compliance"
)

// drives the wall compliance law over a transmural pressure sweep and
// plots the deformed radius and conductance across the three regimes
func main() {

	// input
	r0 := io.ArgToFloat(0, 0.08)     // reference radius
	ratio := io.ArgToFloat(1, 0.05)  // thickness over radius
	estar := io.ArgToFloat(2, 75.0)  // dimensionless Young modulus
	pmax := io.ArgToFloat(3, 40.0)   // largest transmural pressure magnitude
	dirout := "/tmp/haima/walldriver"
	if err := os.MkdirAll(dirout, 0777); err != nil {
		chk.Panic("cannot create output directory: %v", err)
	}

	io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"reference radius", "r0", r0,
		"thickness ratio", "ratio", ratio,
		"dimensionless Young modulus", "estar", estar,
		"pressure sweep amplitude", "pmax", pmax,
	))

	// model
	mdl := new(compliance.Model)
	err := mdl.Init([]*fun.Prm{
		&fun.Prm{N: "nu", V: 0.5},
		&fun.Prm{N: "gamma", V: 2},
		&fun.Prm{N: "scale", V: 1},
	})
	if err != nil {
		chk.Panic("cannot initialise wall model:\n%v", err)
	}

	// sweep: the vessel pressure runs from -pmax to +pmax with the
	// external pressure held at zero
	n := 401
	h := ratio * r0
	var radii, conds plotter.XYs
	last := compliance.ThickWalled
	for i := 0; i < n; i++ {
		pv := -pmax + 2.0*pmax*float64(i)/float64(n-1)
		s := mdl.Eval(r0, h, estar, 0, pv, 0)
		Δp := -pv
		radii = append(radii, plotter.XY{X: Δp, Y: s.R / r0})
		conds = append(conds, plotter.XY{X: Δp, Y: s.Cond})
		if i == 0 || s.Regime != last {
			io.Pf("%12s at Δp = %g\n", s.Regime, Δp)
			last = s.Regime
		}
	}

	// plots
	p := plot.New()
	p.Title.Text = "wall compliance law"
	p.X.Label.Text = "transmural pressure"
	p.Y.Label.Text = "R/R0"
	if err = plotutil.AddLines(p, "radius", radii); err != nil {
		chk.Panic("cannot build radius plot:\n%v", err)
	}
	if err = p.Save(6*vg.Inch, 4*vg.Inch, filepath.Join(dirout, "radius.png")); err != nil {
		chk.Panic("cannot save radius plot:\n%v", err)
	}

	p = plot.New()
	p.Title.Text = "wall compliance law"
	p.X.Label.Text = "transmural pressure"
	p.Y.Label.Text = "conductance"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	if err = plotutil.AddLines(p, "conductance", conds); err != nil {
		chk.Panic("cannot build conductance plot:\n%v", err)
	}
	if err = p.Save(6*vg.Inch, 4*vg.Inch, filepath.Join(dirout, "conductance.png")); err != nil {
		chk.Panic("cannot save conductance plot:\n%v", err)
	}
	io.Pf("figures saved in %s\n", dirout)
}
