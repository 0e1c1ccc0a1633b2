// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/lpossenti/haima/fem"
	"github.com/lpossenti/haima/inp"
	"github.com/lpossenti/haima/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nHaima -- coupled microvascular flow and hematocrit transport\n")
		io.Pf("Copyright 2017 The Haima Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
		))
	}

	// read simulation and build domain
	sim := inp.ReadSim(fnamepath, erasePrev, true)
	sim.Solver.ShowRes = sim.Solver.ShowRes || verbose
	dom := fem.NewDomain(sim)
	defer dom.Free()

	// run fixed-point iteration
	res := dom.Solve(out.Save(sim.DirOut, sim.Data.VtkOut))

	// report
	out.WriteResiduals(sim.DirOut, res.History)
	if err := out.PlotResiduals(sim.DirOut, res.History); err != nil {
		io.Pfred("warning: %v\n", err)
	}
	if verbose {
		io.Pf("\nstatus    = %v after %d iterations\n", res.Status, res.It)
		io.Pf("TFR       = %13.6e\n", res.TFR)
		io.Pf("FR lymph  = %13.6e\n", res.FRLymph)
		io.Pf("FR cube   = %13.6e\n", res.FRCube)
		io.Pf("max |u|   = %13.6e\n", dom.MaxVelocity())
		io.Pf("results saved in %s\n", sim.DirOut)
	}
}
