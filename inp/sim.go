// Copyright 2017 The Haima Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Mshfile string `json:"mshfile"` // file path of file with network mesh data
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/haima
	VtkOut  bool   `json:"vtkout"`  // write VTK field dumps
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name      string `json:"name"`      // "mumps" or "umfpack"
	Symmetric bool   `json:"symmetric"` // use symmetric solver
	Verbose   bool   `json:"verbose"`   // verbose?
	Timing    bool   `json:"timing"`    // show timing statistics
}

// SetDefault sets default values
func (o *LinSolData) SetDefault() {
	o.Name = "umfpack"
}

// SolverData holds fixed-point solver data
type SolverData struct {

	// fixed-point iteration
	MaxIt  int     `json:"maxit"`  // max number of fixed-point iterations
	SaveIt int     `json:"saveit"` // save fields every SaveIt iterations
	EpsSol float64 `json:"epssol"` // tolerance on solution residual
	EpsCM  float64 `json:"epscm"`  // tolerance on mass-conservation residual
	EpsH   float64 `json:"epsh"`   // tolerance on hematocrit residual
	Alpha  float64 `json:"alpha"`  // under-relaxation factor for flow unknowns
	AlphaH float64 `json:"alphah"` // under-relaxation factor for hematocrit

	// hematocrit transport
	Theta  float64 `json:"theta"`  // artificial diffusivity factor
	BetaH  float64 `json:"betah"`  // inflow Robin coefficient
	HStart float64 `json:"hstart"` // uniform initial hematocrit guess

	// output
	ShowRes bool `json:"showres"` // show residuals at every iteration
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.MaxIt = 100
	o.SaveIt = 10
	o.EpsSol = 1e-10
	o.EpsCM = 1e-4
	o.EpsH = 1e-8
	o.Alpha = 1
	o.AlphaH = 1
	o.Theta = 1
	o.BetaH = 1e+6
	o.HStart = 0.45
}

// PhysData holds the dimensional physical data of the problem.
// All quantities are given in SI units; the dimensionless groups
// used by the solver are derived in BuildParam.
type PhysData struct {

	// characteristic scales
	P float64 `json:"p"` // characteristic pressure
	U float64 `json:"u"` // characteristic velocity
	D float64 `json:"d"` // characteristic length

	// tissue and blood
	K        float64 `json:"k"`        // tissue hydraulic permeability
	MuT      float64 `json:"mut"`      // interstitial fluid viscosity
	MuV      float64 `json:"muv"`      // blood viscosity (rigid/reference)
	MuPlasma float64 `json:"muplasma"` // plasma viscosity
	ViscoLaw string  `json:"viscolaw"` // hematocrit-dependent viscosity law: "vivo", "vitro" or "" (constant)

	// vessel wall
	Lp     float64 `json:"lp"`     // wall hydraulic conductivity
	Sigma  float64 `json:"sigma"`  // oncotic reflection coefficient
	PiT    float64 `json:"pit"`    // tissue oncotic pressure
	PiV    float64 `json:"piv"`    // vessel oncotic pressure
	Radius float64 `json:"radius"` // reference vessel radius (used when no import file is given)

	// compliance
	Compliant bool    `json:"compliant"` // vessel walls deform with transmural pressure
	E         float64 `json:"e"`         // wall Young modulus
	Nu        float64 `json:"nu"`        // wall Poisson coefficient
	Thickness float64 `json:"thickness"` // wall thickness (used when no import file is given; 0 => 0.2·R)
	Pext      float64 `json:"pext"`      // external (interstitial reference) pressure for the wall law

	// velocity profile
	Gamma float64 `json:"gamma"` // velocity profile order; 2 => Poiseuille

	// lymphatic drainage
	LinearLymph bool    `json:"linearlymph"` // linear drainage law (otherwise sigmoid)
	LpLF        float64 `json:"lplf"`        // lymphatic conductivity (linear law)
	PL          float64 `json:"pl"`          // lymphatic pressure (linear law)
	ALF         float64 `json:"alf"`         // sigmoid coefficient A
	BLF         float64 `json:"blf"`         // sigmoid coefficient B
	CLF         float64 `json:"clf"`         // sigmoid coefficient C
	DLF         float64 `json:"dlf"`         // sigmoid coefficient D
}

// SetDefault sets default values
func (o *PhysData) SetDefault() {
	o.Gamma = 2
	o.Nu = 0.5
	o.ViscoLaw = ""
	o.LinearLymph = true
}

// ImportData holds file paths of optional per-dof data imports.
// An empty path means the analytic default is used instead.
type ImportData struct {
	Radius    string `json:"radius"`    // per-dof vessel radius
	Thickness string `json:"thickness"` // per-dof wall thickness
	Young     string `json:"young"`     // per-dof wall Young modulus
	Lp        string `json:"lp"`        // per-dof wall hydraulic conductivity
	Sigma     string `json:"sigma"`     // per-dof reflection coefficient
	Curve     string `json:"curve"`     // per-dof centreline curvature
}

// VesselBc holds a boundary condition at an extremal vertex of the network
type VesselBc struct {
	Vert  int     `json:"vert"`  // vertex id
	Label string  `json:"label"` // "DIR" (pressure) or "MIX" (far-field)
	Value float64 `json:"value"` // pressure value (dimensionless)
	Beta  float64 `json:"beta"`  // far-field coefficient (MIX only)
	Hval  float64 `json:"hval"`  // inflow discharge hematocrit
}

// GridData holds the uniform tissue grid definition
type GridData struct {
	N [3]int     `json:"n"` // number of cells along x,y,z
	L [3]float64 `json:"l"` // domain side lengths (dimensionless)
}

// SetDefault sets default values
func (o *GridData) SetDefault() {
	o.N = [3]int{10, 10, 10}
	o.L = [3]float64{1, 1, 1}
}

// Param holds the dimensionless parameter fields used by the solver.
// Per-dof fields are aligned to the coefficient-dof (cell) ordering.
type Param struct {
	Kt       float64   // tissue conductivity
	Kv       []float64 // [ncells] vessel conductivity (rigid Poiseuille)
	Q        []float64 // [ncells] wall conductivity (reference perimeter folded in)
	LpScaled []float64 // [ncells] wall conductivity per unit perimeter, Lp·P/U
	Radius   []float64 // [ncells] vessel radius
	Thick    []float64 // [ncells] wall thickness
	Estar    []float64 // [ncells] dimensionless Young modulus E/P
	Sigma    []float64 // [ncells] reflection coefficient
	Curve    []float64 // [ncells] centreline curvature
	PiT      float64   // dimensionless tissue oncotic pressure
	PiV      float64   // dimensionless vessel oncotic pressure
	Pext     float64   // dimensionless external pressure
	QLF      float64   // linear lymphatic conductivity
	QLFA     float64   // sigmoid lymphatic A
	QLFB     float64   // sigmoid lymphatic B
	QLFC     float64   // sigmoid lymphatic C
	QLFD     float64   // sigmoid lymphatic D
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data   Data       `json:"data"`   // global simulation data
	LinSol LinSolData `json:"linsol"` // linear solver data
	Solver SolverData `json:"solver"` // fixed-point solver data
	Phys   PhysData   `json:"phys"`   // physical data
	Import ImportData `json:"import"` // optional per-dof data imports
	Bcs    []VesselBc `json:"bcs"`    // network boundary conditions
	Grid   GridData   `json:"grid"`   // tissue grid

	// derived
	DirOut string // directory to save results
	Key    string // simulation key; e.g. mysim01.sim => mysim01
	Msh    *Mesh  // the network mesh
	Prm    Param  // dimensionless parameter fields
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string, erasePrev, createDirOut bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Solver.SetDefault()
	o.LinSol.SetDefault()
	o.Phys.SetDefault()
	o.Grid.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	o.Key = io.FnKey(fn)

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/haima/" + o.Key
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// read network mesh
	o.Msh, err = ReadMsh(dir, o.Data.Mshfile)
	if err != nil {
		chk.Panic("ReadSim: cannot read mesh file:\n%v", err)
	}

	// dimensionless parameter fields
	o.BuildParam(dir)
	return &o
}

// BuildParam imports the per-dof data fields and derives the
// dimensionless parameter groups used by the solver
func (o *Simulation) BuildParam(dir string) {

	// scales
	p := &o.Phys
	if p.P <= 0 || p.U <= 0 || p.D <= 0 {
		chk.Panic("characteristic scales P, U, d must be positive: P=%g U=%g d=%g", p.P, p.U, p.D)
	}

	// per-dof imports; radius first since the remaining defaults depend on it
	n := len(o.Msh.Cells)
	join := func(fn string) string {
		if fn == "" {
			return ""
		}
		return filepath.Join(dir, fn)
	}
	o.Prm.Radius = ImportOrDefault(join(o.Import.Radius), "vessel radius", n, func(i int) float64 {
		return p.Radius / p.D
	})
	o.Prm.Thick = ImportOrDefault(join(o.Import.Thickness), "wall thickness", n, func(i int) float64 {
		if p.Thickness > 0 {
			return p.Thickness / p.D
		}
		return 0.2 * o.Prm.Radius[i]
	})
	if o.Import.Thickness == "" && p.Thickness <= 0 && p.Compliant {
		io.Pfred("warning: no wall thickness given; using h = 0.2 R\n")
	}
	o.Prm.Estar = ImportOrDefault(join(o.Import.Young), "wall Young modulus", n, func(i int) float64 {
		return p.E
	})
	lp := ImportOrDefault(join(o.Import.Lp), "wall hydraulic conductivity", n, func(i int) float64 {
		return p.Lp
	})
	o.Prm.Sigma = ImportOrDefault(join(o.Import.Sigma), "reflection coefficient", n, func(i int) float64 {
		return p.Sigma
	})
	o.Prm.Curve = ImportOrDefault(join(o.Import.Curve), "centreline curvature", n, func(i int) float64 {
		return 0
	})

	// dimensionless groups
	o.Prm.Kt = p.K / p.MuT * p.P / p.U / p.D
	o.Prm.Kv = make([]float64, n)
	o.Prm.Q = make([]float64, n)
	o.Prm.LpScaled = make([]float64, n)
	for i := 0; i < n; i++ {
		r := o.Prm.Radius[i]
		o.Prm.Kv[i] = math.Pi / 2.0 / (p.Gamma + 2.0) / p.MuV * p.P * p.D / p.U * math.Pow(r, 4.0)
		o.Prm.LpScaled[i] = lp[i] * p.P / p.U
		o.Prm.Q[i] = 2.0 * math.Pi * r * o.Prm.LpScaled[i]
		o.Prm.Estar[i] /= p.P
	}
	o.Prm.PiT = p.PiT / p.P
	o.Prm.PiV = p.PiV / p.P
	o.Prm.Pext = p.Pext / p.P

	// lymphatic drainage
	if p.LinearLymph {
		o.Prm.QLF = p.LpLF * p.P * p.D / p.U
	} else {
		o.Prm.QLFA = p.ALF * p.D / p.U
		o.Prm.QLFB = p.BLF * p.D / p.U
		o.Prm.QLFC = p.CLF / p.P
		o.Prm.QLFD = p.DLF / p.P
	}

	// consistency checks
	if o.Prm.Kt == 0 {
		chk.Panic("tissue conductivity is zero; check K, mut and the characteristic scales")
	}
	for i := 0; i < n; i++ {
		if o.Prm.Kv[i] == 0 {
			chk.Panic("vessel conductivity is zero at dof %d; check muv and the radius field", i)
		}
	}
	coupled := false
	for i := 0; i < n; i++ {
		if o.Prm.Q[i] != 0 {
			coupled = true
			break
		}
	}
	if !coupled {
		io.Pfred("warning: wall conductivity Q is zero everywhere; tissue and vessel problems are uncoupled\n")
	}
}

// BcByVert returns the boundary condition registered at vertex v, or nil
func (o *Simulation) BcByVert(v int) *VesselBc {
	for i := range o.Bcs {
		if o.Bcs[i].Vert == v {
			return &o.Bcs[i]
		}
	}
	return nil
}

// PL returns the dimensionless lymphatic pressure of the linear drainage law
func (o *Simulation) PL() float64 { return o.Phys.PL / o.Phys.P }
