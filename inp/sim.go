// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file:
// panel materials, solver configuration and the target load state
package inp

import (
	"encoding/json"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ConcData holds the concrete parameters
type ConcData struct {
	Fc   float64 `json:"fc"`   // compressive strength [MPa]
	Fcr  float64 `json:"fcr"`  // cracking strength [MPa]; 0 => 0.33*√fc
	Agg  float64 `json:"agg"`  // maximum aggregate diameter [mm]
	Eps0 float64 `json:"eps0"` // strain at peak stress; 0 => -0.002
}

// ReinDirData holds the reinforcement parameters of one bar direction.
// The ratio may be given directly or derived from the bar layout:
// ρ = 2*(π φ²/4)/(s*t) for a two-layer grid with spacing s in a panel of
// thickness t.
type ReinDirData struct {
	Rho     float64 `json:"rho"`     // smeared ratio; 0 => derive from layout
	Phi     float64 `json:"phi"`     // bar diameter [mm]
	Spacing float64 `json:"spacing"` // bar spacing [mm]
	Es      float64 `json:"Es"`      // Young's modulus [MPa]
	Fy      float64 `json:"fy"`      // yield stress [MPa]
}

// ReinData holds the panel reinforcement parameters
type ReinData struct {
	X      *ReinDirData `json:"x"`      // x direction; nil => unreinforced
	Y      *ReinDirData `json:"y"`      // y direction; nil => unreinforced
	ThetaX float64      `json:"thetax"` // grid inclination [degrees]
}

// SolverData holds the nonlinear solver configuration
type SolverData struct {
	Model  string  `json:"model"`  // constitutive variant: mcft, dsfm, smm
	Nsteps int     `json:"nsteps"` // number of load steps
	NmaxIt int     `json:"nmaxit"` // maximum iterations per step
	TolF   float64 `json:"tolf"`   // stress convergence tolerance
	Update string  `json:"update"` // stiffness update rule: secant, newton
	ShowR  bool    `json:"showr"`  // show residual table
}

// TargetData holds the target load state. Strain-driven runs set Strain to
// true and fill the strain components instead of the stresses.
type TargetData struct {
	Strain bool    `json:"strain"` // strain-driven run
	Sx     float64 `json:"sx"`     // target σx [MPa]
	Sy     float64 `json:"sy"`     // target σy [MPa]
	Txy    float64 `json:"txy"`    // target τxy [MPa]
	Ex     float64 `json:"ex"`     // target εx
	Ey     float64 `json:"ey"`     // target εy
	Gxy    float64 `json:"gxy"`    // target γxy
}

// Sim holds one complete simulation definition
type Sim struct {
	Desc      string     `json:"desc"`      // description
	Thickness float64    `json:"thickness"` // panel thickness [mm]; ratio derivation only
	Conc      ConcData   `json:"concrete"`  // concrete parameters
	Rein      ReinData   `json:"rein"`      // reinforcement parameters
	Solver    SolverData `json:"solver"`    // solver configuration
	Target    TargetData `json:"target"`    // target load state
}

// ReadSim reads a simulation definition from a .sim JSON file and fills in
// the defaults
func ReadSim(fn string) (o *Sim, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("inp: cannot read sim file %q: %v", fn, err)
	}
	o = new(Sim)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("inp: cannot parse sim file %q: %v", fn, err)
	}

	// defaults
	if o.Solver.Model == "" {
		o.Solver.Model = "mcft"
	}
	if o.Solver.Nsteps < 1 {
		o.Solver.Nsteps = 100
	}
	if o.Solver.NmaxIt < 1 {
		o.Solver.NmaxIt = 100
	}
	if o.Solver.TolF == 0 {
		o.Solver.TolF = 1e-6
	}
	if o.Solver.Update == "" {
		o.Solver.Update = "secant"
	}

	// derive ratios from the bar layout
	if err = o.Rein.deriveRatios(o.Thickness); err != nil {
		return nil, err
	}
	return
}

// deriveRatios computes missing reinforcement ratios from the bar layout
func (o *ReinData) deriveRatios(thickness float64) (err error) {
	for _, d := range []*ReinDirData{o.X, o.Y} {
		if d == nil || d.Rho > 0 {
			continue
		}
		if d.Phi <= 0 || d.Spacing <= 0 || thickness <= 0 {
			return chk.Err("inp: either rho or phi+spacing+thickness must be given: φ=%g s=%g t=%g",
				d.Phi, d.Spacing, thickness)
		}
		d.Rho = 2.0 * (math.Pi * d.Phi * d.Phi / 4.0) / (d.Spacing * thickness)
	}
	return
}

// ConcPrms returns the concrete parameter list
func (o *Sim) ConcPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "fc", V: o.Conc.Fc},
		&dbf.P{N: "fcr", V: o.Conc.Fcr},
		&dbf.P{N: "agg", V: o.Conc.Agg},
		&dbf.P{N: "eps0", V: o.Conc.Eps0},
	}
}

// ReinPrms returns the reinforcement parameter list, or nil for an
// unreinforced panel
func (o *Sim) ReinPrms() dbf.Params {
	if o.Rein.X == nil && o.Rein.Y == nil {
		return nil
	}
	prms := dbf.Params{&dbf.P{N: "thx", V: o.Rein.ThetaX}}
	if d := o.Rein.X; d != nil {
		prms = append(prms,
			&dbf.P{N: "rhox", V: d.Rho},
			&dbf.P{N: "phix", V: d.Phi},
			&dbf.P{N: "Ex", V: d.Es},
			&dbf.P{N: "fyx", V: d.Fy},
		)
	}
	if d := o.Rein.Y; d != nil {
		prms = append(prms,
			&dbf.P{N: "rhoy", V: d.Rho},
			&dbf.P{N: "phiy", V: d.Phi},
			&dbf.P{N: "Ey", V: d.Es},
			&dbf.P{N: "fyy", V: d.Fy},
		)
	}
	return prms
}
