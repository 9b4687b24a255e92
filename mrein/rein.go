// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mrein implements the smeared reinforcement model of a membrane
// element: per-direction steel ratios, the elastic-plastic stress-strain law
// and the secant stiffness contribution
package mrein

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"

	"github.com/andrefmello91/rcmembrane/pln"
)

// Direction holds the smeared steel data and current state of one bar
// direction
type Direction struct {

	// parameters
	Rho float64 // ρ: smeared reinforcement ratio
	Phi float64 // φ: bar diameter [mm]
	E   float64 // Es: Young's modulus [MPa]
	Fy  float64 // fy: yield stress [MPa]

	// state
	Eps float64 // current strain along the bars
	Sig float64 // current stress [MPa]
}

// Stress evaluates the elastic-plastic law at ε: min(Es*ε, fy) in tension,
// symmetric in compression
func (o Direction) Stress(ε float64) float64 {
	σ := o.E * ε
	if σ > o.Fy {
		return o.Fy
	}
	if σ < -o.Fy {
		return -o.Fy
	}
	return σ
}

// Secant returns the secant modulus at the current state
func (o Direction) Secant() float64 {
	if o.Eps != 0 {
		return o.Sig / o.Eps
	}
	return o.E
}

// YieldStrain returns εy = fy/Es
func (o Direction) YieldStrain() float64 {
	if o.E > 0 {
		return o.Fy / o.E
	}
	return 0
}

// CapacityReserve returns ρ*(fy - σ), the tensile force per unit area still
// available before the bars yield; used by the crack-check
func (o Direction) CapacityReserve() float64 {
	res := o.Rho * (o.Fy - o.Sig)
	if res < 0 {
		return 0
	}
	return res
}

// Reinforcement holds the two smeared bar directions of a panel. The grid is
// orthogonal; ThetaX allows skewed grids by inclining both directions.
type Reinforcement struct {
	X      Direction // bars along x
	Y      Direction // bars along y
	ThetaX float64   // inclination of the x bars from the reference axis [rad]
}

// Init initialises the reinforcement from a parameter list
func (o *Reinforcement) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "rhox":
			o.X.Rho = p.V
		case "rhoy":
			o.Y.Rho = p.V
		case "phix":
			o.X.Phi = p.V
		case "phiy":
			o.Y.Phi = p.V
		case "Ex":
			o.X.E = p.V
		case "Ey":
			o.Y.E = p.V
		case "fyx":
			o.X.Fy = p.V
		case "fyy":
			o.Y.Fy = p.V
		case "thx":
			o.ThetaX = p.V * math.Pi / 180.0
		default:
			return chk.Err("mrein: parameter named %q is incorrect", p.N)
		}
	}
	if o.X.Rho < 0 || o.Y.Rho < 0 {
		return chk.Err("mrein: reinforcement ratios must be non-negative: ρx=%g ρy=%g", o.X.Rho, o.Y.Rho)
	}
	if o.X.Rho > 0 && (o.X.E <= 0 || o.X.Fy <= 0) {
		return chk.Err("mrein: x direction needs Es>0 and fy>0: Es=%g fy=%g", o.X.E, o.X.Fy)
	}
	if o.Y.Rho > 0 && (o.Y.E <= 0 || o.Y.Fy <= 0) {
		return chk.Err("mrein: y direction needs Es>0 and fy>0: Es=%g fy=%g", o.Y.E, o.Y.Fy)
	}
	return
}

// Angles returns the two bar axis angles measured from a direction inclined
// by θ with respect to the reference axis
func (o Reinforcement) Angles(θ float64) (αx, αy float64) {
	αx = o.ThetaX - θ
	αy = o.ThetaX + math.Pi/2.0 - θ
	return
}

// Ndirs returns the number of reinforced directions
func (o Reinforcement) Ndirs() (n int) {
	if o.X.Rho > 0 {
		n++
	}
	if o.Y.Rho > 0 {
		n++
	}
	return
}

// Calculate projects the smeared strains onto each bar direction and updates
// the steel stresses
func (o *Reinforcement) Calculate(ε pln.Strain) {
	αx, αy := o.Angles(ε.Theta)
	o.X.Eps = ε.Transform(αx).Ex
	o.Y.Eps = ε.Transform(αy).Ex
	o.X.Sig = o.X.Stress(o.X.Eps)
	o.Y.Sig = o.Y.Stress(o.Y.Eps)
}

// Stresses returns the smeared steel stress contribution in the working frame
func (o Reinforcement) Stresses() pln.Stress {
	return pln.Stress{
		Sx: o.X.Rho * o.X.Sig,
		Sy: o.Y.Rho * o.Y.Sig,
	}
}

// AddStiffness adds the secant steel stiffness diag(ρx*Esx, ρy*Esy, 0) to D
func (o Reinforcement) AddStiffness(D *la.Matrix) {
	D.Add(0, 0, o.X.Rho*o.X.Secant())
	D.Add(1, 1, o.Y.Rho*o.Y.Secant())
}

// AddInitialStiffness adds the elastic steel stiffness to D
func (o Reinforcement) AddInitialStiffness(D *la.Matrix) {
	D.Add(0, 0, o.X.Rho*o.X.E)
	D.Add(1, 1, o.Y.Rho*o.Y.E)
}
