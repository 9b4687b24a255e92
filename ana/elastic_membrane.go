// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"

	"github.com/andrefmello91/rcmembrane/pln"
)

// ElasticMembrane implements the closed-form uncracked solution for an
// orthogonally reinforced panel with the bar grid aligned to the axes. The
// concrete is linear with no lateral coupling, so the composite stiffness is
// diagonal:
//
//	σx  = (Ec + ρx·Esx) εx
//	σy  = (Ec + ρy·Esy) εy
//	τxy = (Ec/2) γxy
//
// Under pure shear the steel carries no stress and the concrete principal
// tension equals the applied τ, hence cracking starts at τ = fcr.
type ElasticMembrane struct {

	// input
	fc   float64 // compressive strength [MPa]
	fcr  float64 // cracking strength [MPa]
	eps0 float64 // strain at peak compressive stress
	rsx  float64 // ρx·Esx [MPa]
	rsy  float64 // ρy·Esy [MPa]

	// derived data
	Ec  float64 // concrete Young's modulus [MPa]
	Kxx float64 // composite normal stiffness, x
	Kyy float64 // composite normal stiffness, y
	Gc  float64 // concrete shear stiffness
}

// Init initialises this structure
func (o *ElasticMembrane) Init(prms dbf.Params) {

	// default values
	o.fc = 30     // [MPa]
	o.eps0 = -0.002

	// parameters
	for _, p := range prms {
		switch p.N {
		case "fc":
			o.fc = p.V
		case "fcr":
			o.fcr = p.V
		case "eps0":
			o.eps0 = p.V
		case "rsx":
			o.rsx = p.V
		case "rsy":
			o.rsy = p.V
		}
	}

	// derived
	if o.fcr == 0 {
		o.fcr = 0.33 * math.Sqrt(o.fc)
	}
	o.Ec = 2.0 * o.fc / math.Abs(o.eps0)
	o.Kxx = o.Ec + o.rsx
	o.Kyy = o.Ec + o.rsy
	o.Gc = o.Ec / 2.0
}

// Stresses computes the composite stress for the given average strains
func (o *ElasticMembrane) Stresses(ε pln.Strain) pln.Stress {
	return pln.Stress{
		Sx:  o.Kxx * ε.Ex,
		Sy:  o.Kyy * ε.Ey,
		Txy: o.Gc * ε.Gxy,
	}
}

// Strains computes the average strains for the given composite stress
func (o *ElasticMembrane) Strains(σ pln.Stress) pln.Strain {
	return pln.Strain{
		Ex:  σ.Sx / o.Kxx,
		Ey:  σ.Sy / o.Kyy,
		Gxy: σ.Txy / o.Gc,
	}
}

// CrackingShear returns the pure-shear load at first cracking
func (o *ElasticMembrane) CrackingShear() float64 {
	return o.fcr
}
