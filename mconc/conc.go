// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"

	"github.com/andrefmello91/rcmembrane/mrein"
	"github.com/andrefmello91/rcmembrane/pln"
)

// SmDefault is the crack spacing assigned to an unreinforced direction [mm]
const SmDefault = 300.0

// Concrete holds the parameters and current state of the concrete phase of a
// membrane element. All variants share this state; the Cracked flag latches
// true once the principal tensile strain exceeds the cracking strain and
// never resets.
type Concrete struct {

	// parameters
	Fc   float64 // f'c: compressive strength (positive) [MPa]
	Fcr  float64 // fcr: cracking strength [MPa]
	Ec   float64 // initial tangent modulus [MPa]
	Eps0 float64 // εc0: strain at peak compressive stress (negative)
	Ag   float64 // maximum aggregate diameter [mm]

	// state
	Eps     pln.PrincStrain // current principal strains
	Sig     pln.PrincStress // current principal stresses
	Cracked bool            // latched cracking flag
	ThetaCr float64         // principal angle at first cracking [rad]

	// crack geometry
	SmX, SmY float64 // crack spacings normal to each bar direction [mm]
	Sm       float64 // average crack spacing in the crack direction [mm]
	W        float64 // average crack width [mm]

	// slip diagnostics (DSFM)
	Vci        float64 // shear transferred across the crack [MPa]
	De1        float64 // crack-local strain increment from the last solve
	SlipBranch string  // which slip candidate governed: "walraven" or "lag"
}

// Init initialises the concrete parameters from a parameter list. Fcr and
// Eps0 get the usual defaults (0.33*√fc and -0.002) when not given.
func (o *Concrete) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "fc":
			o.Fc = p.V
		case "fcr":
			o.Fcr = p.V
		case "agg":
			o.Ag = p.V
		case "eps0":
			o.Eps0 = p.V
		default:
			return chk.Err("mconc: parameter named %q is incorrect", p.N)
		}
	}
	if o.Fc <= 0 {
		return chk.Err("mconc: compressive strength must be positive: fc=%g", o.Fc)
	}
	if o.Ag < 0 {
		return chk.Err("mconc: aggregate diameter must be non-negative: agg=%g", o.Ag)
	}
	if o.Eps0 == 0 {
		o.Eps0 = -0.002
	}
	if o.Eps0 > 0 {
		o.Eps0 = -o.Eps0
	}
	if o.Fcr == 0 {
		o.Fcr = 0.33 * math.Sqrt(o.Fc)
	}
	o.Ec = 2.0 * o.Fc / math.Abs(o.Eps0)
	return
}

// EpsCr returns the cracking strain εcr = fcr/Ec
func (o Concrete) EpsCr() float64 {
	return o.Fcr / o.Ec
}

// latch checks the cracking condition for principal tensile strain ε1 and
// latches the cracked flag and the crack angle
func (o *Concrete) latch(ε1, θ1 float64) {
	if !o.Cracked && ε1 > o.EpsCr() {
		o.Cracked = true
		o.ThetaCr = θ1
	}
}

// compression evaluates the softened Hognestad parabola at ε2 (negative) with
// softening factor β applied to the peak stress. The post-peak branch is
// clipped at zero residual stress.
func (o Concrete) compression(ε2, β float64) float64 {
	η := ε2 / o.Eps0 // both negative => positive ratio
	f := 2.0*η - η*η
	if f < 0 {
		f = 0
	}
	return -β * o.Fc * f
}

// softening returns the MCFT/DSFM compression softening factor
// βd = 1/(0.8 - 0.34*ε1/εc0) ≤ 1 for coexisting tensile strain ε1
func (o Concrete) softening(ε1 float64) float64 {
	if ε1 <= 0 {
		return 1
	}
	β := 1.0 / (0.8 - 0.34*ε1/o.Eps0)
	if β > 1 {
		return 1
	}
	return β
}

// tension evaluates the MCFT/DSFM tensile law at ε1: linear elastic before
// cracking, softening fcr/(1+√(500*ε1)) after
func (o Concrete) tension(ε1 float64) float64 {
	if ε1 <= 0 {
		return 0
	}
	if !o.Cracked {
		return o.Ec * ε1
	}
	return o.Fcr / (1.0 + math.Sqrt(500.0*ε1))
}

// UpdateCrackGeometry computes the per-direction crack spacings, the
// direction-weighted average spacing in the crack direction θ1 and the
// average crack width w = sm*ε1
func (o *Concrete) UpdateCrackGeometry(r *mrein.Reinforcement) {
	o.SmX, o.SmY = SmDefault, SmDefault
	if r != nil {
		if r.X.Rho > 0 && r.X.Phi > 0 {
			o.SmX = 0.1 * r.X.Phi / r.X.Rho
		}
		if r.Y.Rho > 0 && r.Y.Phi > 0 {
			o.SmY = 0.1 * r.Y.Phi / r.Y.Rho
		}
	}
	s := math.Abs(math.Sin(o.Eps.Theta1))
	c := math.Abs(math.Cos(o.Eps.Theta1))
	den := s/o.SmX + c/o.SmY
	o.Sm = SmDefault
	if den > 0 {
		o.Sm = 1.0 / den
	}
	o.W = 0
	if o.Eps.E1 > 0 {
		o.W = o.Sm * o.Eps.E1
	}
}

// VciMax returns the maximum shear stress transferable across the crack by
// aggregate interlock (Walraven), as a function of crack width and aggregate
// diameter: 0.18*√fc / (0.31 + 24w/(ag+16))
func (o Concrete) VciMax() float64 {
	return 0.18 * math.Sqrt(o.Fc) / (0.31 + 24.0*o.W/(o.Ag+16.0))
}

// Stresses returns the concrete stress contribution in the working frame
func (o Concrete) Stresses() pln.Stress {
	return o.Sig.Cart()
}

// Stiffness computes the concrete secant stiffness in the working frame:
// diag(E1, E2, E1*E2/(E1+E2)) in the principal frame rotated by θ1, with
// E1, E2 the secant moduli σi/εi. Moduli are floored at a small fraction of
// Ec so the rotated matrix stays invertible after the tensile stress is
// crack-checked to zero.
func (o Concrete) Stiffness(D *la.Matrix) {
	E1 := o.secant(o.Sig.S1, o.Eps.E1)
	E2 := o.secant(o.Sig.S2, o.Eps.E2)
	Dp := pln.PrincipalMatrix(E1, E2)
	pln.RotateToGlobal(D, Dp, o.Eps.Theta1)
}

func (o Concrete) secant(σ, ε float64) float64 {
	floor := 1e-6 * o.Ec
	if math.Abs(ε) < 1e-12 {
		return o.Ec
	}
	E := σ / ε
	if E < floor {
		return floor
	}
	return E
}
