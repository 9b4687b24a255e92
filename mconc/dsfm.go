// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"math"

	"github.com/cpmech/gosl/num"

	"github.com/andrefmello91/rcmembrane/mrein"
	"github.com/andrefmello91/rcmembrane/pln"
)

// crack-slip constants
const (
	slipDe1Max = 0.005         // upper bracket for the crack-local strain increment
	lagTwo     = 5.0 * d2r     // rotation lag with both directions reinforced
	lagOne     = 7.5 * d2r     // rotation lag with one direction reinforced
	lagNone    = 10.0 * d2r    // rotation lag without reinforcement
	d2r        = math.Pi / 180.0
)

// DSFM implements the Disturbed Stress Field Model: MCFT extended with an
// explicit crack-slip strain component obtained from a local equilibrium at
// the crack
type DSFM struct {
	NoSlip bool // disable the slip computation (falls back to MCFT kinematics)
}

// add model to factory
func init() {
	allocators["dsfm"] = func() Model { return new(DSFM) }
}

// Name returns the variant name
func (o *DSFM) Name() string { return "dsfm" }

// Update computes the concrete principal response. The element is expected to
// pass strains already reduced by the current crack-slip strains, so the
// concrete only sees the non-slip portion.
func (o *DSFM) Update(c *Concrete, r *mrein.Reinforcement, ε pln.Strain) error {
	p := ε.Principal()
	c.Eps = p
	c.latch(p.E1, p.Theta1)
	c.Sig = pln.PrincStress{
		S1:     principalStress(c, p.E1, p.E2),
		S2:     principalStress(c, p.E2, p.E1),
		Theta1: p.Theta1,
	}
	c.UpdateCrackGeometry(r)
	return nil
}

// CrackCheck applies the interface shear-transfer limiter
func (o *DSFM) CrackCheck(c *Concrete, r *mrein.Reinforcement) {
	crackCheck(c, r)
}

// CrackSlip computes the crack-slip strain tensor for the current state. The
// total (applied) strains εt drive the rotation-lag candidate; the stress
// based candidate needs the crack shear vci from the local equilibrium at the
// crack. A failed bracket is an expected outcome and yields vci = 0.
func (o *DSFM) CrackSlip(c *Concrete, r *mrein.Reinforcement, εt pln.Strain) pln.Strain {
	if o.NoSlip || !c.Cracked {
		return pln.Strain{}
	}
	c.Vci, c.De1 = o.solveCrackEquilibrium(c, r, εt)

	// stress-based candidate (Walraven)
	ysa := o.walravenSlip(c)

	// rotation-lag candidate
	ysb := o.lagSlip(c, r, εt)

	// take the larger magnitude and record the governing branch
	ys := ysa
	c.SlipBranch = "walraven"
	if math.Abs(ysb) > math.Abs(ysa) {
		ys = ysb
		c.SlipBranch = "lag"
	}
	if ys == 0 {
		return pln.Strain{}
	}

	// match the sign of the applied shear strain (explicit sign-correction
	// convention) and convert to a strain tensor at the crack angle
	ys = math.Copysign(math.Abs(ys), εt.Gxy)
	θc := c.Eps.Theta1
	s2, c2 := math.Sin(2.0*θc), math.Cos(2.0*θc)
	return pln.Strain{
		Ex:  -ys / 2.0 * s2,
		Ey:  ys / 2.0 * s2,
		Gxy: ys * c2,
	}
}

// solveCrackEquilibrium finds the crack-local strain increment de1 that
// equilibrates the concrete tensile stress with the steel stress increase at
// the crack, then evaluates the crack shear vci from the same local stresses
func (o *DSFM) solveCrackEquilibrium(c *Concrete, r *mrein.Reinforcement, ε pln.Strain) (vci, de1 float64) {
	if r == nil || c.Sig.S1 <= 0 {
		return 0, 0
	}

	// bar angles relative to the crack normal
	θ := c.Eps.Theta1
	αx, αy := r.Angles(0)
	cnx, _ := pln.DirCosines(θ - αx)
	cny, _ := pln.DirCosines(θ - αy)
	cnx2, cny2 := cnx*cnx, cny*cny

	// equilibrium residual in de1
	res := func(de1 float64) float64 {
		esx := ε.Ex + de1*cnx2
		esy := ε.Ey + de1*cny2
		dfx := r.X.Rho * (r.X.Stress(esx) - r.X.Sig)
		dfy := r.Y.Rho * (r.Y.Stress(esy) - r.Y.Sig)
		return dfx*cnx2 + dfy*cny2 - c.Sig.S1
	}

	// the root must be bracketed in (0, slipDe1Max); a same-sign bracket
	// means no slip equilibrium exists and vci stays zero. The check mirrors
	// the solver's own bracket test so it never panics.
	fa, fb := res(0), res(slipDe1Max)
	if fa*fb >= -num.MACHEPS {
		return 0, 0
	}

	brent := num.NewBrent(res, nil)
	de1 = brent.Root(0, slipDe1Max)

	// crack shear from the local steel stress increases
	esx := ε.Ex + de1*cnx2
	esy := ε.Ey + de1*cny2
	snx := math.Sin(θ - αx)
	sny := math.Sin(θ - αy)
	vci = r.X.Rho*(r.X.Stress(esx)-r.X.Sig)*cnx*snx +
		r.Y.Rho*(r.Y.Stress(esy)-r.Y.Sig)*cny*sny
	return vci, de1
}

// walravenSlip converts the crack shear vci into a slip shear strain using
// Walraven's crack-interface law: ds = vci/(1.8w^-0.8 + a*fc) with
// a = max(0.234w^-0.707 - 0.2, 0), smeared over the crack spacing
func (o *DSFM) walravenSlip(c *Concrete) float64 {
	if c.Vci == 0 || c.W <= 0 || c.Sm <= 0 {
		return 0
	}
	a := 0.234*math.Pow(c.W, -0.707) - 0.2
	if a < 0 {
		a = 0
	}
	ds := c.Vci / (1.8*math.Pow(c.W, -0.8) + a*c.Fc)
	return ds / c.Sm
}

// lagSlip computes the rotation-lag candidate: the shear strain at the
// constitutive angle θs obtained by lagging the apparent principal strain
// rotation behind the angle at first cracking. Small drifts (within the lag
// angle) pass through unmodified.
func (o *DSFM) lagSlip(c *Concrete, r *mrein.Reinforcement, εt pln.Strain) float64 {
	lag := lagNone
	if r != nil {
		switch r.Ndirs() {
		case 2:
			lag = lagTwo
		case 1:
			lag = lagOne
		}
	}
	θε := εt.Principal().Theta1
	drift := θε - c.ThetaCr
	if math.Abs(drift) > lag {
		drift -= math.Copysign(lag, drift)
	}
	θs := c.ThetaCr + drift
	s2, c2 := math.Sin(2.0*θs), math.Cos(2.0*θs)
	return εt.Gxy*c2 + (εt.Ey-εt.Ex)*s2
}
