// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"math"

	"github.com/andrefmello91/rcmembrane/mrein"
	"github.com/andrefmello91/rcmembrane/pln"
)

// SMM implements the Softened Membrane Model: MCFT-type smeared cracks with a
// Poisson-coupling correction between the two principal directions (Zhu-Hsu
// ratios) and the Hsu softening of the compressive response
type SMM struct{}

// add model to factory
func init() {
	allocators["smm"] = func() Model { return new(SMM) }
}

// Name returns the variant name
func (o *SMM) Name() string { return "smm" }

// Update removes the estimated Poisson effect from the apparent principal
// strains before evaluating the uniaxial concrete laws
func (o *SMM) Update(c *Concrete, r *mrein.Reinforcement, ε pln.Strain) error {
	p := ε.Principal()

	// Poisson ratios: ν12 grows with the larger reinforcement strain and
	// saturates at yielding; ν21 vanishes once cracked
	ν12 := poissonNu12(r)
	ν21 := 0.2
	if c.Cracked {
		ν21 = 0
	}

	// decoupling transform
	den := 1.0 - ν12*ν21
	e1 := (p.E1 + ν21*p.E2) / den
	e2 := (p.E2 + ν12*p.E1) / den

	c.Eps = pln.PrincStrain{E1: e1, E2: e2, Theta1: p.Theta1}
	c.latch(e1, p.Theta1)
	c.Sig = pln.PrincStress{
		S1:     o.tensionSMM(c, e1),
		S2:     o.compressionSMM(c, e1, e2),
		Theta1: p.Theta1,
	}
	c.UpdateCrackGeometry(r)
	return nil
}

// CrackCheck applies the interface shear-transfer limiter
func (o *SMM) CrackCheck(c *Concrete, r *mrein.Reinforcement) {
	crackCheck(c, r)
}

// tensionSMM evaluates the SMM tensile law: linear before cracking, then the
// power softening fcr*(εcr/ε1)^0.4
func (o *SMM) tensionSMM(c *Concrete, ε1 float64) float64 {
	if ε1 == 0 {
		return 0
	}
	if ε1 < 0 {
		return o.compressionSMM(c, 0, ε1)
	}
	if !c.Cracked {
		return c.Ec * ε1
	}
	εcr := c.EpsCr()
	if ε1 <= εcr {
		return c.Fcr
	}
	return c.Fcr * math.Pow(εcr/ε1, 0.4)
}

// compressionSMM evaluates the Hsu softened parabola with softening
// coefficient ζ = 5.8/√fc / √(1+400ε1) ≤ 0.9 applied to both the peak stress
// and the peak strain
func (o *SMM) compressionSMM(c *Concrete, ε1, ε2 float64) float64 {
	if ε2 >= 0 {
		return o.tensionSMM(c, ε2)
	}
	ζ := 1.0
	if ε1 > 0 {
		ζ = 5.8 / math.Sqrt(c.Fc) / math.Sqrt(1.0+400.0*ε1)
		if ζ > 0.9 {
			ζ = 0.9
		}
	}
	η := ε2 / (ζ * c.Eps0)
	f := 2.0*η - η*η
	if f < 0 {
		f = 0
	}
	return -ζ * c.Fc * f
}

// poissonNu12 returns the Zhu-Hsu ν12 ratio: 0.2 + 850*εsf for the larger
// reinforcement tensile strain εsf below yield, saturated at 1.9 beyond
func poissonNu12(r *mrein.Reinforcement) float64 {
	if r == nil {
		return 0.2
	}
	εsf := r.X.Eps
	εy := r.X.YieldStrain()
	if r.Y.Eps > εsf {
		εsf = r.Y.Eps
		εy = r.Y.YieldStrain()
	}
	if εsf <= 0 {
		return 0.2
	}
	if εy > 0 && εsf >= εy {
		return 1.9
	}
	ν := 0.2 + 850.0*εsf
	if ν > 1.9 {
		return 1.9
	}
	return ν
}
