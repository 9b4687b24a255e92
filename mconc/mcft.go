// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"github.com/andrefmello91/rcmembrane/mrein"
	"github.com/andrefmello91/rcmembrane/pln"
)

// MCFT implements the Modified Compression Field Theory: rotating smeared
// cracks with full strain compatibility between concrete and reinforcement
type MCFT struct{}

// add model to factory
func init() {
	allocators["mcft"] = func() Model { return new(MCFT) }
}

// Name returns the variant name
func (o *MCFT) Name() string { return "mcft" }

// Update computes the concrete principal response for the given strains
func (o *MCFT) Update(c *Concrete, r *mrein.Reinforcement, ε pln.Strain) error {
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
func (o *MCFT) CrackCheck(c *Concrete, r *mrein.Reinforcement) {
	crackCheck(c, r)
}

// principalStress evaluates the MCFT/DSFM law in one principal direction:
// tension-softening curve for tensile strains, softened parabola for
// compressive ones, with the softening factor driven by the coexisting
// strain in the other direction
func principalStress(c *Concrete, ε, εother float64) float64 {
	if ε >= 0 {
		return c.tension(ε)
	}
	return c.compression(ε, c.softening(εother))
}
