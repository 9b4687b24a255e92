// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mconc implements the biaxial smeared-crack constitutive models for
// cracked reinforced concrete membranes: MCFT (rotating crack, perfect bond),
// DSFM (explicit crack-slip strains) and SMM (Poisson decoupling)
package mconc

import (
	"github.com/cpmech/gosl/chk"

	"github.com/andrefmello91/rcmembrane/mrein"
	"github.com/andrefmello91/rcmembrane/pln"
)

// Model defines the constitutive variant of the concrete engine. Variants
// keep no coupling state other than what lives in Concrete, so a single
// instance drives one element through a whole load history.
type Model interface {

	// Name returns the variant name
	Name() string

	// Update computes the concrete principal strains/stresses for the given
	// average strains, latching the cracked flag on first exceedance of the
	// cracking strain
	Update(c *Concrete, r *mrein.Reinforcement, ε pln.Strain) error

	// CrackCheck limits the principal tensile stress by what the crack
	// interface and the reinforcement reserves can transfer; it only ever
	// reduces the stored stress
	CrackCheck(c *Concrete, r *mrein.Reinforcement)
}

// allocators holds the variant factory
var allocators = map[string]func() Model{}

// New allocates a constitutive variant by name: "mcft", "dsfm" or "smm"
func New(name string) (Model, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("mconc: cannot find model named %q", name)
	}
	return alloc(), nil
}
