// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mem implements the reinforced-concrete membrane element: the
// composition of the concrete constitutive engine and the smeared
// reinforcement, evaluated at a single analysis point
package mem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"

	"github.com/andrefmello91/rcmembrane/mconc"
	"github.com/andrefmello91/rcmembrane/mrein"
	"github.com/andrefmello91/rcmembrane/pln"
)

// Membrane is a single reinforced-concrete membrane element. Calculate
// mutates the internal state in place; the element keeps only the current
// state (the solver tracks history externally).
type Membrane struct {
	Conc *mconc.Concrete      // concrete phase
	Rein *mrein.Reinforcement // smeared reinforcement; nil for plain panels
	Mdl  mconc.Model          // constitutive variant

	Eps  pln.Strain // last applied average strains
	EpsS pln.Strain // current crack-slip strains (DSFM only)
}

// New allocates a membrane element with the given constitutive variant
// ("mcft", "dsfm" or "smm") and material parameters. reinPrms may be nil for
// an unreinforced panel.
func New(model string, concPrms, reinPrms dbf.Params) (o *Membrane, err error) {
	o = new(Membrane)
	o.Mdl, err = mconc.New(model)
	if err != nil {
		return nil, err
	}
	o.Conc = new(mconc.Concrete)
	if err = o.Conc.Init(concPrms); err != nil {
		return nil, chk.Err("mem: concrete initialisation failed: %v", err)
	}
	if reinPrms != nil {
		o.Rein = new(mrein.Reinforcement)
		if err = o.Rein.Init(reinPrms); err != nil {
			return nil, chk.Err("mem: reinforcement initialisation failed: %v", err)
		}
	}
	return
}

// Calculate evaluates the element response for the given average strains:
// the concrete sees the strains minus the current crack-slip portion, the
// reinforcement sees the full applied strains, and (for DSFM) the slip
// strains are recomputed afterwards. Read Stresses and Stiffness for the
// results.
func (o *Membrane) Calculate(ε pln.Strain) (err error) {
	o.Eps = ε

	// concrete sees only the non-slip portion
	εc := ε
	dsfm, withSlip := o.Mdl.(*mconc.DSFM)
	if withSlip {
		εc = ε.Sub(o.EpsS)
	}
	if err = o.Mdl.Update(o.Conc, o.Rein, εc); err != nil {
		return
	}

	// reinforcement sees the full applied strains
	if o.Rein != nil {
		o.Rein.Calculate(ε)
	}

	// recompute crack slip for the next evaluation
	if withSlip {
		o.EpsS = dsfm.CrackSlip(o.Conc, o.Rein, ε)
	}

	// limit the concrete tensile stress
	o.Mdl.CrackCheck(o.Conc, o.Rein)
	return
}

// Stresses returns the combined average stress (concrete plus smeared steel)
func (o *Membrane) Stresses() pln.Stress {
	σ := o.Conc.Stresses()
	if o.Rein != nil {
		σ = σ.Add(o.Rein.Stresses())
	}
	return σ
}

// Stiffness computes the current secant stiffness into D (3x3)
func (o *Membrane) Stiffness(D *la.Matrix) {
	o.Conc.Stiffness(D)
	if o.Rein != nil {
		o.Rein.AddStiffness(D)
	}
}

// InitialStiffness computes the uncracked elastic stiffness into D (3x3).
// It depends on the material parameters only and is used to seed the solver.
func (o *Membrane) InitialStiffness(D *la.Matrix) {
	Dp := pln.PrincipalMatrix(o.Conc.Ec, o.Conc.Ec)
	pln.RotateToGlobal(D, Dp, 0)
	if o.Rein != nil {
		o.Rein.AddInitialStiffness(D)
	}
}
