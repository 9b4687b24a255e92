// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package driver implements the outer nonlinear solver: it drives a membrane
// element towards a target applied stress (or strain) through load steps and
// quasi-Newton equilibrium iterations
package driver

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/andrefmello91/rcmembrane/mem"
	"github.com/andrefmello91/rcmembrane/pln"
)

// stiffness update rules
const (
	UpdateSecant = "secant" // Broyden rank-1 update from residual changes
	UpdateNewton = "newton" // rank-1 update from observed stress changes
)

// Result holds the outputs of one converged load step
type Result struct {
	Eps      pln.Strain      // average strains
	Sig      pln.Stress      // average stresses
	CEps     pln.PrincStrain // concrete principal strains
	CSig     pln.PrincStress // concrete principal stresses
	ThetaDeg float64         // principal angle [degrees]
}

// iteration is the immutable record of one equilibrium iteration
type iteration struct {
	eps []float64 // strain guess
	sig []float64 // achieved stress
	res []float64 // residual = achieved - target
}

// Driver solves the nonlinear equilibrium of a membrane element under stepped
// loading. A fresh Driver (or at least a fresh element) is needed per load
// history; results are owned by the Driver after Run.
type Driver struct {

	// configuration
	Mem    *mem.Membrane // element under load
	Nsteps int           // number of load steps
	NmaxIt int           // maximum iterations per step
	MinIt  int           // iteration floor before convergence is trusted
	TolF   float64       // convergence tolerance on ‖r‖²/(1+‖f‖²)
	Update string        // stiffness update rule: UpdateSecant or UpdateNewton
	ShowR  bool          // print the residual table during iterations

	// results
	Res       []*Result  // one record per converged step
	Converged bool       // whether all steps converged
	FailStep  int        // 1-based step index of the failure; -1 if none
	CrackStep int        // 1-based step at which cracking was detected; -1 if none
	CrackSig  pln.Stress // stress state at first cracking
	UltEps    pln.Strain // strains at the last converged step
	UltSig    pln.Stress // stresses at the last converged step (ultimate)
}

// SetDefaults sets the default solver configuration
func (o *Driver) SetDefaults() {
	o.Nsteps = 100
	o.NmaxIt = 100
	o.MinIt = 2
	o.TolF = 1e-6
	o.Update = UpdateSecant
}

// Run drives the element towards the target stress state. Non-convergence of
// a step is not an error: the run stops, Converged is false, FailStep holds
// the offending step and UltSig/UltEps keep the last converged state. Errors
// are returned for invalid configuration only.
func (o *Driver) Run(target pln.Stress) (err error) {
	if o.Mem == nil {
		return chk.Err("driver: element is not set")
	}
	if o.Nsteps < 1 || o.NmaxIt < 1 {
		return chk.Err("driver: invalid configuration: nsteps=%d nmaxit=%d", o.Nsteps, o.NmaxIt)
	}
	if o.MinIt < 1 {
		o.MinIt = 2
	}
	if o.Update == "" {
		o.Update = UpdateSecant
	}
	if o.Update != UpdateSecant && o.Update != UpdateNewton {
		return chk.Err("driver: unknown update rule %q", o.Update)
	}

	// initial state
	o.Res = make([]*Result, 0, o.Nsteps)
	o.Converged = true
	o.FailStep = -1
	o.CrackStep = -1
	ftot := target.Vec()
	fprev := []float64{0, 0, 0}
	f := make([]float64, 3)
	Δf := make([]float64, 3)
	ε := []float64{0, 0, 0}
	K := la.NewMatrix(3, 3)
	Ki := la.NewMatrix(3, 3)
	dε := make([]float64, 3)
	o.Mem.InitialStiffness(K)

	// step loop
	for n := 1; n <= o.Nsteps; n++ {

		// target for this step
		m := float64(n) / float64(o.Nsteps)
		for i := 0; i < 3; i++ {
			f[i] = m * ftot[i]
			Δf[i] = f[i] - fprev[i]
		}

		// seed the strain guess from the last known stiffness
		if math.Abs(pln.Det3(K)) < 1e-10 {
			o.fail(n)
			return nil
		}
		la.MatInvSmall(Ki, K, 1e-10)
		la.MatVecMul(dε, 1, Ki, Δf)
		for i := 0; i < 3; i++ {
			ε[i] += dε[i]
		}

		// equilibrium iterations
		wasCracked := o.Mem.Conc.Cracked
		ok, err := o.iterate(f, ε, K)
		if err != nil {
			return err
		}
		if !ok {
			o.fail(n)
			return nil
		}

		// record the converged step
		r := o.record()
		o.Res = append(o.Res, r)
		o.UltEps, o.UltSig = r.Eps, r.Sig
		if !wasCracked && o.Mem.Conc.Cracked {
			o.CrackStep = n
			o.CrackSig = r.Sig
		}
		copy(fprev, f)
	}
	return nil
}

// RunStrain drives the element through prescribed strain increments up to the
// given total strains. No equilibrium iterations are needed: the element
// response is evaluated and recorded at each step.
func (o *Driver) RunStrain(target pln.Strain) (err error) {
	if o.Mem == nil {
		return chk.Err("driver: element is not set")
	}
	if o.Nsteps < 1 {
		return chk.Err("driver: invalid configuration: nsteps=%d", o.Nsteps)
	}
	o.Res = make([]*Result, 0, o.Nsteps)
	o.Converged = true
	o.FailStep = -1
	o.CrackStep = -1
	for n := 1; n <= o.Nsteps; n++ {
		m := float64(n) / float64(o.Nsteps)
		wasCracked := o.Mem.Conc.Cracked
		if err = o.Mem.Calculate(target.Scale(m)); err != nil {
			return err
		}
		r := o.record()
		o.Res = append(o.Res, r)
		o.UltEps, o.UltSig = r.Eps, r.Sig
		if !wasCracked && o.Mem.Conc.Cracked {
			o.CrackStep = n
			o.CrackSig = r.Sig
		}
	}
	return nil
}

// iterate runs the inner equilibrium loop for one step. It returns ok=false
// on iteration exhaustion or a singular stiffness, both treated as step
// non-convergence rather than errors.
func (o *Driver) iterate(f, ε []float64, K *la.Matrix) (ok bool, err error) {

	Ki := la.NewMatrix(3, 3)
	dε := make([]float64, 3)
	var prev *iteration

	// message
	if o.ShowR {
		io.Pf("%4s%23s\n", "it", "conv")
	}

	for it := 0; it < o.NmaxIt; it++ {

		// element response at the current guess
		if err = o.Mem.Calculate(pln.StrainFromVec(ε)); err != nil {
			return false, err
		}
		σ := o.Mem.Stresses().Vec()

		// residual and convergence measure
		res := make([]float64, 3)
		for i := 0; i < 3; i++ {
			res[i] = σ[i] - f[i]
		}
		conv := convMeasure(res, f)
		if o.ShowR {
			io.Pf("%4d%23.15e\n", it, conv)
		}

		// a coincidentally small residual on the first iteration is not
		// trusted; the floor forces at least one stiffness update
		if conv <= o.TolF && it+1 >= o.MinIt {
			return true, nil
		}

		// quasi-Newton stiffness update
		cur := &iteration{eps: clone(ε), sig: σ, res: res}
		if prev != nil {
			o.updateStiffness(K, cur, prev)
		}

		// advance the strain guess: solve K*Δε = -r
		if math.Abs(pln.Det3(K)) < 1e-10 {
			if o.ShowR {
				io.Pfred("singular stiffness\n")
			}
			return false, nil
		}
		la.MatInvSmall(Ki, K, 1e-10)
		la.MatVecMul(dε, -1, Ki, res)
		for i := 0; i < 3; i++ {
			ε[i] += dε[i]
		}
		prev = cur
	}
	return false, nil
}

// updateStiffness applies the selected rank-1 update to K using the changes
// observed between two iterations. Both rules scale the outer product by
// Δε·Δε so the correction carries stiffness units for any step size: the
// "newton" rule is the finite-difference directional stiffness Δσ Δεᵀ/(Δε·Δε)
// and the "secant" rule is the Broyden correction (Δr − KΔε) Δεᵀ/(Δε·Δε).
func (o *Driver) updateStiffness(K *la.Matrix, cur, prev *iteration) {
	Δε := make([]float64, 3)
	v := make([]float64, 3)
	for i := 0; i < 3; i++ {
		Δε[i] = cur.eps[i] - prev.eps[i]
	}
	den := la.VecDot(Δε, Δε)
	if den < 1e-30 {
		return // no strain change: keep the stiffness
	}
	for i := 0; i < 3; i++ {
		switch o.Update {
		case UpdateNewton:
			// rank-1 outer product of the observed stress change
			v[i] = cur.sig[i] - prev.sig[i]
		default:
			// generalised secant (Broyden): residual change minus the part
			// already predicted by the current stiffness
			v[i] = cur.res[i] - prev.res[i]
			for j := 0; j < 3; j++ {
				v[i] -= K.Get(i, j) * Δε[j]
			}
		}
	}
	// K += (v ⊗ Δε)/(Δε·Δε)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			K.Add(i, j, v[i]*Δε[j]/den)
		}
	}
}

// convMeasure returns the convergence measure ‖r‖²/(1+‖f‖²). Scaling the
// residual and the target together leaves the measure asymptotically
// unchanged, so TolF keeps its meaning across load levels.
func convMeasure(res, f []float64) float64 {
	return la.VecDot(res, res) / (1.0 + la.VecDot(f, f))
}

// record collects the outputs of the current element state
func (o *Driver) record() *Result {
	return &Result{
		Eps:      o.Mem.Eps,
		Sig:      o.Mem.Stresses(),
		CEps:     o.Mem.Conc.Eps,
		CSig:     o.Mem.Conc.Sig,
		ThetaDeg: o.Mem.Conc.Eps.Theta1 * 180.0 / math.Pi,
	}
}

// fail marks the run as non-converged at step n
func (o *Driver) fail(n int) {
	o.Converged = false
	o.FailStep = n
}

func clone(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)
	return c
}
