// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"math"

	"github.com/andrefmello91/rcmembrane/mrein"
	"github.com/andrefmello91/rcmembrane/pln"
)

// crackCheck limits the principal tensile stress of a cracked element by the
// minimum of four independent bounds:
//
//	f1a -- the unconstrained tension-softening value
//	f1b -- biaxial reinforcement yield: f1cx*cos²θ + f1cy*sin²θ
//	f1c -- x reserve plus interlock: f1cx + vcimax*tanθ
//	f1d -- y reserve plus interlock: f1cy + vcimax/tanθ
//
// where f1cx, f1cy are the reinforcement capacity reserves and vcimax the
// aggregate-interlock limit for the current crack width. The limiter only
// ever reduces the stored stress. Unreinforced elements are not checked
// because the reserve bounds degenerate to zero.
func crackCheck(c *Concrete, r *mrein.Reinforcement) {
	if !c.Cracked || r == nil {
		return
	}
	f1a := c.Sig.S1
	if f1a <= 0 {
		return
	}

	θ := c.Eps.Theta1
	cs, sn := pln.DirCosines(θ)
	vcimax := c.VciMax()
	f1cx := r.X.CapacityReserve()
	f1cy := r.Y.CapacityReserve()

	f1 := f1a
	f1b := f1cx*cs*cs + f1cy*sn*sn
	if f1b < f1 {
		f1 = f1b
	}
	t := math.Abs(pln.Tan(θ))
	if t > 0 {
		if f1c := f1cx + vcimax*t; f1c < f1 {
			f1 = f1c
		}
		if f1d := f1cy + vcimax/t; f1d < f1 {
			f1 = f1d
		}
	} else {
		// crack normal along x: the x reserve alone bounds the stress
		if f1cx < f1 {
			f1 = f1cx
		}
	}
	if f1 < 0 {
		f1 = 0
	}
	c.Sig.S1 = f1
}
