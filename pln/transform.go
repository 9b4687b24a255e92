// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pln

import "math"

// numerical guards shared by the transformation formulas
const (
	// ZeroCos is the threshold below which direction cosines/sines are
	// snapped to exactly zero, avoiding spurious terms at 0°, 90° and 180°
	ZeroCos = 1e-6

	// TanMax is the finite sentinel replacing tan(θ) at 90° and 270°;
	// downstream crack-check formulas divide by tan and must stay finite
	TanMax = 1e6
)

// DirCosines returns cos(θ) and sin(θ) with small values coerced to zero
func DirCosines(θ float64) (c, s float64) {
	c, s = math.Cos(θ), math.Sin(θ)
	if math.Abs(c) < ZeroCos {
		c = 0
	}
	if math.Abs(s) < ZeroCos {
		s = 0
	}
	return
}

// Tan returns tan(θ) with values snapped to zero below ZeroCos and clipped
// to ±TanMax near the vertical asymptotes
func Tan(θ float64) (t float64) {
	t = math.Tan(θ)
	if math.Abs(t) < ZeroCos {
		return 0
	}
	if math.Abs(t) > TanMax {
		return math.Copysign(TanMax, t)
	}
	return
}

// Transform rotates the strain components to a frame inclined by α with
// respect to the current working frame
func (o Strain) Transform(α float64) Strain {
	c, s := DirCosines(α)
	return Strain{
		Ex:    o.Ex*c*c + o.Ey*s*s + o.Gxy*c*s,
		Ey:    o.Ex*s*s + o.Ey*c*c - o.Gxy*c*s,
		Gxy:   2.0*(o.Ey-o.Ex)*c*s + o.Gxy*(c*c-s*s),
		Theta: o.Theta + α,
	}
}

// Transform rotates the stress components to a frame inclined by α with
// respect to the current working frame
func (o Stress) Transform(α float64) Stress {
	c, s := DirCosines(α)
	return Stress{
		Sx:    o.Sx*c*c + o.Sy*s*s + 2.0*o.Txy*c*s,
		Sy:    o.Sx*s*s + o.Sy*c*c - 2.0*o.Txy*c*s,
		Txy:   (o.Sy-o.Sx)*c*s + o.Txy*(c*c-s*s),
		Theta: o.Theta + α,
	}
}
