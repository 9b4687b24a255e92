// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pln implements the in-plane (membrane) strain and stress states,
// their Mohr's-circle principal decomposition and the 2-D rotations used by
// the smeared-crack constitutive models. Stresses are in [MPa], lengths in
// [mm] and strains are dimensionless; shear strains are the engineering ones
// (twice the tensor shear).
package pln

import (
	"math"
)

// Strain holds the in-plane strain components in the working frame.
// Gxy is the engineering shear strain. Theta is the inclination of the
// working x axis with respect to the reference axis (zero by default).
type Strain struct {
	Ex    float64 // εx: normal strain along x
	Ey    float64 // εy: normal strain along y
	Gxy   float64 // γxy: engineering shear strain
	Theta float64 // θx: orientation of the working frame [rad]
}

// Stress holds the in-plane stress components in the working frame [MPa]
type Stress struct {
	Sx    float64 // σx: normal stress along x
	Sy    float64 // σy: normal stress along y
	Txy   float64 // τxy: shear stress
	Theta float64 // θx: orientation of the working frame [rad]
}

// PrincStrain holds the principal strains with E1 ≥ E2 and the angle from the
// reference axis to the major (tensile) principal direction
type PrincStrain struct {
	E1     float64 // ε1: major principal strain
	E2     float64 // ε2: minor principal strain
	Theta1 float64 // θ1: inclination of the ε1 direction [rad]
}

// PrincStress holds the principal stresses with S1 ≥ S2 and the angle from
// the reference axis to the major principal direction
type PrincStress struct {
	S1     float64 // σ1: major principal stress
	S2     float64 // σ2: minor principal stress
	Theta1 float64 // θ1: inclination of the σ1 direction [rad]
}

// strain algebra ////////////////////////////////////////////////////////////

// Add returns o + b (component-wise; the orientation of o is kept)
func (o Strain) Add(b Strain) Strain {
	return Strain{o.Ex + b.Ex, o.Ey + b.Ey, o.Gxy + b.Gxy, o.Theta}
}

// Sub returns o - b
func (o Strain) Sub(b Strain) Strain {
	return Strain{o.Ex - b.Ex, o.Ey - b.Ey, o.Gxy - b.Gxy, o.Theta}
}

// Scale returns m * o
func (o Strain) Scale(m float64) Strain {
	return Strain{m * o.Ex, m * o.Ey, m * o.Gxy, o.Theta}
}

// Vec returns the components as a slice {εx, εy, γxy}
func (o Strain) Vec() []float64 {
	return []float64{o.Ex, o.Ey, o.Gxy}
}

// StrainFromVec builds a Strain from a {εx, εy, γxy} slice
func StrainFromVec(v []float64) Strain {
	return Strain{v[0], v[1], v[2], 0}
}

// stress algebra ////////////////////////////////////////////////////////////

// Add returns o + b
func (o Stress) Add(b Stress) Stress {
	return Stress{o.Sx + b.Sx, o.Sy + b.Sy, o.Txy + b.Txy, o.Theta}
}

// Sub returns o - b
func (o Stress) Sub(b Stress) Stress {
	return Stress{o.Sx - b.Sx, o.Sy - b.Sy, o.Txy - b.Txy, o.Theta}
}

// Scale returns m * o
func (o Stress) Scale(m float64) Stress {
	return Stress{m * o.Sx, m * o.Sy, m * o.Txy, o.Theta}
}

// Vec returns the components as a slice {σx, σy, τxy}
func (o Stress) Vec() []float64 {
	return []float64{o.Sx, o.Sy, o.Txy}
}

// StressFromVec builds a Stress from a {σx, σy, τxy} slice
func StressFromVec(v []float64) Stress {
	return Stress{v[0], v[1], v[2], 0}
}

// principal decomposition ///////////////////////////////////////////////////

// Principal extracts the principal strains by Mohr's circle. The angle is
// resolved with atan2 so that the degenerate cases come out right:
// γxy = 0 gives an axis-aligned result and εx = εy with γxy < 0 gives -45°.
func (o Strain) Principal() (p PrincStrain) {
	cen := (o.Ex + o.Ey) / 2.0
	rad := math.Sqrt(math.Pow(o.Ey-o.Ex, 2.0)+o.Gxy*o.Gxy) / 2.0
	p.E1 = cen + rad
	p.E2 = cen - rad
	if rad > 0 {
		p.Theta1 = math.Atan2(o.Gxy, o.Ex-o.Ey) / 2.0
	}
	return
}

// Principal extracts the principal stresses by Mohr's circle
func (o Stress) Principal() (p PrincStress) {
	cen := (o.Sx + o.Sy) / 2.0
	rad := math.Sqrt(math.Pow(o.Sy-o.Sx, 2.0)+4.0*o.Txy*o.Txy) / 2.0
	p.S1 = cen + rad
	p.S2 = cen - rad
	if rad > 0 {
		p.Theta1 = math.Atan2(2.0*o.Txy, o.Sx-o.Sy) / 2.0
	}
	return
}

// Cart reconstructs the Cartesian strain components from the principal ones
func (o PrincStrain) Cart() Strain {
	c, s := DirCosines(o.Theta1)
	return Strain{
		Ex:  o.E1*c*c + o.E2*s*s,
		Ey:  o.E1*s*s + o.E2*c*c,
		Gxy: 2.0 * (o.E1 - o.E2) * s * c,
	}
}

// Cart reconstructs the Cartesian stress components from the principal ones
func (o PrincStress) Cart() Stress {
	c, s := DirCosines(o.Theta1)
	return Stress{
		Sx:  o.S1*c*c + o.S2*s*s,
		Sy:  o.S1*s*s + o.S2*c*c,
		Txy: (o.S1 - o.S2) * s * c,
	}
}
