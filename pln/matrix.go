// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pln

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// PrincipalMatrix returns the 3x3 material matrix in the principal frame:
// diag(E1, E2, G) with G = E1*E2/(E1+E2)
func PrincipalMatrix(E1, E2 float64) (D *la.Matrix) {
	D = la.NewMatrix(3, 3)
	D.Set(0, 0, E1)
	D.Set(1, 1, E2)
	if E1+E2 > 0 {
		D.Set(2, 2, E1*E2/(E1+E2))
	}
	return
}

// TransMatrix returns the strain transformation matrix T(θ) mapping working
// frame components {εx, εy, γxy} to a frame rotated by θ. The corresponding
// stress transformation is its contragredient, thus Dglobal = Tᵀ Dprinc T.
func TransMatrix(θ float64) (T *la.Matrix) {
	c, s := DirCosines(θ)
	T = la.NewMatrix(3, 3)
	T.Set(0, 0, c*c)
	T.Set(0, 1, s*s)
	T.Set(0, 2, c*s)
	T.Set(1, 0, s*s)
	T.Set(1, 1, c*c)
	T.Set(1, 2, -c*s)
	T.Set(2, 0, -2.0*c*s)
	T.Set(2, 1, 2.0*c*s)
	T.Set(2, 2, c*c-s*s)
	return
}

// RotateToGlobal computes Dg = Tᵀ(θ) * Dp * T(θ), transforming a material
// matrix given in the principal frame at angle θ back to the working frame
func RotateToGlobal(Dg, Dp *la.Matrix, θ float64) {
	T := TransMatrix(θ)
	var tmp [3][3]float64 // tmp := Dp * T
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			tmp[i][j] = 0
			for k := 0; k < 3; k++ {
				tmp[i][j] += Dp.Get(i, k) * T.Get(k, j)
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += T.Get(k, i) * tmp[k][j]
			}
			Dg.Set(i, j, sum)
		}
	}
}

// Det3 returns the determinant of a 3x3 matrix by cofactor expansion,
// without factorising; used to detect singular systems before inverting
func Det3(a *la.Matrix) float64 {
	return a.Get(0, 0)*(a.Get(1, 1)*a.Get(2, 2)-a.Get(1, 2)*a.Get(2, 1)) -
		a.Get(0, 1)*(a.Get(1, 0)*a.Get(2, 2)-a.Get(1, 2)*a.Get(2, 0)) +
		a.Get(0, 2)*(a.Get(1, 0)*a.Get(2, 1)-a.Get(1, 1)*a.Get(2, 0))
}

// StressFromStrain computes σ = D * ε
func StressFromStrain(D *la.Matrix, ε Strain) Stress {
	σ := la.NewVector(3)
	la.MatVecMul(σ, 1, D, ε.Vec())
	return StressFromVec(σ)
}

// StrainFromStress solves D * ε = σ for ε
func StrainFromStress(D *la.Matrix, σ Stress) (ε Strain, err error) {
	det := Det3(D)
	if math.Abs(det) < 1e-10 {
		return ε, chk.Err("material matrix is singular: det=%g", det)
	}
	Di := la.NewMatrix(3, 3)
	la.MatInvSmall(Di, D, 1e-10)
	v := la.NewVector(3)
	la.MatVecMul(v, 1, Di, σ.Vec())
	return StrainFromVec(v), nil
}
