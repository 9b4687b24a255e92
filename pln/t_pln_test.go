// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pln

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_pln01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pln01. principal round trip")

	states := []Strain{
		{0.001, -0.0005, 0.002, 0},
		{0, 0, 0.003, 0},
		{-0.001, -0.001, -0.0004, 0},
		{0.002, 0.002, 0, 0},
		{0.0015, -0.0022, 0, 0},
		{0, 0, 0, 0},
	}
	for _, ε := range states {
		p := ε.Principal()
		if p.E1 < p.E2 {
			tst.Errorf("ε1 < ε2: %v < %v\n", p.E1, p.E2)
			return
		}
		back := p.Cart()
		io.Pforan("ε=%+v  =>  ε1=%g ε2=%g θ1=%g\n", ε, p.E1, p.E2, p.Theta1*180.0/math.Pi)
		chk.Array(tst, "round trip", 1e-14, back.Vec(), ε.Vec())

		// shear must vanish in the principal frame
		rot := ε.Transform(p.Theta1)
		chk.Float64(tst, "γ'=0", 1e-14, rot.Gxy, 0)
		chk.Float64(tst, "ε'x=ε1", 1e-14, rot.Ex, p.E1)
	}

	// degenerate angles
	p := Strain{0.001, -0.001, 0, 0}.Principal()
	chk.Float64(tst, "axis aligned", 1e-15, p.Theta1, 0)
	p = Strain{-0.001, 0.001, 0, 0}.Principal()
	chk.Float64(tst, "swapped axes", 1e-14, p.Theta1, math.Pi/2.0)
	p = Strain{0.001, 0.001, -0.002, 0}.Principal()
	chk.Float64(tst, "εx=εy, γ<0", 1e-14, p.Theta1, -math.Pi/4.0)
}

func Test_pln02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pln02. direction cosines and tangent guards")

	c, s := DirCosines(math.Pi / 2.0)
	chk.Float64(tst, "cos(90°)", 1e-17, c, 0)
	chk.Float64(tst, "sin(90°)", 1e-15, s, 1)
	c, s = DirCosines(math.Pi)
	chk.Float64(tst, "sin(180°)", 1e-17, s, 0)
	chk.Float64(tst, "cos(180°)", 1e-15, c, -1)

	t := Tan(math.Pi / 2.0)
	if math.IsInf(t, 0) || math.IsNaN(t) {
		tst.Errorf("tan(90°) must be finite: %v\n", t)
		return
	}
	chk.Float64(tst, "tan(90°) sentinel", 1e-17, math.Abs(t), TanMax)
	chk.Float64(tst, "tan(180°)", 1e-17, Tan(math.Pi), 0)
	chk.Float64(tst, "tan(45°)", 1e-14, Tan(math.Pi/4.0), 1)
}

func Test_pln03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pln03. material matrix rotation")

	// isotropic matrix is invariant under rotation
	E := 20000.0
	Dp := PrincipalMatrix(E, E)
	chk.Float64(tst, "G", 1e-12, Dp.Get(2, 2), E/2.0)
	Dg := la.NewMatrix(3, 3)
	for _, θ := range []float64{0, 0.3, math.Pi / 4.0, math.Pi / 2.0, 2.0} {
		RotateToGlobal(Dg, Dp, θ)
		chk.Deep2(tst, io.Sf("iso θ=%g", θ), 1e-8, Dg.GetDeep2(), Dp.GetDeep2())
	}

	// orthotropic: rotation by 90° swaps the normal moduli
	Dp = PrincipalMatrix(30000.0, 10000.0)
	RotateToGlobal(Dg, Dp, math.Pi/2.0)
	chk.Float64(tst, "D00", 1e-8, Dg.Get(0, 0), 10000.0)
	chk.Float64(tst, "D11", 1e-8, Dg.Get(1, 1), 30000.0)
	chk.Float64(tst, "D22", 1e-8, Dg.Get(2, 2), Dp.Get(2, 2))

	// determinant guard catches a singular matrix
	chk.Float64(tst, "det(diag)", 1e-6, Det3(Dp), 30000.0*10000.0*Dp.Get(2, 2))
	if _, err := StrainFromStress(la.NewMatrix(3, 3), Stress{Sx: 1}); err == nil {
		tst.Errorf("singular matrix must be reported\n")
		return
	}

	// stress/strain conversion round trip
	ε := Strain{0.001, -0.0002, 0.0005, 0}
	RotateToGlobal(Dg, Dp, 0.35)
	σ := StressFromStrain(Dg, ε)
	back, err := StrainFromStress(Dg, σ)
	if err != nil {
		tst.Errorf("conversion failed: %v\n", err)
		return
	}
	chk.Array(tst, "ε round trip", 1e-10, back.Vec(), ε.Vec())
}
