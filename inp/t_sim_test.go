// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read sim file")

	sim, err := ReadSim("data/pv20.sim")
	if err != nil {
		tst.Errorf("read failed: %v\n", err)
		return
	}
	io.Pforan("sim = %+v\n", sim)

	chk.Float64(tst, "fc", 1e-15, sim.Conc.Fc, 19.6)
	chk.Float64(tst, "ρx", 1e-15, sim.Rein.X.Rho, 0.0179)
	chk.Float64(tst, "fyy", 1e-15, sim.Rein.Y.Fy, 297)
	chk.StrAssert(sim.Solver.Model, "dsfm")
	chk.IntAssert(sim.Solver.Nsteps, 80)
	chk.Float64(tst, "τ target", 1e-15, sim.Target.Txy, 4.5)

	// parameter lists feed the element constructors
	conc := sim.ConcPrms()
	rein := sim.ReinPrms()
	if len(conc) != 4 || len(rein) != 9 {
		tst.Errorf("wrong parameter counts: %d %d\n", len(conc), len(rein))
		return
	}

	// missing file
	_, err = ReadSim("data/does-not-exist.sim")
	if err == nil {
		tst.Errorf("missing file must be reported\n")
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. ratio derivation from bar layout")

	r := ReinData{
		X: &ReinDirData{Phi: 6.35, Spacing: 50, Es: 200000, Fy: 460},
	}
	err := r.deriveRatios(70)
	if err != nil {
		tst.Errorf("derive failed: %v\n", err)
		return
	}
	correct := 2.0 * math.Pi * 6.35 * 6.35 / 4.0 / (50.0 * 70.0)
	chk.Float64(tst, "ρx", 1e-15, r.X.Rho, correct)

	// incomplete layout is rejected
	r = ReinData{X: &ReinDirData{Phi: 6.35}}
	if err = r.deriveRatios(0); err == nil {
		tst.Errorf("incomplete layout must be rejected\n")
	}
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. panel presets")

	conc, rein, err := PanelPrms("pv20")
	if err != nil {
		tst.Errorf("preset failed: %v\n", err)
		return
	}
	if len(conc) == 0 || len(rein) == 0 {
		tst.Errorf("empty preset\n")
		return
	}
	_, _, err = PanelPrms("pv999")
	if err == nil {
		tst.Errorf("unknown preset must be rejected\n")
	}
	if len(PanelNames()) != 5 {
		tst.Errorf("wrong number of presets: %d\n", len(PanelNames()))
	}
}
