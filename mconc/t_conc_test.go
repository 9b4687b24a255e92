// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mconc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/andrefmello91/rcmembrane/mrein"
	"github.com/andrefmello91/rcmembrane/pln"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func concPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "fc", V: 19.6},
		&dbf.P{N: "agg", V: 10},
	}
}

func reinPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "rhox", V: 0.01785},
		&dbf.P{N: "rhoy", V: 0.00885},
		&dbf.P{N: "phix", V: 6.35},
		&dbf.P{N: "phiy", V: 4.7},
		&dbf.P{N: "Ex", V: 200000},
		&dbf.P{N: "Ey", V: 200000},
		&dbf.P{N: "fyx", V: 460},
		&dbf.P{N: "fyy", V: 297},
	}
}

func Test_conc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conc01. parameters and uniaxial laws")

	var c Concrete
	err := c.Init(concPrms())
	if err != nil {
		tst.Errorf("init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "fcr default", 1e-12, c.Fcr, 0.33*math.Sqrt(19.6))
	chk.Float64(tst, "Ec", 1e-10, c.Ec, 2.0*19.6/0.002)
	chk.Float64(tst, "εc0", 1e-15, c.Eps0, -0.002)
	io.Pforan("fcr=%g Ec=%g εcr=%g\n", c.Fcr, c.Ec, c.EpsCr())

	// pre-cracking tension is linear
	ε := c.EpsCr() / 2.0
	chk.Float64(tst, "uncracked tension", 1e-12, c.tension(ε), c.Ec*ε)

	// compression parabola: peak at εc0
	chk.Float64(tst, "peak compression", 1e-12, c.compression(c.Eps0, 1), -c.Fc)
	chk.Float64(tst, "post-peak clip", 1e-15, c.compression(3.0*c.Eps0, 1), 0)

	// softening factor bounded by one and decreasing with ε1
	chk.Float64(tst, "βd(0)", 1e-15, c.softening(0), 1)
	β1 := c.softening(0.002)
	β2 := c.softening(0.01)
	if β1 > 1 || β2 >= β1 {
		tst.Errorf("softening must decrease: β(0.002)=%g β(0.01)=%g\n", β1, β2)
		return
	}

	// invalid strength must be rejected
	err = c.Init(dbf.Params{&dbf.P{N: "fc", V: -10}})
	if err == nil {
		tst.Errorf("negative strength must be rejected\n")
	}
}

func Test_conc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conc02. cracking latch and crack geometry")

	var c Concrete
	err := c.Init(concPrms())
	if err != nil {
		tst.Errorf("init failed: %v\n", err)
		return
	}
	var r mrein.Reinforcement
	err = r.Init(reinPrms())
	if err != nil {
		tst.Errorf("init failed: %v\n", err)
		return
	}
	mdl, err := New("mcft")
	if err != nil {
		tst.Errorf("factory failed: %v\n", err)
		return
	}

	// below cracking: uncracked
	small := pln.Strain{Ex: c.EpsCr() / 4.0, Ey: -c.EpsCr() / 4.0}
	mdl.Update(&c, &r, small)
	if c.Cracked {
		tst.Errorf("element must not crack below εcr\n")
		return
	}

	// beyond cracking: latched, and it stays latched after unloading
	mdl.Update(&c, &r, pln.Strain{Ex: 0.001, Gxy: 0.0005})
	if !c.Cracked {
		tst.Errorf("element must crack beyond εcr\n")
		return
	}
	θcr := c.ThetaCr
	mdl.Update(&c, &r, small)
	if !c.Cracked {
		tst.Errorf("cracked flag must latch\n")
		return
	}
	chk.Float64(tst, "θcr latched", 1e-15, c.ThetaCr, θcr)

	// crack geometry
	mdl.Update(&c, &r, pln.Strain{Ex: 0.002, Ey: 0.001, Gxy: 0.003})
	chk.Float64(tst, "smx", 1e-12, c.SmX, 0.1*6.35/0.01785)
	chk.Float64(tst, "smy", 1e-12, c.SmY, 0.1*4.7/0.00885)
	if c.Sm <= 0 || c.W <= 0 {
		tst.Errorf("invalid crack geometry: sm=%g w=%g\n", c.Sm, c.W)
		return
	}
	io.Pforan("sm=%g w=%g vcimax=%g\n", c.Sm, c.W, c.VciMax())

	// vcimax closed form
	vv := 0.18 * math.Sqrt(c.Fc) / (0.31 + 24.0*c.W/(c.Ag+16.0))
	chk.Float64(tst, "vcimax", 1e-12, c.VciMax(), vv)
}

func Test_conc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conc03. crack check never increases the tensile stress")

	for _, name := range []string{"mcft", "dsfm", "smm"} {
		var c Concrete
		c.Init(concPrms())
		var r mrein.Reinforcement
		r.Init(reinPrms())
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("factory failed: %v\n", err)
			return
		}
		for _, ε := range []pln.Strain{
			{Ex: 0.001, Ey: -0.0002, Gxy: 0.002},
			{Ex: 0.004, Ey: 0.001, Gxy: 0.006},
			{Ex: 0.0002, Ey: 0.0001, Gxy: 0.0003},
		} {
			r.Calculate(ε)
			mdl.Update(&c, &r, ε)
			f1a := c.Sig.S1
			mdl.CrackCheck(&c, &r)
			if c.Sig.S1 > f1a+1e-15 {
				tst.Errorf("%s: crack check increased stress: %g > %g\n", name, c.Sig.S1, f1a)
				return
			}
			if c.Sig.S1 < 0 {
				tst.Errorf("%s: negative crack-checked stress: %g\n", name, c.Sig.S1)
				return
			}
			io.Pf("%4s: f1a=%12.8f  f1=%12.8f\n", name, f1a, c.Sig.S1)
		}
	}
}

func Test_conc04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conc04. unknown model name")

	_, err := New("xyz")
	if err == nil {
		tst.Errorf("unknown model must be rejected\n")
	}
}
