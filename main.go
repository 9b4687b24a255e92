// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/andrefmello91/rcmembrane/driver"
	"github.com/andrefmello91/rcmembrane/inp"
	"github.com/andrefmello91/rcmembrane/mem"
	"github.com/andrefmello91/rcmembrane/out"
	"github.com/andrefmello91/rcmembrane/pln"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	writeRes := io.ArgToBool(2, true)
	plotRes := io.ArgToBool(3, false)
	dirout := io.ArgToString(4, "/tmp/rcmembrane")

	// message
	if verbose {
		io.PfWhite("\nrcmembrane -- Reinforced Concrete Membrane Solver\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"write results table", "writeRes", writeRes,
			"plot response curve", "plotRes", plotRes,
			"output directory", "dirout", dirout,
		))
	}

	// simulation data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation file:\n%v", err)
	}
	if verbose && sim.Desc != "" {
		io.Pf("%s\n\n", sim.Desc)
	}

	// membrane element
	element, err := mem.New(sim.Solver.Model, sim.ConcPrms(), sim.ReinPrms())
	if err != nil {
		chk.Panic("cannot allocate membrane element:\n%v", err)
	}

	// solver
	sol := &driver.Driver{
		Mem:    element,
		Nsteps: sim.Solver.Nsteps,
		NmaxIt: sim.Solver.NmaxIt,
		TolF:   sim.Solver.TolF,
		Update: sim.Solver.Update,
		ShowR:  sim.Solver.ShowR,
	}

	// run
	if sim.Target.Strain {
		err = sol.RunStrain(pln.Strain{Ex: sim.Target.Ex, Ey: sim.Target.Ey, Gxy: sim.Target.Gxy})
	} else {
		err = sol.Run(pln.Stress{Sx: sim.Target.Sx, Sy: sim.Target.Sy, Txy: sim.Target.Txy})
	}
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// report
	if verbose {
		if sol.CrackStep > 0 {
			io.Pf("first cracking at step %d: σx=%g σy=%g τxy=%g [MPa]\n",
				sol.CrackStep, sol.CrackSig.Sx, sol.CrackSig.Sy, sol.CrackSig.Txy)
		} else {
			io.Pf("panel did not crack\n")
		}
		if sol.Converged {
			io.Pfgreen("all %d steps converged\n", sim.Solver.Nsteps)
		} else {
			io.Pfred("stopped at step %d (capacity reached)\n", sol.FailStep)
		}
		io.Pf("ultimate state: σx=%g σy=%g τxy=%g [MPa]  εx=%g εy=%g γxy=%g\n",
			sol.UltSig.Sx, sol.UltSig.Sy, sol.UltSig.Txy,
			sol.UltEps.Ex, sol.UltEps.Ey, sol.UltEps.Gxy)
		io.Pf("\n%s\n\n", out.AsciiCurve(sol.Res, 12))
	}

	// results table
	if writeRes {
		fn, err := out.WriteCSV(dirout, fnkey, sol.Res)
		if err != nil {
			chk.Panic("cannot write results table:\n%v", err)
		}
		io.Pfblue2("file <%s> written\n", fn)
	}

	// response curve
	if plotRes {
		fn := io.Sf("%s/%s.png", dirout, fnkey)
		if err = out.PlotCurve(sol.Res, fn); err != nil {
			chk.Panic("cannot plot response curve:\n%v", err)
		}
		io.Pfblue2("file <%s> written\n", fn)
	}
}
