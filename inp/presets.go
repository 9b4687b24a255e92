// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// panel holds one shear-panel preset from the Vecchio & Collins PV series
type panel struct {
	fc, agg            float64 // concrete: strength [MPa], aggregate [mm]
	rhox, phix, fyx    float64 // x reinforcement
	rhoy, phiy, fyy    float64 // y reinforcement
	es                 float64 // steel modulus [MPa]
}

// panels holds the properties of a few PV-series test panels; useful as
// fixtures for validation against published data
var panels = map[string]panel{
	"pv1":  {fc: 34.5, agg: 6, rhox: 0.0179, phix: 6.35, fyx: 483, rhoy: 0.0168, phiy: 6.35, fyy: 428, es: 200000},
	"pv4":  {fc: 26.6, agg: 6, rhox: 0.0106, phix: 3.45, fyx: 242, rhoy: 0.0106, phiy: 3.45, fyy: 242, es: 200000},
	"pv6":  {fc: 29.8, agg: 6, rhox: 0.0179, phix: 6.35, fyx: 266, rhoy: 0.0179, phiy: 6.35, fyy: 266, es: 200000},
	"pv20": {fc: 19.6, agg: 6, rhox: 0.0179, phix: 6.35, fyx: 460, rhoy: 0.0089, phiy: 4.70, fyy: 297, es: 200000},
	"pv27": {fc: 20.5, agg: 6, rhox: 0.0179, phix: 6.35, fyx: 442, rhoy: 0.0179, phiy: 6.35, fyy: 442, es: 200000},
}

// PanelPrms returns the concrete and reinforcement parameter lists of a
// PV-series panel preset
func PanelPrms(name string) (conc, rein dbf.Params, err error) {
	p, ok := panels[name]
	if !ok {
		return nil, nil, chk.Err("inp: cannot find panel preset %q", name)
	}
	conc = dbf.Params{
		&dbf.P{N: "fc", V: p.fc},
		&dbf.P{N: "agg", V: p.agg},
	}
	rein = dbf.Params{
		&dbf.P{N: "rhox", V: p.rhox},
		&dbf.P{N: "phix", V: p.phix},
		&dbf.P{N: "fyx", V: p.fyx},
		&dbf.P{N: "Ex", V: p.es},
		&dbf.P{N: "rhoy", V: p.rhoy},
		&dbf.P{N: "phiy", V: p.phiy},
		&dbf.P{N: "fyy", V: p.fyy},
		&dbf.P{N: "Ey", V: p.es},
	}
	return
}

// PanelNames returns the available preset names
func PanelNames() (names []string) {
	for n := range panels {
		names = append(names, n)
	}
	return
}
