// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/guptarohit/asciigraph"

	"github.com/andrefmello91/rcmembrane/driver"
)

// AsciiCurve renders the shear stress-strain curve of a stepped run as a
// terminal graph
func AsciiCurve(res []*driver.Result, height int) string {
	if len(res) == 0 {
		return ""
	}
	data := make([]float64, len(res)+1)
	for i, r := range res {
		data[i+1] = r.Sig.Txy
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Caption("shear stress [MPa] vs load step"),
	)
}
