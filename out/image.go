// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/andrefmello91/rcmembrane/driver"
)

// PlotCurve saves the shear stress versus shear strain curve to an image
// file (format given by the extension, e.g. .png)
func PlotCurve(res []*driver.Result, filename string) error {
	p := plot.New()
	p.Title.Text = "Membrane response"
	p.X.Label.Text = "shear strain"
	p.Y.Label.Text = "shear stress [MPa]"

	pts := make(plotter.XYs, len(res)+1)
	for i, r := range res {
		pts[i+1] = plotter.XY{X: r.Eps.Gxy, Y: r.Sig.Txy}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Add(plotter.NewGrid())
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
