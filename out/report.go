// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the exporters for stepped membrane analyses: a CSV
// table of per-step results, a terminal stress-strain curve and a PNG plot
package out

import (
	"bytes"
	"os"
	"path"

	"github.com/cpmech/gosl/io"

	"github.com/andrefmello91/rcmembrane/driver"
)

// WriteCSV writes the per-step results to <dirout>/<fnkey>.csv and returns
// the full filename
func WriteCSV(dirout, fnkey string, res []*driver.Result) (fn string, err error) {
	var buf bytes.Buffer
	io.Ff(&buf, "ex,ey,gxy,sx,sy,txy,ec1,ec2,fc1,fc2,theta_deg\n")
	for _, r := range res {
		io.Ff(&buf, "%g,%g,%g,%g,%g,%g,%g,%g,%g,%g,%g\n",
			r.Eps.Ex, r.Eps.Ey, r.Eps.Gxy,
			r.Sig.Sx, r.Sig.Sy, r.Sig.Txy,
			r.CEps.E1, r.CEps.E2,
			r.CSig.S1, r.CSig.S2,
			r.ThetaDeg)
	}
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return
	}
	fn = path.Join(dirout, fnkey+".csv")
	err = saveFile(fn, &buf)
	return
}

func saveFile(filename string, buf *bytes.Buffer) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() { err = fil.Close() }()
	_, err = fil.Write(buf.Bytes())
	return
}
