// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/golbm/inp"
)

// WriteFinalState writes the final-state file: one line per cell in
// row-major order (j outer, i inner) with
//
//	i j u_x u_y |u| pressure obstacle
//
// and reals in scientific notation with twelve decimal digits.
func WriteFinalState(fn string, f *FieldSet) {
	buf := new(bytes.Buffer)
	for j := 0; j < f.Ny; j++ {
		for i := 0; i < f.Nx; i++ {
			blocked := 0
			if f.Obst[i+j*f.Nx] {
				blocked = 1
			}
			io.Ff(buf, "%d %d %.12E %.12E %.12E %.12E %d\n", i, j,
				f.Ux.Get(j, i), f.Uy.Get(j, i), f.Speed.Get(j, i), f.Pressure.Get(j, i), blocked)
		}
	}
	io.WriteFile(fn, buf)
}

// WriteAvVels writes the averages file: one "<step>:\t<avg>" line per step
func WriteAvVels(fn string, avVels []float64) {
	buf := new(bytes.Buffer)
	for tt, av := range avVels {
		io.Ff(buf, "%d:\t%.12E\n", tt, av)
	}
	io.WriteFile(fn, buf)
}

// Report prints the completion banner with the Reynolds number and timings
func Report(par *inp.Params, avLast, elapsed, usrtime, systime float64) {
	io.Pf("==done==\n")
	io.Pf("Reynolds number:\t\t%.12E\n", par.Reynolds(avLast))
	io.Pf("Elapsed time:\t\t\t%.6f (s)\n", elapsed)
	io.Pf("Elapsed user CPU time:\t\t%.6f (s)\n", usrtime)
	io.Pf("Elapsed system CPU time:\t%.6f (s)\n", systime)
}
