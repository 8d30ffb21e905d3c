// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// PlotField reads a final_state.dat file written by golbm and draws a
// filled contour of the velocity magnitude. Obstacle cells show as zero
// velocity. Usage:
//
//	go run PlotField.go [final_state.dat]
package main

import (
	"flag"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// input file
	flag.Parse()
	fn := "final_state.dat"
	if flag.NArg() > 0 {
		fn = flag.Arg(0)
	}

	// read cell records: i j ux uy |u| pressure obstacle
	var ii, jj []int
	var speed []float64
	io.ReadLines(fn, func(idx int, line string) (stop bool) {
		f := strings.Fields(line)
		if len(f) == 0 {
			return
		}
		if len(f) != 7 {
			chk.Panic("%s: line %d: expected 7 columns; got %d", fn, idx, len(f))
		}
		ii = append(ii, io.Atoi(f[0]))
		jj = append(jj, io.Atoi(f[1]))
		speed = append(speed, io.Atof(f[4]))
		return
	})
	if len(ii) == 0 {
		chk.Panic("%s holds no cell records", fn)
	}

	// grid extent
	nx, ny := 0, 0
	for k := range ii {
		if ii[k]+1 > nx {
			nx = ii[k] + 1
		}
		if jj[k]+1 > ny {
			ny = jj[k] + 1
		}
	}
	if len(ii) != nx*ny {
		chk.Panic("%s holds %d records; grid is %d x %d", fn, len(ii), nx, ny)
	}

	// assemble contour data
	X := utl.Alloc(ny, nx)
	Y := utl.Alloc(ny, nx)
	Z := utl.Alloc(ny, nx)
	for k := range ii {
		X[jj[k]][ii[k]] = float64(ii[k])
		Y[jj[k]][ii[k]] = float64(jj[k])
		Z[jj[k]][ii[k]] = speed[k]
	}

	// plot
	plt.Reset(false, nil)
	plt.ContourF(X, Y, Z, nil)
	plt.Gll("i", "j", nil)
	plt.Save("/tmp/golbm", "field")
	io.Pf("figure saved to /tmp/golbm/field\n")
}
