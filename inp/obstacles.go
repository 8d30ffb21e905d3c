// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReadObstacles reads an obstacle file and assembles the global obstacle
// mask in row-major order (x + y*nx). Each non-empty line holds a triple
//
//	x y flag
//
// with flag == 1, x within [0, nx) and y within [0, ny). Cells not listed
// are fluid. Any malformed triple is a fatal error.
func ReadObstacles(fn string, nx, ny int) (mask []bool) {
	mask = make([]bool, nx*ny)
	io.ReadLines(fn, func(idx int, line string) (stop bool) {
		f := strings.Fields(line)
		if len(f) == 0 {
			return
		}
		if len(f) != 3 {
			chk.Panic("obstacle file %q: line %d: expected 3 values per line; got %d", fn, idx, len(f))
		}
		x := io.Atoi(f[0])
		y := io.Atoi(f[1])
		blocked := io.Atoi(f[2])
		if x < 0 || x > nx-1 {
			chk.Panic("obstacle file %q: line %d: x-coordinate %d out of range", fn, idx, x)
		}
		if y < 0 || y > ny-1 {
			chk.Panic("obstacle file %q: line %d: y-coordinate %d out of range", fn, idx, y)
		}
		if blocked != 1 {
			chk.Panic("obstacle file %q: line %d: blocked value should be 1; got %d", fn, idx, blocked)
		}
		mask[x+y*nx] = true
		return
	})
	return
}
