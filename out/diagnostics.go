// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cpmech/golbm/lbm"
)

// TotalDensity sums every population over the given cells. For a closed
// system without acceleration the total is constant from one timestep to
// the next, which makes this the first diagnostic to check when a run
// misbehaves.
func TotalDensity(cells []lbm.Cell) (total float64) {
	for i := range cells {
		total += floats.Sum(cells[i].S[:])
	}
	return
}
