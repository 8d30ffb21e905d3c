// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import "math"

// LocalAvVelocity accumulates this rank's share of the averaged velocity:
// the sum of velocity magnitudes over the slab's fluid cells and the
// number of those cells.
func (o *Domain) LocalAvVelocity() (sum float64, count int) {
	for j := 1; j <= o.LocalNy; j++ {
		for i := 0; i < o.Par.Nx; i++ {
			if o.Blocked(i, j) {
				continue
			}
			c := o.Cells.At(i, j)
			rho := c.Rho()
			ux, uy := c.Velocity(rho)
			sum += math.Sqrt(ux*ux + uy*uy)
			count++
		}
	}
	return
}

// AvVelocity returns the spatially averaged velocity magnitude over all
// fluid cells of the global grid. The all-reduce makes the value identical
// on every rank and doubles as the end-of-step synchronisation.
func (o *Domain) AvVelocity() float64 {
	sum, count := o.LocalAvVelocity()
	o.redLoc[0] = sum
	o.redLoc[1] = float64(count)
	o.comm.AllReduceSum(o.redGlob, o.redLoc)
	return o.redGlob[0] / o.redGlob[1]
}
