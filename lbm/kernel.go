// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import "github.com/cpmech/gosl/chk"

// Step advances this rank's slab by one timestep:
// accelerate, halo exchange, propagate, rebound, collide.
// The averaging reduction at the end of each step is performed separately
// by AvVelocity and provides the inter-rank synchronisation point.
func (o *Domain) Step() {
	o.Accelerate()
	o.ExchangeHalos()
	o.Propagate()
	o.Rebound()
	o.Collide()
}

// Accelerate drives the inflow by redistributing density from the
// west-bound to the east-bound populations along the driven row, one
// inside the top boundary (global row ny-2). Only the rank owning that row
// does work; the shift is skipped at obstacle cells and wherever it would
// make a west-bound population non-positive, so each cell's total density
// is preserved.
func (o *Domain) Accelerate() {
	jstar := o.Par.Ny - 2
	if jstar < 0 || jstar < o.J0 || jstar >= o.J0+o.LocalNy {
		return
	}
	j := jstar - o.J0 + 1
	w1 := o.Par.Density * o.Par.Accel / 9.0
	w2 := o.Par.Density * o.Par.Accel / 36.0
	for i := 0; i < o.Par.Nx; i++ {
		if o.Blocked(i, j) {
			continue
		}
		c := o.Cells.At(i, j)
		if c.S[West]-w1 > 0 && c.S[NorthWest]-w2 > 0 && c.S[SouthWest]-w2 > 0 {
			c.S[East] += w1
			c.S[NorthEast] += w2
			c.S[SouthEast] += w2
			c.S[West] -= w1
			c.S[NorthWest] -= w2
			c.S[SouthWest] -= w2
		}
	}
}

// Propagate streams every directional population into the scratch grid
// from its upstream neighbour. Horizontal wrap is modular; vertical wrap
// comes from the ghost rows (j=1 reads the south ghost, j=LocalNy the
// north ghost), which realises the global periodic boundary across ranks.
func (o *Domain) Propagate() {
	nx := o.Par.Nx
	o.forEachBand(func(jlo, jhi int) {
		for j := jlo; j <= jhi; j++ {
			n := j + 1 // north ghost when j == LocalNy
			s := j - 1 // south ghost when j == 1
			for i := 0; i < nx; i++ {
				e := (i + 1) % nx
				w := (i - 1 + nx) % nx
				t := o.Scratch.At(i, j)
				t.S[Rest] = o.Cells.At(i, j).S[Rest]
				t.S[East] = o.Cells.At(w, j).S[East]
				t.S[North] = o.Cells.At(i, s).S[North]
				t.S[West] = o.Cells.At(e, j).S[West]
				t.S[South] = o.Cells.At(i, n).S[South]
				t.S[NorthEast] = o.Cells.At(w, s).S[NorthEast]
				t.S[NorthWest] = o.Cells.At(e, s).S[NorthWest]
				t.S[SouthWest] = o.Cells.At(e, n).S[SouthWest]
				t.S[SouthEast] = o.Cells.At(w, n).S[SouthEast]
			}
		}
	})
}

// Rebound mirrors the post-propagate populations at obstacle cells back
// into the primary grid with the opposite-direction swap, modelling
// no-slip walls. The rest population is not written; fluid cells are
// untouched (collide writes those).
func (o *Domain) Rebound() {
	for j := 1; j <= o.LocalNy; j++ {
		for i := 0; i < o.Par.Nx; i++ {
			if !o.Blocked(i, j) {
				continue
			}
			c := o.Cells.At(i, j)
			t := o.Scratch.At(i, j)
			for k := East; k < NumSpeeds; k++ {
				c.S[k] = t.S[Opposite[k]]
			}
		}
	}
}

// Collide relaxes every fluid cell toward the local equilibrium, reading
// the post-propagate populations from the scratch grid and writing the
// primary grid. A non-positive density indicates unstable parameters and
// is fatal.
func (o *Domain) Collide() {
	omega := o.Par.Omega
	o.forEachBand(func(jlo, jhi int) {
		for j := jlo; j <= jhi; j++ {
			for i := 0; i < o.Par.Nx; i++ {
				if o.Blocked(i, j) {
					continue
				}
				t := o.Scratch.At(i, j)
				rho := t.Rho()
				if rho <= 0 {
					chk.Panic("non-positive density %g in fluid cell (%d,%d)", rho, i, o.J0+j-1)
				}
				ux, uy := t.Velocity(rho)
				deq := Equilibrium(rho, ux, uy)
				c := o.Cells.At(i, j)
				for k := 0; k < NumSpeeds; k++ {
					c.S[k] = t.S[k] + omega*(deq[k]-t.S[k])
				}
			}
		}
	})
}
