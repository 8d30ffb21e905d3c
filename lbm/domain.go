// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/golbm/inp"
)

// Domain holds one rank's slab of the global lattice together with its
// scratch grid, local obstacle mask, and halo-exchange machinery. Global
// rows are partitioned equally: rank r owns rows [r*LocalNy, (r+1)*LocalNy)
// with row index increasing upward.
type Domain struct {

	// input
	Par   *inp.Params
	Rank  int
	Nproc int

	// slab
	LocalNy int    // interior rows owned by this rank
	J0      int    // first global row of the slab
	Cells   *Grid  // primary grid; canonical state after each step
	Scratch *Grid  // post-propagate populations for one step
	Obst    []bool // LocalNy*Nx local obstacle mask; immutable

	// decomposition
	comm  Comm
	above int // rank owning the rows just above the slab
	below int // rank owning the rows just below the slab

	// halo and reduction buffers, allocated once
	sendBuf []float64 // Nx*NumSpeeds
	recvBuf []float64 // Nx*NumSpeeds
	redLoc  []float64 // [sum of |u|, fluid cell count]
	redGlob []float64

	// within-rank fan-out of the heavy kernels
	Nworkers int
}

// NewDomain partitions the global grid over the communicator's ranks and
// initialises this rank's slab: interior cells at the rest equilibrium for
// the reference density, ghost rows zeroed (the first halo exchange
// overwrites them before they are read), and the local obstacle mask cut
// from the global one. The parameters must have been validated already.
func NewDomain(par *inp.Params, globalObst []bool, comm Comm) (o *Domain) {
	if len(globalObst) != par.Nx*par.Ny {
		chk.Panic("global obstacle mask has %d cells; grid is %d x %d", len(globalObst), par.Nx, par.Ny)
	}
	o = new(Domain)
	o.Par = par
	o.comm = comm
	o.Rank = comm.Rank()
	o.Nproc = comm.Size()
	o.LocalNy = par.Ny / o.Nproc
	o.J0 = o.Rank * o.LocalNy
	o.Cells = NewGrid(par.Nx, o.LocalNy)
	o.Scratch = NewGrid(par.Nx, o.LocalNy)

	// rest equilibrium at the reference density
	for j := 1; j <= o.LocalNy; j++ {
		for i := 0; i < par.Nx; i++ {
			c := o.Cells.At(i, j)
			c.S[Rest] = par.Density * W0
			for k := East; k <= South; k++ {
				c.S[k] = par.Density * W1
			}
			for k := NorthEast; k < NumSpeeds; k++ {
				c.S[k] = par.Density * W2
			}
		}
	}

	// local obstacle mask
	o.Obst = make([]bool, o.LocalNy*par.Nx)
	copy(o.Obst, globalObst[o.J0*par.Nx:(o.J0+o.LocalNy)*par.Nx])

	// ring neighbours by slab geometry
	o.above = (o.Rank + 1) % o.Nproc
	o.below = (o.Rank - 1 + o.Nproc) % o.Nproc

	// buffers
	o.sendBuf = make([]float64, par.Nx*NumSpeeds)
	o.recvBuf = make([]float64, par.Nx*NumSpeeds)
	o.redLoc = make([]float64, 2)
	o.redGlob = make([]float64, 2)
	o.Nworkers = 1
	return
}

// Blocked tells whether interior cell (i, j) is an obstacle (local row
// j within [1, LocalNy])
func (o *Domain) Blocked(i, j int) bool {
	return o.Obst[i+(j-1)*o.Par.Nx]
}

// ExchangeHalos refreshes both ghost rows of the primary grid from the
// neighbouring slabs. The halo is stale after any write to the interior
// edge rows, so this must run after the previous collide (and after
// accelerate) and before the next propagate. All nine populations of each
// edge cell travel, which keeps the propagate kernel uniform.
func (o *Domain) ExchangeHalos() {
	ny := o.LocalNy
	nx := o.Par.Nx
	if o.Nproc == 1 {
		// vertical wrap is local: ghosts mirror this rank's own edge rows
		for i := 0; i < nx; i++ {
			*o.Cells.At(i, 0) = *o.Cells.At(i, ny)
			*o.Cells.At(i, ny+1) = *o.Cells.At(i, 1)
		}
		return
	}

	// shift up: top interior row to the rank above; fill the south ghost
	// with the top interior row of the rank below
	o.packRow(ny, o.sendBuf)
	o.shift(o.sendBuf, o.above, o.recvBuf, o.below)
	o.unpackRow(0, o.recvBuf)

	// shift down: bottom interior row to the rank below; fill the north
	// ghost with the bottom interior row of the rank above
	o.packRow(1, o.sendBuf)
	o.shift(o.sendBuf, o.below, o.recvBuf, o.above)
	o.unpackRow(ny+1, o.recvBuf)
}

// shift performs one symmetric send/receive pair. Rank parity fixes the
// order so that blocking point-to-point primitives cannot deadlock on the
// ring: every even sender targets a rank that is either already receiving
// or whose own send completes first.
func (o *Domain) shift(send []float64, to int, recv []float64, from int) {
	if o.Rank%2 == 0 {
		o.comm.Send(send, to)
		o.comm.Recv(recv, from)
	} else {
		o.comm.Recv(recv, from)
		o.comm.Send(send, to)
	}
}

// packRow copies the nine populations of every cell of local row j into buf
func (o *Domain) packRow(j int, buf []float64) {
	for i := 0; i < o.Par.Nx; i++ {
		copy(buf[i*NumSpeeds:(i+1)*NumSpeeds], o.Cells.At(i, j).S[:])
	}
}

// unpackRow copies buf into the nine populations of every cell of local row j
func (o *Domain) unpackRow(j int, buf []float64) {
	for i := 0; i < o.Par.Nx; i++ {
		copy(o.Cells.At(i, j).S[:], buf[i*NumSpeeds:(i+1)*NumSpeeds])
	}
}
