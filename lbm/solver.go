// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/golbm/inp"
)

// Simulation drives the timestep loop on one rank and records the per-step
// averaged velocity.
type Simulation struct {
	Par     *inp.Params
	Dom     *Domain
	Obst    []bool    // global obstacle mask; every rank holds a copy
	AvVels  []float64 // averaged velocity magnitude per step
	Verbose bool      // progress messages on rank 0
}

// NewSimulation builds a simulation from already-loaded input data. The
// parameters are validated against the communicator size here; validation
// is deterministic so all ranks agree on pass or fail.
func NewSimulation(par *inp.Params, globalObst []bool, comm Comm) (o *Simulation) {
	par.Validate(comm.Size())
	o = new(Simulation)
	o.Par = par
	o.Obst = globalObst
	o.Dom = NewDomain(par, globalObst, comm)
	o.AvVels = make([]float64, par.MaxIters)
	return
}

// ReadSimulation reads the parameter and obstacle files and builds the
// simulation. Every rank parses both files; they are small and this keeps
// initialisation free of collectives.
func ReadSimulation(paramfile, obstaclefile string, comm Comm) (o *Simulation) {
	par := inp.ReadParams(paramfile)
	par.Validate(comm.Size())
	mask := inp.ReadObstacles(obstaclefile, par.Nx, par.Ny)
	return NewSimulation(par, mask, comm)
}

// Run executes MaxIters timesteps. Each step ends with the averaging
// all-reduce, which synchronises the ranks; no other barrier is needed
// because the next step's halo exchange orders the edge-row writes.
func (o *Simulation) Run() {
	for tt := 0; tt < o.Par.MaxIters; tt++ {
		o.Dom.Step()
		o.AvVels[tt] = o.Dom.AvVelocity()
		if o.Verbose && o.Dom.Rank == 0 && (tt+1)%1000 == 0 {
			io.Pf("> step %d of %d: av velocity = %.6E\n", tt+1, o.Par.MaxIters, o.AvVels[tt])
		}
	}
}

// GatherState assembles the full ny*nx grid on rank 0, slabs concatenated
// in rank order, and returns it there; other ranks send their slab and
// return nil.
func (o *Simulation) GatherState() []Cell {
	d := o.Dom
	n := d.LocalNy * o.Par.Nx

	if d.Rank != 0 {
		buf := make([]float64, n*NumSpeeds)
		for idx, c := range d.Cells.Interior() {
			copy(buf[idx*NumSpeeds:(idx+1)*NumSpeeds], c.S[:])
		}
		d.comm.Send(buf, 0)
		return nil
	}

	global := make([]Cell, o.Par.Nx*o.Par.Ny)
	copy(global[:n], d.Cells.Interior())
	buf := make([]float64, n*NumSpeeds)
	for r := 1; r < d.Nproc; r++ {
		d.comm.Recv(buf, r)
		base := r * n
		for idx := 0; idx < n; idx++ {
			copy(global[base+idx].S[:], buf[idx*NumSpeeds:(idx+1)*NumSpeeds])
		}
	}
	return global
}
