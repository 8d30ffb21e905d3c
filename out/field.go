// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of final simulation states:
// macroscopic field assembly, report files, and diagnostic scalars
package out

import (
	"math"

	"bitbucket.org/ctessum/sparse"

	"github.com/cpmech/golbm/inp"
	"github.com/cpmech/golbm/lbm"
)

// FieldSet holds the macroscopic fields of a final state on the global
// grid. Arrays are indexed (row, column) = (j, i). Obstacle cells carry
// zero velocity and the reference pressure.
type FieldSet struct {
	Nx, Ny   int
	Ux       *sparse.DenseArray // x-component of velocity
	Uy       *sparse.DenseArray // y-component of velocity
	Speed    *sparse.DenseArray // velocity magnitude
	Pressure *sparse.DenseArray // rho times the squared speed of sound
	Obst     []bool             // global obstacle mask, i + j*nx
}

// BuildFields computes the macroscopic fields from a gathered global grid
func BuildFields(par *inp.Params, cells []lbm.Cell, obst []bool) (o *FieldSet) {
	o = &FieldSet{
		Nx:       par.Nx,
		Ny:       par.Ny,
		Ux:       sparse.ZerosDense(par.Ny, par.Nx),
		Uy:       sparse.ZerosDense(par.Ny, par.Nx),
		Speed:    sparse.ZerosDense(par.Ny, par.Nx),
		Pressure: sparse.ZerosDense(par.Ny, par.Nx),
		Obst:     obst,
	}
	for j := 0; j < par.Ny; j++ {
		for i := 0; i < par.Nx; i++ {
			if obst[i+j*par.Nx] {
				o.Pressure.Set(par.Density*lbm.Csq, j, i)
				continue
			}
			c := &cells[i+j*par.Nx]
			rho := c.Rho()
			ux, uy := c.Velocity(rho)
			o.Ux.Set(ux, j, i)
			o.Uy.Set(uy, j, i)
			o.Speed.Set(math.Sqrt(ux*ux+uy*uy), j, i)
			o.Pressure.Set(rho*lbm.Csq, j, i)
		}
	}
	return
}
