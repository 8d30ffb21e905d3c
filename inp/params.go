// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from parameter and obstacle files
package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Params holds the simulation parameters. All fields are fixed after reading.
type Params struct {
	Nx          int     // number of cells in the x-direction
	Ny          int     // number of cells in the y-direction
	MaxIters    int     // number of timesteps
	ReynoldsDim int     // characteristic dimension for the Reynolds number
	Density     float64 // reference density per link
	Accel       float64 // density redistribution driving the inflow
	Omega       float64 // relaxation parameter
}

// ReadParams reads a parameter file holding seven whitespace-separated
// records in order: nx, ny, maxIters, reynoldsDim, density, accel, omega.
// Any missing or malformed record is a fatal error.
func ReadParams(fn string) (o *Params) {
	var fields []string
	io.ReadLines(fn, func(idx int, line string) (stop bool) {
		fields = append(fields, strings.Fields(line)...)
		return
	})
	if len(fields) != 7 {
		chk.Panic("parameter file %q must hold 7 records; got %d", fn, len(fields))
	}
	o = new(Params)
	o.Nx = io.Atoi(fields[0])
	o.Ny = io.Atoi(fields[1])
	o.MaxIters = io.Atoi(fields[2])
	o.ReynoldsDim = io.Atoi(fields[3])
	o.Density = io.Atof(fields[4])
	o.Accel = io.Atof(fields[5])
	o.Omega = io.Atof(fields[6])
	return
}

// Validate checks the parameter ranges and the row decomposition over nproc
// ranks. Violations are fatal.
func (o *Params) Validate(nproc int) {
	if o.Nx < 1 || o.Ny < 1 {
		chk.Panic("grid extent must be positive; got nx=%d ny=%d", o.Nx, o.Ny)
	}
	if o.MaxIters < 1 {
		chk.Panic("maxIters must be positive; got %d", o.MaxIters)
	}
	if o.Density <= 0 {
		chk.Panic("density must be positive; got %g", o.Density)
	}
	if o.Accel < 0 {
		chk.Panic("accel cannot be negative; got %g", o.Accel)
	}
	if o.Omega <= 0 || o.Omega >= 2 {
		chk.Panic("omega must be within (0, 2); got %g", o.Omega)
	}
	if nproc < 1 {
		chk.Panic("number of ranks must be positive; got %d", nproc)
	}
	if o.Ny%nproc != 0 {
		chk.Panic("ny=%d is not divisible by the number of ranks (%d)", o.Ny, nproc)
	}
}

// Viscosity returns the kinematic viscosity implied by omega
func (o *Params) Viscosity() float64 {
	return (2.0/o.Omega - 1.0) / 6.0
}

// Reynolds returns the Reynolds number for the given average velocity
func (o *Params) Reynolds(avgVel float64) float64 {
	return avgVel * float64(o.ReynoldsDim) / o.Viscosity()
}
