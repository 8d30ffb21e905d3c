// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

// Cell holds the nine directional populations of one lattice site
type Cell struct {
	S [NumSpeeds]float64
}

// Rho returns the density of the cell (sum of populations)
func (o *Cell) Rho() (rho float64) {
	for k := 0; k < NumSpeeds; k++ {
		rho += o.S[k]
	}
	return
}

// Velocity returns the bulk velocity components for the given density.
// rho must be positive.
func (o *Cell) Velocity(rho float64) (ux, uy float64) {
	ux = (o.S[East] + o.S[NorthEast] + o.S[SouthEast] - o.S[West] - o.S[NorthWest] - o.S[SouthWest]) / rho
	uy = (o.S[North] + o.S[NorthEast] + o.S[NorthWest] - o.S[South] - o.S[SouthWest] - o.S[SouthEast]) / rho
	return
}

// Grid is one rank's slab of the lattice: Rows interior rows of Nx cells in
// row-major order plus two ghost rows. Row 0 is the south ghost and row
// Rows+1 the north ghost; interior rows are 1..Rows.
type Grid struct {
	Nx    int    // number of columns
	Rows  int    // number of interior rows
	Cells []Cell // (Rows+2)*Nx cells
}

// NewGrid allocates a slab grid with zeroed cells
func NewGrid(nx, rows int) *Grid {
	return &Grid{Nx: nx, Rows: rows, Cells: make([]Cell, (rows+2)*nx)}
}

// At returns the cell at column i and local row j
func (o *Grid) At(i, j int) *Cell {
	return &o.Cells[i+j*o.Nx]
}

// Interior returns the interior cells as a contiguous row-major slice
func (o *Grid) Interior() []Cell {
	return o.Cells[o.Nx : o.Nx+o.Rows*o.Nx]
}
