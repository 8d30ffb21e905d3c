// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lbm implements a distributed d2q9-bgk lattice Boltzmann solver.
// 'd2' indicates a 2-dimensional grid, 'q9' indicates 9 velocities per grid
// cell, and 'bgk' refers to the Bhatnagar-Gross-Krook collision step.
package lbm

// NumSpeeds is the number of discrete velocities of the D2Q9 lattice
const NumSpeeds = 9

// Lattice directions. The speeds in each cell are numbered as follows:
//
//	6 2 5
//	 \|/
//	3-0-1
//	 /|\
//	7 4 8
const (
	Rest = iota
	East
	North
	West
	South
	NorthEast
	NorthWest
	SouthWest
	SouthEast
)

// Lattice weights and squared speed of sound
const (
	W0  = 4.0 / 9.0  // rest weight
	W1  = 1.0 / 9.0  // axis weight
	W2  = 1.0 / 36.0 // diagonal weight
	Csq = 1.0 / 3.0  // square of speed of sound
)

// Weights holds the per-direction lattice weights
var Weights = [NumSpeeds]float64{W0, W1, W1, W1, W1, W2, W2, W2, W2}

// Ex and Ey hold the components of the lattice unit vectors
// (east = +x, north = +y)
var (
	Ex = [NumSpeeds]float64{0, 1, 0, -1, 0, 1, -1, -1, 1}
	Ey = [NumSpeeds]float64{0, 0, 1, 0, -1, 1, 1, -1, -1}
)

// Opposite maps each direction onto its reverse; bounce-back at solid
// cells swaps each population with its opposite
var Opposite = [NumSpeeds]int{Rest, West, South, East, North, SouthWest, SouthEast, NorthEast, NorthWest}

// Equilibrium returns the equilibrium populations for density rho and bulk
// velocity (ux, uy). The populations sum to rho.
func Equilibrium(rho, ux, uy float64) (deq [NumSpeeds]float64) {
	usq := ux*ux + uy*uy
	deq[Rest] = W0 * rho * (1.0 - usq/(2.0*Csq))
	for k := East; k < NumSpeeds; k++ {
		uk := Ex[k]*ux + Ey[k]*uy
		deq[k] = Weights[k] * rho * (1.0 + uk/Csq + uk*uk/(2.0*Csq*Csq) - usq/(2.0*Csq))
	}
	return
}
