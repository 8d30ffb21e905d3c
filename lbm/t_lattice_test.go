// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
)

func Test_lattice01(tst *testing.T) {

	chk.PrintTitle("lattice01. weights and direction tables")

	sum := 0.0
	for _, w := range Weights {
		sum += w
	}
	chk.Float64(tst, "sum of weights", 1e-15, sum, 1.0)

	// opposite table is an involution and reverses the unit vectors
	for k := 0; k < NumSpeeds; k++ {
		chk.IntAssert(Opposite[Opposite[k]], k)
		chk.Float64(tst, "ex reversed", 1e-17, Ex[Opposite[k]], -Ex[k])
		chk.Float64(tst, "ey reversed", 1e-17, Ey[Opposite[k]], -Ey[k])
	}

	// axis directions carry w1, diagonals w2
	for k := East; k <= South; k++ {
		chk.Float64(tst, "axis weight", 1e-17, Weights[k], W1)
	}
	for k := NorthEast; k < NumSpeeds; k++ {
		chk.Float64(tst, "diagonal weight", 1e-17, Weights[k], W2)
	}
}

func Test_lattice02(tst *testing.T) {

	chk.PrintTitle("lattice02. equilibrium populations sum to rho")

	rnd.Init(1234)
	for trial := 0; trial < 100; trial++ {
		rho := rnd.Float64(0.01, 2.0)
		ux := rnd.Float64(-0.1, 0.1)
		uy := rnd.Float64(-0.1, 0.1)
		deq := Equilibrium(rho, ux, uy)
		sum := 0.0
		for k := 0; k < NumSpeeds; k++ {
			sum += deq[k]
		}
		chk.Float64(tst, "sum of d_eq", 1e-14, sum, rho)
	}

	// at rest the equilibrium is the weighted density
	deq := Equilibrium(0.1, 0, 0)
	for k := 0; k < NumSpeeds; k++ {
		chk.Float64(tst, "rest equilibrium", 1e-17, deq[k], 0.1*Weights[k])
	}
}
