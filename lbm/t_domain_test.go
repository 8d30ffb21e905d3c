// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import (
	"sync"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/golbm/inp"
)

// runDecomposed runs the same simulation on nproc in-process ranks
// connected by a local ring and returns rank 0's averages record and
// gathered final state
func runDecomposed(par *inp.Params, mask []bool, nproc int) (avVels []float64, state []Cell) {
	comms := NewLocalRing(nproc)
	var wg sync.WaitGroup
	for r := 0; r < nproc; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			sim := NewSimulation(par, mask, comms[r])
			sim.Run()
			s := sim.GatherState()
			if r == 0 {
				avVels = sim.AvVels
				state = s
			}
		}(r)
	}
	wg.Wait()
	return
}

func Test_comm01(tst *testing.T) {

	chk.PrintTitle("comm01. local ring: ordering and all-reduce")

	comms := NewLocalRing(2)
	var wg sync.WaitGroup
	glob := make([][]float64, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		c := comms[0]
		c.Send([]float64{1, 2}, 1)
		c.Send([]float64{3, 4}, 1)
		buf := make([]float64, 2)
		c.Recv(buf, 1)
		chk.Array(tst, "rank0 recv", 1e-17, buf, []float64{5, 6})
		glob[0] = make([]float64, 2)
		c.AllReduceSum(glob[0], []float64{1, 10})
	}()
	go func() {
		defer wg.Done()
		c := comms[1]
		buf := make([]float64, 2)
		c.Recv(buf, 0)
		chk.Array(tst, "rank1 first recv", 1e-17, buf, []float64{1, 2})
		c.Recv(buf, 0)
		chk.Array(tst, "rank1 second recv", 1e-17, buf, []float64{3, 4})
		c.Send([]float64{5, 6}, 0)
		glob[1] = make([]float64, 2)
		c.AllReduceSum(glob[1], []float64{2, 20})
	}()
	wg.Wait()

	chk.Array(tst, "all-reduce on rank 0", 1e-17, glob[0], []float64{3, 30})
	chk.Array(tst, "all-reduce on rank 1", 1e-17, glob[1], []float64{3, 30})
}

func Test_domain01(tst *testing.T) {

	chk.PrintTitle("domain01. slab partition and local obstacle masks")

	par := &inp.Params{Nx: 4, Ny: 8, MaxIters: 1, ReynoldsDim: 4, Density: 0.1, Accel: 0, Omega: 1.0}
	mask := make([]bool, 4*8)
	mask[1+0*4] = true // rank 0 territory
	mask[2+5*4] = true // rank 2 territory

	comms := NewLocalRing(4)
	var wg sync.WaitGroup
	doms := make([]*Domain, 4)
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			doms[r] = NewDomain(par, mask, comms[r])
		}(r)
	}
	wg.Wait()

	for r, d := range doms {
		chk.IntAssert(d.LocalNy, 2)
		chk.IntAssert(d.J0, r*2)
		chk.IntAssert(len(d.Obst), 2*4)
	}
	if !doms[0].Blocked(1, 1) {
		tst.Errorf("obstacle (1,0) must land on rank 0")
		return
	}
	if !doms[2].Blocked(2, 2) {
		tst.Errorf("obstacle (2,5) must land on rank 2")
		return
	}
	if doms[1].Blocked(1, 1) || doms[3].Blocked(2, 2) {
		tst.Errorf("obstacles must not leak into other slabs")
	}
}

func Test_domain02(tst *testing.T) {

	chk.PrintTitle("domain02. halo exchange fills ghosts from the right slabs")

	par := &inp.Params{Nx: 4, Ny: 8, MaxIters: 1, ReynoldsDim: 4, Density: 0.1, Accel: 0, Omega: 1.0}
	comms := NewLocalRing(4)
	var wg sync.WaitGroup
	doms := make([]*Domain, 4)
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			d := NewDomain(par, make([]bool, 4*8), comms[r])
			// stamp every interior cell with its global row and column
			for j := 1; j <= d.LocalNy; j++ {
				for i := 0; i < par.Nx; i++ {
					for k := 0; k < NumSpeeds; k++ {
						d.Cells.At(i, j).S[k] = float64(d.J0+j-1) + float64(i)/10.0 + float64(k)/100.0
					}
				}
			}
			d.ExchangeHalos()
			doms[r] = d
		}(r)
	}
	wg.Wait()

	for r, d := range doms {
		south := (r*2 - 1 + 8) % 8 // global row below the slab
		north := (r*2 + 2) % 8     // global row above the slab
		for i := 0; i < par.Nx; i++ {
			for k := 0; k < NumSpeeds; k++ {
				want := float64(south) + float64(i)/10.0 + float64(k)/100.0
				chk.Float64(tst, io.Sf("rank %d south ghost", r), 1e-17, d.Cells.At(i, 0).S[k], want)
				want = float64(north) + float64(i)/10.0 + float64(k)/100.0
				chk.Float64(tst, io.Sf("rank %d north ghost", r), 1e-17, d.Cells.At(i, d.LocalNy+1).S[k], want)
			}
		}
	}
}

func Test_domain03(tst *testing.T) {

	chk.PrintTitle("domain03. decomposed trajectories match the serial run")

	par := &inp.Params{Nx: 8, Ny: 8, MaxIters: 50, ReynoldsDim: 8, Density: 0.1, Accel: 0.005, Omega: 1.0}
	mask := make([]bool, 8*8)
	mask[3+3*8] = true
	mask[4+3*8] = true
	mask[3+4*8] = true
	mask[4+4*8] = true

	serial := NewSimulation(par, mask, Serial{})
	serial.Run()
	refState := serial.GatherState()

	for _, nproc := range []int{2, 4} {
		avVels, state := runDecomposed(par, mask, nproc)
		chk.Array(tst, io.Sf("av_vels with %d ranks", nproc), 1e-12, avVels, serial.AvVels)
		chk.IntAssert(len(state), len(refState))
		for idx := range state {
			for k := 0; k < NumSpeeds; k++ {
				chk.Float64(tst, io.Sf("state %d ranks cell %d speed %d", nproc, idx, k), 1e-12,
					state[idx].S[k], refState[idx].S[k])
			}
		}
	}
}

func Test_domain04(tst *testing.T) {

	chk.PrintTitle("domain04. odd ring sizes exchange without deadlock")

	par := &inp.Params{Nx: 4, Ny: 12, MaxIters: 20, ReynoldsDim: 4, Density: 0.1, Accel: 0.005, Omega: 1.3}
	mask := make([]bool, 4*12)
	mask[2+6*4] = true

	serial := NewSimulation(par, mask, Serial{})
	serial.Run()

	avVels, state := runDecomposed(par, mask, 3)
	chk.Array(tst, "av_vels with 3 ranks", 1e-12, avVels, serial.AvVels)
	ref := serial.GatherState()
	for idx := range state {
		for k := 0; k < NumSpeeds; k++ {
			chk.Float64(tst, io.Sf("cell %d speed %d", idx, k), 1e-12, state[idx].S[k], ref[idx].S[k])
		}
	}
}
