// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/cpmech/golbm/lbm"
	"github.com/cpmech/golbm/out"
)

func main() {

	// catch errors; a failure on any rank aborts the whole job
	failed := false
	defer func() {
		if err := recover(); err != nil {
			failed = true
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
		if failed && mpi.IsOn() && mpi.WorldSize() > 1 {
			mpi.NewCommunicator(nil).Abort()
		}
		mpi.Stop()
		if failed {
			os.Exit(1)
		}
	}()
	mpi.Start()

	// command line
	nworkers := flag.Int("nt", 1, "number of within-rank workers for the heavy kernels")
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <paramfile> <obstaclefile>\n", os.Args[0])
		mpi.Stop()
		os.Exit(1)
	}

	// communicator
	var comm lbm.Comm
	if mpi.IsOn() && mpi.WorldSize() > 1 {
		comm = mpi.NewCommunicator(nil)
	} else {
		comm = lbm.Serial{}
	}
	root := comm.Rank() == 0

	// message
	if root {
		io.Pf("golbm: d2q9-bgk lattice Boltzmann channel flow\n")
	}

	// initialise
	sim := lbm.ReadSimulation(flag.Arg(0), flag.Arg(1), comm)
	sim.Dom.Nworkers = *nworkers
	sim.Verbose = true
	if root {
		io.Pf("> initialisation completed: %d x %d grid, %d rank(s), %d row(s) per rank\n",
			sim.Par.Nx, sim.Par.Ny, comm.Size(), sim.Dom.LocalNy)
	}

	// main loop
	tic := time.Now()
	sim.Run()
	elapsed := time.Since(tic).Seconds()

	// gather the final state and write results on the root rank
	state := sim.GatherState()
	if root {
		var ru syscall.Rusage
		syscall.Getrusage(syscall.RUSAGE_SELF, &ru)
		usrtime := float64(ru.Utime.Sec) + float64(ru.Utime.Usec)/1e6
		systime := float64(ru.Stime.Sec) + float64(ru.Stime.Usec)/1e6
		out.Report(sim.Par, sim.AvVels[sim.Par.MaxIters-1], elapsed, usrtime, systime)
		fields := out.BuildFields(sim.Par, state, sim.Obst)
		out.WriteFinalState("final_state.dat", fields)
		out.WriteAvVels("av_vels.dat", sim.AvVels)
	}
}
