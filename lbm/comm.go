// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import (
	"sync"

	"github.com/cpmech/gosl/chk"
)

// Comm is the subset of message-passing primitives the solver needs.
// *mpi.Communicator from gosl satisfies it unmodified; Serial and LocalRing
// provide single-process implementations. Messages between a given pair of
// ranks are delivered in order, as with MPI point-to-point semantics.
type Comm interface {
	Rank() int
	Size() int
	Send(vals []float64, toID int)
	Recv(vals []float64, fromID int)
	AllReduceSum(dest, orig []float64)
}

// Serial is the single-rank Comm. Point-to-point calls are invalid on it.
type Serial struct{}

func (o Serial) Rank() int { return 0 }
func (o Serial) Size() int { return 1 }

func (o Serial) Send(vals []float64, toID int) {
	chk.Panic("serial comm cannot send")
}

func (o Serial) Recv(vals []float64, fromID int) {
	chk.Panic("serial comm cannot receive")
}

func (o Serial) AllReduceSum(dest, orig []float64) {
	copy(dest, orig)
}

// localRing connects n in-process ranks running on goroutines. Mailboxes
// are buffered FIFO channels per (sender, receiver) pair; the all-reduce is
// a generation-counted barrier.
type localRing struct {
	n    int
	mail []chan []float64 // n*n mailboxes indexed by from*n+to
	mu   sync.Mutex
	cond *sync.Cond
	sum  []float64 // partial sums of the reduction in progress
	res  []float64 // completed reduction handed to all ranks
	narr int       // ranks arrived at the reduction
	gen  int       // reduction generation
}

// ringRank is one rank's endpoint of a localRing
type ringRank struct {
	ring *localRing
	rank int
}

// NewLocalRing returns one Comm per rank, all backed by the same in-process
// ring. Each returned Comm must be driven by its own goroutine.
func NewLocalRing(n int) (comms []Comm) {
	o := &localRing{n: n, mail: make([]chan []float64, n*n)}
	for i := range o.mail {
		o.mail[i] = make(chan []float64, 4)
	}
	o.cond = sync.NewCond(&o.mu)
	comms = make([]Comm, n)
	for r := 0; r < n; r++ {
		comms[r] = &ringRank{ring: o, rank: r}
	}
	return
}

func (o *ringRank) Rank() int { return o.rank }
func (o *ringRank) Size() int { return o.ring.n }

func (o *ringRank) Send(vals []float64, toID int) {
	msg := make([]float64, len(vals))
	copy(msg, vals)
	o.ring.mail[o.rank*o.ring.n+toID] <- msg
}

func (o *ringRank) Recv(vals []float64, fromID int) {
	msg := <-o.ring.mail[fromID*o.ring.n+o.rank]
	if len(msg) != len(vals) {
		chk.Panic("ring recv: message length %d does not match buffer length %d", len(msg), len(vals))
	}
	copy(vals, msg)
}

func (o *ringRank) AllReduceSum(dest, orig []float64) {
	r := o.ring
	r.mu.Lock()
	if r.narr == 0 {
		r.sum = make([]float64, len(orig))
	}
	for i, v := range orig {
		r.sum[i] += v
	}
	r.narr++
	if r.narr == r.n {
		r.res = r.sum
		r.narr = 0
		r.gen++
		r.cond.Broadcast()
	} else {
		gen := r.gen
		for gen == r.gen {
			r.cond.Wait()
		}
	}
	copy(dest, r.res)
	r.mu.Unlock()
}
