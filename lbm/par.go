// Copyright 2016 The Golbm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import "golang.org/x/sync/errgroup"

// forEachBand runs fcn over disjoint bands of interior rows, fanning out
// over Nworkers goroutines when configured. Propagate reads the primary
// grid and writes scratch while rebound/collide read scratch and write the
// primary grid, so cells are independent within each substep and bands may
// run concurrently.
func (o *Domain) forEachBand(fcn func(jlo, jhi int)) {
	nw := o.Nworkers
	if nw < 2 || o.LocalNy < nw {
		fcn(1, o.LocalNy)
		return
	}
	size := o.LocalNy / nw
	var eg errgroup.Group
	for w := 0; w < nw; w++ {
		jlo := 1 + w*size
		jhi := jlo + size - 1
		if w == nw-1 {
			jhi = o.LocalNy
		}
		eg.Go(func() error {
			fcn(jlo, jhi)
			return nil
		})
	}
	eg.Wait()
}
