// SPDX-License-Identifier: MIT

package kernel

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultGrain is the smallest chunk Parallel hands to a worker.
const DefaultGrain = 1 << 12

// Dispatcher runs body over [0, n) split into disjoint sub-ranges.
// body must only write to slots owned by its sub-range.
type Dispatcher interface {
	For(n int, body func(lo, hi int)) error
}

// Serial runs the whole range on the calling goroutine.
type Serial struct{}

// For implements Dispatcher.
func (Serial) For(n int, body func(lo, hi int)) (err error) {
	if n <= 0 {
		return nil
	}
	defer recoverInto(&err)
	body(0, n)
	return nil
}

// Parallel splits the range into chunks of at least Grain indices and runs
// them on at most Workers goroutines. Zero values select GOMAXPROCS and
// DefaultGrain.
type Parallel struct {
	Workers int
	Grain   int
}

// For implements Dispatcher.
func (p Parallel) For(n int, body func(lo, hi int)) error {
	if n <= 0 {
		return nil
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	grain := p.Grain
	if grain <= 0 {
		grain = DefaultGrain
	}
	chunk := (n + workers - 1) / workers
	if chunk < grain {
		chunk = grain
	}
	if chunk >= n {
		return Serial{}.For(n, body)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() (err error) {
			defer recoverInto(&err)
			body(lo, hi)
			return nil
		})
	}
	return g.Wait()
}

func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = errors.Wrapf(ErrKernelPanic, "%v", r)
	}
}
