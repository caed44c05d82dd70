// Copyright © 2021 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ot

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// maxWorkers bounds how many goroutines forEachIndex spawns at once; it
// defaults to the host's GOMAXPROCS so a single Ote call doesn't starve
// the rest of a shared process.
func maxWorkers() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}

// forEachIndex runs fn(i) for every i in [0, n) across a bounded pool of
// goroutines, returning the first error encountered (if any) after every
// launched goroutine has finished. The index axis is the natural unit of
// parallelism for every per-message / per-column loop in this package: no
// index's work depends on another's.
func forEachIndex(n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(maxWorkers())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return fn(i)
		})
	}
	return g.Wait()
}
