// Copyright 2025 go-q15axpy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command q15axpy cross-checks the lane-parallel Q15 axpy evaluator against
// the scalar reference on deterministic data and reports their relative
// timings. Timings are wall-clock and advisory; the verification result is
// the exit status.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fixpt/go-q15axpy/lane"
	"github.com/fixpt/go-q15axpy/q15"
)

const (
	n     = 4096
	seed  = 1234
	alpha = int16(3)
)

func main() {
	fmt.Printf("lanes: %s (%d bytes, %d x int16)\n",
		lane.CurrentName(), lane.CurrentWidth(), lane.MaxLanes[int16]())

	// Deterministic full-range input data.
	rng := rand.New(rand.NewSource(seed))
	a := make([]int16, n)
	b := make([]int16, n)
	for i := range a {
		a[i] = int16(rng.Intn(1<<16) - 32768)
		b[i] = int16(rng.Intn(1<<16) - 32768)
	}

	ref := make([]int16, n)
	start := time.Now()
	q15.AxpyTo(ref, a, b, alpha)
	fmt.Printf("reference:  %v\n", time.Since(start))

	out := make([]int16, n)
	start = time.Now()
	q15.AxpyVecTo(out, a, b, alpha)
	fmt.Printf("vectorized: %v\n", time.Since(start))

	ok, maxDiff := q15.VerifyEqual(ref, out)
	if !ok {
		fmt.Printf("verify: FAIL (max diff = %d)\n", maxDiff)
		os.Exit(1)
	}
	fmt.Printf("verify: OK (max diff = %d)\n", maxDiff)
}
