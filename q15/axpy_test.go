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

package q15

import (
	"fmt"
	"math/rand"
	"testing"
)

// evaluators runs a test body against both execution strategies; every
// contract property must hold for each of them independently.
var evaluators = []struct {
	name string
	fn   func(y, a, b []int16, alpha int16)
}{
	{"ref", AxpyTo},
	{"vec", AxpyVecTo},
}

func randomInputs(rng *rand.Rand, n int) (a, b []int16) {
	a = make([]int16, n)
	b = make([]int16, n)
	for i := range a {
		a[i] = int16(rng.Intn(1<<16) - 32768)
		b[i] = int16(rng.Intn(1<<16) - 32768)
	}
	return a, b
}

func TestAxpyPassthrough(t *testing.T) {
	for _, ev := range evaluators {
		t.Run(ev.name, func(t *testing.T) {
			a := []int16{100, 0, -50}
			b := []int16{10, 0, 25}
			y := make([]int16, 3)
			ev.fn(y, a, b, 2)

			// In-range results pass through unclamped: 100 + 2*10 = 120.
			expected := []int16{120, 0, 0}
			for i := range expected {
				if y[i] != expected[i] {
					t.Errorf("index %d: got %d, want %d", i, y[i], expected[i])
				}
			}
		})
	}
}

func TestAxpySaturationUpper(t *testing.T) {
	for _, ev := range evaluators {
		t.Run(ev.name, func(t *testing.T) {
			a := []int16{32767}
			b := []int16{32767}
			y := make([]int16, 1)
			ev.fn(y, a, b, 32767)
			if y[0] != MaxQ15 {
				t.Errorf("got %d, want %d", y[0], MaxQ15)
			}
		})
	}
}

func TestAxpySaturationLower(t *testing.T) {
	for _, ev := range evaluators {
		t.Run(ev.name, func(t *testing.T) {
			a := []int16{-32768}
			b := []int16{32767}
			y := make([]int16, 1)
			ev.fn(y, a, b, -32768)
			if y[0] != MinQ15 {
				t.Errorf("got %d, want %d", y[0], MinQ15)
			}
		})
	}
}

func TestAxpyZeroGain(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a, b := randomInputs(rng, 257)
	for _, ev := range evaluators {
		t.Run(ev.name, func(t *testing.T) {
			y := make([]int16, len(a))
			ev.fn(y, a, b, 0)
			for i := range a {
				if y[i] != a[i] {
					t.Errorf("index %d: got %d, want %d (alpha=0 must be identity on a)", i, y[i], a[i])
				}
			}
		})
	}
}

func TestAxpyEmpty(t *testing.T) {
	for _, ev := range evaluators {
		t.Run(ev.name, func(t *testing.T) {
			ev.fn(nil, nil, nil, 3)
			ev.fn([]int16{}, []int16{}, []int16{}, 3)
		})
	}
}

func TestAxpyMinLength(t *testing.T) {
	for _, ev := range evaluators {
		t.Run(ev.name, func(t *testing.T) {
			a := []int16{1, 2, 3, 4}
			b := []int16{1, 1}
			y := []int16{-99, -99, -99, -99}
			ev.fn(y, a, b, 1)

			// Only min(len) outputs are written; the tail stays untouched.
			expected := []int16{2, 3, -99, -99}
			for i := range expected {
				if y[i] != expected[i] {
					t.Errorf("index %d: got %d, want %d", i, y[i], expected[i])
				}
			}
		})
	}
}

// TestAxpyVecMatchesRef is the core equivalence property: the lane-parallel
// path must be bit-identical to the reference for every length, including
// lengths off by one from any plausible hardware chunk width (1..64) and
// around the harness size 4096.
func TestAxpyVecMatchesRef(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	alphas := []int16{0, 1, -1, 3, 255, -256, 32767, -32768}

	sizes := make([]int, 0, 140)
	for n := 0; n <= 130; n++ {
		sizes = append(sizes, n)
	}
	sizes = append(sizes, 4095, 4096, 4097)

	for _, n := range sizes {
		a, b := randomInputs(rng, n)
		for _, alpha := range alphas {
			ref := make([]int16, n)
			out := make([]int16, n)
			AxpyTo(ref, a, b, alpha)
			AxpyVecTo(out, a, b, alpha)

			if ok, maxDiff := VerifyEqual(ref, out); !ok {
				t.Fatalf("n=%d alpha=%d: vectorized diverges from reference (max diff = %d)", n, alpha, maxDiff)
			}
		}
	}
}

// TestAxpyVecMatchesRefExtremes drives whole arrays of boundary values
// through both paths, so every lane of every chunk hits the clamp.
func TestAxpyVecMatchesRefExtremes(t *testing.T) {
	values := []int16{-32768, -1, 0, 1, 32767}
	const n = 100

	for _, va := range values {
		for _, vb := range values {
			for _, alpha := range values {
				a := make([]int16, n)
				b := make([]int16, n)
				for i := range a {
					a[i] = va
					b[i] = vb
				}
				ref := make([]int16, n)
				out := make([]int16, n)
				AxpyTo(ref, a, b, alpha)
				AxpyVecTo(out, a, b, alpha)

				if ok, maxDiff := VerifyEqual(ref, out); !ok {
					t.Fatalf("a=%d b=%d alpha=%d: diverges (max diff = %d)", va, vb, alpha, maxDiff)
				}
			}
		}
	}
}

func TestAxpyInPlace(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	dst, x := randomInputs(rng, 333)

	want := make([]int16, len(dst))
	AxpyTo(want, dst, x, 3)

	Axpy(dst, 3, x)
	if ok, maxDiff := VerifyEqual(want, dst); !ok {
		t.Fatalf("in-place result diverges from reference (max diff = %d)", maxDiff)
	}
}

func TestVerifyEqual(t *testing.T) {
	ref := []int16{1, 2, 3}
	same := []int16{1, 2, 3}
	if ok, maxDiff := VerifyEqual(ref, same); !ok || maxDiff != 0 {
		t.Errorf("equal slices: got ok=%v maxDiff=%d, want true 0", ok, maxDiff)
	}

	diff := []int16{1, -5, 3}
	if ok, maxDiff := VerifyEqual(ref, diff); ok || maxDiff != 7 {
		t.Errorf("differing slices: got ok=%v maxDiff=%d, want false 7", ok, maxDiff)
	}

	// Extreme difference must not overflow the 32-bit accumulator.
	if ok, maxDiff := VerifyEqual([]int16{32767}, []int16{-32768}); ok || maxDiff != 65535 {
		t.Errorf("extreme difference: got ok=%v maxDiff=%d, want false 65535", ok, maxDiff)
	}
}

// ============================================================================
// Benchmarks
// ============================================================================

func BenchmarkAxpyTo(b *testing.B) {
	benchmarkEvaluator(b, AxpyTo)
}

func BenchmarkAxpyVecTo(b *testing.B) {
	benchmarkEvaluator(b, AxpyVecTo)
}

func benchmarkEvaluator(b *testing.B, fn func(y, a, b []int16, alpha int16)) {
	sizes := []int{16, 256, 4096}

	for _, size := range sizes {
		rng := rand.New(rand.NewSource(1234))
		x, y := randomInputs(rng, size)
		out := make([]int16, size)

		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				fn(out, x, y, 3)
			}
		})
	}
}
