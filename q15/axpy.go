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

// Package q15 implements a saturating fixed-point multiply-add over Q15
// samples: y[i] = sat(a[i] + alpha*b[i]).
//
// Q15 samples are 16-bit signed integers interpreted as fixed-point values
// in [-1, 1). The accumulator is always 32 bits wide: the product
// alpha*b[i] alone can reach 2^30, so 16-bit arithmetic would silently
// wrap. Results are clamped to [-32768, 32767] before narrowing back to
// 16 bits, never wrapped.
//
// Two evaluators are provided: AxpyTo, the element-by-element reference,
// and AxpyVecTo, which processes hardware-sized lane groups via the lane
// package. The two are bit-identical for every input; AxpyVecTo exists
// purely as an execution strategy.
package q15

import "github.com/fixpt/go-q15axpy/lane"

// Q15 sample range.
const (
	MaxQ15 = 32767
	MinQ15 = -32768
)

// satQ15 clamps a 32-bit accumulator into the Q15 range.
func satQ15(v int32) int16 {
	if v > MaxQ15 {
		return MaxQ15
	}
	if v < MinQ15 {
		return MinQ15
	}
	return int16(v)
}

// AxpyTo computes y[i] = sat(a[i] + alpha*b[i]) one element at a time
// using plain 32-bit arithmetic. This is the reference evaluator: the
// ground truth every other execution strategy must match bit-exactly.
//
// If the slices have different lengths, the operation uses the minimum
// length. Empty input is a no-op. Each output index is written exactly
// once and depends only on a[i], b[i] and alpha.
func AxpyTo(y, a, b []int16, alpha int16) {
	n := min(len(y), min(len(a), len(b)))
	wa := int32(alpha)
	for i := 0; i < n; i++ {
		acc := int32(a[i]) + wa*int32(b[i])
		y[i] = satQ15(acc)
	}
}

// AxpyVecTo computes the same result as AxpyTo by processing lanes in
// hardware-sized groups. The chunk width is queried from the lane package
// every iteration, so the loop is length-agnostic: the final partial chunk
// runs through the same body as the full ones, with no remainder branch.
//
// Output is bit-identical to AxpyTo for every input. When no data-parallel
// capability is available, this is a pure pass-through to AxpyTo.
//
// y may alias a or b element-for-element at matching offsets: each chunk's
// loads complete before that chunk's store.
func AxpyVecTo(y, a, b []int16, alpha int16) {
	if lane.CurrentLevel() == lane.DispatchScalar {
		AxpyTo(y, a, b, alpha)
		return
	}

	n := min(len(y), min(len(a), len(b)))
	for i := 0; i < n; {
		vl := lane.Elements[int16](n - i)

		va := lane.LoadN(a[i:], vl)
		vb := lane.LoadN(b[i:], vl)

		// acc = widen(a) + widen(alpha) * widen(b), per lane at 32 bits.
		acc := lane.Add(lane.PromoteI16ToI32(va), lane.MulWide(vb, alpha))

		// Clamp before narrowing; after min-then-max the value fits in
		// 16 bits, so the demote is lossless.
		acc = lane.MinConst(acc, MaxQ15)
		acc = lane.MaxConst(acc, MinQ15)

		lane.StoreN(lane.DemoteI32ToI16(acc), y[i:], vl)
		i += vl
	}
}

// Axpy computes dst[i] = sat(dst[i] + alpha*x[i]) in place.
//
// This is the in-place form of AxpyVecTo with dst doubling as the a-input,
// which is safe because chunks consume their reads before storing.
func Axpy(dst []int16, alpha int16, x []int16) {
	AxpyVecTo(dst, dst, x, alpha)
}
