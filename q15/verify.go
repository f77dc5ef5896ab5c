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

// VerifyEqual reports whether ref and test agree element-wise, together
// with the maximum absolute per-index difference. A divergence between the
// two evaluators is a correctness defect, so callers typically treat
// ok == false as fatal.
//
// If the slices have different lengths, the comparison covers the minimum
// length.
func VerifyEqual(ref, test []int16) (ok bool, maxAbsDiff int32) {
	n := min(len(ref), len(test))
	for i := 0; i < n; i++ {
		d := int32(ref[i]) - int32(test[i])
		if d < 0 {
			d = -d
		}
		if d > maxAbsDiff {
			maxAbsDiff = d
		}
	}
	return maxAbsDiff == 0, maxAbsDiff
}
