// Package lane provides portable data-parallel lane groups with runtime
// capability dispatch.
//
// It follows the Highway design philosophy: write the kernel loop once and
// let the chunk width adapt to whatever the hardware offers. The width of a
// lane group is discovered at package init from CPU capabilities, queried
// per iteration via Elements, and never baked into the kernel, so the same
// loop body handles full chunks and the final partial chunk alike.
//
// Basic usage:
//
//	import "github.com/fixpt/go-q15axpy/lane"
//
//	for i := 0; i < n; {
//		vl := lane.Elements[int16](n - i)
//		v := lane.LoadN(src[i:], vl)
//		// ... per-lane operations ...
//		lane.StoreN(v, dst[i:], vl)
//		i += vl
//	}
package lane

// SignedInts is a constraint for the signed integer element types the
// abstraction supports.
type SignedInts interface {
	~int16 | ~int32
}

// Lanes is a constraint for all types that can be stored in lanes.
type Lanes interface {
	SignedInts
}

// Vec is a portable lane group holding up to MaxLanes elements of T.
// Its length is the chunk width chosen when it was loaded.
//
// Vec instances should not be created directly; use LoadN or Set instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this lane group.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the lane group.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}
