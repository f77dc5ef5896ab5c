package lane

// This file provides the portable (pure Go) implementations of the lane
// operations. They are written so that a compiler can vectorize the inner
// loops; the chunk width still comes from the runtime dispatch, so kernels
// built on them stay length-agnostic across targets.

// LoadN creates a lane group from the first vl contiguous elements of src.
// This is a unit-stride load; vl is capped by len(src).
func LoadN[T Lanes](src []T, vl int) Vec[T] {
	n := min(vl, len(src))
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// StoreN writes the first vl lanes of v to dst.
func StoreN[T Lanes](v Vec[T], dst []T, vl int) {
	n := min(vl, min(len(dst), len(v.data)))
	copy(dst[:n], v.data[:n])
}

// Set creates a lane group with all MaxLanes lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Add returns the per-lane sum a[i] + b[i].
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// MinConst returns per-lane minimum against the broadcast constant c.
func MinConst[T Lanes](v Vec[T], c T) Vec[T] {
	result := make([]T, len(v.data))
	for i := range v.data {
		if v.data[i] < c {
			result[i] = v.data[i]
		} else {
			result[i] = c
		}
	}
	return Vec[T]{data: result}
}

// MaxConst returns per-lane maximum against the broadcast constant c.
func MaxConst[T Lanes](v Vec[T], c T) Vec[T] {
	result := make([]T, len(v.data))
	for i := range v.data {
		if v.data[i] > c {
			result[i] = v.data[i]
		} else {
			result[i] = c
		}
	}
	return Vec[T]{data: result}
}
