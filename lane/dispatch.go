package lane

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the instruction set the lane width was derived from.
type DispatchLevel int

const (
	// DispatchScalar indicates no data-parallel capability, pure Go fallback.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions with BW extension (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected capability level for this process.
// Set by init() in dispatch_*.go files and fixed thereafter.
var currentLevel DispatchLevel

// currentWidth is the lane-group width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current level.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the capability level in use.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the lane-group width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the Q15_NO_SIMD environment variable is set.
// When set, the scalar fallback is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("Q15_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the maximum number of lanes for type T with the current
// lane-group width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - int16: 32/2 = 16 lanes
//   - int32: 32/4 = 8 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}

// Elements reports how many elements of T the next iteration may process
// given the number remaining. It is deterministic in (remaining, hardware
// width) and always makes progress: 1 <= vl <= remaining whenever
// remaining > 0. In scalar mode it degenerates to one element per chunk.
func Elements[T Lanes](remaining int) int {
	if remaining <= 0 {
		return 0
	}
	vl := MaxLanes[T]()
	if currentLevel == DispatchScalar || vl < 1 {
		vl = 1
	}
	return min(vl, remaining)
}
