//go:build amd64

package lane

import "golang.org/x/sys/cpu"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
		return
	}

	switch {
	case cpu.X86.HasAVX512BW:
		// 16-bit lanes need AVX-512BW; AVX-512F alone only covers 32/64-bit.
		currentLevel = DispatchAVX512
		currentWidth = 64
		currentName = "avx512"
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	default:
		// SSE2 is part of the amd64 baseline, always present.
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
	}
}
