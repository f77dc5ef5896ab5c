//go:build !amd64 && !arm64

package lane

func init() {
	// Other architectures fall back to scalar mode for now.
	// Future implementations will add:
	// - riscv64: Vector extension support
	// - wasm: SIMD128 support

	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte groups even in scalar mode for consistency
	currentName = "scalar"
}
