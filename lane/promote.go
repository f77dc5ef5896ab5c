package lane

// This file provides width-changing operations: promotion (sign-extending
// widening), widening multiplication, and demotion (narrowing). The
// intermediate width is always explicit so that overflow behavior never
// depends on implicit integer promotion.

// PromoteI16ToI32 widens int16 to int32 (sign-extended).
func PromoteI16ToI32(v Vec[int16]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i := range v.data {
		result[i] = int32(v.data[i])
	}
	return Vec[int32]{data: result}
}

// MulWide multiplies each int16 lane by the scalar c, sign-extending both
// operands to 32 bits first. The full 32-bit product is kept, so even
// -32768 * -32768 (= 1<<30) does not wrap.
func MulWide(v Vec[int16], c int16) Vec[int32] {
	wc := int32(c)
	result := make([]int32, len(v.data))
	for i := range v.data {
		result[i] = int32(v.data[i]) * wc
	}
	return Vec[int32]{data: result}
}

// DemoteI32ToI16 narrows int32 to int16 (saturating).
// Values outside int16 range are clamped to [-32768, 32767].
func DemoteI32ToI16(v Vec[int32]) Vec[int16] {
	result := make([]int16, len(v.data))
	for i := range v.data {
		val := v.data[i]
		if val > 32767 {
			result[i] = 32767
		} else if val < -32768 {
			result[i] = -32768
		} else {
			result[i] = int16(val)
		}
	}
	return Vec[int16]{data: result}
}
