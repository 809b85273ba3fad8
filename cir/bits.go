package cir

import "math"

func float64FromBits(hi32, lo32 uint32) float64 {
	return math.Float64frombits(uint64(hi32)<<32 | uint64(lo32))
}
