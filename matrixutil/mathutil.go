package matrixutil

import "math"

// expNeg returns exp(-v) in float32.
func expNeg(v float32) float32 {
	return float32(math.Exp(-float64(v)))
}
