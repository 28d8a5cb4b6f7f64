package matrixutil

// ConvResolve selects how convolution resolves samples that fall outside the
// source matrix. Nearest (edge replication / clamp-to-edge) is the policy
// the belief grid's blur uses (spec.md §4.4): boundary cells' values are
// replicated rather than treated as zero or wrapped.
type ConvResolve int

const (
	// ConvNearest clamps out-of-range coordinates to the nearest edge.
	ConvNearest ConvResolve = iota
	// ConvWrap wraps out-of-range coordinates around the matrix (toroidal).
	ConvWrap
	// ConvFill resolves out-of-range coordinates to a constant.
	ConvFill
)

// resolve maps a possibly out-of-range (x, y) to an in-range source sample,
// or reports that the fill constant should be used instead.
func resolve(width, height, x, y int, mode ConvResolve) (rx, ry int, useFill bool) {
	switch mode {
	case ConvFill:
		if x < 0 || x >= width || y < 0 || y >= height {
			return 0, 0, true
		}
		return x, y, false
	case ConvWrap:
		rx = ((x % width) + width) % width
		ry = ((y % height) + height) % height
		return rx, ry, false
	case ConvNearest:
		fallthrough
	default:
		rx = clamp(x, 0, width-1)
		ry = clamp(y, 0, height-1)
		return rx, ry, false
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Convolve2D convolves matrix with kernel under the given edge-resolution
// policy, using fill as the constant for ConvFill. Both matrices must have
// odd-sided kernels for a well-defined center; kernel is applied with its
// center aligned to each output cell.
//
// Adapted from original_source/src/util/matrix.rs::convolve2d, restricted to
// float32 (the only type the belief grid's blur needs) rather than the
// original's fully generic Add+Mul type parameter.
func Convolve2D(matrix, kernel Matrix[float32], mode ConvResolve, fill float32) Matrix[float32] {
	result, _ := New[float32](matrix.Width, matrix.Height)
	kcx := kernel.Width / 2
	kcy := kernel.Height / 2
	for y := 0; y < matrix.Height; y++ {
		for x := 0; x < matrix.Width; x++ {
			var sum float32
			for j := 0; j < kernel.Height; j++ {
				for i := 0; i < kernel.Width; i++ {
					sx := x + i - kcx
					sy := y + j - kcy
					var sample float32
					rx, ry, useFill := resolve(matrix.Width, matrix.Height, sx, sy, mode)
					if useFill {
						sample = fill
					} else {
						sample = matrix.Get(rx, ry)
					}
					sum += sample * kernel.Get(i, j)
				}
			}
			result.SetUnchecked(x, y, sum)
		}
	}

	return result
}

// GaussianKernel builds a normalized size x size Gaussian kernel with the
// given standard deviation sigma. size should be odd so the kernel has a
// well-defined center. Adapted from
// original_source/src/util/matrix.rs::gaussian_kernal.
func GaussianKernel(size int, sigma float32) Matrix[float32] {
	k, _ := New[float32](size, size)
	center := size / 2
	sigma2 := sigma * sigma
	var sum float32
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			dx := float32(i - center)
			dy := float32(j - center)
			v := expNeg((dx*dx + dy*dy) / (2 * sigma2))
			k.SetUnchecked(i, j, v)
			sum += v
		}
	}
	for i := range k.Data {
		k.Data[i] /= sum
	}

	return k
}
