// Package matrixutil provides the generic dense matrix and 2D convolution
// primitives shared by the belief grid and visibility kernel.
package matrixutil
