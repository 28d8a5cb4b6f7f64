// Package bgrid implements a bit-packed 2D occupancy grid: one bit per
// cell, padded on every side so any 4- or 8-neighbor of an in-bounds cell
// can be addressed without a bounds check.
//
// Adapted from
// original_source/src/domains/bitpackedgrids/bitpackedgrid2d.rs, with the
// word-level bit storage delegated to github.com/kelindar/bitmap instead of
// a hand-rolled []uint64 slice: that library already owns the
// grow/set/clear/popcount primitives a packed bitset needs, so this package
// only has to get the padding and indexing arithmetic right.
package bgrid
