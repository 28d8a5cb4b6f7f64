// Package mapio loads and renders the UTF-8 text map format shared by
// every problem in this module: '.' is traversable, any other in-row rune
// is an obstacle, and an optional overlay marks a path with '*'.
//
// Adapted from original_source/src/domains/bitpackedgrids/mod.rs's
// new_from_string/print_cells and the teacher's construction-time
// validation style (gridgraph's ErrEmptyGrid/ErrNonRectangular).
package mapio
