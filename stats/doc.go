// Package stats implements the per-step statistics bag: three built-in
// scalar accumulators (Paths, Exp, AVG Len) plus caller-supplied per-path
// and per-step hooks, rendered as "%s: %.2f" strings.
//
// Adapted from original_source/src/search/samplestarstats.rs.
package stats
