// Package visualize is a write-only JSON sink for a running Sample-Star
// loop: one record per step (belief state, current/next cells, the active
// store's weighted candidates, rendered stats), and a final record once
// the loop commits to a path.
//
// There is no teacher or pack file to ground this on directly — the
// original's util/visualiser.rs is listed in the retrieved index but its
// body was filtered out of the pack — so this is reconstructed from the
// spec's field list alone, in the teacher's doc-comment register.
package visualize
