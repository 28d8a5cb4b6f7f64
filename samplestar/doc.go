// Package samplestar implements the online Sample-Star control loop: each
// step folds a raycast observation into the belief grid, fans out `epoch`
// independent Monte-Carlo rollouts over a lazily-sampled expander, and
// commits one step of the path chosen by whichever path store — primary
// (successful rollouts) or fallback (none succeeded yet) — is active.
//
// Adapted from original_source/src/search/samplestarbaseline.rs, with
// rayon's parallel iterator replaced by golang.org/x/sync/errgroup.
package samplestar
