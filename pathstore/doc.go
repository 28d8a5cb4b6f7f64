// Package pathstore aggregates the outcomes of many Sample-Star rollouts
// into a per-cell score used to pick the next committed step: AccStore sums
// a weighting function over every visit across every added path, GreedyStore
// keeps only the single most-recently-added path.
//
// Adapted from original_source/src/search/pathstore.rs.
package pathstore
