// Package heuristic provides grid distance estimators for ranking search
// candidates, plus the probability-to-goal fallback heuristic used when a
// Sample-Star rollout never reaches the goal.
//
// Adapted from original_source/src/heuristics/distance.rs and
// original_source/src/heuristics/probability.rs.
package heuristic
