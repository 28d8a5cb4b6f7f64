// Package belief implements the Kalman belief grid: a matrix of 1-D Kalman
// nodes over occupancy probability, coupled to a hidden bit-packed ground
// truth. Rollouts sample concrete grids from this belief; observations
// (raycast updates) fold measurements back into it.
//
// Adapted from
// original_source/src/domains/samplegrids/samplegrid2d.rs::SampleGrid2d in
// full.
package belief
