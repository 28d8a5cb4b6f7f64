// Package visibility implements integer Bresenham line casting with early
// exit, and the ray-cast visibility kernel built on top of it.
//
// Adapted from original_source/src/fov/linedrawing.rs::bresenham and
// original_source/src/fov/fieldofvision.rs::raycasting.
package visibility
