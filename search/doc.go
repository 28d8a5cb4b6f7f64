// Package search implements the best-effort search engine shared by the
// Sample-Star rollouts and the standalone A*-only mode: a min-heap open
// list keyed by (f, random tiebreak), with two concrete instances — plain
// A* and bounded semi-admissible Focal-Search — both of which always
// return a non-empty path, falling back to the path reached so far (ranked
// by a caller-supplied heuristic) when the goal is never found.
//
// Adapted from original_source/src/search/astar.rs and
// original_source/src/search/focalsearch.rs, with the heap/runner shape
// borrowed from dijkstra/dijkstra.go's lazy-decrease-key priority queue.
package search
