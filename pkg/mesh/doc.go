// Package mesh implements the rectangle-cover core of the converter.
//
// The pipeline is: partition a pixel grid into per-color occupancy masks,
// then cover each mask with axis-aligned rectangles. Two strategies exist:
//
//   - Mesher: greedy meshing. Repeatedly extracts the largest all-true
//     rectangle from the mask until no cells remain. Finding the exact
//     minimum cover is NP-hard, so this is a heuristic; it guarantees exact
//     coverage (every cell covered exactly once) but not global optimality.
//   - Tile: one 1x1 rectangle per opaque pixel, no merging.
//
// The largest rectangle is found with a histogram scan: for each row, track
// per-column heights of contiguous true runs ending at that row, then run a
// monotonic-stack largest-rectangle-in-histogram pass. Ties on area are
// broken top-left-most (smallest y, then x) so output is reproducible
// across runs.
package mesh
