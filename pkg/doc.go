// Package pkg provides the core libraries for pixvec pixel-art vectorization.
//
// # Overview
//
// Pixvec converts pixel-art rasters into scalable vector documents. The pkg
// directory is organized into the following areas:
//
//  1. [grid] - Raster loading and the normalized pixel grid
//  2. [mesh] - Color partitioning, greedy rectangle merging, unit tiling
//  3. [vector] - Shape documents and the SVG/JSON/PNG renderers
//  4. [engine] - The conversion facade tying grid, mesh, and vector together
//  5. [batch] - Multi-image orchestration with artifact caching
//  6. [cache] - File, Redis, and no-op artifact cache backends
//  7. [errors] - Structured errors with stable machine-readable codes
//  8. [observability] - Optional instrumentation hooks
//
// # Architecture
//
// The typical data flow through pixvec:
//
//	PNG/GIF/JPEG file
//	         ↓
//	grid.Load → *grid.Grid
//	         ↓
//	engine.Convert (mesh or tile per mode)
//	         ↓
//	*vector.Document
//	         ↓
//	vector.RenderSVG / RenderJSON / RenderPNG
//
// Conversions are deterministic: the same input and options always produce
// byte-identical output, which is what makes the artifact cache sound.
package pkg
