// Package natgrid turns scattered field measurements into regular grids —
// natural-neighbour (Sibson) interpolation from sample cloud to raster,
// with the whole pipeline exposed as small, composable packages.
//
// 🚀 What is natgrid?
//
//	A spatial interpolation toolkit that brings together:
//		• Sample clouds: load, validate & index scattered observations
//		• Delaunay meshes: half-edge triangulations with edge walking
//		• Sibson weights: area-stealing estimates with anchor caching
//		• Grid sweeps: deterministic multi-worker rasterisation
//		• Raster IO: ESRI ASCII grids, square or rectangular cells
//		• Point IO: shapefiles, GeoJSON & plain XYZ columns
//		• Builders: deterministic synthetic clouds for tests & demos
//
// ✨ Why choose natgrid?
//
//   - Exact at the samples – a query on a sample returns its value, always
//   - Deterministic – one worker or sixteen, the grid is bit-identical
//   - Honest about gaps – cells the estimator cannot value come back as
//     nodata instead of a guess
//   - Context-aware – long sweeps cancel cleanly mid-row
//
// Under the hood, everything is organized under focused subpackages:
//
//	cloud/   — Sample & Cloud types, k-d nearest-sample index
//	mesh/    — Delaunay triangulation, half-edges, point→edge map
//	sibson/  — the natural-neighbour weight engine
//	surface/ — the row-worker grid scheduler
//	raster/  — grid geometry & the ESRI ASCII codec
//	pointio/ — shapefile / GeoJSON / XYZ loaders
//	builder/ — deterministic synthetic cloud constructors
//
// Quick ASCII example:
//
//	    ·  ·   ·    ┌─────────┐
//	  ·   x    ·  → │ 4 5 6 6 │
//	    ·    ·      │ 3 5 7 6 │
//	  ·   ·    ·    └─────────┘
//
//	scattered samples in, a filled grid out; x marks a query anchored to
//	its nearest sample.
//
// Dive into examples/ for end-to-end scenarios, from survey file to DEM.
//
//	go get github.com/katalvlaran/natgrid
package natgrid
