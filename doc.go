// Package sightline is an in-memory toolkit for terrain line-of-sight
// analysis — from validated heightmap views to exact grid traversal and
// probabilistic visibility estimation.
//
// 🚀 What is sightline?
//
//	A small, thread-safe library that brings together:
//		• Heightmap views: validated, immutable, row-major elevation grids
//		• Exact LOS: amortized grid-DDA traversal visiting every crossed cell
//		• Probabilistic LOS: jittered multi-sample visibility estimation
//		• DEM utilities: elevation statistics and content fingerprints
//
// ✨ Why choose sightline?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable maps, pure functions, in-code docs
//   - Pure Go – no cgo, safe for concurrent use on a shared heightmap
//   - Exact – cell-accurate traversal, never fixed-step sampling that
//     can skip thin occluders
//
// Everything is organized under two subpackages:
//
//	heightmap/ — the Map view over a row-major elevation buffer,
//	             with bounds helpers, statistics and fingerprinting
//	los/       — Visible (exact boolean check) and Probability
//	             (jittered multi-sample estimator)
//
// Quick ASCII example:
//
//	    A···▲···B
//	        │
//	     terrain
//
//	A sees B iff no cell crossed by the segment A→B rises above the
//	ray's interpolated height at that cell.
//
// Dive into the examples/ directory for runnable scenarios, and into
// each package's doc.go for algorithms, complexity and error contracts.
//
//	go get github.com/arverden/sightline
package sightline
