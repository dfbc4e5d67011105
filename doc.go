// Package lvlathspatial is your in-memory toolkit for spatial indexing,
// collision broad-phasing, and graph pathfinding in a 2D simulation or
// game runtime.
//
// 🚀 What is lvlath-spatial?
//
//	A zero-allocation-conscious, dependency-light library that brings
//	together:
//
//	  • Geometry primitives: points, rectangles, axis-aligned boxes
//	  • Sparse/dense containers: SparseSet, ZIndexBuckets
//	  • Spatial indexes: QuadTree, Sweep-and-Prune broad phase
//	  • Graph solvers: Floyd–Warshall (scalar + SIMD/parallel), A*
//
// ✨ Why choose lvlath-spatial?
//
//   - Beginner-friendly — minimal API, clear, intuitive naming
//   - Predictable        — no cyclic ownership; pools addressed by index
//   - Extensible          — pluggable A* heuristics, tunable FloydWarshall
//     parallelism
//   - Pure Go             — no cgo, no hidden dependencies beyond testify
//     for tests
//
// Under the hood, everything is organized under one package per concern:
//
//	geometry/     — Position, Rectangle, AABB, CollisionPair
//	sparseset/    — SparseSet[K,V] dense/sparse duality container
//	zindex/       — ZIndexBuckets[T,Z] fixed-bucket ordered container
//	quadtree/     — pooled point QuadTree with rect/radius/nearest query
//	sweepprune/   — Sweep-and-Prune AABB broad phase
//	floydwarshall/ — dense all-pairs shortest path, scalar and optimized
//	astar/        — heuristic single-source shortest path
//
// Dive into SPEC_FULL.md and DESIGN.md for the full requirements this
// module implements and the reasoning behind each package.
//
//	go get github.com/katalvlaran/lvlath-spatial
package lvlathspatial
