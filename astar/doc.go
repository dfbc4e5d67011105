// Package astar implements heuristic single-source shortest-path search
// over an adjacency list keyed by small integer indices, with an optional
// entity-mapped façade for opaque uint64 ids.
//
// What:
//
//   - AStar[W] holds per-node g_score/came_from/closed arrays sized to n,
//     a binary min-heap open set keyed on f = g + h, and an adjacency
//     list of (neighbor, weight) edges per node.
//   - The heuristic is a tagged selector {Euclidean, Manhattan, Chebyshev,
//     Octile, Zero} over node positions, or a caller-supplied function;
//     setting one clears the other.
//
// Why:
//
//   - A single generic engine serves both a plain graph search (zero
//     heuristic, equivalent to Dijkstra) and a grid/terrain search with an
//     admissible distance estimate, without duplicating the open/closed
//     bookkeeping.
//
// Closed nodes are never re-opened: an inadmissible heuristic can yield a
// suboptimal path rather than a wrong one breaking termination. That
// tradeoff is the caller's responsibility, not an engine bug.
package astar
