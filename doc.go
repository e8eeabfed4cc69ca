// Package gridpath is an engine for visualizing shortest-path search and
// maze generation over uniform 2D grids.
//
// 🚀 What is gridpath?
//
//	A small, synchronous, almost-zero-dependency library that provides:
//		• Grid model: nodes with roles (start/end/checkpoint), walls, and
//		  per-search bookkeeping, addressed by (row, col)
//		• Uniform-cost search: Dijkstra restricted to unit edge weights
//		• Heuristic search: A* with an admissible Manhattan heuristic
//		• Two-phase routing: start→checkpoint→end with automatic fallback
//		• Maze generators: recursive division, basic random, density random
//		  with clustering, stair pattern, and a DFS backtracker
//
// ✨ Why choose gridpath?
//
//   - Renderer-agnostic – every operation returns ordered node/cell
//     sequences and accepts per-event hooks; no drawing code inside
//   - Deterministic – fixed neighbor order and explicit tie-breaking make
//     repeated runs reproducible, which keeps animations and tests honest
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	grid/     — Grid and Node model, neighbor resolution, path reconstruction
//	astar/    — heuristic engine with Manhattan distance
//	dijkstra/ — uniform-cost (unit-weight) shortest-path engine
//	maze/     — wall-placement generators
//	route/    — two-phase orchestrator over either engine
//
// Quick ASCII example:
//
//	S . . #        S = start, E = end
//	. # . #        # = wall, . = open
//	. # . E
//
// A caller builds a grid, optionally runs a maze generator, then runs an
// engine (or route.Plan) and animates the returned visited order and path.
package gridpath
