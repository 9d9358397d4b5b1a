// Package factorgraph is the structural backbone for graphical-model
// inference code: a sparse bipartite graph with O(1) bidirectional
// edge traversal from either endpoint.
//
// 🚀 What is factorgraph?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• bipartite/  — the dual cross-referenced adjacency store, its
//		  invariant-preserving mutations, and derived queries
//		  (second-order neighborhoods, connectivity, tree test)
//		• edgeindex/  — the deprecated flat edge-index compatibility layer,
//		  with explicit staleness detection
//		• dot/        — read-only GraphViz DOT serialization
//		• handle/     — stable opaque node handles over the positional core
//
// ✨ Why choose factorgraph?
//
//   - Crux done right – every mutation preserves the dual cross-reference
//     invariant, or rejects before touching state
//   - Rock-solid guarantees – always-on bound checks, sentinel errors,
//     property-tested invariants
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – sorted outputs, documented complexity on every call
//
// The store is a plain mutable structure for single-threaded use by a
// calling algorithm (message-passing loops, junction trees). If shared
// across goroutines, the caller must provide external mutual exclusion.
//
// Quick ASCII example (three variables, two factors):
//
//	v0   v1   v2
//	  \  | \  | \
//	   \ |  \ |  \
//	    f0    f1
//
// Dive into the per-package docs for full examples and complexity notes.
//
//	go get github.com/katalvlaran/factorgraph/bipartite
package factorgraph
