// Package pkg provides the core libraries for Topograph topology building.
//
// # Overview
//
// Topograph transforms heterogeneous infrastructure inventory into typed
// node/edge graphs for migration planning. The pkg directory is organized
// into these areas:
//
//  1. [inventory] - Inventory record types and payload decoding
//  2. [naming], [classify] - Identity derivation and category heuristics
//  3. [builder], [layout] - Graph assembly and initial placement
//  4. [graph] - Graph types, merging, and serialization
//  5. [cache], [store] - Transform caching and graph persistence
//
// # Architecture
//
// The typical data flow through Topograph:
//
//	Inventory upload (vSphere export / hardware catalog)
//	         ↓
//	    [inventory] package (decode records)
//	         ↓
//	    [builder] package (assemble hierarchy, classify, place)
//	         ↓
//	    [graph] package (merge sources, serialize)
//	         ↓
//	    Rendering surface (out of scope)
//
// The transformation core (naming, classify, layout, builder, graph) is
// pure: no I/O, no shared state, deterministic output for a fixed input and
// configuration. Caching and persistence live at the edges.
package pkg
