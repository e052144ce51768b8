// Package kshortest enumerates up to k loopless shortest paths between a
// source and target node using Yen's algorithm, built on top of
// graphwork.Graph.MaskedSearch.
//
// The structure here (root path, spur node, a persistent candidate pool
// sorted by cost each round) follows the vocabulary gonum's
// graph/path/yen_ksp.go uses for the same algorithm, corrected into a
// working implementation that shares graph storage via a node/edge mask
// rather than mutating the graph directly.
package kshortest
