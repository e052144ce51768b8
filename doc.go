// Package graphwork implements a directed weighted graph with multi-attribute
// edges and a Dijkstra-based shortest-path search engine.
//
// A Graph stores nodes identified by arbitrary signed integers and directed
// edges carrying a named float64 attribute map. A query selects one named
// attribute as its weight (the empty string selects unit weight, i.e. hop
// count). Nodes may be flagged as centroids: connector stubs that a search
// may start or end at but never pass through (see Graph.SetCentroid).
//
// The search core (Search, MaskedSearch) supports single- and multi-source
// start sets, an optional single target with early exit, and a distance
// cutoff. Sibling packages build on top of it: kshortest enumerates
// Yen-style loopless k-shortest paths, batch fans independent queries out
// across a worker pool and materializes dense cost matrices, geoutil snaps
// coordinates onto the nearest graph node, osm ingests OSM PBF extracts
// into a Graph, and geoexport renders a path as GeoJSON.
package graphwork
