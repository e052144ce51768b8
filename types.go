package graphwork

import "math"

// NodeID identifies a node in a Graph. The range is the full signed 64-bit
// integer space; nodes are created implicitly by the first edge or centroid
// mark that mentions them.
type NodeID int64

// EdgeAttributes maps an attribute name to its float64 value. A query
// selects one attribute by name to serve as the edge weight; see
// resolveWeight in weight.go.
type EdgeAttributes map[string]float64

// Clone returns a deep copy of attrs. A nil receiver clones to an empty,
// non-nil map, matching add_edge's "attrs may be empty" allowance.
func (attrs EdgeAttributes) Clone() EdgeAttributes {
	out := make(EdgeAttributes, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}

// EdgeTuple is one entry of a batch passed to Graph.AddEdges.
type EdgeTuple struct {
	Src, Dst NodeID
	Attrs    EdgeAttributes
}

// GraphInfo is the response to Graph.Info.
type GraphInfo struct {
	Nodes     int
	Edges     int
	Centroids int
}

// NodeInfo is the response to Graph.NodeInfo.
type NodeInfo struct {
	ID        NodeID
	InDegree  int
	OutDegree int
	Centroid  bool
}

// NoCutoff is the "no cutoff" sentinel for SearchOptions.Cutoff.
var NoCutoff = math.Inf(1)

// SearchOptions configures a PathSearch query: method, optional target,
// cutoff, and weight attribute name. HasTarget replaces a host-language
// "-1 means none" sentinel with an idiomatic boolean.
type SearchOptions struct {
	// Method selects the search algorithm. Only "Dijkstra" is recognized;
	// the empty string selects it as well.
	Method string
	// Target, when HasTarget is true, causes the search to stop as soon as
	// Target is settled and to report only that one node.
	Target    NodeID
	HasTarget bool
	// Cutoff bounds the cost of any reported path. Use NoCutoff for no bound.
	Cutoff float64
	// WeightName selects the edge attribute used as weight. The empty
	// string selects unit weight (hop count).
	WeightName string
}

// SearchResult is the output of a PathSearch query: the cost to reach each
// settled node and the node sequence (source...node inclusive) that
// achieves it. A node absent from Cost was unreachable within the cutoff,
// pruned by the centroid rule, or excluded by a single-target query.
type SearchResult struct {
	Cost  map[NodeID]float64
	Paths map[NodeID][]NodeID
}
