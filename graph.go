package graphwork

// Graph is a directed adjacency structure over arbitrary int64 node
// identifiers. It owns every Node and Edge it contains. Graph mutation is
// single-threaded by contract: no method here takes a lock. Instead,
// generation is bumped on every mutating call so a concurrent PathSearch
// or batch.Executor run can detect, after the fact, that the precondition
// was violated (a debug-mode check, not a guard).
type Graph struct {
	nodes      map[NodeID]struct{}
	out        map[NodeID]map[NodeID]EdgeAttributes
	in         map[NodeID]map[NodeID]struct{}
	centroids  map[NodeID]struct{}
	edgeCount  int
	generation uint64
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[NodeID]struct{}),
		out:       make(map[NodeID]map[NodeID]EdgeAttributes),
		in:        make(map[NodeID]map[NodeID]struct{}),
		centroids: make(map[NodeID]struct{}),
	}
}

// Generation returns the current mutation counter. MaskedSearch compares
// the same counter before and after a query to detect a racing mutation.
func (g *Graph) Generation() uint64 { return g.generation }

func (g *Graph) ensureNode(id NodeID) {
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = struct{}{}
		g.out[id] = make(map[NodeID]EdgeAttributes)
		g.in[id] = make(map[NodeID]struct{})
	}
}

// Exists reports whether id has been created (by an edge or a centroid
// mark).
func (g *Graph) Exists(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// IsCentroid reports whether id is marked as a centroid. A node that does
// not exist is never a centroid.
func (g *Graph) IsCentroid(id NodeID) bool {
	_, ok := g.centroids[id]
	return ok
}

// Neighbors returns the live outgoing-edge map for u: destination node to
// attribute map. Callers must treat it as read-only for the duration of a
// query; it is not a copy.
func (g *Graph) Neighbors(u NodeID) map[NodeID]EdgeAttributes {
	return g.out[u]
}

// AddEdge inserts or replaces the directed edge (src, dst) with the given
// attribute map, creating src and dst if either is absent. A duplicate
// insert replaces the previous attribute map (last writer wins); attrs may
// be nil or empty.
func (g *Graph) AddEdge(src, dst NodeID, attrs EdgeAttributes) {
	g.ensureNode(src)
	g.ensureNode(dst)
	if _, existed := g.out[src][dst]; !existed {
		g.edgeCount++
	}
	g.out[src][dst] = attrs.Clone()
	g.in[dst][src] = struct{}{}
	g.generation++
}

// AddEdges inserts a batch of edges. The host-language binding layer is
// responsible for rejecting malformed tuple shapes before calling this
// method; every EdgeTuple reaching here is well-typed, so this always
// succeeds.
func (g *Graph) AddEdges(edges []EdgeTuple) {
	for _, e := range edges {
		g.AddEdge(e.Src, e.Dst, e.Attrs)
	}
}

// RemoveEdge deletes the edge (src, dst). It returns ErrEdgeNotFound if no
// such edge exists. The nodes themselves are not removed.
func (g *Graph) RemoveEdge(src, dst NodeID) error {
	if _, ok := g.out[src][dst]; !ok {
		return edgeNotFoundf(src, dst)
	}
	delete(g.out[src], dst)
	delete(g.in[dst], src)
	g.edgeCount--
	g.generation++
	return nil
}

// RemoveEdges removes a batch of edges all-or-nothing: every pair is
// checked for existence before any mutation happens, so a missing pair
// leaves the graph untouched.
func (g *Graph) RemoveEdges(pairs [][2]NodeID) error {
	for _, p := range pairs {
		if _, ok := g.out[p[0]][p[1]]; !ok {
			return edgeNotFoundf(p[0], p[1])
		}
	}
	for _, p := range pairs {
		if _, ok := g.out[p[0]][p[1]]; !ok {
			continue // repeated pair, already removed earlier in this batch
		}
		delete(g.out[p[0]], p[1])
		delete(g.in[p[1]], p[0])
		g.edgeCount--
	}
	g.generation++
	return nil
}

// SetCentroid marks id as a centroid, creating the node if absent.
func (g *Graph) SetCentroid(id NodeID) {
	g.ensureNode(id)
	g.centroids[id] = struct{}{}
	g.generation++
}

// SetCentroids marks every id in ids as a centroid.
func (g *Graph) SetCentroids(ids []NodeID) {
	for _, id := range ids {
		g.ensureNode(id)
		g.centroids[id] = struct{}{}
	}
	g.generation++
}

// Info returns graph-wide counts.
func (g *Graph) Info() GraphInfo {
	return GraphInfo{
		Nodes:     len(g.nodes),
		Edges:     g.edgeCount,
		Centroids: len(g.centroids),
	}
}

// NodeInfo returns degree and centroid information for id, or
// ErrNodeNotFound if id does not exist.
func (g *Graph) NodeInfo(id NodeID) (NodeInfo, error) {
	if _, ok := g.nodes[id]; !ok {
		return NodeInfo{}, nodeNotFoundf(id)
	}
	return NodeInfo{
		ID:        id,
		InDegree:  len(g.in[id]),
		OutDegree: len(g.out[id]),
		Centroid:  g.IsCentroid(id),
	}, nil
}

// LinkInfo returns a copy of the attribute map for edge (src, dst), or
// ErrEdgeNotFound if it does not exist.
func (g *Graph) LinkInfo(src, dst NodeID) (EdgeAttributes, error) {
	attrs, ok := g.out[src][dst]
	if !ok {
		return nil, edgeNotFoundf(src, dst)
	}
	return attrs.Clone(), nil
}
