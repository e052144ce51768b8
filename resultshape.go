package graphwork

// This file implements the six externally visible query shapes
// (single/multi-source × cost/path/all) as thin wrappers over Search.
// Each is a direct map/struct projection of Search's one SearchResult;
// no algorithmic work happens here.

// SingleSourceCost returns the cost map for a single-source query.
func (g *Graph) SingleSourceCost(source NodeID, opts SearchOptions) (map[NodeID]float64, error) {
	res, err := g.Search([]NodeID{source}, opts)
	if err != nil {
		return nil, err
	}
	return res.Cost, nil
}

// SingleSourcePath returns the path map for a single-source query.
func (g *Graph) SingleSourcePath(source NodeID, opts SearchOptions) (map[NodeID][]NodeID, error) {
	res, err := g.Search([]NodeID{source}, opts)
	if err != nil {
		return nil, err
	}
	return res.Paths, nil
}

// SingleSourceAll returns both the cost and path maps for a single-source
// query.
func (g *Graph) SingleSourceAll(source NodeID, opts SearchOptions) (SearchResult, error) {
	return g.Search([]NodeID{source}, opts)
}

// MultiSourceCost returns the cost map for a multi-source query: cost[v] is
// the distance from the nearest source.
func (g *Graph) MultiSourceCost(sources []NodeID, opts SearchOptions) (map[NodeID]float64, error) {
	res, err := g.Search(sources, opts)
	if err != nil {
		return nil, err
	}
	return res.Cost, nil
}

// MultiSourcePath returns the path map for a multi-source query.
func (g *Graph) MultiSourcePath(sources []NodeID, opts SearchOptions) (map[NodeID][]NodeID, error) {
	res, err := g.Search(sources, opts)
	if err != nil {
		return nil, err
	}
	return res.Paths, nil
}

// MultiSourceAll returns both maps for a multi-source query.
func (g *Graph) MultiSourceAll(sources []NodeID, opts SearchOptions) (SearchResult, error) {
	return g.Search(sources, opts)
}
