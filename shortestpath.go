package graphwork

// This file implements the single-pair shortest_path_{cost,path,all}
// operations of spec.md §6: a single source, a single target, and one
// weight attribute name. Each is Search with a fixed single-element source
// set and HasTarget set, the same early-exit query dijkstra_test.go's
// TestTargetEarlyExit already exercises.

// ShortestPathCost returns the cost from source to target, or an empty map
// if target is unreachable. No cutoff is applied.
func (g *Graph) ShortestPathCost(source, target NodeID, weightName string) (map[NodeID]float64, error) {
	res, err := g.shortestPath(source, target, weightName)
	if err != nil {
		return nil, err
	}
	return res.Cost, nil
}

// ShortestPathPath returns the node sequence from source to target, or an
// empty map if target is unreachable. No cutoff is applied.
func (g *Graph) ShortestPathPath(source, target NodeID, weightName string) (map[NodeID][]NodeID, error) {
	res, err := g.shortestPath(source, target, weightName)
	if err != nil {
		return nil, err
	}
	return res.Paths, nil
}

// ShortestPathAll returns both the cost and path maps for the source-target
// pair.
func (g *Graph) ShortestPathAll(source, target NodeID, weightName string) (SearchResult, error) {
	return g.shortestPath(source, target, weightName)
}

func (g *Graph) shortestPath(source, target NodeID, weightName string) (SearchResult, error) {
	return g.Search([]NodeID{source}, SearchOptions{
		Target:     target,
		HasTarget:  true,
		Cutoff:     NoCutoff,
		WeightName: weightName,
	})
}
