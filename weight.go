package graphwork

// resolveWeight implements the weight-resolution policy every query uses:
// the empty weight name yields unit weight (hop count); a named attribute
// missing from this particular edge falls back to 1.0 rather than erroring,
// since edges are not required to carry every attribute a query might ask
// for.
func resolveWeight(attrs EdgeAttributes, weightName string) float64 {
	if weightName == "" {
		return 1.0
	}
	if v, ok := attrs[weightName]; ok {
		return v
	}
	return 1.0
}

// PathCost sums resolved edge weights along a node sequence. It is exported
// for sibling packages (kshortest's root-path cost accounting) that need
// the same weight-resolution policy Search uses internally.
func (g *Graph) PathCost(path []NodeID, weightName string) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		attrs, err := g.LinkInfo(path[i-1], path[i])
		if err != nil {
			return 0, err
		}
		total += resolveWeight(attrs, weightName)
	}
	return total, nil
}
