package batch

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/rzyyz/graphwork"
)

// CostMatrix materializes a dense |sources| x |targets| cost matrix. Row i
// is built from one SingleSourceCost(sources[i], ...) query; entries for
// targets not present in that row's cost map (unreachable) are math.Inf(1).
// A target is never re-queried individually: every entry in a row comes
// out of that row's single all-destinations search. If sources or targets
// is empty, the result is an empty 0 x 0 matrix.
func (e *Executor) CostMatrix(g *graphwork.Graph, sources, targets []graphwork.NodeID, opts graphwork.SearchOptions) (*mat.Dense, error) {
	opts.HasTarget = false
	rows, err := e.MultiSingleSourceCost(g, sources, opts)
	if err != nil {
		return nil, err
	}

	if len(sources) == 0 || len(targets) == 0 {
		return &mat.Dense{}, nil
	}

	m := mat.NewDense(len(sources), len(targets), nil)
	for i, row := range rows {
		for j, t := range targets {
			cost, ok := row[t]
			if !ok {
				cost = math.Inf(1)
			}
			m.Set(i, j, cost)
		}
	}
	return m, nil
}

// PathListToDict runs one single-source path query per source and merges
// the results into a single (source, target) -> path dictionary, filtered
// down to the requested targets.
func (e *Executor) PathListToDict(g *graphwork.Graph, sources, targets []graphwork.NodeID, opts graphwork.SearchOptions) (map[[2]graphwork.NodeID][]graphwork.NodeID, error) {
	opts.HasTarget = false
	perSource, err := e.MultiSingleSourcePath(g, sources, opts)
	if err != nil {
		return nil, err
	}
	return mergePathDict(sources, targets, perSource), nil
}

func mergePathDict(sources, targets []graphwork.NodeID, perSource []map[graphwork.NodeID][]graphwork.NodeID) map[[2]graphwork.NodeID][]graphwork.NodeID {
	dict := make(map[[2]graphwork.NodeID][]graphwork.NodeID)
	for i, paths := range perSource {
		src := sources[i]
		for _, dst := range targets {
			if path, ok := paths[dst]; ok {
				dict[[2]graphwork.NodeID{src, dst}] = path
			}
		}
	}
	return dict
}
