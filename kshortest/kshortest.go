package kshortest

import (
	"fmt"
	"sort"

	"github.com/rzyyz/graphwork"
)

// Path is one enumerated route: its node sequence and total cost.
type Path struct {
	Nodes []graphwork.NodeID
	Cost  float64
}

// KShortestPaths returns up to k loopless paths from source to target,
// ascending by cost, the first being the ordinary Dijkstra-optimal path.
// Fewer than k paths are returned if the candidate pool is exhausted
// before k are found.
func KShortestPaths(g *graphwork.Graph, source, target graphwork.NodeID, k int, weightName string) ([]Path, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", graphwork.ErrInvalidArgument, k)
	}

	root, err := g.Search([]graphwork.NodeID{source}, graphwork.SearchOptions{
		Target: target, HasTarget: true, Cutoff: graphwork.NoCutoff, WeightName: weightName,
	})
	if err != nil {
		return nil, err
	}
	rootNodes, ok := root.Paths[target]
	if !ok {
		return nil, nil // target unreachable from source: zero paths found
	}

	accepted := []Path{{Nodes: rootNodes, Cost: root.Cost[target]}}
	var candidates []Path
	seen := map[string]bool{pathKey(rootNodes): true}

	for i := 1; i < k; i++ {
		prev := accepted[i-1].Nodes
		for spurIndex := 0; spurIndex < len(prev)-1; spurIndex++ {
			spurNode := prev[spurIndex]
			rootPath := prev[:spurIndex+1]

			blockedEdges := make(map[[2]graphwork.NodeID]bool)
			for _, p := range accepted {
				if len(p.Nodes) > spurIndex+1 && sharesPrefix(p.Nodes, rootPath) {
					blockedEdges[[2]graphwork.NodeID{p.Nodes[spurIndex], p.Nodes[spurIndex+1]}] = true
				}
			}
			removedNodes := make(map[graphwork.NodeID]bool)
			for _, n := range rootPath[:len(rootPath)-1] {
				removedNodes[n] = true
			}

			spurRes, err := g.MaskedSearch([]graphwork.NodeID{spurNode}, graphwork.SearchOptions{
				Target: target, HasTarget: true, Cutoff: graphwork.NoCutoff, WeightName: weightName,
			}, removedNodes, blockedEdges)
			if err != nil {
				return nil, err
			}
			spurPath, ok := spurRes.Paths[target]
			if !ok {
				continue
			}

			rootCost, err := g.PathCost(rootPath, weightName)
			if err != nil {
				return nil, err
			}
			total := append(append([]graphwork.NodeID{}, rootPath[:len(rootPath)-1]...), spurPath...)
			key := pathKey(total)
			if seen[key] {
				continue
			}
			seen[key] = true
			candidates = append(candidates, Path{Nodes: total, Cost: rootCost + spurRes.Cost[target]})
		}

		if len(candidates) == 0 {
			break
		}
		sort.Slice(candidates, func(a, b int) bool {
			if candidates[a].Cost != candidates[b].Cost {
				return candidates[a].Cost < candidates[b].Cost
			}
			return lexLess(candidates[a].Nodes, candidates[b].Nodes)
		})
		accepted = append(accepted, candidates[0])
		candidates = candidates[1:]
	}

	return accepted, nil
}

func pathKey(nodes []graphwork.NodeID) string {
	return fmt.Sprint(nodes)
}

func sharesPrefix(nodes, prefix []graphwork.NodeID) bool {
	if len(nodes) < len(prefix) {
		return false
	}
	for i, n := range prefix {
		if nodes[i] != n {
			return false
		}
	}
	return true
}

func lexLess(a, b []graphwork.NodeID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
