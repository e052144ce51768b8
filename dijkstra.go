package graphwork

import (
	"container/heap"
	"fmt"
)

// Search runs a (possibly multi-source) Dijkstra query against g: lazy
// decrease-key relaxation, early exit on a single target, cutoff pruning,
// and the centroid traversal rule (a centroid may be entered or left at
// as source/target but never relaxed through).
func (g *Graph) Search(sources []NodeID, opts SearchOptions) (SearchResult, error) {
	return g.MaskedSearch(sources, opts, nil, nil)
}

// MaskedSearch is Search with an additional node/edge mask: nodes in
// removedNodes and edges in blockedEdges are treated as absent from the
// graph for the duration of this call, without mutating g. kshortest uses
// this to run Yen's spur searches against the shared Graph storage rather
// than mutating it.
func (g *Graph) MaskedSearch(sources []NodeID, opts SearchOptions, removedNodes map[NodeID]bool, blockedEdges map[[2]NodeID]bool) (SearchResult, error) {
	method := opts.Method
	if method == "" {
		method = "Dijkstra"
	}
	if method != "Dijkstra" {
		return SearchResult{}, unknownMethodf(opts.Method)
	}
	if opts.Cutoff < 0 {
		return SearchResult{}, invalidArgumentf("cutoff must be non-negative, got %v", opts.Cutoff)
	}
	if len(sources) == 0 {
		return SearchResult{}, invalidArgumentf("at least one source is required")
	}

	startGen := g.generation

	sourceSet := make(map[NodeID]bool, len(sources))
	for _, s := range sources {
		sourceSet[s] = true
	}

	cost := make(map[NodeID]float64)
	parent := make(map[NodeID]NodeID)

	pq := &frontier{}
	heap.Init(pq)
	for s := range sourceSet {
		if removedNodes[s] {
			continue
		}
		cost[s] = 0
		parent[s] = s
		heap.Push(pq, distNode{node: s, dist: 0})
	}

	for pq.Len() > 0 {
		item := heap.Pop(pq).(distNode)
		u, d := item.node, item.dist
		if d > cost[u] {
			continue // stale entry
		}

		if opts.HasTarget && u == opts.Target {
			break // early exit
		}

		// u == opts.Target already exited above, so the centroid rule's
		// "u != requested_target" clause never needs checking here.
		if g.IsCentroid(u) && !sourceSet[u] {
			continue // centroid prune: settle u, but never leave it
		}

		for v, attrs := range g.Neighbors(u) {
			if removedNodes[v] {
				continue
			}
			if blockedEdges != nil {
				if _, blocked := blockedEdges[[2]NodeID{u, v}]; blocked {
					continue
				}
			}
			w := resolveWeight(attrs, opts.WeightName)
			if w < 0 {
				return SearchResult{}, invalidArgumentf("negative resolved weight on edge (%d, %d)", u, v)
			}
			nd := d + w
			if nd > opts.Cutoff {
				continue
			}
			if cur, ok := cost[v]; !ok || nd < cur {
				cost[v] = nd
				parent[v] = u
				heap.Push(pq, distNode{node: v, dist: nd})
			}
		}
	}

	if g.generation != startGen {
		panic(fmt.Sprintf("graphwork: Graph mutated during query (generation %d -> %d); Graph mutation must not race a query", startGen, g.generation))
	}

	result := SearchResult{Cost: make(map[NodeID]float64), Paths: make(map[NodeID][]NodeID)}
	if opts.HasTarget {
		if c, ok := cost[opts.Target]; ok {
			result.Cost[opts.Target] = c
			result.Paths[opts.Target] = reconstructPath(parent, opts.Target)
		}
		return result, nil
	}
	for v, c := range cost {
		result.Cost[v] = c
		result.Paths[v] = reconstructPath(parent, v)
	}
	return result, nil
}

// reconstructPath follows parent pointers from v back to the source that
// reached it (parent[x] == x), then reverses the walk into source-to-v
// order.
func reconstructPath(parent map[NodeID]NodeID, v NodeID) []NodeID {
	path := []NodeID{v}
	cur := v
	for parent[cur] != cur {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
