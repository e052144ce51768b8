package graphwork

// distNode is one entry of the search frontier: a candidate node and the
// tentative cost to reach it along the path that produced this entry.
type distNode struct {
	node NodeID
	dist float64
}

// frontier is a binary min-heap of distNode ordered by dist, implemented
// against container/heap. Relaxation pushes a fresh entry rather than
// decreasing an existing one in place (a "lazy decrease-key"); stale
// entries are discarded on pop by comparing against the best known cost,
// the same approach gonum's graph/path.DijkstraFrom and
// katalvlaran/lvlath's dijkstra.Dijkstra both use.
type frontier []distNode

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(distNode)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
