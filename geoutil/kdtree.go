package geoutil

import (
	"math"
	"sort"
)

// treeNode is one split node of the k-d tree, fixed at two dimensions
// (latitude, longitude) since that is all NodeIndex ever indexes.
type treeNode struct {
	p    point
	l, r *treeNode
}

// kdtree is a 2-d tree over point, built once and queried many times.
// Split-axis cycling and nearest-neighbor backtrack work the same way a
// general n-dimensional k-d tree does, narrowed to two axes because every
// NodeIndex entry is a lat/lng pair.
type kdtree struct {
	root *treeNode
}

func buildKDTree(points []point) *kdtree {
	return &kdtree{root: build(points, 0)}
}

func build(points []point, depth int) *treeNode {
	if len(points) == 0 {
		return nil
	}
	axis := depth % 2
	sort.Slice(points, func(i, j int) bool {
		return points[i].component(axis) < points[j].component(axis)
	})
	median := len(points) / 2
	return &treeNode{
		p: points[median],
		l: build(points[:median], depth+1),
		r: build(points[median+1:], depth+1),
	}
}

// nearest returns the tree's closest point to target by Euclidean distance
// in degrees, or ok == false if the tree is empty.
func (t *kdtree) nearest(target point) (point, bool) {
	if t.root == nil {
		var zero point
		return zero, false
	}
	best, _ := search(t.root, target, 0, nil, math.MaxFloat64)
	return best.p, true
}

func search(n *treeNode, target point, depth int, best *treeNode, bestSq float64) (*treeNode, float64) {
	if n == nil {
		return best, bestSq
	}
	axis := depth % 2

	d := squaredDistance(n.p, target)
	if best == nil || d < bestSq {
		bestSq = d
		best = n
	}

	var next, other *treeNode
	if target.component(axis) < n.p.component(axis) {
		next, other = n.l, n.r
	} else {
		next, other = n.r, n.l
	}

	best, bestSq = search(next, target, depth+1, best, bestSq)

	if diff := n.p.component(axis) - target.component(axis); diff*diff < bestSq {
		best, bestSq = search(other, target, depth+1, best, bestSq)
	}

	return best, bestSq
}
