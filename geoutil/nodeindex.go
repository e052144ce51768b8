package geoutil

import "github.com/golang/geo/s2"

// NodeIndex resolves an arbitrary (lat, lng) coordinate to the nearest
// indexed graph node, using a k-d tree over raw degrees for the candidate
// search and the Haversine formula (via DistanceMeters) to report the
// actual ground distance to that candidate.
type NodeIndex struct {
	tree  *kdtree
	level int
}

// NodeCoord is one entry to index: a node identifier paired with its
// coordinate in degrees.
type NodeCoord struct {
	ID  int64
	Lat float64
	Lng float64
}

// NewNodeIndex builds a NodeIndex over coords. level is the S2 cell level
// used when reporting cell IDs back to callers (see CellIDForLatLng).
func NewNodeIndex(coords []NodeCoord, level int) *NodeIndex {
	points := make([]point, len(coords))
	for i, c := range coords {
		points[i] = point{id: c.ID, lat: c.Lat, lng: c.Lng}
	}
	return &NodeIndex{tree: buildKDTree(points), level: level}
}

// Nearest returns the indexed node closest to (lat, lng), the great-circle
// distance to it in meters, and its S2 cell ID. ok is false if the index
// is empty.
func (idx *NodeIndex) Nearest(lat, lng float64) (id int64, meters float64, cell s2.CellID, ok bool) {
	best, found := idx.tree.nearest(point{lat: lat, lng: lng})
	if !found {
		return 0, 0, 0, false
	}
	targetCell := CellIDForLatLng(lat, lng, idx.level)
	nodeCell := CellIDForLatLng(best.lat, best.lng, idx.level)
	return best.id, DistanceMeters(targetCell, nodeCell), nodeCell, true
}
