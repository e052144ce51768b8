package geoutil

// point is a labeled 2D coordinate (latitude, longitude in degrees) used as
// the k-d tree's element type. The label is a graphwork.NodeID carried as
// an opaque int64 so this package has no import-cycle dependency on the
// root package.
type point struct {
	id  int64
	lat float64
	lng float64
}

func (p point) component(axis int) float64 {
	if axis == 0 {
		return p.lat
	}
	return p.lng
}

func squaredDistance(a, b point) float64 {
	dLat := a.lat - b.lat
	dLng := a.lng - b.lng
	return dLat*dLat + dLng*dLng
}
