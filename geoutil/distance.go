package geoutil

import (
	"github.com/golang/geo/s2"
	"github.com/umahmood/haversine"
)

// DistanceMeters returns the great-circle distance between two S2 cells,
// computed with the Haversine formula on their cell-center coordinates.
func DistanceMeters(a, b s2.CellID) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.LatLng().Lat.Degrees(), Lon: a.LatLng().Lng.Degrees()},
		haversine.Coord{Lat: b.LatLng().Lat.Degrees(), Lon: b.LatLng().Lng.Degrees()},
	)
	return km * 1000
}

// CellIDForLatLng converts a latitude/longitude pair in degrees to an S2
// cell ID at the given level. osm.Load uses it to price edges with
// DistanceMeters, and NodeIndex uses it to report cells.
func CellIDForLatLng(lat, lng float64, level int) s2.CellID {
	return s2.CellFromPoint(s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng))).ID().Parent(level)
}
