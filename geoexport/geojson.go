package geoexport

import (
	"fmt"

	"github.com/paulmach/go.geojson"

	"github.com/rzyyz/graphwork"
)

// Coordinates resolves a node to its (lng, lat) position in degrees.
// GeoJSON coordinate order is longitude first, then latitude.
type Coordinates func(id graphwork.NodeID) (lng, lat float64, ok bool)

// PathToFeature renders path as a GeoJSON LineString feature. It returns
// graphwork.ErrNodeNotFound wrapped with the offending node if lookup
// can't resolve one of the path's nodes.
func PathToFeature(path []graphwork.NodeID, lookup Coordinates) (*geojson.Feature, error) {
	line := make([][]float64, 0, len(path))
	for _, id := range path {
		lng, lat, ok := lookup(id)
		if !ok {
			return nil, fmt.Errorf("%w: %d", graphwork.ErrNodeNotFound, id)
		}
		line = append(line, []float64{lng, lat})
	}
	return geojson.NewLineStringFeature(line), nil
}

// FeatureCollection bundles several rendered paths into one GeoJSON
// FeatureCollection, convenient for plotting a batch of routes together.
func FeatureCollection(features ...*geojson.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		fc.AddFeature(f)
	}
	return fc
}
