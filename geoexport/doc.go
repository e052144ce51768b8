// Package geoexport renders a graphwork path as GeoJSON for downstream
// mapping tools, building a LineString feature from a search result via
// github.com/paulmach/go.geojson.
package geoexport
