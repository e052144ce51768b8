// Package geoutil provides the spatial support code graph ingestion and
// nearest-node lookups need: great-circle distance, a small 2-D vector
// helper, and a k-d tree for finding the graph node closest to an
// arbitrary coordinate.
//
// Distance is computed with github.com/golang/geo/s2 cell coordinates and
// github.com/umahmood/haversine.
package geoutil
