// Package osm builds a graphwork.Graph directly from an OpenStreetMap PBF
// extract: ways are filtered to routable highway tags, and each
// traversable segment becomes one (or two, for two-way roads) directed
// edges carrying "distance" (meters, haversine) and "time" (minutes,
// from a road-type speed table) weight attributes.
//
// Load writes straight into a *graphwork.Graph keyed by the OSM node IDs
// themselves, and returns a geoutil.NodeIndex alongside it so callers can
// snap an arbitrary coordinate onto the nearest ingested node.
package osm
