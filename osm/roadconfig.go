package osm

// Highway tag values accepted as routable road segments. A way whose
// "highway" tag isn't in this set is skipped entirely during ingestion.
const (
	highwayTag = "highway"

	motorway      = "motorway"
	motorwayLink  = "motorway_link"
	trunk         = "trunk"
	trunkLink     = "trunk_link"
	primary       = "primary"
	primaryLink   = "primary_link"
	secondary     = "secondary"
	secondaryLink = "secondary_link"
	tertiary      = "tertiary"
	tertiaryLink  = "tertiary_link"
	residential   = "residential"
	unclassified  = "unclassified"
	livingStreet  = "living_street"
)

const (
	onewayTag   = "oneway"
	onewayYes   = "yes"
	junctionTag = "junction"
	roundabout  = "roundabout"
)

const (
	metersPerKilometer = 1000.0
	minutesPerHour     = 60.0

	// defaultSpeedKMH is used for any routable way with no speed entry in
	// speedByRoadType.
	defaultSpeedKMH = 50.0

	// cellLevel is the S2 leaf cell level node coordinates are converted to
	// for edge distances and for the returned NodeIndex.
	cellLevel = 30
)

var routableHighways = map[string]bool{
	motorway: true, motorwayLink: true,
	trunk: true, trunkLink: true,
	primary: true, primaryLink: true,
	secondary: true, secondaryLink: true,
	tertiary: true, tertiaryLink: true,
	residential: true, unclassified: true, livingStreet: true,
}

// speedByRoadType gives a driving speed in km/h per highway tag, used to
// derive the "time" edge attribute alongside the "distance" one.
var speedByRoadType = map[string]float64{
	motorway:      89,
	motorwayLink:  45,
	trunk:         73,
	trunkLink:     40,
	primary:       30,
	primaryLink:   30,
	secondary:     49,
	secondaryLink: 25,
	tertiary:      40,
	tertiaryLink:  20,
	residential:   25,
	unclassified:  25,
	livingStreet:  10,
}

func speedForRoadType(roadType string) float64 {
	if s, ok := speedByRoadType[roadType]; ok {
		return s
	}
	return defaultSpeedKMH
}

func isOneway(tags map[string]string) bool {
	if v, ok := tags[onewayTag]; ok && v == onewayYes {
		return true
	}
	if v, ok := tags[junctionTag]; ok && v == roundabout {
		return true
	}
	return false
}
