package osm

import (
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/qedus/osmpbf"

	"github.com/rzyyz/graphwork"
	"github.com/rzyyz/graphwork/geoutil"
)

// Load parses the OSM PBF file at path into a graphwork.Graph: one node
// per OSM node referenced by a routable way, one directed edge per
// traversable segment of a way (two for a two-way road). It returns a geoutil.NodeIndex built over
// the ingested coordinates so callers can resolve nearest-node lookups
// without re-scanning the file.
func Load(path string) (*graphwork.Graph, *geoutil.NodeIndex, error) {
	valid, err := routableNodeIDs(path)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("osm: %d nodes referenced by routable ways", len(valid))

	decoder, file, err := openDecoder(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	g := graphwork.New()
	byID := make(map[int64]geoutil.NodeCoord, len(valid))
	var pendingWays []*osmpbf.Way
	wayCount := 0

	for {
		obj, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		switch v := obj.(type) {
		case *osmpbf.Node:
			if _, ok := valid[v.ID]; ok {
				byID[v.ID] = geoutil.NodeCoord{ID: v.ID, Lat: v.Lat, Lng: v.Lon}
			}
		case *osmpbf.Way:
			if routableHighways[strings.ToLower(v.Tags[highwayTag])] {
				pendingWays = append(pendingWays, v)
			}
		}
	}

	for _, way := range pendingWays {
		addWayEdges(g, way, byID)
		wayCount++
	}

	coords := make([]geoutil.NodeCoord, 0, len(byID))
	for _, c := range byID {
		coords = append(coords, c)
	}
	log.Printf("osm: ingested %d ways, %d nodes", wayCount, len(coords))

	return g, geoutil.NewNodeIndex(coords, cellLevel), nil
}

// addWayEdges adds one (or two, for two-way roads) directed edge per
// consecutive pair of nodes in way, using great-circle distance for the
// "distance" attribute and the road-type speed table for "time".
func addWayEdges(g *graphwork.Graph, way *osmpbf.Way, byID map[int64]geoutil.NodeCoord) {
	roadType := "n/a"
	if v, ok := way.Tags[highwayTag]; ok {
		roadType = strings.ToLower(v)
	}
	oneway := isOneway(way.Tags)
	speedKMH := speedForRoadType(roadType)

	for i := 0; i < len(way.NodeIDs)-1; i++ {
		a, okA := byID[way.NodeIDs[i]]
		b, okB := byID[way.NodeIDs[i+1]]
		if !okA || !okB {
			continue
		}
		cellA := geoutil.CellIDForLatLng(a.Lat, a.Lng, cellLevel)
		cellB := geoutil.CellIDForLatLng(b.Lat, b.Lng, cellLevel)
		distanceM := geoutil.DistanceMeters(cellA, cellB)
		timeMin := (distanceM / metersPerKilometer / speedKMH) * minutesPerHour

		attrs := graphwork.EdgeAttributes{"distance": distanceM, "time": timeMin}
		g.AddEdge(graphwork.NodeID(a.ID), graphwork.NodeID(b.ID), attrs)
		if !oneway {
			g.AddEdge(graphwork.NodeID(b.ID), graphwork.NodeID(a.ID), attrs)
		}
	}
}

// routableNodeIDs scans the file once to collect the OSM node IDs
// referenced by any routable way: node coordinates are only useful once
// we know which ones belong to a road we'll index, so this pass runs
// before the node/edge-building pass in Load.
func routableNodeIDs(path string) (map[int64]struct{}, error) {
	decoder, file, err := openDecoder(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	valid := make(map[int64]struct{})
	for {
		obj, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		way, ok := obj.(*osmpbf.Way)
		if !ok {
			continue
		}
		if !routableHighways[strings.ToLower(way.Tags[highwayTag])] {
			continue
		}
		for _, id := range way.NodeIDs {
			valid[id] = struct{}{}
		}
	}
	return valid, nil
}

func openDecoder(path string) (*osmpbf.Decoder, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	d := osmpbf.NewDecoder(f)
	d.SetBufferSize(osmpbf.MaxBlobSize)
	if err := d.Start(runtime.GOMAXPROCS(-1)); err != nil {
		f.Close()
		return nil, nil, err
	}
	return d, f, nil
}
