package graphwork

import (
	"math"
	"reflect"
	"testing"
)

func buildLinearGraph() *Graph {
	g := New()
	g.AddEdge(1, 2, EdgeAttributes{"w": 1})
	g.AddEdge(2, 3, EdgeAttributes{"w": 1})
	g.AddEdge(1, 3, EdgeAttributes{"w": 3})
	return g
}

func TestSingleSourceAllBasic(t *testing.T) {
	g := buildLinearGraph()
	res, err := g.SingleSourceAll(1, SearchOptions{WeightName: "w", Cutoff: NoCutoff})
	if err != nil {
		t.Fatalf("SingleSourceAll: %v", err)
	}

	wantCost := map[NodeID]float64{1: 0, 2: 1, 3: 2}
	if !reflect.DeepEqual(res.Cost, wantCost) {
		t.Fatalf("cost = %v, want %v", res.Cost, wantCost)
	}
	wantPaths := map[NodeID][]NodeID{
		1: {1},
		2: {1, 2},
		3: {1, 2, 3},
	}
	if !reflect.DeepEqual(res.Paths, wantPaths) {
		t.Fatalf("paths = %v, want %v", res.Paths, wantPaths)
	}
}

func TestCutoffLimitsReachableSet(t *testing.T) {
	g := buildLinearGraph()
	res, err := g.SingleSourceAll(1, SearchOptions{WeightName: "w", Cutoff: 1.5})
	if err != nil {
		t.Fatalf("SingleSourceAll: %v", err)
	}

	wantCost := map[NodeID]float64{1: 0, 2: 1}
	if !reflect.DeepEqual(res.Cost, wantCost) {
		t.Fatalf("cost = %v, want %v", res.Cost, wantCost)
	}
}

func TestCentroidBlocksTransit(t *testing.T) {
	g := buildLinearGraph()
	g.SetCentroid(2)

	res, err := g.SingleSourceAll(1, SearchOptions{WeightName: "w", Cutoff: NoCutoff})
	if err != nil {
		t.Fatalf("SingleSourceAll: %v", err)
	}

	wantCost := map[NodeID]float64{1: 0, 2: 1, 3: 3}
	if !reflect.DeepEqual(res.Cost, wantCost) {
		t.Fatalf("cost = %v, want %v", res.Cost, wantCost)
	}
	if got := res.Paths[3]; !reflect.DeepEqual(got, []NodeID{1, 3}) {
		t.Fatalf("paths[3] = %v, want direct edge [1 3]", got)
	}
}

func TestCentroidMayBeSource(t *testing.T) {
	g := buildLinearGraph()
	g.SetCentroid(2)

	res, err := g.MultiSourceAll([]NodeID{2}, SearchOptions{WeightName: "w", Cutoff: NoCutoff})
	if err != nil {
		t.Fatalf("MultiSourceAll: %v", err)
	}

	wantCost := map[NodeID]float64{2: 0, 3: 1}
	if !reflect.DeepEqual(res.Cost, wantCost) {
		t.Fatalf("cost = %v, want %v", res.Cost, wantCost)
	}
}

func TestTargetEarlyExit(t *testing.T) {
	g := buildLinearGraph()
	res, err := g.SingleSourceAll(1, SearchOptions{WeightName: "w", Cutoff: NoCutoff, Target: 3, HasTarget: true})
	if err != nil {
		t.Fatalf("SingleSourceAll: %v", err)
	}
	if len(res.Cost) != 1 || res.Cost[3] != 2 {
		t.Fatalf("cost = %v, want exactly {3: 2}", res.Cost)
	}
}

func TestTargetUnreachableYieldsEmpty(t *testing.T) {
	g := New()
	g.AddEdge(1, 2, EdgeAttributes{"w": 1})
	res, err := g.SingleSourceAll(1, SearchOptions{WeightName: "w", Cutoff: NoCutoff, Target: 99, HasTarget: true})
	if err != nil {
		t.Fatalf("SingleSourceAll: %v", err)
	}
	if len(res.Cost) != 0 || len(res.Paths) != 0 {
		t.Fatalf("expected empty result for unreachable target, got %+v", res)
	}
}

func TestUnknownMethod(t *testing.T) {
	g := buildLinearGraph()
	_, err := g.SingleSourceAll(1, SearchOptions{Method: "Bellman-Ford", WeightName: "w", Cutoff: NoCutoff})
	if err == nil {
		t.Fatalf("expected ErrUnknownMethod")
	}
}

func TestNegativeCutoffRejected(t *testing.T) {
	g := buildLinearGraph()
	_, err := g.SingleSourceAll(1, SearchOptions{WeightName: "w", Cutoff: -1})
	if err == nil {
		t.Fatalf("expected ErrInvalidArgument for negative cutoff")
	}
}

func TestUnitWeightDefault(t *testing.T) {
	g := New()
	g.AddEdge(1, 2, EdgeAttributes{"w": 5})
	g.AddEdge(2, 3, EdgeAttributes{"w": 5})

	// Empty weight name selects unit weight, i.e. hop count.
	cost, err := g.SingleSourceCost(1, SearchOptions{WeightName: "", Cutoff: NoCutoff})
	if err != nil {
		t.Fatalf("SingleSourceCost: %v", err)
	}
	if cost[3] != 2 {
		t.Fatalf("got %v, want hop count 2", cost[3])
	}
}

func TestMissingNamedAttributeFallsBackToUnit(t *testing.T) {
	g := New()
	g.AddEdge(1, 2, EdgeAttributes{"other": 99}) // no "w" attribute
	cost, err := g.SingleSourceCost(1, SearchOptions{WeightName: "w", Cutoff: NoCutoff})
	if err != nil {
		t.Fatalf("SingleSourceCost: %v", err)
	}
	if cost[2] != 1.0 {
		t.Fatalf("got %v, want fallback weight 1.0", cost[2])
	}
}

// TestPathCostCoherence checks that summing edge weights along paths[v]
// equals cost[v] within 1e-9.
func TestPathCostCoherence(t *testing.T) {
	g := buildLinearGraph()
	res, err := g.SingleSourceAll(1, SearchOptions{WeightName: "w", Cutoff: NoCutoff})
	if err != nil {
		t.Fatalf("SingleSourceAll: %v", err)
	}
	for v, path := range res.Paths {
		sum := 0.0
		for i := 1; i < len(path); i++ {
			attrs, err := g.LinkInfo(path[i-1], path[i])
			if err != nil {
				t.Fatalf("LinkInfo(%d,%d): %v", path[i-1], path[i], err)
			}
			sum += resolveWeight(attrs, "w")
		}
		if math.Abs(sum-res.Cost[v]) > 1e-9 {
			t.Fatalf("node %d: path sum %v != cost %v", v, sum, res.Cost[v])
		}
	}
}

// TestCentroidPruningInvariant checks that no emitted path has a centroid
// in an interior position.
func TestCentroidPruningInvariant(t *testing.T) {
	g := buildLinearGraph()
	g.SetCentroid(2)

	res, err := g.SingleSourceAll(1, SearchOptions{WeightName: "w", Cutoff: NoCutoff})
	if err != nil {
		t.Fatalf("SingleSourceAll: %v", err)
	}
	for _, path := range res.Paths {
		for i := 1; i < len(path)-1; i++ {
			if g.IsCentroid(path[i]) {
				t.Fatalf("path %v has centroid %d in an interior position", path, path[i])
			}
		}
	}
}

func TestNegativeWeightRejectedAtQueryTime(t *testing.T) {
	g := New()
	g.AddEdge(1, 2, EdgeAttributes{"w": -1})
	_, err := g.SingleSourceCost(1, SearchOptions{WeightName: "w", Cutoff: NoCutoff})
	if err == nil {
		t.Fatalf("expected ErrInvalidArgument for negative resolved weight")
	}
}
