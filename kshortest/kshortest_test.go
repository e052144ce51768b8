package kshortest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rzyyz/graphwork"
	"github.com/rzyyz/graphwork/kshortest"
)

// buildDisjointPaths builds two disjoint routes from 1 to 5.
func buildDisjointPaths() *graphwork.Graph {
	g := graphwork.New()
	g.AddEdge(1, 2, graphwork.EdgeAttributes{"w": 2})
	g.AddEdge(2, 5, graphwork.EdgeAttributes{"w": 2})
	g.AddEdge(1, 3, graphwork.EdgeAttributes{"w": 1})
	g.AddEdge(3, 4, graphwork.EdgeAttributes{"w": 1})
	g.AddEdge(4, 5, graphwork.EdgeAttributes{"w": 1})
	return g
}

func TestTwoDisjointPathsOrderedByCost(t *testing.T) {
	g := buildDisjointPaths()
	paths, err := kshortest.KShortestPaths(g, 1, 5, 2, "w")
	require.NoError(t, err)
	require.Len(t, paths, 2)

	require.Equal(t, []graphwork.NodeID{1, 3, 4, 5}, paths[0].Nodes)
	require.InDelta(t, 3.0, paths[0].Cost, 1e-9)

	require.Equal(t, []graphwork.NodeID{1, 2, 5}, paths[1].Nodes)
	require.InDelta(t, 4.0, paths[1].Cost, 1e-9)
}

func TestKShortestMonotoneCost(t *testing.T) {
	g := graphwork.New()
	g.AddEdge(1, 2, graphwork.EdgeAttributes{"w": 1})
	g.AddEdge(2, 3, graphwork.EdgeAttributes{"w": 1})
	g.AddEdge(1, 3, graphwork.EdgeAttributes{"w": 2})
	g.AddEdge(1, 4, graphwork.EdgeAttributes{"w": 5})
	g.AddEdge(4, 3, graphwork.EdgeAttributes{"w": 1})

	paths, err := kshortest.KShortestPaths(g, 1, 3, 3, "w")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for i := 1; i < len(paths); i++ {
		require.LessOrEqual(t, paths[i-1].Cost, paths[i].Cost)
	}

	single, err := g.SingleSourceAll(1, graphwork.SearchOptions{WeightName: "w", Cutoff: graphwork.NoCutoff, Target: 3, HasTarget: true})
	require.NoError(t, err)
	require.Equal(t, single.Cost[3], paths[0].Cost)
	require.Equal(t, single.Paths[3], paths[0].Nodes)
}

func TestKShortestUnreachableTargetReturnsEmpty(t *testing.T) {
	g := graphwork.New()
	g.AddEdge(1, 2, graphwork.EdgeAttributes{"w": 1})
	paths, err := kshortest.KShortestPaths(g, 1, 99, 3, "w")
	require.NoError(t, err)
	require.Empty(t, paths)
}

func TestKShortestFewerThanKWhenExhausted(t *testing.T) {
	g := graphwork.New()
	g.AddEdge(1, 2, graphwork.EdgeAttributes{"w": 1})
	g.AddEdge(2, 3, graphwork.EdgeAttributes{"w": 1})

	paths, err := kshortest.KShortestPaths(g, 1, 3, 5, "w")
	require.NoError(t, err)
	require.Len(t, paths, 1) // only one simple route exists
}
