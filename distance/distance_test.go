package distance_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/network"
)

// cave is the ten-valve reference network.
func cave(t testing.TB) *network.Network {
	t.Helper()
	n, err := network.NewBuilder().
		Add("AA", 0, "DD", "II", "BB").
		Add("BB", 13, "CC", "AA").
		Add("CC", 2, "DD", "BB").
		Add("DD", 20, "CC", "AA", "EE").
		Add("EE", 3, "FF", "DD").
		Add("FF", 0, "EE", "GG").
		Add("GG", 0, "FF", "HH").
		Add("HH", 22, "GG").
		Add("II", 0, "AA", "JJ").
		Add("JJ", 21, "II").
		Build()
	require.NoError(t, err)
	return n
}

// caveRows is the hand-computed matrix over AA BB CC DD EE HH JJ.
var caveRows = [][]int{
	{0, 1, 2, 1, 2, 5, 2},
	{1, 0, 1, 2, 3, 6, 3},
	{2, 1, 0, 1, 2, 5, 4},
	{1, 2, 1, 0, 1, 4, 3},
	{2, 3, 2, 1, 0, 3, 4},
	{5, 6, 5, 4, 3, 0, 7},
	{2, 3, 4, 3, 4, 7, 0},
}

func TestReduce_Cave(t *testing.T) {
	m, err := distance.Reduce(context.Background(), cave(t), "AA")
	require.NoError(t, err)

	require.Equal(t, 7, m.K())
	assert.Equal(t, 0, m.Start())
	assert.Equal(t, "AA", m.NodeID(0))
	assert.Equal(t, "HH", m.NodeID(5))
	assert.Equal(t, int64(22), m.Rate(5))
	assert.Equal(t, 7, m.NetworkIndex(5))
	assert.Empty(t, m.Unreachable())

	if diff := cmp.Diff(caveRows, m.Rows()); diff != "" {
		t.Errorf("distance matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestReduce_StrategiesAgree(t *testing.T) {
	ctx := context.Background()
	n := cave(t)
	viaBFS, err := distance.Reduce(ctx, n, "AA", distance.WithWorkers(1))
	require.NoError(t, err)
	viaFW, err := distance.Reduce(ctx, n, "AA", distance.WithStrategy(distance.StrategyFloydWarshall))
	require.NoError(t, err)

	if diff := cmp.Diff(viaBFS.Rows(), viaFW.Rows()); diff != "" {
		t.Errorf("BFS and Floyd–Warshall disagree (-bfs +fw):\n%s", diff)
	}
}

// TestReduce_MatchesGonum checks a larger ring-with-chords network against
// gonum's all-pairs shortest paths.
func TestReduce_MatchesGonum(t *testing.T) {
	const size = 40
	b := network.NewBuilder()
	g := simple.NewUndirectedGraph()
	for i := 0; i < size; i++ {
		next := (i + 1) % size
		links := []string{fmt.Sprintf("N%02d", next)}
		g.AddNode(simple.Node(i))
		if i%7 == 0 {
			chord := (i * 3) % size
			if chord != i {
				links = append(links, fmt.Sprintf("N%02d", chord))
			}
		}
		var rate int64
		if i%3 == 0 {
			rate = int64(i + 1)
		}
		b.Add(fmt.Sprintf("N%02d", i), rate, links...)
	}
	n, err := b.Build()
	require.NoError(t, err)
	for i := 0; i < n.Len(); i++ {
		for _, j := range n.Neighbors(i) {
			if !g.HasEdgeBetween(int64(i), int64(j)) {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}
	oracle, ok := path.FloydWarshall(g)
	require.True(t, ok)

	m, err := distance.Reduce(context.Background(), n, "N01")
	require.NoError(t, err)
	for r := 0; r < m.K(); r++ {
		for c := 0; c < m.K(); c++ {
			want := oracle.Weight(int64(m.NetworkIndex(r)), int64(m.NetworkIndex(c)))
			require.False(t, math.IsInf(want, 1))
			require.Equal(t, int(want), m.At(r, c), "dist(%s,%s)", m.NodeID(r), m.NodeID(c))
		}
	}
}

func TestReduce_SymmetricAndTriangle(t *testing.T) {
	m, err := distance.Reduce(context.Background(), cave(t), "AA")
	require.NoError(t, err)
	k := m.K()
	for a := 0; a < k; a++ {
		require.Equal(t, 0, m.At(a, a))
		for b := 0; b < k; b++ {
			require.Equal(t, m.At(a, b), m.At(b, a), "symmetry %d,%d", a, b)
			for c := 0; c < k; c++ {
				require.LessOrEqual(t, m.At(a, c), m.At(a, b)+m.At(b, c), "triangle %d,%d,%d", a, b, c)
			}
		}
	}
}

func TestReduce_Disconnected(t *testing.T) {
	n, err := network.NewBuilder().
		Add("AA", 0, "BB").
		Add("BB", 5).
		Add("CC", 7, "DD").
		Add("DD", 0).
		Build()
	require.NoError(t, err)

	for _, s := range []distance.Strategy{distance.StrategyBFS, distance.StrategyFloydWarshall} {
		t.Run(s.String(), func(t *testing.T) {
			m, err := distance.Reduce(context.Background(), n, "AA", distance.WithStrategy(s))
			require.NoError(t, err)
			require.Equal(t, 3, m.K())
			assert.Equal(t, []int{2}, m.Unreachable())
			assert.False(t, m.Reachable(0, 2))
			assert.Equal(t, distance.Unreachable, m.At(2, 1))
			assert.Equal(t, 1, m.At(0, 1))
		})
	}
}

func TestReduce_StartWithReward(t *testing.T) {
	n, err := network.NewBuilder().
		Add("A", 4, "B").
		Add("B", 0, "C").
		Add("C", 9).
		Build()
	require.NoError(t, err)

	m, err := distance.Reduce(context.Background(), n, "C")
	require.NoError(t, err)
	// start first, then the remaining reward node; C is not listed twice
	require.Equal(t, 2, m.K())
	assert.Equal(t, "C", m.NodeID(0))
	assert.Equal(t, "A", m.NodeID(1))
	assert.Equal(t, int64(9), m.Rate(0))
	assert.Equal(t, 2, m.At(0, 1))
}

func TestReduce_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := distance.Reduce(ctx, nil, "AA")
	require.ErrorIs(t, err, distance.ErrNetworkNil)

	_, err = distance.Reduce(ctx, cave(t), "ZZ")
	require.ErrorIs(t, err, network.ErrUnknownStart)

	_, err = distance.Reduce(ctx, cave(t), "AA", distance.WithWorkers(-1))
	require.ErrorIs(t, err, distance.ErrOptionViolation)

	_, err = distance.Reduce(ctx, cave(t), "AA", distance.WithStrategy(distance.Strategy(9)))
	require.ErrorIs(t, err, distance.ErrOptionViolation)

	b := network.NewBuilder()
	for i := 0; i < 65; i++ {
		b.Add(fmt.Sprintf("R%d", i), 1)
	}
	big, err := b.Add("S", 0).Build()
	require.NoError(t, err)
	_, err = distance.Reduce(ctx, big, "S")
	require.ErrorIs(t, err, distance.ErrTooManyNodes)
}

func TestReduce_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, s := range []distance.Strategy{distance.StrategyBFS, distance.StrategyFloydWarshall} {
		_, err := distance.Reduce(ctx, cave(t), "AA", distance.WithStrategy(s))
		require.ErrorIs(t, err, context.Canceled, s.String())
	}
}

func TestFromRows(t *testing.T) {
	m, err := distance.FromRows(
		[]string{"S", "X"},
		[]int64{0, 3},
		[][]int{{0, 2}, {2, 0}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, m.At(1, 0))
	assert.Equal(t, -1, m.NetworkIndex(1))

	cases := map[string][][]int{
		"ragged":   {{0, 1}, {1}},
		"diagonal": {{1, 1}, {1, 0}},
		"negative": {{0, -2}, {1, 0}},
	}
	for name, rows := range cases {
		_, err := distance.FromRows([]string{"S", "X"}, []int64{0, 3}, rows)
		require.ErrorIs(t, err, distance.ErrBadMatrix, name)
	}
	_, err = distance.FromRows(nil, nil, nil)
	require.ErrorIs(t, err, distance.ErrBadMatrix)
}

func TestParseStrategy(t *testing.T) {
	s, err := distance.ParseStrategy("floyd-warshall")
	require.NoError(t, err)
	assert.Equal(t, distance.StrategyFloydWarshall, s)

	s, err = distance.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, distance.StrategyBFS, s)

	_, err = distance.ParseStrategy("dijkstra")
	require.ErrorIs(t, err, distance.ErrOptionViolation)
}
