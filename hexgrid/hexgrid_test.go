package hexgrid_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexalgo/hex"
	"github.com/katalvlaran/hexalgo/hexgrid"
)

type coord = hexgrid.Coord

func open(w, h int) [][]int {
	grid := make([][]int, h)
	for r := range grid {
		grid[r] = make([]int, w)
	}
	return grid
}

func mustGrid(t *testing.T, values [][]int) *hexgrid.HexGrid {
	t.Helper()
	g, err := hexgrid.From2D(values)
	require.NoError(t, err)
	return g
}

func TestNewHexGrid_Errors(t *testing.T) {
	_, err := hexgrid.From2D(nil)
	assert.ErrorIs(t, err, hexgrid.ErrEmptyGrid)
	_, err = hexgrid.From2D([][]int{{}})
	assert.ErrorIs(t, err, hexgrid.ErrEmptyGrid)
	_, err = hexgrid.From2D([][]int{{0, 0}, {0}})
	assert.ErrorIs(t, err, hexgrid.ErrNonRectangular)

	opts := hexgrid.DefaultGridOptions()
	opts.WallThreshold = 0
	_, err = hexgrid.NewHexGrid(open(2, 2), opts)
	assert.ErrorIs(t, err, hexgrid.ErrInvalidOptions)

	opts = hexgrid.DefaultGridOptions()
	opts.WallOpacity = 0
	_, err = hexgrid.NewHexGrid(open(2, 2), opts)
	assert.ErrorIs(t, err, hexgrid.ErrInvalidOptions)

	// a nil logger falls back to the default
	_, err = hexgrid.NewHexGrid(open(2, 2), hexgrid.GridOptions{WallThreshold: 5, WallOpacity: 50})
	assert.NoError(t, err)
}

func TestNewHexGrid_DeepCopy(t *testing.T) {
	values := [][]int{{0, 0}}
	g := mustGrid(t, values)
	values[0][1] = 9
	assert.True(t, g.Passable(hex.New(1, 0)))
}

func TestHexGrid_CellQueries(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 3, 9}})

	assert.True(t, g.InBounds(hex.New(2, 0)))
	assert.False(t, g.InBounds(hex.New(3, 0)))
	assert.False(t, g.InBounds(hex.New(0, -1)))

	v, ok := g.Value(hex.New(1, 0))
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = g.Value(hex.New(5, 5))
	assert.False(t, ok)

	assert.Equal(t, 1, g.Opaqueness(hex.New(0, 0)), "floor is transparent")
	assert.Equal(t, 3, g.Opaqueness(hex.New(1, 0)))
	assert.Equal(t, 1<<16, g.Opaqueness(hex.New(2, 0)))
	assert.Equal(t, 1<<16, g.Opaqueness(hex.New(-1, 0)), "off-grid is a wall")

	assert.True(t, g.Passable(hex.New(1, 0)))
	assert.False(t, g.Passable(hex.New(2, 0)))
	assert.True(t, g.IsWall(hex.New(9, 9)))
}

func TestHexGrid_CoordinateIndex(t *testing.T) {
	g := mustGrid(t, open(4, 3))
	assert.Equal(t, hex.New(3, 1), g.Coordinate(7))
	assert.Equal(t, hex.New(0, 2), g.Coordinate(8))
}

// TestConnectedComponents_Rooms checks rooms on a 4×3 grid (9 = wall):
//
//	0 0 9 0
//	9 9 9 0
//	0 9 0 0
//
// Hex adjacency links (3,1) with (2,2), so the right side is one room.
func TestConnectedComponents_Rooms(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 9, 0},
		{9, 9, 9, 0},
		{0, 9, 0, 0},
	})
	comps := g.ConnectedComponents()
	assert.Equal(t, [][]int{{0, 1}, {3, 7, 11, 10}, {8}}, comps)

	assert.Equal(t, []int{3, 7, 11, 10}, g.ComponentOf(hex.New(3, 0)))
	assert.Nil(t, g.ComponentOf(hex.New(2, 0)))
}

func TestConnectedComponents_AllWalls(t *testing.T) {
	g := mustGrid(t, [][]int{{9, 9}, {9, 9}})
	assert.Empty(t, g.ConnectedComponents())
}

// Every passable cell lands in exactly one component.
func TestConnectedComponents_Partition(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 9, 0, 0, 9, 0},
		{0, 9, 9, 0, 9, 0},
		{9, 0, 9, 9, 0, 0},
		{0, 0, 9, 0, 9, 0},
	})
	count := make(map[int]int)
	for _, comp := range g.ConnectedComponents() {
		for _, i := range comp {
			count[i]++
		}
	}
	for i := 0; i < g.Width*g.Height; i++ {
		if g.Passable(g.Coordinate(i)) {
			assert.Equal(t, 1, count[i], "cell %v", g.Coordinate(i))
		} else {
			assert.Zero(t, count[i], "wall %v", g.Coordinate(i))
		}
	}
}

func TestShortestPath_Open(t *testing.T) {
	g := mustGrid(t, open(5, 5))
	from, to := hex.New(0, 0), hex.New(3, 2)
	path, err := g.ShortestPath(from, to)
	require.NoError(t, err)
	require.Len(t, path, 6)
	assert.Equal(t, from, path[0])
	assert.Equal(t, to, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, path[i-1].Distance(path[i]))
		assert.True(t, g.InBounds(path[i]))
	}
}

// TestShortestPath_Detour walks around a wall (9):
//
//	0 9 0
//	0 9 0
//	0 0 0
func TestShortestPath_Detour(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 9, 0},
		{0, 9, 0},
		{0, 0, 0},
	})
	path, err := g.ShortestPath(hex.New(0, 0), hex.New(2, 0))
	require.NoError(t, err)
	assert.Equal(t, []coord{
		hex.New(0, 0), hex.New(0, 1), hex.New(0, 2), hex.New(1, 2), hex.New(2, 1), hex.New(2, 0),
	}, path)
}

func TestShortestPath_Errors(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 9, 0}})

	_, err := g.ShortestPath(hex.New(0, 0), hex.New(2, 0))
	assert.ErrorIs(t, err, hexgrid.ErrNoPath)

	_, err = g.ShortestPath(hex.New(0, 0), hex.New(3, 0))
	assert.ErrorIs(t, err, hexgrid.ErrOutOfBounds)
	_, err = g.ShortestPath(hex.New(-1, 0), hex.New(0, 0))
	assert.ErrorIs(t, err, hexgrid.ErrOutOfBounds)
}

// A wall destination is reached by stepping onto it last.
func TestShortestPath_WallDestination(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0, 9}})
	path, err := g.ShortestPath(hex.New(0, 0), hex.New(2, 0))
	require.NoError(t, err)
	assert.Equal(t, []coord{hex.New(0, 0), hex.New(1, 0), hex.New(2, 0)}, path)
}

func TestShortestPath_SameCell(t *testing.T) {
	g := mustGrid(t, open(2, 2))
	path, err := g.ShortestPath(hex.New(1, 1), hex.New(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []coord{hex.New(1, 1)}, path)
}

// items grid: 2 marks an item at (1,1), (3,0) and (0,4), walking distance 2, 3 and 4 from (0,0).
func items(t *testing.T) *hexgrid.HexGrid {
	t.Helper()
	values := open(5, 5)
	values[1][1] = 2
	values[0][3] = 2
	values[4][0] = 2
	return mustGrid(t, values)
}

func TestNearestMatching(t *testing.T) {
	g := items(t)
	isItem := func(c coord) bool { v, _ := g.Value(c); return v == 2 }

	got, err := g.NearestMatching(hex.New(0, 0), isItem, 2)
	require.NoError(t, err)
	assert.Equal(t, []coord{hex.New(1, 1), hex.New(3, 0)}, got)

	got, err = g.NearestMatching(hex.New(0, 0), isItem, 10)
	require.NoError(t, err)
	assert.Equal(t, []coord{hex.New(1, 1), hex.New(3, 0), hex.New(0, 4)}, got)

	got, err = g.NearestMatching(hex.New(0, 0), isItem, 0)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = g.NearestMatching(hex.New(7, 0), isItem, 1)
	assert.ErrorIs(t, err, hexgrid.ErrOutOfBounds)
}

// Off-grid cells are never reported, even when match accepts them.
func TestNearestMatching_StaysInBounds(t *testing.T) {
	g := mustGrid(t, open(2, 2))
	got, err := g.NearestMatching(hex.New(0, 0), func(coord) bool { return true }, 100)
	require.NoError(t, err)
	assert.Len(t, got, 4)
	for _, c := range got {
		assert.True(t, g.InBounds(c))
	}
}

func TestFirstStep(t *testing.T) {
	g := items(t)
	isItem := func(c coord) bool { v, _ := g.Value(c); return v == 2 }

	// (1,1) is discovered through (1,0) before (0,1)
	step, dist, err := g.FirstStep(hex.New(0, 0), isItem)
	require.NoError(t, err)
	assert.Equal(t, hex.New(1, 0), step)
	assert.Equal(t, 2, dist)

	step, dist, err = g.FirstStep(hex.New(1, 1), isItem)
	require.NoError(t, err)
	assert.Equal(t, hex.New(1, 1), step)
	assert.Zero(t, dist)

	_, _, err = g.FirstStep(hex.New(0, 0), func(coord) bool { return false })
	assert.ErrorIs(t, err, hexgrid.ErrNoPath)
}

func TestReachable(t *testing.T) {
	g := mustGrid(t, open(5, 5))
	center := hex.New(2, 2)

	one, err := g.Reachable(center, 1)
	require.NoError(t, err)
	assert.Len(t, one, 7)
	assert.Equal(t, 0, one[center])
	for _, n := range center.Neighbors() {
		assert.Equal(t, 1, one[n])
	}

	zero, err := g.Reachable(center, 0)
	require.NoError(t, err)
	assert.Equal(t, map[coord]int{center: 0}, zero)

	corner, err := g.Reachable(hex.New(0, 0), 1)
	require.NoError(t, err)
	assert.Len(t, corner, 3, "off-grid neighbors are excluded")

	walled := mustGrid(t, [][]int{{9, 0}})
	none, err := walled.Reachable(hex.New(0, 0), 3)
	require.NoError(t, err)
	assert.Empty(t, none)
}

var variants = []hexgrid.Variant{hexgrid.VariantShadowcast, hexgrid.VariantShadowcastPost, hexgrid.VariantTrace}

func TestFieldOfView_OpenDisk(t *testing.T) {
	g := mustGrid(t, open(7, 7))
	origin := hex.New(3, 3)
	for _, v := range variants {
		t.Run(v.String(), func(t *testing.T) {
			fov, err := g.FieldOfView(origin, 3, v)
			require.NoError(t, err)
			assert.Len(t, fov, 19)
			for c := range fov {
				assert.LessOrEqual(t, origin.Distance(c), 2)
			}
		})
	}
}

func TestFieldOfView_OriginLight(t *testing.T) {
	g := mustGrid(t, open(7, 7))
	origin := hex.New(3, 3)
	want := map[hexgrid.Variant]int{
		hexgrid.VariantShadowcast:     3,
		hexgrid.VariantShadowcastPost: 2,
		hexgrid.VariantTrace:          3,
	}
	for v, l := range want {
		fov, err := g.FieldOfView(origin, 3, v)
		require.NoError(t, err)
		assert.Equal(t, l, fov[origin], v.String())
	}
}

// A wall on a single row hides everything behind it.
func TestFieldOfView_WallBlocks(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0, 9, 0, 0, 0}})
	for _, v := range variants {
		t.Run(v.String(), func(t *testing.T) {
			fov, err := g.FieldOfView(hex.New(0, 0), 10, v)
			require.NoError(t, err)
			got := make([]coord, 0, len(fov))
			for c := range fov {
				got = append(got, c)
			}
			assert.ElementsMatch(t, []coord{hex.New(0, 0), hex.New(1, 0), hex.New(2, 0)}, got)
		})
	}
}

// Smoke (value 4) dims the light passing through it.
func TestFieldOfView_SmokeDims(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0, 4, 0, 0, 0, 0}})
	fov, err := g.FieldOfView(hex.New(0, 0), 8, hexgrid.VariantTrace)
	require.NoError(t, err)
	assert.Equal(t, 7, fov[hex.New(1, 0)])
	assert.Equal(t, 6, fov[hex.New(2, 0)])
	assert.Equal(t, 2, fov[hex.New(3, 0)])
	assert.Equal(t, 1, fov[hex.New(4, 0)])
	assert.NotContains(t, fov, hex.New(5, 0))
}

func TestFieldOfView_Cone(t *testing.T) {
	g := mustGrid(t, open(7, 7))
	origin := hex.New(3, 3)
	for _, v := range []hexgrid.Variant{hexgrid.VariantShadowcastPost, hexgrid.VariantTrace} {
		fov, err := g.FieldOfView(origin, 3, v, hex.East)
		require.NoError(t, err)
		assert.Contains(t, fov, hex.New(5, 3), v.String())
		assert.NotContains(t, fov, hex.New(1, 3), v.String())
	}
}

func TestFieldOfView_Errors(t *testing.T) {
	g := mustGrid(t, open(3, 3))
	_, err := g.FieldOfView(hex.New(5, 5), 3, hexgrid.VariantTrace)
	assert.ErrorIs(t, err, hexgrid.ErrOutOfBounds)

	_, err = g.FieldOfView(hex.New(1, 1), 3, hexgrid.Variant(7))
	assert.ErrorIs(t, err, hexgrid.ErrUnknownVariant)
	assert.Equal(t, "Variant(7)", hexgrid.Variant(7).String())
}

func TestVisibleMatching(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0, 9, 0, 0, 0}})
	walls, err := g.VisibleMatching(hex.New(0, 0), 10, hexgrid.VariantShadowcast, g.IsWall)
	require.NoError(t, err)
	assert.Equal(t, []coord{hex.New(2, 0)}, walls)

	all, err := g.VisibleMatching(hex.New(0, 0), 10, hexgrid.VariantTrace, nil)
	require.NoError(t, err)
	assert.Equal(t, []coord{hex.New(0, 0), hex.New(1, 0), hex.New(2, 0)}, all)
}

func TestHexGrid_Logger(t *testing.T) {
	var buf bytes.Buffer
	opts := hexgrid.DefaultGridOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g, err := hexgrid.NewHexGrid(open(3, 3), opts)
	require.NoError(t, err)

	_, err = g.FieldOfView(hex.New(1, 1), 2, hexgrid.VariantTrace)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hexgrid: field of view")
	assert.Contains(t, buf.String(), "los: trace sweep done")

	buf.Reset()
	_, err = g.ShortestPath(hex.New(0, 0), hex.New(2, 2))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "bfs: destination found")
}
