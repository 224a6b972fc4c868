package debugui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/bundlecs/ecs"
)

type point struct{ X, Y int }

type label string

type testBundle struct {
	Point *point
	Label *label
}

func spawnRows(t *testing.T) (*ecs.World[testBundle], []ecs.EntityId) {
	t.Helper()
	world := ecs.NewWorld[testBundle](ecs.WithIdGenerator(ecs.NewSeededGenerator(3)))

	p := point{X: 1, Y: 2}
	l := label("sign")
	ids := []ecs.EntityId{
		world.SpawnBundle(testBundle{Point: &p}),
		world.SpawnBundle(testBundle{Label: &l}),
		world.SpawnBundle(testBundle{Point: &p, Label: &l}),
		world.SpawnBundle(testBundle{}),
	}
	return world, ids
}

func TestBuildRows(t *testing.T) {
	world, ids := spawnRows(t)

	rows := buildRows(world)
	require.Len(t, rows, 4)
	for i, row := range rows {
		assert.Equal(t, ids[i], row.ID)
	}
	assert.Equal(t, []string{"Point"}, rows[0].Fields)
	assert.Equal(t, []string{"Label"}, rows[1].Fields)
	assert.Equal(t, []string{"Point", "Label"}, rows[2].Fields)
	assert.Empty(t, rows[3].Fields)
}

func TestFilterRows(t *testing.T) {
	world, ids := spawnRows(t)
	rows := buildRows(world)

	t.Run("no filter", func(t *testing.T) {
		assert.Len(t, filterRows(rows, "", nil), 4)
	})

	t.Run("required fields use AND", func(t *testing.T) {
		got := filterRows(rows, "", []string{"Point", "Label"})
		require.Len(t, got, 1)
		assert.Equal(t, ids[2], got[0].ID)

		assert.Len(t, filterRows(rows, "", []string{"Point"}), 2)
	})

	t.Run("text matches field names case-insensitively", func(t *testing.T) {
		got := filterRows(rows, "LABEL", nil)
		require.Len(t, got, 2)
		assert.Equal(t, ids[1], got[0].ID)
		assert.Equal(t, ids[2], got[1].ID)
	})

	t.Run("text matches id prefix", func(t *testing.T) {
		prefix := strings.ToUpper(ids[3].String()[:8])
		got := filterRows(rows, prefix, nil)
		require.NotEmpty(t, got)
		assert.Equal(t, ids[3], got[0].ID)
	})

	t.Run("text and fields combine", func(t *testing.T) {
		got := filterRows(rows, "point", []string{"Label"})
		require.Len(t, got, 1)
		assert.Equal(t, ids[2], got[0].ID)
	})
}

func TestPaging(t *testing.T) {
	tests := []struct {
		n, page, perPage int
		start, end       int
	}{
		{n: 0, page: 0, perPage: 10, start: 0, end: 0},
		{n: 25, page: 0, perPage: 10, start: 0, end: 10},
		{n: 25, page: 2, perPage: 10, start: 20, end: 25},
		{n: 25, page: 5, perPage: 10, start: 25, end: 25},
		{n: 25, page: 1, perPage: 0, start: 0, end: 25},
	}
	for _, tt := range tests {
		start, end := pageBounds(tt.n, tt.page, tt.perPage)
		assert.Equal(t, tt.start, start, "%+v", tt)
		assert.Equal(t, tt.end, end, "%+v", tt)
	}

	assert.Equal(t, 1, totalPages(0, 10))
	assert.Equal(t, 3, totalPages(25, 10))
	assert.Equal(t, 2, totalPages(20, 10))
	assert.Equal(t, 1, totalPages(20, 0))
}

func TestDescribeBundle(t *testing.T) {
	p := point{X: 3, Y: 4}
	lines := describeBundle(&testBundle{Point: &p})

	require.Len(t, lines, 1)
	assert.Equal(t, "Point (debugui.point)", lines[0].Name)
	assert.Equal(t, "{X:3 Y:4}", lines[0].Value)
}

func TestPerformanceStatsAverage(t *testing.T) {
	ps := NewPerformanceStats[testBundle](4)
	for _, dt := range []float32{0.010, 0.010, 0.020, 0.020} {
		ps.record(dt)
	}
	assert.InDelta(t, 15.0, ps.averageFrameTime(), 0.001)

	ps.record(0.030)
	assert.InDelta(t, 20.0, ps.averageFrameTime(), 0.001)
}

func TestQueryDebuggerSelectedIsSorted(t *testing.T) {
	qd := NewQueryDebugger[testBundle]()
	qd.selectedFields["Point"] = true
	qd.selectedFields["Label"] = true
	assert.Equal(t, []string{"Label", "Point"}, qd.Selected())
}
