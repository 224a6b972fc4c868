package ecs_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/bundlecs/ecs"
)

func seedStatsWorld() (*ecs.World[Bundle], ecs.EntityId) {
	world := newTestWorld()
	world.SpawnBundle(Bundle{}.WithPosition(Position{X: 3, Y: 4}))
	world.SpawnBundle(Bundle{}.WithName("Label"))
	ian := world.SpawnBundle(Bundle{}.WithPosition(Position{}).WithName("Ian"))
	world.SpawnBundle(Bundle{})
	return world, ian
}

func TestBundleFieldsSkipsNonComponents(t *testing.T) {
	fields := ecs.BundleFields[Bundle]()

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"Position", "Velocity", "Name", "Health", "Inventory"}, names)
	assert.Equal(t, "ecs_test.Position", fields[0].Type.String())
}

func TestPresentFields(t *testing.T) {
	bundle := Bundle{}.WithName("x").WithHealth(Health{})
	assert.Equal(t, []string{"Name", "Health"}, ecs.PresentFields(&bundle))

	empty := Bundle{}
	assert.Empty(t, ecs.PresentFields(&empty))
}

func TestCollectStats(t *testing.T) {
	world, _ := seedStatsWorld()

	stats := world.CollectStats()
	assert.Equal(t, 4, stats.EntityCount)
	assert.Equal(t, 1, stats.EmptyCount)
	assert.Equal(t, 5, stats.FieldCount)

	present := map[string]int{}
	for _, f := range stats.Fields {
		present[f.Name] = f.Present
	}
	assert.Equal(t, map[string]int{
		"Position":  2,
		"Velocity":  0,
		"Name":      2,
		"Health":    0,
		"Inventory": 0,
	}, present)
}

func TestLogWorld(t *testing.T) {
	world, _ := seedStatsWorld()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ecs.LogWorld(&logger, world, zerolog.InfoLevel)

	var entry struct {
		Level         string `json:"level"`
		TotalEntities int    `json:"total_entities"`
		EmptyEntities int    `json:"empty_entities"`
		TotalFields   int    `json:"total_fields"`
		Fields        []struct {
			Name    string `json:"field_name"`
			Type    string `json:"field_type"`
			Present int    `json:"present"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, 4, entry.TotalEntities)
	assert.Equal(t, 1, entry.EmptyEntities)
	assert.Equal(t, 5, entry.TotalFields)
	require.Len(t, entry.Fields, 5)
	assert.Equal(t, "Position", entry.Fields[0].Name)
	assert.Equal(t, 2, entry.Fields[0].Present)
}

func TestLogEntity(t *testing.T) {
	world, ian := seedStatsWorld()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ecs.LogEntity(&logger, world, zerolog.DebugLevel, ian)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, ian.String(), entry["entity_id"])
	assert.EqualValues(t, 2, entry["total_components"])
	assert.Equal(t, []any{"Position", "Name"}, entry["components"])
}

func TestLogEntityUnknownId(t *testing.T) {
	world, _ := seedStatsWorld()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ecs.LogEntity(&logger, world, zerolog.InfoLevel, ecs.Nil)

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "entity not found")
}
