package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/bundlecs/ecs"
)

type movingView struct {
	Position *Position
	Velocity *Velocity
}

type labelledView struct {
	Health *Health
	Label  *Name `ecs:"name=Name,optional"`
}

func TestViewRequiresEveryNonOptionalField(t *testing.T) {
	world := newTestWorld()
	world.SpawnBundle(Bundle{}.WithPosition(Position{X: 1}))
	moving := world.SpawnBundle(Bundle{}.WithPosition(Position{X: 2}).WithVelocity(Velocity{DX: 1}))
	world.SpawnBundle(Bundle{}.WithVelocity(Velocity{DX: 3}))

	view := ecs.NewView[Bundle, movingView](world)

	var ids []ecs.EntityId
	for id, v := range view.Iter() {
		ids = append(ids, id)
		require.NotNil(t, v.Position)
		require.NotNil(t, v.Velocity)
		assert.Equal(t, Position{X: 2}, *v.Position)
	}
	assert.Equal(t, []ecs.EntityId{moving}, ids)
}

func TestViewOptionalAndRenamedFields(t *testing.T) {
	world := newTestWorld()
	named := world.SpawnBundle(Bundle{}.WithHealth(Health{Current: 5, Max: 10}).WithName("orc"))
	anonymous := world.SpawnBundle(Bundle{}.WithHealth(Health{Current: 1, Max: 1}))
	world.SpawnBundle(Bundle{}.WithName("ghost"))

	view := ecs.NewView[Bundle, labelledView](world)

	got := view.Get(named)
	require.NotNil(t, got)
	require.NotNil(t, got.Label)
	assert.Equal(t, Name("orc"), *got.Label)

	got = view.Get(anonymous)
	require.NotNil(t, got)
	assert.Nil(t, got.Label)
	assert.Equal(t, Health{Current: 1, Max: 1}, *got.Health)

	count := 0
	for range view.Values() {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestViewGetUnknownOrMissing(t *testing.T) {
	world := newTestWorld()
	id := world.SpawnBundle(Bundle{}.WithName("no health"))

	view := ecs.NewView[Bundle, labelledView](world)
	assert.Nil(t, view.Get(id))
	assert.Nil(t, view.Get(ecs.Nil))
}

func TestViewReturnsCopies(t *testing.T) {
	world := newTestWorld()
	id := world.SpawnBundle(Bundle{}.
		WithPosition(Position{X: 1}).
		WithVelocity(Velocity{DX: 1}).
		WithInventory(Inventory{Items: []string{"map"}}))

	type packView struct {
		Position  *Position
		Inventory *Inventory
	}
	view := ecs.NewView[Bundle, packView](world)

	v := view.Get(id)
	require.NotNil(t, v)
	v.Position.X = 99
	v.Inventory.Items[0] = "compass"

	stored, ok := world.Get(id)
	require.True(t, ok)
	assert.Equal(t, float32(1), stored.Position.X)
	assert.Equal(t, []string{"map"}, stored.Inventory.Items)
}

func TestNewViewRejectsInvalidDefinitions(t *testing.T) {
	world := newTestWorld()

	type empty struct{}
	type notPointer struct {
		Position Position
	}
	type unknownField struct {
		Mana *int
	}
	type wrongType struct {
		Position *Velocity
	}
	type unexported struct {
		position *Position
	}
	type badTag struct {
		Position *Position `ecs:"required"`
	}

	assert.Panics(t, func() { ecs.NewView[Bundle, empty](world) })
	assert.Panics(t, func() { ecs.NewView[Bundle, notPointer](world) })
	assert.Panics(t, func() { ecs.NewView[Bundle, unknownField](world) })
	assert.Panics(t, func() { ecs.NewView[Bundle, wrongType](world) })
	assert.Panics(t, func() { ecs.NewView[Bundle, unexported](world) })
	assert.Panics(t, func() { ecs.NewView[Bundle, badTag](world) })
	assert.Panics(t, func() { ecs.NewView[Bundle, int](world) })
}
