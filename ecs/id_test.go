package ecs_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/bundlecs/ecs"
)

func TestUUIDGeneratorProducesVersion4(t *testing.T) {
	gen := ecs.UUIDGenerator{}

	id := gen.NewId()
	assert.False(t, id.IsNil())
	assert.Equal(t, uuid.Version(4), uuid.UUID(id).Version())
	assert.NotEqual(t, id, gen.NewId())
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	a := ecs.NewSeededGenerator(7)
	b := ecs.NewSeededGenerator(7)
	c := ecs.NewSeededGenerator(8)

	seen := make(map[ecs.EntityId]bool)
	for i := 0; i < 100; i++ {
		idA := a.NewId()
		assert.Equal(t, idA, b.NewId())
		assert.NotEqual(t, idA, c.NewId())
		assert.Equal(t, uuid.Version(4), uuid.UUID(idA).Version())

		assert.False(t, seen[idA], "duplicate id %s", idA)
		seen[idA] = true
	}
}

func TestParseEntityId(t *testing.T) {
	id := ecs.NewSeededGenerator(1).NewId()

	parsed, err := ecs.ParseEntityId(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ecs.ParseEntityId("not-a-uuid")
	assert.Error(t, err)
}

func TestIdGeneratorFunc(t *testing.T) {
	var calls int
	fixed := ecs.EntityId(uuid.MustParse("00000000-0000-4000-8000-000000000001"))
	gen := ecs.IdGeneratorFunc(func() ecs.EntityId {
		calls++
		return fixed
	})

	entity := ecs.NewEntityWith(gen, Bundle{})
	assert.Equal(t, fixed, entity.Id)
	assert.Equal(t, 1, calls)
}

func TestNewEntityUsesDefaultGenerator(t *testing.T) {
	e1 := ecs.NewEntity(Bundle{}.WithName("a"))
	e2 := ecs.NewEntity(Bundle{}.WithName("a"))

	assert.False(t, e1.Id.IsNil())
	assert.NotEqual(t, e1.Id, e2.Id)
	assert.Equal(t, e1.Bundle, e2.Bundle)
}
