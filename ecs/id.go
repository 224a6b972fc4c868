package ecs

import (
	"math/rand"

	"github.com/google/uuid"
)

// EntityId is an opaque 128-bit identifier naming a single entity.
// Ids are generated once, at entity construction, and never change.
type EntityId uuid.UUID

// Nil is the zero EntityId. Generators never produce it in practice.
var Nil EntityId

// String returns the canonical UUID form of the id.
func (e EntityId) String() string {
	return uuid.UUID(e).String()
}

// IsNil reports whether e is the zero id.
func (e EntityId) IsNil() bool {
	return e == Nil
}

// ParseEntityId parses the canonical UUID form produced by String.
func ParseEntityId(s string) (EntityId, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Nil, err
	}
	return EntityId(id), nil
}

// IdGenerator produces fresh entity ids.
// Uniqueness is probabilistic. World.Spawn rejects an id that is already live.
type IdGenerator interface {
	NewId() EntityId
}

// IdGeneratorFunc adapts a plain function to the IdGenerator interface.
type IdGeneratorFunc func() EntityId

func (f IdGeneratorFunc) NewId() EntityId { return f() }

// UUIDGenerator generates random (version 4) UUIDs from crypto/rand.
type UUIDGenerator struct{}

func (UUIDGenerator) NewId() EntityId {
	return EntityId(uuid.New())
}

// SeededGenerator generates version 4 UUIDs from a deterministic source.
// Two generators created with the same seed produce the same id sequence,
// which keeps demo output and tests reproducible.
type SeededGenerator struct {
	rnd *rand.Rand
}

// NewSeededGenerator creates a deterministic generator for the given seed.
func NewSeededGenerator(seed int64) *SeededGenerator {
	return &SeededGenerator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *SeededGenerator) NewId() EntityId {
	// math/rand.Rand.Read never fails
	return EntityId(uuid.Must(uuid.NewRandomFromReader(g.rnd)))
}

// DefaultIdGenerator is used by NewEntity and by worlds created without WithIdGenerator.
var DefaultIdGenerator IdGenerator = UUIDGenerator{}
