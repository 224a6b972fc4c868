package ecs

import (
	"iter"

	"github.com/rs/zerolog"
)

// World owns every spawned entity: the insertion-ordered id sequence and the
// id -> bundle mapping. Both always hold the same set of ids, each once.
//
// A World is not safe for concurrent use. Spawning from inside a query loop is
// allowed; the running query does not observe the new entity.
type World[C any] struct {
	entities   []EntityId
	components map[EntityId]C

	idGen  IdGenerator
	logger zerolog.Logger
}

// Option configures a World at construction time.
type Option func(*worldOptions)

type worldOptions struct {
	idGen    IdGenerator
	logger   zerolog.Logger
	capacity int
}

// WithIdGenerator sets the generator used by SpawnBundle.
func WithIdGenerator(gen IdGenerator) Option {
	return func(o *worldOptions) {
		o.idGen = gen
	}
}

// WithLogger injects a logger; spawns are reported at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *worldOptions) {
		o.logger = logger
	}
}

// WithCapacity preallocates room for n entities.
func WithCapacity(n int) Option {
	return func(o *worldOptions) {
		o.capacity = n
	}
}

// NewWorld creates an empty world.
func NewWorld[C any](opts ...Option) *World[C] {
	o := worldOptions{
		idGen:  DefaultIdGenerator,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < 0 {
		o.capacity = 0
	}

	return &World[C]{
		entities:   make([]EntityId, 0, o.capacity),
		components: make(map[EntityId]C, o.capacity),
		idGen:      o.idGen,
		logger:     o.logger,
	}
}

// Spawn stores a deep copy of the entity's bundle and appends its id to the
// world. Any bundle is accepted, including one with no components present.
// Later writes through pointers the caller still holds never reach the world.
//
// An entity with the Nil id is given a fresh id from the world's generator.
// An id that is already live is rejected with a warning and Nil is returned,
// leaving the stored bundle untouched. Otherwise the stored id is returned.
func (w *World[C]) Spawn(entity Entity[C]) EntityId {
	if entity.Id.IsNil() {
		entity.Id = w.idGen.NewId()
	}
	if _, exists := w.components[entity.Id]; exists {
		w.logger.Warn().
			Str("entity_id", entity.Id.String()).
			Msg("entity already spawned, ignoring")
		return Nil
	}

	w.entities = append(w.entities, entity.Id)
	w.components[entity.Id] = cloneBundle(entity.Bundle)

	w.logger.Debug().
		Str("entity_id", entity.Id.String()).
		Int("total_entities", len(w.entities)).
		Msg("entity spawned")
	return entity.Id
}

// SpawnBundle wraps bundle in a new Entity using the world's id generator,
// spawns it and returns the generated id.
func (w *World[C]) SpawnBundle(bundle C) EntityId {
	return w.Spawn(NewEntityWith(w.idGen, bundle))
}

// Len returns the number of live entities.
func (w *World[C]) Len() int {
	return len(w.entities)
}

// Contains reports whether id names a live entity.
func (w *World[C]) Contains(id EntityId) bool {
	_, ok := w.components[id]
	return ok
}

// Get returns a deep copy of the bundle stored for id.
func (w *World[C]) Get(id EntityId) (C, bool) {
	bundle, ok := w.components[id]
	if !ok {
		return bundle, false
	}
	return cloneBundle(bundle), true
}

// Ids returns the live ids in insertion order, as of the call.
func (w *World[C]) Ids() iter.Seq[EntityId] {
	ids := w.snapshot()
	return func(yield func(EntityId) bool) {
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}

// snapshot returns the id sequence as of now. Spawns append past the returned
// length (or reallocate), so the snapshot never changes underneath a reader.
func (w *World[C]) snapshot() []EntityId {
	n := len(w.entities)
	return w.entities[:n:n]
}

// bundle returns a pointer to a shallow copy of the stored bundle for id.
// Component pointers inside it are world-owned; readers must not write through them.
func (w *World[C]) bundle(id EntityId) (*C, bool) {
	c, ok := w.components[id]
	if !ok {
		return nil, false
	}
	return &c, true
}
