package ecs

// Entity pairs a freshly generated id with the component bundle it was built from.
// It only exists between construction and World.Spawn; the World keeps the id and
// the bundle separately afterwards.
type Entity[C any] struct {
	Id     EntityId
	Bundle C
}

// NewEntity creates an entity for bundle using DefaultIdGenerator.
func NewEntity[C any](bundle C) Entity[C] {
	return NewEntityWith(DefaultIdGenerator, bundle)
}

// NewEntityWith creates an entity for bundle using the given generator.
func NewEntityWith[C any](gen IdGenerator, bundle C) Entity[C] {
	return Entity[C]{
		Id:     gen.NewId(),
		Bundle: bundle,
	}
}
