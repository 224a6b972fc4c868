package ecs

// System represents a behavior that operates on the entities of a World.
// Systems read the world through queries and request structural changes
// through frame.Commands so that running queries never see half-applied state.
type System[C any] interface {
	Execute(frame *UpdateFrame[C])
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc[C any] func(frame *UpdateFrame[C])

func (f SystemFunc[C]) Execute(frame *UpdateFrame[C]) { f(frame) }
