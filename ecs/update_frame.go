package ecs

type UpdateFrame[C any] struct {
	DeltaTime float64
	Commands  *Commands[C]
	World     *World[C]
}

func newUpdateFrame[C any](dt float64, world *World[C]) *UpdateFrame[C] {
	return &UpdateFrame[C]{
		DeltaTime: dt,
		Commands:  newCommands[C](),
		World:     world,
	}
}
