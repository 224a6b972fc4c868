package ecs

// Commands buffers structural changes requested by systems during a frame.
// They are applied, in request order, after every system has run.
type Commands[C any] struct {
	spawns []Entity[C]
	defers []func()
}

func newCommands[C any]() *Commands[C] {
	return &Commands[C]{}
}

// Spawn queues an entity for insertion.
func (c *Commands[C]) Spawn(entity Entity[C]) {
	c.spawns = append(c.spawns, entity)
}

// SpawnBundle queues a bundle for insertion. The id is generated on flush by
// the target world's generator.
func (c *Commands[C]) SpawnBundle(bundle C) {
	c.spawns = append(c.spawns, Entity[C]{Bundle: bundle})
}

// Defer queues a function to run after all spawns have been applied.
func (c *Commands[C]) Defer(fn func()) {
	if fn == nil {
		return
	}
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued operations.
func (c *Commands[C]) Len() int {
	return len(c.spawns) + len(c.defers)
}

// Flush applies all queued commands to world and resets the buffer.
func (c *Commands[C]) Flush(world *World[C]) {
	for _, entity := range c.spawns {
		world.Spawn(entity)
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.spawns)
	c.spawns = c.spawns[:0]
	c.defers = c.defers[:0]
}
