package ecs_test

import "github.com/plus3/bundlecs/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name string

type Health struct {
	Current int
	Max     int
}

type Inventory struct {
	Items []string
}

func (i Inventory) Clone() Inventory {
	return Inventory{Items: append([]string(nil), i.Items...)}
}

// Bundle is the test bundle: every field optional.
type Bundle struct {
	Position  *Position
	Velocity  *Velocity
	Name      *Name
	Health    *Health
	Inventory *Inventory

	note string
}

func (b Bundle) WithPosition(v Position) Bundle   { b.Position = &v; return b }
func (b Bundle) WithVelocity(v Velocity) Bundle   { b.Velocity = &v; return b }
func (b Bundle) WithName(v Name) Bundle           { b.Name = &v; return b }
func (b Bundle) WithHealth(v Health) Bundle       { b.Health = &v; return b }
func (b Bundle) WithInventory(v Inventory) Bundle { b.Inventory = &v; return b }

var (
	positionField  = ecs.NewField("Position", func(b *Bundle) *Position { return b.Position })
	velocityField  = ecs.NewField("Velocity", func(b *Bundle) *Velocity { return b.Velocity })
	nameField      = ecs.NewField("Name", func(b *Bundle) *Name { return b.Name })
	healthField    = ecs.NewField("Health", func(b *Bundle) *Health { return b.Health })
	inventoryField = ecs.NewField("Inventory", func(b *Bundle) *Inventory { return b.Inventory })
)

func newTestWorld(opts ...ecs.Option) *ecs.World[Bundle] {
	opts = append([]ecs.Option{ecs.WithIdGenerator(ecs.NewSeededGenerator(42))}, opts...)
	return ecs.NewWorld[Bundle](opts...)
}
