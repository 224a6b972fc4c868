package demo

import "fmt"

//go:generate go run github.com/plus3/bundlecs/cmd/ecsgen -type Bundle

// Position is a point on the integer grid.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("Position(%d, %d)", p.X, p.Y)
}

// Name is a display label.
type Name string

func (n Name) String() string {
	return fmt.Sprintf("Name(%q)", string(n))
}

// Bundle holds every component a demo entity can have.
// A nil field means the entity does not have that component.
type Bundle struct {
	Position *Position
	Name     *Name
}
