package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/plus3/bundlecs/ecs"
)

// SeparatorWidth is the number of dashes printed between system outputs.
const SeparatorWidth = 50

// MovementSystem reports every entity that has a position.
type MovementSystem struct {
	Out io.Writer
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame[Bundle]) {
	for id, pos := range ecs.Query1(frame.World, BundleFields.Position) {
		fmt.Fprintf(s.Out, "(ID: %s)\n", id)
		fmt.Fprintf(s.Out, "[MOVEMENT] %v\n", pos)
	}
}

// GreetSystem reports every entity that has a name.
type GreetSystem struct {
	Out io.Writer
}

func (s *GreetSystem) Execute(frame *ecs.UpdateFrame[Bundle]) {
	for id, name := range ecs.Query1(frame.World, BundleFields.Name) {
		fmt.Fprintf(s.Out, "(ID: %s)\n", id)
		fmt.Fprintf(s.Out, "[NAME] %v\n", name)
	}
}

// RenderSystem reports every entity that has both a position and a name.
// Its query is cached across frames and only scans newly spawned entities.
type RenderSystem struct {
	Out io.Writer

	query *ecs.CachedQuery[Bundle, ecs.Row2[Position, Name]]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame[Bundle]) {
	if s.query == nil {
		s.query = ecs.NewCachedQuery(frame.World, ecs.Project2(BundleFields.Position, BundleFields.Name))
	}
	s.query.Execute()

	for id, row := range s.query.Iter() {
		fmt.Fprintf(s.Out, "(ID: %s)\n", id)
		fmt.Fprintf(s.Out, "[RENDER] %v at %v\n", row.B, row.A)
	}
}

// Separator returns a system that prints a line of dashes.
func Separator(out io.Writer) ecs.System[Bundle] {
	line := strings.Repeat("-", SeparatorWidth)
	return ecs.SystemFunc[Bundle](func(*ecs.UpdateFrame[Bundle]) {
		fmt.Fprintln(out, line)
	})
}

// NewScheduler registers the demo pipeline: movement, greet and render,
// each followed by a separator line.
func NewScheduler(world *ecs.World[Bundle], out io.Writer) *ecs.Scheduler[Bundle] {
	scheduler := ecs.NewScheduler(world)
	scheduler.RegisterNamed("header", Separator(out))
	scheduler.Register(&MovementSystem{Out: out})
	scheduler.RegisterNamed("separator-movement", Separator(out))
	scheduler.Register(&GreetSystem{Out: out})
	scheduler.RegisterNamed("separator-greet", Separator(out))
	scheduler.Register(&RenderSystem{Out: out})
	scheduler.RegisterNamed("footer", Separator(out))
	return scheduler
}

// SeedWorld spawns the sample entities: a bare point, a bare label and a
// named player at the origin. It returns their ids in spawn order.
func SeedWorld(world *ecs.World[Bundle]) (point, label, player ecs.EntityId) {
	point = world.SpawnBundle(NewBundle().
		WithPosition(Position{X: 3, Y: 4}))

	label = world.SpawnBundle(NewBundle().
		WithName(Name("Label")))

	player = world.SpawnBundle(NewBundle().
		WithPosition(Position{X: 0, Y: 0}).
		WithName(Name("Ian")))

	return point, label, player
}
