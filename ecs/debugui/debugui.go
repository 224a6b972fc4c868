// Package debugui provides Dear ImGui windows for inspecting an ecs.World:
// an entity browser, a component inspector, a field-query debugger and a
// statistics panel. The windows are plain values; DebugUI bundles them and
// plugs into a Scheduler as a system.
package debugui

import (
	"github.com/plus3/bundlecs/ecs"
)

// DebugUI renders every debug window for a World of bundles C.
type DebugUI[C any] struct {
	Browser   *EntityBrowser[C]
	Inspector *ComponentInspector[C]
	Queries   *QueryDebugger[C]
	Stats     *PerformanceStats[C]
}

// New creates the full set of debug windows.
func New[C any]() *DebugUI[C] {
	return &DebugUI[C]{
		Browser:   NewEntityBrowser[C](100),
		Inspector: NewComponentInspector[C](),
		Queries:   NewQueryDebugger[C](),
		Stats:     NewPerformanceStats[C](120),
	}
}

// Render draws all windows. It must be called between imgui.NewFrame and imgui.Render.
func (d *DebugUI[C]) Render(world *ecs.World[C], deltaTime float32) {
	d.Browser.Render(world)
	d.Inspector.Render(world, d.Browser.SelectedEntity())
	d.Queries.Render(world)
	d.Stats.Render(world, deltaTime)
}

// Execute defers rendering until after the frame's systems have run, so the
// windows show the world after this frame's spawns.
func (d *DebugUI[C]) Execute(frame *ecs.UpdateFrame[C]) {
	world := frame.World
	dt := float32(frame.DeltaTime)
	frame.Commands.Defer(func() {
		d.Render(world, dt)
	})
}
