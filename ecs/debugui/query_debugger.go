package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/bundlecs/ecs"
)

// QueryDebugger counts the entities that hold every selected field, mirroring
// the AND semantics of ecs queries.
type QueryDebugger[C any] struct {
	selectedFields  map[string]bool
	rows            []EntityRow
	lastEntityCount int
}

func NewQueryDebugger[C any]() *QueryDebugger[C] {
	return &QueryDebugger[C]{
		selectedFields:  make(map[string]bool),
		lastEntityCount: -1,
	}
}

func (qd *QueryDebugger[C]) Render(world *ecs.World[C]) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if qd.lastEntityCount != world.Len() {
		qd.rows = buildRows(world)
		qd.lastEntityCount = world.Len()
	}

	imgui.Text("Select Fields:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selectedFields = make(map[string]bool)
	}

	for _, field := range ecs.BundleFields[C]() {
		selected := qd.selectedFields[field.Name]
		if imgui.Checkbox(field.Name, &selected) {
			if selected {
				qd.selectedFields[field.Name] = true
			} else {
				delete(qd.selectedFields, field.Name)
			}
		}
	}

	imgui.Separator()

	required := qd.Selected()
	if len(required) == 0 {
		imgui.Text("No fields selected")
		imgui.End()
		return
	}

	matching := filterRows(qd.rows, "", required)
	imgui.Text(fmt.Sprintf("Matching Entities: %d / %d", len(matching), len(qd.rows)))

	if imgui.TreeNodeStr("Matches") {
		for _, row := range matching {
			imgui.BulletText(row.ID.String())
		}
		imgui.TreePop()
	}

	imgui.End()
}

// Selected returns the selected field names, sorted.
func (qd *QueryDebugger[C]) Selected() []string {
	names := make([]string, 0, len(qd.selectedFields))
	for name := range qd.selectedFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
