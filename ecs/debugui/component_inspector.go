package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/bundlecs/ecs"
)

// ComponentInspector shows the component values of the selected entity.
type ComponentInspector[C any] struct {
	selectedEntityId ecs.EntityId
}

func NewComponentInspector[C any]() *ComponentInspector[C] {
	return &ComponentInspector[C]{}
}

func (ci *ComponentInspector[C]) Render(world *ecs.World[C], selectedEntityId ecs.EntityId) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntityId = selectedEntityId

	if ci.selectedEntityId.IsNil() {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	bundle, ok := world.Get(ci.selectedEntityId)
	if !ok {
		imgui.Text(fmt.Sprintf("Entity %s not found", ci.selectedEntityId))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %s", ci.selectedEntityId))
	imgui.Separator()

	for _, line := range describeBundle(&bundle) {
		if imgui.TreeNodeStr(line.Name) {
			imgui.Text(line.Value)
			imgui.TreePop()
		}
	}

	imgui.End()
}

type componentLine struct {
	Name  string
	Value string
}

// describeBundle formats every present component of bundle, in field order.
func describeBundle[C any](bundle *C) []componentLine {
	val := reflect.ValueOf(bundle).Elem()
	fields := ecs.BundleFields[C]()

	lines := make([]componentLine, 0, len(fields))
	for _, field := range fields {
		fieldVal := val.Field(field.Index)
		if fieldVal.IsNil() {
			continue
		}
		lines = append(lines, componentLine{
			Name:  fmt.Sprintf("%s (%s)", field.Name, field.Type),
			Value: fmt.Sprintf("%+v", fieldVal.Elem().Interface()),
		})
	}
	return lines
}
