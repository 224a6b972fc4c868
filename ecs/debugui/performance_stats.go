package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/bundlecs/ecs"
)

// PerformanceStats shows entity totals, per-field presence and a frame time graph.
type PerformanceStats[C any] struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats[C any](historyFrames int) *PerformanceStats[C] {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return &PerformanceStats[C]{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (ps *PerformanceStats[C]) Render(world *ecs.World[C], deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.record(deltaTime)

	stats := world.CollectStats()

	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Empty Entities: %d", stats.EmptyCount))

	avgFrameTime := ps.averageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Field Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("FieldStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Field")
			imgui.TableSetupColumn("Type")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, field := range stats.Fields {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(field.Name)
				imgui.TableNextColumn()
				imgui.Text(field.Type)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", field.Present))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (ps *PerformanceStats[C]) record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

func (ps *PerformanceStats[C]) averageFrameTime() float32 {
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}
