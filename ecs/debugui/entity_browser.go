package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/bundlecs/ecs"
)

// EntityBrowser lists entities in spawn order with the fields they hold.
type EntityBrowser[C any] struct {
	rows               []EntityRow
	lastEntityCount    int
	selectedEntityId   ecs.EntityId
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

func NewEntityBrowser[C any](maxEntitiesPerPage int) *EntityBrowser[C] {
	return &EntityBrowser[C]{
		lastEntityCount:    -1,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowser[C]) Render(world *ecs.World[C]) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(world)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.currentPage = 0
	}

	filtered := filterRows(eb.rows, eb.filterText, nil)
	pages := totalPages(len(filtered), eb.maxEntitiesPerPage)
	if eb.currentPage >= pages {
		eb.currentPage = pages - 1
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		start, end := pageBounds(len(filtered), eb.currentPage, eb.maxEntitiesPerPage)
		for _, row := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == row.ID
			if imgui.SelectableBoolV(row.ID.String(), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = row.ID
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.Fields, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(row.Fields)))
		}

		imgui.EndTable()
	}

	if pages > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, pages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < pages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

// rebuildCacheIfNeeded refreshes the rows when entities were spawned.
// Worlds only grow, so the entity count is a sufficient change signal.
func (eb *EntityBrowser[C]) rebuildCacheIfNeeded(world *ecs.World[C]) {
	if eb.lastEntityCount != world.Len() {
		eb.rows = buildRows(world)
		eb.lastEntityCount = world.Len()
	}
}

func (eb *EntityBrowser[C]) SelectedEntity() ecs.EntityId {
	return eb.selectedEntityId
}
