package debugui

import (
	"strings"

	"github.com/plus3/bundlecs/ecs"
)

// EntityRow is the browser's summary of one entity.
type EntityRow struct {
	ID     ecs.EntityId
	Fields []string
}

// buildRows summarizes every entity of world in spawn order.
func buildRows[C any](world *ecs.World[C]) []EntityRow {
	rows := make([]EntityRow, 0, world.Len())
	for id := range world.Ids() {
		bundle, _ := world.Get(id)
		rows = append(rows, EntityRow{
			ID:     id,
			Fields: ecs.PresentFields(&bundle),
		})
	}
	return rows
}

// hasAll reports whether row holds every field in required.
func (r EntityRow) hasAll(required []string) bool {
	for _, name := range required {
		found := false
		for _, field := range r.Fields {
			if field == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// filterRows keeps rows that hold every required field and whose id or field
// names contain text (case-insensitive). Empty filters match everything.
func filterRows(rows []EntityRow, text string, required []string) []EntityRow {
	if text == "" && len(required) == 0 {
		return rows
	}

	filtered := make([]EntityRow, 0, len(rows))
	filterLower := strings.ToLower(text)

	for _, row := range rows {
		if !row.hasAll(required) {
			continue
		}

		if text != "" {
			idStr := row.ID.String()
			fieldsStr := strings.ToLower(strings.Join(row.Fields, " "))
			if !strings.Contains(idStr, filterLower) && !strings.Contains(fieldsStr, filterLower) {
				continue
			}
		}

		filtered = append(filtered, row)
	}
	return filtered
}

// pageBounds returns the [start, end) slice bounds for page, clamped to n rows.
func pageBounds(n, page, perPage int) (start, end int) {
	if perPage <= 0 {
		return 0, n
	}
	start = page * perPage
	if start > n {
		start = n
	}
	end = start + perPage
	if end > n {
		end = n
	}
	return start, end
}

func totalPages(n, perPage int) int {
	if perPage <= 0 || n == 0 {
		return 1
	}
	return (n + perPage - 1) / perPage
}
