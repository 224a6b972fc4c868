package ecs

// WorldStats is a point-in-time summary of a World.
type WorldStats struct {
	EntityCount int
	// EmptyCount is the number of entities with no component present.
	EmptyCount int
	FieldCount int
	Fields     []FieldStats
}

// FieldStats counts the entities holding one component field.
type FieldStats struct {
	Name    string
	Type    string
	Present int
}

// CollectStats walks every entity and counts component presence per field.
func (w *World[C]) CollectStats() WorldStats {
	fields := BundleFields[C]()
	stats := WorldStats{
		EntityCount: len(w.entities),
		FieldCount:  len(fields),
		Fields:      make([]FieldStats, len(fields)),
	}

	index := make(map[string]int, len(fields))
	for i, field := range fields {
		stats.Fields[i] = FieldStats{
			Name: field.Name,
			Type: field.Type.String(),
		}
		index[field.Name] = i
	}

	for _, id := range w.entities {
		bundle := w.components[id]
		present := PresentFields(&bundle)
		if len(present) == 0 {
			stats.EmptyCount++
			continue
		}
		for _, name := range present {
			stats.Fields[index[name]].Present++
		}
	}

	return stats
}
