package ecs

import (
	"github.com/rs/zerolog"
)

func loadFieldsToEvent(event *zerolog.Event, stats WorldStats) *zerolog.Event {
	event.Int("total_fields", stats.FieldCount)
	arrayLogger := zerolog.Arr()
	for _, field := range stats.Fields {
		dictLogger := zerolog.Dict()
		dictLogger = dictLogger.Str("field_name", field.Name)
		dictLogger = dictLogger.Str("field_type", field.Type)
		dictLogger = dictLogger.Int("present", field.Present)
		arrayLogger = arrayLogger.Dict(dictLogger)
	}
	return event.Array("fields", arrayLogger)
}

// LogWorld logs entity totals and per-field presence counts for world.
func LogWorld[C any](logger *zerolog.Logger, world *World[C], level zerolog.Level) {
	stats := world.CollectStats()
	event := logger.WithLevel(level)
	event.Int("total_entities", stats.EntityCount)
	event.Int("empty_entities", stats.EmptyCount)
	loadFieldsToEvent(event, stats).Send()
}

// LogEntity logs which component fields entity id holds.
// Unknown ids are logged at error level.
func LogEntity[C any](logger *zerolog.Logger, world *World[C], level zerolog.Level, id EntityId) {
	bundle, ok := world.Get(id)
	if !ok {
		logger.Error().Str("entity_id", id.String()).Msg("entity not found")
		return
	}

	present := PresentFields(&bundle)
	arrayLogger := zerolog.Arr()
	for _, name := range present {
		arrayLogger = arrayLogger.Str(name)
	}

	logger.WithLevel(level).
		Str("entity_id", id.String()).
		Int("total_components", len(present)).
		Array("components", arrayLogger).
		Send()
}
