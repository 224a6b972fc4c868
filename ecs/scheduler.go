package ecs

import (
	"context"
	"reflect"
	"time"

	"github.com/rs/zerolog"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems against a World, one after another, in registration order.
type Scheduler[C any] struct {
	world       *World[C]
	systems     []System[C]
	systemStats []*systemStatsInternal
	logger      zerolog.Logger
}

// NewScheduler creates a new scheduler for the given world.
// It logs through the world's logger until InjectLogger is called.
func NewScheduler[C any](world *World[C]) *Scheduler[C] {
	return &Scheduler[C]{
		world:   world,
		systems: make([]System[C], 0),
		logger:  world.logger,
	}
}

// InjectLogger replaces the scheduler's logger.
func (s *Scheduler[C]) InjectLogger(logger *zerolog.Logger) {
	s.logger = *logger
}

// Register adds a system, named after its type.
func (s *Scheduler[C]) Register(system System[C]) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	s.RegisterNamed(systemType.Name(), system)
}

// RegisterNamed adds a system under an explicit name, which is what
// SystemFunc values need since they have no meaningful type name.
func (s *Scheduler[C]) RegisterNamed(name string, system System[C]) {
	for _, existing := range s.systemStats {
		if existing.name == name {
			s.logger.Warn().Str("system", name).Msg("duplicate system registered: " + name)
			break
		}
	}

	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time,
// then flushes the commands they queued.
func (s *Scheduler[C]) Once(dt float64) {
	frame := newUpdateFrame(dt, s.world)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		s.logger.Trace().
			Str("system", stats.name).
			Dur("duration", duration).
			Msg("system executed")
	}

	if queued := frame.Commands.Len(); queued > 0 {
		s.logger.Debug().Int("commands", queued).Msg("flushing commands")
	}
	frame.Commands.Flush(s.world)
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler[C]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler[C]) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
