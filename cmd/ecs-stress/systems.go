package main

import (
	"math/rand"

	"github.com/plus3/bundlecs/ecs"
)

// motionSystem integrates positions into a running checksum. Worlds have no
// in-place update, so the result only exists to keep the work observable.
type motionSystem struct {
	checksum float64
	matched  int64
}

func (s *motionSystem) Execute(frame *ecs.UpdateFrame[StressBundle]) {
	dt := float32(frame.DeltaTime)
	for _, row := range ecs.Query2(frame.World, StressBundleFields.Transform, StressBundleFields.Velocity) {
		s.checksum += float64(row.A.X + row.B.DX*dt + row.A.Y + row.B.DY*dt)
		s.matched++
	}
}

type healthView struct {
	Health *Health
	Label  *Label `ecs:"optional"`
}

// healthSystem reads through the reflection-based view.
type healthSystem struct {
	view    *ecs.View[StressBundle, healthView]
	matched int64
	wounded int64
}

func (s *healthSystem) Execute(frame *ecs.UpdateFrame[StressBundle]) {
	if s.view == nil {
		s.view = ecs.NewView[StressBundle, healthView](frame.World)
	}
	for item := range s.view.Values() {
		s.matched++
		if item.Health.Current < item.Health.Max {
			s.wounded++
		}
	}
}

// tagSystem reads through a cached query.
type tagSystem struct {
	query   *ecs.CachedQuery[StressBundle, ecs.Row2[Label, Tags]]
	matched int64
}

func (s *tagSystem) Execute(frame *ecs.UpdateFrame[StressBundle]) {
	if s.query == nil {
		s.query = ecs.NewCachedQuery(frame.World, ecs.Project2(StressBundleFields.Label, StressBundleFields.Tags))
	}
	s.query.Execute()
	for range s.query.Values() {
		s.matched++
	}
}

// spawnSystem grows the world a little every frame through deferred commands.
type spawnSystem struct {
	rnd      *rand.Rand
	perFrame int
	presence float64
}

func (s *spawnSystem) Execute(frame *ecs.UpdateFrame[StressBundle]) {
	for i := 0; i < s.perFrame; i++ {
		frame.Commands.SpawnBundle(randomBundle(s.rnd, s.presence))
	}
}
