package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/plus3/bundlecs/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	spawnPerFrame := flag.Int("spawn-per-frame", 10, "Entities spawned through commands every frame.")
	presence := flag.Float64("presence", 0.5, "Probability that each component is present on a spawned entity.")
	seed := flag.Int64("seed", 1, "Seed for component data and entity ids.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	logger.Info().Msg("Starting ECS stress test...")

	// 1. Setup World and Scheduler
	rnd := rand.New(rand.NewSource(*seed))
	world := ecs.NewWorld[StressBundle](
		ecs.WithCapacity(*entityCount),
		ecs.WithIdGenerator(ecs.NewSeededGenerator(*seed)),
	)

	motion := &motionSystem{}
	health := &healthSystem{}
	tags := &tagSystem{}

	scheduler := ecs.NewScheduler(world)
	scheduler.InjectLogger(&logger)
	scheduler.Register(motion)
	scheduler.Register(health)
	scheduler.Register(tags)
	scheduler.Register(&spawnSystem{rnd: rnd, perFrame: *spawnPerFrame, presence: *presence})

	// 2. Populate the world with initial entities
	logger.Info().Int("entities", *entityCount).Msg("Populating world...")
	for i := 0; i < *entityCount; i++ {
		world.SpawnBundle(randomBundle(rnd, *presence))
	}
	logger.Info().Msg("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     len(ecs.BundleFields[StressBundle]()),
		Systems:        scheduler.GetStats().SystemCount,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info().Dur("duration", *duration).Msg("Running simulation...")
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(float64(deltaTime) / float64(time.Second))
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.FinalEntities = world.Len()
	report.World = world.CollectStats()
	report.Matches = map[string]int64{
		"Transform+Velocity (Query2)": motion.matched,
		"Health (View)":               health.matched,
		"Label+Tags (CachedQuery)":    tags.matched,
	}
	report.SystemStats = scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info().Float64("checksum", motion.checksum).Int64("wounded", health.wounded).Msg("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("Failed to generate report")
	}
	fmt.Println("--- End of Report ---")

	logger.Info().Msg("Stress test complete.")
}
