// Command ecsdemo spawns a handful of entities and runs the movement, greet
// and render systems over them once. With --debug-ui the world is then shown
// in the ImGui debug windows until the window is closed.
package main

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/plus3/bundlecs/ecs"
	"github.com/plus3/bundlecs/ecs/debugui"
	debugui_ebiten "github.com/plus3/bundlecs/ecs/debugui/ebiten"
	"github.com/plus3/bundlecs/internal/demo"
	"github.com/plus3/bundlecs/internal/scenario"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	cfg, cfgErr := LoadConfig()

	cmd := &cobra.Command{
		Use:           "ecsdemo",
		Short:         "Run the demo systems over a small world",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			return run(cmd.ErrOrStderr(), out, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "TOML or YAML scenario file (default: built-in sample)")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for deterministic entity ids (0 = random)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	flags.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "human readable logs instead of JSON")
	flags.BoolVar(&cfg.DebugUI, "debug-ui", cfg.DebugUI, "open the ImGui debug windows after the run")

	return cmd
}

func newLogger(w io.Writer, cfg Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), eris.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func run(logOut, out io.Writer, cfg Config) error {
	logger, err := newLogger(logOut, cfg)
	if err != nil {
		return err
	}

	var gen ecs.IdGenerator = ecs.UUIDGenerator{}
	if cfg.Seed != 0 {
		gen = ecs.NewSeededGenerator(cfg.Seed)
	}

	world := ecs.NewWorld[demo.Bundle](
		ecs.WithLogger(logger),
		ecs.WithIdGenerator(gen),
	)

	if cfg.Scenario == "" {
		demo.SeedWorld(world)
	} else {
		file, err := scenario.Load(cfg.Scenario)
		if err != nil {
			logger.Error().Err(err).Str("scenario", cfg.Scenario).Msg("failed to load scenario")
			return err
		}
		file.Spawn(world)
	}
	ecs.LogWorld(&logger, world, zerolog.InfoLevel)

	scheduler := demo.NewScheduler(world, out)
	scheduler.Once(0)

	for _, stats := range scheduler.GetStats().Systems {
		logger.Debug().
			Str("system", stats.Name).
			Dur("duration", stats.LastDuration).
			Msg("system stats")
	}

	if cfg.DebugUI {
		logger.Info().Msg("opening debug ui")
		if err := debugui_ebiten.Run("ecsdemo", ecs.NewScheduler(world), debugui.New[demo.Bundle]()); err != nil {
			return eris.Wrap(err, "debug ui")
		}
	}
	return nil
}
