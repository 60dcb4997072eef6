package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// parseArgs builds the config from defaults, an optional JSON file, and
// command line flags, in increasing order of precedence
func parseArgs(args []string) (utils.Config, error) {
	var (
		fs          = flag.NewFlagSet("go-life", flag.ContinueOnError)
		configPath  = fs.String("config", "", "path to a JSON config file")
		size        = fs.Int("grid-size", 0, "grid dimension N for an N×N board")
		interval    = fs.Int("interval", 0, "frame interval in milliseconds")
		glider      = fs.Bool("glider", false, "start from a glider at (1,1) instead of random cells")
		pattern     = fs.String("pattern", "", "start from a named pattern (glider, block, blinker)")
		probability = fs.Float64("probability", 0, "probability that a random cell starts alive")
		seed        = fs.Uint64("seed", 0, "random seed; 0 picks one from the clock")
		generations = fs.Int("generations", 0, "stop after this many generations; 0 runs until interrupted")
		workers     = fs.Int("workers", 0, "parallel step workers; 0 uses one per CPU")
		quiet       = fs.Bool("quiet", false, "skip per-generation output")
	)
	if err := fs.Parse(args); err != nil {
		return utils.Config{}, errors.Wrap(err, "[parseArgs] invalid arguments")
	}

	config := utils.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = utils.LoadConfig(*configPath); err != nil {
			return config, err
		}
	}

	// Only flags given explicitly override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "grid-size":
			config.Size = *size
		case "interval":
			config.FrameRate = time.Duration(*interval) * time.Millisecond
		case "glider":
			if *glider {
				config.Mode = utils.ModePattern
				config.Pattern = model.Glider.Name
			}
		case "pattern":
			config.Mode = utils.ModePattern
			config.Pattern = *pattern
		case "probability":
			config.AliveProbability = *probability
		case "seed":
			config.Seed = *seed
		case "generations":
			config.MaxGenerations = *generations
		case "workers":
			config.Workers = *workers
		case "quiet":
			config.Quiet = *quiet
		}
	})

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// initializeWorld sets up the initial game state
func initializeWorld(config utils.Config, rng *rand.Rand) (*model.World, error) {
	grid, err := model.NewGame(config, rng)
	if err != nil {
		return nil, err
	}

	var opts []model.Option
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewGridPool()))
	}
	if config.UseParallel {
		opts = append(opts, model.WithWorkers(config.Workers))
	}
	if config.StagnationThreshold > 0 {
		opts = append(opts, model.WithHistory(config.StagnationThreshold))
	}

	return model.NewWorld(grid, opts...), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, world *model.World) {
	fmt.Fprintf(out, "Run: %s | Mode: %s | Memory Pool: %v | Parallel: %v\n",
		world.RunID(), config.Mode, config.UseMemoryPool, config.UseParallel)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d\n",
		world.Current().Size(), world.Current().Size(), world.Population())
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, world *model.World, stats *utils.Stats, status string) {
	size := world.Current().Size()
	density := float64(world.Population()) / float64(size*size) * 100

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		world.Generation(), world.Population(), density, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}

// displayFinalStats prints the run summary
func displayFinalStats(out io.Writer, stats *utils.Stats) {
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Fprintf(out, "Average: %.1f gen/sec, %.1f avg population, +%d/-%d net cells\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Growth, stats.Decline)
}

// gameStatus labels the current generation for display
func gameStatus(world *model.World) string {
	switch {
	case world.Population() == 0:
		return "Extinct"
	case world.IsStagnant():
		return "Stagnant"
	}
	return "Active"
}

// checkStopConditions reports whether the run has died out, settled, or is
// due a periodic refresh, when the config asks to act on that
func checkStopConditions(world *model.World, stagnantCount int, config utils.Config) (bool, string) {
	if !config.StopOnStagnation && !config.AutoRestart {
		return false, ""
	}
	if world.Population() == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.AutoRestart && config.RefreshInterval > 0 &&
		world.Generation() > 0 && world.Generation()%config.RefreshInterval == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the world in place
func restartGame(out io.Writer, config utils.Config, world *model.World, rng *rand.Rand) error {
	grid, err := model.NewGame(config, rng)
	if err != nil {
		return errors.Wrap(err, "[restartGame]")
	}
	world.Reset(grid)
	fmt.Fprintf(out, "New run %s loaded! Living cells: %d\n", world.RunID(), world.Population())
	return nil
}

// run drives the world until the generation limit, a stop condition, or ctx is done
func run(ctx context.Context, config utils.Config, out io.Writer) error {
	rng := utils.NewRand(config.Seed)
	world, err := initializeWorld(config, rng)
	if err != nil {
		return err
	}

	renderer := model.NewTextRenderer(out)
	stats := utils.NewStats()
	displayGameInfo(out, config, world)

	var (
		generations   = 0
		stagnantCount = 0
	)

	for {
		if ctx.Err() != nil {
			fmt.Fprintln(out, "Shutting down gracefully...")
			displayFinalStats(out, stats)
			return nil
		}

		frameStart := time.Now()

		status := gameStatus(world)
		if world.IsStagnant() {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		if !config.Quiet {
			if err = renderer.Clear(); err != nil {
				return errors.Wrap(err, "[run] failed to clear screen")
			}
			displayGameStatus(out, world, stats, status)
			if err = renderer.Display(world.Current()); err != nil {
				return errors.Wrap(err, "[run] failed to render grid")
			}
		}

		if config.MaxGenerations > 0 && generations >= config.MaxGenerations {
			fmt.Fprintf(out, "Reached maximum generations limit (%d)\n", config.MaxGenerations)
			displayFinalStats(out, stats)
			return nil
		}

		if stop, reason := checkStopConditions(world, stagnantCount, config); stop {
			if !config.AutoRestart {
				fmt.Fprintf(out, "Stopping due to %s\n", reason)
				displayFinalStats(out, stats)
				return nil
			}
			fmt.Fprintf(out, "Restarting due to %s...\n", reason)
			if err = restartGame(out, config, world, rng); err != nil {
				return err
			}
			stagnantCount = 0
		}

		previous := world.Population()
		if err = world.Advance(); err != nil {
			return errors.Wrap(err, "[run]")
		}
		generations++
		stats.Update(generations, previous, world.Population(), time.Since(frameStart))

		if config.FrameRate > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(config.FrameRate):
			}
		}
	}
}
