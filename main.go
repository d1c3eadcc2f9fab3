package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-universe/model"
	"github.com/sheikhrachel/go-universe/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Println("Error loading configuration:", err)
			os.Exit(1)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	universe, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Println("Error initializing game:", err)
		os.Exit(1)
	}
	displayGameInfo(config, universe)

	// Handle Ctrl+C gracefully
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return run(ctx, config, universe, renderer, stats)
	})
	eg.Go(func() error {
		<-ctx.Done()
		if sigCtx.Err() != nil {
			fmt.Println("\n🛑 Shutting down gracefully...")
		}
		return nil
	})

	if err = eg.Wait(); err != nil {
		fmt.Println("Error during run:", err)
		os.Exit(1)
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// run drives the tick/render loop until a stop condition is met or ctx is cancelled
func run(
	ctx context.Context,
	config utils.Config,
	universe *model.Universe,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	var (
		history       utils.History
		stagnantCount = 0
		lastFrameTime = time.Now()
		ticker        = time.NewTicker(config.FrameRate)
	)
	defer ticker.Stop()

	for generation := 0; ; generation++ {
		frameStart := time.Now()
		if config.ClearScreen {
			renderer.Clear()
		}

		livingCells, density, status, isStagnant := updateGameState(universe, generation, lastFrameTime, stats, &history)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, density, status, stats)
		if err := renderer.Display(universe); err != nil {
			return errors.Wrap(err, "[run] failed to display universe")
		}

		if stopping, reason := checkStopConditions(livingCells, stagnantCount, generation, config); stopping {
			fmt.Printf("\n🏁 Stopping: %s\n", reason)
			return nil
		}

		universe.Tick()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
