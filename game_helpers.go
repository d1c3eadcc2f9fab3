package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-universe/model"
	"github.com/sheikhrachel/go-universe/patterns"
	"github.com/sheikhrachel/go-universe/utils"
)

// initializeGame builds the seeded universe and the run-loop collaborators
func initializeGame(config utils.Config) (
	*model.Universe,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	universe, err := seedUniverse(config)
	if err != nil {
		return nil, nil, nil, err
	}
	if config.UseMemoryPool {
		universe.UsePool(model.NewBufferPool())
	}

	return universe, model.NewTerminalRenderer(), utils.NewStats(), nil
}

// seedUniverse constructs a universe and applies the configured seed pattern
func seedUniverse(config utils.Config) (*model.Universe, error) {
	var coords []model.Coord
	switch config.Seed {
	case patterns.Default, "":
		universe := model.New()
		if config.Width != universe.Width() || config.Height != universe.Height() {
			return nil, errors.Errorf("[seedUniverse] the default seed is only defined for %dx%d, got %dx%d",
				universe.Width(), universe.Height(), config.Width, config.Height)
		}
		return universe, nil
	case patterns.Noise:
		coords = patterns.Perlin(config.Width, config.Height, config.RandomSeed, config.PerlinThreshold)
	default:
		var err error
		if coords, err = patterns.Named(config.Seed, config.Width, config.Height); err != nil {
			return nil, errors.Wrap(err, "[seedUniverse]")
		}
	}

	universe := model.NewWithSize(config.Width, config.Height)
	if err := universe.SetCellsAlive(coords...); err != nil {
		return nil, errors.Wrap(err, "[seedUniverse]")
	}
	return universe, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, universe *model.Universe) {
	fmt.Printf("Seed: %s | Memory Pool: %v | Stop on stagnation: %v\n",
		config.Seed, config.UseMemoryPool, config.StopOnStagnation)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		universe.Width(), universe.Height(), universe.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState records the current generation and returns status information
func updateGameState(
	universe *model.Universe,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
	history *utils.History,
) (int, float64, string, bool) {
	livingCells := universe.Population()
	density := float64(livingCells) / float64(len(universe.Cells())) * 100

	stats.Update(generation, livingCells, time.Since(lastFrameTime))

	hash := universe.Hash()
	isStagnant := history.IsStagnant(hash)
	history.Push(hash)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(generation, livingCells int, density float64, status string, stats *utils.Stats) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Println()
}

// checkStopConditions determines if the run should end
func checkStopConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StopOnStagnation && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}
