package main

import (
	"testing"
	"time"

	"github.com/sheikhrachel/go-universe/patterns"
	"github.com/sheikhrachel/go-universe/utils"
)

func TestSeedUniverse(t *testing.T) {
	tests := []struct {
		name           string
		seed           string
		width, height  uint32
		wantPopulation int
		wantErr        bool
	}{
		{"default", patterns.Default, 64, 64, 2341, false},
		{"default wrong size", patterns.Default, 32, 64, 0, true},
		{"glider", patterns.Glider, 20, 10, 5, false},
		{"block", patterns.Block, 8, 8, 4, false},
		{"unknown", "spaceship", 8, 8, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := utils.DefaultConfig()
			config.Seed = tt.seed
			config.Width, config.Height = tt.width, tt.height

			universe, err := seedUniverse(config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("seedUniverse() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if universe.Width() != tt.width || universe.Height() != tt.height {
				t.Fatalf("size = %dx%d", universe.Width(), universe.Height())
			}
			if p := universe.Population(); p != tt.wantPopulation {
				t.Fatalf("population = %d, want %d", p, tt.wantPopulation)
			}
		})
	}
}

func TestSeedUniversePerlin(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = patterns.Noise
	config.Width, config.Height = 24, 12
	config.PerlinThreshold = -10

	universe, err := seedUniverse(config)
	if err != nil {
		t.Fatalf("seedUniverse: %v", err)
	}
	if p := universe.Population(); p != 24*12 {
		t.Fatalf("population = %d, want %d", p, 24*12)
	}
}

func TestUpdateGameStateDetectsStillLife(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = patterns.Block
	config.Width, config.Height = 8, 8

	universe, err := seedUniverse(config)
	if err != nil {
		t.Fatalf("seedUniverse: %v", err)
	}

	var (
		stats   = utils.NewStats()
		history utils.History
	)
	_, _, status, stagnant := updateGameState(universe, 0, time.Now(), stats, &history)
	if stagnant || status != "Active" {
		t.Fatalf("first generation reported %q stagnant=%v", status, stagnant)
	}

	universe.Tick()
	living, density, status, stagnant := updateGameState(universe, 1, time.Now(), stats, &history)
	if !stagnant || status != "Stagnant" {
		t.Fatalf("block reported %q stagnant=%v", status, stagnant)
	}
	if living != 4 || density != 4.0/64*100 {
		t.Fatalf("living=%d density=%v", living, density)
	}
}

func TestCheckStopConditions(t *testing.T) {
	config := utils.DefaultConfig()
	config.MaxGenerations = 10
	config.StagnationThreshold = 3

	tests := []struct {
		name                         string
		living, stagnant, generation int
		stopOnStagnation, wantStop   bool
	}{
		{"running", 5, 0, 1, true, false},
		{"extinct", 0, 0, 1, true, true},
		{"stagnant", 5, 3, 1, true, true},
		{"stagnant but allowed", 5, 3, 1, false, false},
		{"max generations", 5, 0, 10, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config
			c.StopOnStagnation = tt.stopOnStagnation
			stop, reason := checkStopConditions(tt.living, tt.stagnant, tt.generation, c)
			if stop != tt.wantStop {
				t.Fatalf("stop = %v (%q), want %v", stop, reason, tt.wantStop)
			}
			if stop && reason == "" {
				t.Fatal("stop without reason")
			}
		})
	}
}
