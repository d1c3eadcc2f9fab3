// Package patterns builds seed coordinates for a universe.
package patterns

import (
	"github.com/aquilax/go-perlin"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-universe/model"
)

const (
	Default = "default"
	Glider  = "glider"
	Blinker = "blinker"
	Block   = "block"
	Noise   = "perlin"

	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinOctave = 3
	perlinScale  = 0.1
)

// ErrUnknownPattern is returned by Named for an unrecognised name
var ErrUnknownPattern = errors.New("unknown pattern")

// ErrTooSmall is returned when a shape does not fit in the grid
var ErrTooSmall = errors.New("grid too small for pattern")

var shapes = map[string][]model.Coord{
	Glider: {
		{Row: 0, Col: 1},
		{Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	},
	Blinker: {
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
	},
	Block: {
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
	},
}

// Named returns the live coordinates for a named seed on a width x height grid.
// Shapes are placed around the center. Default returns nil, leaving the
// universe's own seed in place. Noise uses seed 0 and threshold 0.
func Named(name string, width, height uint32) ([]model.Coord, error) {
	switch name {
	case Default:
		return nil, nil
	case Noise:
		return Perlin(width, height, 0, 0), nil
	}

	shape, ok := shapes[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Named] %q", name)
	}
	return Place(shape, width, height)
}

// Place centers a 3x3-bounded shape on the grid
func Place(shape []model.Coord, width, height uint32) ([]model.Coord, error) {
	if width < 3 || height < 3 {
		return nil, errors.Wrapf(ErrTooSmall, "[Place] %dx%d", width, height)
	}

	var (
		rowOffset = height/2 - 1
		colOffset = width/2 - 1
		out       = make([]model.Coord, 0, len(shape))
	)
	for _, c := range shape {
		out = append(out, model.Coord{Row: c.Row + rowOffset, Col: c.Col + colOffset})
	}
	return out, nil
}

// Perlin returns every coordinate whose 2D Perlin noise value exceeds threshold.
// The same seed always yields the same coordinates.
func Perlin(width, height uint32, seed int64, threshold float64) []model.Coord {
	var (
		p   = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, seed)
		out []model.Coord
	)
	for row := range height {
		for col := range width {
			if p.Noise2D(float64(col)*perlinScale, float64(row)*perlinScale) > threshold {
				out = append(out, model.Coord{Row: row, Col: col})
			}
		}
	}
	return out
}
