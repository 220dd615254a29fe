// Package generator builds maze grids for a level. Difficulty is a pure
// function of the level number: the grid grows by a fixed step until it hits
// a cap, and the chance of opening loop walls rises inside a clamped band.
package generator

import (
	"math"

	"mazeroll/pkg/game/config"
)

// Difficulty is the set of generation parameters for one level.
type Difficulty struct {
	Level      int
	Size       int     // odd, rows == cols
	LoopChance float64 // probability of opening each bridge wall
	Stage      int     // growth steps applied; stops increasing at the size cap
}

// Curve maps level numbers to Difficulty.
type Curve struct {
	maze config.Maze
}

// NewCurve returns a curve for the given maze settings. The settings are
// normalized first, so even sizes, inverted bands and negative growth are repaired.
func NewCurve(m config.Maze) Curve {
	cfg := config.Default()
	cfg.Maze = m
	cfg.Normalize()
	return Curve{maze: cfg.Maze}
}

// Settings returns the normalized maze settings behind the curve.
func (c Curve) Settings() config.Maze {
	return c.maze
}

// ForLevel returns the difficulty for a level. Levels below 1 are treated as 1.
func (c Curve) ForLevel(level int) Difficulty {
	if level < 1 {
		level = 1
	}
	size, stage := c.size(level)
	return Difficulty{
		Level:      level,
		Size:       size,
		LoopChance: c.LoopChance(level),
		Stage:      stage,
	}
}

// Size returns the odd grid size for a level
func (c Curve) Size(level int) int {
	if level < 1 {
		level = 1
	}
	size, _ := c.size(level)
	return size
}

func (c Curve) size(level int) (size, stage int) {
	m := c.maze
	steps := level - 1
	if m.GrowthStep == 0 {
		return config.Oddify(m.BaseSize), 0
	}

	// Steps needed to reach the cap; computing it first keeps huge levels from overflowing.
	span := m.MaxSize - m.BaseSize
	capSteps := span / m.GrowthStep
	if span%m.GrowthStep != 0 {
		capSteps++
	}
	if steps >= capSteps {
		return m.MaxSize, capSteps
	}

	raw := m.BaseSize + steps*m.GrowthStep
	return config.Oddify(min(raw, m.MaxSize)), steps
}

// LoopChance returns the clamped loop probability for a level
func (c Curve) LoopChance(level int) float64 {
	if level < 1 {
		level = 1
	}
	m := c.maze
	raw := m.LoopBase + float64(level-1)*m.LoopGrowth
	return math.Max(m.LoopMin, math.Min(m.LoopMax, raw))
}
