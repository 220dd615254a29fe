// Package config holds the tunables of the maze game: maze growth, world scale,
// movement feel, level progression and save location. Values come from
// Default, optionally overlaid by a YAML file, and are always normalized
// before use so a bad file can never produce an unplayable game.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Maze controls grid size and loop density per level.
type Maze struct {
	BaseSize   int     `yaml:"base_size"`   // odd size of level 1
	MaxSize    int     `yaml:"max_size"`    // size cap
	GrowthStep int     `yaml:"growth_step"` // cells added per level
	LoopBase   float64 `yaml:"loop_base"`   // loop chance at level 1
	LoopGrowth float64 `yaml:"loop_growth"` // loop chance added per level
	LoopMin    float64 `yaml:"loop_min"`
	LoopMax    float64 `yaml:"loop_max"`
}

// World controls the mapping from grid cells to world units.
type World struct {
	CellSize   float64 `yaml:"cell_size"`
	WallSize   float64 `yaml:"wall_size"`
	WallHeight float64 `yaml:"wall_height"`
}

// Player describes the ball.
type Player struct {
	Radius float64 `yaml:"radius"`
	RestY  float64 `yaml:"rest_y"` // resting height of the ball center
}

// Movement controls how input turns into velocity.
type Movement struct {
	MaxSpeed         float64 `yaml:"max_speed"`
	Accel            float64 `yaml:"accel"`
	Decel            float64 `yaml:"decel"`
	TurnBoost        float64 `yaml:"turn_boost"`
	BounceDamping    float64 `yaml:"bounce_damping"` // velocity multiplier after a wall hit
	MaxDt            float64 `yaml:"max_dt"`         // tick delta clamp, seconds
	StopThreshold    float64 `yaml:"stop_threshold"` // per-axis speed below which FX treat the ball as stopped
	FacingThreshold  float64 `yaml:"facing_threshold"`
	CollisionPasses  int     `yaml:"collision_passes"`
	CollisionPadding float64 `yaml:"collision_padding"`
}

// Levels controls progression.
type Levels struct {
	Start            int     `yaml:"start"`
	Max              int     `yaml:"max"` // 0 means unbounded
	WinDistance      float64 `yaml:"win_distance"`
	AutoAdvance      bool    `yaml:"auto_advance"`
	AutoAdvanceDelay float64 `yaml:"auto_advance_delay"` // seconds
	PinRestartSeed   bool    `yaml:"pin_restart_seed"`   // restart replays the same layout
}

// FX holds cadence values handed to the presentation layer.
type FX struct {
	BumpCooldown float64 `yaml:"bump_cooldown"` // seconds between WallContact events
	StepInterval float64 `yaml:"step_interval"`
}

// Camera holds first-person look settings.
type Camera struct {
	MouseSensitivity float64 `yaml:"mouse_sensitivity"` // radians per pixel
	TurnSpeed        float64 `yaml:"turn_speed"`        // radians per second for keyboard turning
	PitchLimit       float64 `yaml:"pitch_limit"`       // radians either side of level
	EyeHeight        float64 `yaml:"eye_height"`
	FOV              float64 `yaml:"fov"` // horizontal field of view, degrees
}

// Config is the full game configuration.
type Config struct {
	Maze     Maze     `yaml:"maze"`
	World    World    `yaml:"world"`
	Player   Player   `yaml:"player"`
	Movement Movement `yaml:"movement"`
	Levels   Levels   `yaml:"levels"`
	FX       FX       `yaml:"fx"`
	Camera   Camera   `yaml:"camera"`
	SavePath string   `yaml:"save_path"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Maze: Maze{
			BaseSize:   11,
			MaxSize:    41,
			GrowthStep: 2,
			LoopBase:   0.04,
			LoopGrowth: 0.01,
			LoopMin:    0.04,
			LoopMax:    0.22,
		},
		World: World{
			CellSize:   2,
			WallSize:   2,
			WallHeight: 1.6,
		},
		Player: Player{
			Radius: 0.45,
			RestY:  0.45,
		},
		Movement: Movement{
			MaxSpeed:         7.5,
			Accel:            32,
			Decel:            28,
			TurnBoost:        14,
			BounceDamping:    0.35,
			MaxDt:            0.05,
			StopThreshold:    0.01,
			FacingThreshold:  0.05,
			CollisionPasses:  1,
			CollisionPadding: 0.01,
		},
		Levels: Levels{
			Start:            1,
			WinDistance:      0.9,
			AutoAdvanceDelay: 0.8,
		},
		FX: FX{
			BumpCooldown: 0.1,
			StepInterval: 0.2,
		},
		Camera: Camera{
			MouseSensitivity: 0.002,
			TurnSpeed:        2.5,
			PitchLimit:       1.15,
			EyeHeight:        0.75,
			FOV:              75,
		},
		SavePath: DefaultSavePath(),
	}
}

// DefaultSavePath returns the progress file location under the user config dir,
// or a file in the working directory if that dir is unavailable.
func DefaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "maze3d_progress_v2.msgpack"
	}
	return filepath.Join(dir, "mazeroll", "maze3d_progress_v2.msgpack")
}

// Load reads a YAML file on top of Default and normalizes the result.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Normalize clamps and repairs values in place. It never fails: out of range
// values fall back to something playable instead of being reported.
func (c *Config) Normalize() {
	d := Default()

	m := &c.Maze
	if m.BaseSize < 5 {
		m.BaseSize = 5
	}
	m.BaseSize = Oddify(m.BaseSize)
	if m.MaxSize < m.BaseSize {
		m.MaxSize = m.BaseSize
	}
	m.MaxSize = Oddify(m.MaxSize)
	if m.GrowthStep < 0 {
		m.GrowthStep = 0
	}
	// One step never needs to be larger than the whole range
	if span := m.MaxSize - m.BaseSize; m.GrowthStep > span {
		m.GrowthStep = span
	}
	m.LoopMin = clamp(m.LoopMin, 0, 1)
	m.LoopMax = clamp(m.LoopMax, 0, 1)
	if m.LoopMax < m.LoopMin {
		m.LoopMin, m.LoopMax = m.LoopMax, m.LoopMin
	}
	if m.LoopGrowth < 0 {
		m.LoopGrowth = 0
	}

	w := &c.World
	positiveOr(&w.CellSize, d.World.CellSize)
	positiveOr(&w.WallSize, w.CellSize)
	positiveOr(&w.WallHeight, d.World.WallHeight)

	positiveOr(&c.Player.Radius, d.Player.Radius)
	if c.Player.RestY < 0 || math.IsNaN(c.Player.RestY) {
		c.Player.RestY = c.Player.Radius
	}

	mv := &c.Movement
	positiveOr(&mv.MaxSpeed, d.Movement.MaxSpeed)
	positiveOr(&mv.Accel, d.Movement.Accel)
	positiveOr(&mv.Decel, d.Movement.Decel)
	if mv.TurnBoost < 0 {
		mv.TurnBoost = 0
	}
	mv.BounceDamping = clamp(mv.BounceDamping, 0, 1)
	positiveOr(&mv.MaxDt, d.Movement.MaxDt)
	if mv.StopThreshold < 0 {
		mv.StopThreshold = 0
	}
	if mv.FacingThreshold < 0 {
		mv.FacingThreshold = 0
	}
	if mv.CollisionPasses < 1 {
		mv.CollisionPasses = 1
	}
	if mv.CollisionPadding < 0 {
		mv.CollisionPadding = 0
	}

	l := &c.Levels
	if l.Start < 1 {
		l.Start = 1
	}
	if l.Max < 0 {
		l.Max = 0
	}
	if l.Max > 0 && l.Start > l.Max {
		l.Start = l.Max
	}
	positiveOr(&l.WinDistance, d.Levels.WinDistance)
	if l.AutoAdvanceDelay < 0 {
		l.AutoAdvanceDelay = 0
	}

	if c.FX.BumpCooldown < 0 {
		c.FX.BumpCooldown = 0
	}
	if c.FX.StepInterval < 0 {
		c.FX.StepInterval = 0
	}

	positiveOr(&c.Camera.MouseSensitivity, d.Camera.MouseSensitivity)
	positiveOr(&c.Camera.TurnSpeed, d.Camera.TurnSpeed)
	c.Camera.PitchLimit = clamp(c.Camera.PitchLimit, 0, math.Pi/2)
	positiveOr(&c.Camera.EyeHeight, d.Camera.EyeHeight)
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		c.Camera.FOV = d.Camera.FOV
	}

	if c.SavePath == "" {
		c.SavePath = d.SavePath
	}
}

// Oddify rounds an even number up to the next odd number.
func Oddify(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func positiveOr(v *float64, fallback float64) {
	if *v <= 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
		*v = fallback
	}
}
