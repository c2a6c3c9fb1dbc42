// internal/config/config.go
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

const (
	TPS = 60 // тиков в секунду, шаг симуляции

	ControlsFontSize = 20
	ScoreFontSize    = 15
	LabelFontSize    = 25
	ResourceFontSize = 15
	BannerFontSize   = 50

	LabelOffset    = 25
	ControlsTextX  = 35
	ResourcesTextY = 35
	ScoreTextY     = 70

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	FlashFrames    = 20 // сколько тиков живёт вспышка гибели
	FlashMaxRadius = 40.0
)

var (
	BackgroundColor    = color.RGBA{255, 255, 255, 255}
	ControlsBarColor   = color.RGBA{0, 0, 255, 255}
	TextLightColor     = color.RGBA{255, 255, 255, 255}
	TextDarkColor      = color.RGBA{0, 0, 0, 255}
	HighlightColor     = color.RGBA{0, 0, 0, 255}
	DefenderColor      = color.RGBA{0, 128, 0, 255}
	EnemyColor         = color.RGBA{255, 0, 0, 255}
	HealthTextColor    = color.RGBA{255, 215, 0, 255}
	ProjectileColor    = color.RGBA{0, 0, 0, 255}
	ResourceColor      = color.RGBA{255, 255, 0, 255}
	GameOverColor      = color.RGBA{255, 255, 255, 255}
	LevelCompleteColor = color.RGBA{0, 128, 0, 255}
	PauseOverlayColor  = color.RGBA{0, 0, 0, 128}
	KillFlashColor     = color.RGBA{255, 140, 0, 160}
	LossFlashColor     = color.RGBA{90, 90, 90, 160}

	RunningStateColor  = color.RGBA{50, 205, 50, 255}
	WinLatchedColor    = color.RGBA{255, 215, 0, 255}
	TerminalStateColor = color.RGBA{220, 60, 60, 255}
)

// ErrInvalid marks a configuration that loaded but cannot run a match.
var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of a match.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Grid       GridConfig       `yaml:"grid"`
	Economy    EconomyConfig    `yaml:"economy"`
	Defender   DefenderConfig   `yaml:"defender"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Resource   ResourceConfig   `yaml:"resource"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Pointer    PointerConfig    `yaml:"pointer"`
	Match      MatchConfig      `yaml:"match"`

	Derived DerivedConfig `yaml:"-"`
}

type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type GridConfig struct {
	CellSize float64 `yaml:"cell_size"`
	CellGap  float64 `yaml:"cell_gap"`
}

// EconomyConfig covers the two player counters and the win threshold.
type EconomyConfig struct {
	StartingResources int `yaml:"starting_resources"`
	WinScore          int `yaml:"win_score"`
	ScoreReward       int `yaml:"score_reward"`
}

type DefenderConfig struct {
	Cost         int     `yaml:"cost"`
	Health       float64 `yaml:"health"`
	MeleeDamage  float64 `yaml:"melee_damage"`  // урон от врага за тик контакта
	FireInterval int     `yaml:"fire_interval"` // ticks between shots
}

type EnemyConfig struct {
	Health      float64 `yaml:"health"`
	Reward      int     `yaml:"reward"`
	MinSpeed    float64 `yaml:"min_speed"`
	SpeedJitter float64 `yaml:"speed_jitter"` // speed = min + U[0,jitter)
}

type ProjectileConfig struct {
	Size  float64 `yaml:"size"`
	Power float64 `yaml:"power"`
	Speed float64 `yaml:"speed"`
}

type ResourceConfig struct {
	Interval   int     `yaml:"interval"`
	SizeFactor float64 `yaml:"size_factor"`
	LaneOffset float64 `yaml:"lane_offset"`
	Amounts    []int   `yaml:"amounts"`
}

// SpawnerConfig drives the enemy cadence: an enemy every Interval frames,
// the interval shrinking by Step after each spawn down to MinInterval.
type SpawnerConfig struct {
	InitialInterval int `yaml:"initial_interval"`
	Step            int `yaml:"step"`
	MinInterval     int `yaml:"min_interval"`
}

type PointerConfig struct {
	Size float64 `yaml:"size"`
}

type MatchConfig struct {
	Seed int64 `yaml:"seed"`
}

// DerivedConfig holds values computed after loading.
type DerivedConfig struct {
	Width      float64
	Height     float64
	PlayTop    float64 // the controls bar is one cell tall
	Lanes      int
	Cols       int
	EntitySize float64 // defender/enemy box side
}

// Default returns the embedded defaults. It panics if they do not parse,
// which only a broken build can cause.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the YAML file at path, if any.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// поля, которых нет в файле, остаются из defaults
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Grid.CellSize <= 0:
		return fmt.Errorf("%w: grid.cell_size must be positive", ErrInvalid)
	case c.Grid.CellGap < 0 || c.Grid.CellGap*2 >= c.Grid.CellSize:
		return fmt.Errorf("%w: grid.cell_gap must be in [0, cell_size/2)", ErrInvalid)
	case float64(c.Screen.Height) < 2*c.Grid.CellSize:
		return fmt.Errorf("%w: screen.height leaves no lane below the controls bar", ErrInvalid)
	case float64(c.Screen.Width) < 2*c.Grid.CellSize:
		return fmt.Errorf("%w: screen.width must hold at least two columns", ErrInvalid)
	case c.Economy.WinScore <= 0:
		return fmt.Errorf("%w: economy.win_score must be positive", ErrInvalid)
	case c.Economy.StartingResources < 0:
		return fmt.Errorf("%w: economy.starting_resources must not be negative", ErrInvalid)
	case c.Defender.Cost <= 0:
		return fmt.Errorf("%w: defender.cost must be positive", ErrInvalid)
	case c.Defender.FireInterval <= 0:
		return fmt.Errorf("%w: defender.fire_interval must be positive", ErrInvalid)
	case c.Spawner.MinInterval <= 0 || c.Spawner.InitialInterval < c.Spawner.MinInterval:
		return fmt.Errorf("%w: spawner intervals must satisfy 0 < min_interval <= initial_interval", ErrInvalid)
	case c.Spawner.Step < 0:
		return fmt.Errorf("%w: spawner.step must not be negative", ErrInvalid)
	case c.Resource.Interval <= 0:
		return fmt.Errorf("%w: resource.interval must be positive", ErrInvalid)
	case len(c.Resource.Amounts) == 0:
		return fmt.Errorf("%w: resource.amounts must not be empty", ErrInvalid)
	case c.Pointer.Size <= 0:
		return fmt.Errorf("%w: pointer.size must be positive", ErrInvalid)
	}
	return nil
}

func (c *Config) computeDerived() {
	c.Derived.Width = float64(c.Screen.Width)
	c.Derived.Height = float64(c.Screen.Height)
	c.Derived.PlayTop = c.Grid.CellSize
	c.Derived.Lanes = int((c.Derived.Height - c.Derived.PlayTop) / c.Grid.CellSize)
	c.Derived.Cols = int(c.Derived.Width / c.Grid.CellSize)
	c.Derived.EntitySize = c.Grid.CellSize - c.Grid.CellGap*2
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
