package arbor

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

const (
	defaultDragDeadZone = 4.0 // pixels
	defaultMoveDeadZone = 0.6
	defaultMaxHits      = 16
)

// Config holds the tunables of a Scene. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	// DragDeadZone is how far, in pixels, a pressed pointer must travel
	// before a drag starts.
	DragDeadZone float64 `toml:"drag_dead_zone"`
	// MoveDeadZone is the dead zone passed to Classify when a drag start is
	// given its direction.
	MoveDeadZone float64 `toml:"move_dead_zone"`
	// HitQuery picks the HitBackend method: "all" or "capped".
	HitQuery string `toml:"hit_query"`
	// MaxHits bounds capped queries.
	MaxHits  int    `toml:"max_hits"`
	Debug    bool   `toml:"debug"`
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration NewScene uses.
func DefaultConfig() Config {
	return Config{
		DragDeadZone: defaultDragDeadZone,
		MoveDeadZone: defaultMoveDeadZone,
		HitQuery:     HitQueryAll.String(),
		MaxHits:      defaultMaxHits,
		LogLevel:     "info",
	}
}

// LoadConfig decodes TOML data over DefaultConfig and validates the result.
// Keys missing from data keep their defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile is LoadConfig for a file on disk.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.DragDeadZone < 0 {
		return fmt.Errorf("%w: drag_dead_zone %v is negative", ErrInvalidConfig, c.DragDeadZone)
	}
	if c.MoveDeadZone < 0 {
		return fmt.Errorf("%w: move_dead_zone %v is negative", ErrInvalidConfig, c.MoveDeadZone)
	}
	mode, err := parseHitQueryMode(c.HitQuery)
	if err != nil {
		return err
	}
	if mode == HitQueryCapped && c.MaxHits <= 0 {
		return fmt.Errorf("%w: max_hits must be positive for capped queries, got %d", ErrInvalidConfig, c.MaxHits)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

// hitQueryMode returns the parsed HitQuery, falling back to HitQueryAll.
func (c Config) hitQueryMode() HitQueryMode {
	mode, err := parseHitQueryMode(c.HitQuery)
	if err != nil {
		return HitQueryAll
	}
	return mode
}

func (c Config) level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

func parseHitQueryMode(s string) (HitQueryMode, error) {
	switch s {
	case "", "all":
		return HitQueryAll, nil
	case "capped":
		return HitQueryCapped, nil
	}
	return HitQueryAll, fmt.Errorf("%w: hit_query %q (want \"all\" or \"capped\")", ErrInvalidConfig, s)
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ConfigPath, when set, is loaded with LoadConfigFile and applied to
	// the scene before the loop starts.
	ConfigPath string
}
