package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"
)

// Default values for configuration
const (
	DefaultWidth     = 1280
	DefaultHeight    = 720
	DefaultTickRate  = 60
	MaxTickRate      = 240
	DefaultHoldTicks = 8 // ~133ms at 60Hz
	DefaultLogLevel  = "info"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the application configuration
type Config struct {
	FieldWidth  float64
	FieldHeight float64
	TickRate    int
	Seed        int64 // 0 seeds from the clock
	HoldTicks   int
	LogLevel    string
	LogFile     string
}

// Default returns the configuration used when no flags are given.
func Default() *Config {
	return &Config{
		FieldWidth:  DefaultWidth,
		FieldHeight: DefaultHeight,
		TickRate:    DefaultTickRate,
		HoldTicks:   DefaultHoldTicks,
		LogLevel:    DefaultLogLevel,
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c *Config) Validate() error {
	if c.FieldWidth <= 0 || c.FieldHeight <= 0 {
		return fmt.Errorf("%w: field must be positive, got %gx%g", ErrInvalidConfig, c.FieldWidth, c.FieldHeight)
	}
	if c.TickRate < 1 || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: tick rate must be between 1 and %d, got %d", ErrInvalidConfig, MaxTickRate, c.TickRate)
	}
	if c.HoldTicks < 0 {
		return fmt.Errorf("%w: hold ticks must be at least 0, got %d", ErrInvalidConfig, c.HoldTicks)
	}
	return nil
}

// TickDuration returns the time between ticks.
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Flags declares the command line flags, each with a CALBREAK_* env fallback.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{Name: "width", Value: DefaultWidth, Usage: "logical field width", EnvVars: []string{"CALBREAK_WIDTH"}},
		&cli.Float64Flag{Name: "height", Value: DefaultHeight, Usage: "logical field height", EnvVars: []string{"CALBREAK_HEIGHT"}},
		&cli.IntFlag{Name: "tick-rate", Value: DefaultTickRate, Usage: "ticks per second (1-240)", EnvVars: []string{"CALBREAK_TICK_RATE"}},
		&cli.Int64Flag{Name: "seed", Usage: "seed for launch direction and meeting flavor (0 = random)", EnvVars: []string{"CALBREAK_SEED"}},
		&cli.IntFlag{Name: "hold-ticks", Value: DefaultHoldTicks, Usage: "ticks a key press keeps the paddle moving (0 = until released)", EnvVars: []string{"CALBREAK_HOLD_TICKS"}},
		&cli.StringFlag{Name: "log-level", Value: DefaultLogLevel, Usage: "debug, info, warn or error", EnvVars: []string{"CALBREAK_LOG_LEVEL"}},
		&cli.StringFlag{Name: "log-file", Usage: "write logs to this file instead of discarding them", EnvVars: []string{"CALBREAK_LOG_FILE"}},
	}
}

// FromContext builds a validated Config from parsed flags.
func FromContext(c *cli.Context) (*Config, error) {
	cfg := &Config{
		FieldWidth:  c.Float64("width"),
		FieldHeight: c.Float64("height"),
		TickRate:    c.Int("tick-rate"),
		Seed:        c.Int64("seed"),
		HoldTicks:   c.Int("hold-ticks"),
		LogLevel:    c.String("log-level"),
		LogFile:     c.String("log-file"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	var cfg *Config
	app := &cli.App{
		Name:      "calbreak",
		Flags:     Flags(),
		Writer:    io.Discard,
		ErrWriter: io.Discard,
		Action: func(c *cli.Context) error {
			var err error
			cfg, err = FromContext(c)
			return err
		},
	}

	if err := app.Run(append([]string{"calbreak"}, args...)); err != nil {
		return nil, err
	}
	return cfg, nil
}
