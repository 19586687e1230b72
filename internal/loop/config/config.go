// Package config centralizes all tunable game parameters.
package config

import (
	"errors"
	"fmt"
	"time"

	envconfig "github.com/tomz197/dodger/internal/config"
)

// Playfield - logical pixels, origin top-left, y grows downward.
const (
	PlayfieldWidth  = 375
	PlayfieldHeight = 500
)

// Sprites
const (
	EnemyWidth         = 75
	EnemyHeight        = 156
	PlayerWidth        = 75
	PlayerHeight       = 54
	PlayerBottomMargin = 10 // Gap between the player sprite and the bottom edge
)

// Enemies
const (
	MaxEnemies    = 3
	EnemySpeedMin = 0.25 // px per ms
	EnemySpeedMax = 0.75 // px per ms
)

// Rules
const (
	InitialLives = 5
	MaxLives     = 5 // Lives never exceed this, whatever the config says
	WinScore     = 100
)

// Frame timing
const (
	FrameInterval = 20 * time.Millisecond
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid game config")

// Config is the immutable parameter set handed to an engine at construction.
type Config struct {
	PlayfieldWidth     float64
	PlayfieldHeight    float64
	PlayerWidth        float64
	PlayerHeight       float64
	PlayerBottomMargin float64
	EnemyWidth         float64
	EnemyHeight        float64
	EnemySpeedMin      float64 // px per ms
	EnemySpeedMax      float64 // px per ms
	MaxEnemies         int
	InitialLives       int
	WinScore           int
	FrameInterval      time.Duration
	Seed               int64 // 0 seeds from the wall clock
}

// Default returns the stock game parameters.
func Default() Config {
	return Config{
		PlayfieldWidth:     PlayfieldWidth,
		PlayfieldHeight:    PlayfieldHeight,
		PlayerWidth:        PlayerWidth,
		PlayerHeight:       PlayerHeight,
		PlayerBottomMargin: PlayerBottomMargin,
		EnemyWidth:         EnemyWidth,
		EnemyHeight:        EnemyHeight,
		EnemySpeedMin:      EnemySpeedMin,
		EnemySpeedMax:      EnemySpeedMax,
		MaxEnemies:         MaxEnemies,
		InitialLives:       InitialLives,
		WinScore:           WinScore,
		FrameInterval:      FrameInterval,
	}
}

// PlayerY returns the fixed vertical position of the player sprite.
func (c Config) PlayerY() float64 {
	return c.PlayfieldHeight - c.PlayerHeight - c.PlayerBottomMargin
}

// Validate reports every violated constraint, each wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.PlayfieldWidth <= 0 || c.PlayfieldHeight <= 0 {
		fail("playfield %vx%v must be positive", c.PlayfieldWidth, c.PlayfieldHeight)
	}
	if c.EnemyWidth <= 0 || c.EnemyHeight <= 0 {
		fail("enemy size %vx%v must be positive", c.EnemyWidth, c.EnemyHeight)
	}
	if c.PlayerWidth <= 0 || c.PlayerHeight <= 0 {
		fail("player size %vx%v must be positive", c.PlayerWidth, c.PlayerHeight)
	}
	if c.EnemyWidth > c.PlayfieldWidth || c.EnemyHeight > c.PlayfieldHeight {
		fail("enemy %vx%v does not fit playfield %vx%v", c.EnemyWidth, c.EnemyHeight, c.PlayfieldWidth, c.PlayfieldHeight)
	}
	if c.PlayerWidth > c.PlayfieldWidth || c.PlayerHeight+c.PlayerBottomMargin > c.PlayfieldHeight {
		fail("player %vx%v does not fit playfield %vx%v", c.PlayerWidth, c.PlayerHeight, c.PlayfieldWidth, c.PlayfieldHeight)
	}
	if c.PlayerBottomMargin < 0 {
		fail("player bottom margin %v is negative", c.PlayerBottomMargin)
	}
	if c.EnemySpeedMin <= 0 || c.EnemySpeedMax < c.EnemySpeedMin {
		fail("enemy speed range [%v, %v] is empty or not positive", c.EnemySpeedMin, c.EnemySpeedMax)
	}
	if c.MaxEnemies < 1 {
		fail("max enemies %d must be at least 1", c.MaxEnemies)
	}
	if c.InitialLives < 1 || c.InitialLives > MaxLives {
		fail("initial lives %d must be between 1 and %d", c.InitialLives, MaxLives)
	}
	if c.WinScore < 1 {
		fail("win score %d must be at least 1", c.WinScore)
	}
	if c.FrameInterval <= 0 {
		fail("frame interval %v must be positive", c.FrameInterval)
	}

	return errors.Join(errs...)
}

// FromEnv overlays DODGER_* environment variables on the defaults.
// The result is validated; malformed or out-of-range values are errors.
func FromEnv() (Config, error) {
	c := Default()
	var errs []error

	ints := []struct {
		key string
		dst *int
	}{
		{"DODGER_MAX_ENEMIES", &c.MaxEnemies},
		{"DODGER_LIVES", &c.InitialLives},
		{"DODGER_WIN_SCORE", &c.WinScore},
	}
	for _, v := range ints {
		n, err := envconfig.GetEnvInt(v.key, *v.dst)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*v.dst = n
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"DODGER_PLAYFIELD_WIDTH", &c.PlayfieldWidth},
		{"DODGER_PLAYFIELD_HEIGHT", &c.PlayfieldHeight},
		{"DODGER_ENEMY_SPEED_MIN", &c.EnemySpeedMin},
		{"DODGER_ENEMY_SPEED_MAX", &c.EnemySpeedMax},
	}
	for _, v := range floats {
		f, err := envconfig.GetEnvFloat(v.key, *v.dst)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*v.dst = f
	}

	interval, err := envconfig.GetEnvDuration("DODGER_FRAME_INTERVAL", c.FrameInterval)
	if err != nil {
		errs = append(errs, err)
	}
	c.FrameInterval = interval

	seed, err := envconfig.GetEnvInt("DODGER_SEED", int(c.Seed))
	if err != nil {
		errs = append(errs, err)
	}
	c.Seed = int64(seed)

	if err := errors.Join(errs...); err != nil {
		return c, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}
