// Package engine runs the falling-enemy simulation: it owns the player, the
// active enemies, the score and the lives, and reports every change to a Host.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/dodger/internal/loop/config"
	"github.com/tomz197/dodger/internal/object"
)

// Direction is a sideways player move.
type Direction int

const (
	Left Direction = iota
	Right
)

// Options configures optional engine collaborators.
type Options struct {
	Logger *log.Logger // Defaults to log.Default()
	Rand   *rand.Rand  // Defaults to a source seeded from Config.Seed (or the clock when 0)
}

// Engine is a single game. It is not safe for concurrent use; one goroutine
// drives it frame by frame.
type Engine struct {
	cfg       config.Config
	host      Host
	logger    *log.Logger
	rng       *rand.Rand
	playfield object.Screen
	finder    *object.SpotFinder
	player    *object.Player
	enemies   []*object.Enemy
	score     int
	lives     int
	over      bool
	outcome   Outcome
}

// New validates cfg, creates the player and pushes the initial score and
// lives to the host.
func New(cfg config.Config, host Host, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	playfield := object.Screen{Width: cfg.PlayfieldWidth, Height: cfg.PlayfieldHeight}
	e := &Engine{
		cfg:       cfg,
		host:      host,
		logger:    logger,
		rng:       rng,
		playfield: playfield,
		finder:    object.NewSpotFinder(playfield, cfg.EnemyWidth, cfg.EnemyHeight, rng),
		player:    object.NewPlayer(playfield, cfg.PlayerWidth, cfg.PlayerHeight, cfg.PlayerY()),
		enemies:   make([]*object.Enemy, 0, cfg.MaxEnemies),
		lives:     cfg.InitialLives,
	}

	e.player.Visual = host.CreateVisual(object.KindPlayer, e.player.X, e.player.Y)
	host.SetScoreDisplay(e.score)
	host.SetLivesDisplay(e.lives)

	return e, nil
}

// RunFrame advances the game by one frame: Tick, DetectCollisions,
// ReapAndScore and SpawnToCapacity, then the end-of-game check.
// It returns true once the game is over; later calls do nothing.
func (e *Engine) RunFrame(elapsed time.Duration) bool {
	if e.over {
		return true
	}

	e.Tick(elapsed)
	dead := e.DetectCollisions()
	e.ReapAndScore()

	if dead || e.score >= e.cfg.WinScore {
		e.finish()
		return true
	}

	e.SpawnToCapacity()
	return false
}

// Tick moves every enemy by elapsed and reports the new positions of the
// ones still on screen.
func (e *Engine) Tick(elapsed time.Duration) {
	ctx := object.UpdateContext{Delta: elapsed, Playfield: e.playfield}
	for _, en := range e.enemies {
		en.Update(ctx)
		if !en.Destroyed {
			e.host.MoveVisual(en.Visual, en.X, en.Y)
		}
	}
}

// ReapAndScore drops destroyed enemies from the active set. Enemies that fell
// off the bottom score a point each (up to the win score); enemies that hit
// the player never score.
func (e *Engine) ReapAndScore() {
	kept := e.enemies[:0] // reuse backing array
	for _, en := range e.enemies {
		if !en.Destroyed {
			kept = append(kept, en)
			continue
		}

		en.Release(e.host.RemoveVisual)
		if !en.Expired() {
			continue
		}
		if e.score < e.cfg.WinScore {
			e.score++
			e.host.SetScoreDisplay(e.score)
		}
	}
	clear(e.enemies[len(kept):])
	e.enemies = kept
}

// SpawnToCapacity adds enemies in free lanes until MaxEnemies are active.
func (e *Engine) SpawnToCapacity() {
	for len(e.enemies) < e.cfg.MaxEnemies {
		spot := e.finder.Next(e.enemies)
		en := object.NewEnemy(spot, e.cfg.EnemyWidth, e.cfg.EnemyHeight, e.enemySpeed())
		en.Visual = e.host.CreateVisual(object.KindEnemy, en.X, en.Y)
		e.enemies = append(e.enemies, en)
		e.logger.Debug("enemy spawned", "lane", en.Lane, "speed", en.Speed)
	}
}

// enemySpeed draws a fall speed from the configured range.
func (e *Engine) enemySpeed() float64 {
	lo, hi := e.cfg.EnemySpeedMin, e.cfg.EnemySpeedMax
	if hi <= lo {
		return lo
	}
	return lo + e.rng.Float64()*(hi-lo)
}

// MovePlayer shifts the player one step. It does nothing once the game is over.
func (e *Engine) MovePlayer(dir Direction) {
	if e.over {
		return
	}

	var moved bool
	switch dir {
	case Left:
		moved = e.player.MoveLeft()
	case Right:
		moved = e.player.MoveRight()
	}
	if moved {
		e.host.MoveVisual(e.player.Visual, e.player.X, e.player.Y)
	}
}

// finish records the outcome and notifies the host.
func (e *Engine) finish() {
	reason := ReasonWinScore
	if e.lives == 0 {
		reason = ReasonLivesExhausted
	}
	e.over = true
	e.outcome = Outcome{Reason: reason, Score: e.score, Lives: e.lives}
	e.logger.Info("game over", "reason", reason, "score", e.score, "lives", e.lives)
	e.host.GameOver(e.outcome)
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Lives returns the remaining lives.
func (e *Engine) Lives() int {
	return e.lives
}

// Over reports whether the game has ended.
func (e *Engine) Over() bool {
	return e.over
}

// Outcome returns the final outcome; the zero Outcome while the game runs.
func (e *Engine) Outcome() Outcome {
	return e.outcome
}

// Player returns the player entity.
func (e *Engine) Player() *object.Player {
	return e.player
}

// Enemies returns the active enemies. The slice is owned by the engine and
// only valid until the next frame.
func (e *Engine) Enemies() []*object.Enemy {
	return e.enemies
}

// Snapshot is a value copy of the game state, safe to keep across frames.
type Snapshot struct {
	Player  object.Entity
	Enemies []object.Enemy
	Score   int
	Lives   int
	Over    bool
}

// Snapshot copies the player, the active enemies and the counters.
func (e *Engine) Snapshot() Snapshot {
	enemies := make([]object.Enemy, len(e.enemies))
	for i, en := range e.enemies {
		enemies[i] = *en
	}
	return Snapshot{
		Player:  e.player.Entity,
		Enemies: enemies,
		Score:   e.score,
		Lives:   e.lives,
		Over:    e.over,
	}
}
