package client

import (
	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/loop/config"
	"github.com/tomz197/dodger/internal/loop/engine"
	"github.com/tomz197/dodger/internal/object"
)

// sprite is the terminal copy of one engine visual.
type sprite struct {
	kind object.Kind
	x, y float64
}

// Board is the terminal engine.Host. It mirrors the engine's visuals so a
// frame can be redrawn at any time, including after the game is over.
type Board struct {
	cfg     config.Config
	sprites map[object.Handle]*sprite
	next    object.Handle
	score   int
	lives   int
	outcome engine.Outcome
	over    bool
}

var _ engine.Host = (*Board)(nil)

// NewBoard creates an empty board for games played with cfg.
func NewBoard(cfg config.Config) *Board {
	return &Board{
		cfg:     cfg,
		sprites: make(map[object.Handle]*sprite),
		lives:   cfg.InitialLives,
	}
}

// Reset clears the board for a new game. Handles keep increasing.
func (b *Board) Reset() {
	clear(b.sprites)
	b.score = 0
	b.lives = b.cfg.InitialLives
	b.outcome = engine.Outcome{}
	b.over = false
}

func (b *Board) CreateVisual(kind object.Kind, x, y float64) object.Handle {
	b.next++
	b.sprites[b.next] = &sprite{kind: kind, x: x, y: y}
	return b.next
}

func (b *Board) MoveVisual(h object.Handle, x, y float64) {
	if s, ok := b.sprites[h]; ok {
		s.x, s.y = x, y
	}
}

func (b *Board) RemoveVisual(h object.Handle) {
	delete(b.sprites, h)
}

func (b *Board) SetScoreDisplay(score int) {
	b.score = score
}

func (b *Board) SetLivesDisplay(lives int) {
	b.lives = lives
}

func (b *Board) GameOver(outcome engine.Outcome) {
	b.outcome = outcome
	b.over = true
}

// Score returns the last score the engine displayed.
func (b *Board) Score() int {
	return b.score
}

// Lives returns the last lives count the engine displayed.
func (b *Board) Lives() int {
	return b.lives
}

// Outcome returns the final outcome and whether the game has ended.
func (b *Board) Outcome() (engine.Outcome, bool) {
	return b.outcome, b.over
}

// Len returns the number of visuals on the board.
func (b *Board) Len() int {
	return len(b.sprites)
}

// Draw paints every visual: the player as a filled rectangle, enemies as
// outlines.
func (b *Board) Draw(c *draw.Canvas) {
	for _, s := range b.sprites {
		switch s.kind {
		case object.KindPlayer:
			c.FillRect(s.x, s.y, b.cfg.PlayerWidth, b.cfg.PlayerHeight)
		case object.KindEnemy:
			c.StrokeRect(s.x, s.y, b.cfg.EnemyWidth, b.cfg.EnemyHeight)
		}
	}
}
