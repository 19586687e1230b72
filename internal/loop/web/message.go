package web

import (
	"strings"

	"github.com/tomz197/dodger/internal/loop/config"
	"github.com/tomz197/dodger/internal/loop/engine"
	"github.com/tomz197/dodger/internal/object"
)

// Message types sent to the browser.
const (
	TypeHello = "hello"
	TypeFrame = "frame"
)

// Size is a width and height in logical pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Hello is the first message of a session. It describes the playfield so
// the page can size its DOM.
type Hello struct {
	Type      string `json:"type"`
	Session   string `json:"session"`
	Playfield Size   `json:"playfield"`
	Player    Size   `json:"player"`
	Enemy     Size   `json:"enemy"`
	Lives     int    `json:"lives"`
	WinScore  int    `json:"winScore"`
}

// NewHello describes cfg for session id.
func NewHello(id string, cfg config.Config) Hello {
	return Hello{
		Type:      TypeHello,
		Session:   id,
		Playfield: Size{cfg.PlayfieldWidth, cfg.PlayfieldHeight},
		Player:    Size{cfg.PlayerWidth, cfg.PlayerHeight},
		Enemy:     Size{cfg.EnemyWidth, cfg.EnemyHeight},
		Lives:     cfg.InitialLives,
		WinScore:  cfg.WinScore,
	}
}

// Visual is one created or moved visual.
type Visual struct {
	ID   object.Handle `json:"id"`
	Kind string        `json:"kind,omitempty"` // Only on create
	X    float64       `json:"x"`
	Y    float64       `json:"y"`
}

// GameOver reports the final outcome.
type GameOver struct {
	Won    bool   `json:"won"`
	Reason string `json:"reason"`
	Score  int    `json:"score"`
	Lives  int    `json:"lives"`
}

// Frame carries every host call made during one engine frame. Nil and
// empty fields mean nothing changed.
type Frame struct {
	Type    string          `json:"type"`
	Seq     uint64          `json:"seq"`
	Game    int             `json:"game"`
	Created []Visual        `json:"created,omitempty"`
	Moved   []Visual        `json:"moved,omitempty"`
	Removed []object.Handle `json:"removed,omitempty"`
	Score   *int            `json:"score,omitempty"`
	Lives   *int            `json:"lives,omitempty"`
	Over    *GameOver       `json:"over,omitempty"`
}

// Empty reports whether the frame carries no changes.
func (f Frame) Empty() bool {
	return len(f.Created) == 0 && len(f.Moved) == 0 && len(f.Removed) == 0 &&
		f.Score == nil && f.Lives == nil && f.Over == nil
}

func newGameOver(o engine.Outcome) *GameOver {
	return &GameOver{Won: o.Won(), Reason: o.Reason.String(), Score: o.Score, Lives: o.Lives}
}

// Command is an inbound player action.
type Command int

const (
	CommandUnknown Command = iota
	CommandLeft
	CommandRight
	CommandRestart
)

func (c Command) String() string {
	switch c {
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// ParseCommand decodes a text message. Case and surrounding space are ignored.
func ParseCommand(msg string) Command {
	switch strings.ToLower(strings.TrimSpace(msg)) {
	case "left":
		return CommandLeft
	case "right":
		return CommandRight
	case "restart":
		return CommandRestart
	default:
		return CommandUnknown
	}
}
