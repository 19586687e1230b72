package client

import (
	"github.com/tomz197/dodger/internal/input"
)

// GameState represents the current game phase for a client.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
	GameStateOver                     // Game ended, show outcome and restart prompt
)

// ClientState holds per-session state between frames.
type ClientState struct {
	Input         input.Input
	GameState     GameState
	Running       bool // Client loop running
	prevGameState GameState
	isInactive    bool // Whether the client is in inactive warning state
	wasInactive   bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState:     GameStateStart,
		Running:       true,
		prevGameState: -1, // forces a full clear on the first frame
	}
}
