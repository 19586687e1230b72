package engine

import "github.com/tomz197/dodger/internal/object"

//go:generate go tool mockgen -destination=./mocks/host_mock.go -package=mocks . Host

// Host is the presentation side of a game. The engine never draws or reads
// input itself; it reports every visible change through these calls.
type Host interface {
	// CreateVisual makes a new visual for an entity and returns its handle.
	CreateVisual(kind object.Kind, x, y float64) object.Handle
	// MoveVisual repositions an existing visual.
	MoveVisual(h object.Handle, x, y float64)
	// RemoveVisual deletes a visual. The engine calls it at most once per handle.
	RemoveVisual(h object.Handle)
	// SetScoreDisplay shows the current score.
	SetScoreDisplay(score int)
	// SetLivesDisplay shows the remaining lives.
	SetLivesDisplay(lives int)
	// GameOver is called exactly once, when the game ends.
	GameOver(outcome Outcome)
}

// Reason says why a game ended.
type Reason int

const (
	ReasonLivesExhausted Reason = iota + 1 // The player was hit with no lives left
	ReasonWinScore                         // The score reached the win threshold
)

func (r Reason) String() string {
	switch r {
	case ReasonLivesExhausted:
		return "lives exhausted"
	case ReasonWinScore:
		return "win score reached"
	default:
		return "running"
	}
}

// Outcome is the final state handed to Host.GameOver.
type Outcome struct {
	Reason Reason
	Score  int
	Lives  int
}

// Won reports whether the player reached the win score.
func (o Outcome) Won() bool {
	return o.Reason == ReasonWinScore
}
