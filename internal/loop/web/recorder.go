package web

import (
	"github.com/tomz197/dodger/internal/loop/engine"
	"github.com/tomz197/dodger/internal/object"
)

// Recorder is the web engine.Host. It buffers host calls and hands them out
// as one Frame per engine frame. Moves of the same visual within a frame
// collapse to the last position.
type Recorder struct {
	next    object.Handle
	seq     uint64
	game    int
	pending Frame
	created map[object.Handle]int // index into pending.Created
	moved   map[object.Handle]int // index into pending.Moved
}

var _ engine.Host = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		created: make(map[object.Handle]int),
		moved:   make(map[object.Handle]int),
	}
}

// NewGame starts recording the next game and drops anything pending. The
// page discards every visual when the game number changes.
func (r *Recorder) NewGame() {
	r.game++
	r.pending = Frame{}
	clear(r.created)
	clear(r.moved)
}

// Game returns the number of the game being recorded.
func (r *Recorder) Game() int {
	return r.game
}

func (r *Recorder) CreateVisual(kind object.Kind, x, y float64) object.Handle {
	r.next++
	r.created[r.next] = len(r.pending.Created)
	r.pending.Created = append(r.pending.Created, Visual{ID: r.next, Kind: kind.String(), X: x, Y: y})
	return r.next
}

func (r *Recorder) MoveVisual(h object.Handle, x, y float64) {
	if i, ok := r.created[h]; ok {
		r.pending.Created[i].X, r.pending.Created[i].Y = x, y
		return
	}
	if i, ok := r.moved[h]; ok {
		r.pending.Moved[i].X, r.pending.Moved[i].Y = x, y
		return
	}
	r.moved[h] = len(r.pending.Moved)
	r.pending.Moved = append(r.pending.Moved, Visual{ID: h, X: x, Y: y})
}

func (r *Recorder) RemoveVisual(h object.Handle) {
	if i, ok := r.created[h]; ok {
		// Never sent; drop the create.
		r.pending.Created[i].ID = 0
		delete(r.created, h)
		return
	}
	if i, ok := r.moved[h]; ok {
		r.pending.Moved[i].ID = 0
		delete(r.moved, h)
	}
	r.pending.Removed = append(r.pending.Removed, h)
}

func (r *Recorder) SetScoreDisplay(score int) {
	r.pending.Score = &score
}

func (r *Recorder) SetLivesDisplay(lives int) {
	r.pending.Lives = &lives
}

func (r *Recorder) GameOver(outcome engine.Outcome) {
	r.pending.Over = newGameOver(outcome)
}

// Flush returns the buffered changes as a frame and starts a new one.
func (r *Recorder) Flush() Frame {
	f := r.pending
	f.Created = compact(f.Created)
	f.Moved = compact(f.Moved)
	r.seq++
	f.Type = TypeFrame
	f.Seq = r.seq
	f.Game = r.game

	r.pending = Frame{}
	clear(r.created)
	clear(r.moved)
	return f
}

// compact drops entries cancelled by RemoveVisual.
func compact(vs []Visual) []Visual {
	out := vs[:0]
	for _, v := range vs {
		if v.ID != 0 {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
