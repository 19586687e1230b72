package web

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/tomz197/dodger/internal/loop/engine"
	"github.com/tomz197/dodger/internal/object"
)

func TestRecorderCoalescesMoves(t *testing.T) {
	r := NewRecorder()
	p := r.CreateVisual(object.KindPlayer, 150, 436)
	r.Flush()

	r.MoveVisual(p, 75, 436)
	r.MoveVisual(p, 0, 436)
	f := r.Flush()

	want := []Visual{{ID: p, X: 0, Y: 436}}
	if !slices.Equal(f.Moved, want) {
		t.Fatalf("Moved = %+v, want %+v", f.Moved, want)
	}
	if f.Created != nil || f.Removed != nil {
		t.Fatalf("unexpected changes: %+v", f)
	}
}

func TestRecorderMoveAfterCreateUpdatesCreate(t *testing.T) {
	r := NewRecorder()
	e := r.CreateVisual(object.KindEnemy, 75, -156)
	r.MoveVisual(e, 75, -140)

	f := r.Flush()
	want := []Visual{{ID: e, Kind: "enemy", X: 75, Y: -140}}
	if !slices.Equal(f.Created, want) || f.Moved != nil {
		t.Fatalf("frame = %+v, want one create at the moved position", f)
	}
}

func TestRecorderRemove(t *testing.T) {
	r := NewRecorder()
	old := r.CreateVisual(object.KindEnemy, 0, 0)
	r.Flush()

	fresh := r.CreateVisual(object.KindEnemy, 75, 0)
	r.MoveVisual(old, 0, 10)
	r.RemoveVisual(old)
	r.RemoveVisual(fresh) // created and removed in the same frame

	f := r.Flush()
	if f.Created != nil || f.Moved != nil {
		t.Fatalf("cancelled entries sent: %+v", f)
	}
	if !slices.Equal(f.Removed, []object.Handle{old}) {
		t.Fatalf("Removed = %v, want [%d]", f.Removed, old)
	}
}

func TestRecorderFlushResets(t *testing.T) {
	r := NewRecorder()
	r.NewGame()
	r.SetScoreDisplay(0)
	r.SetLivesDisplay(5)

	f := r.Flush()
	if f.Score == nil || *f.Score != 0 || f.Lives == nil || *f.Lives != 5 {
		t.Fatalf("frame = %+v, want score 0 and lives 5", f)
	}
	if f.Type != TypeFrame || f.Seq != 1 || f.Game != 1 {
		t.Fatalf("header = %s/%d/%d", f.Type, f.Seq, f.Game)
	}

	next := r.Flush()
	if !next.Empty() || next.Seq != 2 {
		t.Fatalf("second flush = %+v, want empty frame 2", next)
	}
}

func TestRecorderGameOver(t *testing.T) {
	r := NewRecorder()
	r.NewGame()
	r.GameOver(engine.Outcome{Reason: engine.ReasonWinScore, Score: 100, Lives: 2})

	f := r.Flush()
	want := GameOver{Won: true, Reason: "win score reached", Score: 100, Lives: 2}
	if f.Over == nil || *f.Over != want {
		t.Fatalf("Over = %+v, want %+v", f.Over, want)
	}

	r.NewGame()
	if r.Game() != 2 {
		t.Fatalf("NewGame: game=%d, want 2", r.Game())
	}
}

func TestFrameEncoding(t *testing.T) {
	r := NewRecorder()
	r.NewGame()
	r.CreateVisual(object.KindPlayer, 150, 436)
	r.SetScoreDisplay(0)

	data, err := json.Marshal(r.Flush())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"type":"frame","seq":1,"game":1,"created":[{"id":1,"kind":"player","x":150,"y":436}],"score":0}`
	if string(data) != want {
		t.Fatalf("encoded frame\n got %s\nwant %s", data, want)
	}
}

func TestParseCommand(t *testing.T) {
	tests := map[string]Command{
		"left":       CommandLeft,
		" RIGHT\n":   CommandRight,
		"Restart":    CommandRestart,
		"jump":       CommandUnknown,
		"":           CommandUnknown,
		"left right": CommandUnknown,
	}
	for msg, want := range tests {
		if got := ParseCommand(msg); got != want {
			t.Errorf("ParseCommand(%q) = %v, want %v", msg, got, want)
		}
	}
}
