package engine_test

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/tomz197/dodger/internal/loop/config"
	"github.com/tomz197/dodger/internal/loop/engine"
	"github.com/tomz197/dodger/internal/object"
)

// reporter is the subset of *testing.T and *rapid.T the fake host needs.
type reporter interface {
	Helper()
	Errorf(format string, args ...any)
}

type visual struct {
	kind object.Kind
	x, y float64
}

// fakeHost records every host call and flags contract violations.
type fakeHost struct {
	t        reporter
	next     object.Handle
	live     map[object.Handle]*visual
	removed  map[object.Handle]bool
	moves    int
	scores   []int
	lives    []int
	outcomes []engine.Outcome
}

func newFakeHost(t reporter) *fakeHost {
	return &fakeHost{
		t:       t,
		live:    make(map[object.Handle]*visual),
		removed: make(map[object.Handle]bool),
	}
}

func (h *fakeHost) CreateVisual(kind object.Kind, x, y float64) object.Handle {
	h.next++
	h.live[h.next] = &visual{kind: kind, x: x, y: y}
	return h.next
}

func (h *fakeHost) MoveVisual(handle object.Handle, x, y float64) {
	h.t.Helper()
	v, ok := h.live[handle]
	if !ok {
		h.t.Errorf("MoveVisual(%d) on unknown or removed visual", handle)
		return
	}
	v.x, v.y = x, y
	h.moves++
}

func (h *fakeHost) RemoveVisual(handle object.Handle) {
	h.t.Helper()
	if h.removed[handle] {
		h.t.Errorf("RemoveVisual(%d) called twice", handle)
		return
	}
	if _, ok := h.live[handle]; !ok {
		h.t.Errorf("RemoveVisual(%d) on unknown visual", handle)
		return
	}
	delete(h.live, handle)
	h.removed[handle] = true
}

func (h *fakeHost) SetScoreDisplay(score int) { h.scores = append(h.scores, score) }
func (h *fakeHost) SetLivesDisplay(lives int) { h.lives = append(h.lives, lives) }
func (h *fakeHost) GameOver(o engine.Outcome) { h.outcomes = append(h.outcomes, o) }

func (h *fakeHost) liveEnemies() int {
	n := 0
	for _, v := range h.live {
		if v.kind == object.KindEnemy {
			n++
		}
	}
	return n
}

// testConfig returns the stock game with a constant fall speed.
func testConfig() config.Config {
	c := config.Default()
	c.EnemySpeedMin = 0.5
	c.EnemySpeedMax = 0.5
	c.Seed = 1
	return c
}

func testOptions(seed int64) engine.Options {
	return engine.Options{
		Logger: log.New(io.Discard),
		Rand:   rand.New(rand.NewSource(seed)),
	}
}
