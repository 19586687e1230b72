package client

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/dodger/internal/input"
	"github.com/tomz197/dodger/internal/loop/config"
	"github.com/tomz197/dodger/internal/loop/engine"
)

// stepClock is a clock that only moves when told to.
type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) After(d time.Duration) <-chan time.Time {
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

// newTestClient builds a client on an 80x24 terminal. The reader never
// delivers input, so tests drive the steps directly.
func newTestClient(t *testing.T, mutate func(*ClientOptions)) (*Client, *bytes.Buffer, *stepClock) {
	t.Helper()
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	cfg := config.Default()
	cfg.Seed = 1
	clock := &stepClock{now: time.Unix(1000, 0)}
	opts := ClientOptions{
		TermSizeFunc: fixedSize(80, 24),
		Config:       cfg,
		Logger:       log.New(io.Discard),
		Clock:        clock,
	}
	if mutate != nil {
		mutate(&opts)
	}

	var out bytes.Buffer
	c, err := NewClient(pr, &out, opts)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c, &out, clock
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.MaxEnemies = 0
	_, err := NewClient(strings.NewReader(""), io.Discard, ClientOptions{Config: cfg, TermSizeFunc: fixedSize(80, 24)})
	if err == nil {
		t.Fatal("NewClient() accepted an invalid config")
	}
}

func TestStartScreen(t *testing.T) {
	c, out, _ := newTestClient(t, nil)

	if done := c.menuStep(input.Input{}); done {
		t.Fatal("menu ended without input")
	}
	if !strings.Contains(out.String(), "Controls") {
		t.Fatalf("title screen missing controls: %q", out.String())
	}
	if c.engine != nil {
		t.Fatal("engine created before start")
	}
}

func TestStartBeginsGame(t *testing.T) {
	c, _, _ := newTestClient(t, nil)

	if done := c.menuStep(input.Input{Start: true}); !done {
		t.Fatal("start did not end the menu pass")
	}
	if c.state.GameState != GameStatePlaying || c.engine == nil {
		t.Fatalf("state = %v, engine = %v", c.state.GameState, c.engine)
	}
	if c.board.Len() != 1 {
		t.Fatalf("board has %d visuals, want only the player", c.board.Len())
	}
}

func TestPlayStepSpawnsAndDraws(t *testing.T) {
	c, out, _ := newTestClient(t, nil)
	c.menuStep(input.Input{Start: true})
	out.Reset()

	if done := c.playStep(input.Input{}, 0); done {
		t.Fatal("first play frame ended the game")
	}
	if got, want := c.board.Len(), 1+c.cfg.MaxEnemies; got != want {
		t.Fatalf("board has %d visuals, want %d", got, want)
	}
	if !strings.Contains(out.String(), "Score: 0") {
		t.Fatalf("HUD missing score: %q", out.String())
	}
	if !strings.Contains(out.String(), "♥♥♥♥♥") {
		t.Fatalf("HUD missing hearts: %q", out.String())
	}
}

func TestPlayStepMovesPlayer(t *testing.T) {
	c, _, _ := newTestClient(t, nil)
	c.menuStep(input.Input{Start: true})

	x := c.engine.Player().X
	c.playStep(input.Input{Right: 1}, 0)
	if got := c.engine.Player().X; got != x+c.cfg.PlayerWidth {
		t.Fatalf("player x = %v, want %v", got, x+c.cfg.PlayerWidth)
	}
	c.playStep(input.Input{Left: 2}, 0)
	if got := c.engine.Player().X; got != x-c.cfg.PlayerWidth {
		t.Fatalf("player x = %v, want %v", got, x-c.cfg.PlayerWidth)
	}
}

func TestGameOverScreenAndRestart(t *testing.T) {
	c, out, _ := newTestClient(t, nil)
	c.menuStep(input.Input{Start: true})

	done := false
	for i := 0; i < 10000 && !done; i++ {
		done = c.playStep(input.Input{}, c.cfg.FrameInterval)
	}
	if !done || c.state.GameState != GameStateOver {
		t.Fatalf("game never ended, state = %v", c.state.GameState)
	}

	outcome, _ := c.board.Outcome()
	if outcome.Reason != engine.ReasonLivesExhausted && outcome.Reason != engine.ReasonWinScore {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if !strings.Contains(out.String(), "GAME OVER") && !strings.Contains(out.String(), "YOU WIN") {
		t.Fatal("game-over screen not drawn")
	}

	first := c.engine
	c.menuStep(input.Input{Start: true})
	if c.engine == first || c.state.GameState != GameStatePlaying {
		t.Fatal("restart did not build a new game")
	}
	if c.board.Score() != 0 || c.board.Lives() != c.cfg.InitialLives {
		t.Fatalf("restart shows %d/%d", c.board.Score(), c.board.Lives())
	}
}

func TestQuitStopsClient(t *testing.T) {
	c, _, _ := newTestClient(t, nil)
	c.state.Input = input.Input{}

	c.inputStream = input.StartStream(bufioReader("q"))
	deadline := time.Now().Add(time.Second)
	for c.state.Running && time.Now().Before(deadline) {
		c.readInput()
		time.Sleep(time.Millisecond)
	}
	if c.state.Running {
		t.Fatal("quit key did not stop the client")
	}
	if !c.menuStep(c.state.Input) {
		t.Fatal("menu kept running after quit")
	}
}

func TestIdleTimeout(t *testing.T) {
	c, _, clock := newTestClient(t, func(o *ClientOptions) { o.IdleTimeout = time.Minute })

	clock.now = clock.now.Add(time.Minute - idleWarning + time.Second)
	c.readInput()
	if !c.state.isInactive || !c.state.Running {
		t.Fatalf("inactive=%v running=%v, want warning", c.state.isInactive, c.state.Running)
	}

	clock.now = clock.now.Add(idleWarning)
	c.readInput()
	if c.state.Running {
		t.Fatal("idle client not disconnected")
	}
}

func TestRunEndsWhenInputCloses(t *testing.T) {
	cfg := config.Default()
	cfg.FrameInterval = time.Millisecond
	var out bytes.Buffer
	c, err := NewClient(strings.NewReader(""), &out, ClientOptions{
		TermSizeFunc: fixedSize(80, 24),
		Config:       cfg,
		Logger:       log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run() only returned on timeout")
	}
	if !strings.HasSuffix(out.String(), "\033[?25h") {
		t.Fatal("cursor not restored")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	c, _, _ := newTestClient(t, func(o *ClientOptions) { o.Clock = nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v, want nil on cancel", err)
	}
}

func bufioReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}
