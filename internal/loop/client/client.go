// Package client plays a game on an ANSI terminal: the local binary and every
// SSH session run one Client each.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/input"
	"github.com/tomz197/dodger/internal/loop"
	"github.com/tomz197/dodger/internal/loop/config"
	"github.com/tomz197/dodger/internal/loop/engine"
)

// hudRows is the space above the playfield: the HUD line and the top border.
const hudRows = 2

// idleWarning is how long before an idle disconnect the warning appears.
const idleWarning = 15 * time.Second

// Client handles rendering and input for a single terminal.
type Client struct {
	cfg          config.Config
	logger       *log.Logger
	rng          *rand.Rand
	state        *ClientState
	board        *Board
	engine       *engine.Engine
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	scheduler    *loop.Scheduler
	clock        loop.Clock
	lastInput    time.Time
	idleTimeout  time.Duration
	termSizeFunc draw.TermSizeFunc
	games        int
	err          error
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Config       config.Config
	Logger       *log.Logger   // Defaults to log.Default()
	Clock        loop.Clock    // Defaults to the system clock
	IdleTimeout  time.Duration // Disconnect after this long without a key press; 0 never
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r io.Reader, w io.Writer, opts ClientOptions) (*Client, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new client: %w", err)
	}

	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = loop.SystemClock{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}

	// Create canvas sized to the playfield aspect ratio
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := draw.FitArea(termWidth, termHeight, hudRows, cfg.PlayfieldWidth, cfg.PlayfieldHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, cfg.PlayfieldWidth, cfg.PlayfieldHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Client{
		cfg:          cfg,
		logger:       logger,
		rng:          rand.New(rand.NewSource(seed)),
		state:        NewClientState(),
		board:        NewBoard(cfg),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w),
		writer:       w,
		inputStream:  input.StartStream(br),
		scheduler:    &loop.Scheduler{Interval: cfg.FrameInterval, Clock: clock},
		clock:        clock,
		lastInput:    clock.Now(),
		idleTimeout:  opts.IdleTimeout,
		termSizeFunc: termSizeFunc,
	}, nil
}

// Run shows the title screen and plays games until the user quits, the input
// closes or ctx is cancelled. Each game runs on its own scheduler pass, which
// ends when the engine reports game over.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	for c.state.Running {
		frame := c.menuFrame
		if c.state.GameState == GameStatePlaying {
			frame = c.playFrame
		}
		if err := c.scheduler.Run(ctx, frame); err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			return err
		}
	}

	draw.ClearScreen(c.writer)
	if c.err != nil {
		return fmt.Errorf("draw frame: %w", c.err)
	}
	c.logger.Debug("client finished", "games", c.games)
	return nil
}

// menuFrame runs one frame of the title or game-over screen.
func (c *Client) menuFrame(time.Duration) bool {
	return c.menuStep(c.readInput())
}

// playFrame runs one engine frame.
func (c *Client) playFrame(elapsed time.Duration) bool {
	return c.playStep(c.readInput(), elapsed)
}

// menuStep returns true when the menu scheduler pass should end.
func (c *Client) menuStep(in input.Input) bool {
	if !c.state.Running {
		return true
	}
	if in.Start {
		c.startGame()
		return true
	}
	return !c.drawFrame()
}

// playStep applies moves, advances the engine and draws. It returns true
// once the game is over or the client is stopping.
func (c *Client) playStep(in input.Input, elapsed time.Duration) bool {
	if !c.state.Running {
		return true
	}

	for i := 0; i < in.Left; i++ {
		c.engine.MovePlayer(engine.Left)
	}
	for i := 0; i < in.Right; i++ {
		c.engine.MovePlayer(engine.Right)
	}

	over := c.engine.RunFrame(elapsed)
	if over {
		c.state.GameState = GameStateOver
	}

	if !c.drawFrame() {
		return true
	}
	return over
}

// readInput drains pending keys and applies quit and inactivity rules.
func (c *Client) readInput() input.Input {
	in := input.ReadInput(c.inputStream)
	c.state.Input = in
	now := c.clock.Now()

	if len(in.Pressed) > 0 {
		c.lastInput = now
		c.state.isInactive = false
	} else if c.idleTimeout > 0 {
		idle := now.Sub(c.lastInput)
		if idle > c.idleTimeout {
			c.logger.Info("client idle, disconnecting", "idle", idle.Round(time.Second))
			c.state.Running = false
		} else if idle > c.idleTimeout-idleWarning {
			c.state.isInactive = true
		}
	}

	if in.Quit || in.Closed || (in.Escape && c.state.GameState != GameStatePlaying) {
		c.state.Running = false
	}
	return in
}

// startGame builds a fresh engine on a cleared board.
func (c *Client) startGame() {
	input.ResetKeyInput(c.inputStream)
	c.board.Reset()

	e, err := engine.New(c.cfg, c.board, engine.Options{Logger: c.logger, Rand: c.rng})
	if err != nil {
		c.err = err
		c.state.Running = false
		return
	}
	c.engine = e
	c.games++
	c.state.GameState = GameStatePlaying
	c.logger.Debug("game started", "game", c.games)
}

// updateScreen handles terminal resize, keeping the playfield aspect ratio.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or HUD text).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.FitArea(termWidth, termHeight, hudRows, c.cfg.PlayfieldWidth, c.cfg.PlayfieldHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.WriteString("\033[H\033[2J")
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
}
