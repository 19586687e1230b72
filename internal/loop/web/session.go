// Package web plays games in a browser over a websocket. Each connection
// gets its own engine; the page only draws what the server reports.
package web

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/tomz197/dodger/internal/loop"
	"github.com/tomz197/dodger/internal/loop/config"
	"github.com/tomz197/dodger/internal/loop/engine"
)

const (
	writeTimeout   = 5 * time.Second
	commandBacklog = 32
	maxMessageSize = 512 // Commands are single words
)

// Session is one browser connection.
type Session struct {
	ID        string
	conn      *websocket.Conn
	cfg       config.Config
	logger    *log.Logger
	scheduler *loop.Scheduler
	rng       *rand.Rand
	recorder  *Recorder
	engine    *engine.Engine
	commands  chan Command
}

// NewSession wraps an accepted connection.
func NewSession(conn *websocket.Conn, cfg config.Config, logger *log.Logger, clock loop.Clock) *Session {
	id := uuid.NewString()
	if clock == nil {
		clock = loop.SystemClock{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	conn.SetReadLimit(maxMessageSize)

	return &Session{
		ID:        id,
		conn:      conn,
		cfg:       cfg,
		logger:    logger.With("session", id),
		scheduler: &loop.Scheduler{Interval: cfg.FrameInterval, Clock: clock},
		rng:       rand.New(rand.NewSource(seed)),
		recorder:  NewRecorder(),
		commands:  make(chan Command, commandBacklog),
	}
}

// Run plays games until the browser goes away or ctx is cancelled. After a
// game ends the session waits for a restart command.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.readLoop(ctx, cancel)

	if err := s.write(ctx, NewHello(s.ID, s.cfg)); err != nil {
		return err
	}

	for {
		restart, err := s.play(ctx)
		if err != nil {
			return s.closeError(ctx, err)
		}
		if restart {
			continue
		}

		// Wait for restart
		if !s.waitRestart(ctx) {
			return s.closeError(ctx, ctx.Err())
		}
	}
}

// play runs one game until it ends or the browser asks for a restart.
func (s *Session) play(ctx context.Context) (restart bool, err error) {
	s.recorder.NewGame()
	e, err := engine.New(s.cfg, s.recorder, engine.Options{Logger: s.logger, Rand: s.rng})
	if err != nil {
		return false, err
	}
	s.engine = e
	s.logger.Debug("game started", "game", s.recorder.Game())

	var writeErr error
	err = s.scheduler.Run(ctx, func(elapsed time.Duration) bool {
		if restart = s.applyCommands(); restart {
			return true
		}
		over := e.RunFrame(elapsed)
		if f := s.recorder.Flush(); !f.Empty() {
			if writeErr = s.write(ctx, f); writeErr != nil {
				return true
			}
		}
		return over
	})
	if err != nil {
		return false, err
	}
	return restart, writeErr
}

// applyCommands drains queued commands into the engine. It reports whether
// a restart was requested.
func (s *Session) applyCommands() bool {
	for {
		select {
		case cmd := <-s.commands:
			switch cmd {
			case CommandLeft:
				s.engine.MovePlayer(engine.Left)
			case CommandRight:
				s.engine.MovePlayer(engine.Right)
			case CommandRestart:
				return true
			}
		default:
			return false
		}
	}
}

// waitRestart blocks until a restart command arrives. Moves are ignored.
func (s *Session) waitRestart(ctx context.Context) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case cmd := <-s.commands:
			if cmd == CommandRestart {
				return true
			}
		}
	}
}

// readLoop turns inbound text messages into commands. Any read error ends
// the session.
func (s *Session) readLoop(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()
	for {
		typ, data, err := s.conn.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageText {
			continue
		}

		cmd := ParseCommand(string(data))
		if cmd == CommandUnknown {
			s.logger.Debug("unknown command", "msg", string(data))
			continue
		}

		select {
		case s.commands <- cmd:
		case <-ctx.Done():
			return
		default:
			s.logger.Warn("command dropped, backlog full", "cmd", cmd)
		}
	}
}

func (s *Session) write(ctx context.Context, v any) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := wsjson.Write(ctx, s.conn, v); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// closeError maps the end of a session to its return value: a closed peer
// or cancelled context is a normal end.
func (s *Session) closeError(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), ctx.Err() != nil:
		return nil
	case websocket.CloseStatus(err) == websocket.StatusNormalClosure,
		websocket.CloseStatus(err) == websocket.StatusGoingAway:
		return nil
	}
	return err
}
