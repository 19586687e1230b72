package web

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/tomz197/dodger/internal/loop"
	"github.com/tomz197/dodger/internal/loop/config"
)

// Handler upgrades requests to websockets and runs a Session on each.
type Handler struct {
	Config        config.Config
	Logger        *log.Logger
	Clock         loop.Clock // Defaults to the system clock
	AcceptOptions *websocket.AcceptOptions
}

// NewHandler returns a handler that accepts same-origin connections only.
func NewHandler(cfg config.Config, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{Config: cfg, Logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, h.AcceptOptions)
	if err != nil {
		h.Logger.Error("failed to accept", "err", err, "remote", r.RemoteAddr)
		return
	}
	defer conn.CloseNow()

	s := NewSession(conn, h.Config, h.Logger, h.Clock)
	s.logger.Info("session started", "remote", r.RemoteAddr)

	if err := s.Run(r.Context()); err != nil {
		s.logger.Error("session failed", "err", err)
		conn.Close(websocket.StatusInternalError, "session failed")
		return
	}
	s.logger.Info("session ended", "games", s.recorder.Game())
	conn.Close(websocket.StatusNormalClosure, "")
}
