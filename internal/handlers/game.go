package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/trace"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/session"
)

const maxMessageSize = 4096

type GameHandler struct {
	logger  *slog.Logger
	ws      *config.WebSocket
	presets []session.Preset
	newRand func() *rand.Rand
	journal *journal.Journal
	tracer  trace.Tracer
}

func NewGameHandler(
	logger *slog.Logger,
	ws *config.WebSocket,
	presets []session.Preset,
	newRand func() *rand.Rand,
	journal *journal.Journal,
	tracer trace.Tracer,
) *GameHandler {
	handler := &GameHandler{
		logger:  logger,
		ws:      ws,
		presets: presets,
		newRand: newRand,
		journal: journal,
		tracer:  tracer,
	}

	return handler
}

func (g GameHandler) Presets(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, g.logger, g.presets)
}

// Play upgrades the request to a websocket bound to a fresh session. Every
// text message is a batch of newline-separated commands; each batch is
// answered with one snapshot of the board.
func (g GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	dto, err := ParsePlayDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	params, err := dto.Params(g.presets)
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	s, err := session.New(params, g.newRand(),
		session.WithLogger(g.logger),
		session.WithJournal(g.journal),
		session.WithTracer(g.tracer),
	)
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()

	g.logger.Debug("established WS connection", slog.String("session_id", s.ID.String()))

	err = g.runGameLoop(r.Context(), conn, s)
	if err != nil && !websocket.IsCloseError(
		err, websocket.CloseNormalClosure, websocket.CloseGoingAway,
	) {
		g.logger.Warn("error in ws loop", slog.Any("error", err))
	}
}

func (g GameHandler) runGameLoop(
	ctx context.Context, conn *websocket.Conn, s *session.Session,
) error {
	conn.SetReadLimit(maxMessageSize)

	if err := conn.WriteJSON(s.Snapshot(nil)); err != nil {
		return fmt.Errorf("unable to write json: %w", err)
	}

	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseUnsupportedData, "text messages only"),
			)
		}

		moveErr := execute(ctx, s, string(buf))

		if err := conn.WriteJSON(s.Snapshot(moveErr)); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

// execute applies a batch of commands, stopping at the first rejected
// command or at the move that ends the game.
func execute(ctx context.Context, s *session.Session, text string) error {
	for cmd, err := range session.ParseCommands(text) {
		if err != nil {
			return err
		}
		if err := s.Apply(ctx, cmd); err != nil {
			return err
		}
		if s.Status().Terminal() {
			return nil
		}
	}
	return nil
}
