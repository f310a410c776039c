package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/telemetry"
)

// Session is one player's game. It owns its board exclusively and is not safe
// for concurrent use.
type Session struct {
	ID     uuid.UUID
	Board  *mines.Board
	params mines.Params
	rnd    *rand.Rand

	logger  *slog.Logger
	journal *journal.Journal
	tracer  trace.Tracer
}

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

func WithJournal(j *journal.Journal) Option {
	return func(s *Session) { s.journal = j }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Session) { s.tracer = tracer }
}

func New(params mines.Params, rnd *rand.Rand, opts ...Option) (*Session, error) {
	s := &Session{
		params:  params,
		rnd:     rnd,
		logger:  slog.Default(),
		journal: journal.Discard(),
		tracer:  telemetry.Tracer("session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.deal(); err != nil {
		return nil, err
	}
	return s, nil
}

// deal replaces the board with a freshly generated one under a new ID.
func (s *Session) deal() error {
	board, err := mines.New(s.params.Size, s.params.MineCount, s.rnd)
	if err != nil {
		return fmt.Errorf("unable to create board: %w", err)
	}
	s.ID = uuid.New()
	s.Board = board
	s.logger.Debug("new board",
		slog.String("session_id", s.ID.String()),
		slog.String("params", s.params.String()),
	)
	s.journal.Session(s.ID.String()).WithFields(logrus.Fields{
		"size":       s.params.Size,
		"mine_count": s.params.MineCount,
	}).Info("start")
	return nil
}

func (s *Session) Params() mines.Params {
	return s.params
}

func (s *Session) Status() mines.Status {
	return s.Board.Status()
}

// Apply executes cmd against the session's board. Rejected moves return an
// error wrapping one of the mines sentinels and leave the board unchanged.
func (s *Session) Apply(ctx context.Context, cmd Command) error {
	_, span := s.tracer.Start(ctx, "session."+cmd.Kind.String(),
		trace.WithAttributes(
			attribute.String("session.id", s.ID.String()),
			attribute.String("command", cmd.String()),
		),
	)
	defer span.End()

	var err error
	switch cmd.Kind {
	case Noop:
	case Reveal:
		_, err = s.Board.Reveal(cmd.Coordinate)
	case Flag:
		err = s.Board.Flag(cmd.Coordinate)
	case Unflag:
		err = s.Board.Unflag(cmd.Coordinate)
	case Restart:
		err = s.deal()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, string(cmd.Kind))
	}

	status := s.Board.Status()
	span.SetAttributes(
		attribute.String("board.status", status.String()),
		attribute.Int("board.revealed", s.Board.RevealedCount()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if cmd.Mutates() {
		entry := s.journal.Session(s.ID.String()).WithFields(logrus.Fields{
			"move":   cmd.Kind.String(),
			"row":    cmd.Row,
			"col":    cmd.Col,
			"status": status.String(),
		})
		if err != nil {
			entry.WithError(err).Warn("rejected")
		} else {
			entry.Info("applied")
		}
		if err == nil && status.Terminal() {
			s.journal.Session(s.ID.String()).WithField("status", status.String()).Info("finish")
		}
	}

	s.logger.Debug("applied command",
		slog.String("session_id", s.ID.String()),
		slog.String("command", cmd.String()),
		slog.String("status", status.String()),
		slog.Any("error", err),
	)
	return err
}
