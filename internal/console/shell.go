// Package console is the interactive line-based front end of the game.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
	"github.com/vancomm/minesweeper/internal/telemetry"
)

var errInvalidInput = errors.New("invalid input")

// Maps move menu entries to session commands
var moveChoices = map[string]session.Kind{
	"1": session.Reveal,
	"2": session.Flag,
	"3": session.Unflag,
}

type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	rnd     *rand.Rand
	presets []session.Preset

	logger  *slog.Logger
	journal *journal.Journal
	tracer  trace.Tracer
}

type Option func(*Shell)

func WithPresets(presets []session.Preset) Option {
	return func(sh *Shell) { sh.presets = presets }
}

func WithLogger(logger *slog.Logger) Option {
	return func(sh *Shell) { sh.logger = logger }
}

func WithJournal(j *journal.Journal) Option {
	return func(sh *Shell) { sh.journal = j }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(sh *Shell) { sh.tracer = tracer }
}

func New(in io.Reader, out io.Writer, rnd *rand.Rand, opts ...Option) *Shell {
	sh := &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		rnd:     rnd,
		presets: session.DefaultPresets(),
		logger:  slog.Default(),
		journal: journal.Discard(),
		tracer:  telemetry.Tracer("console"),
	}
	for _, opt := range opts {
		opt(sh)
	}
	return sh
}

func (sh *Shell) printf(format string, args ...any) {
	fmt.Fprintf(sh.out, format, args...)
}

func (sh *Shell) println(line string) {
	fmt.Fprintln(sh.out, line)
}

// prompt writes the prompt and reads one line. It returns io.EOF once input
// is exhausted.
func (sh *Shell) prompt(prompt string) (string, error) {
	sh.printf("%s", prompt)
	if !sh.in.Scan() {
		if err := sh.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(sh.in.Text()), nil
}

// Run plays games until the player declines a replay, input runs out or ctx
// is cancelled.
func (sh *Shell) Run(ctx context.Context) error {
	err := sh.run(ctx)
	if errors.Is(err, io.EOF) {
		sh.println("")
		sh.println("Thanks for playing!")
		return nil
	}
	return err
}

func (sh *Shell) run(ctx context.Context) error {
	for {
		params, err := sh.chooseParams()
		if err != nil {
			return err
		}

		s, err := session.New(params, sh.rnd,
			session.WithLogger(sh.logger),
			session.WithJournal(sh.journal),
			session.WithTracer(sh.tracer),
		)
		if err != nil {
			return err
		}

		if err := sh.play(ctx, s); err != nil {
			return err
		}

		answer, err := sh.prompt("Would you like to play again? (Yes/No): ")
		if err != nil {
			return err
		}
		if strings.ToLower(answer) != "yes" {
			sh.println("Thanks for playing!")
			return nil
		}
	}
}

func (sh *Shell) chooseParams() (mines.Params, error) {
	var b strings.Builder
	fmt.Fprintln(&b, "Choose a board size:")
	for i, p := range sh.presets {
		fmt.Fprintf(&b, "%d. %s\n", i+1, describePreset(p.Name, p.Params()))
	}
	fmt.Fprintf(&b, "%d. Custom\n", len(sh.presets)+1)
	fmt.Fprint(&b, "Your choice: ")

	choice, err := sh.prompt(b.String())
	if err != nil {
		return mines.Params{}, err
	}

	n, err := strconv.Atoi(choice)
	switch {
	case err == nil && 1 <= n && n <= len(sh.presets):
		return sh.presets[n-1].Params(), nil
	case err == nil && n == len(sh.presets)+1:
		return sh.customParams()
	}

	fallback := sh.presets[0]
	sh.printf("Invalid choice. Defaulting to %s.\n", describePreset(fallback.Name, fallback.Params()))
	return fallback.Params(), nil
}

func (sh *Shell) customParams() (mines.Params, error) {
	for {
		sizeStr, err := sh.prompt("Board size: ")
		if err != nil {
			return mines.Params{}, err
		}
		mineStr, err := sh.prompt("Number of mines: ")
		if err != nil {
			return mines.Params{}, err
		}
		params, err := mines.ParseParams(sizeStr + ":" + mineStr)
		if err == nil {
			return params, nil
		}
		sh.logger.Debug("rejected custom params", slog.Any("error", err))
		sh.println("Invalid board size or mine count. Please try again.")
	}
}

func (sh *Shell) play(ctx context.Context, s *session.Session) error {
	sh.println("Welcome to Minesweeper!")
	for !s.Status().Terminal() {
		if err := ctx.Err(); err != nil {
			return err
		}

		renderBoard(sh.out, s.Board)

		cmd, err := sh.readMove(s.Params())
		if errors.Is(err, errInvalidInput) {
			continue
		}
		if err != nil {
			return err
		}

		if err := s.Apply(ctx, cmd); err != nil {
			sh.println(rejection(err))
			continue
		}

		switch s.Status() {
		case mines.Lost:
			sh.println("You hit a mine! Game Over.")
		case mines.Won:
			sh.println("Congratulations! You have won the game!")
		}
	}
	renderBoard(sh.out, s.Board)
	return nil
}

// readMove asks for a move and its coordinates. Malformed input is reported
// to the player and returned as errInvalidInput.
func (sh *Shell) readMove(params mines.Params) (session.Command, error) {
	choice, err := sh.prompt("Your move:\n1. Uncover a cell\n2. Flag a cell\n3. Remove a flag\nYour choice: ")
	if err != nil {
		return session.Command{}, err
	}
	coords, err := sh.prompt("Enter the row and column (e.g., 2 3): ")
	if err != nil {
		return session.Command{}, err
	}

	kind, ok := moveChoices[choice]
	cmd, err := session.ParseCommand(string(session.Reveal) + " " + coords)
	if err != nil || !params.InBounds(cmd.Coordinate) {
		sh.println("Invalid input. Please try again.")
		return session.Command{}, errInvalidInput
	}
	if !ok {
		sh.println("Invalid choice. Try again.")
		return session.Command{}, errInvalidInput
	}
	cmd.Kind = kind
	return cmd, nil
}
