package session

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Kind string

const (
	Noop    Kind = "g"
	Reveal  Kind = "o"
	Flag    Kind = "f"
	Unflag  Kind = "u"
	Restart Kind = "n"
)

func (k Kind) String() string {
	switch k {
	case Noop:
		return "noop"
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	case Unflag:
		return "unflag"
	case Restart:
		return "restart"
	default:
		return "unknown"
	}
}

// Maps known commands to number of arguments
var commandNargs = map[Kind]int{
	Noop:    0,
	Reveal:  2,
	Flag:    2,
	Unflag:  2,
	Restart: 0,
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("invalid command arguments")
)

type Command struct {
	Kind Kind
	mines.Coordinate
}

func (c Command) String() string {
	if commandNargs[c.Kind] == 0 {
		return string(c.Kind)
	}
	return fmt.Sprintf("%s %d %d", string(c.Kind), c.Row, c.Col)
}

// Mutates reports whether the command changes the board it is applied to.
func (c Command) Mutates() bool {
	return c.Kind == Reveal || c.Kind == Flag || c.Kind == Unflag
}

func parseRowCol(args []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("%w: row must be an int", ErrBadArguments)
		return
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("%w: column must be an int", ErrBadArguments)
		return
	}
	return
}

// ParseCommand parses a single command line such as "o 2 3".
func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("%w: empty command", ErrUnknownCommand)
	}
	kind := Kind(parts[0])
	nargs, ok := commandNargs[kind]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return Command{}, fmt.Errorf(
			"%w: %s takes %d arguments, got %d",
			ErrBadArguments, kind, nargs, len(parts)-1,
		)
	}
	cmd := Command{Kind: kind}
	if nargs == 2 {
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return Command{}, err
		}
		cmd.Coordinate = mines.Coordinate{Row: row, Col: col}
	}
	return cmd, nil
}

// ParseCommands yields one parsed command per non-blank line of text.
func ParseCommands(text string) iter.Seq2[Command, error] {
	return func(yield func(Command, error) bool) {
		for _, line := range iterBySep(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if !yield(ParseCommand(line)) {
				return
			}
		}
	}
}

func iterBySep(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
