package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"g", Command{Kind: Noop}},
		{"n", Command{Kind: Restart}},
		{"o 2 3", Command{Kind: Reveal, Coordinate: mines.Coordinate{Row: 2, Col: 3}}},
		{"f 0 4", Command{Kind: Flag, Coordinate: mines.Coordinate{Row: 0, Col: 4}}},
		{"  u   1 1 ", Command{Kind: Unflag, Coordinate: mines.Coordinate{Row: 1, Col: 1}}},
		{"o -1 7", Command{Kind: Reveal, Coordinate: mines.Coordinate{Row: -1, Col: 7}}},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			cmd, err := ParseCommand(test.line)
			require.NoError(t, err)
			assert.Equal(t, test.want, cmd)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", ErrUnknownCommand},
		{"x 1 2", ErrUnknownCommand},
		{"c 1 2", ErrUnknownCommand},
		{"o 1", ErrBadArguments},
		{"g 1", ErrBadArguments},
		{"o a 2", ErrBadArguments},
		{"f 1 b", ErrBadArguments},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			_, err := ParseCommand(test.line)
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "o 2 3", Command{Kind: Reveal, Coordinate: mines.Coordinate{Row: 2, Col: 3}}.String())
	assert.Equal(t, "n", Command{Kind: Restart}.String())
	assert.True(t, Command{Kind: Flag}.Mutates())
	assert.False(t, Command{Kind: Restart}.Mutates())
}

func TestCommandStringParses(t *testing.T) {
	for _, cmd := range []Command{
		{Kind: Noop},
		{Kind: Restart},
		{Kind: Reveal, Coordinate: mines.Coordinate{Row: 4, Col: 1}},
		{Kind: Flag, Coordinate: mines.Coordinate{Row: 0, Col: 0}},
		{Kind: Unflag, Coordinate: mines.Coordinate{Row: 9, Col: 3}},
	} {
		parsed, err := ParseCommand(cmd.String())
		require.NoError(t, err, cmd.String())
		assert.Equal(t, cmd, parsed)
	}
}

func TestParseCommands(t *testing.T) {
	var (
		cmds []Command
		errs []error
	)
	for cmd, err := range ParseCommands("o 0 1\n\nf 1 1\r\nbogus\nu 1 1") {
		cmds = append(cmds, cmd)
		errs = append(errs, err)
	}
	require.Len(t, cmds, 4)
	assert.Equal(t, Reveal, cmds[0].Kind)
	assert.Equal(t, Flag, cmds[1].Kind)
	assert.NoError(t, errs[1])
	assert.ErrorIs(t, errs[2], ErrUnknownCommand)
	assert.Equal(t, Unflag, cmds[3].Kind)
}

func TestIterBySep(t *testing.T) {
	testCases := []struct {
		input string
		sep   string
		array []string
	}{
		{"a b c", " ", []string{"a", "b", "c"}},
		{"foo\nbar\nbaz\n\nbazz", "\n", []string{"foo", "bar", "baz", "", "bazz"}},
	}
	for _, test := range testCases {
		for i, p := range iterBySep(test.input, test.sep) {
			require.Less(t, i, len(test.array))
			assert.Equal(t, test.array[i], p)
		}
	}
}
