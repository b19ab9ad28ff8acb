package cli

import (
	"bytes"
	. "github.com/janpfeifer/puoriborGo/internal/state"
	. "github.com/janpfeifer/puoriborGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func newTestUI(input string) (*UI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewWithIO(false, false, strings.NewReader(input), out), out
}

func TestReadCommand(t *testing.T) {
	ui, out := newTestUI("-1\n\n4\n0 4 1\n")
	action, next, err := ui.ReadCommand(NewState(), PlayerFirst)
	require.NoError(t, err)
	assert.Equal(t, M(4, 1), action)
	assert.Equal(t, Pos{4, 1}, next.Pawn(PlayerFirst))
	assert.Contains(t, out.String(), "rotate the 4x4 section")
	assert.Equal(t, 3, strings.Count(out.String(), " X "))
	assert.Contains(t, out.String(), "Pawn moves: (3, 0), (5, 0), (4, 1)")

	// Invalid actions and unparseable commands count as errors.
	ui, out = newTestUI("foo\n0 4 3\n7 1 1\n0 4 1\n")
	_, _, err = ui.ReadCommand(NewState(), PlayerFirst)
	require.ErrorIs(t, err, ErrTooManyErrors)
	assert.Contains(t, out.String(), "Invalid action")

	ui, _ = newTestUI("1 3 1\n")
	action, next, err = ui.ReadCommand(NewState(), PlayerSecond)
	require.NoError(t, err)
	assert.Equal(t, H(3, 1), action)
	assert.Equal(t, int8(MaxWalls-1), next.RemainingWalls(PlayerSecond))

	ui, _ = newTestUI("q\n")
	_, _, err = ui.ReadCommand(NewState(), PlayerFirst)
	require.ErrorIs(t, err, ErrQuit)
	ui, _ = newTestUI("")
	_, _, err = ui.ReadCommand(NewState(), PlayerFirst)
	require.ErrorIs(t, err, ErrQuit)
}

func TestRunNextMove(t *testing.T) {
	ui, out := newTestUI("bad\nbad\nbad\n0 3 0\n")
	s, err := ui.RunNextMove(NewState(), PlayerFirst)
	require.NoError(t, err)
	assert.Equal(t, Pos{3, 0}, s.Pawn(PlayerFirst))
	assert.Contains(t, out.String(), "Remaining walls")
}

func TestPrintWinner(t *testing.T) {
	ui, out := newTestUI("")
	ui.PrintWinner(WithPawns(Pos{4, 8}, Pos{3, 3}))
	assert.Contains(t, out.String(), "PLAYER 0 WINS")

	ui, out = newTestUI("")
	ui.PrintWinner(NewState())
	assert.Contains(t, out.String(), "not finished")
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 3, displayWidth("\x1b[1;31m 0 \x1b[0m"))
	assert.Equal(t, 5, displayWidth("┌───┐"))
}
