package playout

import (
	"context"
	_ "github.com/janpfeifer/puoriborGo/internal/players/default"
	. "github.com/janpfeifer/puoriborGo/internal/state"
	"github.com/janpfeifer/puoriborGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

var biasedPlayers = [NumPlayers]string{"random:goal_bias=0.8", "random:goal_bias=0.8"}

func TestRun(t *testing.T) {
	var progress int
	r, err := Run(context.Background(), Config{
		NumMatches:  8,
		Parallelism: 4,
		MaxMoves:    1000,
		Players:     biasedPlayers,
		OnMatchDone: func(r *Results) { progress = r.Played },
	})
	require.NoError(t, err)
	assert.False(t, r.Interrupted)
	assert.Equal(t, 8, r.Played)
	assert.Equal(t, 8, progress)
	assert.Zero(t, r.Unfinished)
	assert.Equal(t, 8, r.Wins[PlayerFirst]+r.Wins[PlayerSecond])
	require.Len(t, r.Matches, 8)
	for ii, match := range r.Matches {
		assert.Equal(t, uint64(ii), match.MatchId)
		assert.True(t, match.Final.IsFinished())
		assert.Equal(t, match.Final.Winner(), match.Winner)
		assert.LessOrEqual(t, match.Moves, 1000)
	}
	assert.NotEmpty(t, r.String())
}

func TestPlayMatchIsReproducible(t *testing.T) {
	cfg := Config{MaxMoves: 200, Players: [NumPlayers]string{"random:goal_bias=0.3", "random"}}
	m1, err := PlayMatch(context.Background(), 17, cfg)
	require.NoError(t, err)
	m2, err := PlayMatch(context.Background(), 17, cfg)
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
	assert.LessOrEqual(t, m1.Moves, 200)
}

func TestCheckLegalActions(t *testing.T) {
	r, err := Run(context.Background(), Config{
		NumMatches:        2,
		MaxMoves:          60,
		Players:           [NumPlayers]string{"random", "random:goal_bias=0.5"},
		CheckLegalActions: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Played)
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), Config{NumMatches: 2, Players: [NumPlayers]string{"nope", ""}})
	require.ErrorContains(t, err, "nope")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, err := Run(ctx, Config{NumMatches: 4, Players: biasedPlayers})
	require.NoError(t, err)
	assert.True(t, r.Interrupted)
	assert.Zero(t, r.Played)
}

func TestCheckInvariants(t *testing.T) {
	require.NoError(t, CheckInvariants(NewState(), [NumPlayers]int{}))
	require.Error(t, CheckInvariants(NewState(), [NumPlayers]int{1, 0}))

	s := statetest.MustStep(NewState(), PlayerFirst, statetest.H(3, 1), statetest.R(0, 0))
	require.NoError(t, CheckInvariants(s, [NumPlayers]int{1, RotationCost}))

	// Enclosed pawn.
	s = statetest.BuildState(statetest.Layout{
		Pawns:          [NumPlayers]Pos{{4, 0}, {0, 8}},
		RemainingWalls: [NumPlayers]int8{MaxWalls, MaxWalls - 2},
		Horizontal:     []Pos{{0, 8}},
		Vertical:       []Pos{{1, 7}},
	})
	require.ErrorContains(t, CheckInvariants(s, [NumPlayers]int{0, 2}), "Second")

	// Walls on the board edge.
	s = NewState()
	s.Horizontal.Set(3, 0)
	require.Error(t, CheckInvariants(s, [NumPlayers]int{}))
	s = NewState()
	s.Vertical.Set(9, 4)
	require.Error(t, CheckInvariants(s, [NumPlayers]int{}))

	s = statetest.WithPawns(Pos{4, 4}, Pos{4, 4})
	require.Error(t, CheckInvariants(s, [NumPlayers]int{}))
}
