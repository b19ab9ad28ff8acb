package random_test

import (
	"github.com/janpfeifer/puoriborGo/internal/players"
	_ "github.com/janpfeifer/puoriborGo/internal/players/default"
	"github.com/janpfeifer/puoriborGo/internal/players/random"
	. "github.com/janpfeifer/puoriborGo/internal/state"
	. "github.com/janpfeifer/puoriborGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewFromConfig(t *testing.T) {
	assert.Contains(t, players.Modules(), "random")

	p, err := players.New(1, "test", PlayerFirst, "random:seed=3,goal_bias=0.5")
	require.NoError(t, err)
	require.IsType(t, &random.Player{}, p)

	_, err = players.New(1, "test", PlayerFirst, "random")
	require.NoError(t, err)

	_, err = players.New(1, "test", PlayerFirst, "random:goal_bias=2")
	require.Error(t, err)
	_, err = players.New(1, "test", PlayerFirst, "random:seed=x")
	require.Error(t, err)
	_, err = players.New(1, "test", PlayerFirst, "random:sed=3")
	require.ErrorContains(t, err, "sed")
	_, err = players.New(1, "test", PlayerFirst, "minimax:depth=3")
	require.ErrorContains(t, err, "minimax")
}

func TestLegalActionsOnly(t *testing.T) {
	s := NewState()
	p := [NumPlayers]*random.Player{
		random.New("legal", PlayerFirst, 7, 0.3),
		random.New("legal", PlayerSecond, 11, 0.3),
	}
	player := PlayerFirst
	for range 60 {
		if s.IsFinished() {
			break
		}
		action := p[player].Next(s)
		next, err := s.Step(player, action)
		require.NoErrorf(t, err, "player %s chose %s", player, action)
		s = next
		player = player.Opponent()
	}
}

func TestGoalBias(t *testing.T) {
	p := random.New("bias", PlayerFirst, 1, 1.0)
	for range 10 {
		assert.Equal(t, M(4, 1), p.Next(NewState()))
	}

	// A wall blocking (4,0)|(4,1) and (5,0)|(5,1): only going left gets closer.
	s := MustStep(NewState(), PlayerSecond, H(4, 1))
	for range 10 {
		assert.Equal(t, M(3, 0), p.Next(s))
	}
}

func TestDeterministicSeed(t *testing.T) {
	p1 := random.New("seed", PlayerSecond, 42, 0)
	p2 := random.New("seed", PlayerSecond, 42, 0)
	s := NewState()
	for range 20 {
		assert.Equal(t, p1.Next(s), p2.Next(s))
	}
}
