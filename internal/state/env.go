package state

import (
	"github.com/janpfeifer/puoriborGo/internal/envs"
	"github.com/pkg/errors"
)

const (
	// EnvName is the name returned by Env.ID.
	EnvName = "puoribor"

	// EnvVersion is the version returned by Env.ID.
	EnvVersion = 1
)

// Env implements envs.Environment for Puoribor.
type Env struct{}

// Assert Env implements envs.Environment.
var _ envs.Environment[State, Action] = Env{}

// ID implements envs.Environment.
func (Env) ID() (string, int) {
	return EnvName, EnvVersion
}

// Initialize implements envs.Environment, it returns NewState().
func (Env) Initialize() State {
	return NewState()
}

// Step implements envs.Environment.
//
// Unlike State.Step, it validates agentID and the action kind, returning an error instead
// of panicking, since they may come from external input.
func (Env) Step(s State, agentID int, action Action) (State, error) {
	if agentID < 0 || agentID >= NumPlayers {
		return s, errors.Errorf("invalid agent id %d", agentID)
	}
	if action.Kind >= NumActionKinds {
		return s, errors.Errorf("invalid action kind %d", action.Kind)
	}
	return s.Step(PlayerNum(agentID), action)
}
