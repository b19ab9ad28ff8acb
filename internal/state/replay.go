package state

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Replay applies the actions alternately for the first and second player, starting from NewState().
//
// It returns all the states visited: states[0] is the initial state, and states[i+1] the state
// after actions[i]. If an action is rejected, it returns the states up to that point and an error
// that wraps the *RuleError.
func Replay(actions []Action) (states []State, err error) {
	s := NewState()
	states = make([]State, 1, len(actions)+1)
	states[0] = s
	for ii, action := range actions {
		player := PlayerNum(ii % NumPlayers)
		s, err = s.Step(player, action)
		if err != nil {
			return states, errors.WithMessagef(err, "replay failed at action #%d", ii)
		}
		klog.V(3).Infof("Replay #%d: %s player %s", ii, player, action)
		states = append(states, s)
	}
	return states, nil
}
