// Package envs defines the contracts between a game environment (the rules) and the agents
// playing it, so drivers (UIs, fuzzers, trainers) can be written independently of the game.
package envs

// Environment is implemented by the rules of a game with state S and actions A.
//
// Implementations must be pure: Step must not modify its input state, so states can be
// replayed, undone, or explored concurrently.
type Environment[S any, A any] interface {
	// ID returns the name and version of the environment.
	ID() (name string, version int)

	// Initialize returns the initial state of a match.
	Initialize() S

	// Step applies the action of the agent (0 or 1) and returns the new state, or an error
	// if the action is not valid, in which case the returned state should be ignored.
	Step(state S, agentID int, action A) (S, error)
}

// Agent is anything that is able to choose the next action in a game.
type Agent[S any, A any] interface {
	// Next returns the action to take on the given state.
	Next(state S) A
}
