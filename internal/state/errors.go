package state

import (
	"fmt"
)

// Reason why an action was rejected by State.Step.
//
// Reason implements error, so it can be used as a sentinel with errors.Is:
//
//	if errors.Is(err, state.BlocksPath) { ... }
type Reason uint8

const (
	// ReasonNone is the zero value, never returned.
	ReasonNone Reason = iota

	// OutOfBounds target, anchor or section outside its valid range.
	OutOfBounds

	// Overlap moving onto the opponent's pawn.
	Overlap

	// InvalidDistance moving zero or more than two cells.
	InvalidDistance

	// Blocked by a wall on the path of the move.
	Blocked

	// InvalidJump a distance-2 move that is not a legal straight or diagonal jump.
	InvalidJump

	// NoWallsLeft not enough walls for a placement (1) or a rotation (2).
	NoWallsLeft

	// AlreadyWalled one of the wall cells is occupied.
	AlreadyWalled

	// CrossingWall the new wall would cross a perpendicular wall at its centre.
	CrossingWall

	// BlocksPath the action would leave a player without a path to its goal row.
	BlocksPath
)

var reasonMessages = [...]string{
	ReasonNone:      "no reason",
	OutOfBounds:     "out of bounds",
	Overlap:         "cannot move onto the opponent's pawn",
	InvalidDistance: "can only move one or two cells",
	Blocked:         "blocked by a wall",
	InvalidJump:     "invalid jump",
	NoWallsLeft:     "not enough walls left",
	AlreadyWalled:   "wall already placed",
	CrossingWall:    "cannot cross an existing wall",
	BlocksPath:      "cannot block all paths to the goal",
}

// Error implements the error interface.
func (r Reason) Error() string {
	if int(r) >= len(reasonMessages) {
		return fmt.Sprintf("Reason(%d)", r)
	}
	return reasonMessages[r]
}

// String returns the same as Error.
func (r Reason) String() string {
	return r.Error()
}

// RuleError is returned by State.Step when an action is rejected.
// The state it was applied to is never modified.
type RuleError struct {
	Reason Reason
	Player PlayerNum
	Action Action
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	return fmt.Sprintf("%s player cannot %s: %s", e.Player, e.Action, e.Reason)
}

// Unwrap returns the Reason, so errors.Is works with the Reason values.
func (e *RuleError) Unwrap() error {
	return e.Reason
}

func reject(player PlayerNum, action Action, reason Reason) error {
	return &RuleError{Reason: reason, Player: player, Action: action}
}
