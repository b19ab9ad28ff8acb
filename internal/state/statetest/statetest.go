// Package statetest provides helper functions to create tests using Puoribor state.
package statetest

import (
	"github.com/janpfeifer/must"
	. "github.com/janpfeifer/puoriborGo/internal/state"
)

// Layout describes a board to build with BuildState.
type Layout struct {
	Pawns          [NumPlayers]Pos
	RemainingWalls [NumPlayers]int8

	// Horizontal and Vertical list the anchors of whole walls (two cells each).
	Horizontal, Vertical []Pos
}

// BuildState from a layout. The walls are set directly in the bitmaps: no rule is checked, so
// it can build states not reachable through State.Step.
func BuildState(layout Layout) State {
	s := NewStateWith(layout.Pawns, layout.RemainingWalls)
	for _, anchor := range layout.Horizontal {
		s.Horizontal.Set(anchor[0], anchor[1])
		s.Horizontal.Set(anchor[0]+1, anchor[1])
	}
	for _, anchor := range layout.Vertical {
		s.Vertical.Set(anchor[0], anchor[1])
		s.Vertical.Set(anchor[0], anchor[1]+1)
	}
	return s
}

// WithPawns returns the initial state with the pawns moved to the given positions.
func WithPawns(first, second Pos) State {
	return NewStateWith([NumPlayers]Pos{first, second}, [NumPlayers]int8{MaxWalls, MaxWalls})
}

// MustStep applies the actions alternately for each player, starting with the given player,
// and panics if any is rejected.
func MustStep(s State, player PlayerNum, actions ...Action) State {
	for _, action := range actions {
		s = must.M1(s.Step(player, action))
		player = player.Opponent()
	}
	return s
}

// H returns a PlaceWallHorizontal action.
func H(x, y int8) Action { return Action{Kind: PlaceWallHorizontal, Pos: Pos{x, y}} }

// V returns a PlaceWallVertical action.
func V(x, y int8) Action { return Action{Kind: PlaceWallVertical, Pos: Pos{x, y}} }

// M returns a Move action.
func M(x, y int8) Action { return Action{Kind: Move, Pos: Pos{x, y}} }

// R returns a RotateSection action.
func R(x, y int8) Action { return Action{Kind: RotateSection, Pos: Pos{x, y}} }
