package state

import (
	"fmt"
)

// ActionKind enumerates the 4 types of actions. The values match the external encoding, see
// ActionFromTriple.
type ActionKind uint8

const (
	// Move the pawn to the absolute position Action.Pos.
	Move ActionKind = iota

	// PlaceWallHorizontal places a wall whose left cell is Action.Pos.
	PlaceWallHorizontal

	// PlaceWallVertical places a wall whose top cell is Action.Pos.
	PlaceWallVertical

	// RotateSection rotates the walls of the 4x4 section whose top-left cell is Action.Pos.
	RotateSection
)

//go:generate go tool enumer -type=ActionKind -values -text -json -yaml actions.go

// NumActionKinds is the number of valid ActionKind values.
const NumActionKinds = 4

// Action describes a pawn move, a wall placement or a section rotation.
type Action struct {
	Kind ActionKind
	Pos  Pos
}

// IsWallAction returns whether the action changes the walls on the board.
func (a Action) IsWallAction() bool {
	return a.Kind != Move
}

// WallCost returns the number of walls spent by the action.
func (a Action) WallCost() int {
	switch a.Kind {
	case PlaceWallHorizontal, PlaceWallVertical:
		return 1
	case RotateSection:
		return RotationCost
	}
	return 0
}

func (a Action) String() string {
	switch a.Kind {
	case Move:
		return fmt.Sprintf("move to %s", a.Pos)
	case PlaceWallHorizontal:
		return fmt.Sprintf("place horizontal wall at %s", a.Pos)
	case PlaceWallVertical:
		return fmt.Sprintf("place vertical wall at %s", a.Pos)
	case RotateSection:
		return fmt.Sprintf("rotate section at %s", a.Pos)
	}
	return fmt.Sprintf("%s %s", a.Kind, a.Pos)
}

// IsValid returns whether the player can take the action on the state.
func (s State) IsValid(player PlayerNum, action Action) bool {
	_, err := s.Step(player, action)
	return err == nil
}

// LegalMoves returns the pawn moves available to the player, ordered by y and then x.
func (s State) LegalMoves(player PlayerNum) []Action {
	actions := make([]Action, 0, 5)
	return s.addMoveActions(player, actions)
}

// LegalActions returns all actions available to the player: moves, followed by horizontal
// walls, vertical walls and rotations, each ordered by y and then x.
//
// It runs Step for every candidate, so it's not cheap: a reachability check is done for
// every candidate wall and rotation.
func (s State) LegalActions(player PlayerNum) []Action {
	actions := make([]Action, 0, 64)
	actions = s.addMoveActions(player, actions)
	if s.remainingWalls[player] > 0 {
		actions = s.addAnchoredActions(player, PlaceWallHorizontal, actions)
		actions = s.addAnchoredActions(player, PlaceWallVertical, actions)
	}
	if s.remainingWalls[player] >= RotationCost {
		actions = s.addAnchoredActions(player, RotateSection, actions)
	}
	return actions
}

// addMoveActions only looks at cells at distance 1 or 2 of the pawn.
func (s *State) addMoveActions(player PlayerNum, actions []Action) []Action {
	pawn := s.pawns[player]
	for y := pawn[1] - 2; y <= pawn[1]+2; y++ {
		for x := pawn[0] - 2; x <= pawn[0]+2; x++ {
			action := Action{Kind: Move, Pos: Pos{x, y}}
			if action.Pos.InBoard() && s.IsValid(player, action) {
				actions = append(actions, action)
			}
		}
	}
	return actions
}

func (s *State) addAnchoredActions(player PlayerNum, kind ActionKind, actions []Action) []Action {
	for y := int8(0); y < BoardSize; y++ {
		for x := int8(0); x < BoardSize; x++ {
			action := Action{Kind: kind, Pos: Pos{x, y}}
			if s.IsValid(player, action) {
				actions = append(actions, action)
			}
		}
	}
	return actions
}
