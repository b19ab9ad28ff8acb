// Package state holds the Puoribor game state and its rules engine.
//
// Puoribor is a variant of Quoridor played on a 9x9 board: each player races its pawn to the
// opposite row, while placing walls to block the opponent or rotating a 4x4 section of the
// walls already on the board.
//
// Coordinates are (x, y), with (0, 0) at the top-left corner. Player 0 starts at the top and
// must reach the bottom row, player 1 starts at the bottom and must reach the top row.
//
// State is a plain value: every transition (see State.Step) returns a new State, and previous
// values remain valid, so they can be shared freely across goroutines.
package state

const (
	// BoardSize is the width and height of the board, in cells.
	BoardSize = 9

	// NumPlayers is always 2.
	NumPlayers = 2

	// MaxWalls each player starts with.
	MaxWalls = 10

	// RotationCost in walls of a RotateSection action.
	RotationCost = 2

	// SectionSize is the width and height of the region rotated by RotateSection.
	SectionSize = 4

	// DefaultMaxMoves after which drivers give up on a match.
	DefaultMaxMoves = 400
)

// PlayerNum is the either 0 or 1 corresponding to the first player to move or the second player to move.
type PlayerNum uint8

const (
	PlayerFirst PlayerNum = iota
	PlayerSecond

	// PlayerInvalid represents an invalid PlayerNum.
	PlayerInvalid
)

//go:generate go tool enumer -type=PlayerNum -trimprefix=Player -values -text -json -yaml state.go

// Opponent returns the other player.
func (p PlayerNum) Opponent() PlayerNum {
	return 1 - p
}

// GoalRow returns the row the player has to reach to win.
func (p PlayerNum) GoalRow() int8 {
	if p == PlayerFirst {
		return BoardSize - 1
	}
	return 0
}

// StartPos returns the initial position of the player's pawn.
func (p PlayerNum) StartPos() Pos {
	if p == PlayerFirst {
		return Pos{BoardSize / 2, 0}
	}
	return Pos{BoardSize / 2, BoardSize - 1}
}

// WallBitmap holds the wall occupancy of one orientation. Bit y of word x is the cell (x, y).
//
// The horizontal bitmap is 9x10 (x in [0,9), y in [0,10)): entry (x, y) blocks the border between
// the cells (x, y-1) and (x, y).
// The vertical bitmap is 10x9 (x in [0,10), y in [0,9)): entry (x, y) blocks the border between
// the cells (x-1, y) and (x, y).
//
// The entries on lines 0 and 9 are the board edge and are never set.
type WallBitmap [BoardSize + 1]uint16

// Has returns whether the cell (x, y) is set. Coordinates out of the bitmap return false.
func (w WallBitmap) Has(x, y int8) bool {
	if x < 0 || x > BoardSize || y < 0 || y > BoardSize {
		return false
	}
	return w[x]&(1<<uint(y)) != 0
}

// Set marks the cell (x, y).
func (w *WallBitmap) Set(x, y int8) {
	w[x] |= 1 << uint(y)
}

// Clear unmarks the cell (x, y).
func (w *WallBitmap) Clear(x, y int8) {
	w[x] &^= 1 << uint(y)
}

// Count returns the number of cells set.
func (w WallBitmap) Count() (count int) {
	for _, word := range w {
		for ; word != 0; word &= word - 1 {
			count++
		}
	}
	return
}

// State is a compact representation of the game state. It's compact to allow fast/cheap
// search on the space, by copying it.
type State struct {
	pawns          [NumPlayers]Pos
	remainingWalls [NumPlayers]int8

	// Horizontal and Vertical walls, see WallBitmap for the layout.
	Horizontal, Vertical WallBitmap
}

// NewState returns the initial state: pawns at (4, 0) and (4, 8), no walls, and MaxWalls for each player.
func NewState() State {
	return State{
		pawns:          [NumPlayers]Pos{PlayerFirst.StartPos(), PlayerSecond.StartPos()},
		remainingWalls: [NumPlayers]int8{MaxWalls, MaxWalls},
	}
}

// NewStateWith returns a state with the given pawn positions and remaining walls, and no walls on
// the board. Walls can be added to the returned value's Horizontal and Vertical bitmaps.
//
// It is meant for tests and tools: nothing guarantees the result is reachable from NewState.
func NewStateWith(pawns [NumPlayers]Pos, remainingWalls [NumPlayers]int8) State {
	return State{pawns: pawns, remainingWalls: remainingWalls}
}

// Pawn returns the position of the player's pawn.
func (s State) Pawn(player PlayerNum) Pos {
	return s.pawns[player]
}

// RemainingWalls returns how many walls the player can still spend.
func (s State) RemainingWalls(player PlayerNum) int8 {
	return s.remainingWalls[player]
}

// PawnAt returns the player whose pawn is at pos, or PlayerInvalid if the cell is empty.
func (s State) PawnAt(pos Pos) PlayerNum {
	for player, pawn := range s.pawns {
		if pawn == pos {
			return PlayerNum(player)
		}
	}
	return PlayerInvalid
}

// HasHorizontalWall returns whether the horizontal bitmap has the cell (x, y) set.
func (s State) HasHorizontalWall(x, y int8) bool {
	return s.Horizontal.Has(x, y)
}

// HasVerticalWall returns whether the vertical bitmap has the cell (x, y) set.
func (s State) HasVerticalWall(x, y int8) bool {
	return s.Vertical.Has(x, y)
}

// IsBlocked returns whether there is a wall on the border of pos in the given direction.
// The board edge counts as blocked.
func (s State) IsBlocked(pos Pos, d Direction) bool {
	if !pos.CanShift(d) {
		return true
	}
	x, y := pos[0], pos[1]
	switch d {
	case DirUp:
		return s.Horizontal.Has(x, y)
	case DirDown:
		return s.Horizontal.Has(x, y+1)
	case DirLeft:
		return s.Vertical.Has(x, y)
	default:
		return s.Vertical.Has(x+1, y)
	}
}

// isBlockedBetween returns whether the border between the adjacent positions a and b is walled.
func (s *State) isBlockedBetween(a, b Pos) bool {
	d, ok := a.DirectionTo(b)
	if !ok {
		return true
	}
	return s.IsBlocked(a, d)
}
