package state

import (
	"fmt"
	"github.com/gomlx/exceptions"
	"slices"
)

// Pos packages x, y position. For pawns both coordinates are in [0, BoardSize).
//
// The same type is used for wall anchors and rotation anchors, each with its own valid range,
// see Action.
type Pos [2]int8

// AbsInt8 returns the absolute value of an int8.
func AbsInt8(x int8) int8 {
	y := x >> 7
	return (x ^ y) - y
}

// X coordinate of the position.
func (pos Pos) X() int8 {
	return pos[0]
}

// Y coordinate of the position.
func (pos Pos) Y() int8 {
	return pos[1]
}

// InBoard returns whether pos is a valid pawn cell.
func (pos Pos) InBoard() bool {
	return pos[0] >= 0 && pos[0] < BoardSize && pos[1] >= 0 && pos[1] < BoardSize
}

// Distance returns the manhattan distance of two positions.
func (pos Pos) Distance(pos2 Pos) int {
	return int(AbsInt8(pos[0]-pos2[0])) + int(AbsInt8(pos[1]-pos2[1]))
}

// String returns a text representation of Pos.
func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos[0], pos[1])
}

// IsMidPos returns whether b is the midpoint between a and c, with the three of them
// sharing a row or a column.
func IsMidPos(a, b, c Pos) bool {
	if a[0] != c[0] && a[1] != c[1] {
		return false
	}
	sumX, sumY := a[0]+c[0], a[1]+c[1]
	if sumX&1 != 0 || sumY&1 != 0 {
		return false
	}
	return b == Pos{sumX / 2, sumY / 2}
}

// Direction is a unit vector along one of the axes of the board.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

//go:generate go tool enumer -type=Direction -trimprefix=Dir -transform=lower -values -text -json -yaml pos.go

// NumDirections is the number of valid Direction values.
const NumDirections = 4

// Directions enumerates the 4 directions in clockwise order, starting from DirUp.
var Directions = [NumDirections]Direction{DirUp, DirRight, DirDown, DirLeft}

var directionDeltas = [NumDirections]Pos{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// Delta returns the unit vector of the direction.
func (d Direction) Delta() Pos {
	return directionDeltas[d]
}

// DirectionTo returns the direction from pos to the adjacent position pos2.
// It returns false if they are not adjacent.
func (pos Pos) DirectionTo(pos2 Pos) (Direction, bool) {
	delta := Pos{pos2[0] - pos[0], pos2[1] - pos[1]}
	idx := slices.Index(directionDeltas[:], delta)
	if idx < 0 {
		return NumDirections, false
	}
	return Direction(idx), true
}

// CanShift returns whether shifting pos in the given direction stays on the board.
func (pos Pos) CanShift(d Direction) bool {
	delta := d.Delta()
	return Pos{pos[0] + delta[0], pos[1] + delta[1]}.InBoard()
}

// Shift moves pos one cell in the given direction.
//
// The caller must check the shift stays on the board (see CanShift): it panics otherwise.
func (pos Pos) Shift(d Direction) Pos {
	delta := d.Delta()
	next := Pos{pos[0] + delta[0], pos[1] + delta[1]}
	if !next.InBoard() {
		exceptions.Panicf("shifting %s %s leaves the board", pos, d)
	}
	return next
}

// Up returns the position above (y-1). See Shift.
func (pos Pos) Up() Pos { return pos.Shift(DirUp) }

// Down returns the position below (y+1). See Shift.
func (pos Pos) Down() Pos { return pos.Shift(DirDown) }

// Left returns the position to the left (x-1). See Shift.
func (pos Pos) Left() Pos { return pos.Shift(DirLeft) }

// Right returns the position to the right (x+1). See Shift.
func (pos Pos) Right() Pos { return pos.Shift(DirRight) }

// PosStrings converts the positions to their string representation.
func PosStrings(poss []Pos) []string {
	strs := make([]string, len(poss))
	for ii, pos := range poss {
		strs[ii] = pos.String()
	}
	return strs
}
