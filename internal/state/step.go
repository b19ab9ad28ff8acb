package state

import (
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// Step applies the action of the given player to the state, and returns the new state.
//
// If the action is not valid, it returns the unchanged state and a *RuleError, whose Reason tells
// why. s itself is never modified, so it's safe to call Step concurrently on the same value.
//
// Whose turn it is is not tracked by the State: that is left to the caller.
//
// It panics if player is not PlayerFirst or PlayerSecond, or if the action kind is unknown:
// those are programming errors, external input should be validated with ActionFromTriple.
func (s State) Step(player PlayerNum, action Action) (State, error) {
	if player >= NumPlayers {
		exceptions.Panicf("Step(): invalid player %d", player)
	}
	next := s
	var reason Reason
	switch action.Kind {
	case Move:
		reason = next.movePawn(player, action.Pos)
	case PlaceWallHorizontal:
		reason = next.placeHorizontalWall(player, action.Pos)
	case PlaceWallVertical:
		reason = next.placeVerticalWall(player, action.Pos)
	case RotateSection:
		reason = next.rotate(player, action.Pos)
	default:
		exceptions.Panicf("Step(): invalid action kind %d", action.Kind)
	}
	if reason != ReasonNone {
		if klog.V(2).Enabled() {
			klog.Infof("%s player action %s rejected: %s", player, action, reason)
		}
		return s, reject(player, action, reason)
	}
	return next, nil
}

// movePawn validates and moves the player's pawn to target.
// It never changes the walls, so it doesn't need the reachability check.
func (s *State) movePawn(player PlayerNum, target Pos) Reason {
	if !target.InBoard() {
		return OutOfBounds
	}
	current, opponent := s.pawns[player], s.pawns[player.Opponent()]
	if target == opponent {
		return Overlap
	}
	switch current.Distance(target) {
	case 1:
		if s.isBlockedBetween(current, target) {
			return Blocked
		}
	case 2:
		if reason := s.checkJump(current, opponent, target); reason != ReasonNone {
			return reason
		}
	default:
		return InvalidDistance
	}
	s.pawns[player] = target
	return ReasonNone
}

// checkJump validates a distance 2 move from current to target over the opponent pawn.
//
// A straight jump is accepted if no wall is in the way. A diagonal jump is only accepted if the
// straight jump is blocked, by a wall behind the opponent or by the board edge.
func (s *State) checkJump(current, opponent, target Pos) Reason {
	toOpponent, adjacent := current.DirectionTo(opponent)
	if !adjacent || opponent.Distance(target) != 1 {
		return InvalidJump
	}
	if s.IsBlocked(current, toOpponent) || s.isBlockedBetween(opponent, target) {
		return Blocked
	}
	if IsMidPos(current, opponent, target) {
		return ReasonNone
	}
	if !s.IsBlocked(opponent, toOpponent) {
		// Straight jump is available, so no diagonal jump allowed.
		return InvalidJump
	}
	// target is adjacent to opponent, at distance 2 of current and not straight through: it can
	// only be one of the two cells orthogonal to the jump direction.
	return ReasonNone
}

// ValidHorizontalAnchor returns whether pos is a valid anchor for a horizontal wall.
func ValidHorizontalAnchor(pos Pos) bool {
	return pos[0] >= 0 && pos[0] < BoardSize-1 && pos[1] >= 1 && pos[1] < BoardSize
}

// ValidVerticalAnchor returns whether pos is a valid anchor for a vertical wall.
func ValidVerticalAnchor(pos Pos) bool {
	return pos[0] >= 1 && pos[0] < BoardSize && pos[1] >= 0 && pos[1] < BoardSize-1
}

// ValidSectionAnchor returns whether pos is a valid top-left cell for RotateSection.
func ValidSectionAnchor(pos Pos) bool {
	const limit = BoardSize - SectionSize + 1
	return pos[0] >= 0 && pos[0] < limit && pos[1] >= 0 && pos[1] < limit
}

// crossesHorizontal returns whether a horizontal wall at anchor would cross a vertical wall.
//
// The centre of the horizontal wall is the grid point (x+1, y), and a vertical wall crosses it
// only if it occupies both vertical cells touching that point, (x+1, y-1) and (x+1, y). Walls
// merely touching the point with one of their ends occupy only one of them.
func (s *State) crossesHorizontal(anchor Pos) bool {
	x, y := anchor[0], anchor[1]
	return s.Vertical.Has(x+1, y-1) && s.Vertical.Has(x+1, y)
}

// crossesVertical is the transposed version of crossesHorizontal: the centre of the vertical
// wall at (x, y) is the grid point (x, y+1).
func (s *State) crossesVertical(anchor Pos) bool {
	x, y := anchor[0], anchor[1]
	return s.Horizontal.Has(x-1, y+1) && s.Horizontal.Has(x, y+1)
}

func (s *State) placeHorizontalWall(player PlayerNum, anchor Pos) Reason {
	if s.remainingWalls[player] <= 0 {
		return NoWallsLeft
	}
	if !ValidHorizontalAnchor(anchor) {
		return OutOfBounds
	}
	x, y := anchor[0], anchor[1]
	if s.Horizontal.Has(x, y) || s.Horizontal.Has(x+1, y) {
		return AlreadyWalled
	}
	if s.crossesHorizontal(anchor) {
		return CrossingWall
	}
	s.Horizontal.Set(x, y)
	s.Horizontal.Set(x+1, y)
	s.remainingWalls[player]--
	if !s.bothCanReach() {
		return BlocksPath
	}
	return ReasonNone
}

func (s *State) placeVerticalWall(player PlayerNum, anchor Pos) Reason {
	if s.remainingWalls[player] <= 0 {
		return NoWallsLeft
	}
	if !ValidVerticalAnchor(anchor) {
		return OutOfBounds
	}
	x, y := anchor[0], anchor[1]
	if s.Vertical.Has(x, y) || s.Vertical.Has(x, y+1) {
		return AlreadyWalled
	}
	if s.crossesVertical(anchor) {
		return CrossingWall
	}
	s.Vertical.Set(x, y)
	s.Vertical.Set(x, y+1)
	s.remainingWalls[player]--
	if !s.bothCanReach() {
		return BlocksPath
	}
	return ReasonNone
}

func (s *State) rotate(player PlayerNum, anchor Pos) Reason {
	if s.remainingWalls[player] < RotationCost {
		return NoWallsLeft
	}
	if !ValidSectionAnchor(anchor) {
		return OutOfBounds
	}
	s.rotateSection(anchor)
	s.remainingWalls[player] -= RotationCost
	if !s.bothCanReach() {
		return BlocksPath
	}
	return ReasonNone
}
