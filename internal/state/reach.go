package state

// This file implements the reachability check used to keep both players with a path to their
// goal rows: it's an invariant of every state reached through State.Step, enforced after every
// action that changes the walls.

const numCells = BoardSize * BoardSize

func cellIndex(pos Pos) int {
	return int(pos[1])*BoardSize + int(pos[0])
}

func cellPos(idx int) Pos {
	return Pos{int8(idx % BoardSize), int8(idx / BoardSize)}
}

// bfsToGoal runs a breadth-first search from the player's pawn, and returns the number of
// steps to the closest cell in the player's goal row. The pawns themselves are not obstacles.
//
// Each cell is visited at most once, so it always terminates.
func (s *State) bfsToGoal(player PlayerNum) (steps int, found bool) {
	var (
		visited  [numCells]bool
		distance [numCells]uint8
		queue    [numCells]uint8
		head     int
		tail     int
	)
	goal := player.GoalRow()
	start := cellIndex(s.pawns[player])
	visited[start] = true
	queue[tail] = uint8(start)
	tail++
	for head < tail {
		here := int(queue[head])
		head++
		pos := cellPos(here)
		if pos[1] == goal {
			return int(distance[here]), true
		}
		for _, d := range Directions {
			if s.IsBlocked(pos, d) {
				continue
			}
			there := cellIndex(pos.Shift(d))
			if visited[there] {
				continue
			}
			visited[there] = true
			distance[there] = distance[here] + 1
			queue[tail] = uint8(there)
			tail++
		}
	}
	return 0, false
}

// CanReach returns whether the player has an unobstructed path from its pawn to its goal row.
func (s State) CanReach(player PlayerNum) bool {
	_, found := s.bfsToGoal(player)
	return found
}

// DistanceToGoal returns the length of the shortest path from the player's pawn to its goal row,
// ignoring the other pawn. It returns false if there is no path.
func (s State) DistanceToGoal(player PlayerNum) (int, bool) {
	return s.bfsToGoal(player)
}

// bothCanReach is the check run after every action that changes the walls.
func (s *State) bothCanReach() bool {
	return s.CanReach(PlayerFirst) && s.CanReach(PlayerSecond)
}
