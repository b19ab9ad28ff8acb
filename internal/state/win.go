package state

// Status of a match, as returned by State.Status.
type Status uint8

const (
	InProgress Status = iota
	Player0Wins
	Player1Wins
)

//go:generate go tool enumer -type=Status -values -text -json -yaml win.go

// Status returns whether one of the pawns reached its goal row.
//
// It doesn't check path existence, see CanReach for that.
func (s State) Status() Status {
	if s.pawns[PlayerFirst][1] == PlayerFirst.GoalRow() {
		return Player0Wins
	}
	if s.pawns[PlayerSecond][1] == PlayerSecond.GoalRow() {
		return Player1Wins
	}
	return InProgress
}

// IsFinished returns whether a player won.
func (s State) IsFinished() bool {
	return s.Status() != InProgress
}

// Winner returns the player that won, or PlayerInvalid if the match is in progress.
func (s State) Winner() PlayerNum {
	switch s.Status() {
	case Player0Wins:
		return PlayerFirst
	case Player1Wins:
		return PlayerSecond
	}
	return PlayerInvalid
}
