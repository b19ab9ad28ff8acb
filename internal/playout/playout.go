// Package playout runs many independent matches between automatic players, in parallel, checking
// the rules engine invariants after every step.
//
// It's the engine's fuzzer: any rejected action that LegalActions listed, any state where a pawn
// is walled off from its goal, or any walls unaccounted for is reported as an error.
package playout

import (
	"cmp"
	"context"
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/puoriborGo/internal/generics"
	"github.com/janpfeifer/puoriborGo/internal/players"
	. "github.com/janpfeifer/puoriborGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"
)

// Config of a Run.
type Config struct {
	// NumMatches to play.
	NumMatches int

	// Parallelism is the number of matches played concurrently. If <= 0, it uses runtime.GOMAXPROCS(0).
	Parallelism int

	// MaxMoves is the number of actions (of both players) after which a match is given up as
	// unfinished. If <= 0, it uses DefaultMaxMoves.
	MaxMoves int

	// Players holds the configuration string of each player, see players.New.
	// Empty strings use players.DefaultPlayerConfig.
	Players [NumPlayers]string

	// FirstMatchId is the id of the first match: match ids are FirstMatchId, FirstMatchId+1, ....
	// Players use the match id as their default random seed, so a failing match can be reproduced
	// by its id.
	FirstMatchId uint64

	// CheckLegalActions enables checking that the action chosen by each player is accepted
	// by State.Step if and only if it is listed by State.LegalActions. It's slow.
	CheckLegalActions bool

	// OnMatchDone, if set, is called after each match is recorded, with the lock of the results held.
	OnMatchDone func(r *Results)
}

// MatchResult is the outcome of one match.
type MatchResult struct {
	MatchId uint64
	Name    string

	// Winner is PlayerInvalid for unfinished matches.
	Winner PlayerNum

	// Moves is the number of actions taken, by both players.
	Moves int

	// ActionCounts per kind of action.
	ActionCounts [NumActionKinds]int

	// Stuck is set if a player had no legal action available.
	Stuck bool

	Final State
}

// Results of a Run. The fields are protected by the mutex while Run is executing.
type Results struct {
	mu    sync.Mutex
	start time.Time

	Total, Played int
	Wins          [NumPlayers]int
	Unfinished    int
	Stuck         int
	ActionCounts  [NumActionKinds]int

	// Matches sorted by MatchId, once Run returns.
	Matches []MatchResult

	// Interrupted is set if the context was cancelled before all matches were played.
	Interrupted bool
}

func (r *Results) String() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Played %d of %d: ", r.Played, r.Total))
	for playerNum := range NumPlayers {
		parts = append(parts, fmt.Sprintf("%s: %d wins / ", PlayerNum(playerNum), r.Wins[playerNum]))
	}
	parts = append(parts, fmt.Sprintf("%d unfinished (%d stuck) - ", r.Unfinished, r.Stuck))
	var counts []string
	for kind, count := range r.ActionCounts {
		counts = append(counts, fmt.Sprintf("%s=%d", ActionKind(kind), count))
	}
	parts = append(parts, fmt.Sprintf("actions: %s - ", strings.Join(counts, ", ")))
	parts = append(parts, fmt.Sprintf("%s", time.Since(r.start).Round(time.Millisecond)))
	return strings.Join(parts, "")
}

func (r *Results) record(match MatchResult) {
	r.Played++
	if match.Winner == PlayerInvalid {
		r.Unfinished++
		if match.Stuck {
			r.Stuck++
		}
	} else {
		r.Wins[match.Winner]++
	}
	for kind, count := range match.ActionCounts {
		r.ActionCounts[kind] += count
	}
	r.Matches = append(r.Matches, match)
}

// Run plays cfg.NumMatches matches, cfg.Parallelism at a time.
//
// It returns the first error found: a player failed to be created, a player's action was
// rejected, or an invariant of the state was broken. If ctx is cancelled, it returns the
// partial results with Results.Interrupted set, and no error.
func Run(ctx context.Context, cfg Config) (*Results, error) {
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = runtime.GOMAXPROCS(0)
	}
	if cfg.MaxMoves <= 0 {
		cfg.MaxMoves = DefaultMaxMoves
	}
	r := &Results{
		start: time.Now(),
		Total: cfg.NumMatches,
	}
	var wg errgroup.Group
	wg.SetLimit(cfg.Parallelism)
	for matchIdx := range cfg.NumMatches {
		wg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			matchId := cfg.FirstMatchId + uint64(matchIdx)
			match, err := PlayMatch(ctx, matchId, cfg)
			if err != nil || ctx.Err() != nil {
				return err
			}
			r.mu.Lock()
			defer r.mu.Unlock()
			r.record(match)
			if cfg.OnMatchDone != nil {
				cfg.OnMatchDone(r)
			}
			return nil
		})
	}
	err := wg.Wait()
	r.Interrupted = ctx.Err() != nil
	slices.SortFunc(r.Matches, func(a, b MatchResult) int {
		return cmp.Compare(a.MatchId, b.MatchId)
	})
	return r, err
}

// PlayMatch plays one match with freshly created players, and checks the invariants after every
// step. Panics (from the players or the engine) are converted to errors.
func PlayMatch(ctx context.Context, matchId uint64, cfg Config) (match MatchResult, err error) {
	match = MatchResult{
		MatchId: matchId,
		Name:    fmt.Sprintf("Match-%05d", matchId),
		Winner:  PlayerInvalid,
	}
	maxMoves := cfg.MaxMoves
	if maxMoves <= 0 {
		maxMoves = DefaultMaxMoves
	}
	var matchPlayers [NumPlayers]players.Player
	for playerNum := range NumPlayers {
		matchPlayers[playerNum], err = players.New(matchId, match.Name, PlayerNum(playerNum), cfg.Players[playerNum])
		if err != nil {
			return match, errors.WithMessagef(err, "%s", match.Name)
		}
	}
	defer func() {
		for _, p := range matchPlayers {
			p.Finalize()
		}
	}()

	if klog.V(1).Enabled() {
		klog.Infof("Starting %s", match.Name)
		defer func() { klog.Infof("Finished %s: winner=%s, moves=%d", match.Name, match.Winner, match.Moves) }()
	}

	var matchErr error
	err = exceptions.TryCatch[error](func() {
		matchErr = playMatch(ctx, &match, matchPlayers, maxMoves, cfg.CheckLegalActions)
	})
	if err == nil {
		err = matchErr
	}
	if err != nil {
		return match, errors.WithMessagef(err, "%s (replay it with match id %d)", match.Name, matchId)
	}
	return match, nil
}

func playMatch(ctx context.Context, match *MatchResult, matchPlayers [NumPlayers]players.Player, maxMoves int, checkLegal bool) error {
	s := NewState()
	var spent [NumPlayers]int
	player := PlayerFirst
	for match.Moves < maxMoves && !s.IsFinished() {
		if ctx.Err() != nil {
			klog.V(1).Infof("%s interrupted: %s", match.Name, ctx.Err())
			return nil
		}
		action := matchPlayers[player].Next(s)
		next, err := s.Step(player, action)
		if checkLegal {
			legal := generics.SetWith(s.LegalActions(player)...)
			if legal.Has(action) != (err == nil) {
				return errors.Errorf("move #%d: %s %s: LegalActions lists it %v, but Step returned error %v",
					match.Moves, player, action, legal.Has(action), err)
			}
		}
		if err != nil {
			if len(s.LegalActions(player)) == 0 {
				match.Stuck = true
				klog.V(1).Infof("%s: player %s stuck at move #%d", match.Name, player, match.Moves)
				break
			}
			return errors.WithMessagef(err, "move #%d", match.Moves)
		}
		if klog.V(3).Enabled() {
			klog.Infof("%s: move #%d: %s %s", match.Name, match.Moves, player, action)
		}
		if action.IsWallAction() {
			spent[player] += action.WallCost()
			if next.Pawn(player) != s.Pawn(player) {
				return errors.Errorf("move #%d: %s %s moved its pawn", match.Moves, player, action)
			}
		} else if next.Horizontal != s.Horizontal || next.Vertical != s.Vertical {
			return errors.Errorf("move #%d: %s %s changed the walls", match.Moves, player, action)
		}
		match.ActionCounts[action.Kind]++
		match.Moves++
		if err = CheckInvariants(next, spent); err != nil {
			return errors.WithMessagef(err, "move #%d: after %s %s", match.Moves-1, player, action)
		}
		if next.IsFinished() && next.Winner() != player {
			return errors.Errorf("move #%d: %s %s made %s win", match.Moves-1, player, action, next.Winner())
		}
		s = next
		player = player.Opponent()
	}
	match.Final = s
	match.Winner = s.Winner()
	return nil
}

// CheckInvariants returns an error if the state breaks any of the invariants kept by State.Step.
// spent is the number of walls each player spent so far.
func CheckInvariants(s State, spent [NumPlayers]int) error {
	for playerNum := range NumPlayers {
		player := PlayerNum(playerNum)
		if !s.Pawn(player).InBoard() {
			return errors.Errorf("pawn of %s out of the board at %s", player, s.Pawn(player))
		}
		if remaining := int(s.RemainingWalls(player)); remaining < 0 || remaining+spent[player] != MaxWalls {
			return errors.Errorf("%s has %d walls remaining and spent %d, expected a total of %d",
				player, remaining, spent[player], MaxWalls)
		}
		if !s.CanReach(player) {
			return errors.Errorf("%s can't reach its goal row from %s", player, s.Pawn(player))
		}
	}
	if s.Pawn(PlayerFirst) == s.Pawn(PlayerSecond) {
		return errors.Errorf("both pawns at %s", s.Pawn(PlayerFirst))
	}
	const edges = 1 | 1<<BoardSize
	for x := range BoardSize + 1 {
		if s.Horizontal[x]&edges != 0 || (x == BoardSize && s.Horizontal[x] != 0) {
			return errors.Errorf("horizontal wall on the board edge at x=%d: %010b", x, s.Horizontal[x])
		}
		if s.Vertical[x]&(1<<BoardSize) != 0 || ((x == 0 || x == BoardSize) && s.Vertical[x] != 0) {
			return errors.Errorf("vertical wall on the board edge at x=%d: %010b", x, s.Vertical[x])
		}
	}
	return nil
}
