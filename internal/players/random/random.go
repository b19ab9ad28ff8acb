// Package random implements a player that picks uniformly among the legal actions, optionally
// biased towards pawn moves that shorten its path to the goal row.
//
// It's used to fuzz the rules engine with random playouts, and as a sparring partner in the
// terminal UI.
package random

import (
	"github.com/janpfeifer/puoriborGo/internal/parameters"
	"github.com/janpfeifer/puoriborGo/internal/players"
	. "github.com/janpfeifer/puoriborGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"math/rand/v2"
)

// Module implements players.Module for the random player. Parameters:
//
//   - seed (int): seed for the random number generator. Defaults to the match id, so matches
//     are reproducible.
//   - goal_bias (float, in [0, 1]): probability of choosing, when there is one, a pawn move that
//     shortens the distance to the goal row instead of a uniformly random action. Default is 0.
type Module struct{}

// Assert Module implements players.Module.
var _ players.Module = (*Module)(nil)

// NewPlayer implements players.Module.
func (m *Module) NewPlayer(matchId uint64, matchName string, playerNum PlayerNum, params parameters.Params) (players.Player, error) {
	seed, err := parameters.PopParamOr(params, "seed", int64(matchId))
	if err != nil {
		return nil, err
	}
	goalBias, err := parameters.PopParamOr(params, "goal_bias", 0.0)
	if err != nil {
		return nil, err
	}
	if goalBias < 0 || goalBias > 1 {
		return nil, errors.Errorf("goal_bias=%g must be in [0, 1]", goalBias)
	}
	return New(matchName, playerNum, seed, goalBias), nil
}

// Player picks random legal actions. It is not safe for concurrent use, each match should
// create its own.
type Player struct {
	matchName string
	playerNum PlayerNum
	goalBias  float64
	rng       *rand.Rand
}

// Assert Player is a players.Player.
var _ players.Player = (*Player)(nil)

// New creates a random player for playerNum.
func New(matchName string, playerNum PlayerNum, seed int64, goalBias float64) *Player {
	return &Player{
		matchName: matchName,
		playerNum: playerNum,
		goalBias:  goalBias,
		rng:       rand.New(rand.NewPCG(uint64(seed), uint64(playerNum))),
	}
}

// Next implements players.Player.
//
// If there are no legal actions (both pawns stuck and no walls left), it returns a Move to the
// pawn's own cell, which State.Step rejects.
func (p *Player) Next(s State) Action {
	if p.goalBias > 0 && p.rng.Float64() < p.goalBias {
		if action, found := p.shortestMove(s); found {
			if klog.V(3).Enabled() {
				klog.Infof("%s: player %s goal move %s", p.matchName, p.playerNum, action)
			}
			return action
		}
	}
	actions := s.LegalActions(p.playerNum)
	if len(actions) == 0 {
		klog.V(1).Infof("%s: player %s has no legal actions", p.matchName, p.playerNum)
		return Action{Kind: Move, Pos: s.Pawn(p.playerNum)}
	}
	action := actions[p.rng.IntN(len(actions))]
	if klog.V(3).Enabled() {
		klog.Infof("%s: player %s random action %s (out of %d)", p.matchName, p.playerNum, action, len(actions))
	}
	return action
}

// shortestMove returns a random one among the legal moves that reach the closest distance to
// the goal row, if that distance is shorter than the current one.
func (p *Player) shortestMove(s State) (action Action, found bool) {
	current, _ := s.DistanceToGoal(p.playerNum)
	best := current
	var candidates []Action
	for _, move := range s.LegalMoves(p.playerNum) {
		next, err := s.Step(p.playerNum, move)
		if err != nil {
			continue
		}
		distance, ok := next.DistanceToGoal(p.playerNum)
		if !ok || distance > best {
			continue
		}
		if distance < best {
			best = distance
			candidates = candidates[:0]
		}
		candidates = append(candidates, move)
	}
	if best >= current || len(candidates) == 0 {
		return
	}
	return candidates[p.rng.IntN(len(candidates))], true
}

// Finalize implements players.Player.
func (p *Player) Finalize() {}
