// Package players provides a factory of automatic players (agents) from configuration strings.
// It also allows player providers to register themselves.
package players

import (
	"github.com/janpfeifer/puoriborGo/internal/envs"
	"github.com/janpfeifer/puoriborGo/internal/generics"
	"github.com/janpfeifer/puoriborGo/internal/parameters"
	. "github.com/janpfeifer/puoriborGo/internal/state"
	"github.com/pkg/errors"
	"slices"
	"strings"
	"sync"
)

// Player is anything that is able to play the game.
type Player interface {
	// Next returns the action chosen for the given state.
	// The player is always asked to play for the PlayerNum it was created for.
	//
	// The returned action is validated by the caller with State.Step, and a rejected action
	// is an error of the Player.
	Next(s State) Action

	// Finalize is called at the end of a match.
	Finalize()
}

// Assert Player satisfies the generic agent contract.
var _ envs.Agent[State, Action] = Player(nil)

// Module must implement NewPlayer called at the start of a match.
// matchId is unique among matches, but the Module.NewPlayer may be called twice for the same matchId, for different players,
// if self-playing.
// matchName is used for logging and debugging.
//
// Modules should consume the parameters they know with parameters.PopParamOr: any parameter
// left in params after NewPlayer returns is reported as unknown.
type Module interface {
	NewPlayer(matchId uint64, matchName string, playerNum PlayerNum, params parameters.Params) (Player, error)
}

var (
	muModules sync.Mutex

	// Registered external modules.
	keywordToModules = make(map[string]Module)
)

// RegisterModule so it can be used by any of the front-ends to play Puoribor.
func RegisterModule(name string, module Module) {
	muModules.Lock()
	defer muModules.Unlock()
	keywordToModules[name] = module
}

// Modules returns the sorted names of the registered modules.
func Modules() []string {
	muModules.Lock()
	defer muModules.Unlock()
	return slices.Collect(generics.SortedKeys(keywordToModules))
}

var (
	// DefaultPlayerConfig is used if no configuration was given to the player. The value may be changed by the
	// UI built.
	DefaultPlayerConfig = "random:goal_bias=0.5"
)

// New creates a new player given the configuration string.
//
// Args:
//
//	config: the module name optionally followed by a colon (":") and a comma-separated list of parameters
//		with optional values associated. E.g.: "random:seed=3,goal_bias=0.7".
//		If empty, the default is given by DefaultPlayerConfig.
//
// More details on the config are dependent on the module used.
func New(matchId uint64, matchName string, playerNum PlayerNum, config string) (Player, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}

	// Find moduleName.
	moduleName, config, _ := strings.Cut(config, ":")
	muModules.Lock()
	module, ok := keywordToModules[moduleName]
	muModules.Unlock()
	if !ok {
		if len(Modules()) == 0 {
			return nil, errors.Errorf("unknown player %q: no modules registered, perhaps you need to import _ \"github.com/janpfeifer/puoriborGo/internal/players/default\" in your binary?", moduleName)
		}
		return nil, errors.Errorf("unknown player %q, registered players: %q", moduleName, Modules())
	}

	params := parameters.NewFromConfigString(config)
	player, err := module.NewPlayer(matchId, matchName, playerNum, params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create player %q", moduleName)
	}
	if err = parameters.CheckAllUsed(params); err != nil {
		return nil, errors.WithMessagef(err, "failed to create player %q", moduleName)
	}
	return player, nil
}
