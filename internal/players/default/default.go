// Package _default registers the default players that can be included in any
// front-end for puoriborGo.
//
// Currently, it includes only the random player, under the name "random".
package _default

import (
	"github.com/janpfeifer/puoriborGo/internal/players"
	"github.com/janpfeifer/puoriborGo/internal/players/random"
)

func init() {
	players.RegisterModule("random", &random.Module{})
}
