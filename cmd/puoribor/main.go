// puoribor plays a match in the terminal: human vs. an automatic player, human vs. human
// (-hotseat) or between two automatic players (-watch). With -replay it replays a list of
// actions and prints the resulting boards.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/puoriborGo/internal/players"
	_ "github.com/janpfeifer/puoriborGo/internal/players/default"
	. "github.com/janpfeifer/puoriborGo/internal/state"
	"github.com/janpfeifer/puoriborGo/internal/ui/cli"
	"github.com/janpfeifer/puoriborGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"math/rand/v2"
	"strings"
	"time"
)

var (
	flagHotseat  = flag.Bool("hotseat", false, "Hotseat match: human vs human")
	flagWatch    = flag.Bool("watch", false, "Watch mode: automatic players playing each other")
	flagFirst    = flag.String("first", "", "Who plays first: human or ai. Default is random.")
	flagConfig   = flag.String("config", "random:goal_bias=0.7", "Configuration of the automatic player to play against")
	flagConfig2  = flag.String("config2", "random:goal_bias=0.7", "Second player configuration, if watching with -watch")
	flagMaxMoves = flag.Int("max_moves", DefaultMaxMoves, "Max moves (of both players) before the match is given up.")
	flagReplay   = flag.String("replay", "",
		"Replay the given actions, separated by \";\", each one formatted as \"<kind> <x> <y>\", and print the boards.")
	flagColor = flag.Bool("color", true, "Use colors in the terminal.")
	flagClear = flag.Bool("clear", false, "Clear the screen before printing the board.")
	flagQuiet = flag.Bool("quiet", false, "Quiet mode for when watching: only the actions and the last board are printed.")
	flagDelay = flag.Duration("delay", 0, "Delay between actions when watching.")

	// autoPlayers: if nil, it's a human playing.
	autoPlayers = [NumPlayers]players.Player{nil, nil}
	matchId     = uint64(time.Now().UnixNano())
	matchName   = "The Match"

	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagMaxMoves <= 0 {
		klog.Fatalf("Invalid -max_moves=%d", *flagMaxMoves)
	}

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	ui := cli.New(*flagColor, *flagClear)
	if *flagReplay != "" {
		if err := replay(ui, *flagReplay); err != nil {
			klog.Exitf("Replay failed: %+v", err)
		}
		return
	}

	createPlayers()
	s := NewState()
	player := PlayerFirst
	for moves := 0; moves < *flagMaxMoves && !s.IsFinished(); moves++ {
		if globalCtx.Err() != nil {
			klog.Exitf("Interrupted: %v", globalCtx.Err())
		}
		autoPlayer := autoPlayers[player]
		if autoPlayer == nil {
			next, err := ui.RunNextMove(s, player)
			if errors.Is(err, cli.ErrQuit) {
				fmt.Println("Bye!")
				return
			}
			if err != nil {
				klog.Exitf("Failed to run match: %+v", err)
			}
			s = next
		} else {
			if !*flagQuiet {
				ui.Print(s, player, false)
			}
			fmt.Printf("\t%s action: ", ui.PlayerName(player))
			spinner := spinning.New(globalCtx)
			action := autoPlayer.Next(s)
			spinner.Done()
			next, err := s.Step(player, action)
			if err != nil {
				klog.Exitf("%s played an invalid action: %+v", player, err)
			}
			fmt.Printf(" %s (%s)\n", action, formatTriple(action))
			s = next
			if *flagDelay > 0 {
				time.Sleep(*flagDelay)
			}
		}
		player = player.Opponent()
	}
	for _, autoPlayer := range autoPlayers {
		if autoPlayer != nil {
			autoPlayer.Finalize()
		}
	}

	ui.Print(s, player, false)
	ui.PrintWinner(s)
}

func formatTriple(action Action) string {
	triple := action.Triple()
	return fmt.Sprintf("%d %d %d", triple[0], triple[1], triple[2])
}

// replay the actions, printing the board after each one.
func replay(ui *cli.UI, text string) error {
	actions, err := ParseActions(text)
	if err != nil {
		return err
	}
	states, err := Replay(actions)
	for ii, s := range states {
		if ii > 0 {
			player := PlayerNum((ii - 1) % NumPlayers)
			fmt.Printf("\n#%d: %s %s (%s)\n", ii-1, ui.PlayerName(player), actions[ii-1], formatTriple(actions[ii-1]))
		}
		if *flagQuiet && ii < len(states)-1 {
			continue
		}
		ui.Print(s, PlayerNum(ii%NumPlayers), false)
	}
	if err != nil {
		return err
	}
	ui.PrintWinner(states[len(states)-1])
	return nil
}

// createPlayers in autoPlayers.
func createPlayers() {
	if *flagHotseat && *flagWatch {
		klog.Fatalf("-hotseat and -watch cannot be used together")
	}
	if *flagHotseat {
		// Both players are human, nothing to do.
		return
	}

	var autoPlayerNum PlayerNum
	if *flagWatch {
		autoPlayerNum = PlayerFirst
	} else {
		switch strings.ToLower(*flagFirst) {
		case "human":
			autoPlayerNum = PlayerSecond
		case "ai":
			autoPlayerNum = PlayerFirst
		case "":
			autoPlayerNum = PlayerNum(rand.IntN(NumPlayers))
		default:
			exceptions.Panicf("invalid -first=%q, only valid values are \"human\" or \"ai\"", *flagFirst)
		}
	}
	autoPlayers[autoPlayerNum] = must.M1(players.New(matchId, matchName, autoPlayerNum, *flagConfig))
	if !*flagWatch {
		return
	}

	// Create second automatic player.
	otherPlayerNum := autoPlayerNum.Opponent()
	autoPlayers[otherPlayerNum] = must.M1(players.New(matchId, matchName, otherPlayerNum, *flagConfig2))
}
