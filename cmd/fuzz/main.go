// fuzz plays many random matches in parallel and checks the invariants of the rules engine after
// every action. A failing match can be reproduced with -first_match_id and -num_matches=1.
package main

import (
	"context"
	"flag"
	"fmt"
	_ "github.com/janpfeifer/puoriborGo/internal/players/default"
	"github.com/janpfeifer/puoriborGo/internal/playout"
	"github.com/janpfeifer/puoriborGo/internal/profilers"
	. "github.com/janpfeifer/puoriborGo/internal/state"
	"github.com/janpfeifer/puoriborGo/internal/ui/spinning"
	"k8s.io/klog/v2"
	"sync"
	"time"
)

var (
	flagNumMatches   = flag.Int("num_matches", 1000, "Number of matches to play.")
	flagParallelism  = flag.Int("parallelism", 0, "Number of matches played in parallel. If 0, it uses the number of cores.")
	flagConfig       = flag.String("config", "random:goal_bias=0.5", "Configuration of the first player.")
	flagConfig2      = flag.String("config2", "", "Configuration of the second player. Defaults to -config.")
	flagMaxMoves     = flag.Int("max_moves", DefaultMaxMoves, "Max moves (of both players) before a match is given up.")
	flagFirstMatchId = flag.Uint64("first_match_id", 0, "Id of the first match, used as the default seed of the players.")
	flagCheckLegal   = flag.Bool("check_legal", false, "Also check that every chosen action is listed by LegalActions iff it's accepted. Slow.")
	flagSpinner      = flag.Bool("spinner", true, "Display a spinner with the progress.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagNumMatches <= 0 || *flagMaxMoves <= 0 {
		klog.Fatalf("Invalid -num_matches=%d or -max_moves=%d", *flagNumMatches, *flagMaxMoves)
	}
	if *flagConfig2 == "" {
		*flagConfig2 = *flagConfig
	}

	// Capture Control+C
	ctx, cancel := context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 5*time.Second)
	defer cancel()

	prof, err := profilers.New(ctx, profilers.FlagOptions())
	if err != nil {
		klog.Fatalf("Failed to start profilers: %+v", err)
	}
	defer func() {
		if err := prof.Close(); err != nil {
			klog.Errorf("Failed to close profilers: %+v", err)
		}
	}()

	var (
		muStatus sync.Mutex
		status   = "starting"
	)
	cfg := playout.Config{
		NumMatches:        *flagNumMatches,
		Parallelism:       *flagParallelism,
		MaxMoves:          *flagMaxMoves,
		Players:           [NumPlayers]string{*flagConfig, *flagConfig2},
		FirstMatchId:      *flagFirstMatchId,
		CheckLegalActions: *flagCheckLegal,
		OnMatchDone: func(r *playout.Results) {
			muStatus.Lock()
			status = r.String()
			muStatus.Unlock()
		},
	}
	var spinner *spinning.Spinning
	if *flagSpinner {
		spinner = spinning.NewWithStatus(ctx, func() string {
			muStatus.Lock()
			defer muStatus.Unlock()
			return status
		})
	}
	var results *playout.Results
	matchRange := fmt.Sprintf("%d-%d", cfg.FirstMatchId, cfg.FirstMatchId+uint64(cfg.NumMatches)-1)
	profErr := prof.Phase(ctx, "playout", func(ctx context.Context) {
		results, err = playout.Run(ctx, cfg)
	}, "matches", matchRange)
	if profErr != nil {
		klog.Errorf("Profiling the playout: %+v", profErr)
	}
	if spinner != nil {
		spinner.Done()
	}
	fmt.Println(results)
	if err != nil {
		klog.Exitf("Fuzzing failed: %+v", err)
	}
	if results.Interrupted {
		fmt.Printf("Interrupted: %s\n", ctx.Err())
		return
	}
	if klog.V(1).Enabled() {
		var totalMoves int
		for _, match := range results.Matches {
			totalMoves += match.Moves
		}
		klog.Infof("%d matches, %.1f moves per match on average", len(results.Matches),
			float64(totalMoves)/float64(max(len(results.Matches), 1)))
	}
}
