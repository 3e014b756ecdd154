// vantage is a UCI chess engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/seekerror/logw"
	"github.com/vantage-chess/vantage/pkg/engine"
	"github.com/vantage-chess/vantage/pkg/engine/console"
	"github.com/vantage-chess/vantage/pkg/engine/uci"
	"github.com/vantage-chess/vantage/pkg/search"
	"os"
)

var (
	depth   = flag.Uint("depth", 0, "Default search depth limit (zero if no limit)")
	hash    = flag.Uint("hash", 32, "Transposition table size in MB (zero disables it)")
	noise   = flag.Uint("noise", 10, "Evaluation noise in millipawns (zero if deterministic)")
	threads = flag.Uint("threads", 0, "Lazy-SMP worker count (zero defaults to detected CPU count)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: vantage [options]

VANTAGE is a bitboard-based UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	s := search.PVS{
		Explore: search.FullExploration,
		Eval: search.Quiescence{
			Explore: search.QuiescenceExploration,
			Eval:    search.Static{},
		},
	}

	e := engine.New(ctx, "vantage", "vantage-chess", s,
		engine.WithTable(search.NewTranspositionTable),
		engine.WithOptions(engine.Options{Depth: *depth, Hash: *hash, Noise: *noise, Threads: *threads}),
	)

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		// Use UCI protocol.

		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, s, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
