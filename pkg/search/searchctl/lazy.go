package searchctl

import (
	"context"

	"github.com/seekerror/logw"
	"github.com/vantage-chess/vantage/pkg/board"
	"github.com/vantage-chess/vantage/pkg/eval"
	"github.com/vantage-chess/vantage/pkg/search"
)

// Lazy is a Lazy-SMP search harness: the main thread runs iterative deepening exactly like
// Iterative and is the only one that reports progress; Workers-1 background helpers search
// independent forks of the same position concurrently, sharing the transposition table, so
// the shared table fills with entries the main thread's own search order wouldn't otherwise
// produce. Odd-indexed helpers start their iterative deepening one ply ahead of the main
// thread ("depth jitter"), so they explore a different slice of the tree rather than
// duplicating the main thread's work. Workers <= 1 behaves exactly like Iterative.
type Lazy struct {
	Root    search.Search
	Workers int
}

func (l *Lazy) Launch(ctx context.Context, b *board.Board, tt search.TranspositionTable, noise eval.Random, opt Options) (Handle, <-chan search.PV) {
	n := l.Workers
	if n < 1 {
		n = 1
	}

	main := &Iterative{Root: l.Root}
	mh, out := main.Launch(ctx, b, tt, noise, opt)

	lh := &lazyHandle{main: mh}
	for i := 1; i < n; i++ {
		jitter := 0
		if i%2 == 1 {
			jitter = 1
		}

		helper := &Iterative{Root: l.Root, Jitter: jitter}
		hh, hout := helper.Launch(ctx, b.Fork(), tt, noise, opt)
		lh.helpers = append(lh.helpers, hh)

		go func() {
			for range hout {
				// Helper progress is never surfaced; helpers exist only to diversify the
				// shared transposition table, not to report their own principal variation.
			}
		}()
	}

	logw.Debugf(ctx, "Launched lazy search: workers=%v", n)
	return lh, out
}

type lazyHandle struct {
	main    Handle
	helpers []Handle
}

// Halt stops the main search and every helper, and adopts a helper's result in place of the
// main thread's if the helper found a strictly better score with a usable move: a helper may
// have reached a deeper or differently-ordered iteration than the main thread by the time the
// search is stopped. The reported node count is the sum across every worker.
func (h *lazyHandle) Halt() search.PV {
	best := h.main.Halt()

	var nodes uint64
	nodes += best.Nodes

	for _, helper := range h.helpers {
		pv := helper.Halt()
		nodes += pv.Nodes

		if len(pv.Moves) > 0 && best.Score.Less(pv.Score) {
			best = pv
		}
	}

	best.Nodes = nodes
	return best
}
