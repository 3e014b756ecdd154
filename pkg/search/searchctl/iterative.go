package searchctl

import (
	"context"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"github.com/vantage-chess/vantage/pkg/board"
	"github.com/vantage-chess/vantage/pkg/eval"
	"github.com/vantage-chess/vantage/pkg/search"
	"sync"
	"time"
)

// Iterative is a search harness for iterative deepening search.
type Iterative struct {
	Root search.Search

	// Jitter offsets the starting depth of the iterative deepening loop. Used by Lazy-SMP
	// helper workers so they explore a different, typically deeper, slice of the tree than
	// the main search thread and diversify the entries they leave in the shared
	// transposition table. Zero for the primary search thread.
	Jitter int
}

func (i *Iterative) Launch(ctx context.Context, b *board.Board, tt search.TranspositionTable, noise eval.Random, opt Options) (Handle, <-chan search.PV) {
	out := make(chan search.PV, 1)
	h := &handle{
		init: iox.NewAsyncCloser(),
		quit: iox.NewAsyncCloser(),
	}
	go h.process(ctx, i.Root, b, tt, noise, opt, i.Jitter, out)

	return h, out
}

type handle struct {
	init, quit iox.AsyncCloser

	pv search.PV
	mu sync.Mutex
}

// aspirationWindow is the half-width of the probe window around the previous iteration's
// score. A depth's first probe is [best-aspirationWindow, best+aspirationWindow]; a fail
// low or fail high widens the failing side to the infinite bound and re-searches.
const aspirationWindow = eval.Score(50)

func (h *handle) process(ctx context.Context, root search.Search, b *board.Board, tt search.TranspositionTable, noise eval.Random, opt Options, jitter int, out chan search.PV) {
	defer h.init.Close()
	defer close(out)

	sctx := &search.Context{TT: tt, Noise: noise, NullMove: opt.NullMove, LMR: opt.LMR}
	soft, useSoft := EnforceTimeControl(ctx, h, opt.TimeControl, b.Turn())

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()

	depth := 1 + jitter
	var best eval.Score
	haveBest := false

	for !h.quit.IsClosed() {
		start := time.Now()

		alpha, beta := eval.NegInfScore, eval.InfScore
		if haveBest {
			alpha, beta = best-aspirationWindow, best+aspirationWindow
		}

		var nodes uint64
		var score eval.Score
		var moves []board.Move
		var err error
		for {
			sctx.Alpha, sctx.Beta = alpha, beta

			var n uint64
			n, score, moves, err = root.Search(wctx, sctx, b, depth)
			nodes += n
			if err != nil {
				break
			}
			if alpha != eval.NegInfScore && score <= alpha {
				alpha = eval.NegInfScore // fail low: re-search with an open floor
				continue
			}
			if beta != eval.InfScore && score >= beta {
				beta = eval.InfScore // fail high: re-search with an open ceiling
				continue
			}
			break
		}
		if err != nil {
			if err == search.ErrHalted {
				return // Halt was called.
			}
			logw.Errorf(ctx, "Search failed on %v at depth=%v: %v", b, depth, err)
			return
		}
		best, haveBest = score, true

		pv := search.PV{
			Depth: depth,
			Nodes: nodes,
			Score: score,
			Moves: moves,
			Time:  time.Since(start),
		}
		if tt != nil {
			pv.Hash = tt.Used()
		}

		logw.Debugf(ctx, "Searched %v: %v", b.Position(), pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv

		h.init.Close()
		if limit, ok := opt.DepthLimit.V(); ok && uint(depth) == limit {
			return // halt: reached max depth
		}
		if md, ok := score.MateDistance(); ok && int(md) <= depth {
			return // halt: forced mate found within full width search. Exact result.
		}
		if useSoft && soft < time.Since(start) {
			return // halt: exceeded soft time limit. Do not start new search.
		}
		depth++
	}
}

func (h *handle) Halt() search.PV {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pv
}
