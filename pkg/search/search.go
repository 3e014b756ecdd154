// Package search contains game-tree search algorithms and the machinery shared between
// them: transposition tables, move ordering, quiescence and the iterative-deepening harness.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vantage-chess/vantage/pkg/board"
	"github.com/vantage-chess/vantage/pkg/eval"
)

// ErrHalted is returned by a Search that was cancelled via its context before completion.
var ErrHalted = errors.New("search halted")

// Context carries the state threaded through a single full-width search call: the active
// alpha-beta window, the shared transposition table, the Lazy-SMP noise term used to
// diversify helper threads, and an optional ponder line. AlphaBeta restricts its search to
// the ponder line, one move per ply; PVS ignores it.
type Context struct {
	Alpha, Beta eval.Score
	TT          TranspositionTable
	Noise       eval.Random
	Ponder      []board.Move

	// NullMove enables null-move pruning in the inner search routine.
	NullMove bool
	// LMR enables late-move reduction in the inner search routine.
	LMR bool
}

// Search implements search of the game tree to a given depth, given a shared Context.
// Implementations must be safe to call from a single goroutine only; parallelism is the
// coordinator's responsibility (see pkg/search/searchctl), each worker owning its own forked board.
type Search interface {
	Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error)
}

// QuietSearch implements the leaf evaluation strategy invoked once full-width search bottoms
// out at depth zero: either a direct static evaluation (ZeroPly) or a capture-resolving
// quiescence search.
type QuietSearch interface {
	QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score)
}

// Evaluator evaluates a leaf position, given the search Context it was reached under. It
// generalizes eval.Evaluator with access to the Context's noise term.
type Evaluator interface {
	Evaluate(ctx context.Context, sctx *Context, b *board.Board) eval.Score
}

// ZeroPly is a QuietSearch that performs no quiescence: the position is evaluated directly.
// Useful for comparison against Minimax and for fast but tactically naive play.
type ZeroPly struct {
	Eval Evaluator
}

func (z ZeroPly) QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score) {
	return 1, z.Eval.Evaluate(ctx, sctx, b)
}

// Static adapts eval.Static into a search.Evaluator, wiring in the Lazy-SMP noise term
// carried on the search Context.
type Static struct{}

func (Static) Evaluate(ctx context.Context, sctx *Context, b *board.Board) eval.Score {
	return eval.Static{Noise: sctx.Noise}.Evaluate(ctx, b)
}

// PV represents the principal variation found at some search depth.
type PV struct {
	Depth int
	Moves []board.Move
	Score eval.Score
	Nodes uint64
	Time  time.Duration
	Hash  float64 // transposition table utilization, [0;1]
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v hash=%v%% pv=%v",
		p.Depth, p.Score, p.Nodes, p.Time, int(100*p.Hash), board.PrintMoves(p.Moves))
}
