package search

import (
	"context"

	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/vantage-chess/vantage/pkg/board"
	"github.com/vantage-chess/vantage/pkg/eval"
)

// PVS implements principal variation search: like AlphaBeta, but every move after the first
// is first probed with a zero-width window and only re-searched with the full window if it
// fails high. On well-ordered trees this prunes more than plain alpha-beta. It additionally
// layers in the standard suite of alpha-beta enhancements: null-move pruning, futility
// pruning, late-move reduction, check extension, killer-move and history-heuristic move
// ordering, and draw contempt. Pseudo-code for the PVS skeleton alone:
//
// function pvs(node, depth, α, β, color) is
//
//	if depth = 0 or node is a terminal node then
//	    return color × the heuristic value of node
//	for each child of node do
//	    if child is first child then
//	        score := −pvs(child, depth − 1, −β, −α, −color)
//	    else
//	        score := −pvs(child, depth − 1, −α − 1, −α, −color) (* search with a null window *)
//	        if α < score < β then
//	            score := −pvs(child, depth − 1, −β, −score, −color) (* if it failed high, do a full re-search *)
//	    α := max(α, score)
//	    if α ≥ β then
//	        break (* beta cut-off *)
//	return α
//
// See: https://en.wikipedia.org/wiki/Principal_variation_search.
type PVS struct {
	Explore Exploration
	Eval    QuietSearch
}

func (p PVS) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	run := &runPVS{
		explore:  fullIfNotSet(p.Explore),
		eval:     p.Eval,
		tt:       sctx.TT,
		noise:    sctx.Noise,
		nullMove: sctx.NullMove,
		lmr:      sctx.LMR,
		b:        b,
	}
	low, high := eval.NegInfScore, eval.InfScore
	if !sctx.Alpha.IsInvalid() {
		low = sctx.Alpha
	}
	if !sctx.Beta.IsInvalid() {
		high = sctx.Beta
	}

	score, moves := run.search(ctx, depth, low, high, 0, true)
	if contextx.IsCancelled(ctx) {
		return 0, eval.InvalidScore, nil, ErrHalted
	}
	return run.nodes, score, moves, nil
}

type runPVS struct {
	explore  Exploration
	eval     QuietSearch
	tt       TranspositionTable
	noise    eval.Random
	nullMove bool
	lmr      bool
	b        *board.Board
	nodes    uint64

	killers killers
	hist    history
}

// search returns the positive score for the color to move at this node. ply counts plies
// searched from the root of this call (not the board's absolute ply), ply 0 being the root;
// allowNull is false immediately below a null-move probe, to forbid two in a row.
func (m *runPVS) search(ctx context.Context, depth int, alpha, beta eval.Score, ply int, allowNull bool) (eval.Score, []board.Move) {
	if contextx.IsCancelled(ctx) {
		return eval.InvalidScore, nil
	}
	if ply > 0 {
		if score, ok := nonRootDrawScore(m.b); ok {
			return score, nil
		}
	}

	origAlpha := alpha

	var ttMove board.Move
	hash := m.b.Hash()
	if bound, d, score, bm, ok := m.tt.Read(hash); ok {
		ttMove = bm
		if cutoff, ok := ttCutoff(bound, d, depth, score, alpha, beta); ok {
			return cutoff, nil
		}
	}

	inCheck := m.b.Position().IsChecked(m.b.Turn())
	effectiveDepth := depth
	if inCheck {
		effectiveDepth++ // check extension
	}

	if effectiveDepth <= 0 {
		sctx := &Context{Alpha: alpha, Beta: beta, TT: m.tt, Noise: m.noise}
		nodes, score := m.eval.QuietSearch(ctx, sctx, m.b)
		m.nodes += nodes

		m.tt.Write(hash, ExactBound, m.b.Ply(), 0, score, board.Move{})
		return score, nil
	}

	m.nodes++

	var staticEval eval.Score
	if haveFutilityStaticEval(effectiveDepth, inCheck, alpha) {
		staticEval = Static{}.Evaluate(ctx, &Context{Noise: m.noise}, m.b)
	}

	side := m.b.Turn()
	if m.nullMove && allowNull && ply > 0 && !inCheck && effectiveDepth >= nullMoveMinDepth && hasNonPawnMaterial(m.b.Position(), side) {
		u := m.b.PushNullMove()
		nullDepth := effectiveDepth - 1 - nullMoveReduction
		if nullDepth < 0 {
			nullDepth = 0
		}
		s, _ := m.search(ctx, nullDepth, beta.Negate(), beta.Negate()+1, ply+1, false)
		s = eval.IncrementMateDistance(s).Negate()
		m.b.PopNullMove(u)

		if s >= beta {
			return beta, nil
		}
	}

	hasLegalMove := false
	bound := ExactBound
	var best board.Move
	var pv []board.Move

	_, explore := m.explore(ctx, m.b)
	k0, k1 := m.killers.at(ply)
	moves := board.NewMoveList(m.b.Position().PseudoLegalMoves(), orderMoves(ttMove, k0, k1, &m.hist))

	movesSearched := 0
	for {
		move, ok := moves.Next()
		if !ok {
			break
		}

		quiet := !move.IsCapture() && !move.IsPromotion()
		if movesSearched > 0 && effectiveDepth <= futilityMaxDepth && !inCheck && quiet &&
			haveFutilityStaticEval(effectiveDepth, inCheck, alpha) && staticEval+futilityMargin[effectiveDepth] <= alpha {
			continue // futility: this quiet move can't plausibly raise the score to alpha
		}

		if !m.b.PushMove(move) {
			continue // skip: not legal
		}
		if !explore(move) {
			m.b.PopMove()
			continue
		}

		var score eval.Score
		var rem []board.Move

		switch {
		case movesSearched == 0:
			score, rem = m.search(ctx, effectiveDepth-1, beta.Negate(), alpha.Negate(), ply+1, true)
			score = eval.IncrementMateDistance(score).Negate()

		case m.lmr && movesSearched >= lateMoveStartIndex && effectiveDepth >= lateMoveMinDepth && quiet && !inCheck:
			reduced := lmrDepth(effectiveDepth, movesSearched)
			score, rem = m.search(ctx, reduced, alpha.Negate()-1, alpha.Negate(), ply+1, true)
			score = eval.IncrementMateDistance(score).Negate()
			if alpha.Less(score) {
				score, rem = m.search(ctx, effectiveDepth-1, beta.Negate(), alpha.Negate(), ply+1, true)
				score = eval.IncrementMateDistance(score).Negate()
			}

		default:
			// Null-window probe: cheaply confirms the move doesn't beat alpha.
			score, rem = m.search(ctx, effectiveDepth-1, alpha.Negate()-1, alpha.Negate(), ply+1, true)
			score = eval.IncrementMateDistance(score).Negate()

			if alpha.Less(score) && score.Less(beta) {
				// Failed high within the window: the probe was too optimistic about the
				// opponent's reply, so re-search with the full window to get an exact score.
				score, rem = m.search(ctx, effectiveDepth-1, beta.Negate(), score.Negate(), ply+1, true)
				score = eval.IncrementMateDistance(score).Negate()
			}
		}
		m.b.PopMove()
		hasLegalMove = true
		movesSearched++

		if alpha.Less(score) {
			alpha = score
			best = move
			pv = append([]board.Move{move}, rem...)
		}
		if alpha == beta || beta.Less(alpha) {
			bound = LowerBound
			if quiet {
				m.killers.update(ply, move)
				m.hist.update(move.Piece, move.To, effectiveDepth)
			}
			break // cutoff
		}
	}

	if !hasLegalMove {
		if result := m.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return eval.NegInfScore, nil
		}
		return eval.ZeroScore, nil
	}

	if bound == ExactBound {
		bound = classifyBound(alpha, origAlpha, beta)
	}
	m.tt.Write(hash, bound, m.b.Ply(), depth, alpha, best)
	return alpha, pv
}

// haveFutilityStaticEval reports whether a static evaluation is worth caching at this node
// for futility pruning: shallow enough, not in check, and far enough from a mate score that
// a plain material/positional estimate is still meaningful.
func haveFutilityStaticEval(effectiveDepth int, inCheck bool, alpha eval.Score) bool {
	const mateGuard = eval.MaxScore - 100
	return effectiveDepth <= staticEvalCacheMaxDepth && !inCheck && alpha > -mateGuard && alpha < mateGuard
}
