package search

import (
	"context"

	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/vantage-chess/vantage/pkg/board"
	"github.com/vantage-chess/vantage/pkg/eval"
)

// AlphaBeta implements negamax alpha-beta search, enhanced with null-move pruning, futility
// pruning, late-move reduction, check extension, killer-move and history-heuristic move
// ordering, transposition-table cutoffs and draw contempt. Unlike PVS, every move is searched
// with the full [alpha;beta] window (apart from late-move reduction's reduced-depth null-window
// probe, when enabled), so it makes no assumption about move ordering quality;
// it additionally supports pondering a specific line via Context.Ponder. Pseudo-code for the
// negamax skeleton alone:
//
// function negamax(node, depth, α, β, color) is
//
//	if depth = 0 or node is a terminal node then
//	    return color × the heuristic value of node
//	value := −∞
//	for each child of node do
//	    value := max(value, −negamax(child, depth − 1, −β, −α, −color))
//	    α := max(α, value)
//	    if α ≥ β then
//	        break (* cutoff *)
//	return value
//
// See: https://en.wikipedia.org/wiki/Negamax.
type AlphaBeta struct {
	Explore Exploration
	Eval    QuietSearch
}

func (p AlphaBeta) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	run := &runAlphaBeta{
		explore:  fullIfNotSet(p.Explore),
		eval:     p.Eval,
		tt:       sctx.TT,
		noise:    sctx.Noise,
		ponder:   sctx.Ponder,
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

type runAlphaBeta struct {
	explore  Exploration
	eval     QuietSearch
	tt       TranspositionTable
	noise    eval.Random
	nullMove bool
	lmr      bool
	b        *board.Board
	nodes    uint64

	ponder  []board.Move
	killers killers
	hist    history
}

// search returns the positive score for the color to move at this node. ply counts plies
// searched from the root of this call, ply 0 being the root; allowNull is false immediately
// below a null-move probe, to forbid two in a row.
func (m *runAlphaBeta) search(ctx context.Context, depth int, alpha, beta eval.Score, ply int, allowNull bool) (eval.Score, []board.Move) {
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
			return cutoff, nil // cutoff
		} // else: not deep enough or precise enough
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
	if len(m.ponder) == 0 && m.nullMove && allowNull && ply > 0 && !inCheck &&
		effectiveDepth >= nullMoveMinDepth && hasNonPawnMaterial(m.b.Position(), side) {
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
	if len(m.ponder) > 0 {
		explore = m.ponder[0].Equals // overwrite: use ponder move even if not intended to be explored
		m.ponder = m.ponder[1:]
	}

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

		if explore(move) {
			var score eval.Score
			var rem []board.Move

			if m.lmr && movesSearched >= lateMoveStartIndex && effectiveDepth >= lateMoveMinDepth && quiet && !inCheck {
				reduced := lmrDepth(effectiveDepth, movesSearched)
				score, rem = m.search(ctx, reduced, alpha.Negate()-1, alpha.Negate(), ply+1, true)
				score = eval.IncrementMateDistance(score).Negate()
				if alpha.Less(score) {
					score, rem = m.search(ctx, effectiveDepth-1, beta.Negate(), alpha.Negate(), ply+1, true)
					score = eval.IncrementMateDistance(score).Negate()
				}
			} else {
				score, rem = m.search(ctx, effectiveDepth-1, beta.Negate(), alpha.Negate(), ply+1, true)
				score = eval.IncrementMateDistance(score).Negate()
			}

			if alpha.Less(score) {
				alpha = score
				best = move
				pv = append([]board.Move{move}, rem...)
			}
		}

		m.b.PopMove()
		hasLegalMove = true
		movesSearched++

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

func fullIfNotSet(p Exploration) Exploration {
	if p == nil {
		return FullExploration
	}
	return p
}
