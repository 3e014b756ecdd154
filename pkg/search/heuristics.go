package search

import (
	"github.com/vantage-chess/vantage/pkg/board"
	"github.com/vantage-chess/vantage/pkg/eval"
)

// contempt is subtracted from the side to move's score when the position is a draw (or
// about to become one), so the engine steers away from draws it has an alternative to
// rather than treating them as exactly equal to a zero score.
const contempt eval.Score = 25

// futilityMargin[d] bounds how far a quiet move searched at effective depth d could
// plausibly raise the static evaluation; a move that can't reach alpha even with this
// margin added is skipped without being searched.
var futilityMargin = [...]eval.Score{0, 200, 300, 500}

const (
	// futilityMaxDepth is the deepest effective depth futility pruning applies at.
	futilityMaxDepth = 3
	// staticEvalCacheMaxDepth is the deepest effective depth a cached static evaluation
	// is computed at, to support futility pruning without re-evaluating every node.
	staticEvalCacheMaxDepth = 4

	// nullMoveMinDepth is the shallowest effective depth null-move pruning is tried at.
	nullMoveMinDepth = 3
	// nullMoveReduction is the extra depth (beyond the usual one ply) cut from the
	// null-move verification search.
	nullMoveReduction = 2

	// lateMoveMinDepth is the shallowest effective depth LMR applies at.
	lateMoveMinDepth = 3
	// lateMoveStartIndex is the number of moves (0-indexed) searched before LMR kicks in.
	lateMoveStartIndex = 4
)

// lmrDepth returns the reduced depth for the (moves searched)-th late move (0-indexed)
// at the given effective depth: a one-ply reduction, plus one more ply for every six moves
// already searched.
func lmrDepth(effectiveDepth, movesSearched int) int {
	r := 1 + movesSearched/6
	d := effectiveDepth - 1 - r
	if d < 1 {
		d = 1
	}
	return d
}

// hasNonPawnMaterial reports whether side has at least one knight, bishop, rook or queen,
// the usual zugzwang guard for null-move pruning: with only pawns and a king left, passing
// the move can manufacture a refutation that doesn't exist with best play.
func hasNonPawnMaterial(pos *board.Position, side board.Color) bool {
	return pos.Bitboard(side, board.Knight) != 0 ||
		pos.Bitboard(side, board.Bishop) != 0 ||
		pos.Bitboard(side, board.Rook) != 0 ||
		pos.Bitboard(side, board.Queen) != 0
}

// killers holds up to two quiet moves per ply that have caused a beta cutoff elsewhere in
// the tree at that ply, tried early on the theory that a refutation at one node is often a
// refutation at a sibling node too. Scoped to a single Search call.
type killers struct {
	slots [][2]board.Move
}

func (k *killers) at(ply int) (board.Move, board.Move) {
	if ply >= len(k.slots) {
		return board.Move{}, board.Move{}
	}
	return k.slots[ply][0], k.slots[ply][1]
}

// update records m as the newest killer at ply, demoting the previous first slot.
func (k *killers) update(ply int, m board.Move) {
	for len(k.slots) <= ply {
		k.slots = append(k.slots, [2]board.Move{})
	}
	if k.slots[ply][0].Equals(m) {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = m
}

// history scores quiet moves by (moved piece, to-square) independent of the position they
// occurred in, a coarser but position-independent move-ordering signal that keeps paying
// off deeper in the tree than a single ply's killers. Scoped to a single Search call.
type history struct {
	score [board.NumPieces][board.NumSquares]int32
}

func (h *history) get(p board.Piece, to board.Square) int32 {
	return h.score[p][to]
}

// update rewards a quiet move that caused a beta cutoff at the given effective depth.
func (h *history) update(p board.Piece, to board.Square, effectiveDepth int) {
	h.score[p][to] += int32(effectiveDepth * effectiveDepth)
}

// Move-ordering tiers, expressed as board.MovePriority (int16), highest first: TT move,
// captures (MVV-LVA), promotions, killers, history. Each tier occupies a disjoint range so
// a move's coarse classification always outranks a finer distinction within a lower tier.
const (
	ttMoveTier    board.MovePriority = 32000
	captureTier   board.MovePriority = 20000
	promotionTier board.MovePriority = 15000
	killer0Tier   board.MovePriority = 12000
	killer1Tier   board.MovePriority = 11000
	historyMax    board.MovePriority = 10000
)

// orderMoves ranks tt first, then captures by MVV-LVA, then promotions, then this ply's
// killers, then the history heuristic, with ordinary quiet moves scored zero.
func orderMoves(tt board.Move, k0, k1 board.Move, h *history) board.MovePriorityFn {
	hasTT := tt.Piece != board.NoPiece
	hasK0 := k0.Piece != board.NoPiece
	hasK1 := k1.Piece != board.NoPiece

	return func(m board.Move) board.MovePriority {
		switch {
		case hasTT && tt.Equals(m):
			return ttMoveTier
		case m.IsCapture():
			return captureTier + captureScore(m)
		case m.IsPromotion():
			return promotionTier + board.MovePriority(eval.NominalValue(m.Promotion))
		case hasK0 && k0.Equals(m):
			return killer0Tier
		case hasK1 && k1.Equals(m):
			return killer1Tier
		default:
			return clampPriority(board.MovePriority(h.get(m.Piece, m.To)))
		}
	}
}

// captureScore is a clamped MVV-LVA delta, kept strictly within the capture tier's range
// regardless of the (bounded) piece values involved.
func captureScore(m board.Move) board.MovePriority {
	victim := eval.NominalValue(m.Capture)
	if m.Type == board.CapturePromotion {
		victim += eval.NominalValue(m.Promotion)
	}
	attacker := eval.NominalValue(m.Piece)

	raw := int32(10*victim) - int32(attacker)
	switch {
	case raw < 0:
		raw = 0
	case raw > 9000:
		raw = 9000
	}
	return board.MovePriority(raw)
}

func clampPriority(v board.MovePriority) board.MovePriority {
	switch {
	case v < 0:
		return 0
	case v > historyMax:
		return historyMax
	default:
		return v
	}
}

// ttCutoff reports whether a transposition table entry of the given bound and depth
// resolves the current node outright, per the stored-depth-at-least-current-depth rule:
// an exact entry returns its score; a lower bound that already meets beta returns beta; an
// upper bound that already falls below alpha returns alpha.
func ttCutoff(bound Bound, storedDepth, depth int, score, alpha, beta eval.Score) (eval.Score, bool) {
	if storedDepth < depth {
		return eval.InvalidScore, false
	}
	switch bound {
	case ExactBound:
		return score, true
	case LowerBound:
		if score >= beta {
			return beta, true
		}
	case UpperBound:
		if score <= alpha {
			return alpha, true
		}
	}
	return eval.InvalidScore, false
}

// classifyBound derives the TT bound kind for a completed search: a fail-low result (no
// improvement over the original alpha) only bounds the true score from above; a fail-high
// (beta cutoff) only bounds it from below; anything between is exact.
func classifyBound(best, origAlpha, beta eval.Score) Bound {
	switch {
	case best <= origAlpha:
		return UpperBound
	case best >= beta:
		return LowerBound
	default:
		return ExactBound
	}
}

// nonRootDrawScore applies contempt in place of an otherwise-zero draw score, for any node
// but the root: a position that has recurred once (repetition_count reaches 2, one more
// repeat away from a draw claim, but not adjudicated yet) scores as a small loss rather than
// dead equal, steering the side to move away from a repetition it still has the chance to
// avoid; an adjudicated draw (threefold repetition, fifty-move rule, insufficient material)
// scores as a larger loss, since by then there is no line left that avoids it. ok is false if
// the position is not a draw and hasn't recurred.
func nonRootDrawScore(b *board.Board) (eval.Score, bool) {
	if b.Result().Outcome == board.Draw {
		return -2 * contempt, true
	}
	if b.HashCount() >= 2 {
		return -contempt, true
	}
	return 0, false
}
