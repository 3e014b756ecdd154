package search

import (
	"context"
	"github.com/vantage-chess/vantage/pkg/board"
	"github.com/vantage-chess/vantage/pkg/eval"
)

// Exploration defines move selection and priority in a given position. Limited exploration is required
// by quiescence search and can be used for forward pruning in full search. Default: explore all
// moves in MVVLVA order.
type Exploration func(ctx context.Context, b *board.Board) (board.MovePriorityFn, board.MovePredicateFn)

// FullExploration explores every move, ordered by MVV-LVA. Used by full-width search.
func FullExploration(ctx context.Context, b *board.Board) (board.MovePriorityFn, board.MovePredicateFn) {
	return MVVLVA, IsAnyMove
}

// QuiescenceExploration explores promotions and captures that aren't simply losing material,
// the standard quiescence restriction to keep the search horizon from missing tactics. Capture
// safety is judged by static exchange evaluation rather than a plain "is it attacked" check, so
// a capture that wins material deeper in an exchange sequence is still explored.
func QuiescenceExploration(ctx context.Context, b *board.Board) (board.MovePriorityFn, board.MovePredicateFn) {
	side := b.Turn()
	pos := b.Position()
	predicate := func(m board.Move) bool {
		switch {
		case m.IsPromotion():
			return true
		case m.IsCapture():
			return eval.StaticExchangeEvaluation(pos, side, m) >= 0
		default:
			return false
		}
	}
	return MVVLVA, predicate
}

// NoExploration explores nothing, used to disable quiescence search entirely.
func NoExploration(ctx context.Context, b *board.Board) (board.MovePriorityFn, board.MovePredicateFn) {
	return MVVLVA, NoMove
}

// Selection returns a move order and priority for exploring the given moves.
func Selection(list []board.Move) (board.MovePriorityFn, board.MovePredicateFn) {
	rank := map[board.Move]board.MovePriority{}
	for i, m := range list {
		rank[m] = board.MovePriority(len(list) - i)
	}

	priority := func(move board.Move) board.MovePriority {
		return rank[move]
	}
	pick := func(move board.Move) bool {
		_, ok := rank[move]
		return ok
	}
	return priority, pick
}

// MVVLVA implements the MVV-LVA move priority.
func MVVLVA(m board.Move) board.MovePriority {
	if p := board.MovePriority(10 * eval.NominalValueGain(m)); p > 0 {
		return p - board.MovePriority(eval.NominalValue(m.Piece))
	}
	return 0
}

// IsAnyMove selects all moves.
func IsAnyMove(m board.Move) bool {
	return true
}

// NoMove selects no moves.
func NoMove(m board.Move) bool {
	return false
}
