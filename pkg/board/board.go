// Package board contains chess board representation and utilities: bit-set primitives,
// position make/unmake, move generation, Zobrist hashing, and game-level draw adjudication.
package board

import "fmt"

const (
	repetition3Limit  = 3
	repetition5Limit  = 5
	noprogressHalfmove = 100 // fifty-move rule, counted in halfmoves
)

// Board wraps a mutable Position with the game-level history needed to adjudicate draws:
// repetition counts and a LIFO undo stack. Not thread-safe; callers share a Board across
// goroutines at their own risk (see pkg/search/searchctl for how the parallel coordinator copies one
// Board per worker instead).
type Board struct {
	pos *Position

	history     []UndoRecord
	hashCounts  map[ZobristHash]int
	result      Result
}

// NewBoard wraps an existing position for play.
func NewBoard(pos *Position) *Board {
	b := &Board{
		pos:        pos,
		hashCounts: map[ZobristHash]int{pos.Hash(): 1},
	}
	return b
}

func (b *Board) Position() *Position  { return b.pos }
func (b *Board) Turn() Color          { return b.pos.Turn() }
func (b *Board) Result() Result       { return b.result }
func (b *Board) Hash() ZobristHash    { return b.pos.Hash() }
func (b *Board) Ply() int             { return len(b.history) }

// HashCount returns the number of times the current position's hash has occurred so far
// in this board's history, including the current occurrence. Used by search to detect an
// approaching repetition before the board-level threefold/fivefold adjudication fires.
func (b *Board) HashCount() int { return b.hashCounts[b.pos.Hash()] }

// Fork returns an independent deep copy of the board, safe to mutate (e.g. via PushMove)
// without affecting the original. Used to hand a search goroutine its own board to walk.
func (b *Board) Fork() *Board {
	pos := *b.pos
	counts := make(map[ZobristHash]int, len(b.hashCounts))
	for k, v := range b.hashCounts {
		counts[k] = v
	}
	return &Board{
		pos:        &pos,
		history:    append([]UndoRecord(nil), b.history...),
		hashCounts: counts,
		result:     b.result,
	}
}

// PushMove attempts to make a pseudo-legal move. Returns false if illegal (leaves the
// mover in check); the board is left unchanged in that case.
func (b *Board) PushMove(m Move) bool {
	if b.result.IsDecided() {
		return false
	}
	if !b.pos.IsLegal(m) {
		return false
	}

	u := b.pos.MakeMove(m)
	b.history = append(b.history, u)
	b.hashCounts[b.pos.Hash()]++

	b.updateResult(m)
	return true
}

// PushNullMove passes the side to move, for null-move search pruning. Caller must ensure
// the side to move is not in check and must reverse with PopNullMove before any other
// operation on this board. Does not affect repetition history or game result.
func (b *Board) PushNullMove() NullMoveRecord {
	return b.pos.MakeNullMove()
}

// PopNullMove reverses a PushNullMove.
func (b *Board) PopNullMove(u NullMoveRecord) {
	b.pos.UnmakeNullMove(u)
}

// PopMove reverses the last move, if any.
func (b *Board) PopMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}

	n := len(b.history) - 1
	u := b.history[n]

	b.hashCounts[b.pos.Hash()]--
	b.history = b.history[:n]
	b.pos.UnmakeMove(u)
	b.result = Result{} // a legal move existed, so the prior position was not terminal

	return u.Move, true
}

// LastMove returns the most recently made move, if any.
func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1].Move, true
}

// AdjudicateNoLegalMoves adjudicates the position assuming no legal moves exist: the
// result is then either Checkmate or Stalemate. Callers must establish the precondition
// themselves, typically by observing that search found zero legal moves.
func (b *Board) AdjudicateNoLegalMoves() Result {
	turn := b.Turn()
	result := Result{Outcome: Draw, Reason: Stalemate}
	if b.pos.IsChecked(turn) {
		result = Result{Outcome: Loss(turn), Reason: Checkmate}
	}
	b.result = result
	return result
}

func (b *Board) updateResult(m Move) {
	hash := b.pos.Hash()
	if count := b.hashCounts[hash]; count >= repetition3Limit {
		switch {
		case count >= repetition5Limit:
			b.result = Result{Outcome: Draw, Reason: Repetition5}
		default:
			b.result = Result{Outcome: Draw, Reason: Repetition3}
		}
		return
	}

	if b.pos.Halfmove() >= noprogressHalfmove {
		b.result = Result{Outcome: Draw, Reason: NoProgress}
		return
	}

	if m.IsCapture() || m.IsPromotion() {
		if b.pos.HasInsufficientMaterial() {
			b.result = Result{Outcome: Draw, Reason: InsufficientMaterial}
		}
	}
}

func (b *Board) String() string {
	return fmt.Sprintf("board{pos=%v, hash=%x, halfmove=%v, fullmove=%v, result=%v}",
		b.pos, b.pos.Hash(), b.pos.Halfmove(), b.pos.Fullmove(), b.result)
}
