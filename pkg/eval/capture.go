package eval

import (
	"sort"

	"github.com/vantage-chess/vantage/pkg/board"
)

var officers = []board.Piece{board.King, board.Queen, board.Rook, board.Knight, board.Bishop}

// FindCapture returns the pieces of the given color that directly target the square.
func FindCapture(pos *board.Position, side board.Color, sq board.Square) []board.Placement {
	var ret []board.Placement

	for _, piece := range officers {
		bb := board.Attackboard(pos.Occupied(), sq, piece) & pos.Bitboard(side, piece)
		for _, from := range bb.PopSquares() {
			ret = append(ret, board.Placement{Piece: piece, Color: side, Square: from})
		}
	}

	bb := board.PawnCaptureboard(side.Opponent() /* reverse direction */, board.BitMask(sq)) & pos.Bitboard(side, board.Pawn)
	for _, from := range bb.PopSquares() {
		ret = append(ret, board.Placement{Piece: board.Pawn, Color: side, Square: from})
	}

	return ret
}

// SortByNominalValue orders the placement list by nominal material value, low to high.
func SortByNominalValue(pieces []board.Placement) []board.Placement {
	sort.SliceStable(pieces, func(i, j int) bool {
		return NominalValue(pieces[i].Piece) < NominalValue(pieces[j].Piece)
	})
	return pieces
}

// exchangeBoard is a scratch copy of the per-color, per-piece bitboards needed to replay a
// capture sequence on a square without mutating the real position.
type exchangeBoard struct {
	occupied board.Bitboard
	pieces   [board.NumColors][board.NumPieces]board.Bitboard
}

func newExchangeBoard(pos *board.Position) exchangeBoard {
	var e exchangeBoard
	e.occupied = pos.Occupied()
	for c := board.ZeroColor; c < board.NumColors; c++ {
		for p := board.Pawn; p <= board.King; p++ {
			e.pieces[c][p] = pos.Bitboard(c, p)
		}
	}
	return e
}

func (e *exchangeBoard) remove(c board.Color, p board.Piece, sq board.Square) {
	mask := board.BitMask(sq)
	e.occupied &^= mask
	e.pieces[c][p] &^= mask
}

// leastValuableAttacker returns the cheapest piece of the given color attacking sq under the
// scratch occupancy, along with its square, or false if the side has no attacker left.
func (e *exchangeBoard) leastValuableAttacker(side board.Color, sq board.Square) (board.Square, board.Piece, bool) {
	bb := board.PawnCaptureboard(side.Opponent(), board.BitMask(sq)) & e.pieces[side][board.Pawn]
	if bb != 0 {
		return bb.LastPopSquare(), board.Pawn, true
	}
	for _, piece := range []board.Piece{board.Knight, board.Bishop, board.Rook, board.Queen, board.King} {
		bb := board.Attackboard(e.occupied, sq, piece) & e.pieces[side][piece]
		if bb != 0 {
			return bb.LastPopSquare(), piece, true
		}
	}
	return board.ZeroSquare, board.NoPiece, false
}

// StaticExchangeEvaluation estimates the net material result, in nominal centi-pawns, of
// playing the capture m and then letting both sides recapture on m.To with their least
// valuable attacker until the square is quiet. It ignores pins, so it can over- or
// under-estimate the true exchange value in rare positions, but it is exact enough to reject
// clearly losing captures in quiescence search. Returns 0 if m is not a capture.
func StaticExchangeEvaluation(pos *board.Position, side board.Color, m board.Move) Score {
	if !m.IsCapture() {
		return 0
	}

	e := newExchangeBoard(pos)

	captured := m.Capture
	if sq, ok := m.EnPassantCapture(); ok {
		e.remove(side.Opponent(), board.Pawn, sq)
	}
	e.remove(side, m.Piece, m.From)

	gain := make([]Score, 1, 16)
	gain[0] = NominalValue(captured)

	attacker := m.Piece
	toMove := side.Opponent()
	for {
		from, piece, ok := e.leastValuableAttacker(toMove, m.To)
		if !ok {
			break
		}
		gain = append(gain, NominalValue(attacker)-gain[len(gain)-1])
		e.remove(toMove, piece, from)
		attacker = piece
		toMove = toMove.Opponent()
	}

	for i := len(gain) - 1; i > 0; i-- {
		if loss := -gain[i]; loss < gain[i-1] {
			gain[i-1] = loss
		}
	}
	return gain[0]
}
