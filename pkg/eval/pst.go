package eval

import "github.com/vantage-chess/vantage/pkg/board"

// Piece-square tables, in the conventional presentation order: rank 8 first, file a to h,
// down to rank 1 last. fromWhiteView re-indexes them into the engine's own a1=0 square
// numbering at init time, so the literal tables below read the way they're normally
// published (e.g. Tomasz Michniewski's "simplified evaluation function").
var (
	pawnMG = fromWhiteView([64]Score{
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	})

	knightPST = fromWhiteView([64]Score{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	})

	bishopPST = fromWhiteView([64]Score{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	})

	rookPST = fromWhiteView([64]Score{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	})

	queenPST = fromWhiteView([64]Score{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	})

	kingMG = fromWhiteView([64]Score{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	})

	kingEG = fromWhiteView([64]Score{
		-50, -40, -30, -20, -20, -30, -40, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -30, -30, -30, -30, -30, -30, -50,
	})
)

// fromWhiteView reindexes a table given in rank8-to-rank1 presentation order into the
// engine's a1=0, file-major square numbering.
func fromWhiteView(t [64]Score) [64]Score {
	var ret [64]Score
	for presented, v := range t {
		rankFromTop, file := presented/8, presented%8
		rank := 7 - rankFromTop
		ret[board.NewSquare(board.File(file), board.Rank(rank))] = v
	}
	return ret
}

// taperedPST returns a piece's positional bonus at sq (already mirrored for black). Only the
// King has a distinct endgame table, selected by a binary switch on both sides' remaining
// material rather than a continuous taper: other pieces keep a single table throughout.
func taperedPST(p board.Piece, sq board.Square, endgame bool) Score {
	switch p {
	case board.Pawn:
		return pawnMG[sq]
	case board.Knight:
		return knightPST[sq]
	case board.Bishop:
		return bishopPST[sq]
	case board.Rook:
		return rookPST[sq]
	case board.Queen:
		return queenPST[sq]
	case board.King:
		if endgame {
			return kingEG[sq]
		}
		return kingMG[sq]
	default:
		return 0
	}
}
