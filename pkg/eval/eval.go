package eval

import (
	"context"

	"github.com/vantage-chess/vantage/pkg/board"
)

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score in centi-pawns, from the perspective of the
	// side to move: positive favors the mover.
	Evaluate(ctx context.Context, b *board.Board) Score
}

// Static is the engine's default evaluator. It combines material, piece-square tables (the
// king switching to its endgame table once material is low), pawn structure, rook placement,
// bishop pair, mobility and centre pawns into a single score,
// all computed from white's perspective and then flipped for the side to move.
type Static struct {
	Noise Evaluator // optional additional term, e.g. Random, for Lazy-SMP thread diversity
}

func (s Static) Evaluate(ctx context.Context, b *board.Board) Score {
	pos := b.Position()

	score := materialAndPST(pos) + pawnStructure(pos) + rookPlacement(pos) + bishopPair(pos) + mobility(pos) + centerPawns(pos)
	score *= Unit(b.Turn())

	if s.Noise != nil {
		score += s.Noise.Evaluate(ctx, b)
	}
	return Crop(score)
}

// NominalValue is the absolute nominal value of a piece in centi-pawns. The King has an
// arbitrary large value so it always dominates move ordering heuristics like MVV-LVA.
func NominalValue(p board.Piece) Score {
	if p == board.King {
		return 10000
	}
	return Score(p.Value())
}

// NominalValueGain is the nominal material gain of a move, used for MVV-LVA ordering.
func NominalValueGain(m board.Move) Score {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture:
		return NominalValue(m.Capture)
	case board.EnPassant:
		return NominalValue(board.Pawn)
	default:
		return 0
	}
}

func materialAndPST(pos *board.Position) Score {
	endgame := isEndgame(pos)

	var score Score
	for c := board.ZeroColor; c < board.NumColors; c++ {
		unit := Score(1)
		if c == board.Black {
			unit = -1
		}

		for p := board.Pawn; p <= board.King; p++ {
			bb := pos.Bitboard(c, p)
			score += unit * Score(bb.PopCount()) * NominalValue(p)

			for sq := bb; sq != 0; sq &= sq - 1 {
				at := sq.LastPopSquare()
				rel := at
				if c == board.Black {
					rel = at.MirrorRank()
				}
				score += unit * taperedPST(p, rel, endgame)
			}
		}
	}
	return score
}

// endgameNonKingMaterial is the threshold, in centipawns of non-king material, at or below
// which a side counts as "in the endgame" for king piece-square table selection.
const endgameNonKingMaterial = 1300

// isEndgame reports whether both sides have dropped to endgameNonKingMaterial or less of
// non-king material, the point at which the king should stop hiding and start centralizing.
func isEndgame(pos *board.Position) bool {
	for c := board.ZeroColor; c < board.NumColors; c++ {
		var material Score
		for p := board.Pawn; p < board.King; p++ {
			material += Score(pos.Bitboard(c, p).PopCount()) * Score(p.Value())
		}
		if material > endgameNonKingMaterial {
			return false
		}
	}
	return true
}
