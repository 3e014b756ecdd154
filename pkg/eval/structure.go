package eval

import "github.com/vantage-chess/vantage/pkg/board"

const (
	doubledPawnPenalty    Score = -15
	isolatedPawnPenalty   Score = -20
	defendedPawnBonus     Score = 5
	bishopPairBonus       Score = 50
	rookOpenFileBonus     Score = 25
	rookSemiOpenFileBonus Score = 15
	rookSeventhRankBonus  Score = 30
	centerPawnBonus       Score = 15

	knightMobilityWeight Score = 4
	bishopMobilityWeight Score = 5
	rookMobilityWeight   Score = 3
	queenMobilityWeight  Score = 2
)

// passedPawnRankBonus[r], r = sq.Rank() from the pawn's own perspective (0 = own 1st rank, 6
// = own 7th rank, one step from promotion), gives the non-linear bonus for a passed pawn on
// that rank; ranks 0 and 7 are never reachable by a pawn of its own color and score 0.
var passedPawnRankBonus = [board.NumRanks]Score{0, 10, 20, 35, 60, 100, 150, 0}

// pawnStructure scores doubled, isolated, passed and defended pawns from white's perspective.
// The scoring is symmetric by construction: both colors are evaluated with the same per-file
// logic, so there is no special-casing for which side is "above" or "below" the mirror line.
func pawnStructure(pos *board.Position) Score {
	var score Score
	for c := board.ZeroColor; c < board.NumColors; c++ {
		unit := Score(1)
		if c == board.Black {
			unit = -1
		}

		pawns := pos.Bitboard(c, board.Pawn)
		opp := pos.Bitboard(c.Opponent(), board.Pawn)

		for f := board.ZeroFile; f < board.NumFiles; f++ {
			onFile := pawns & board.BitFile(f)
			count := onFile.PopCount()
			if count > 1 {
				score += unit * doubledPawnPenalty * Score(count-1)
			}
			if count == 0 {
				continue
			}

			adjacent := board.EmptyBitboard
			if f > board.FileA {
				adjacent |= board.BitFile(f - 1)
			}
			if f < board.FileH {
				adjacent |= board.BitFile(f + 1)
			}
			if pawns&adjacent == 0 {
				score += unit * isolatedPawnPenalty * Score(count)
			}

			for bb := onFile; bb != 0; bb &= bb - 1 {
				sq := bb.LastPopSquare()
				if isPassedPawn(sq, c, opp) {
					rank := int(sq.Rank())
					if c == board.Black {
						rank = 7 - rank
					}
					score += unit * passedPawnRankBonus[rank]
				}
				if isDefendedByPawn(sq, c, pawns) {
					score += unit * defendedPawnBonus
				}
			}
		}
	}
	return score
}

// isPassedPawn reports whether the pawn at sq has no opposing pawn able to stop or capture
// it on its own file or an adjacent file, ahead of it.
func isPassedPawn(sq board.Square, c board.Color, oppPawns board.Bitboard) bool {
	f := sq.File()
	var files board.Bitboard
	files |= board.BitFile(f)
	if f > board.FileA {
		files |= board.BitFile(f - 1)
	}
	if f < board.FileH {
		files |= board.BitFile(f + 1)
	}

	var ahead board.Bitboard
	if c == board.White {
		for r := int(sq.Rank()) + 1; r < int(board.NumRanks); r++ {
			ahead |= board.BitRank(board.Rank(r))
		}
	} else {
		for r := int(sq.Rank()) - 1; r >= 0; r-- {
			ahead |= board.BitRank(board.Rank(r))
		}
	}

	return oppPawns&files&ahead == 0
}

// isDefendedByPawn reports whether sq is defended by a friendly pawn diagonally behind it.
func isDefendedByPawn(sq board.Square, c board.Color, ownPawns board.Bitboard) bool {
	f, r := sq.File(), int(sq.Rank())
	behind := r - 1
	if c == board.Black {
		behind = r + 1
	}
	if behind < 0 || behind >= int(board.NumRanks) {
		return false
	}

	var defenders board.Bitboard
	if f > board.FileA {
		defenders |= board.BitMask(board.NewSquare(f-1, board.Rank(behind)))
	}
	if f < board.FileH {
		defenders |= board.BitMask(board.NewSquare(f+1, board.Rank(behind)))
	}
	return ownPawns&defenders != 0
}

// centerPawns rewards pawns occupying one of the four central squares, the classic proxy for
// space and central control that file/rank structure alone doesn't capture.
func centerPawns(pos *board.Position) Score {
	var score Score
	center := board.BitMask(board.D4) | board.BitMask(board.E4) | board.BitMask(board.D5) | board.BitMask(board.E5)
	for c := board.ZeroColor; c < board.NumColors; c++ {
		unit := Score(1)
		if c == board.Black {
			unit = -1
		}
		score += unit * centerPawnBonus * Score((pos.Bitboard(c, board.Pawn) & center).PopCount())
	}
	return score
}

// rookPlacement rewards rooks on open (no pawns of either color) and semi-open (no own
// pawn) files, and on the seventh rank (rank 7 for white, rank 2 for black), standard
// proxies for rook activity that mobility alone underweights.
func rookPlacement(pos *board.Position) Score {
	var score Score
	for c := board.ZeroColor; c < board.NumColors; c++ {
		unit := Score(1)
		seventh := board.Rank7
		if c == board.Black {
			unit = -1
			seventh = board.Rank2
		}

		own := pos.Bitboard(c, board.Pawn)
		opp := pos.Bitboard(c.Opponent(), board.Pawn)

		for bb := pos.Bitboard(c, board.Rook); bb != 0; bb &= bb - 1 {
			sq := bb.LastPopSquare()
			file := board.BitFile(sq.File())

			switch {
			case own&file == 0 && opp&file == 0:
				score += unit * rookOpenFileBonus
			case own&file == 0:
				score += unit * rookSemiOpenFileBonus
			}

			if sq.Rank() == seventh {
				score += unit * rookSeventhRankBonus
			}
		}
	}
	return score
}

// bishopPair rewards holding both bishops, which together cover every square color.
func bishopPair(pos *board.Position) Score {
	var score Score
	for c := board.ZeroColor; c < board.NumColors; c++ {
		unit := Score(1)
		if c == board.Black {
			unit = -1
		}
		if pos.Bitboard(c, board.Bishop).PopCount() >= 2 {
			score += unit * bishopPairBonus
		}
	}
	return score
}

// mobility rewards the count of squares each side's knights/bishops/rooks/queens can move
// to, weighted per piece type: knights and bishops gain the most from extra mobility, queens
// the least since they're already mobile by material value alone.
func mobility(pos *board.Position) Score {
	var score Score
	occupied := pos.Occupied()

	weights := map[board.Piece]Score{
		board.Knight: knightMobilityWeight,
		board.Bishop: bishopMobilityWeight,
		board.Rook:   rookMobilityWeight,
		board.Queen:  queenMobilityWeight,
	}

	for c := board.ZeroColor; c < board.NumColors; c++ {
		unit := Score(1)
		if c == board.Black {
			unit = -1
		}
		own := pos.Bitboard(c, board.NoPiece)

		for _, p := range []board.Piece{board.Knight, board.Bishop, board.Rook, board.Queen} {
			for bb := pos.Bitboard(c, p); bb != 0; bb &= bb - 1 {
				sq := bb.LastPopSquare()
				moves := board.Attackboard(occupied, sq, p) &^ own
				score += unit * weights[p] * Score(moves.PopCount())
			}
		}
	}
	return score
}
