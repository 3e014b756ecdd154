package board

// PseudoLegalMoves generates all pseudo-legal moves for the side to move: moves that obey
// piece movement rules and castling/en-passant preconditions, but may leave the mover's own
// king in check. Callers filter for legality via IsLegal or LegalMoves.
func (p *Position) PseudoLegalMoves() []Move {
	var ret []Move
	c := p.turn
	own := p.bb[c][NoPiece]

	ret = append(ret, p.pawnMoves(c)...)

	for _, piece := range []Piece{Knight, Bishop, Rook, Queen, King} {
		origin := p.bb[c][piece]
		for origin != 0 {
			from := origin.LastPopSquare()
			origin &= origin - 1

			targets := Attackboard(p.occupied, from, piece) &^ own
			for targets != 0 {
				to := targets.LastPopSquare()
				targets &= targets - 1

				if _, capture, ok := p.Square(to); ok {
					ret = append(ret, Move{Type: Capture, From: from, To: to, Piece: piece, Capture: capture})
				} else {
					ret = append(ret, Move{Type: Normal, From: from, To: to, Piece: piece})
				}
			}
		}
	}

	ret = append(ret, p.castlingMoves(c)...)
	return ret
}

func (p *Position) pawnMoves(c Color) []Move {
	var ret []Move

	pawns := p.bb[c][Pawn]
	promoRank := PawnPromotionRank(c)
	promoPieces := []Piece{Queen, Rook, Bishop, Knight}

	for bb := pawns; bb != 0; bb &= bb - 1 {
		from := bb.LastPopSquare()

		single := PawnMoveboard(p.occupied, c, BitMask(from))
		if single != 0 {
			to := single.LastPopSquare()
			if single&promoRank != 0 {
				for _, promo := range promoPieces {
					ret = append(ret, Move{Type: Promotion, From: from, To: to, Piece: Pawn, Promotion: promo})
				}
			} else {
				ret = append(ret, Move{Type: Push, From: from, To: to, Piece: Pawn})

				if BitMask(from)&PawnStartRank(c) != 0 {
					double := PawnMoveboard(p.occupied, c, single)
					if double != 0 {
						ret = append(ret, Move{Type: Jump, From: from, To: double.LastPopSquare(), Piece: Pawn})
					}
				}
			}
		}

		captures := PawnCaptureboard(c, BitMask(from)) & p.bb[c.Opponent()][NoPiece]
		for t := captures; t != 0; t &= t - 1 {
			to := t.LastPopSquare()
			_, captured, _ := p.Square(to)

			if BitMask(to)&promoRank != 0 {
				for _, promo := range promoPieces {
					ret = append(ret, Move{Type: CapturePromotion, From: from, To: to, Piece: Pawn, Promotion: promo, Capture: captured})
				}
			} else {
				ret = append(ret, Move{Type: Capture, From: from, To: to, Piece: Pawn, Capture: captured})
			}
		}

		if ep, ok := p.EnPassant(); ok {
			if PawnCaptureboard(c, BitMask(from))&BitMask(ep) != 0 {
				ret = append(ret, Move{Type: EnPassant, From: from, To: ep, Piece: Pawn, Capture: Pawn})
			}
		}
	}

	return ret
}

func (p *Position) castlingMoves(c Color) []Move {
	var ret []Move
	if p.IsChecked(c) {
		return ret // cannot castle out of check
	}

	var kingSide, queenSide Castling
	var from, kTo, qTo Square
	if c == White {
		kingSide, queenSide = WhiteKingSideCastle, WhiteQueenSideCastle
		from, kTo, qTo = E1, G1, C1
	} else {
		kingSide, queenSide = BlackKingSideCastle, BlackQueenSideCastle
		from, kTo, qTo = E8, G8, C8
	}

	if p.castling.IsAllowed(kingSide) {
		f1, g1 := from+1, from+2
		if p.IsEmpty(f1) && p.IsEmpty(g1) && !p.IsAttacked(c, f1) && !p.IsAttacked(c, g1) {
			ret = append(ret, Move{Type: KingSideCastle, From: from, To: kTo, Piece: King})
		}
	}
	if p.castling.IsAllowed(queenSide) {
		d1, c1, b1 := from-1, from-2, from-3
		if p.IsEmpty(d1) && p.IsEmpty(c1) && p.IsEmpty(b1) && !p.IsAttacked(c, d1) && !p.IsAttacked(c, c1) {
			ret = append(ret, Move{Type: QueenSideCastle, From: from, To: qTo, Piece: King})
		}
	}
	return ret
}

// LegalMoves generates all legal moves for the side to move, filtering PseudoLegalMoves by
// make/test-check/unmake: a move is legal iff it does not leave the mover's own king in check.
// This implementation intentionally does not detect pins ahead of time (see IsLegal).
func (p *Position) LegalMoves() []Move {
	pseudo := p.PseudoLegalMoves()
	ret := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if p.IsLegal(m) {
			ret = append(ret, m)
		}
	}
	return ret
}

// IsLegal reports whether the pseudo-legal move m is legal: making it does not leave the
// mover's own king in check. It applies the move, tests check, and unmakes it again.
func (p *Position) IsLegal(m Move) bool {
	turn := p.turn
	u := p.MakeMove(m)
	ok := !p.IsChecked(turn)
	p.UnmakeMove(u)
	return ok
}

// ResolveMove matches a bare from/to/promotion triple (as parsed from coordinate notation)
// against the position's legal moves, filling in the contextual metadata (capture, castle,
// en passant, piece type) the bare notation omits. Returns false if no legal move matches.
func (p *Position) ResolveMove(from, to Square, promotion Piece) (Move, bool) {
	for _, m := range p.LegalMoves() {
		if m.From == from && m.To == to && m.Promotion == promotion {
			return m, true
		}
	}
	return Move{}, false
}

// Perft counts the number of leaf nodes reachable in exactly depth plies from p. It is a
// standard move-generator correctness/performance diagnostic.
func Perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, m := range p.LegalMoves() {
		u := p.MakeMove(m)
		nodes += Perft(p, depth-1)
		p.UnmakeMove(u)
	}
	return nodes
}

// PerftDivide behaves like Perft but breaks the node count down by root move, useful for
// isolating move-generator discrepancies against a reference engine.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	ret := map[Move]uint64{}
	if depth == 0 {
		return ret
	}

	for _, m := range p.LegalMoves() {
		u := p.MakeMove(m)
		ret[m] = Perft(p, depth-1)
		p.UnmakeMove(u)
	}
	return ret
}
