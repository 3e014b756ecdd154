package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantage-chess/vantage/pkg/board"
	"github.com/vantage-chess/vantage/pkg/board/fen"
)

var testZT = board.NewZobristTable(1)

func mustPosition(t *testing.T, pieces []board.Placement, turn board.Color, castling board.Castling, ep board.Square) *board.Position {
	t.Helper()
	pos, err := board.NewPosition(pieces, turn, castling, ep, 0, 1, testZT)
	require.NoError(t, err)
	return pos
}

func TestPseudoLegalMovesPawns(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{board.E1, board.White, board.King},
		{board.E8, board.Black, board.King},
		{board.E2, board.White, board.Pawn},
		{board.G5, board.White, board.Pawn},
	}, board.White, 0, board.NoSquare)

	moves := pos.PseudoLegalMoves()
	var pawnMoves []board.Move
	for _, m := range moves {
		if m.Piece == board.Pawn {
			pawnMoves = append(pawnMoves, m)
		}
	}

	assert.Len(t, pawnMoves, 3) // E2-E3, E2-E4, G5-G6
}

func TestPseudoLegalMovesPromotion(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{board.E1, board.White, board.King},
		{board.H8, board.Black, board.King},
		{board.D7, board.White, board.Pawn},
	}, board.White, 0, board.NoSquare)

	var promos []board.Move
	for _, m := range pos.PseudoLegalMoves() {
		if m.Type == board.Promotion {
			promos = append(promos, m)
		}
	}
	assert.Len(t, promos, 4)
}

func TestPseudoLegalMovesEnPassant(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{board.E1, board.White, board.King},
		{board.E8, board.Black, board.King},
		{board.C4, board.Black, board.Pawn},
		{board.D4, board.White, board.Pawn},
		{board.E4, board.Black, board.Pawn},
	}, board.Black, 0, board.D3)

	var eps []board.Move
	for _, m := range pos.PseudoLegalMoves() {
		if m.Type == board.EnPassant {
			eps = append(eps, m)
		}
	}
	assert.Len(t, eps, 2) // c4xd3, e4xd3
}

func TestCastlingMoves(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{board.E1, board.White, board.King},
		{board.H1, board.White, board.Rook},
		{board.A1, board.White, board.Rook},
		{board.E8, board.Black, board.King},
	}, board.White, board.FullCastingRights, board.NoSquare)

	var castles []board.Move
	for _, m := range pos.PseudoLegalMoves() {
		if m.Type == board.KingSideCastle || m.Type == board.QueenSideCastle {
			castles = append(castles, m)
		}
	}
	assert.Len(t, castles, 2)
}

func TestCastlingBlockedByAttack(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{board.E1, board.White, board.King},
		{board.H1, board.White, board.Rook},
		{board.E8, board.Black, board.King},
		{board.F8, board.Black, board.Rook}, // attacks f1
	}, board.White, board.WhiteKingSideCastle, board.NoSquare)

	for _, m := range pos.PseudoLegalMoves() {
		assert.NotEqual(t, board.KingSideCastle, m.Type)
	}
}

func TestPerftStartPos(t *testing.T) {
	pos, turn, halfmove, fullmove, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	_ = turn
	_ = halfmove
	_ = fullmove

	tests := []struct {
		depth    int
		expected uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, board.Perft(pos, tt.depth))
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	pos, _, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	before := pos.String()
	beforeHash := pos.Hash()

	moves := pos.LegalMoves()
	require.NotEmpty(t, moves)

	for _, m := range moves {
		u := pos.MakeMove(m)
		pos.UnmakeMove(u)
		assert.Equal(t, before, pos.String())
		assert.Equal(t, beforeHash, pos.Hash())
	}
}
