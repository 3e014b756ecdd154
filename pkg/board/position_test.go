package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantage-chess/vantage/pkg/board"
	"github.com/vantage-chess/vantage/pkg/board/fen"
)

func TestMakeMoveHalfmovePawnResets(t *testing.T) {
	pos, _, _, _, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 12 7")
	require.NoError(t, err)

	moves := pos.PseudoLegalMoves()
	var m board.Move
	for _, mm := range moves {
		if mm.Piece == board.Pawn && mm.From == board.E2 && mm.To == board.E4 {
			m = mm
		}
	}
	require.NotZero(t, m.Piece)

	pos.MakeMove(m)
	assert.Equal(t, 0, pos.Halfmove())
}

func TestMakeMoveHalfmoveCaptureResets(t *testing.T) {
	pos, _, _, _, err := fen.Decode("4k3/8/8/8/8/3n4/3R4/4K3 w - - 9 20")
	require.NoError(t, err)

	moves := pos.PseudoLegalMoves()
	var m board.Move
	for _, mm := range moves {
		if mm.Piece == board.Rook && mm.To == board.D3 {
			m = mm
		}
	}
	require.NotZero(t, m.Piece)

	pos.MakeMove(m)
	assert.Equal(t, 0, pos.Halfmove())
}

// Castling moves the king and rook but captures nothing and is not a pawn move, so the
// halfmove clock must increment rather than reset.
func TestMakeMoveHalfmoveCastlingIncrements(t *testing.T) {
	pos, _, _, _, err := fen.Decode("4k3/8/8/8/8/8/8/R3K2R w KQ - 11 30")
	require.NoError(t, err)

	moves := pos.PseudoLegalMoves()
	var m board.Move
	for _, mm := range moves {
		if mm.Type == board.KingSideCastle {
			m = mm
		}
	}
	require.Equal(t, board.KingSideCastle, m.Type)

	pos.MakeMove(m)
	assert.Equal(t, 12, pos.Halfmove())
}
