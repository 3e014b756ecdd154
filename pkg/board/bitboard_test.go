package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vantage-chess/vantage/pkg/board"
)

func TestBitboard(t *testing.T) {

	t.Run("popcount", func(t *testing.T) {
		tests := []struct {
			bb       board.Bitboard
			expected int
		}{
			{board.EmptyBitboard, 0},
			{board.BitMask(board.G4), 1},
			{board.BitMask(board.G3) | board.BitMask(board.G4), 2},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.bb.PopCount())
		}
	})

	t.Run("string", func(t *testing.T) {
		tests := []struct {
			bb       board.Bitboard
			expected string
		}{
			{board.EmptyBitboard, "--------/--------/--------/--------/--------/--------/--------/--------"},
			{board.BitMask(board.H1), "--------/--------/--------/--------/--------/--------/--------/-------X"},
			{board.BitMask(board.G3) | board.BitMask(board.G4), "--------/--------/--------/--------/------X-/------X-/--------/--------"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.bb.String())
		}
	})

	t.Run("king", func(t *testing.T) {
		tests := []struct {
			sq       board.Square
			expected string
		}{
			{board.H1, "--------/--------/--------/--------/--------/--------/------XX/------X-"},
			{board.D1, "--------/--------/--------/--------/--------/--------/--XXX---/--X-X---"},
			{board.A8, "-X------/XX------/--------/--------/--------/--------/--------/--------"},
			{board.H8, "------X-/------XX/--------/--------/--------/--------/--------/--------"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, board.KingAttackboard(tt.sq).String())
		}
	})

	t.Run("knight", func(t *testing.T) {
		tests := []struct {
			sq       board.Square
			expected string
		}{
			{board.H1, "--------/--------/--------/--------/--------/------X-/-----X--/--------"},
			{board.D1, "--------/--------/--------/--------/--------/--X-X---/-X---X--/--------"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, board.KnightAttackboard(tt.sq).String())
		}
	})

	t.Run("rook on empty board", func(t *testing.T) {
		tests := []struct {
			sq       board.Square
			expected string
		}{
			{board.H1, "-------X/-------X/-------X/-------X/-------X/-------X/-------X/XXXXXXX-"},
			{board.A6, "X-------/X-------/-XXXXXXX/X-------/X-------/X-------/X-------/X-------"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, board.RookAttackboard(board.EmptyBitboard, tt.sq).String())
		}
	})

	t.Run("rook blocked", func(t *testing.T) {
		occ := board.BitMask(board.H2) | board.BitMask(board.D1)
		assert.Equal(t, "--------/--------/--------/--------/--------/--------/-------X/---XXXX-", board.RookAttackboard(occ, board.H1).String())
	})

	t.Run("bishop on empty board", func(t *testing.T) {
		expected := "X-------/-X-----X/--X---X-/---X-X--/--------/---X-X--/--X---X-/-X-----X"
		assert.Equal(t, expected, board.BishopAttackboard(board.EmptyBitboard, board.E4).String())
	})
}
