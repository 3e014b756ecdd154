package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantage-chess/vantage/pkg/board"
	"github.com/vantage-chess/vantage/pkg/board/fen"
	"github.com/vantage-chess/vantage/pkg/eval"
	"github.com/vantage-chess/vantage/pkg/search"
)

func newBoard(t *testing.T, record string) *board.Board {
	t.Helper()
	pos, _, _, _, err := fen.Decode(record)
	require.NoError(t, err)
	return board.NewBoard(pos)
}

func TestAlphaBeta(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		fen      string
		depth    int
		expected eval.Score
	}{
		{fen.Initial, 4, eval.ZeroScore},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, eval.ZeroScore},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, eval.ZeroScore},

		{"k7/7R/6R1/8/8/8/8/7K w - - 0 1", 1, eval.MateInXScore(1)},
		{"k7/7R/6R1/8/8/8/8/7K w - - 0 1", 2, eval.MateInXScore(1)},
		{"k7/7R/6R1/8/8/8/8/7K w - - 0 1", 3, eval.MateInXScore(1)},
		{"k7/7R/7R/8/8/8/8/7K w - - 0 1", 4, eval.MateInXScore(3)},
	}

	ab := search.AlphaBeta{Eval: search.ZeroPly{Eval: search.Static{}}}

	t.Run("correctness", func(t *testing.T) {
		for _, tt := range tests {
			b := newBoard(t, tt.fen)

			sctx := &search.Context{TT: search.NoTranspositionTable{}}
			n, actual, _, err := ab.Search(ctx, sctx, b, tt.depth)
			require.NoError(t, err)
			assert.Lessf(t, n, uint64(16000), "too many nodes: %v", tt.fen)
			assert.Equalf(t, tt.expected, actual, "failed: %v", tt.fen)
		}
	})

	t.Run("minimax", func(t *testing.T) {
		if testing.Short() {
			t.Skip("skipping minimax comparison test")
		}

		minimax := search.Minimax{Eval: eval.Static{}}

		for _, tt := range tests {
			b := newBoard(t, tt.fen)

			sctx := &search.Context{TT: search.NoTranspositionTable{}}
			n, actual, _, err := ab.Search(ctx, sctx, b, tt.depth)
			require.NoError(t, err)

			m, expected, _, err := minimax.Search(ctx, b, tt.depth)
			require.NoError(t, err)

			t.Logf("POS: %v; NODES: %v (minimax %v)", tt.fen, n, m)

			assert.LessOrEqualf(t, n, m, "more than minimax nodes: %v", tt.fen)
			assert.Equalf(t, expected, actual, "failed: %v", tt.fen)
		}
	})
}
