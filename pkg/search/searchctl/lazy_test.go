package searchctl_test

import (
	"context"
	"testing"

	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantage-chess/vantage/pkg/board"
	"github.com/vantage-chess/vantage/pkg/board/fen"
	"github.com/vantage-chess/vantage/pkg/eval"
	"github.com/vantage-chess/vantage/pkg/search"
	"github.com/vantage-chess/vantage/pkg/search/searchctl"
)

func TestLazyFindsMove(t *testing.T) {
	ctx := context.Background()

	pos, _, _, _, err := fen.Decode("k7/7R/6R1/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(pos)

	l := &searchctl.Lazy{
		Root:    search.AlphaBeta{Eval: search.ZeroPly{Eval: search.Static{}}},
		Workers: 3,
	}

	_, out := l.Launch(ctx, b, search.NewTranspositionTable(ctx, 1<<20), eval.Random{}, searchctl.Options{})

	var last search.PV
	for pv := range out {
		last = pv
	}

	assert.NotEmpty(t, last.Moves)
	assert.Equal(t, eval.MateInXScore(1), last.Score)
}

func TestLazySingleWorkerMatchesIterative(t *testing.T) {
	ctx := context.Background()

	pos, _, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	b := board.NewBoard(pos)

	l := &searchctl.Lazy{
		Root:    search.AlphaBeta{Eval: search.ZeroPly{Eval: search.Static{}}},
		Workers: 1,
	}

	opt := searchctl.Options{DepthLimit: lang.Some(uint(4))}
	h, out := l.Launch(ctx, b, search.NoTranspositionTable{}, eval.Random{}, opt)
	for range out {
	}
	pv := h.Halt()

	it := &searchctl.Iterative{Root: l.Root}
	ih, iout := it.Launch(ctx, b.Fork(), search.NoTranspositionTable{}, eval.Random{}, opt)
	for range iout {
	}
	ipv := ih.Halt()

	assert.Equal(t, ipv.Score, pv.Score)
}
