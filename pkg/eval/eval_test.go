package eval_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantage-chess/vantage/pkg/board"
	"github.com/vantage-chess/vantage/pkg/board/fen"
	"github.com/vantage-chess/vantage/pkg/eval"
)

func newBoard(t *testing.T, record string) *board.Board {
	t.Helper()
	pos, _, _, _, err := fen.Decode(record)
	require.NoError(t, err)
	return board.NewBoard(pos)
}

func TestStaticEvaluateSymmetricStartPos(t *testing.T) {
	b := newBoard(t, fen.Initial)
	assert.Equal(t, eval.Score(0), eval.Static{}.Evaluate(context.Background(), b))
}

func TestStaticEvaluateMaterialAdvantage(t *testing.T) {
	b := newBoard(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1") // white up a rook
	score := eval.Static{}.Evaluate(context.Background(), b)
	assert.Greater(t, score, eval.Score(0))
}

func TestNominalValueGain(t *testing.T) {
	m := board.Move{Type: board.Capture, Capture: board.Queen}
	assert.Equal(t, eval.NominalValue(board.Queen), eval.NominalValueGain(m))
}
