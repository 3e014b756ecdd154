package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vantage-chess/vantage/pkg/board"
	"github.com/vantage-chess/vantage/pkg/board/fen"
	"github.com/vantage-chess/vantage/pkg/eval"
)

func TestStaticExchangeEvaluationFreeCapture(t *testing.T) {
	b := newBoard(t, "4k3/8/8/b7/8/8/8/R3K3 w - - 0 1") // white rook takes an undefended bishop

	m := board.Move{Type: board.Capture, From: board.A1, To: board.A5, Piece: board.Rook, Capture: board.Bishop}
	see := eval.StaticExchangeEvaluation(b.Position(), board.White, m)
	assert.Equal(t, eval.NominalValue(board.Bishop), see)
}

func TestStaticExchangeEvaluationLosingCapture(t *testing.T) {
	b := newBoard(t, "3k4/3p4/8/8/8/8/8/3RK3 w - - 0 1") // rook takes a pawn defended by the king

	m := board.Move{Type: board.Capture, From: board.D1, To: board.D7, Piece: board.Rook, Capture: board.Pawn}
	see := eval.StaticExchangeEvaluation(b.Position(), board.White, m)
	assert.Less(t, see, eval.Score(0))
}

func TestStaticExchangeEvaluationNonCapture(t *testing.T) {
	b := newBoard(t, fen.Initial)

	m := board.Move{Type: board.Normal, From: board.E2, To: board.E4, Piece: board.Pawn}
	assert.Equal(t, eval.Score(0), eval.StaticExchangeEvaluation(b.Position(), board.White, m))
}
