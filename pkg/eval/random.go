package eval

import (
	"context"
	"math/rand"

	"github.com/vantage-chess/vantage/pkg/board"
)

// Random is a randomized noise term. It adds a small amount of randomness to evaluations,
// primarily to diversify Lazy-SMP helper threads so they don't all walk the same principal
// variation. The limit specifies how many centi-pawns to add/remove, in [-limit/2; limit/2].
// The zero value always returns zero.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context, b *board.Board) Score {
	if n.limit <= 0 {
		return 0
	}
	return Score(n.rand.Intn(n.limit) - n.limit/2)
}
