// Package eval contains static position evaluation logic and utilities.
package eval

import (
	"fmt"
	"math"

	"github.com/vantage-chess/vantage/pkg/board"
)

// Score is a signed position or move score in centi-pawns, from white's perspective unless
// documented otherwise. Scores near mateValue encode a forced mate in a number of plies
// rather than a material/positional heuristic; see MateInXScore and MateDistance.
type Score int32

const (
	// InvalidScore marks the absence of a score, e.g. a cancelled search.
	InvalidScore Score = math.MinInt32

	mateValue Score = 1000000 // score for delivering mate right now (0 plies away)
	mateRange Score = 1000    // scores within mateRange of mateValue are mate scores

	NegInfScore Score = -mateValue - 1
	InfScore    Score = mateValue + 1
	ZeroScore   Score = 0

	MinScore Score = -mateValue
	MaxScore Score = mateValue
)

// HeuristicScore wraps a plain centi-pawn evaluation, as opposed to a mate score.
func HeuristicScore(centipawns int) Score {
	return Score(centipawns)
}

// MateInXScore returns the score for delivering mate in n plies.
func MateInXScore(n int) Score {
	return mateValue - Score(n)
}

func (s Score) String() string {
	if n, ok := s.MateDistance(); ok {
		if n >= 0 {
			return fmt.Sprintf("#%v", n)
		}
		return fmt.Sprintf("#-%v", -n)
	}
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// IsInvalid reports whether s is the InvalidScore sentinel.
func (s Score) IsInvalid() bool {
	return s == InvalidScore
}

// IsMate reports whether s encodes a forced mate, for either side.
func (s Score) IsMate() bool {
	return s > mateValue-mateRange || s < -(mateValue-mateRange)
}

// MateDistance returns the number of plies to mate, positive if the mover delivers it and
// negative if the mover is mated, and ok=false if s is not a mate score.
func (s Score) MateDistance() (int, bool) {
	switch {
	case s > mateValue-mateRange:
		return int(mateValue - s), true
	case s < -(mateValue - mateRange):
		return -int(mateValue + s), true
	default:
		return 0, false
	}
}

// IncrementMateDistance pushes a mate score one ply further from the leaf that produced it,
// since mate-in-n found at depth d is mate-in-(n+1) one ply up the tree. NegInfScore, the
// score of a checkmated node, counts as mated in zero plies. Non-mate scores and
// InvalidScore pass through unchanged.
func IncrementMateDistance(s Score) Score {
	switch {
	case s.IsInvalid():
		return s
	case s == NegInfScore:
		return MinScore + 1
	case s > mateValue-mateRange:
		return s - 1
	case s < -(mateValue - mateRange):
		return s + 1
	default:
		return s
	}
}

// Negate flips the score to the opponent's perspective. InvalidScore is unaffected.
func (s Score) Negate() Score {
	if s.IsInvalid() {
		return s
	}
	return -s
}

// Less reports whether s is strictly less than o.
func (s Score) Less(o Score) bool {
	return s < o
}

// Unit returns the signed unit for the color: 1 for White and -1 for Black.
func Unit(c board.Color) Score {
	if c == board.White {
		return 1
	}
	return -1
}

// Crop crops a Score into [MinScore;MaxScore], leaving mate scores and InvalidScore alone.
func Crop(s Score) Score {
	switch {
	case s.IsInvalid() || s.IsMate():
		return s
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
