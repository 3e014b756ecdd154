package board

import "fmt"

// Score is a signed nominal value in centi-pawns, used internally for piece values and move
// ordering heuristics computed directly on board types. Positive favors White. The search and
// evaluation layers use the wider, mate-aware eval.Score instead; this type never crosses that
// boundary except through an explicit conversion.
type Score int16

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s)/100)
}
