// Package perft implements move-generator correctness and performance diagnostics, exposed
// through the protocol layer's "perft" and "bench" verbs.
package perft

import (
	"fmt"
	"time"

	"github.com/vantage-chess/vantage/pkg/board"
	"github.com/vantage-chess/vantage/pkg/board/fen"
)

// Result is the outcome of a single perft run.
type Result struct {
	Depth     int
	Nodes     uint64
	Time      time.Duration
	Breakdown map[board.Move]uint64 // non-nil iff divide was requested
}

func (r Result) String() string {
	return fmt.Sprintf("perft %v: %v nodes in %v", r.Depth, r.Nodes, r.Time)
}

// Run computes perft(depth) from pos, optionally broken down by root move.
func Run(pos *board.Position, depth int, divide bool) Result {
	start := time.Now()

	if divide {
		breakdown := board.PerftDivide(pos, depth)
		var nodes uint64
		for _, n := range breakdown {
			nodes += n
		}
		return Result{Depth: depth, Nodes: nodes, Time: time.Since(start), Breakdown: breakdown}
	}

	nodes := board.Perft(pos, depth)
	return Result{Depth: depth, Nodes: nodes, Time: time.Since(start)}
}

// BenchPosition is a single entry in the fixed benchmarking suite.
type BenchPosition struct {
	Name string
	FEN  string
}

// BenchSuite is the fixed 3-position benchmarking suite used by the "bench" protocol verb: the
// standard starting position, the tactically dense "Kiwipete" position, and an endgame with
// a lone attacking rook, covering opening, middlegame and endgame move-generation profiles.
var BenchSuite = []BenchPosition{
	{Name: "startpos", FEN: fen.Initial},
	{Name: "kiwipete", FEN: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
	{Name: "endgame", FEN: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"},
}

// BenchResult is the outcome of benchmarking the fixed suite at a given depth.
type BenchResult struct {
	Depth int
	Nodes uint64
	Time  time.Duration
}

func (r BenchResult) NPS() uint64 {
	if r.Time <= 0 {
		return 0
	}
	return uint64(float64(r.Nodes) / r.Time.Seconds())
}

func (r BenchResult) String() string {
	return fmt.Sprintf("bench depth=%v: %v nodes in %v (%v nps)", r.Depth, r.Nodes, r.Time, r.NPS())
}

// Bench runs board.Perft at the given depth on the fixed BenchSuite and reports aggregate node
// count and throughput, a deterministic proxy for move-generator performance that does not
// depend on any particular evaluation or search tuning.
func Bench(depth int) (BenchResult, error) {
	start := time.Now()

	var nodes uint64
	for _, p := range BenchSuite {
		pos, _, _, _, err := fen.Decode(p.FEN)
		if err != nil {
			return BenchResult{}, fmt.Errorf("invalid bench position %v: %w", p.Name, err)
		}
		nodes += board.Perft(pos, depth)
	}

	return BenchResult{Depth: depth, Nodes: nodes, Time: time.Since(start)}, nil
}
