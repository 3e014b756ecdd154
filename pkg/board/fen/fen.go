// Package fen contains utilities for reading and writing positions in FEN notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vantage-chess/vantage/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode returns a new position, side to move, halfmove clock and fullmove number from a
// FEN record.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(record string) (*board.Position, board.Color, int, int, error) {
	zt := board.NewZobristTable(1)
	return DecodeWithTable(record, zt)
}

// DecodeWithTable is Decode with an explicit Zobrist table, so callers that already own one
// (e.g. the engine, to keep hashes comparable across positions) need not construct another.
func DecodeWithTable(record string, zt *board.ZobristTable) (*board.Position, board.Color, int, int, error) {
	// A FEN record contains six space-separated fields.

	parts := strings.Split(strings.TrimSpace(record), " ")
	if len(parts) != 6 {
		return nil, 0, 0, 0, fmt.Errorf("invalid number of sections in FEN: '%v'", record)
	}

	// (1) Piece placement (from white's perspective). Each rank is described, starting
	// with rank 8 and ending with rank 1; within each rank, the contents of each square
	// are described from file a through file h.

	var pieces []board.Placement

	rank, file := int(board.NumRanks)-1, 0
	for _, r := range []rune(parts[0]) {
		switch {
		case r == '/':
			if file != int(board.NumFiles) {
				return nil, 0, 0, 0, fmt.Errorf("invalid rank length in FEN: '%v'", record)
			}
			rank--
			file = 0

		case unicode.IsDigit(r):
			file += int(r - '0')

		case unicode.IsLetter(r):
			if rank < 0 || file >= int(board.NumFiles) {
				return nil, 0, 0, 0, fmt.Errorf("invalid number of squares in FEN: '%v'", record)
			}

			color, piece, ok := parsePiece(r)
			if !ok {
				return nil, 0, 0, 0, fmt.Errorf("invalid piece '%v' in FEN: '%v'", r, record)
			}
			sq := board.NewSquare(board.File(file), board.Rank(rank))
			pieces = append(pieces, board.Placement{Square: sq, Color: color, Piece: piece})
			file++

		default:
			return nil, 0, 0, 0, fmt.Errorf("invalid character in FEN: '%v'", record)
		}
	}
	if rank != 0 || file != int(board.NumFiles) {
		return nil, 0, 0, 0, fmt.Errorf("invalid number of squares in FEN: '%v'", record)
	}

	// (2) Active color. "w" means white moves next, "b" means black.

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, 0, 0, 0, fmt.Errorf("invalid active color in FEN: '%v'", record)
	}

	// (3) Castling availability. If neither side can castle, this is "-". Otherwise, this
	// has one or more of "K", "Q", "k" and/or "q".

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, 0, 0, 0, fmt.Errorf("invalid castling in FEN: '%v'", record)
	}

	// (4) En passant target square in algebraic notation, or "-" if none.

	ep := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, 0, 0, 0, fmt.Errorf("invalid en passant in FEN: '%v'", record)
		}
		ep = sq
	}

	// (5) Halfmove clock: halfmoves since the last pawn advance or capture.

	hm, err := strconv.Atoi(parts[4])
	if err != nil || hm < 0 {
		return nil, 0, 0, 0, fmt.Errorf("invalid halfmove clock in FEN: '%v'", record)
	}

	// (6) Fullmove number: starts at 1, incremented after Black's move.

	fm, err := strconv.Atoi(parts[5])
	if err != nil || fm < 1 {
		return nil, 0, 0, 0, fmt.Errorf("invalid fullmove number in FEN: '%v'", record)
	}

	pos, err := board.NewPosition(pieces, active, castling, ep, hm, fm, zt)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("invalid position in FEN: '%v': %w", record, err)
	}
	return pos, active, hm, fm, nil
}

// Encode encodes the position and game data in FEN notation.
func Encode(pos *board.Position) string {
	var sb strings.Builder
	for r := int(board.NumRanks) - 1; r >= 0; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			color, piece, ok := pos.Square(board.NewSquare(f, board.Rank(r)))
			if !ok {
				blanks++
				continue
			}

			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(color, piece))
		}

		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > 0 {
			sb.WriteString("/")
		}
	}

	turn := printColor(pos.Turn())
	castling := printCastling(pos.Castling())

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), turn, castling, ep, pos.Halfmove(), pos.Fullmove())
}

func parseCastling(str string) (board.Castling, bool) {
	var ret board.Castling

	if str == "-" {
		return ret, true
	}
	for _, r := range []rune(str) {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	if c == 0 {
		return "-"
	}

	ret := ""
	if c.IsAllowed(board.WhiteKingSideCastle) {
		ret += "K"
	}
	if c.IsAllowed(board.WhiteQueenSideCastle) {
		ret += "Q"
	}
	if c.IsAllowed(board.BlackKingSideCastle) {
		ret += "k"
	}
	if c.IsAllowed(board.BlackQueenSideCastle) {
		ret += "q"
	}
	return ret
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	switch r {
	case 'P':
		return board.White, board.Pawn, true
	case 'B':
		return board.White, board.Bishop, true
	case 'N':
		return board.White, board.Knight, true
	case 'R':
		return board.White, board.Rook, true
	case 'Q':
		return board.White, board.Queen, true
	case 'K':
		return board.White, board.King, true

	case 'p':
		return board.Black, board.Pawn, true
	case 'b':
		return board.Black, board.Bishop, true
	case 'n':
		return board.Black, board.Knight, true
	case 'r':
		return board.Black, board.Rook, true
	case 'q':
		return board.Black, board.Queen, true
	case 'k':
		return board.Black, board.King, true

	default:
		return 0, 0, false
	}
}

func printPiece(c board.Color, p board.Piece) rune {
	if c == board.White {
		switch p {
		case board.Pawn:
			return 'P'
		case board.Bishop:
			return 'B'
		case board.Knight:
			return 'N'
		case board.Rook:
			return 'R'
		case board.Queen:
			return 'Q'
		case board.King:
			return 'K'
		default:
			return '?'
		}
	}

	switch p {
	case board.Pawn:
		return 'p'
	case board.Bishop:
		return 'b'
	case board.Knight:
		return 'n'
	case board.Rook:
		return 'r'
	case board.Queen:
		return 'q'
	case board.King:
		return 'k'
	default:
		return '?'
	}
}
