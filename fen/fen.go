/*
Package fen implements Forsyth-Edwards Notation encode/decode for
board.Board. This is the one place in the core that accepts text from
outside the hard real-time path (a host or UI layer), so unlike the
rest of the core it validates its input and returns an error instead of
panicking.
*/
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Hardware7253/ElectronicChessBoard/board"
	"github.com/Hardware7253/ElectronicChessBoard/geometry"
)

var pieceChars = map[byte]int{
	'P': geometry.WhitePawn, 'R': geometry.WhiteRook, 'N': geometry.WhiteKnight,
	'B': geometry.WhiteBishop, 'Q': geometry.WhiteQueen, 'K': geometry.WhiteKing,
	'p': geometry.BlackPawn, 'r': geometry.BlackRook, 'n': geometry.BlackKnight,
	'b': geometry.BlackBishop, 'q': geometry.BlackQueen, 'k': geometry.BlackKing,
}

var pieceSymbols = [geometry.PieceCount]byte{
	'P', 'R', 'N', 'B', 'Q', 'K', 'p', 'r', 'n', 'b', 'q', 'k',
}

// castling rook/king home squares, a8=0 convention.
const (
	whiteKingHome      = 60 // e1
	whiteRookShortHome = 63 // h1
	whiteRookLongHome  = 56 // a1
	blackKingHome      = 4  // e8
	blackRookShortHome = 7  // h8
	blackRookLongHome  = 0  // a8
)

// Decode parses a FEN string into a board.Board.
//
// masterFlag, when true, additionally clears the has-moved bit of every
// pawn still standing on its own starting rank, regardless of the
// FEN's move counters. This is for loading known-fresh positions (the
// literal starting array, or test fixtures taken straight from a
// position that has seen no pawn moves) where the caller knows those
// pawns are eligible for a double step even though plain FEN carries no
// has-moved information. Without masterFlag every square not granted
// castling rights is conservatively treated as already moved.
func Decode(text string, masterFlag bool) (board.Board, error) {
	fields := strings.Fields(text)
	if len(fields) != 6 {
		return board.Board{}, fmt.Errorf("fen: expected 6 fields, got %d", len(fields))
	}

	b := board.New()
	for i := range b.Boards {
		b.Boards[i] = 0
	}
	b.Boards[board.HasMovedBoard] = ^uint64(0) // default: every square assumed to have moved

	if err := decodePlacement(fields[0], &b); err != nil {
		return board.Board{}, err
	}

	switch fields[1] {
	case "w":
		b.WhitesMove = true
	case "b":
		b.WhitesMove = false
	default:
		return board.Board{}, fmt.Errorf("fen: invalid active color %q", fields[1])
	}

	if err := decodeCastling(fields[2], &b); err != nil {
		return board.Board{}, err
	}

	epBit, err := decodeSquare(fields[3])
	if err != nil {
		return board.Board{}, err
	}
	b.EnPassantTarget = epBit

	halfmoveClock, err := strconv.Atoi(fields[4])
	if err != nil {
		return board.Board{}, fmt.Errorf("fen: invalid halfmove clock: %w", err)
	}
	b.HalfMoveClock = int16(halfmoveClock)

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return board.Board{}, fmt.Errorf("fen: invalid fullmove number: %w", err)
	}
	b.HalfMoves = int16((fullmove-1)*2)
	if !b.WhitesMove {
		b.HalfMoves++
	}

	if masterFlag {
		clearPawnHasMoved(&b)
	}

	return b, nil
}

func decodePlacement(placement string, b *board.Board) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}

	square := 0
	for _, rank := range ranks {
		fileCount := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				n := int(c - '0')
				square += n
				fileCount += n
				continue
			}
			idx, ok := pieceChars[c]
			if !ok {
				return fmt.Errorf("fen: invalid piece character %q", c)
			}
			b.Boards[idx] |= uint64(1) << uint(square)
			square++
			fileCount++
		}
		if fileCount != 8 {
			return fmt.Errorf("fen: rank %q does not sum to 8 files", rank)
		}
	}
	return nil
}

func decodeCastling(field string, b *board.Board) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			clearHasMoved(b, whiteKingHome, whiteRookShortHome)
		case 'Q':
			clearHasMoved(b, whiteKingHome, whiteRookLongHome)
		case 'k':
			clearHasMoved(b, blackKingHome, blackRookShortHome)
		case 'q':
			clearHasMoved(b, blackKingHome, blackRookLongHome)
		default:
			return fmt.Errorf("fen: invalid castling flag %q", field[i])
		}
	}
	return nil
}

func clearHasMoved(b *board.Board, squares ...int) {
	for _, sq := range squares {
		b.Boards[board.HasMovedBoard] &^= uint64(1) << uint(sq)
	}
}

func clearPawnHasMoved(b *board.Board) {
	for sq := 0; sq < 64; sq++ {
		rank := sq / 8
		if (board.BitOn(b.Boards[geometry.WhitePawn], sq) && rank == 6) ||
			(board.BitOn(b.Boards[geometry.BlackPawn], sq) && rank == 1) {
			clearHasMoved(b, sq)
		}
	}
}

func decodeSquare(field string) (int, error) {
	if field == "-" {
		return board.NoSquare, nil
	}
	if len(field) != 2 {
		return 0, fmt.Errorf("fen: invalid square %q", field)
	}
	file := field[0]
	rank := field[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, fmt.Errorf("fen: invalid square %q", field)
	}
	row := 7 - int(rank-'1')
	col := int(file - 'a')
	return row*8 + col, nil
}

func squareToAlgebraic(sq int) string {
	row := sq / 8
	col := sq % 8
	rank := 7 - row + 1
	return fmt.Sprintf("%c%d", 'a'+col, rank)
}

// Encode serializes b into a FEN string. Castling availability is
// reconstructed from the has-moved bitboard: a flag is set only if
// both the relevant king and rook squares are marked not-moved.
func Encode(b board.Board) string {
	var out strings.Builder

	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			idx, ok := board.FindBoardIndex(b, sq)
			if !ok || idx == board.HasMovedBoard {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			out.WriteByte(pieceSymbols[idx])
		}
		if empty > 0 {
			out.WriteString(strconv.Itoa(empty))
		}
		if rank != 7 {
			out.WriteByte('/')
		}
	}

	out.WriteByte(' ')
	if b.WhitesMove {
		out.WriteByte('w')
	} else {
		out.WriteByte('b')
	}
	out.WriteByte(' ')

	castling := ""
	if !board.BitOn(b.Boards[board.HasMovedBoard], whiteKingHome) && !board.BitOn(b.Boards[board.HasMovedBoard], whiteRookShortHome) {
		castling += "K"
	}
	if !board.BitOn(b.Boards[board.HasMovedBoard], whiteKingHome) && !board.BitOn(b.Boards[board.HasMovedBoard], whiteRookLongHome) {
		castling += "Q"
	}
	if !board.BitOn(b.Boards[board.HasMovedBoard], blackKingHome) && !board.BitOn(b.Boards[board.HasMovedBoard], blackRookShortHome) {
		castling += "k"
	}
	if !board.BitOn(b.Boards[board.HasMovedBoard], blackKingHome) && !board.BitOn(b.Boards[board.HasMovedBoard], blackRookLongHome) {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	out.WriteString(castling)
	out.WriteByte(' ')

	if b.EnPassantTarget == board.NoSquare {
		out.WriteByte('-')
	} else {
		out.WriteString(squareToAlgebraic(b.EnPassantTarget))
	}
	out.WriteByte(' ')

	out.WriteString(strconv.Itoa(int(b.HalfMoveClock)))
	out.WriteByte(' ')

	fullmove := int(b.HalfMoves)/2 + 1
	out.WriteString(strconv.Itoa(fullmove))

	return out.String()
}
