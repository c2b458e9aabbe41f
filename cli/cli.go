// Package cli provides functions to print a chess position. It is used
// mainly to visualize test fixtures and boardsim output; note nothing
// in the core depends on it.
package cli

import (
	"strings"

	"github.com/Hardware7253/ElectronicChessBoard/board"
)

// pieceSymbols mirrors board.Boards' indexing: white pieces first,
// then black.
var pieceSymbols = [12]rune{
	'♙', '♖', '♘', '♗', '♕', '♔',
	'♟', '♜', '♞', '♝', '♛', '♚',
}

// FormatBitboard renders a single bitboard, a8 in the top-left corner.
func FormatBitboard(bitboard uint64, symbol rune) string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		sb.WriteByte('8' - byte(row))
		sb.WriteString("  ")
		for col := 0; col < 8; col++ {
			sq := row*8 + col
			r := '.'
			if board.BitOn(bitboard, sq) {
				r = symbol
			}
			sb.WriteRune(r)
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")

	return sb.String()
}

// FormatBoard renders a full position followed by its side to move.
// The en-passant target is not shown.
func FormatBoard(b board.Board) string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		sb.WriteByte('8' - byte(row))
		sb.WriteString("  ")
		for col := 0; col < 8; col++ {
			sq := row*8 + col
			r := '.'
			if idx, ok := board.FindBoardIndex(b, sq); ok && idx != board.HasMovedBoard {
				r = pieceSymbols[idx]
			}
			sb.WriteRune(r)
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("   a  b  c  d  e  f  g  h\nActive color: ")
	if b.WhitesMove {
		sb.WriteString("white\n")
	} else {
		sb.WriteString("black\n")
	}

	return sb.String()
}
