/*
Package heatmap holds the opening-phase positional table move ordering
uses as a tiebreaker once two candidate moves have the same capture
value. Each entry is the bonus (or penalty) for a given piece type
standing on a given square during the opening; search's orderMoves compares the
destination's value against the origin's value, rewarding moves that
improve a piece's position over moves that don't.
*/
package heatmap

import "github.com/Hardware7253/ElectronicChessBoard/geometry"

// Table is indexed [board index][square]; higher values are more
// favorable. It covers only the 12 piece-type rows, not the has-moved
// bitboard. Values are deliberately modest relative to piece values
// (geometry.PieceInfo.Value, typically 1-9) so a one-point tiebreak
// can't outweigh a capture.
var Table [geometry.PieceCount][64]int16

func init() {
	// Central squares are favorable for knights and bishops; pawns are
	// rewarded for advancing toward promotion; kings are rewarded for
	// staying on the back rank during the opening.
	center := [64]int16{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 1, 1, 1, 1, 1, 1, 0,
		0, 1, 2, 2, 2, 2, 1, 0,
		0, 1, 2, 3, 3, 2, 1, 0,
		0, 1, 2, 3, 3, 2, 1, 0,
		0, 1, 2, 2, 2, 2, 1, 0,
		0, 1, 1, 1, 1, 1, 1, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	for sq := 0; sq < 64; sq++ {
		rank := sq / 8 // 0 = rank 8 (black home), 7 = rank 1 (white home)

		Table[geometry.WhiteKnight][sq] = center[sq]
		Table[geometry.BlackKnight][sq] = center[sq]
		Table[geometry.WhiteBishop][sq] = center[sq]
		Table[geometry.BlackBishop][sq] = center[sq]
		Table[geometry.WhiteQueen][sq] = center[sq] / 2
		Table[geometry.BlackQueen][sq] = center[sq] / 2

		// White pawns advance toward rank 0 (rank8); black toward rank 7.
		Table[geometry.WhitePawn][sq] = int16(7 - rank)
		Table[geometry.BlackPawn][sq] = int16(rank)

		// Kings are penalized for leaving their home rank during the
		// opening (rank 7 for white, rank 0 for black).
		if rank != 7 {
			Table[geometry.WhiteKing][sq] = -2
		}
		if rank != 0 {
			Table[geometry.BlackKing][sq] = -2
		}

		// Rooks benefit mildly from open central files.
		file := sq % 8
		if file >= 2 && file <= 5 {
			Table[geometry.WhiteRook][sq] = 1
			Table[geometry.BlackRook][sq] = 1
		}
	}
}
