/*
Package movegen implements the Move Generator: pseudo-legal move
generation per piece, pawn captures (including en passant), castling,
enemy-attack aggregation, check/mate detection, and turn application.

None of the functions here allocate on the heap or hold state between
calls; a Board value is threaded through every call and a new Board is
returned by NewTurn.
*/
package movegen

import (
	"github.com/Hardware7253/ElectronicChessBoard/board"
	"github.com/Hardware7253/ElectronicChessBoard/geometry"
)

// Moves is the result of generating moves for a single piece: the
// bitboard of reachable squares, plus the two overloaded fields used to
// carry en-passant and castling side effects back to NewTurn.
//
// For a pawn push, EnPassantTargetBit is the square a future en-passant
// capture would target (set whenever the pawn has not moved and its
// first step is free, even if the double step is blocked; NewTurn keeps
// it on the board only when the applied move is the two-square push). For a pawn capture, EnPassantCaptureBit is the square
// an en-passant capture actually removes a pawn from. For castling,
// the two fields are repurposed: EnPassantTargetBit is the square the
// rook lands on and EnPassantCaptureBit is the square the rook is
// removed from.
type Moves struct {
	MovesBitboard       uint64
	EnPassantTargetBit  int
	EnPassantCaptureBit int
}

func newMoves() Moves {
	return Moves{EnPassantTargetBit: board.NoSquare, EnPassantCaptureBit: board.NoSquare}
}

// GenPiece returns the pseudo-legal moves (or, with onlyAttacks, the
// squares attacked) for a single piece.
//
// If enemyKing is non-nil, it is ignored as a blocking piece: sliding
// moves continue through its square, since the squares behind a king
// are attacked even though the king itself blocks ordinary moves. This
// is only meaningful when onlyAttacks is true.
func GenPiece(piece board.Coordinates, enemyKing *board.Coordinates, team board.TeamBitboards, onlyAttacks bool, b board.Board) Moves {
	info := geometry.Table[piece.BoardIndex]
	isPawn := geometry.IsPawn(piece.BoardIndex)

	moves := newMoves()
	if isPawn {
		moves = genPawnCaptures(piece, onlyAttacks, team, b)
	}

	if onlyAttacks && isPawn {
		return moves
	}

	for i := 0; i < info.MovesNo; i++ {
		delta := info.Moves[i]
		pieceBit := piece.Bit
		moveRepeated := 0

		for {
			bitboard, ok := board.MovePiece(pieceBit, delta)
			if !ok {
				break
			}
			moveBit := pieceBit + int(delta)
			breakAfterMove := false

			if board.BitOn(team.Friendly, moveBit) {
				if onlyAttacks {
					breakAfterMove = true
				} else {
					break
				}
			}

			if board.BitOn(team.Enemy, moveBit) {
				continueThroughKing := enemyKing != nil && enemyKing.Bit == moveBit && onlyAttacks

				if info.MoveOnly {
					break
				}
				if !continueThroughKing {
					breakAfterMove = true
				}
			}

			moves.MovesBitboard |= bitboard
			moveRepeated++

			if breakAfterMove {
				break
			}
			pieceBit = moveBit

			if isPawn && moveRepeated == 2 {
				break
			}
			if isPawn && !board.BitOn(b.Boards[board.HasMovedBoard], piece.Bit) {
				moves.EnPassantTargetBit = pieceBit
				continue
			}
			if !info.Sliding {
				break
			}
		}
	}

	return moves
}

// genPawnCaptures generates diagonal pawn capture moves, including en
// passant. An imaginary enemy piece is injected at the board's
// en-passant target square so the ordinary "capture an enemy piece"
// logic below picks it up without a special case.
func genPawnCaptures(piece board.Coordinates, forceAttacks bool, team board.TeamBitboards, b board.Board) Moves {
	epTarget := b.EnPassantTarget
	if epTarget != board.NoSquare {
		team.Enemy |= uint64(1) << uint(epTarget)
	}

	white := geometry.IsWhite(piece.BoardIndex)
	var captureMoves [2]int8
	if white {
		captureMoves = [2]int8{-9, -7}
	} else {
		captureMoves = [2]int8{9, 7}
	}

	moves := newMoves()

	for _, delta := range captureMoves {
		if _, ok := board.MovePiece(piece.Bit, delta); !ok {
			continue
		}
		moveBit := piece.Bit + int(delta)

		if !(board.BitOn(team.Enemy, moveBit) || forceAttacks) {
			continue
		}

		bitboard, ok := board.MovePiece(piece.Bit, delta)
		if !ok {
			continue
		}
		moves.MovesBitboard |= bitboard

		if epTarget != board.NoSquare && moveBit == epTarget {
			if white {
				moves.EnPassantCaptureBit = moveBit + 8
			} else {
				moves.EnPassantCaptureBit = moveBit - 8
			}
		}
	}

	return moves
}
