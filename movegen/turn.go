package movegen

import (
	"github.com/Hardware7253/ElectronicChessBoard/board"
	"github.com/Hardware7253/ElectronicChessBoard/geometry"
)

// TurnErrorKind enumerates the ways a turn can fail to apply, including
// the two ways a turn can end the game.
type TurnErrorKind int

const (
	TurnWin TurnErrorKind = iota
	TurnDraw
	TurnInvalidMove
	TurnInvalidMoveCheck
)

// TurnError reports why NewTurn rejected a move, or that the move ended
// the game.
type TurnError struct {
	Kind TurnErrorKind
}

func (e *TurnError) Error() string {
	switch e.Kind {
	case TurnWin:
		return "movegen: the moving team won"
	case TurnDraw:
		return "movegen: the position is a draw"
	case TurnInvalidMove:
		return "movegen: invalid move"
	case TurnInvalidMoveCheck:
		return "movegen: move leaves the king in check"
	default:
		return "movegen: unknown turn error"
	}
}

// NewTurn attempts to move the piece at piece.Bit to pieceMoveBit,
// applying castling, en-passant, promotion, capture and check/mate
// bookkeeping. On success it returns the resulting Board. On failure it
// returns a *TurnError describing why, including TurnWin/TurnDraw when
// the move ends the game.
func NewTurn(piece board.Coordinates, pieceMoveBit int, friendlyKing board.Coordinates, enemyKing board.Coordinates, enemyAttacks EnemyAttacks, team board.TeamBitboards, b board.Board) (board.Board, error) {
	pieceMoves := newMoves()
	if piece == friendlyKing {
		pieceMoves = Castle(piece, pieceMoveBit, team, enemyAttacks.AttackBitboard, b)
	}

	pieceWhite := geometry.IsWhite(piece.BoardIndex)
	if pieceWhite != geometry.IsWhite(friendlyKing.BoardIndex) {
		return b, &TurnError{Kind: TurnInvalidMove}
	}

	castled := false
	if pieceMoves.EnPassantTargetBit != board.NoSquare {
		rookAddBit := pieceMoves.EnPassantTargetBit
		rookRemoveBit := pieceMoves.EnPassantCaptureBit

		friendlyRookIndex := geometry.WhiteRook
		if !pieceWhite {
			friendlyRookIndex = geometry.BlackRook
		}

		b.Boards[friendlyRookIndex] ^= uint64(1)<<uint(rookRemoveBit) | uint64(1)<<uint(rookAddBit)
		castled = true
	} else {
		pieceMoves = GenPiece(piece, nil, team, false, b)
	}

	if !board.BitOn(pieceMoves.MovesBitboard, pieceMoveBit) {
		return b, &TurnError{Kind: TurnInvalidMove}
	}

	enPassantCapture := !castled && pieceMoves.EnPassantCaptureBit != board.NoSquare && pieceMoveBit == b.EnPassantTarget

	if !castled {
		if enPassantCapture {
			captureBit := pieceMoves.EnPassantCaptureBit
			enemyPawnIndex := geometry.BlackPawn
			if !pieceWhite {
				enemyPawnIndex = geometry.WhitePawn
			}
			b.Boards[enemyPawnIndex] ^= uint64(1) << uint(captureBit)
		}
		b.EnPassantTarget = pieceMoves.EnPassantTargetBit
	}

	pieceMoveBitboard := uint64(1) << uint(pieceMoveBit)
	pieceMoveXorBitboard := uint64(1)<<uint(piece.Bit) | pieceMoveBitboard
	team.Friendly ^= pieceMoveXorBitboard
	b.Boards[board.HasMovedBoard] |= pieceMoveBitboard

	var value int8
	switch {
	case pieceWhite && piece.BoardIndex == geometry.WhitePawn && pieceMoveBit < 8:
		b.Boards[piece.BoardIndex] ^= uint64(1) << uint(piece.Bit)
		b.Boards[geometry.WhiteQueen] |= pieceMoveBitboard
		value += 8
	case !pieceWhite && piece.BoardIndex == geometry.BlackPawn && pieceMoveBit > 55:
		b.Boards[piece.BoardIndex] ^= uint64(1) << uint(piece.Bit)
		b.Boards[geometry.BlackQueen] |= pieceMoveBitboard
		value += 8
	default:
		b.Boards[piece.BoardIndex] ^= pieceMoveXorBitboard
	}

	if piece.BoardIndex == friendlyKing.BoardIndex {
		friendlyKing.Bit = pieceMoveBit
	}

	if board.BitOn(team.Enemy, pieceMoveBit) {
		team.Enemy ^= pieceMoveBitboard

		enemyFrom, enemyTo := geometry.BlackPawn, geometry.BlackKing
		if !pieceWhite {
			enemyFrom, enemyTo = geometry.WhitePawn, geometry.WhiteKing
		}

		for i := enemyFrom; i <= enemyTo; i++ {
			newPieceBitboard := b.Boards[i] ^ pieceMoveBitboard
			if newPieceBitboard < b.Boards[i] {
				b.Boards[i] = newPieceBitboard
				value = geometry.Table[i].Value
				break
			}
		}
	}

	if enPassantCapture {
		value = 1
	}

	if abs(pieceMoveBit-piece.Bit) != 16 {
		b.EnPassantTarget = board.NoSquare
	}

	if value == 0 && !geometry.IsPawn(piece.BoardIndex) {
		b.HalfMoveClock++
	} else {
		b.HalfMoveClock = 0
		team.Enemy ^= pieceMoveBitboard
	}

	b.HalfMoves++

	postMoveAttacks := GenEnemyAttacks(friendlyKing, team, b)
	if postMoveAttacks.CheckingPiecesNo != 0 {
		return b, &TurnError{Kind: TurnInvalidMoveCheck}
	}

	enemyTeam := board.TeamBitboards{Friendly: team.Enemy, Enemy: team.Friendly}
	if board.BitOn(enemyTeam.Friendly, pieceMoveBit) {
		enemyTeam.Friendly ^= pieceMoveBitboard
	}

	b.WhitesMove = !b.WhitesMove

	friendlyAttacks := GenEnemyAttacks(enemyKing, enemyTeam, b)
	enemyMate := IsMate(enemyKing, friendlyAttacks, enemyTeam, b)

	if enemyMate {
		if friendlyAttacks.CheckingPiecesNo == 0 {
			return b, &TurnError{Kind: TurnDraw}
		}
		return b, &TurnError{Kind: TurnWin}
	}

	if pieceWhite {
		b.Points.White += value
	} else {
		b.Points.Black += value
	}
	b.PointsDelta = value

	return b, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
