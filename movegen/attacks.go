package movegen

import (
	"github.com/Hardware7253/ElectronicChessBoard/board"
	"github.com/Hardware7253/ElectronicChessBoard/geometry"
)

// EnemyAttacks aggregates every enemy attack against the friendly
// king's team, and tracks up to two pieces that currently have the
// friendly king in check (a third simultaneous checker is not
// representable and is simply not recorded).
type EnemyAttacks struct {
	AttackBitboard   uint64
	CheckingPieces   [2]board.Coordinates
	CheckingPiecesNo int
}

// GenEnemyAttacks generates every square the enemy team attacks, from
// the perspective of king's team, and records which enemy pieces (if
// any) are checking king.
func GenEnemyAttacks(king board.Coordinates, team board.TeamBitboards, b board.Board) EnemyAttacks {
	var enemyFrom, enemyTo int
	if king.BoardIndex < geometry.BlackPawn {
		enemyFrom, enemyTo = geometry.BlackPawn, geometry.BlackKing
	} else {
		enemyFrom, enemyTo = geometry.WhitePawn, geometry.WhiteKing
	}

	// Swap to the enemy's own perspective for move generation.
	enemyPerspective := board.TeamBitboards{Friendly: team.Enemy, Enemy: team.Friendly}

	var attacks EnemyAttacks

	for i := enemyFrom; i <= enemyTo; i++ {
		for j := 0; j < 64; j++ {
			if !board.BitOn(b.Boards[i], j) {
				continue
			}
			coords := board.Coordinates{BoardIndex: i, Bit: j}

			pieceMoves := GenPiece(coords, &king, enemyPerspective, true, b)
			attacks.AttackBitboard |= pieceMoves.MovesBitboard

			if board.BitOn(pieceMoves.MovesBitboard, king.Bit) && attacks.CheckingPiecesNo < 2 {
				attacks.CheckingPieces[attacks.CheckingPiecesNo] = coords
				attacks.CheckingPiecesNo++
			}
		}
	}

	return attacks
}

// kingCanMove reports whether king has at least one square it could
// safely move to (ignoring castling).
func kingCanMove(king board.Coordinates, attacks EnemyAttacks, team board.TeamBitboards) bool {
	noMove := attacks.AttackBitboard | team.Friendly
	info := geometry.Table[geometry.WhiteKing]

	for i := 0; i < info.MovesNo; i++ {
		if !board.BitMoveValid(king.Bit, info.Moves[i]) {
			continue
		}
		moveBit := king.Bit + int(info.Moves[i])
		if !board.BitOn(noMove, moveBit) {
			return true
		}
	}
	return false
}

// Castle generates the king's castling move, if any, toward
// kingMoveBit. It uses Moves' en-passant fields to carry the rook's
// destination and origin squares: EnPassantTargetBit is where the rook
// lands, EnPassantCaptureBit is where it is removed from.
func Castle(king board.Coordinates, kingMoveBit int, team board.TeamBitboards, enemyAttackBitboard uint64, b board.Board) Moves {
	if board.BitOn(enemyAttackBitboard, king.Bit) || board.BitOn(b.Boards[board.HasMovedBoard], king.Bit) {
		return newMoves()
	}

	allPieces := team.Friendly | team.Enemy

	kingCastleMoves := [2]int{1, -1}
	rookRelative := [2]int{3, -4}
	rookCastleMoves := [2]int{-2, 3}

	for i := 0; i < 2; i++ {
		pieceBit := king.Bit

		rookBit := pieceBit + rookRelative[i]
		if rookBit < 0 || rookBit > 63 {
			continue
		}

		if !board.BitOn(b.Boards[king.BoardIndex-4], rookBit) || board.BitOn(b.Boards[board.HasMovedBoard], rookBit) {
			continue
		}

		for j := 0; j < 2; j++ {
			moveBit := pieceBit + kingCastleMoves[i]

			if board.BitOn(enemyAttackBitboard, moveBit) || board.BitOn(allPieces, moveBit) {
				break
			}
			pieceBit = moveBit

			if j == 1 && moveBit == kingMoveBit {
				// Queenside castling also requires the square next to
				// the rook (the knight's home square) to be empty.
				if i == 1 && board.BitOn(allPieces, pieceBit+kingCastleMoves[i]) {
					return newMoves()
				}
				return Moves{
					MovesBitboard:       uint64(1) << uint(kingMoveBit),
					EnPassantTargetBit:  rookBit + rookCastleMoves[i],
					EnPassantCaptureBit: rookBit,
				}
			}
		}
	}

	return newMoves()
}
