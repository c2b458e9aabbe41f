package movegen

import (
	"github.com/Hardware7253/ElectronicChessBoard/board"
	"github.com/Hardware7253/ElectronicChessBoard/geometry"
)

// IsMate reports whether king's team is in checkmate or stalemate.
// king, attacks and team must all describe king's own team; b.WhitesMove
// must already reflect whose turn it is (the team being tested).
//
// Known limitation (preserved intentionally, not a bug to fix here): the
// "does blocking the check expose a new check" probe below only
// re-scans sliding (queen-geometry) rays from the king afterwards, so a
// block that discovers a check from a knight is not detected. A small, deliberately unfixed corner of the algorithm.
func IsMate(king board.Coordinates, attacks EnemyAttacks, team board.TeamBitboards, b board.Board) bool {
	if kingCanMove(king, attacks, team) {
		return false
	}

	if attacks.CheckingPiecesNo == 2 {
		return true
	}

	var checkingPiece board.Coordinates
	useCheckingPiece := attacks.CheckingPiecesNo > 0
	if useCheckingPiece {
		checkingPiece = attacks.CheckingPieces[0]
	}

	var friendlyFrom, friendlyTo int
	if b.WhitesMove {
		friendlyFrom, friendlyTo = geometry.WhitePawn, geometry.WhiteQueen
	} else {
		friendlyFrom, friendlyTo = geometry.BlackPawn, geometry.BlackQueen
	}

	for boardIndex := friendlyFrom; boardIndex <= friendlyTo; boardIndex++ {
		for initialBit := 0; initialBit < 64; initialBit++ {
			if !board.BitOn(b.Boards[boardIndex], initialBit) {
				continue
			}
			pieceCoords := board.Coordinates{BoardIndex: boardIndex, Bit: initialBit}

			pieceAttacks := GenPiece(pieceCoords, nil, team, useCheckingPiece, b)

			var pawnMovesBitboard uint64
			if geometry.IsPawn(boardIndex) {
				pawnMovesBitboard = GenPiece(pieceCoords, nil, team, false, b).MovesBitboard
			}

			enemyTeam := board.TeamBitboards{Friendly: team.Enemy, Enemy: team.Friendly}
			checkingPieceAttacks := GenPiece(checkingPiece, nil, enemyTeam, true, b).MovesBitboard

			for finalBit := 0; finalBit < 64; finalBit++ {
				if !board.BitOn(pieceAttacks.MovesBitboard|pawnMovesBitboard, finalBit) {
					continue
				}

				if useCheckingPiece {
					if board.BitOn(pieceAttacks.MovesBitboard, checkingPiece.Bit) && finalBit == checkingPiece.Bit {
						if !mateSurvivesCapture(king, team, checkingPiece, initialBit, finalBit, b) {
							return false
						}
						continue
					}

					if board.BitOn(checkingPieceAttacks, finalBit) {
						if geometry.IsPawn(boardIndex) && !board.BitOn(pawnMovesBitboard, finalBit) {
							continue
						}
						if !mateSurvivesBlock(king, enemyTeam, checkingPiece, initialBit, finalBit, b) {
							return false
						}
					}
				} else if pieceAttacks.MovesBitboard > 0 {
					return false
				}
			}
		}
	}

	return true
}

// mateSurvivesCapture reports whether king is still in check (by a
// piece other than checkingPiece) after the piece at initialBit
// captures the checking piece at finalBit; false means the capture
// escapes the check.
func mateSurvivesCapture(king board.Coordinates, team board.TeamBitboards, checkingPiece board.Coordinates, initialBit, finalBit int, b board.Board) bool {
	team.Friendly ^= uint64(1)<<uint(initialBit) | uint64(1)<<uint(finalBit)
	team.Enemy ^= uint64(1) << uint(checkingPiece.Bit)

	attacks := GenEnemyAttacks(king, team, b)

	for i := 0; i < attacks.CheckingPiecesNo; i++ {
		if attacks.CheckingPieces[i] != checkingPiece {
			return true // a different piece still has the king in check
		}
	}
	return false
}

// mateSurvivesBlock reports whether king is still in check after the
// piece at initialBit moves to finalBit to block the checking piece's
// path; false means the block escapes the check.
func mateSurvivesBlock(king board.Coordinates, enemyTeam board.TeamBitboards, checkingPiece board.Coordinates, initialBit, finalBit int, b board.Board) bool {
	if board.BitOn(enemyTeam.Friendly, finalBit) {
		enemyTeam.Friendly ^= uint64(1) << uint(checkingPiece.Bit)
	}
	enemyTeam.Enemy ^= uint64(1)<<uint(initialBit) | uint64(1)<<uint(finalBit)

	checkingPieceAttacks := GenPiece(checkingPiece, nil, enemyTeam, true, b).MovesBitboard
	if board.BitOn(checkingPieceAttacks, king.Bit) {
		return true // original checking piece still has the king in check: still mate
	}

	team := board.TeamBitboards{Friendly: enemyTeam.Enemy, Enemy: enemyTeam.Friendly}

	// Re-probe for a discovered check. Only sliding (queen-geometry)
	// rays from the king are re-scanned here, matching the
	// discovered-check blind spot documented on IsMate.
	slidingKing := board.Coordinates{BoardIndex: geometry.WhiteQueen, Bit: king.Bit}
	kingCheckSquares := GenPiece(slidingKing, nil, team, false, b)

	for i := 0; i < 64; i++ {
		if !board.BitOn(kingCheckSquares.MovesBitboard, i) || !board.BitOn(team.Enemy, i) {
			continue
		}
		for j := 0; j < board.HasMovedBoard; j++ {
			if !board.BitOn(b.Boards[j], i) {
				continue
			}
			candidate := board.Coordinates{BoardIndex: j, Bit: i}
			candidateTeam := board.TeamBitboards{Friendly: team.Enemy, Enemy: team.Friendly}
			candidateAttacks := GenPiece(candidate, nil, candidateTeam, true, b)
			if board.BitOn(candidateAttacks.MovesBitboard, king.Bit) {
				return true
			}
		}
	}

	return false
}
