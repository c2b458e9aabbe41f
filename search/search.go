/*
Package search implements fixed-depth negamax search with alpha-beta
pruning, move ordering, and iterative-deepening principal-variation
injection at the root, driven by a cycle-count time budget rather than
wall-clock time.
*/
package search

import (
	"math"

	"github.com/Hardware7253/ElectronicChessBoard/board"
	"github.com/Hardware7253/ElectronicChessBoard/clock"
	"github.com/Hardware7253/ElectronicChessBoard/geometry"
	"github.com/Hardware7253/ElectronicChessBoard/heatmap"
	"github.com/Hardware7253/ElectronicChessBoard/movegen"
)

// maxMoves bounds the fixed move buffer orderMoves fills in. Entries
// beyond however many pseudo-legal moves a position actually has stay
// as the zero Move{} (board index 0, bit 0) — NewTurn rejects those as
// an invalid move, so they act as harmless padding rather than real
// candidates, at the cost of search wasting a little time probing them.
const maxMoves = 96

// Move is a single candidate ply: where a piece moves from and to, plus
// the capture value and heatmap tiebreak orderMoves computed for it.
type Move struct {
	Initial      board.Coordinates
	FinalBit     int
	Value        int8
	HeatmapValue int16
}

// AlphaBeta is the running best-move window for one node of the search
// tree.
type AlphaBeta struct {
	Alpha     int8
	Beta      int8
	PieceMove *Move
}

// NewAlphaBeta returns a fully open window with no move chosen yet.
func NewAlphaBeta() AlphaBeta {
	return AlphaBeta{Alpha: math.MinInt8, Beta: math.MaxInt8}
}

// UpdateAlphaBeta folds a child node's result into the parent's window.
// The master team tightens alpha from the child's beta; the non-master
// team tightens beta from the child's alpha — negamax's "one side's
// ceiling is the other's floor" symmetry.
func UpdateAlphaBeta(ab *AlphaBeta, child AlphaBeta, masterTeam bool) {
	if masterTeam {
		if ab.Alpha < child.Beta {
			ab.Alpha = child.Beta
			ab.PieceMove = child.PieceMove
		}
		return
	}
	if ab.Beta > child.Alpha {
		ab.Beta = child.Alpha
		ab.PieceMove = child.PieceMove
	}
}

// orderMoves enumerates every pseudo-legal move for the side to move
// into a fixed 96-entry array, sorted best-first by capture value and
// then by heatmap tiebreak. Unused slots hold the zero Move; the sort
// places them among real moves of value 0 and heatmap 0, ahead of any
// move with a negative value or heatmap score.
//
// Sorting is intentionally unstable (sort.Slice is not used; see sortMoves)
// — when two moves compare equal, which one search tries first follows
// from generation order and the selection sort's swaps rather than from
// any canonical move order. That is accepted
// here rather than treated as a bug: nothing downstream depends on a
// stable tie order.
func orderMoves(b board.Board, attacks movegen.EnemyAttacks, friendlyKing board.Coordinates, team board.TeamBitboards) [maxMoves]Move {
	var moves [maxMoves]Move
	idx := 0

	var friendlyFrom, friendlyTo, enemyFrom, enemyTo int
	if b.WhitesMove {
		friendlyFrom, friendlyTo = geometry.WhitePawn, geometry.WhiteKing
		enemyFrom, enemyTo = geometry.BlackPawn, geometry.BlackKing
	} else {
		friendlyFrom, friendlyTo = geometry.BlackPawn, geometry.BlackKing
		enemyFrom, enemyTo = geometry.WhitePawn, geometry.WhiteKing
	}

	for i := friendlyFrom; i <= friendlyTo; i++ {
		pieceValue := geometry.Table[i].Value

		for initialBit := 0; initialBit < 64; initialBit++ {
			if !board.BitOn(b.Boards[i], initialBit) {
				continue
			}
			initial := board.Coordinates{BoardIndex: i, Bit: initialBit}
			pieceMoves := movegen.GenPiece(initial, nil, team, false, b)

			for finalBit := 0; finalBit < 64; finalBit++ {
				if board.BitOn(team.Friendly, finalBit) {
					continue
				}

				heatmapValue := heatmap.Table[i][finalBit] - heatmap.Table[i][initialBit]

				if board.BitOn(pieceMoves.MovesBitboard, finalBit) {
					var moveValue int8
					if board.BitOn(team.Enemy, finalBit) {
						for j := enemyFrom; j <= enemyTo; j++ {
							if !board.BitOn(b.Boards[j], finalBit) {
								continue
							}
							captureValue := geometry.Table[j].Value
							if board.BitOn(attacks.AttackBitboard, finalBit) {
								moveValue = pieceValue - captureValue
							} else {
								moveValue = captureValue
							}
							break
						}
					}

					if idx < maxMoves {
						moves[idx] = Move{Initial: initial, FinalBit: finalBit, Value: moveValue, HeatmapValue: heatmapValue}
						idx++
					}
				} else if initial == friendlyKing && abs(finalBit-initialBit) == 2 {
					// GenPiece never reports castling as a move, so a
					// would-be castle has to be added here explicitly
					// or search could never find it.
					if idx < maxMoves {
						moves[idx] = Move{Initial: initial, FinalBit: finalBit, HeatmapValue: heatmapValue}
						idx++
					}
				}
			}
		}
	}

	sortMoves(&moves)
	return moves
}

// sortMoves sorts moves best-first: higher Value first, then higher
// HeatmapValue. It is a plain unstable insertion-free selection sort
// over the fixed array, matching the "unstable sort" semantics of the
// ordering it implements rather than guaranteeing tie order.
func sortMoves(moves *[maxMoves]Move) {
	for i := 0; i < maxMoves; i++ {
		best := i
		for j := i + 1; j < maxMoves; j++ {
			if less(moves[best], moves[j]) {
				best = j
			}
		}
		moves[i], moves[best] = moves[best], moves[i]
	}
}

// less reports whether b should sort before a (b is the better move).
func less(a, b Move) bool {
	if a.Value == b.Value {
		return b.HeatmapValue > a.HeatmapValue
	}
	return b.Value > a.Value
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// GenBestMove runs a fixed-depth negamax search with alpha-beta pruning
// and returns the best move found for the side to move in b, from
// masterTeam's point of view.
//
// counter must already be running (the caller calls counter.Update at
// least once before the first call so startCycles is meaningful).
// Search stops early, returning whatever has been found so far, once
// counter.Cycles exceeds startCycles+maxElapsedCycles.
func GenBestMove(
	masterTeam bool,
	counter *clock.Counter,
	startCycles uint64,
	maxElapsedCycles uint64,
	searchDepth int,
	currentDepth int,
	initValue int8,
	alphaBeta AlphaBeta,
	b board.Board,
) AlphaBeta {
	counter.Update()
	if currentDepth == searchDepth || counter.Cycles > startCycles+maxElapsedCycles {
		return AlphaBeta{Alpha: initValue, Beta: initValue}
	}

	friendlyKingIndex, enemyKingIndex := geometry.WhiteKing, geometry.BlackKing
	if !b.WhitesMove {
		friendlyKingIndex, enemyKingIndex = geometry.BlackKing, geometry.WhiteKing
	}

	friendlyKing := board.Coordinates{BoardIndex: friendlyKingIndex, Bit: board.FindBitOn(b.Boards[friendlyKingIndex], 0)}
	enemyKing := board.Coordinates{BoardIndex: enemyKingIndex, Bit: board.FindBitOn(b.Boards[enemyKingIndex], 0)}

	team := board.NewTeamBitboards(friendlyKingIndex, b)
	attacks := movegen.GenEnemyAttacks(friendlyKing, team, b)

	moves := orderMoves(b, attacks, friendlyKing, team)

	var pvAlphaBeta *AlphaBeta
	if currentDepth == 0 && searchDepth > 1 {
		deeper := GenBestMove(true, counter, startCycles, maxElapsedCycles, searchDepth-1, 0, 0, NewAlphaBeta(), b)
		pvAlphaBeta = &deeper

		// Prepend the shallower search's best move so alpha-beta sees
		// the principal variation first, dropping the array's last
		// slot to keep the buffer fixed-size (iterative deepening's
		// own variant of the 96-slot padding tradeoff above).
		var rotated [maxMoves]Move
		rotated[0] = *deeper.PieceMove
		copy(rotated[1:], moves[:maxMoves-1])
		moves = rotated
	}

	for i := 0; i < maxMoves; i++ {
		initial := moves[i].Initial
		finalBit := moves[i].FinalBit

		newBoard, err := movegen.NewTurn(initial, finalBit, friendlyKing, enemyKing, attacks, team, b)
		if err == nil {
			moveValue := newBoard.PointsDelta
			if !masterTeam {
				moveValue = -moveValue
			}
			branchValue := initValue + moveValue

			childAlphaBeta := GenBestMove(!masterTeam, counter, startCycles, maxElapsedCycles, searchDepth, currentDepth+1, branchValue, alphaBeta, newBoard)

			pieceMove := Move{Initial: initial, FinalBit: finalBit}
			childAlphaBeta.PieceMove = &pieceMove

			UpdateAlphaBeta(&alphaBeta, childAlphaBeta, masterTeam)
		} else if turnErr, ok := err.(*movegen.TurnError); ok {
			var branchValue int8
			validMove := true

			switch turnErr.Kind {
			case movegen.TurnWin:
				branchValue = math.MaxInt8
			case movegen.TurnDraw:
				branchValue = 0
			default:
				validMove = false
			}

			if validMove {
				if !masterTeam {
					branchValue = -branchValue
				}
				pieceMove := Move{Initial: initial, FinalBit: finalBit}
				childAlphaBeta := AlphaBeta{Alpha: branchValue, Beta: branchValue, PieceMove: &pieceMove}
				UpdateAlphaBeta(&alphaBeta, childAlphaBeta, masterTeam)
			}
		}

		if alphaBeta.Alpha >= alphaBeta.Beta {
			break
		}
	}

	if currentDepth == 0 && searchDepth > 1 && counter.Cycles > startCycles+maxElapsedCycles {
		return *pvAlphaBeta
	}

	return alphaBeta
}
