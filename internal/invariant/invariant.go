/*
Package invariant provides the random-game property-test harness: it
plays a uniformly-random sequence of legal moves from a starting
position and checks the structural invariants every position must
satisfy, regardless of how it was reached.
*/
package invariant

import (
	"fmt"
	"math/rand"

	"github.com/Hardware7253/ElectronicChessBoard/board"
	"github.com/Hardware7253/ElectronicChessBoard/fen"
	"github.com/Hardware7253/ElectronicChessBoard/geometry"
	"github.com/Hardware7253/ElectronicChessBoard/movegen"
)

// StartingFEN is the standard initial position, decoded with masterFlag
// so every pawn is eligible for a double step.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// candidate is a pseudo-legal (initial, final) pair, before NewTurn has
// filtered it for leaving the king in check.
type candidate struct {
	initial  board.Coordinates
	finalBit int
}

func pseudoLegalCandidates(b board.Board, friendlyKing board.Coordinates, team board.TeamBitboards) []candidate {
	var from, to int
	if b.WhitesMove {
		from, to = geometry.WhitePawn, geometry.WhiteKing
	} else {
		from, to = geometry.BlackPawn, geometry.BlackKing
	}

	var out []candidate
	for i := from; i <= to; i++ {
		for initialBit := 0; initialBit < 64; initialBit++ {
			if !board.BitOn(b.Boards[i], initialBit) {
				continue
			}
			initial := board.Coordinates{BoardIndex: i, Bit: initialBit}
			moves := movegen.GenPiece(initial, nil, team, false, b)

			for finalBit := 0; finalBit < 64; finalBit++ {
				if board.BitOn(team.Friendly, finalBit) {
					continue
				}
				if board.BitOn(moves.MovesBitboard, finalBit) {
					out = append(out, candidate{initial, finalBit})
				} else if initial == friendlyKing && abs(finalBit-initialBit) == 2 {
					out = append(out, candidate{initial, finalBit})
				}
			}
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Invariants are the structural checks every reachable position must
// satisfy. Failures are returned as an error rather than a panic, since
// these are meant to run inside a test loop across many random games.
func checkInvariants(b board.Board) error {
	// Invariant 1: exactly one king per side.
	if board.BitsOn(b.Boards[geometry.WhiteKing]) != 1 {
		return fmt.Errorf("invariant: expected exactly one white king, found %d", board.BitsOn(b.Boards[geometry.WhiteKing]))
	}
	if board.BitsOn(b.Boards[geometry.BlackKing]) != 1 {
		return fmt.Errorf("invariant: expected exactly one black king, found %d", board.BitsOn(b.Boards[geometry.BlackKing]))
	}

	// Invariant 2: no square is occupied by more than one piece.
	seen := uint64(0)
	for i := 0; i < geometry.PieceCount; i++ {
		if board.CommonBit(seen, b.Boards[i]) {
			return fmt.Errorf("invariant: overlapping pieces detected on board index %d", i)
		}
		seen |= b.Boards[i]
	}

	// Invariant 3: pawns never occupy the back ranks (they promote
	// before reaching them).
	backRanks := uint64(0xFF) | (uint64(0xFF) << 56)
	if board.CommonBit(b.Boards[geometry.WhitePawn], backRanks) {
		return fmt.Errorf("invariant: a white pawn is on a back rank")
	}
	if board.CommonBit(b.Boards[geometry.BlackPawn], backRanks) {
		return fmt.Errorf("invariant: a black pawn is on a back rank")
	}

	return nil
}

// RandomGame plays up to maxPlies random legal moves from the standard
// starting position, checking invariants after every applied ply. It
// returns the number of plies actually played (less than maxPlies if
// the game ended first) and an error if any invariant failed or if a
// malformed board was produced.
func RandomGame(rng *rand.Rand, maxPlies int) (int, error) {
	b, err := fen.Decode(StartingFEN, true)
	if err != nil {
		return 0, fmt.Errorf("invariant: decoding starting position: %w", err)
	}

	for ply := 0; ply < maxPlies; ply++ {
		friendlyKingIndex, enemyKingIndex := geometry.WhiteKing, geometry.BlackKing
		if !b.WhitesMove {
			friendlyKingIndex, enemyKingIndex = geometry.BlackKing, geometry.WhiteKing
		}
		friendlyKing := board.Coordinates{BoardIndex: friendlyKingIndex, Bit: board.FindBitOn(b.Boards[friendlyKingIndex], 0)}
		enemyKing := board.Coordinates{BoardIndex: enemyKingIndex, Bit: board.FindBitOn(b.Boards[enemyKingIndex], 0)}
		team := board.NewTeamBitboards(friendlyKingIndex, b)
		attacks := movegen.GenEnemyAttacks(friendlyKing, team, b)

		candidates := pseudoLegalCandidates(b, friendlyKing, team)
		rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

		applied := false
		for _, c := range candidates {
			newBoard, err := movegen.NewTurn(c.initial, c.finalBit, friendlyKing, enemyKing, attacks, team, b)
			if err != nil {
				continue
			}
			if err := checkInvariants(newBoard); err != nil {
				return ply, err
			}
			b = newBoard
			applied = true
			break
		}

		if !applied {
			return ply, nil // every candidate was rejected or would end the game (Win/Draw results are skipped like rejected moves)
		}
	}

	return maxPlies, nil
}
