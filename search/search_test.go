package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hardware7253/ElectronicChessBoard/board"
	"github.com/Hardware7253/ElectronicChessBoard/clock"
	"github.com/Hardware7253/ElectronicChessBoard/fen"
	"github.com/Hardware7253/ElectronicChessBoard/geometry"
	"github.com/Hardware7253/ElectronicChessBoard/movegen"
	"github.com/Hardware7253/ElectronicChessBoard/search"
)

// freeRunningCounter builds a clock.Counter whose Read function advances
// by one on every call, standing in for a cycle counter that is never
// close to its time budget.
func freeRunningCounter() *clock.Counter {
	calls := uint32(0)
	return clock.New(func() uint32 {
		calls++
		return calls
	})
}

// TestEnPassantIsBestCapture checks that at a shallow search depth, the
// engine prefers capturing en passant over any quiet king move, since it
// is the only move that gains material.
func TestEnPassantIsBestCapture(t *testing.T) {
	b, err := fen.Decode("K7/8/8/4pP2/8/8/8/k7 w - e6 0 1", false)
	require.NoError(t, err)

	counter := freeRunningCounter()
	counter.Update()

	result := search.GenBestMove(true, counter, counter.Cycles, math.MaxInt64, 3, 0, 0, search.NewAlphaBeta(), b)

	require.NotNil(t, result.PieceMove)

	const (
		f5 = 29
		e6 = 20
	)
	require.Equal(t, geometry.WhitePawn, result.PieceMove.Initial.BoardIndex)
	require.Equal(t, f5, result.PieceMove.Initial.Bit)
	require.Equal(t, e6, result.PieceMove.FinalBit)

	applied, err := applyBestMove(b, *result.PieceMove)
	require.NoError(t, err)
	require.EqualValues(t, 1, applied.PointsDelta)
}

func applyBestMove(b board.Board, m search.Move) (board.Board, error) {
	friendlyIdx, enemyIdx := geometry.WhiteKing, geometry.BlackKing
	if !b.WhitesMove {
		friendlyIdx, enemyIdx = geometry.BlackKing, geometry.WhiteKing
	}
	friendlyKing := board.Coordinates{BoardIndex: friendlyIdx, Bit: board.FindBitOn(b.Boards[friendlyIdx], 0)}
	enemyKing := board.Coordinates{BoardIndex: enemyIdx, Bit: board.FindBitOn(b.Boards[enemyIdx], 0)}
	team := board.NewTeamBitboards(friendlyIdx, b)
	attacks := movegen.GenEnemyAttacks(friendlyKing, team, b)

	return movegen.NewTurn(m.Initial, m.FinalBit, friendlyKing, enemyKing, attacks, team, b)
}

// TestIterativeDeepeningFallback runs a depth-2 search with a cycle
// budget so small that only the depth-1 search (computed first, to seed
// the principal variation) can finish, and checks that the returned
// move is exactly the depth-1 search's own best move rather than
// whatever partial, budget-clipped result the depth-2 loop accumulated.
func TestIterativeDeepeningFallback(t *testing.T) {
	b, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", true)
	require.NoError(t, err)

	depth1Counter := freeRunningCounter()
	depth1Counter.Update()
	depth1 := search.GenBestMove(true, depth1Counter, depth1Counter.Cycles, math.MaxInt64, 1, 0, 0, search.NewAlphaBeta(), b)
	require.NotNil(t, depth1.PieceMove)

	// A budget generous enough for the depth-1 seed search (22 counter
	// updates from the start cycle: the root, the seed's root and one
	// leaf per each of the 20 opening moves) but too small for the
	// depth-2 traversal that follows it (about 60 more updates).
	const tinyBudget = 30

	limitedCounter := freeRunningCounter()
	limitedCounter.Update()
	startCycles := limitedCounter.Cycles

	result := search.GenBestMove(true, limitedCounter, startCycles, tinyBudget, 2, 0, 0, search.NewAlphaBeta(), b)

	require.NotNil(t, result.PieceMove)
	require.Equal(t, *depth1.PieceMove, *result.PieceMove)
}
