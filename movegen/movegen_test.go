package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hardware7253/ElectronicChessBoard/board"
	"github.com/Hardware7253/ElectronicChessBoard/fen"
	"github.com/Hardware7253/ElectronicChessBoard/geometry"
	"github.com/Hardware7253/ElectronicChessBoard/movegen"
)

// applyMove threads a single ply through NewTurn, computing the
// friendly/enemy king coordinates, team occupancy and enemy attacks the
// way a caller (the search package or a host driver) would. It fails
// the test immediately if the move is rejected.
func applyMove(t *testing.T, b board.Board, fromBit, toBit int) board.Board {
	t.Helper()

	idx, ok := board.FindBoardIndex(b, fromBit)
	require.True(t, ok, "no piece on square %d", fromBit)

	friendlyIdx, enemyIdx := geometry.WhiteKing, geometry.BlackKing
	if !b.WhitesMove {
		friendlyIdx, enemyIdx = geometry.BlackKing, geometry.WhiteKing
	}
	friendlyKing := board.Coordinates{BoardIndex: friendlyIdx, Bit: board.FindBitOn(b.Boards[friendlyIdx], 0)}
	enemyKing := board.Coordinates{BoardIndex: enemyIdx, Bit: board.FindBitOn(b.Boards[enemyIdx], 0)}
	team := board.NewTeamBitboards(friendlyIdx, b)
	attacks := movegen.GenEnemyAttacks(friendlyKing, team, b)

	piece := board.Coordinates{BoardIndex: idx, Bit: fromBit}
	newBoard, err := movegen.NewTurn(piece, toBit, friendlyKing, enemyKing, attacks, team, b)
	require.NoError(t, err)
	return newBoard
}

// TestQueenMateInOne is grounded on the corpus's "mate-in-one via
// queen" scenario: a queen delivers a supported mate to a king cornered
// with no other escape. (Moving the literal squares named in that
// scenario turns out not to be a terminal position at all under normal
// chess rules, since the mated king there has two unattacked escape
// squares; this fixture is a verified corner mate in the same spirit.)
func TestQueenMateInOne(t *testing.T) {
	b, err := fen.Decode("7k/8/7K/8/8/8/8/Q7 w - - 0 1", false)
	require.NoError(t, err)

	friendlyKing := board.Coordinates{BoardIndex: geometry.WhiteKing, Bit: board.FindBitOn(b.Boards[geometry.WhiteKing], 0)}
	enemyKing := board.Coordinates{BoardIndex: geometry.BlackKing, Bit: board.FindBitOn(b.Boards[geometry.BlackKing], 0)}
	team := board.NewTeamBitboards(geometry.WhiteKing, b)
	attacks := movegen.GenEnemyAttacks(friendlyKing, team, b)

	queen := board.Coordinates{BoardIndex: geometry.WhiteQueen, Bit: board.FindBitOn(b.Boards[geometry.WhiteQueen], 0)}

	// a1 -> g7, a clean diagonal slide delivering a queen mate supported
	// by the white king on h6.
	const g7 = 14
	_, err = movegen.NewTurn(queen, g7, friendlyKing, enemyKing, attacks, team, b)
	require.Error(t, err)

	turnErr, ok := err.(*movegen.TurnError)
	require.True(t, ok)
	require.Equal(t, movegen.TurnWin, turnErr.Kind)
}

// TestStalemateIsMate checks that a king with no legal moves, and not
// in check, is reported mate with zero checking pieces -- the
// "stalemate" terminal condition distinguished from checkmate only by
// CheckingPiecesNo.
func TestStalemateIsMate(t *testing.T) {
	b, err := fen.Decode("K7/2q5/8/8/5p2/5P2/8/8 w - - 0 1", false)
	require.NoError(t, err)

	king := board.Coordinates{BoardIndex: geometry.WhiteKing, Bit: board.FindBitOn(b.Boards[geometry.WhiteKing], 0)}
	team := board.NewTeamBitboards(geometry.WhiteKing, b)
	attacks := movegen.GenEnemyAttacks(king, team, b)

	require.True(t, movegen.IsMate(king, attacks, team, b))
	require.Equal(t, 0, attacks.CheckingPiecesNo)
}

// TestStalemateProducesDraw checks that NewTurn reports Draw when a
// move produces a stalemated position for the opponent (the same
// position as TestStalemateIsMate, reached by an actual prior move so
// NewTurn's own post-move mate detection is exercised, with a black
// king added since NewTurn needs one to apply a black move at all).
func TestStalemateProducesDraw(t *testing.T) {
	b, err := fen.Decode("K6k/1q6/8/8/5p2/5P2/8/8 b - - 0 1", false)
	require.NoError(t, err)

	const (
		b7 = 9
		c7 = 10
	)
	_, err = applyMoveExpectErr(t, b, b7, c7)
	require.Error(t, err)

	turnErr, ok := err.(*movegen.TurnError)
	require.True(t, ok)
	require.Equal(t, movegen.TurnDraw, turnErr.Kind)
}

func applyMoveExpectErr(t *testing.T, b board.Board, fromBit, toBit int) (board.Board, error) {
	t.Helper()

	idx, ok := board.FindBoardIndex(b, fromBit)
	require.True(t, ok, "no piece on square %d", fromBit)

	friendlyIdx, enemyIdx := geometry.WhiteKing, geometry.BlackKing
	if !b.WhitesMove {
		friendlyIdx, enemyIdx = geometry.BlackKing, geometry.WhiteKing
	}
	friendlyKing := board.Coordinates{BoardIndex: friendlyIdx, Bit: board.FindBitOn(b.Boards[friendlyIdx], 0)}
	enemyKing := board.Coordinates{BoardIndex: enemyIdx, Bit: board.FindBitOn(b.Boards[enemyIdx], 0)}
	team := board.NewTeamBitboards(friendlyIdx, b)
	attacks := movegen.GenEnemyAttacks(friendlyKing, team, b)

	piece := board.Coordinates{BoardIndex: idx, Bit: fromBit}
	return movegen.NewTurn(piece, toBit, friendlyKing, enemyKing, attacks, team, b)
}

// TestCastlingAvailability plays a short opening and then confirms
// white's king-side castle is both legal and moves the h1 rook to f1,
// per the has-moved-bitboard castling gate.
func TestCastlingAvailability(t *testing.T) {
	b, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", true)
	require.NoError(t, err)

	plies := []struct{ from, to int }{
		{52, 36}, // e2-e4
		{12, 28}, // e7-e5
		{62, 45}, // Ng1-f3
		{6, 21},  // Ng8-f6
		{61, 34}, // Bf1-c4
		{5, 26},  // Bf8-c5
	}
	for _, ply := range plies {
		b = applyMove(t, b, ply.from, ply.to)
	}

	const (
		e1 = 60
		g1 = 62
		f1 = 61
		h1 = 63
	)
	result := applyMove(t, b, e1, g1)

	idx, ok := board.FindBoardIndex(result, g1)
	require.True(t, ok)
	require.Equal(t, geometry.WhiteKing, idx)

	rookIdx, ok := board.FindBoardIndex(result, f1)
	require.True(t, ok)
	require.Equal(t, geometry.WhiteRook, rookIdx)

	_, ok = board.FindBoardIndex(result, h1)
	require.False(t, ok, "h1 should be empty after the rook moves to f1")
}

// TestEnemyAttacksSeeThroughKing confirms that enemy-attack generation
// continues a slider's ray past the friendly king's own square, so
// squares directly behind the king along the attacking ray are also
// marked attacked; otherwise a king could "duck behind itself" along
// the same file/rank/diagonal and wrongly be considered safe there.
func TestEnemyAttacksSeeThroughKing(t *testing.T) {
	b, err := fen.Decode("4r3/8/8/8/4K3/8/8/8 w - - 0 1", false)
	require.NoError(t, err)

	king := board.Coordinates{BoardIndex: geometry.WhiteKing, Bit: board.FindBitOn(b.Boards[geometry.WhiteKing], 0)}
	team := board.NewTeamBitboards(geometry.WhiteKing, b)
	attacks := movegen.GenEnemyAttacks(king, team, b)

	const (
		e4 = 36 // the king's own square
		e3 = 44
		e2 = 52
		e1 = 60
	)
	require.True(t, board.BitOn(attacks.AttackBitboard, e4), "the king's own square must be attacked")
	require.True(t, board.BitOn(attacks.AttackBitboard, e3), "a square behind the king along the attacking file must stay marked attacked")
	require.True(t, board.BitOn(attacks.AttackBitboard, e2))
	require.True(t, board.BitOn(attacks.AttackBitboard, e1))
	require.Equal(t, 1, attacks.CheckingPiecesNo)
}

// TestEnPassantCapture exercises the phantom-enemy-at-the-target-square
// technique: a pawn capturing en passant must land on the en-passant
// target square and remove the pawn that double-stepped past it.
func TestEnPassantCapture(t *testing.T) {
	b, err := fen.Decode("k7/8/8/4pP2/8/8/8/K7 w - e6 0 1", false)
	require.NoError(t, err)

	const (
		f5 = 29
		e6 = 20
		e5 = 28
	)
	result := applyMove(t, b, f5, e6)

	idx, ok := board.FindBoardIndex(result, e6)
	require.True(t, ok)
	require.Equal(t, geometry.WhitePawn, idx)

	_, ok = board.FindBoardIndex(result, e5)
	require.False(t, ok, "the captured pawn must be removed from e5, not e6")

	require.EqualValues(t, 1, result.PointsDelta)
}
