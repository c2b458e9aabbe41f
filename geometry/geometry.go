/*
Package geometry holds the piece geometry tables: the fixed delta sets
every piece type can move along, plus the sliding/move-only/value
attributes the move generator and search packages read off them.

The board uses a8 = 0 (top-left) through h1 = 63 (bottom-right), so a
positive delta moves "down and right" in board-index space.
*/
package geometry

// Board indexes for the 12 piece bitboards, matching board.Board's
// layout. The 13th bitboard (has-moved tracking) has no geometry entry.
const (
	WhitePawn = iota
	WhiteRook
	WhiteKnight
	WhiteBishop
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackRook
	BlackKnight
	BlackBishop
	BlackQueen
	BlackKing
	PieceCount
)

// PieceInfo describes how a single piece type moves.
type PieceInfo struct {
	Moves    [8]int8 // move deltas, only the first MovesNo entries are meaningful
	MovesNo  int
	MoveOnly bool // true if the piece can move but not capture along these deltas (pawns)
	Sliding  bool // true if the piece repeats its delta until blocked
	Value    int8 // material value, used by search and capture bookkeeping
}

var (
	knightMoves   = [8]int8{-17, -15, -6, 10, 17, 15, 6, -10}
	straightMoves = [4]int8{-8, 1, 8, -1}
	diagonalMoves = [4]int8{-9, -7, 9, 7}
)

func queenKingMoves() [8]int8 {
	return [8]int8{
		straightMoves[0], straightMoves[1], straightMoves[2], straightMoves[3],
		diagonalMoves[0], diagonalMoves[1], diagonalMoves[2], diagonalMoves[3],
	}
}

func straight8(d int8) [8]int8 {
	return [8]int8{d, 0, 0, 0, 0, 0, 0, 0}
}

func diagonal8() [8]int8 {
	return [8]int8{diagonalMoves[0], diagonalMoves[1], diagonalMoves[2], diagonalMoves[3], 0, 0, 0, 0}
}

func straightSlide8() [8]int8 {
	return [8]int8{straightMoves[0], straightMoves[1], straightMoves[2], straightMoves[3], 0, 0, 0, 0}
}

// Table holds the geometry for all 12 piece types, indexed by the
// board-index constants above.
var Table = [PieceCount]PieceInfo{
	WhitePawn:   {Moves: straight8(straightMoves[0]), MovesNo: 1, MoveOnly: true, Sliding: false, Value: 1},
	WhiteRook:   {Moves: straightSlide8(), MovesNo: 4, Sliding: true, Value: 5},
	WhiteKnight: {Moves: knightMoves, MovesNo: 8, Value: 3},
	WhiteBishop: {Moves: diagonal8(), MovesNo: 4, Sliding: true, Value: 3},
	WhiteQueen:  {Moves: queenKingMoves(), MovesNo: 8, Sliding: true, Value: 9},
	WhiteKing:   {Moves: queenKingMoves(), MovesNo: 8, Value: 0},

	BlackPawn:   {Moves: straight8(straightMoves[2]), MovesNo: 1, MoveOnly: true, Sliding: false, Value: 1},
	BlackRook:   {Moves: straightSlide8(), MovesNo: 4, Sliding: true, Value: 5},
	BlackKnight: {Moves: knightMoves, MovesNo: 8, Value: 3},
	BlackBishop: {Moves: diagonal8(), MovesNo: 4, Sliding: true, Value: 3},
	BlackQueen:  {Moves: queenKingMoves(), MovesNo: 8, Sliding: true, Value: 9},
	BlackKing:   {Moves: queenKingMoves(), MovesNo: 8, Value: 0},
}

// IsPawn reports whether boardIndex refers to either team's pawns.
func IsPawn(boardIndex int) bool {
	return boardIndex == WhitePawn || boardIndex == BlackPawn
}

// IsWhite reports whether boardIndex belongs to the white team. Indexes
// 0-5 are white, 6-11 are black; index 12 (has-moved) has no color.
func IsWhite(boardIndex int) bool {
	return boardIndex <= WhiteKing
}
