package geometry

import "testing"

func TestTableValues(t *testing.T) {
	testcases := []struct {
		name     string
		index    int
		value    int8
		sliding  bool
		moveOnly bool
	}{
		{"white pawn", WhitePawn, 1, false, true},
		{"white rook", WhiteRook, 5, true, false},
		{"white knight", WhiteKnight, 3, false, false},
		{"white bishop", WhiteBishop, 3, true, false},
		{"white queen", WhiteQueen, 9, true, false},
		{"white king", WhiteKing, 0, false, false},
	}

	for _, tc := range testcases {
		info := Table[tc.index]
		if info.Value != tc.value {
			t.Errorf("%s: expected value %d, got %d", tc.name, tc.value, info.Value)
		}
		if info.Sliding != tc.sliding {
			t.Errorf("%s: expected sliding=%v, got %v", tc.name, tc.sliding, info.Sliding)
		}
		if info.MoveOnly != tc.moveOnly {
			t.Errorf("%s: expected moveOnly=%v, got %v", tc.name, tc.moveOnly, info.MoveOnly)
		}
	}
}

func TestIsPawn(t *testing.T) {
	if !IsPawn(WhitePawn) || !IsPawn(BlackPawn) {
		t.Fatalf("expected both pawn indexes to report true")
	}
	if IsPawn(WhiteKnight) {
		t.Fatalf("expected a non-pawn index to report false")
	}
}

func TestIsWhite(t *testing.T) {
	for i := WhitePawn; i <= WhiteKing; i++ {
		if !IsWhite(i) {
			t.Errorf("expected index %d to be white", i)
		}
	}
	for i := BlackPawn; i <= BlackKing; i++ {
		if IsWhite(i) {
			t.Errorf("expected index %d to be black", i)
		}
	}
}

func TestKnightMovesCount(t *testing.T) {
	if Table[WhiteKnight].MovesNo != 8 {
		t.Fatalf("expected 8 knight move deltas, got %d", Table[WhiteKnight].MovesNo)
	}
}
