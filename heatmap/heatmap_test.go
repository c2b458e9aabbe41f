package heatmap

import (
	"testing"

	"github.com/Hardware7253/ElectronicChessBoard/geometry"
)

func TestKnightFavorsCenter(t *testing.T) {
	const (
		d4 = 35 // central
		a8 = 0  // corner
	)
	if Table[geometry.WhiteKnight][d4] <= Table[geometry.WhiteKnight][a8] {
		t.Fatalf("expected a central square to score higher than a corner for a knight")
	}
}

func TestPawnAdvancementDirection(t *testing.T) {
	const (
		e2 = 52
		e4 = 36
	)
	if Table[geometry.WhitePawn][e4] <= Table[geometry.WhitePawn][e2] {
		t.Fatalf("expected white's pawn table to reward advancing toward rank 8")
	}

	const (
		e7 = 12
		e5 = 28
	)
	if Table[geometry.BlackPawn][e5] <= Table[geometry.BlackPawn][e7] {
		t.Fatalf("expected black's pawn table to reward advancing toward rank 1")
	}
}

func TestKingPenalizedOffBackRank(t *testing.T) {
	const (
		g1 = 62 // white home rank
		g3 = 46 // left the back rank
	)
	if Table[geometry.WhiteKing][g3] >= Table[geometry.WhiteKing][g1] {
		t.Fatalf("expected a white king off its home rank to score lower")
	}
}
