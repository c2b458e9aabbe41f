package invariant_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hardware7253/ElectronicChessBoard/internal/invariant"
)

// TestRandomGames plays a modest batch of random games (small compared
// to the corpus's own 10^4+ ply property-test seed, but large enough to
// exercise castling, en passant, promotion and both mate conditions
// within a normal `go test` budget) and checks that every applied
// position still satisfies the structural invariants.
func TestRandomGames(t *testing.T) {
	const (
		games    = 25
		maxPlies = 120
	)

	totalPlies := 0
	for seed := int64(0); seed < games; seed++ {
		rng := rand.New(rand.NewSource(seed))
		plies, err := invariant.RandomGame(rng, maxPlies)
		require.NoError(t, err, "seed %d", seed)
		totalPlies += plies
	}

	require.Greater(t, totalPlies, 0, "expected at least one applied ply across all games")
}
