package host

import (
	"fmt"
	"time"

	"github.com/op/go-logging"

	"github.com/Hardware7253/ElectronicChessBoard/board"
	"github.com/Hardware7253/ElectronicChessBoard/clock"
	"github.com/Hardware7253/ElectronicChessBoard/search"
)

var log = logging.MustGetLogger("boardsim")

// Driver wires the search core to a simulated board. On real hardware
// a Driver's clock.Counter samples the MCU's DWT cycle register and its
// occupancy snapshots come from the Hall-effect sensor grid; here the
// cycle counter is derived from time.Now and occupancy snapshots are
// just board.Board.ToBitboard values, but the contract (reconcile a
// physical move, then render the change back out) is the same.
type Driver struct {
	Config  Config
	Counter *clock.Counter
}

// NewDriver builds a Driver whose cycle counter is paced by wall-clock
// time scaled to cfg.ClockMHz, standing in for the DWT register on the
// target MCU.
func NewDriver(cfg Config) *Driver {
	start := time.Now()
	counter := clock.New(func() uint32 {
		elapsedNanos := time.Since(start).Nanoseconds()
		cycles := uint64(elapsedNanos) * cfg.ClockMHz / 1000
		return uint32(cycles)
	})
	return &Driver{Config: cfg, Counter: counter}
}

// ReconcileMove diffs two full-board occupancy snapshots (as produced
// by board.Board.ToBitboard) into the (initial, target) squares a
// physical piece lift-and-place represents. It only handles a
// non-capturing move between two otherwise-identical snapshots; capture
// disambiguation, castling and en passant are resolved by the engine's
// own NewTurn once the squares are known, not by the bit diff itself.
func (d *Driver) ReconcileMove(before, after uint64) (initial, target int, err error) {
	from, to, ok := board.FindBitboardMove(before, after)
	if !ok {
		return 0, 0, fmt.Errorf("host: could not reconcile a single move from board diff")
	}
	return from, to, nil
}

// RenderMove returns the bitboard of squares whose occupancy changed
// between before and after, the set of LEDs the driver should flash to
// highlight the engine's move.
func (d *Driver) RenderMove(before, after board.Board) uint64 {
	return before.ToBitboard() ^ after.ToBitboard()
}

// Think runs a fixed-depth search against b and logs the outcome.
func (d *Driver) Think(b board.Board, masterTeam bool) search.AlphaBeta {
	d.Counter.Update()
	startCycles := d.Counter.Cycles

	result := search.GenBestMove(
		masterTeam,
		d.Counter,
		startCycles,
		d.Config.MaxElapsedCycles(),
		d.Config.SearchDepth,
		0,
		0,
		search.NewAlphaBeta(),
		b,
	)

	d.Counter.Update()
	elapsed := d.Counter.Cycles - startCycles
	if result.PieceMove == nil {
		log.Warningf("search returned no move after %d cycles", elapsed)
	} else {
		log.Infof("search chose %d -> %d (value %d) in %d cycles",
			result.PieceMove.Initial.Bit, result.PieceMove.FinalBit, result.Alpha, elapsed)
	}
	if elapsed > d.Config.MaxElapsedCycles() {
		log.Warningf("search exceeded its %d cycle budget by %d cycles",
			d.Config.MaxElapsedCycles(), elapsed-d.Config.MaxElapsedCycles())
	}

	return result
}
