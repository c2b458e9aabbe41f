/*
Package clock implements the monotonic cycle-count accumulator search
uses to enforce its time budget. It deliberately avoids wall-clock time:
on the target MCU the only available signal is a free-running 32-bit
hardware cycle counter (ARM's DWT) that wraps around roughly once a
minute at 72 MHz, so the accumulator has to detect and
correct for rollover itself.
*/
package clock

import "math"

// Counter accumulates a monotonically increasing cycle count from a
// raw, wrapping 32-bit hardware counter. Read is called once per
// Update and must return the current raw counter value.
type Counter struct {
	Cycles uint64 // total elapsed cycles since the counter was created

	cycleResets uint32
	lastRaw     uint32
	Read        func() uint32
}

// New returns a Counter that samples raw cycle values via read.
func New(read func() uint32) *Counter {
	return &Counter{Read: read}
}

// Update samples the underlying raw counter and folds it into Cycles,
// incrementing the rollover count whenever the raw value decreases.
//
// The rollover term is computed in uint64 arithmetic (cycleResets *
// math.MaxUint32) rather than narrower 32-bit arithmetic, so the
// accumulator itself can't silently overflow while still wrapping at
// exactly the same points the raw hardware counter does.
func (c *Counter) Update() {
	raw := c.Read()
	if raw < c.lastRaw {
		c.cycleResets++
	}
	c.lastRaw = raw
	c.Cycles = uint64(c.cycleResets)*uint64(math.MaxUint32) + uint64(raw)
}

// MillisToCycles converts a millisecond duration into a cycle count at
// the given clock frequency in MHz.
func MillisToCycles(millis uint64, clockMHz uint64) uint64 {
	return millis * clockMHz * 1000
}
