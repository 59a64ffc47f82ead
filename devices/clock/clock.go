// Package clock paces the two independent CHIP-8 clocks: the instruction
// clock and the fixed 60Hz timer clock.
package clock

import "time"

// TimerFrequency is the rate at which the delay and sound timers count down.
const TimerFrequency = 60

// MaxElapsed caps the time a single Advance call accounts for. Anything beyond
// it is dropped, so a stalled host does not try to catch up in one burst.
const MaxElapsed = time.Second / 4

// Clock converts elapsed wall-clock time into instruction cycles and timer ticks.
type Clock struct {
	cycle    time.Duration // Time per instruction cycle.
	tick     time.Duration // Time per timer tick.
	cycleAcc time.Duration // Time not yet spent on cycles.
	tickAcc  time.Duration // Time not yet spent on ticks.
}

// New creates a clock running instructions at the given frequency in herz.
// Frequencies below 1 are treated as 1.
func New(frequency int) *Clock {
	if frequency < 1 {
		frequency = 1
	}

	return &Clock{
		cycle: time.Second / time.Duration(frequency),
		tick:  time.Second / TimerFrequency,
	}
}

// Frequency returns the instruction frequency in herz.
func (c *Clock) Frequency() int {
	return int(time.Second / c.cycle)
}

// Advance moves the clock forward by elapsed and returns the number of
// instruction cycles and timer ticks which became due.
func (c *Clock) Advance(elapsed time.Duration) (cycles, ticks int) {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > MaxElapsed {
		elapsed = MaxElapsed
	}

	c.cycleAcc += elapsed
	c.tickAcc += elapsed

	cycles = int(c.cycleAcc / c.cycle)
	c.cycleAcc -= time.Duration(cycles) * c.cycle

	ticks = int(c.tickAcc / c.tick)
	c.tickAcc -= time.Duration(ticks) * c.tick
	return
}

// Reset discards any accumulated time.
func (c *Clock) Reset() {
	c.cycleAcc = 0
	c.tickAcc = 0
}
