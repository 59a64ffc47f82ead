// Package controller drives a CPU at a fixed instruction rate, alongside
// the 60Hz timer clock.
package controller

import (
	"time"

	"github.com/hexaflex/chip8/cpu"
	"github.com/hexaflex/chip8/devices/clock"
)

// Controller controls the execution of a CPU.
//
// Like the CPU itself, a Controller is not safe for concurrent use.
type Controller struct {
	cpu        *cpu.CPU
	clock      *clock.Clock
	start      time.Time
	last       time.Time
	cycleCount uint64
	running    bool
}

// New creates a new controller running at the given instruction frequency.
func New(trace cpu.TraceFunc, frequency int) *Controller {
	return &Controller{
		cpu:   cpu.New(trace),
		clock: clock.New(frequency),
	}
}

// CPU returns the controlled cpu.
func (c *Controller) CPU() *cpu.CPU {
	return c.cpu
}

// Running returns true if the CPU is currently running.
func (c *Controller) Running() bool {
	return c.running
}

// Frequency returns the measured clock frequency in herz.
func (c *Controller) Frequency() float64 {
	if !c.running {
		return 0
	}
	return float64(c.cycleCount) / time.Since(c.start).Seconds()
}

// ToggleRun starts or stops program execution.
func (c *Controller) ToggleRun() {
	c.setRunning(!c.running)
}

// Start begins execution of the program.
func (c *Controller) Start() {
	c.setRunning(true)
}

// Stop pauses execution of the program.
func (c *Controller) Stop() {
	c.setRunning(false)
}

// Update runs all instruction cycles and timer ticks which became due since
// the previous call. Returns true if the sound timer expired in one of the ticks.
// Execution stops on the first error.
func (c *Controller) Update(now time.Time) (bool, error) {
	elapsed := now.Sub(c.last)
	c.last = now

	if !c.running {
		return false, nil
	}

	cycles, ticks := c.clock.Advance(elapsed)

	for i := 0; i < cycles; i++ {
		if err := c.Step(); err != nil {
			return false, err
		}
	}

	var beep bool
	for i := 0; i < ticks; i++ {
		if c.cpu.TickTimers() {
			beep = true
		}
	}

	return beep, nil
}

// Step performs a single execution step.
func (c *Controller) Step() error {
	c.cycleCount++

	if err := c.cpu.Step(); err != nil {
		c.setRunning(false)
		return err
	}

	return nil
}

// Startup resets the cpu and loads the given program.
func (c *Controller) Startup(program []byte) error {
	c.cpu.Reset()
	c.clock.Reset()
	return c.cpu.Load(program)
}

// setRunning determines if the CPU is running or is paused.
func (c *Controller) setRunning(v bool) {
	c.running = v
	c.start = time.Now()
	c.last = c.start
	c.cycleCount = 0
	c.clock.Reset()
}
