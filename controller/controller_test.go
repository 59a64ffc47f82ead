package controller

import (
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/cpu"
)

func TestUpdatePaused(t *testing.T) {
	c := New(nil, 100)
	c.Startup([]byte{0x70, 0x01, 0x12, 0x00})

	if _, err := c.Update(time.Now().Add(time.Second)); err != nil {
		t.Fatalf("Update failure: %v", err)
	}
	if c.CPU().V(0) != 0 {
		t.Fatalf("paused controller executed instructions")
	}
}

func TestUpdateRuns(t *testing.T) {
	// loop: ADD V0, 1
	//       JP loop
	c := New(nil, 100)
	c.Startup([]byte{0x70, 0x01, 0x12, 0x00})
	c.Start()

	if _, err := c.Update(c.last.Add(time.Second / 10)); err != nil {
		t.Fatalf("Update failure: %v", err)
	}

	// 10 cycles: 5 ADD and 5 JP.
	if v := c.CPU().V(0); v != 5 {
		t.Fatalf("want V0 5; have %d", v)
	}
}

func TestUpdateBeep(t *testing.T) {
	// LD V0, 1
	// LD ST, V0
	// loop: JP loop
	c := New(nil, 600)
	c.Startup([]byte{0x60, 0x01, 0xf0, 0x18, 0x12, 0x04})
	c.Start()

	beep, err := c.Update(c.last.Add(time.Second / 30))
	if err != nil {
		t.Fatalf("Update failure: %v", err)
	}
	if !beep {
		t.Fatalf("expected a beep")
	}
	if c.CPU().SoundTimer() != 0 {
		t.Fatalf("sound timer still running")
	}
}

func TestUpdateStopsOnError(t *testing.T) {
	c := New(nil, 100)
	c.Startup([]byte{0xff, 0xff})
	c.Start()

	_, err := c.Update(c.last.Add(time.Second))
	if errors.Cause(err) != cpu.ErrUnknownOpcode {
		t.Fatalf("want %v; have %v", cpu.ErrUnknownOpcode, err)
	}
	if c.Running() {
		t.Fatalf("controller still running after error")
	}
}

func TestStartupTooLarge(t *testing.T) {
	c := New(nil, 100)

	err := c.Startup(make([]byte, cpu.ProgramMaxSize+1))
	if errors.Cause(err) != cpu.ErrProgramTooLarge {
		t.Fatalf("want %v; have %v", cpu.ErrProgramTooLarge, err)
	}
}
