package clock

import (
	"testing"
	"time"
)

func TestAdvance(t *testing.T) {
	c := New(600)

	cycles, ticks := c.Advance(time.Second / 10)
	if cycles != 60 || ticks != 6 {
		t.Fatalf("want 60 cycles, 6 ticks; have %d, %d", cycles, ticks)
	}
}

func TestAdvanceAccumulates(t *testing.T) {
	c := New(1000)

	var cycles, ticks int
	for i := 0; i < 1000; i++ {
		n, m := c.Advance(time.Millisecond / 2)
		cycles += n
		ticks += m
	}

	if cycles != 500 {
		t.Fatalf("want 500 cycles; have %d", cycles)
	}
	if ticks != 30 {
		t.Fatalf("want 30 ticks; have %d", ticks)
	}
}

func TestAdvanceCapped(t *testing.T) {
	c := New(1000)

	cycles, ticks := c.Advance(time.Hour)
	if want := int(MaxElapsed / time.Millisecond); cycles != want {
		t.Fatalf("want %d cycles; have %d", want, cycles)
	}
	if ticks != 15 {
		t.Fatalf("want 15 ticks; have %d", ticks)
	}

	if cycles, ticks = c.Advance(-time.Second); cycles != 0 || ticks != 0 {
		t.Fatalf("negative elapsed time produced %d cycles, %d ticks", cycles, ticks)
	}
}

func TestReset(t *testing.T) {
	c := New(10)
	c.Advance(time.Second / 20)
	c.Reset()

	if cycles, _ := c.Advance(time.Second / 20); cycles != 0 {
		t.Fatalf("accumulated time survived reset")
	}
}

func TestFrequency(t *testing.T) {
	if f := New(700).Frequency(); f != 700 {
		t.Fatalf("want 700; have %d", f)
	}
	if f := New(0).Frequency(); f != 1 {
		t.Fatalf("want 1; have %d", f)
	}
}
