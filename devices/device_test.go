package devices

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/cpu"
)

func TestConnect(t *testing.T) {
	var dm Map

	if !dm.Connect(&testDevice{id: NewID(1, 1)}) {
		t.Fatalf("expected first device to connect")
	}
	if !dm.Connect(&testDevice{id: NewID(1, 2)}) {
		t.Fatalf("expected second device to connect")
	}
	if dm.Connect(&testDevice{id: NewID(1, 1)}) {
		t.Fatalf("expected duplicate device to be rejected")
	}

	if dm.Find(NewID(1, 2)) != 1 {
		t.Fatalf("want index 1; have %d", dm.Find(NewID(1, 2)))
	}
	if dm.Find(NewID(2, 1)) != -1 {
		t.Fatalf("expected unknown device to be missing")
	}
}

func TestStartupShutdown(t *testing.T) {
	a := &testDevice{id: NewID(1, 1)}
	b := &testDevice{id: NewID(1, 2)}
	dm := Map{a, b}

	if err := dm.Startup(); err != nil {
		t.Fatalf("Startup failure: %v", err)
	}
	if !a.running || !b.running {
		t.Fatalf("devices not started")
	}

	if err := dm.Shutdown(); err != nil {
		t.Fatalf("Shutdown failure: %v", err)
	}
	if a.running || b.running {
		t.Fatalf("devices not shut down")
	}
}

func TestStartupErrors(t *testing.T) {
	failure := errors.New("no display")
	dm := Map{
		&testDevice{id: NewID(1, 1), err: failure},
		&testDevice{id: NewID(1, 2)},
		&testDevice{id: NewID(1, 3), err: failure},
	}

	err := dm.Startup()
	set, ok := err.(ErrorSet)
	if !ok {
		t.Fatalf("want ErrorSet; have %T", err)
	}
	if set.Len() != 2 {
		t.Fatalf("want 2 errors; have %d", set.Len())
	}
	if errors.Cause(set[0]) != failure {
		t.Fatalf("unexpected cause %v", errors.Cause(set[0]))
	}
	if !strings.Contains(set.Error(), "0001:0003: no display") {
		t.Fatalf("error set does not name the failing device:\n%s", set.Error())
	}
}

func TestUpdate(t *testing.T) {
	dev := &testDevice{id: NewID(1, 1)}
	dm := Map{dev}
	vm := cpu.New(nil)

	if err := dm.Update(vm); err != nil {
		t.Fatalf("Update failure: %v", err)
	}
	if dev.updates != 1 {
		t.Fatalf("want 1 update; have %d", dev.updates)
	}
}

func TestID(t *testing.T) {
	id := NewID(0xc8, 0x0002)
	if id.Manufacturer() != 0xc8 || id.Serial() != 2 {
		t.Fatalf("unexpected id components %x %x", id.Manufacturer(), id.Serial())
	}
	if id.String() != "00c8:0002" {
		t.Fatalf("unexpected id string %q", id.String())
	}
}

type testDevice struct {
	id      ID
	err     error
	running bool
	updates int
}

func (d *testDevice) ID() ID { return d.id }

func (d *testDevice) Startup() error {
	if d.err != nil {
		return d.err
	}
	d.running = true
	return nil
}

func (d *testDevice) Shutdown() error {
	d.running = false
	return nil
}

func (d *testDevice) Update(Machine) error {
	d.updates++
	return nil
}

func TestErrorSetErr(t *testing.T) {
	var set ErrorSet
	if set.Err() != nil {
		t.Fatalf("expected nil error for empty set")
	}

	set.Append(errors.New("a"), errors.New("b"))
	if set.Err() == nil || set.Error() != "a\nb\n" {
		t.Fatalf("unexpected error set %q", set.Error())
	}
}
