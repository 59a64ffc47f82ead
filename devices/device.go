// Package devices defines the host peripherals which connect a CHIP-8 machine
// to the outside world.
package devices

import (
	"log"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/cpu"
)

// Machine is the view of the interpreter a device gets to work with.
type Machine interface {
	// SetKey sets the pressed state of one of the 16 keypad keys.
	SetKey(key int, pressed bool) error

	// Display returns a copy of the current framebuffer.
	Display() cpu.Display
}

// Device represents a host peripheral device.
type Device interface {
	// ID yields the manufacturer and serial number for the device.
	ID() ID

	// Startup initializes internal resources.
	Startup() error

	// Shutdown cleans up internal resources.
	Shutdown() error

	// Update synchronizes the device with the machine state.
	// It is called once per host frame.
	Update(Machine) error
}

// Map contains a list of registered peripherals.
type Map []Device

// Connect adds the given device to the device map.
// Returns false if the device type is already present in the set.
func (dm *Map) Connect(dev Device) bool {
	if (*dm).Find(dev.ID()) > -1 {
		return false
	}

	*dm = append(*dm, dev)
	return true
}

// Startup initializes internal resources.
func (dm Map) Startup() error {
	var errorset ErrorSet

	for _, dev := range dm {
		log.Println(dev.ID(), "startup")
		if err := dev.Startup(); err != nil {
			errorset.Append(errors.Wrapf(err, "%s", dev.ID()))
		}
	}

	return errorset.Err()
}

// Shutdown cleans up internal resources.
func (dm Map) Shutdown() error {
	var errorset ErrorSet

	for _, dev := range dm {
		log.Println(dev.ID(), "shutdown")
		if err := dev.Shutdown(); err != nil {
			errorset.Append(errors.Wrapf(err, "%s", dev.ID()))
		}
	}

	return errorset.Err()
}

// Update synchronizes all devices with the given machine.
func (dm Map) Update(m Machine) error {
	var errorset ErrorSet

	for _, dev := range dm {
		if err := dev.Update(m); err != nil {
			errorset.Append(errors.Wrapf(err, "%s", dev.ID()))
		}
	}

	return errorset.Err()
}

// Find returns the index for the device with the given id.
// Returns -1 if it can't be found.
func (dm Map) Find(id ID) int {
	for i, dev := range dm {
		if dev.ID() == id {
			return i
		}
	}
	return -1
}
