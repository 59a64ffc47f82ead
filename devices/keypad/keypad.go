// Package keypad maps the host keyboard onto the CHIP-8 hex keypad.
package keypad

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hexaflex/chip8/cpu"
	"github.com/hexaflex/chip8/devices"
)

// Layout maps each CHIP-8 key 0x0-0xF to a host keyboard key.
//
// The default uses the left hand block of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
type Layout [cpu.KeyCount]glfw.Key

// DefaultLayout is the conventional QWERTY mapping.
var DefaultLayout = Layout{
	0x0: glfw.KeyX,
	0x1: glfw.Key1,
	0x2: glfw.Key2,
	0x3: glfw.Key3,
	0x4: glfw.KeyQ,
	0x5: glfw.KeyW,
	0x6: glfw.KeyE,
	0x7: glfw.KeyA,
	0x8: glfw.KeyS,
	0x9: glfw.KeyD,
	0xa: glfw.KeyZ,
	0xb: glfw.KeyC,
	0xc: glfw.Key4,
	0xd: glfw.KeyR,
	0xe: glfw.KeyF,
	0xf: glfw.KeyV,
}

// Device defines all internal doodads for the keypad.
type Device struct {
	window *glfw.Window
	layout Layout
	state  [cpu.KeyCount]bool
}

var _ devices.Device = &Device{}

// New creates a new keypad reading keys from the given window.
func New(window *glfw.Window, layout Layout) *Device {
	return &Device{
		window: window,
		layout: layout,
	}
}

// ID returns the device id.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.HostVendor, 0x0002)
}

// Startup initializes device resources.
func (d *Device) Startup() error {
	d.state = [cpu.KeyCount]bool{}
	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	return nil
}

// Update polls the host keyboard and forwards state changes to the machine.
func (d *Device) Update(m devices.Machine) error {
	for key, hostKey := range d.layout {
		pressed := d.window.GetKey(hostKey) == glfw.Press
		if pressed == d.state[key] {
			continue
		}

		if err := m.SetKey(key, pressed); err != nil {
			return err
		}
		d.state[key] = pressed
	}

	return nil
}

// Release marks all keys as released on the machine.
// Used when the window loses focus, so no key stays stuck.
func (d *Device) Release(m devices.Machine) {
	for key := range d.state {
		if d.state[key] {
			m.SetKey(key, false)
			d.state[key] = false
		}
	}
}
