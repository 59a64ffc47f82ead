// Package screen renders the CHIP-8 framebuffer through OpenGL.
package screen

import (
	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/cpu"
	"github.com/hexaflex/chip8/devices"
)

// Default colors for unlit and lit pixels, as RGBA.
var (
	DefaultBackground = [4]float32{0.05, 0.05, 0.08, 1}
	DefaultForeground = [4]float32{0.85, 0.9, 0.8, 1}
)

// Device defines all internal doodads for the display.
type Device struct {
	palette     [2 * 4]float32
	pixels      [cpu.DisplaySize]byte
	last        cpu.Display
	shader      uint32
	vao         uint32
	vbo         uint32
	texture     uint32
	dirty       bool
	initialized bool
}

var _ devices.Device = &Device{}

// New creates a new device using the default colors.
func New() *Device {
	var d Device
	d.SetColors(DefaultBackground, DefaultForeground)
	return &d
}

// ID returns the device identifier.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.HostVendor, 0x0001)
}

// SetColors sets the colors used for unlit and lit pixels.
func (d *Device) SetColors(background, foreground [4]float32) {
	copy(d.palette[0:4], background[:])
	copy(d.palette[4:8], foreground[:])
	d.dirty = true
}

// Startup initializes device resources. Requires a current OpenGL context.
func (d *Device) Startup() error {
	var err error

	d.shader, err = compileProgram(vertex, fragment)
	if err != nil {
		return errors.Wrapf(err, "failed to compile shaders")
	}

	gl.UseProgram(d.shader)

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(d.shader, glStr("vertPos")))
	texCoordAttrib := uint32(gl.GetAttribLocation(d.shader, glStr("vertTexCoord")))

	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(texCoordAttrib)
	gl.VertexAttribPointer(texCoordAttrib, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))

	d.texture = makeTexture()
	d.dirty = true
	d.initialized = true
	d.swap()
	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	if !d.initialized {
		return nil
	}

	d.initialized = false
	gl.DeleteTextures(1, &d.texture)
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteVertexArrays(1, &d.vao)
	gl.DeleteProgram(d.shader)
	return nil
}

// Update copies the machine's framebuffer into the display texture if it changed.
func (d *Device) Update(m devices.Machine) error {
	display := m.Display()
	if display == d.last && !d.dirty {
		return nil
	}

	d.last = display
	for i, lit := range display {
		if lit {
			d.pixels[i] = 0xff
		} else {
			d.pixels[i] = 0
		}
	}

	d.dirty = true
	d.swap()
	return nil
}

// Draw renders the display contents.
func (d *Device) Draw() {
	if !d.initialized {
		return
	}

	gl.UseProgram(d.shader)
	gl.BindVertexArray(d.vao)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)

	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// swap uploads pending palette and pixel changes to the GPU.
func (d *Device) swap() {
	if !d.initialized || !d.dirty {
		return
	}

	gl.UseProgram(d.shader)
	palette := gl.GetUniformLocation(d.shader, glStr("palette"))
	gl.Uniform4fv(palette, 2, &d.palette[0])

	uploadTexture(d.texture, cpu.DisplayWidth, cpu.DisplayHeight, d.pixels[:])
	d.dirty = false
}

var quadVertices = []float32{
	//  X, Y, Z, U, V
	-1.0, -1.0, 0.0, 0.0, 1.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	1.0, 1.0, 0.0, 1.0, 0.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
}
