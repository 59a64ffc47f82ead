package cpu

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
	DisplaySize   = DisplayWidth * DisplayHeight
)

// Display holds the monochrome framebuffer in row-major order.
// The pixel at (x, y) is stored at index x + DisplayWidth*y.
type Display [DisplaySize]bool

// Pixel returns the state of the pixel at the given coordinates.
// Coordinates wrap around the display edges.
func (d *Display) Pixel(x, y int) bool {
	return d[index(x, y)]
}

// clear turns off all pixels.
func (d *Display) clear() {
	*d = Display{}
}

// drawRow XORs the 8 pixels in row onto the display, most significant bit first,
// starting at (x, y). Returns true if any pixel was turned off in the process.
func (d *Display) drawRow(x, y int, row byte) bool {
	var collision bool

	for bit := 0; bit < 8; bit++ {
		if row&(0x80>>uint(bit)) == 0 {
			continue
		}

		i := index(x+bit, y)
		if d[i] {
			collision = true
		}
		d[i] = !d[i]
	}

	return collision
}

// index returns the framebuffer index for the given coordinates, wrapping both axes.
func index(x, y int) int {
	x %= DisplayWidth
	if x < 0 {
		x += DisplayWidth
	}
	y %= DisplayHeight
	if y < 0 {
		y += DisplayHeight
	}
	return x + DisplayWidth*y
}
