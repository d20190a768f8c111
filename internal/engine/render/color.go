// Package render draws projected meshes onto a display surface.
package render

import "fmt"

// Color is an RGBA color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// String returns the color as #RRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// The fixed palette. Background and object colors cycle through it in order.
var (
	Black = Color{0x00, 0x00, 0x00, 0xFF}
	White = Color{0xFF, 0xFF, 0xFF, 0xFF}
	Red   = Color{0xFF, 0x00, 0x00, 0xFF}
	Green = Color{0x00, 0xFF, 0x00, 0xFF}
	Blue  = Color{0x00, 0x00, 0xFF, 0xFF}
)

// Palette is the ordered color sequence for background/object cycling.
var Palette = []Color{Black, White, Red, Green, Blue}
