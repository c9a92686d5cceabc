package preset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit sRGB color with alpha.
type Color struct {
	R, G, B, A uint8
}

// ParseHex accepts RGB, RRGGBB and AARRGGBB, ignoring any non-alphanumeric
// characters such as a leading '#'. Anything else is opaque black.
func ParseHex(s string) Color {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	hex := b.String()
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		v = 0
	}
	switch len(hex) {
	case 3:
		return Color{
			R: uint8((v >> 8) * 17),
			G: uint8((v >> 4 & 0xF) * 17),
			B: uint8((v & 0xF) * 17),
			A: 255,
		}
	case 6:
		return Color{R: uint8(v >> 16), G: uint8(v >> 8 & 0xFF), B: uint8(v & 0xFF), A: 255}
	case 8:
		return Color{A: uint8(v >> 24), R: uint8(v >> 16 & 0xFF), G: uint8(v >> 8 & 0xFF), B: uint8(v & 0xFF)}
	default:
		return Color{A: 255}
	}
}

// Hex renders "#RRGGBB", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Over composites c onto an opaque background.
func (c Color) Over(bg Color) Color {
	if c.A == 255 {
		return c
	}
	out := bg.colorful().BlendRgb(c.colorful(), float64(c.A)/255)
	return fromColorful(out)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: 255}
}
