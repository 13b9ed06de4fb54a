// Package vbe validates VESA BIOS Extensions display modes.
package vbe

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode limits of the VBE interface.
const (
	MinWidth  = 64
	MinHeight = 64
	MaxWidth  = 2048
	MaxHeight = 1536

	// FramebufferSize is the linear framebuffer size a mode must fit into.
	FramebufferSize = 16 * 1024 * 1024
)

// Mode is a display mode requested through the VBE interface.
type Mode struct {
	Width  uint32
	Height uint32
	BPP    uint32
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%dx%d", m.Width, m.Height, m.BPP)
}

// Pitch returns the 4 byte aligned length of one scanline in bytes.
func (m Mode) Pitch() uint32 {
	bytesPerPixel := (m.BPP + 7) / 8
	return (m.Width*bytesPerPixel + 3) &^ 3
}

// Validate checks whether the mode can be activated on the device.
func Validate(mode Mode) error {
	if mode.Width < MinWidth || mode.Width > MaxWidth {
		return fmt.Errorf("unsupported width %d", mode.Width)
	}
	if mode.Height < MinHeight || mode.Height > MaxHeight {
		return fmt.Errorf("unsupported height %d", mode.Height)
	}

	switch mode.BPP {
	case 8, 15, 16, 24, 32:
	default:
		return fmt.Errorf("unsupported color depth %d", mode.BPP)
	}

	required := uint64(mode.Pitch()) * uint64(mode.Height)
	if required > FramebufferSize {
		return fmt.Errorf("mode %s needs %d bytes of framebuffer, %d available",
			mode, required, FramebufferSize)
	}

	return nil
}

// ParseMode parses a mode string in the form "1024x768x32".
func ParseMode(s string) (Mode, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 3 {
		return Mode{}, fmt.Errorf("invalid mode '%s', expected <width>x<height>x<bpp>", s)
	}

	values := make([]uint32, len(parts))
	for i, part := range parts {
		value, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return Mode{}, fmt.Errorf("invalid mode '%s': %w", s, err)
		}
		values[i] = uint32(value)
	}

	return Mode{Width: values[0], Height: values[1], BPP: values[2]}, nil
}
