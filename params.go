package imdx9

import (
	"fmt"
	"strings"
)

// Format is the pixel format of the back buffer.
type Format int

// The back buffer formats understood by the device bootstrap.
const (
	FormatUnknown Format = iota
	FormatR5G6B5
	FormatX8R8G8B8
	FormatA8R8G8B8
)

var formatNames = map[Format]string{
	FormatUnknown:  "unknown",
	FormatR5G6B5:   "r5g6b5",
	FormatX8R8G8B8: "x8r8g8b8",
	FormatA8R8G8B8: "a8r8g8b8",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the back buffer format with the given name.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, s := range formatNames {
		if s == name {
			return f, nil
		}
	}
	return FormatUnknown, fmt.Errorf("unsupported back buffer format: %q", name)
}

// SwapEffect tells the device what happens to the back buffer on present.
type SwapEffect int

const (
	SwapDiscard SwapEffect = iota
	SwapFlip
	SwapCopy
)

func (s SwapEffect) String() string {
	switch s {
	case SwapDiscard:
		return "discard"
	case SwapFlip:
		return "flip"
	case SwapCopy:
		return "copy"
	}
	return fmt.Sprintf("SwapEffect(%d)", int(s))
}

// PresentInterval controls how present synchronises with the display refresh.
type PresentInterval int

const (
	IntervalDefault PresentInterval = iota
	IntervalOne
	IntervalImmediate
)

// RefreshRateDefault lets the adapter choose the refresh rate. It is the
// only valid value in windowed mode.
const RefreshRateDefault = 0

// PresentParams describes the back buffer and the swap behavior of the device.
// It is passed once at device creation time and is never changed afterwards.
type PresentParams struct {
	BackBufferCount  int
	BackBufferFormat Format
	BackBufferWidth  int
	BackBufferHeight int
	Windowed         bool
	SwapEffect       SwapEffect
	RefreshRate      int
	PresentInterval  PresentInterval
}

// NewPresentParams returns the presentation parameters of a windowed device
// whose back buffer is exactly width×height pixels.
func NewPresentParams(width, height int) (PresentParams, error) {
	if width <= 0 || height <= 0 {
		return PresentParams{}, fmt.Errorf("invalid back buffer size %dx%d", width, height)
	}
	return PresentParams{
		BackBufferCount:  1,
		BackBufferFormat: FormatR5G6B5,
		BackBufferWidth:  width,
		BackBufferHeight: height,
		Windowed:         true,
		SwapEffect:       SwapDiscard,
		RefreshRate:      RefreshRateDefault,
		PresentInterval:  IntervalDefault,
	}, nil
}
