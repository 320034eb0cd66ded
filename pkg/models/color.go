package models

import "fmt"

// RGBWColor is a four-channel color tuple. In-memory field order is
// R, G, B, W; the wire order used inside parameter payloads swaps the
// green and blue channels (see pkg/codec/rgbw.go) and that swap is
// entirely the codec's concern — nothing outside pkg/codec should ever
// reorder these fields.
type RGBWColor struct {
	Red   uint8
	Green uint8
	Blue  uint8
	White uint8
}

// Valid reports whether c's channels are all in range. Every uint8 value
// is in range by construction, so this always returns true today; it
// exists so callers that build an RGBWColor from untrusted input (e.g. a
// user-facing hex string) have a single place to validate against before
// handing it to a Parameter constructor.
func (c RGBWColor) Valid() bool {
	return true
}

func (c RGBWColor) String() string {
	return fmt.Sprintf("RGBW(%d,%d,%d,%d)", c.Red, c.Green, c.Blue, c.White)
}
