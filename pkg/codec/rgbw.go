package codec

import "github.com/deviantintegral/flameconnect/pkg/models"

// RGBW channels occupy four consecutive wire bytes in R, B, G, W order —
// note the green/blue swap against the in-memory R, G, B, W field order
// (spec.md §3.2, §4.2.3). This file is the only place that swap exists.

func encodeRGBW(c models.RGBWColor) [4]byte {
	return [4]byte{c.Red, c.Blue, c.Green, c.White}
}

func decodeRGBW(b []byte) models.RGBWColor {
	return models.RGBWColor{Red: b[0], Green: b[2], Blue: b[1], White: b[3]}
}
