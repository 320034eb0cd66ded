package codec

// Temperature values on the wire are two bytes: whole part (0..255) and
// tenths (0..9) (spec.md §4.2.4). This file is the only place that knows
// that layout; every variant decoder/encoder calls through it rather than
// repeating the math, matching the "small numeric transform lives next to
// the struct it serializes" convention used for bit-math helpers
// elsewhere in this protocol.

// encodeTemperature splits t into its wire whole/tenths bytes, rounding
// the fractional part to the nearest tenth and carrying into whole on a
// rounding overflow (e.g. 21.96 -> whole=22, tenths=0, not tenths=10).
func encodeTemperature(t float64) (whole, tenths uint8) {
	w := int(t)
	frac := t - float64(w)
	tn := int(frac*10 + 0.5)
	if tn >= 10 {
		w++
		tn = 0
	}
	if tn < 0 {
		tn = 0
	}
	return uint8(w), uint8(tn)
}

// decodeTemperature combines a whole/tenths byte pair into a float64.
// tenths > 9 is accepted as-is (spec.md §4.2.2): it is syntactically
// valid, just semantically unusual, and a future protocol revision may
// tighten this.
func decodeTemperature(whole, tenths uint8) float64 {
	return float64(whole) + float64(tenths)/10
}
