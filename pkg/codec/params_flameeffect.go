package codec

import "github.com/deviantintegral/flameconnect/pkg/models"

const flameEffectPayloadSize = 20

// Byte offsets within the FlameEffectParam payload (spec.md §4.2.3).
const (
	offFlameEffect     = 0
	offFlameSpeed      = 1
	offBrightnessPulse = 2
	offMediaTheme      = 3
	offMediaLight      = 4
	offMediaColor      = 5 // 4 bytes, R,B,G,W
	// offset 9 reserved
	offOverheadLight = 10
	offOverheadColor = 11 // 4 bytes, R,B,G,W
	offLightStatus   = 15
	offFlameColor    = 16
	// offsets 17, 18 reserved
	offAmbientSensor = 19
)

func encodeFlameEffect(p models.FlameEffectParam) ([]byte, error) {
	if p.FlameSpeed < 1 || p.FlameSpeed > 5 {
		return nil, &models.EncodeError{
			ParameterID: models.ParamIDFlameEffect,
			Reason:      models.EncodeReasonValueOutOfRange,
			Detail:      "flame_speed must be 1..5",
		}
	}

	payload := make([]byte, flameEffectPayloadSize)
	payload[offFlameEffect] = byte(p.FlameEffect)
	payload[offFlameSpeed] = byte(p.FlameSpeed - 1)
	payload[offBrightnessPulse] = packBrightnessPulse(p.Brightness, p.PulsatingEffect)
	payload[offMediaTheme] = byte(p.MediaTheme)
	payload[offMediaLight] = byte(p.MediaLight)
	copy(payload[offMediaColor:offMediaColor+4], encodeRGBW(p.MediaColor)[:])
	payload[offOverheadLight] = byte(p.OverheadLight)
	copy(payload[offOverheadColor:offOverheadColor+4], encodeRGBW(p.OverheadColor)[:])
	payload[offLightStatus] = byte(p.LightStatus)
	payload[offFlameColor] = byte(p.FlameColor)
	payload[offAmbientSensor] = byte(p.AmbientSensor)

	return payload, nil
}

func decodeFlameEffect(payload []byte) (models.Parameter, error) {
	if len(payload) < flameEffectPayloadSize {
		return nil, &models.DecodeError{ParameterID: models.ParamIDFlameEffect, Offset: len(payload), Reason: models.DecodeReasonShortPayload}
	}

	brightness, pulsating := unpackBrightnessPulse(payload[offBrightnessPulse])

	return models.FlameEffectParam{
		FlameEffect:     models.FlameEffect(payload[offFlameEffect]),
		FlameSpeed:      int(payload[offFlameSpeed]) + 1,
		Brightness:      brightness,
		PulsatingEffect: pulsating,
		MediaTheme:      models.MediaTheme(payload[offMediaTheme]),
		MediaLight:      models.LightStatus(payload[offMediaLight]),
		MediaColor:      decodeRGBW(payload[offMediaColor : offMediaColor+4]),
		OverheadLight:   models.LightStatus(payload[offOverheadLight]),
		OverheadColor:   decodeRGBW(payload[offOverheadColor : offOverheadColor+4]),
		LightStatus:     models.LightStatus(payload[offLightStatus]),
		FlameColor:      models.FlameColor(payload[offFlameColor]),
		AmbientSensor:   models.LightStatus(payload[offAmbientSensor]),
	}, nil
}

// packBrightnessPulse packs the co-tenant brightness/pulsating-effect
// fields into their shared wire byte: bit0=brightness, bit1=pulsating
// (spec.md §3.3).
func packBrightnessPulse(b models.Brightness, p models.PulsatingEffect) byte {
	var v byte
	if b != models.BrightnessHigh {
		v |= 1 << 0
	}
	if p != models.PulsatingEffectOff {
		v |= 1 << 1
	}
	return v
}

func unpackBrightnessPulse(v byte) (models.Brightness, models.PulsatingEffect) {
	b := models.BrightnessHigh
	if v&(1<<0) != 0 {
		b = models.BrightnessLow
	}
	p := models.PulsatingEffectOff
	if v&(1<<1) != 0 {
		p = models.PulsatingEffectOn
	}
	return b, p
}
