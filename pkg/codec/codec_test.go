package codec

import (
	"encoding/base64"
	"testing"

	"github.com/matryer/is"

	"github.com/deviantintegral/flameconnect/pkg/models"
)

func TestScenarioA_ModeParamTurningOnAt22_5(t *testing.T) {
	is := is.New(t)

	p := models.ModeParam{Mode: models.FireModeManual, TargetTemp: 22.5}

	encoded, err := EncodeParameter(p)
	is.NoErr(err)
	is.Equal(encoded, "QQEDARYF")

	decoded, err := DecodeEnvelope(encoded)
	is.NoErr(err)
	is.Equal(decoded, p)
}

func TestScenarioB_TimerParamAt120Minutes(t *testing.T) {
	is := is.New(t)

	p := models.TimerParam{TimerStatus: models.TimerStatusEnabled, DurationMinutes: 120}

	payload, err := encodeTimer(p)
	is.NoErr(err)
	is.Equal(payload, []byte{0x01, 0x78, 0x00})

	decoded, err := decodeTimer(payload)
	is.NoErr(err)
	is.Equal(decoded, p)

	p256 := p.WithDurationMinutes(256)
	payload256, err := encodeTimer(p256)
	is.NoErr(err)
	is.Equal(payload256, []byte{0x01, 0x00, 0x01})
}

func TestScenarioC_HeatParamBoost15MinutesAt21(t *testing.T) {
	is := is.New(t)

	p := models.HeatParam{
		HeatStatus:          models.HeatStatusOn,
		HeatMode:            models.HeatModeBoost,
		SetpointTemperature: 21.0,
		BoostDuration:       15,
	}

	payload, err := encodeHeat(p)
	is.NoErr(err)
	is.Equal(payload, []byte{0x01, 0x01, 0x15, 0x00, 0x0E})

	decoded, err := decodeHeat(payload)
	is.NoErr(err)
	is.Equal(decoded, p)
}

func TestScenarioD_FlameEffectRoundTripUnderBitPacking(t *testing.T) {
	is := is.New(t)

	base := models.FlameEffectParam{
		FlameSpeed:      3,
		Brightness:      models.BrightnessHigh,
		PulsatingEffect: models.PulsatingEffectOff,
		MediaColor:      models.RGBWColor{Red: 255, Green: 0, Blue: 128, White: 0},
	}

	payload, err := encodeFlameEffect(base)
	is.NoErr(err)
	is.Equal(payload[offFlameSpeed], byte(2))      // 3 - 1
	is.Equal(payload[offBrightnessPulse], byte(0)) // High, Off
	is.Equal(payload[offMediaColor:offMediaColor+4], []byte{0xFF, 0x80, 0x00, 0x00})

	mutated := base.WithPulsatingEffect(models.PulsatingEffectOn)
	mutatedPayload, err := encodeFlameEffect(mutated)
	is.NoErr(err)
	is.Equal(mutatedPayload[offBrightnessPulse], byte(0x02))
	is.Equal(mutatedPayload[offFlameSpeed], payload[offFlameSpeed])
	is.Equal(mutatedPayload[offMediaColor:offMediaColor+4], payload[offMediaColor:offMediaColor+4])

	// the receiver is untouched by With*
	is.Equal(base.PulsatingEffect, models.PulsatingEffectOff)

	decoded, err := decodeFlameEffect(payload)
	is.NoErr(err)
	decodedParam := decoded.(models.FlameEffectParam)
	is.Equal(decodedParam.FlameSpeed, 3)
	is.Equal(decodedParam.Brightness, models.BrightnessHigh)
	is.Equal(decodedParam.PulsatingEffect, models.PulsatingEffectOff)
	is.Equal(decodedParam.MediaColor, base.MediaColor)
}

func TestScenarioF_UnknownParameterSkippedByDispatch(t *testing.T) {
	is := is.New(t)

	_, err := DecodeParameter(9999, []byte{0x00})
	is.True(err != nil)

	var decodeErr *models.DecodeError
	is.True(asDecodeError(err, &decodeErr))
	is.Equal(decodeErr.Reason, models.DecodeReasonUnknownParameterID)
}

func asDecodeError(err error, target **models.DecodeError) bool {
	if de, ok := err.(*models.DecodeError); ok {
		*target = de
		return true
	}
	return false
}

func TestBitPackingAllFourCombinations(t *testing.T) {
	is := is.New(t)

	cases := []struct {
		brightness models.Brightness
		pulsating  models.PulsatingEffect
		want       byte
	}{
		{models.BrightnessHigh, models.PulsatingEffectOff, 0b00},
		{models.BrightnessHigh, models.PulsatingEffectOn, 0b10},
		{models.BrightnessLow, models.PulsatingEffectOff, 0b01},
		{models.BrightnessLow, models.PulsatingEffectOn, 0b11},
	}

	for _, c := range cases {
		packed := packBrightnessPulse(c.brightness, c.pulsating)
		is.Equal(packed, c.want)

		unpackedB, unpackedP := unpackBrightnessPulse(packed)
		is.Equal(unpackedB, c.brightness)
		is.Equal(unpackedP, c.pulsating)
	}
}

func TestEnvelopeFraming(t *testing.T) {
	is := is.New(t)

	params := []models.Parameter{
		models.TempUnitParam{Unit: models.TempUnitCelsius},
		models.ModeParam{Mode: models.FireModeManual, TargetTemp: 22.5},
		models.SoundParam{Volume: 128, SoundFile: 3},
	}

	for _, p := range params {
		encoded, err := EncodeParameter(p)
		is.NoErr(err)

		raw, err := base64.StdEncoding.DecodeString(encoded)
		is.NoErr(err)

		is.True(len(raw) >= envelopeHeaderSize)

		payload, err := encodePayload(p)
		is.NoErr(err)

		is.Equal(int(raw[2]), len(payload))
		is.Equal(len(raw), envelopeHeaderSize+len(payload))
	}
}

func TestShortPayloadDetection(t *testing.T) {
	is := is.New(t)

	cases := []struct {
		name string
		id   uint16
		full []byte
	}{
		{"tempunit", models.ParamIDTempUnit, []byte{0x01}},
		{"mode", models.ParamIDMode, []byte{0x01, 0x16, 0x05}},
		{"heat", models.ParamIDHeat, []byte{0x01, 0x01, 0x15, 0x00, 0x0E}},
		{"timer", models.ParamIDTimer, []byte{0x01, 0x78, 0x00}},
		{"sound", models.ParamIDSound, []byte{0x80, 0x03}},
	}

	for _, c := range cases {
		for n := 0; n < len(c.full); n++ {
			_, err := DecodeParameter(c.id, c.full[:n])
			is.True(err != nil)

			var decodeErr *models.DecodeError
			is.True(asDecodeError(err, &decodeErr))
			is.Equal(decodeErr.Reason, models.DecodeReasonShortPayload)
		}
	}
}

func TestHeatParamTrailingBytesTolerated(t *testing.T) {
	is := is.New(t)

	payload := []byte{0x01, 0x01, 0x15, 0x00, 0x0E, 0xAA, 0xBB}
	decoded, err := decodeHeat(payload)
	is.NoErr(err)

	is.Equal(decoded, models.HeatParam{
		HeatStatus:          models.HeatStatusOn,
		HeatMode:            models.HeatModeBoost,
		SetpointTemperature: 21.0,
		BoostDuration:       15,
	})
}

func TestEncodeFlameSpeedOutOfRange(t *testing.T) {
	is := is.New(t)

	_, err := encodeFlameEffect(models.FlameEffectParam{FlameSpeed: 6})
	is.True(err != nil)

	var encodeErr *models.EncodeError
	is.True(asEncodeError(err, &encodeErr))
	is.Equal(encodeErr.Reason, models.EncodeReasonValueOutOfRange)
}

func asEncodeError(err error, target **models.EncodeError) bool {
	if ee, ok := err.(*models.EncodeError); ok {
		*target = ee
		return true
	}
	return false
}
