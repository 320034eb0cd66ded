package codec

import "github.com/deviantintegral/flameconnect/pkg/models"

const logEffectPayloadSize = 8

func encodeLogEffect(p models.LogEffectParam) ([]byte, error) {
	if p.Pattern < 0 || p.Pattern > 255 {
		return nil, &models.EncodeError{ParameterID: models.ParamIDLogEffect, Reason: models.EncodeReasonValueOutOfRange, Detail: "pattern must be 0..255"}
	}

	payload := make([]byte, logEffectPayloadSize)
	payload[0] = byte(p.LogEffect)
	payload[1] = byte(p.MediaTheme)
	copy(payload[2:6], encodeRGBW(p.Color)[:])
	payload[6] = byte(p.Pattern)
	// payload[7] reserved, left zero
	return payload, nil
}

func decodeLogEffect(payload []byte) (models.Parameter, error) {
	if len(payload) < logEffectPayloadSize {
		return nil, &models.DecodeError{ParameterID: models.ParamIDLogEffect, Offset: len(payload), Reason: models.DecodeReasonShortPayload}
	}
	return models.LogEffectParam{
		LogEffect:  models.FlameEffect(payload[0]),
		MediaTheme: models.MediaTheme(payload[1]),
		Color:      decodeRGBW(payload[2:6]),
		Pattern:    int(payload[6]),
	}, nil
}
