package codec

import "github.com/deviantintegral/flameconnect/pkg/models"

const modePayloadSize = 3

func encodeMode(p models.ModeParam) ([]byte, error) {
	whole, tenths := encodeTemperature(p.TargetTemp)
	return []byte{byte(p.Mode), whole, tenths}, nil
}

func decodeMode(payload []byte) (models.Parameter, error) {
	if len(payload) < modePayloadSize {
		return nil, &models.DecodeError{ParameterID: models.ParamIDMode, Offset: len(payload), Reason: models.DecodeReasonShortPayload}
	}
	return models.ModeParam{
		Mode:       models.FireMode(payload[0]),
		TargetTemp: decodeTemperature(payload[1], payload[2]),
	}, nil
}
