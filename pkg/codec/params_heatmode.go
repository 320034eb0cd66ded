package codec

import "github.com/deviantintegral/flameconnect/pkg/models"

const heatModePayloadSize = 1

func encodeHeatMode(p models.HeatModeParam) ([]byte, error) {
	return []byte{byte(p.HeatControl)}, nil
}

func decodeHeatMode(payload []byte) (models.Parameter, error) {
	if len(payload) < heatModePayloadSize {
		return nil, &models.DecodeError{ParameterID: models.ParamIDHeatMode, Offset: len(payload), Reason: models.DecodeReasonShortPayload}
	}
	return models.HeatModeParam{HeatControl: models.HeatControl(payload[0])}, nil
}
