package codec

import "github.com/deviantintegral/flameconnect/pkg/models"

const tempUnitPayloadSize = 1

func encodeTempUnit(p models.TempUnitParam) ([]byte, error) {
	return []byte{byte(p.Unit)}, nil
}

func decodeTempUnit(payload []byte) (models.Parameter, error) {
	if len(payload) < tempUnitPayloadSize {
		return nil, &models.DecodeError{ParameterID: models.ParamIDTempUnit, Offset: len(payload), Reason: models.DecodeReasonShortPayload}
	}
	return models.TempUnitParam{Unit: models.TempUnit(payload[0])}, nil
}
