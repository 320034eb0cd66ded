package codec

import (
	"encoding/binary"

	"github.com/deviantintegral/flameconnect/pkg/models"
)

const errorPayloadSize = 4

// ErrorParam is read-only (spec.md §4.2.3): there is no encoder.

func decodeError(payload []byte) (models.Parameter, error) {
	if len(payload) < errorPayloadSize {
		return nil, &models.DecodeError{ParameterID: models.ParamIDError, Offset: len(payload), Reason: models.DecodeReasonShortPayload}
	}
	return models.ErrorParam{
		Faults: models.FaultBitmap(binary.LittleEndian.Uint32(payload[0:4])),
	}, nil
}
