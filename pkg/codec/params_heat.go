package codec

import "github.com/deviantintegral/flameconnect/pkg/models"

const heatPayloadSize = 5

func encodeHeat(p models.HeatParam) ([]byte, error) {
	if p.BoostDuration < 1 || p.BoostDuration > 20 {
		return nil, &models.EncodeError{
			ParameterID: models.ParamIDHeat,
			Reason:      models.EncodeReasonValueOutOfRange,
			Detail:      "boost_duration must be 1..20",
		}
	}

	whole, tenths := encodeTemperature(p.SetpointTemperature)
	return []byte{
		byte(p.HeatStatus),
		byte(p.HeatMode),
		whole,
		tenths,
		byte(p.BoostDuration - 1),
	}, nil
}

// decodeHeat is length-lenient: the gateway has been observed to return
// payloads longer than the canonical 5 bytes (spec.md §4.2.3, §9); any
// trailing bytes beyond the 5 this variant uses are ignored.
func decodeHeat(payload []byte) (models.Parameter, error) {
	if len(payload) < heatPayloadSize {
		return nil, &models.DecodeError{ParameterID: models.ParamIDHeat, Offset: len(payload), Reason: models.DecodeReasonShortPayload}
	}

	return models.HeatParam{
		HeatStatus:          models.HeatStatus(payload[0]),
		HeatMode:            models.HeatMode(payload[1]),
		SetpointTemperature: decodeTemperature(payload[2], payload[3]),
		BoostDuration:       int(payload[4]) + 1,
	}, nil
}
