package codec

import "github.com/deviantintegral/flameconnect/pkg/models"

const timerPayloadSize = 3

// TimerParam's duration is little-endian 16-bit (spec.md §3.3, §4.2.3):
// low byte first, high byte second.

func encodeTimer(p models.TimerParam) ([]byte, error) {
	d := uint16(p.DurationMinutes)
	return []byte{
		byte(p.TimerStatus),
		byte(d),
		byte(d >> 8),
	}, nil
}

func decodeTimer(payload []byte) (models.Parameter, error) {
	if len(payload) < timerPayloadSize {
		return nil, &models.DecodeError{ParameterID: models.ParamIDTimer, Offset: len(payload), Reason: models.DecodeReasonShortPayload}
	}
	duration := int(payload[1]) | int(payload[2])<<8
	return models.TimerParam{
		TimerStatus:     models.TimerStatus(payload[0]),
		DurationMinutes: duration,
	}, nil
}
