package codec

import "github.com/deviantintegral/flameconnect/pkg/models"

const soundPayloadSize = 2

func encodeSound(p models.SoundParam) ([]byte, error) {
	if p.Volume < 0 || p.Volume > 255 {
		return nil, &models.EncodeError{ParameterID: models.ParamIDSound, Reason: models.EncodeReasonValueOutOfRange, Detail: "volume must be 0..255"}
	}
	if p.SoundFile < 0 || p.SoundFile > 255 {
		return nil, &models.EncodeError{ParameterID: models.ParamIDSound, Reason: models.EncodeReasonValueOutOfRange, Detail: "sound_file must be 0..255"}
	}
	return []byte{byte(p.Volume), byte(p.SoundFile)}, nil
}

func decodeSound(payload []byte) (models.Parameter, error) {
	if len(payload) < soundPayloadSize {
		return nil, &models.DecodeError{ParameterID: models.ParamIDSound, Offset: len(payload), Reason: models.DecodeReasonShortPayload}
	}
	return models.SoundParam{
		Volume:    int(payload[0]),
		SoundFile: int(payload[1]),
	}, nil
}
