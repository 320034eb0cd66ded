package codec

import "github.com/deviantintegral/flameconnect/pkg/models"

// encodePayload dispatches on p's concrete type to produce its raw
// payload bytes (without the envelope header).
func encodePayload(p models.Parameter) ([]byte, error) {
	switch v := p.(type) {
	case models.TempUnitParam:
		return encodeTempUnit(v)
	case models.ModeParam:
		return encodeMode(v)
	case models.FlameEffectParam:
		return encodeFlameEffect(v)
	case models.HeatParam:
		return encodeHeat(v)
	case models.HeatModeParam:
		return encodeHeatMode(v)
	case models.TimerParam:
		return encodeTimer(v)
	case models.SoundParam:
		return encodeSound(v)
	case models.LogEffectParam:
		return encodeLogEffect(v)
	case models.SoftwareVersionParam:
		return nil, &models.EncodeError{ParameterID: v.ParameterID(), Reason: models.EncodeReasonValueOutOfRange, Detail: "parameter 327 is read-only"}
	case models.ErrorParam:
		return nil, &models.EncodeError{ParameterID: v.ParameterID(), Reason: models.EncodeReasonValueOutOfRange, Detail: "parameter 329 is read-only"}
	default:
		return nil, &models.EncodeError{Reason: models.EncodeReasonValueOutOfRange, Detail: "unknown parameter type"}
	}
}

// DecodeParameter dispatches on id to decode payload into the matching
// Parameter variant (spec.md §4.2.2). Callers that already have a
// base64-decoded, header-stripped payload call this directly;
// DecodeEnvelope is the equivalent one-step operation from base64 text.
func DecodeParameter(id uint16, payload []byte) (models.Parameter, error) {
	switch id {
	case models.ParamIDTempUnit:
		return decodeTempUnit(payload)
	case models.ParamIDMode:
		return decodeMode(payload)
	case models.ParamIDFlameEffect:
		return decodeFlameEffect(payload)
	case models.ParamIDHeat:
		return decodeHeat(payload)
	case models.ParamIDHeatMode:
		return decodeHeatMode(payload)
	case models.ParamIDTimer:
		return decodeTimer(payload)
	case models.ParamIDSoftwareVersion:
		return decodeSoftwareVersion(payload)
	case models.ParamIDError:
		return decodeError(payload)
	case models.ParamIDSound:
		return decodeSound(payload)
	case models.ParamIDLogEffect:
		return decodeLogEffect(payload)
	default:
		return nil, &models.DecodeError{ParameterID: id, Reason: models.DecodeReasonUnknownParameterID}
	}
}
