package codec

import "github.com/deviantintegral/flameconnect/pkg/models"

const softwareVersionPayloadSize = 9

// SoftwareVersionParam is read-only (spec.md §4.2.3): the gateway never
// accepts a write of it, so there is no encoder — encodePayload's
// dispatch returns an EncodeError for this variant.

func decodeSoftwareVersion(payload []byte) (models.Parameter, error) {
	if len(payload) < softwareVersionPayloadSize {
		return nil, &models.DecodeError{ParameterID: models.ParamIDSoftwareVersion, Offset: len(payload), Reason: models.DecodeReasonShortPayload}
	}
	return models.SoftwareVersionParam{
		UI:      models.VersionTriple{Major: payload[0], Minor: payload[1], Test: payload[2]},
		Control: models.VersionTriple{Major: payload[3], Minor: payload[4], Test: payload[5]},
		Relay:   models.VersionTriple{Major: payload[6], Minor: payload[7], Test: payload[8]},
	}, nil
}
