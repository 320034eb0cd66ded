// Package codec is the bidirectional bridge between models.Parameter
// values and the base64-encoded binary blobs FlameConnect's gateway
// carries in its JSON envelope (spec.md §4.2). Every parameter on the
// wire is a 3-byte header (little-endian 16-bit ID, 1-byte payload size)
// followed by exactly payload_size bytes; this file is the only place
// that deals with base64 and with that header, variant encoders/decoders
// elsewhere in this package work purely in payload bytes.
package codec

import (
	"encoding/base64"
	"encoding/binary"

	"github.com/deviantintegral/flameconnect/pkg/models"
)

const envelopeHeaderSize = 3

// EncodeParameter returns the base64 text of p's wire envelope: header
// plus payload (spec.md §4.2.2).
func EncodeParameter(p models.Parameter) (string, error) {
	payload, err := encodePayload(p)
	if err != nil {
		return "", err
	}

	blob := make([]byte, envelopeHeaderSize+len(payload))
	binary.LittleEndian.PutUint16(blob[0:2], p.ParameterID())
	blob[2] = byte(len(payload))
	copy(blob[3:], payload)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecodeEnvelope base64-decodes text, splits off the 3-byte header, and
// dispatches on the parameter ID it names. It is equivalent to base64
// decoding text and calling DecodeParameter with the header stripped.
func DecodeEnvelope(text string) (models.Parameter, error) {
	blob, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, err
	}
	return decodeEnvelopeBytes(blob)
}

func decodeEnvelopeBytes(blob []byte) (models.Parameter, error) {
	if len(blob) < envelopeHeaderSize {
		return nil, &models.DecodeError{Offset: 0, Reason: models.DecodeReasonShortPayload}
	}

	id := binary.LittleEndian.Uint16(blob[0:2])
	size := int(blob[2])

	if len(blob) < envelopeHeaderSize+size {
		return nil, &models.DecodeError{ParameterID: id, Offset: len(blob) - envelopeHeaderSize, Reason: models.DecodeReasonShortPayload}
	}

	return DecodeParameter(id, blob[envelopeHeaderSize:envelopeHeaderSize+size])
}
