package client

import (
	"context"

	"github.com/deviantintegral/flameconnect/internal/pkg/infrastructure/logging"
	"github.com/deviantintegral/flameconnect/pkg/codec"
	"github.com/deviantintegral/flameconnect/pkg/models"
)

type writeParameterWire struct {
	ParameterID uint16 `json:"ParameterId"`
	Value       string `json:"Value"`
}

type writeParametersRequest struct {
	FireID     string                `json:"FireId"`
	Parameters []writeParameterWire `json:"Parameters"`
}

// WriteParameters sends POST /api/Fires/WriteWifiParameters, encoding
// every parameter through pkg/codec into its envelope-framed base64
// form (spec.md §4.4.4). Parameters are written atomically by the
// gateway in one request; a read-only variant (SoftwareVersionParam,
// ErrorParam) fails the whole call with the codec's EncodeError rather
// than silently dropping it.
func (c *Client) WriteParameters(ctx context.Context, fireID string, params []models.Parameter) (err error) {
	ctx, span := tracer.Start(ctx, "write-parameters")
	defer func() { recordAndEnd(err, span) }()

	ctx = logging.WithFireID(ctx, fireID)

	wire := make([]writeParameterWire, 0, len(params))
	for _, p := range params {
		encoded, encodeErr := codec.EncodeParameter(p)
		if encodeErr != nil {
			return encodeErr
		}
		wire = append(wire, writeParameterWire{ParameterID: p.ParameterID(), Value: encoded})
	}

	body := writeParametersRequest{FireID: fireID, Parameters: wire}
	return c.postJSON(ctx, "/api/Fires/WriteWifiParameters", body)
}
