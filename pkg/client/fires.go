package client

import (
	"context"
	"net/url"

	"github.com/deviantintegral/flameconnect/internal/pkg/infrastructure/logging"
	"github.com/deviantintegral/flameconnect/pkg/codec"
	"github.com/deviantintegral/flameconnect/pkg/models"
)

// fireFeatureWire mirrors the gateway's FireFeature sub-object
// (spec.md §4.4.2): PascalCase JSON keys mapped to the internal
// snake_case-equivalent field names on models.FireFeatures.
type fireFeatureWire struct {
	Sound                bool `json:"Sound"`
	SimpleHeat           bool `json:"SimpleHeat"`
	AdvancedHeat         bool `json:"AdvancedHeat"`
	RgbFlameAccent       bool `json:"RgbFlameAccent"`
	RgbMediaLight        bool `json:"RgbMediaLight"`
	RgbOverheadLight     bool `json:"RgbOverheadLight"`
	FlameEffect          bool `json:"FlameEffect"`
	FlameSpeed           bool `json:"FlameSpeed"`
	FlameColorPresets    bool `json:"FlameColorPresets"`
	PulsatingEffect      bool `json:"PulsatingEffect"`
	MediaTheme           bool `json:"MediaTheme"`
	OverheadLight        bool `json:"OverheadLight"`
	AmbientLightSensor   bool `json:"AmbientLightSensor"`
	Timer                bool `json:"Timer"`
	BoostMode            bool `json:"BoostMode"`
	EcoMode              bool `json:"EcoMode"`
	FanOnlyMode          bool `json:"FanOnlyMode"`
	Schedule             bool `json:"Schedule"`
	LogEffect            bool `json:"LogEffect"`
	LogEffectPattern     bool `json:"LogEffectPattern"`
	SoftwareVersionQuery bool `json:"SoftwareVersionQuery"`
	ErrorReporting       bool `json:"ErrorReporting"`
	MultiZoneHeat        bool `json:"MultiZoneHeat"`
	FirmwareUpdate       bool `json:"FirmwareUpdate"`
}

func (w fireFeatureWire) toModel() *models.FireFeatures {
	return &models.FireFeatures{
		Sound:                w.Sound,
		SimpleHeat:           w.SimpleHeat,
		AdvancedHeat:         w.AdvancedHeat,
		RgbFlameAccent:       w.RgbFlameAccent,
		RgbMediaLight:        w.RgbMediaLight,
		RgbOverheadLight:     w.RgbOverheadLight,
		FlameEffect:          w.FlameEffect,
		FlameSpeed:           w.FlameSpeed,
		FlameColorPresets:    w.FlameColorPresets,
		PulsatingEffect:      w.PulsatingEffect,
		MediaTheme:           w.MediaTheme,
		OverheadLight:        w.OverheadLight,
		AmbientLightSensor:   w.AmbientLightSensor,
		Timer:                w.Timer,
		BoostMode:            w.BoostMode,
		EcoMode:              w.EcoMode,
		FanOnlyMode:          w.FanOnlyMode,
		Schedule:             w.Schedule,
		LogEffect:            w.LogEffect,
		LogEffectPattern:     w.LogEffectPattern,
		SoftwareVersionQuery: w.SoftwareVersionQuery,
		ErrorReporting:       w.ErrorReporting,
		MultiZoneHeat:        w.MultiZoneHeat,
		FirmwareUpdate:       w.FirmwareUpdate,
	}
}

// fireWire mirrors the gateway's Fire JSON shape (spec.md §3.2, §4.4.2).
type fireWire struct {
	FireID          string           `json:"FireId"`
	FriendlyName    string           `json:"FriendlyName"`
	Brand           string           `json:"Brand"`
	ProductType     string           `json:"ProductType"`
	ProductModel    string           `json:"ProductModel"`
	ItemCode        string           `json:"ItemCode"`
	ConnectionState uint8            `json:"ConnectionState"`
	WithHeat        bool             `json:"WithHeat"`
	IsIotFire       bool             `json:"IsIotFire"`
	FireFeature     *fireFeatureWire `json:"FireFeature"`
}

func (w fireWire) toModel() models.Fire {
	fire := models.Fire{
		FireID:          w.FireID,
		FriendlyName:    w.FriendlyName,
		Brand:           w.Brand,
		ProductType:     w.ProductType,
		ProductModel:    w.ProductModel,
		ItemCode:        w.ItemCode,
		ConnectionState: models.ConnectionState(w.ConnectionState),
		WithHeat:        w.WithHeat,
		IsIotFire:       w.IsIotFire,
	}
	if w.FireFeature != nil {
		fire.Features = w.FireFeature.toModel()
	}
	return fire
}

// ListFires sends GET /api/Fires/GetFires and returns the fleet of
// fireplaces visible to the authenticated account (spec.md §4.4.2).
func (c *Client) ListFires(ctx context.Context) ([]models.Fire, error) {
	ctx, span := tracer.Start(ctx, "list-fires")
	var err error
	defer func() { recordAndEnd(err, span) }()

	var wire []fireWire
	if err = c.getJSON(ctx, "/api/Fires/GetFires", &wire); err != nil {
		return nil, err
	}

	fires := make([]models.Fire, 0, len(wire))
	for _, w := range wire {
		fires = append(fires, w.toModel())
	}
	return fires, nil
}

// parameterWire mirrors one entry in WifiFireOverview.Parameters
// (spec.md §4.4.3).
type parameterWire struct {
	ParameterID int    `json:"ParameterId"`
	Value       string `json:"Value"`
}

type wifiFireOverviewWire struct {
	FireID     string          `json:"FireId"`
	Parameters []parameterWire `json:"Parameters"`
}

type fireOverviewEnvelope struct {
	ResultCode       int                   `json:"ResultCode"`
	FireDetails      *fireWire             `json:"FireDetails"`
	WifiFireOverview *wifiFireOverviewWire `json:"WifiFireOverview"`
}

// GetFireOverview sends GET /api/Fires/GetFireOverview?FireId={fireID}
// and decodes every reported parameter through pkg/codec. Unknown
// parameter IDs are skipped rather than failing the whole overview
// (spec.md §4.4.3); the Fire identity comes from FireDetails when
// present, otherwise it holds only the FireId read from WifiFireOverview.
func (c *Client) GetFireOverview(ctx context.Context, fireID string) (models.FireOverview, error) {
	ctx, span := tracer.Start(ctx, "get-fire-overview")
	var err error
	defer func() { recordAndEnd(err, span) }()

	ctx = logging.WithFireID(ctx, fireID)

	path := "/api/Fires/GetFireOverview?" + url.Values{"FireId": {fireID}}.Encode()

	var envelope fireOverviewEnvelope
	if err = c.getJSON(ctx, path, &envelope); err != nil {
		return models.FireOverview{}, err
	}

	overview := models.FireOverview{}

	switch {
	case envelope.FireDetails != nil:
		overview.Fire = envelope.FireDetails.toModel()
	case envelope.WifiFireOverview != nil:
		overview.Fire = models.Fire{FireID: envelope.WifiFireOverview.FireID}
	}

	if envelope.WifiFireOverview == nil {
		return overview, nil
	}

	log := logging.GetLoggerFromContext(ctx)

	for _, entry := range envelope.WifiFireOverview.Parameters {
		// Value is the whole base64 blob, 3-byte header included.
		param, decodeErr := codec.DecodeEnvelope(entry.Value)
		if decodeErr != nil {
			var de *models.DecodeError
			if isDecodeError(decodeErr, &de) && de.Reason == models.DecodeReasonUnknownParameterID {
				log.Debug().Int("parameter_id", entry.ParameterID).Msg("skipping unknown parameter in fire overview")
				continue
			}
			log.Warn().Err(decodeErr).Int("parameter_id", entry.ParameterID).Msg("skipping undecodable parameter in fire overview")
			continue
		}
		overview.Parameters = append(overview.Parameters, param)
	}

	return overview, nil
}

func isDecodeError(err error, target **models.DecodeError) bool {
	de, ok := err.(*models.DecodeError)
	if ok {
		*target = de
	}
	return ok
}
