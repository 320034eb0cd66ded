package client

import (
	"context"
	"fmt"

	"github.com/deviantintegral/flameconnect/pkg/models"
)

// TurnOn fetches the overview, turns the current FlameEffectParam's
// flame effect on without disturbing any of its other bit-packed fields,
// and switches ModeParam to Manual at its existing target temperature —
// both written in one call (spec.md §4.4.5). This is the read-modify-
// write discipline the codec's bit-packing forces on every caller:
// writing FlameSpeed alone without first reading the other eleven fields
// FlameEffectParam packs would corrupt them.
func (c *Client) TurnOn(ctx context.Context, fireID string) (err error) {
	ctx, span := tracer.Start(ctx, "turn-on")
	defer func() { recordAndEnd(err, span) }()

	overview, err := c.GetFireOverview(ctx, fireID)
	if err != nil {
		return err
	}

	flameEffect, ok := overview.FlameEffectParam()
	if !ok {
		return fmt.Errorf("fire %s has no flame effect parameter to turn on", fireID)
	}

	mode, ok := overview.Mode()
	if !ok {
		return fmt.Errorf("fire %s has no mode parameter", fireID)
	}

	newFlameEffect := flameEffect.WithFlameEffect(models.FlameEffectOn)
	newMode := models.ModeParam{Mode: models.FireModeManual, TargetTemp: mode.TargetTemp}

	return c.WriteParameters(ctx, fireID, []models.Parameter{newFlameEffect, newMode})
}

// TurnOff fetches the overview and writes a new ModeParam{Mode: Standby}
// at the current target temperature (spec.md §4.4.5).
func (c *Client) TurnOff(ctx context.Context, fireID string) (err error) {
	ctx, span := tracer.Start(ctx, "turn-off")
	defer func() { recordAndEnd(err, span) }()

	overview, err := c.GetFireOverview(ctx, fireID)
	if err != nil {
		return err
	}

	mode, ok := overview.Mode()
	if !ok {
		return fmt.Errorf("fire %s has no mode parameter", fireID)
	}

	newMode := models.ModeParam{Mode: models.FireModeStandby, TargetTemp: mode.TargetTemp}

	return c.WriteParameters(ctx, fireID, []models.Parameter{newMode})
}
