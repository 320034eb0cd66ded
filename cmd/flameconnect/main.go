// Command flameconnect is a thin demonstration of pkg/client: sign in
// interactively, list fires, and print the first fire's overview. It is
// not the CLI/TUI dashboard the library's spec scopes out — just enough
// wiring to prove the library is usable standalone.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/deviantintegral/flameconnect/internal/pkg/infrastructure/logging"
	"github.com/deviantintegral/flameconnect/internal/pkg/infrastructure/tracing"
	"github.com/deviantintegral/flameconnect/pkg/auth"
	"github.com/deviantintegral/flameconnect/pkg/client"
	"github.com/deviantintegral/flameconnect/pkg/constants"
)

const serviceVersion = "0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx, logger := logging.NewLogger(ctx, "flameconnect", serviceVersion)

	cleanup, err := tracing.Init(ctx, logger, "flameconnect", serviceVersion)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer cleanup()

	if err := run(ctx, logger); err != nil {
		logger.Fatal().Err(err).Msg("flameconnect demo failed")
	}
}

func run(ctx context.Context, logger zerolog.Logger) error {
	supplier := auth.NewInteractiveOAuth(
		constants.OAuthAuthority(ctx),
		constants.OAUTH_CLIENT_ID,
		"http://localhost:8952/callback",
		constants.OAUTH_SCOPES,
		constants.DefaultTokenCachePath(ctx),
		nil,
		nil,
	)

	c := client.New(ctx, supplier)
	defer c.Close()

	fires, err := c.ListFires(ctx)
	if err != nil {
		return fmt.Errorf("listing fires: %w", err)
	}

	if len(fires) == 0 {
		logger.Info().Msg("no fires returned for this account")
		return nil
	}

	for _, fire := range fires {
		logger.Info().Str("fire_id", fire.FireID).Str("name", fire.FriendlyName).Msg("found fire")
	}

	overview, err := c.GetFireOverview(ctx, fires[0].FireID)
	if err != nil {
		return fmt.Errorf("fetching overview for %s: %w", fires[0].FireID, err)
	}

	fmt.Printf("%s: %d parameters reported\n", overview.Fire.FriendlyName, len(overview.Parameters))
	if mode, ok := overview.Mode(); ok {
		fmt.Printf("  mode=%s target_temp=%.1f\n", mode.Mode, mode.TargetTemp)
	}
	if heat, ok := overview.HeatParam(); ok {
		fmt.Printf("  heat=%s setpoint=%.1f\n", heat.HeatStatus, heat.SetpointTemperature)
	}

	return nil
}
