package commands

import (
	"context"
	"log/slog"
	"os"

	"communitysync/lib/configutil"
	"communitysync/lib/officernd"
	"communitysync/lib/telemetry"
	"communitysync/services/directory"
)

type Config struct {
	OfficeRnd officernd.Credentials `json:"officernd"`
	Telemetry telemetry.Config      `json:"telemetry"`
}

// loadConfig reads the config file and overlays credentials from the
// environment; environment always wins. Validation reports every missing
// credential in one error, before any network call.
func loadConfig(path string) (Config, error) {
	config, err := configutil.ReadConfig[Config](path)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}

	if v := os.Getenv("OFFICERND_CLIENT_ID"); v != "" {
		config.OfficeRnd.ClientID = v
	}
	if v := os.Getenv("OFFICERND_CLIENT_SECRET"); v != "" {
		config.OfficeRnd.ClientSecret = v
	}
	if v := os.Getenv("OFFICERND_ORG_SLUG"); v != "" {
		config.OfficeRnd.OrgSlug = v
	}

	if err := config.OfficeRnd.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// setup wires config, telemetry and the pipeline service for a command run.
// The returned cleanup flushes telemetry and is safe to call when telemetry
// is disabled.
func setup(ctx context.Context) (directory.Service, func(), error) {
	config, err := loadConfig(configPath)
	if err != nil {
		return directory.Service{}, nil, err
	}

	cleanup := func() {}
	if config.Telemetry.Enabled() {
		tel, err := telemetry.Setup(ctx, "communitysync", config.Telemetry)
		if err != nil {
			return directory.Service{}, nil, err
		}
		telemetry.InstrumentPerfStats(ctx)
		cleanup = func() {
			err := tel.Shutdown(context.Background())
			if err != nil {
				slog.Error("failed to shutdown telemetry", "err", err)
			}
		}
	}

	client, err := officernd.NewClient(officernd.ClientOptions{
		Credentials: config.OfficeRnd,
	})
	if err != nil {
		cleanup()
		return directory.Service{}, nil, err
	}

	return directory.NewService(client), cleanup, nil
}
