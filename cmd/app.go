package cmd

import (
	"fmt"

	"github.com/jsphweid/notation/db"
	"github.com/jsphweid/notation/metrics"
	"github.com/jsphweid/notation/store"
	"github.com/jsphweid/notation/theory"
	"go.uber.org/zap"
)

// app holds what every command needs once settings are loaded.
type app struct {
	adapter *theory.Adapter
	store   *store.Store
	metrics *metrics.Metrics
}

func newApp() (*app, error) {
	m, err := metrics.New()
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	adapter := theory.NewAdapter(nil)
	st := &store.Store{
		Dir:     settings.Output.Progressions,
		Expand:  adapter.ExpandSpec,
		Midi:    settings.Output.Midi,
		Metrics: m,
		Logger:  logger,
	}

	if settings.Archive.Enabled() {
		client, err := db.NewClient(settings.Archive.Region, settings.Archive.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive client: %w", err)
		}
		st.Archive = db.New(client, settings.Archive.Table)
		logger.Debug("archive enabled", zap.String("table", settings.Archive.Table))
	}

	return &app{adapter: adapter, store: st, metrics: m}, nil
}
