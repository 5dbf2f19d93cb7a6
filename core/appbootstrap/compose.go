package appbootstrap

import (
	"request-portal/api"
	"request-portal/config"
	"request-portal/core/directory"
	"request-portal/core/identity"
	"request-portal/core/incidents"
	"request-portal/core/portal"
	"request-portal/core/records"
	"request-portal/core/suggest"
	"request-portal/core/utils"
)

type runtimeComposition struct {
	serverDeps api.ServerDeps
	workers    []api.BackgroundWorker
}

func composeRuntime(cfg *config.AppConfig, logger *utils.Logger) (*runtimeComposition, error) {
	index, err := suggest.LoadCatalog(cfg.Suggestions.CatalogPath)
	if err != nil {
		// The portal stays usable on the built-in catalog; the file is an
		// operator override.
		logger.Errorf("suggestion catalog %s: %v (using built-in catalog)", cfg.Suggestions.CatalogPath, err)
		index = suggest.BuiltinCatalog()
	}

	directoryClient := directory.NewClient(
		cfg.Directory.ProfileURL,
		cfg.Directory.EffectiveTimeout(),
		identity.StaticTokenProvider{},
	)
	recordsClient := records.NewClient(cfg.Records.BaseURL, cfg.Records.EffectiveTimeout())
	tracker := incidents.NewClient(cfg.Incidents.SubmitURL, cfg.Incidents.EffectiveTimeout(), logger)

	registry := portal.NewRegistry(cfg.EffectiveSessionTTL(), logger)
	factory := portal.NewFactory(cfg, directoryClient, recordsClient, tracker, index, logger)
	sweeper := portal.NewSweeper(cfg.Sweeper, registry, logger)

	return &runtimeComposition{
		serverDeps: api.ServerDeps{
			Factory:  factory,
			Registry: registry,
			Index:    index,
		},
		workers: []api.BackgroundWorker{sweeper},
	}, nil
}
