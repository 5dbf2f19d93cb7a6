package appbootstrap

import (
	"request-portal/api"
	"request-portal/config"
	"request-portal/core/utils"
)

// Run wires the runtime together and serves until the listener fails.
func Run(configPath string) error {
	logger := utils.NewLogger()
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	comp, err := composeRuntime(cfg, logger)
	if err != nil {
		return err
	}
	for _, w := range comp.workers {
		w.Start()
	}
	defer func() {
		for _, w := range comp.workers {
			w.Stop()
		}
	}()
	server := api.NewServer(cfg, comp.serverDeps, logger)
	logger.Printf("request portal listening on %s", cfg.ListenAddr)
	return server.ListenAndServe()
}
