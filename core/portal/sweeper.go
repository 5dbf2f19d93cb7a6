package portal

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"request-portal/config"
	"request-portal/core/utils"
)

// Sweeper periodically evicts expired sessions from the registry.
type Sweeper struct {
	cfg      config.SweeperConfig
	registry *Registry
	logger   *utils.Logger
	cron     *cron.Cron
}

func NewSweeper(cfg config.SweeperConfig, registry *Registry, logger *utils.Logger) *Sweeper {
	return &Sweeper{cfg: cfg, registry: registry, logger: logger}
}

func (s *Sweeper) Start() {
	if !s.cfg.Enabled {
		return
	}
	c := cron.New()
	spec := fmt.Sprintf("@every %s", s.cfg.EffectiveInterval())
	if _, err := c.AddFunc(spec, func() {
		if n := s.registry.Sweep(); n > 0 {
			s.logger.Printf("session sweeper evicted %d expired sessions", n)
		}
	}); err != nil {
		s.logger.Errorf("session sweeper schedule: %v", err)
		return
	}
	c.Start()
	s.cron = c
}

func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
