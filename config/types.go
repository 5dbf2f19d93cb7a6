package config

import "time"

type AppConfig struct {
	ListenAddr   string             `yaml:"listen_addr" env:"PORTAL_LISTEN_ADDR" env-default:"0.0.0.0:8080"`
	SessionTTL   time.Duration      `yaml:"session_ttl" env:"PORTAL_SESSION_TTL" env-default:"1h"`
	AppEnv       string             `yaml:"app_env" env:"PORTAL_APP_ENV"`
	Directory    DirectoryConfig    `yaml:"directory"`
	Records      RecordsConfig      `yaml:"records"`
	Incidents    IncidentsConfig    `yaml:"incidents"`
	Suggestions  SuggestionsConfig  `yaml:"suggestions"`
	Autocomplete AutocompleteConfig `yaml:"autocomplete"`
	Sweeper      SweeperConfig      `yaml:"sweeper"`
}

type DirectoryConfig struct {
	ProfileURL string `yaml:"profile_url" env:"PORTAL_DIRECTORY_PROFILE_URL" env-default:"https://graph.microsoft.com/v1.0/me"`
	TimeoutSec int    `yaml:"timeout_sec" env:"PORTAL_DIRECTORY_TIMEOUT" env-default:"15"`
}

type RecordsConfig struct {
	BaseURL    string `yaml:"base_url" env:"PORTAL_RECORDS_BASE_URL" env-default:"http://localhost:9084"`
	TimeoutSec int    `yaml:"timeout_sec" env:"PORTAL_RECORDS_TIMEOUT" env-default:"15"`
}

type IncidentsConfig struct {
	SubmitURL         string `yaml:"submit_url" env:"PORTAL_INCIDENTS_SUBMIT_URL" env-default:"http://localhost:9090/ivanti/incident"`
	TimeoutSec        int    `yaml:"timeout_sec" env:"PORTAL_INCIDENTS_TIMEOUT" env-default:"30"`
	Service           string `yaml:"service" env:"PORTAL_INCIDENTS_SERVICE" env-default:"Online Submission"`
	Category          string `yaml:"category" env:"PORTAL_INCIDENTS_CATEGORY" env-default:"General"`
	Subcategory       string `yaml:"subcategory" env:"PORTAL_INCIDENTS_SUBCATEGORY" env-default:"General"`
	DefaultDepartment string `yaml:"default_department" env:"PORTAL_INCIDENTS_DEFAULT_DEPARTMENT" env-default:"Apps Support"`
}

type SuggestionsConfig struct {
	CatalogPath string `yaml:"catalog_path" env:"PORTAL_SUGGESTIONS_CATALOG_PATH" env-default:"data/subject_suggestions.json"`
}

type AutocompleteConfig struct {
	BlurGraceMS int `yaml:"blur_grace_ms" env:"PORTAL_AUTOCOMPLETE_BLUR_GRACE_MS" env-default:"150"`
}

type SweeperConfig struct {
	Enabled         bool `yaml:"enabled" env:"PORTAL_SWEEPER_ENABLED" env-default:"true"`
	IntervalSeconds int  `yaml:"interval_seconds" env:"PORTAL_SWEEPER_INTERVAL_SECONDS" env-default:"60"`
}

const maxPortalSessionTTL = 3 * time.Hour

func (c *AppConfig) EffectiveSessionTTL() time.Duration {
	ttl := maxPortalSessionTTL
	if c != nil && c.SessionTTL > 0 {
		ttl = c.SessionTTL
	}
	if ttl > maxPortalSessionTTL {
		return maxPortalSessionTTL
	}
	return ttl
}

func (c *DirectoryConfig) EffectiveTimeout() time.Duration {
	if c == nil || c.TimeoutSec <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSec) * time.Second
}

func (c *RecordsConfig) EffectiveTimeout() time.Duration {
	if c == nil || c.TimeoutSec <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSec) * time.Second
}

func (c *IncidentsConfig) EffectiveTimeout() time.Duration {
	if c == nil || c.TimeoutSec <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSec) * time.Second
}

func (c *AutocompleteConfig) EffectiveBlurGrace() time.Duration {
	if c == nil || c.BlurGraceMS <= 0 {
		return 150 * time.Millisecond
	}
	return time.Duration(c.BlurGraceMS) * time.Millisecond
}

func (c *SweeperConfig) EffectiveInterval() time.Duration {
	if c == nil || c.IntervalSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.IntervalSeconds) * time.Second
}
