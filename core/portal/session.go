package portal

import (
	"context"
	"sync"

	"request-portal/config"
	"request-portal/core/autocomplete"
	"request-portal/core/identity"
	"request-portal/core/incidents"
	"request-portal/core/session"
	"request-portal/core/suggest"
	"request-portal/core/utils"
)

// Factory builds portal sessions over the shared collaborators: the
// directory and records clients, the incident tracker client, and the
// immutable suggestion index.
type Factory struct {
	cfg      *config.AppConfig
	profiles session.ProfileFetcher
	records  session.RecordFetcher
	tracker  *incidents.Client
	index    *suggest.Index
	logger   *utils.Logger
}

func NewFactory(cfg *config.AppConfig, profiles session.ProfileFetcher, records session.RecordFetcher, tracker *incidents.Client, index *suggest.Index, logger *utils.Logger) *Factory {
	return &Factory{cfg: cfg, profiles: profiles, records: records, tracker: tracker, index: index, logger: logger}
}

// Session is the per-principal portal state: the session loader, the
// autocomplete controller, the draft description, and the submission
// machinery. Everything else the browser held lives here.
type Session struct {
	Loader       *session.Loader
	Autocomplete *autocomplete.Controller
	Submitter    *incidents.Submitter
	Presenter    *incidents.Presenter

	mu          sync.Mutex
	description string
}

// NewSession mints a session for the principal and starts its loader.
func (f *Factory) NewSession(ctx context.Context, p identity.Principal) *Session {
	loader := session.NewLoader(f.profiles, f.records, f.logger)
	presenter := incidents.NewPresenter()
	s := &Session{
		Loader: loader,
		Autocomplete: autocomplete.NewController(
			f.index,
			f.cfg.Incidents.DefaultDepartment,
			f.cfg.Autocomplete.EffectiveBlurGrace(),
		),
		Presenter: presenter,
		Submitter: incidents.NewSubmitter(f.tracker, presenter, incidents.SubmitterConfig{
			Service:     f.cfg.Incidents.Service,
			Category:    f.cfg.Incidents.Category,
			Subcategory: f.cfg.Incidents.Subcategory,
		}),
	}
	loader.Start(ctx, p)
	return s
}

func (s *Session) SetDescription(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.description = value
}

func (s *Session) Description() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.description
}

// SubmitIncident runs one submission for the current draft. On success
// the draft resets: subject and description empty, department back to
// default. On failure the draft is untouched so the user can retry.
func (s *Session) SubmitIncident(ctx context.Context) (incidents.Result, bool) {
	if !s.Loader.Ready() {
		return incidents.Result{}, false
	}
	draft := incidents.Draft{
		Subject:     s.Autocomplete.Subject(),
		Description: s.Description(),
		Department:  s.Autocomplete.Department(),
	}
	res, ran := s.Submitter.Submit(ctx, draft, s.Loader.Record())
	if ran && res.Success {
		s.Autocomplete.ResetSubject()
		s.SetDescription("")
	}
	return res, ran
}

// State is the JSON view the browser polls.
type State struct {
	DisplayName     string            `json:"display_name"`
	LoginIdentifier string            `json:"login_identifier"`
	Loading         bool              `json:"loading"`
	Ready           bool              `json:"ready"`
	ServiceOK       bool              `json:"service_ok"`
	ProfileLoaded   bool              `json:"profile_loaded"`
	RecordID        string            `json:"rec_id,omitempty"`
	Phone           string            `json:"phone,omitempty"`
	Subject         string            `json:"subject"`
	Description     string            `json:"description"`
	Department      string            `json:"department"`
	Suggestions     []suggest.Entry   `json:"suggestions"`
	Highlight       int               `json:"highlight"`
	SuggestionsOpen bool              `json:"suggestions_open"`
	Submitting      bool              `json:"submitting"`
	Notification    *NotificationView `json:"notification,omitempty"`
}

type NotificationView struct {
	Success        bool   `json:"success"`
	IncidentNumber string `json:"incident_number,omitempty"`
	ErrorMessage   string `json:"error_message,omitempty"`
}

func (s *Session) State() State {
	snap := s.Loader.Snapshot()
	view := s.Autocomplete.Snapshot()
	st := State{
		DisplayName:     snap.Principal.DisplayName,
		LoginIdentifier: snap.Principal.LoginIdentifier,
		Loading:         snap.LoadingProfile || snap.LoadingRecord,
		Ready:           snap.RecordLoaded,
		ServiceOK:       snap.RecordLoaded && snap.Record.HasRecID(),
		ProfileLoaded:   snap.Profile != nil,
		RecordID:        snap.Record.RecID,
		Phone:           snap.Record.Phone,
		Subject:         view.Subject,
		Description:     s.Description(),
		Department:      view.Department,
		Suggestions:     view.Matches,
		Highlight:       view.Highlight,
		SuggestionsOpen: view.Open,
		Submitting:      s.Submitter.Submitting(),
	}
	if visible, res := s.Presenter.View(); visible {
		st.Notification = &NotificationView{
			Success:        res.Success,
			IncidentNumber: res.IncidentNumber,
			ErrorMessage:   res.ErrorMessage,
		}
	}
	return st
}
