package incidents

import (
	"context"
	"sync"

	"request-portal/core/records"
)

// Draft is the user-editable incident before submission.
type Draft struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Department  string `json:"department"`
}

// Submitter runs submissions against the tracker. The submitting flag is
// a mutual-exclusion gate: a second attempt while one is in flight is
// rejected outright, never queued.
type Submitter struct {
	client    *Client
	presenter *Presenter
	cfg       SubmitterConfig

	mu         sync.Mutex
	submitting bool
}

type SubmitterConfig struct {
	Service     string
	Category    string
	Subcategory string
}

func NewSubmitter(client *Client, presenter *Presenter, cfg SubmitterConfig) *Submitter {
	return &Submitter{client: client, presenter: presenter, cfg: cfg}
}

func (s *Submitter) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// Submit validates preconditions and, if they hold, performs the network
// call and publishes the outcome as the pending notification. The bool
// reports whether a submission actually ran; callers clear the draft only
// on a Result with Success set. A missing record id is a defensive
// re-check of a gate the caller must already enforce, so it is a silent
// no-op, not a user-facing error.
func (s *Submitter) Submit(ctx context.Context, draft Draft, rec records.InternalRecord) (Result, bool) {
	if !rec.HasRecID() {
		return Result{}, false
	}
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return Result{}, false
	}
	s.submitting = true
	s.mu.Unlock()

	res := s.client.Create(ctx, Payload{
		RecID:        rec.RecID,
		ContactPhone: rec.Phone,
		Service:      s.cfg.Service,
		Description:  draft.Description,
		Subject:      draft.Subject,
		Category:     s.cfg.Category,
		Subcategory:  s.cfg.Subcategory,
		Team:         draft.Department,
	})

	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()

	s.presenter.Show(res)
	return res, true
}
