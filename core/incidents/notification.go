package incidents

import "sync"

// Result is the outcome of one submission attempt.
type Result struct {
	Success        bool   `json:"success"`
	IncidentNumber string `json:"incident_number,omitempty"`
	ErrorMessage   string `json:"error_message,omitempty"`
}

// Presenter holds the single pending submission result until the user
// acknowledges it. A newer result replaces the pending one whether or not
// it was acknowledged.
type Presenter struct {
	mu      sync.Mutex
	visible bool
	result  Result
}

func NewPresenter() *Presenter {
	return &Presenter{}
}

func (p *Presenter) Show(r Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.result = r
	p.visible = true
}

// Acknowledge hides the notification but keeps the last result. Dismissing
// twice is harmless.
func (p *Presenter) Acknowledge() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = false
}

func (p *Presenter) View() (bool, Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible, p.result
}
