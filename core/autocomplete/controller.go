package autocomplete

import (
	"sync"
	"time"

	"request-portal/core/suggest"
)

// Controller drives the subject-field autocomplete: it tracks the typed
// query, the current matches, a highlight cursor over them, and whether
// the suggestion list is open. It owns the draft's subject and department
// fields because committing a match writes both. Pure local state; no
// network I/O.
type Controller struct {
	index             *suggest.Index
	defaultDepartment string
	blurGrace         time.Duration

	mu         sync.Mutex
	query      string
	department string
	matches    []suggest.Entry
	highlight  int
	open       bool
}

// View is a point-in-time snapshot of the controller.
type View struct {
	Subject    string
	Department string
	Matches    []suggest.Entry
	Highlight  int
	Open       bool
}

func NewController(index *suggest.Index, defaultDepartment string, blurGrace time.Duration) *Controller {
	return &Controller{
		index:             index,
		defaultDepartment: defaultDepartment,
		blurGrace:         blurGrace,
		department:        defaultDepartment,
		highlight:         -1,
	}
}

// Input handles a change of the subject field. Emptying the field clears
// the matches, closes the list, and resets the department to its default.
func (c *Controller) Input(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = value
	c.highlight = -1
	if len(value) == 0 {
		c.matches = nil
		c.open = false
		c.department = c.defaultDepartment
		return
	}
	c.matches = c.index.Lookup(value)
	c.open = len(c.matches) > 0
}

// ArrowDown advances the highlight, clamped to the last match. No wrap.
func (c *Controller) ArrowDown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open || len(c.matches) == 0 {
		return
	}
	if c.highlight < len(c.matches)-1 {
		c.highlight++
	}
}

// ArrowUp moves the highlight back, clamped to the first match. No wrap,
// and an existing selection never drops back below zero.
func (c *Controller) ArrowUp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open || len(c.matches) == 0 {
		return
	}
	if c.highlight > 0 {
		c.highlight--
	} else {
		c.highlight = 0
	}
}

// Enter commits the highlighted match, if any.
func (c *Controller) Enter() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open || c.highlight < 0 || c.highlight >= len(c.matches) {
		return
	}
	c.commitLocked(c.matches[c.highlight])
}

// Select commits match i directly (pointer pick).
func (c *Controller) Select(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.matches) {
		return
	}
	c.commitLocked(c.matches[i])
}

func (c *Controller) commitLocked(e suggest.Entry) {
	c.query = e.Subject
	c.department = e.Team
	c.open = false
	c.highlight = -1
}

// Escape closes the list without committing.
func (c *Controller) Escape() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
	c.highlight = -1
}

// Focus reopens the list when there is a query with matches.
func (c *Controller) Focus() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.query) > 0 && len(c.matches) > 0 {
		c.open = true
	}
}

// Defocus closes the list after a short grace interval so a direct
// selection issued just before the field lost focus lands first.
func (c *Controller) Defocus() {
	time.AfterFunc(c.blurGrace, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.open = false
		c.highlight = -1
	})
}

// ResetSubject clears the subject and puts the department back to its
// default, as after a successful submission.
func (c *Controller) ResetSubject() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = ""
	c.matches = nil
	c.open = false
	c.highlight = -1
	c.department = c.defaultDepartment
}

func (c *Controller) Subject() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

func (c *Controller) Department() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.department
}

func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	matches := make([]suggest.Entry, len(c.matches))
	copy(matches, c.matches)
	return View{
		Subject:    c.query,
		Department: c.department,
		Matches:    matches,
		Highlight:  c.highlight,
		Open:       c.open,
	}
}
