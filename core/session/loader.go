package session

import (
	"context"
	"sync"

	"request-portal/core/directory"
	"request-portal/core/identity"
	"request-portal/core/records"
	"request-portal/core/utils"
)

type ProfileFetcher interface {
	FetchProfile(ctx context.Context, p identity.Principal) (directory.Profile, error)
}

type RecordFetcher interface {
	FetchRecord(ctx context.Context, loginIdentifier string) (records.InternalRecord, error)
}

// Loader performs the two per-session retrievals: the directory profile
// (cosmetic) and the internal record (gates incident submission). Both
// run concurrently, complete in either order, and are triggered exactly
// once per distinct principal.
type Loader struct {
	profiles ProfileFetcher
	records  RecordFetcher
	logger   *utils.Logger

	mu             sync.Mutex
	principal      identity.Principal
	generation     int
	profile        directory.Profile
	record         records.InternalRecord
	loadingProfile bool
	loadingRecord  bool
	recordLoaded   bool
}

// State is a point-in-time snapshot of the loader.
type State struct {
	Principal      identity.Principal
	Profile        directory.Profile
	Record         records.InternalRecord
	LoadingProfile bool
	LoadingRecord  bool
	RecordLoaded   bool
}

func NewLoader(profiles ProfileFetcher, recs RecordFetcher, logger *utils.Logger) *Loader {
	return &Loader{profiles: profiles, records: recs, logger: logger}
}

// Start kicks off both fetches for the principal. Calling it again with
// the same login identifier is a no-op; a different identifier supersedes
// the previous one and any still-outstanding results for the old
// generation are discarded when they arrive.
func (l *Loader) Start(ctx context.Context, p identity.Principal) {
	if !p.Valid() {
		return
	}
	l.mu.Lock()
	if l.principal.LoginIdentifier == p.LoginIdentifier {
		l.mu.Unlock()
		return
	}
	l.generation++
	gen := l.generation
	l.principal = p
	l.profile = nil
	l.record = records.InternalRecord{}
	l.recordLoaded = false
	l.loadingProfile = true
	l.loadingRecord = true
	l.mu.Unlock()

	go l.fetchProfile(ctx, p, gen)
	go l.fetchRecord(ctx, p.LoginIdentifier, gen)
}

func (l *Loader) fetchProfile(ctx context.Context, p identity.Principal, gen int) {
	profile, err := l.profiles.FetchProfile(ctx, p)
	if err != nil {
		// Profile data is cosmetic; its absence degrades the display only.
		l.logger.Errorf("failed to fetch profile for %s: %v", p.LoginIdentifier, err)
		profile = nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation {
		return
	}
	l.profile = profile
	l.loadingProfile = false
}

func (l *Loader) fetchRecord(ctx context.Context, loginIdentifier string, gen int) {
	rec, err := l.records.FetchRecord(ctx, loginIdentifier)
	if err != nil {
		// Treated as "no account found", not a blocking error.
		l.logger.Errorf("failed to fetch internal record for %s: %v", loginIdentifier, err)
		rec = records.InternalRecord{}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation {
		return
	}
	l.record = rec
	l.loadingRecord = false
	l.recordLoaded = true
}

// Loading reports whether either fetch is still outstanding.
func (l *Loader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadingProfile || l.loadingRecord
}

// Ready reports whether the internal-record fetch has settled, success or
// not. The record is authoritative only once this returns true.
func (l *Loader) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recordLoaded
}

// CanSubmit reports whether the settled record carries a record id.
func (l *Loader) CanSubmit() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recordLoaded && l.record.HasRecID()
}

func (l *Loader) Record() records.InternalRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.record
}

func (l *Loader) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return State{
		Principal:      l.principal,
		Profile:        l.profile,
		Record:         l.record,
		LoadingProfile: l.loadingProfile,
		LoadingRecord:  l.loadingRecord,
		RecordLoaded:   l.recordLoaded,
	}
}
