package suggest

import (
	"encoding/json"
	"os"
	"strings"
)

// Entry maps a known subject line to the department that handles it.
type Entry struct {
	Subject string `json:"subject"`
	Team    string `json:"team"`
}

// Index is the immutable suggestion catalog. Lookups are pure and
// stateless; the catalog never changes after construction.
type Index struct {
	entries []Entry
}

func NewIndex(entries []Entry) *Index {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return &Index{entries: out}
}

// LoadCatalog reads the catalog file. Display order of matches follows
// file order.
func LoadCatalog(path string) (*Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return NewIndex(entries), nil
}

// Lookup returns the entries whose subject contains the query
// case-insensitively, in catalog order. An empty query yields nothing:
// no query, no suggestions.
func (ix *Index) Lookup(query string) []Entry {
	if ix == nil || len(query) == 0 {
		return nil
	}
	q := strings.ToLower(query)
	var matches []Entry
	for _, e := range ix.entries {
		if strings.Contains(strings.ToLower(e.Subject), q) {
			matches = append(matches, e)
		}
	}
	return matches
}

func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}
