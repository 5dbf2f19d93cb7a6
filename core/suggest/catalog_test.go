package suggest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testIndex() *Index {
	return NewIndex([]Entry{
		{Subject: "VPN Access", Team: "Network"},
		{Subject: "Password Reset", Team: "Apps Support"},
		{Subject: "Email Not Working", Team: "Apps Support"},
		{Subject: "Printer Not Working", Team: "Desktop Support"},
	})
}

func TestLookupEmptyQueryYieldsNothing(t *testing.T) {
	ix := testIndex()
	if got := ix.Lookup(""); len(got) != 0 {
		t.Fatalf("empty query returned %d entries, want 0", len(got))
	}
}

func TestLookupCaseInsensitiveSubstring(t *testing.T) {
	ix := testIndex()
	got := ix.Lookup("vpn")
	if len(got) != 1 || got[0].Subject != "VPN Access" {
		t.Fatalf("lookup vpn: %+v", got)
	}
	if got[0].Team != "Network" {
		t.Fatalf("lookup vpn team: %q", got[0].Team)
	}
	got = ix.Lookup("not working")
	if len(got) != 2 {
		t.Fatalf("lookup 'not working': got %d entries, want 2", len(got))
	}
	for _, e := range got {
		if !strings.Contains(strings.ToLower(e.Subject), "not working") {
			t.Fatalf("entry %q does not contain query", e.Subject)
		}
	}
}

func TestLookupNoMatch(t *testing.T) {
	ix := testIndex()
	if got := ix.Lookup("zzz"); len(got) != 0 {
		t.Fatalf("lookup zzz: %+v", got)
	}
}

func TestLookupPreservesCatalogOrder(t *testing.T) {
	ix := testIndex()
	got := ix.Lookup("working")
	if len(got) != 2 || got[0].Subject != "Email Not Working" || got[1].Subject != "Printer Not Working" {
		t.Fatalf("order: %+v", got)
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	data := `[{"subject":"VPN Access","team":"Network"},{"subject":"Password Reset","team":"Apps Support"}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	ix, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if ix.Len() != 2 {
		t.Fatalf("catalog size: %d", ix.Len())
	}
	got := ix.Lookup("reset")
	if len(got) != 1 || got[0].Team != "Apps Support" {
		t.Fatalf("lookup reset: %+v", got)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
}

func TestBuiltinCatalogNotEmpty(t *testing.T) {
	if BuiltinCatalog().Len() == 0 {
		t.Fatalf("builtin catalog is empty")
	}
}
