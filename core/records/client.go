package records

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// InternalRecord is the organization's own account record for a user. A
// non-empty RecID is what gates incident submission; everything else is
// display data.
type InternalRecord struct {
	RecID string `json:"rec_id"`
	Phone string `json:"phone1"`
}

func (r InternalRecord) HasRecID() bool {
	return strings.TrimSpace(r.RecID) != ""
}

type Client struct {
	client  *http.Client
	baseURL string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchRecord looks up the internal record by login identifier. A non-200
// status or a malformed body is reported as an error; callers translate
// that into "no account found" rather than a blocking failure.
func (c *Client) FetchRecord(ctx context.Context, loginIdentifier string) (InternalRecord, error) {
	var rec InternalRecord
	endpoint := fmt.Sprintf("%s/api/users?email=%s", c.baseURL, url.QueryEscape(loginIdentifier))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return rec, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return rec, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return rec, fmt.Errorf("records status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return InternalRecord{}, err
	}
	return rec, nil
}
