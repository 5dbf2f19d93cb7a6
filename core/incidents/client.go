package incidents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"request-portal/core/utils"
)

const (
	// Sentinel reference when the tracker accepts the incident but returns
	// no recognizable reference field.
	referenceUnknown = "N/A"

	failedMessage  = "Submission failed"
	genericMessage = "An unexpected error occurred. Please try again."
)

// referenceFields are the response fields probed for the incident
// reference, in priority order; the first present wins.
var referenceFields = []string{"incident_number", "incidentNumber", "id"}

// Payload is the body sent to the incident-tracking endpoint.
type Payload struct {
	RecID        string `json:"rec_id"`
	ContactPhone string `json:"contact_phone"`
	Service      string `json:"service"`
	Description  string `json:"description"`
	Subject      string `json:"subject"`
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory"`
	Team         string `json:"team"`
}

type Client struct {
	client    *http.Client
	submitURL string
	logger    *utils.Logger
}

func NewClient(submitURL string, timeout time.Duration, logger *utils.Logger) *Client {
	return &Client{
		client:    &http.Client{Timeout: timeout},
		submitURL: submitURL,
		logger:    logger,
	}
}

// Create posts the incident and maps the outcome to a Result. Transport
// and decode faults never escape as raw errors; they come back as failure
// results with a user-presentable message.
func (c *Client) Create(ctx context.Context, p Payload) Result {
	raw, err := json.Marshal(p)
	if err != nil {
		c.logger.Errorf("incident payload marshal: %v", err)
		return Result{ErrorMessage: genericMessage}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.submitURL, bytes.NewReader(raw))
	if err != nil {
		c.logger.Errorf("incident request: %v", err)
		return Result{ErrorMessage: genericMessage}
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Errorf("incident submit: %v", err)
		return Result{ErrorMessage: genericMessage}
	}
	defer resp.Body.Close()

	var body map[string]any
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := failedMessage
		if decodeErr == nil {
			if m, ok := body["message"].(string); ok && m != "" {
				msg = m
			}
		}
		c.logger.Errorf("incident submit status %d: %s", resp.StatusCode, msg)
		return Result{ErrorMessage: msg}
	}
	if decodeErr != nil {
		c.logger.Errorf("incident response decode: %v", decodeErr)
		return Result{ErrorMessage: genericMessage}
	}
	return Result{Success: true, IncidentNumber: extractReference(body)}
}

func extractReference(body map[string]any) string {
	for _, field := range referenceFields {
		switch v := body[field].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case json.Number:
			return v.String()
		case nil:
			continue
		default:
			return fmt.Sprint(v)
		}
	}
	return referenceUnknown
}
