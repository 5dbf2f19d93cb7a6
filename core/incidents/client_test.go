package incidents

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"request-portal/core/utils"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, utils.NewLogger()), srv
}

func testPayload() Payload {
	return Payload{
		RecID:        "REC1",
		ContactPhone: "555-0100",
		Service:      "Online Submission",
		Description:  "cannot connect",
		Subject:      "VPN Access",
		Category:     "General",
		Subcategory:  "General",
		Team:         "Network",
	}
}

func TestCreateSuccessExtractsIncidentNumber(t *testing.T) {
	var got map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"incident_number":"INC123"}`))
	})
	res := c.Create(context.Background(), testPayload())
	if !res.Success || res.IncidentNumber != "INC123" {
		t.Fatalf("result: %+v", res)
	}
	for field, want := range map[string]string{
		"rec_id":        "REC1",
		"contact_phone": "555-0100",
		"service":       "Online Submission",
		"description":   "cannot connect",
		"subject":       "VPN Access",
		"category":      "General",
		"subcategory":   "General",
		"team":          "Network",
	} {
		if got[field] != want {
			t.Fatalf("payload field %s = %v, want %q", field, got[field], want)
		}
	}
}

func TestCreateReferencePriorityOrder(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"incident_number":"A","incidentNumber":"B","id":"C"}`, "A"},
		{`{"incidentNumber":"B","id":"C"}`, "B"},
		{`{"id":"C"}`, "C"},
		{`{"id":417}`, "417"},
		{`{}`, "N/A"},
		{`{"unrelated":"x"}`, "N/A"},
	}
	for _, tc := range cases {
		body := tc.body
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		res := c.Create(context.Background(), testPayload())
		if !res.Success || res.IncidentNumber != tc.want {
			t.Fatalf("body %s: got %+v, want reference %q", tc.body, res, tc.want)
		}
	}
}

func TestCreateFailureSurfacesServerMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"queue full"}`))
	})
	res := c.Create(context.Background(), testPayload())
	if res.Success || res.ErrorMessage != "queue full" {
		t.Fatalf("result: %+v", res)
	}
}

func TestCreateFailureWithoutMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail":"nope"}`))
	})
	res := c.Create(context.Background(), testPayload())
	if res.Success || res.ErrorMessage != failedMessage {
		t.Fatalf("result: %+v", res)
	}
}

func TestCreateFailureUnparsableErrorBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>broken</html>`))
	})
	res := c.Create(context.Background(), testPayload())
	if res.Success || res.ErrorMessage != failedMessage {
		t.Fatalf("result: %+v", res)
	}
}

func TestCreateSuccessStatusUnparsableBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	})
	res := c.Create(context.Background(), testPayload())
	if res.Success || res.ErrorMessage != genericMessage {
		t.Fatalf("result: %+v", res)
	}
}

func TestCreateTransportFault(t *testing.T) {
	c := NewClient("http://127.0.0.1:1/incident", 200*time.Millisecond, utils.NewLogger())
	res := c.Create(context.Background(), testPayload())
	if res.Success || res.ErrorMessage != genericMessage {
		t.Fatalf("result: %+v", res)
	}
}
