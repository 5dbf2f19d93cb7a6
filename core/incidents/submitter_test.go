package incidents

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"request-portal/core/records"
	"request-portal/core/utils"
)

func newTestSubmitter(t *testing.T, handler http.HandlerFunc) (*Submitter, *Presenter, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	presenter := NewPresenter()
	sub := NewSubmitter(
		NewClient(srv.URL, time.Second, utils.NewLogger()),
		presenter,
		SubmitterConfig{Service: "Online Submission", Category: "General", Subcategory: "General"},
	)
	return sub, presenter, &hits
}

func testDraft() Draft {
	return Draft{Subject: "VPN Access", Description: "cannot connect", Department: "Network"}
}

func TestSubmitNoopWithoutRecID(t *testing.T) {
	sub, presenter, hits := newTestSubmitter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"incident_number":"INC1"}`))
	})
	_, ran := sub.Submit(context.Background(), testDraft(), records.InternalRecord{})
	if ran {
		t.Fatalf("submit ran without rec id")
	}
	if atomic.LoadInt32(hits) != 0 {
		t.Fatalf("network call happened despite missing rec id")
	}
	if visible, _ := presenter.View(); visible {
		t.Fatalf("no-op submit raised a notification")
	}
}

func TestSubmitPublishesSuccess(t *testing.T) {
	sub, presenter, _ := newTestSubmitter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"incident_number":"INC123"}`))
	})
	res, ran := sub.Submit(context.Background(), testDraft(), records.InternalRecord{RecID: "REC1", Phone: "555-0100"})
	if !ran || !res.Success || res.IncidentNumber != "INC123" {
		t.Fatalf("result: ran=%v %+v", ran, res)
	}
	visible, got := presenter.View()
	if !visible || got != res {
		t.Fatalf("notification: visible=%v %+v", visible, got)
	}
	if sub.Submitting() {
		t.Fatalf("submitting flag still set after completion")
	}
}

func TestSubmitPublishesFailure(t *testing.T) {
	sub, presenter, _ := newTestSubmitter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"queue full"}`))
	})
	res, ran := sub.Submit(context.Background(), testDraft(), records.InternalRecord{RecID: "REC1"})
	if !ran || res.Success || res.ErrorMessage != "queue full" {
		t.Fatalf("result: ran=%v %+v", ran, res)
	}
	if visible, got := presenter.View(); !visible || got.ErrorMessage != "queue full" {
		t.Fatalf("notification: visible=%v %+v", visible, got)
	}
	if sub.Submitting() {
		t.Fatalf("submitting flag still set after failure")
	}
}

func TestSubmitRejectsReentrantAttempt(t *testing.T) {
	block := make(chan struct{})
	sub, _, hits := newTestSubmitter(t, func(w http.ResponseWriter, r *http.Request) {
		<-block
		_, _ = w.Write([]byte(`{"incident_number":"INC1"}`))
	})
	rec := records.InternalRecord{RecID: "REC1"}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sub.Submit(context.Background(), testDraft(), rec)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !sub.Submitting() {
		if time.Now().After(deadline) {
			t.Fatalf("first submission never reached in-flight state")
		}
		time.Sleep(time.Millisecond)
	}

	if _, ran := sub.Submit(context.Background(), testDraft(), rec); ran {
		t.Fatalf("second submit ran while one was in flight")
	}
	close(block)
	<-done

	if got := atomic.LoadInt32(hits); got != 1 {
		t.Fatalf("network hits: %d, want 1", got)
	}
}

func TestPresenterOverwriteAndIdempotentDismiss(t *testing.T) {
	p := NewPresenter()
	p.Show(Result{Success: true, IncidentNumber: "INC1"})
	p.Show(Result{ErrorMessage: "queue full"})
	visible, got := p.View()
	if !visible || got.Success || got.ErrorMessage != "queue full" {
		t.Fatalf("overwrite: visible=%v %+v", visible, got)
	}
	p.Acknowledge()
	p.Acknowledge()
	visible, got = p.View()
	if visible {
		t.Fatalf("still visible after acknowledge")
	}
	if got.ErrorMessage != "queue full" {
		t.Fatalf("acknowledge dropped the last result: %+v", got)
	}
}
