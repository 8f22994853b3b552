package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/BTreeMap/TradeMentor/internal/messaging"
	"github.com/BTreeMap/TradeMentor/internal/store"
	"github.com/BTreeMap/TradeMentor/internal/twiliowhatsapp"
)

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	return resp
}

func TestHealth_OK(t *testing.T) {
	srv := NewServer(store.NewInMemoryStore(), WithVersion("1.2.3"))
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	resp := decodeResponse(t, rr)
	if resp.Status != StatusOK {
		t.Errorf("status field = %q", resp.Status)
	}
	result, _ := resp.Result.(map[string]interface{})
	if result["database"] != "ok" || result["version"] != "1.2.3" {
		t.Errorf("unexpected result %v", resp.Result)
	}
}

func TestHealth_DatabaseDown(t *testing.T) {
	st := store.NewInMemoryStore()
	st.Close()
	srv := NewServer(st)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	if resp := decodeResponse(t, rr); resp.Status != StatusError {
		t.Errorf("status field = %q", resp.Status)
	}
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	srv := NewServer(store.NewInMemoryStore())
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/health", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rr.Code)
	}
}

func TestTwilioWebhookRoute(t *testing.T) {
	svc := messaging.NewTwilioService(twiliowhatsapp.NewMockClient())
	srv := NewServer(store.NewInMemoryStore(), WithTwilioWebhook(svc.TwilioWebhookHandler))

	form := url.Values{"From": {"whatsapp:+5511999990000"}, "Body": {"/pretrade"}}
	req := httptest.NewRequest(http.MethodPost, TwilioWebhookPath, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	select {
	case msg := <-svc.Responses():
		if msg.UserID != "5511999990000" || msg.Text != "/pretrade" {
			t.Errorf("unexpected message %+v", msg)
		}
	default:
		t.Fatal("expected inbound message")
	}
}

func TestTwilioWebhookRoute_NotMountedByDefault(t *testing.T) {
	srv := NewServer(store.NewInMemoryStore())
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, TwilioWebhookPath, nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestRecovererMiddleware(t *testing.T) {
	srv := NewServer(store.NewInMemoryStore(), WithTwilioWebhook(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, TwilioWebhookPath, nil))
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rr.Code)
	}
}

func TestWriteJSONResponse_MarshalFailure(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSONResponse(rr, http.StatusOK, Success(make(chan int)))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if resp := decodeResponse(t, rr); resp.Status != StatusError {
		t.Errorf("status field = %q", resp.Status)
	}
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	srv := NewServer(store.NewInMemoryStore(), WithAddr("127.0.0.1:0"))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Fatalf("Run() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
