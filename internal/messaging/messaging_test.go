package messaging

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/BTreeMap/TradeMentor/internal/flow"
	"github.com/BTreeMap/TradeMentor/internal/i18n"
	"github.com/BTreeMap/TradeMentor/internal/models"
	"github.com/BTreeMap/TradeMentor/internal/twiliowhatsapp"
	"github.com/BTreeMap/TradeMentor/internal/whatsapp"
)

var (
	_ Service = (*TelegramService)(nil)
	_ Service = (*WhatsAppService)(nil)
	_ Service = (*TwilioService)(nil)
	_ Service = (*fakeService)(nil)

	_ MessageHandler = (*flow.Engine)(nil)
)

func TestRenderPlainText(t *testing.T) {
	plain := models.OutboundMessage{Text: "hello"}
	if got := RenderPlainText(plain); got != "hello" {
		t.Errorf("RenderPlainText(plain) = %q", got)
	}

	msg := models.OutboundMessage{
		Text:     "Choose your mentor.",
		Keyboard: []string{"Leo", "Sofia"},
		Locale:   models.LocaleEnglish,
	}
	want := "Choose your mentor.\n\n1. Leo\n2. Sofia\n\n" + i18n.Resolve(i18n.KeyChooseOptionHint, models.LocaleEnglish, nil)
	if got := RenderPlainText(msg); got != want {
		t.Errorf("RenderPlainText() = %q, want %q", got, want)
	}
}

func TestCanonicalizePhone(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"+55 (11) 99999-0000", "5511999990000", false},
		{"5511999990000", "5511999990000", false},
		{"", "", true},
		{"abc", "", true},
		{"+123", "", true},
	}
	for _, tt := range tests {
		got, err := canonicalizePhone(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("canonicalizePhone(%q) = %q, %v; want %q, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

// fakeService is an in-memory transport.
type fakeService struct {
	mu        sync.Mutex
	sent      map[string][]models.OutboundMessage
	responses chan models.InboundMessage
}

func newFakeService() *fakeService {
	return &fakeService{
		sent:      make(map[string][]models.OutboundMessage),
		responses: make(chan models.InboundMessage, DefaultChannelBufferSize),
	}
}

func (f *fakeService) ValidateAndCanonicalizeRecipient(r string) (string, error) {
	if r == "bad" {
		return "", errors.New("bad recipient")
	}
	return r, nil
}

func (f *fakeService) SendMessage(_ context.Context, to string, msg models.OutboundMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent[to] = append(f.sent[to], msg)
	return nil
}

func (f *fakeService) Start(context.Context) error { return nil }

func (f *fakeService) Stop() error {
	close(f.responses)
	return nil
}

func (f *fakeService) Responses() <-chan models.InboundMessage { return f.responses }

func (f *fakeService) texts(to string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, m := range f.sent[to] {
		out = append(out, m.Text)
	}
	return out
}

// echoHandler replies with the message text after a delay and tracks concurrency per user.
type echoHandler struct {
	delay  time.Duration
	mu     sync.Mutex
	active map[string]int
	maxPar map[string]int
	total  int
	peak   int
}

func newEchoHandler(delay time.Duration) *echoHandler {
	return &echoHandler{delay: delay, active: map[string]int{}, maxPar: map[string]int{}}
}

func (h *echoHandler) Handle(ctx context.Context, msg models.InboundMessage, r flow.Replier) error {
	h.mu.Lock()
	h.active[msg.UserID]++
	h.total++
	if h.active[msg.UserID] > h.maxPar[msg.UserID] {
		h.maxPar[msg.UserID] = h.active[msg.UserID]
	}
	if h.total > h.peak {
		h.peak = h.total
	}
	h.mu.Unlock()

	time.Sleep(h.delay)
	err := r.Reply(ctx, models.Text(msg.Text))

	h.mu.Lock()
	h.active[msg.UserID]--
	h.total--
	h.mu.Unlock()
	return err
}

func TestResponseHandler_FIFOPerUser(t *testing.T) {
	svc := newFakeService()
	h := newEchoHandler(time.Millisecond)
	rh := NewResponseHandler(svc, h)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		for _, user := range []string{"a", "b"} {
			msg := models.InboundMessage{UserID: user, Text: user + string(rune('0'+i))}
			if err := rh.ProcessResponse(ctx, msg); err != nil {
				t.Fatalf("ProcessResponse() error: %v", err)
			}
		}
	}
	rh.Wait()

	for _, user := range []string{"a", "b"} {
		got := svc.texts(user)
		want := []string{user + "0", user + "1", user + "2", user + "3", user + "4"}
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("user %s replies = %q, want %q", user, got, want)
		}
		if h.maxPar[user] != 1 {
			t.Errorf("user %s handled %d messages concurrently", user, h.maxPar[user])
		}
	}
}

func TestResponseHandler_UsersRunInParallel(t *testing.T) {
	svc := newFakeService()
	h := newEchoHandler(50 * time.Millisecond)
	rh := NewResponseHandler(svc, h)

	for _, user := range []string{"a", "b", "c"} {
		if err := rh.ProcessResponse(context.Background(), models.InboundMessage{UserID: user, Text: "x"}); err != nil {
			t.Fatal(err)
		}
	}
	rh.Wait()
	if h.peak < 2 {
		t.Errorf("peak concurrency = %d, expected users to be handled in parallel", h.peak)
	}
}

func TestResponseHandler_RejectsInvalidMessages(t *testing.T) {
	rh := NewResponseHandler(newFakeService(), newEchoHandler(0))
	if err := rh.ProcessResponse(context.Background(), models.InboundMessage{Text: "hi"}); !errors.Is(err, models.ErrEmptyUserID) {
		t.Errorf("expected ErrEmptyUserID, got %v", err)
	}
	if err := rh.ProcessResponse(context.Background(), models.InboundMessage{UserID: "u", ChatID: "bad"}); err == nil {
		t.Error("expected invalid sender error")
	}
}

func TestResponseHandler_RunUntilClosed(t *testing.T) {
	svc := newFakeService()
	rh := NewResponseHandler(svc, newEchoHandler(0))

	done := make(chan error, 1)
	go func() { done <- rh.Run(context.Background()) }()

	svc.responses <- models.InboundMessage{UserID: "u1", ChatID: "chat-1", Text: "hello"}
	svc.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the channel closed")
	}
	if got := svc.texts("chat-1"); len(got) != 1 || got[0] != "hello" {
		t.Errorf("replies = %q, want reply sent to chat id", got)
	}
}

func TestWhatsAppService_SendRendersOptions(t *testing.T) {
	mock := whatsapp.NewMockClient()
	svc := NewWhatsAppService(mock)
	msg := models.OutboundMessage{Text: "Language?", Keyboard: []string{"A", "B"}, Locale: models.LocalePortuguese}

	if err := svc.SendMessage(context.Background(), "+55 11 99999-0000", msg); err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	sent := mock.Messages()
	if len(sent) != 1 || sent[0].To != "5511999990000" {
		t.Fatalf("unexpected sent messages %+v", sent)
	}
	if !strings.Contains(sent[0].Body, "1. A\n2. B") {
		t.Errorf("body = %q, want numbered options", sent[0].Body)
	}
}

func TestWhatsAppService_StartStop(t *testing.T) {
	svc := NewWhatsAppService(whatsapp.NewMockClient())
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if err := svc.Stop(); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
	if _, ok := <-svc.Responses(); ok {
		t.Error("expected responses channel closed")
	}
	if err := svc.SendMessage(context.Background(), "5511999990000", models.Text("x")); !errors.Is(err, ErrServiceStopped) {
		t.Errorf("SendMessage after Stop = %v, want ErrServiceStopped", err)
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("second Stop returned error: %v", err)
	}
}

func TestTwilioService_Webhook(t *testing.T) {
	svc := NewTwilioService(twiliowhatsapp.NewMockClient())
	form := url.Values{"From": {"whatsapp:+5511999990000"}, "Body": {"/start"}, "ProfileName": {"Ana"}}
	req := httptest.NewRequest(http.MethodPost, "/webhooks/twilio", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()

	svc.TwilioWebhookHandler(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	select {
	case msg := <-svc.Responses():
		if msg.UserID != "5511999990000" || msg.Text != "/start" || msg.DisplayName != "Ana" {
			t.Errorf("unexpected inbound message %+v", msg)
		}
	default:
		t.Fatal("expected inbound message")
	}
}

func TestTwilioService_WebhookMissingFields(t *testing.T) {
	svc := NewTwilioService(twiliowhatsapp.NewMockClient())
	req := httptest.NewRequest(http.MethodPost, "/webhooks/twilio", strings.NewReader("From=whatsapp%3A%2B5511999990000"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	svc.TwilioWebhookHandler(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

type rejectAll struct{}

func (rejectAll) ValidateRequest(*http.Request) bool { return false }

func TestTwilioService_WebhookSignatureRejected(t *testing.T) {
	svc := NewTwilioService(twiliowhatsapp.NewMockClient(), WithSignatureValidator(rejectAll{}))
	form := url.Values{"From": {"whatsapp:+5511999990000"}, "Body": {"hi"}}
	req := httptest.NewRequest(http.MethodPost, "/webhooks/twilio", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	svc.TwilioWebhookHandler(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rr.Code)
	}
}

func TestTwilioService_SendMessage(t *testing.T) {
	mock := twiliowhatsapp.NewMockClient()
	svc := NewTwilioService(mock)
	if err := svc.SendMessage(context.Background(), "whatsapp:+5511999990000", models.Text("hi")); err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	sent := mock.Sent()
	if len(sent) != 1 || sent[0].To != "+5511999990000" || sent[0].Body != "hi" {
		t.Errorf("unexpected sent messages %+v", sent)
	}
	svc.Stop()
	if err := svc.SendMessage(context.Background(), "5511999990000", models.Text("hi")); !errors.Is(err, ErrServiceStopped) {
		t.Errorf("SendMessage after Stop = %v, want ErrServiceStopped", err)
	}
}
