package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/BTreeMap/TradeMentor/internal/models"
	"github.com/BTreeMap/TradeMentor/internal/twiliowhatsapp"
)

// twilioWhatsAppPrefix marks WhatsApp addresses in Twilio webhooks.
const twilioWhatsAppPrefix = "whatsapp:"

// TwilioService implements Service using the Twilio REST API for outbound messages and an
// HTTP webhook for inbound ones.
type TwilioService struct {
	client    twiliowhatsapp.TwilioWhatsAppSender
	validator twiliowhatsapp.SignatureValidator // nil disables signature checks
	responses chan models.InboundMessage
	mu        sync.RWMutex
	stopped   bool
}

// TwilioServiceOption configures a TwilioService.
type TwilioServiceOption func(*TwilioService)

// WithSignatureValidator enables X-Twilio-Signature validation on the webhook.
func WithSignatureValidator(v twiliowhatsapp.SignatureValidator) TwilioServiceOption {
	return func(s *TwilioService) { s.validator = v }
}

// NewTwilioService creates a new TwilioService.
func NewTwilioService(client twiliowhatsapp.TwilioWhatsAppSender, opts ...TwilioServiceOption) *TwilioService {
	s := &TwilioService{
		client:    client,
		responses: make(chan models.InboundMessage, DefaultChannelBufferSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateAndCanonicalizeRecipient reduces a phone number, with or without the whatsapp: prefix, to its digits.
func (s *TwilioService) ValidateAndCanonicalizeRecipient(recipient string) (string, error) {
	canonical, err := canonicalizePhone(strings.TrimPrefix(recipient, twilioWhatsAppPrefix))
	if err != nil {
		return "", err
	}
	if canonical != recipient {
		slog.Debug("TwilioService canonicalized recipient", "original", recipient, "canonical", canonical)
	}
	return canonical, nil
}

// Start is a no-op; inbound traffic arrives through TwilioWebhookHandler.
func (s *TwilioService) Start(ctx context.Context) error {
	return nil
}

// Stop closes the Responses channel.
func (s *TwilioService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil
	}
	s.stopped = true
	close(s.responses)
	return nil
}

// SendMessage renders the reply as plain text and sends it through Twilio.
func (s *TwilioService) SendMessage(ctx context.Context, to string, msg models.OutboundMessage) error {
	s.mu.RLock()
	stopped := s.stopped
	s.mu.RUnlock()
	if stopped {
		return ErrServiceStopped
	}
	canonicalTo, err := s.ValidateAndCanonicalizeRecipient(to)
	if err != nil {
		slog.Error("TwilioService SendMessage validation error", "error", err, "to", to)
		return err
	}
	return s.client.SendMessage(ctx, "+"+canonicalTo, RenderPlainText(msg))
}

// Responses returns the channel of incoming messages.
func (s *TwilioService) Responses() <-chan models.InboundMessage {
	return s.responses
}

// TwilioWebhookHandler handles inbound Twilio webhook requests and emits them on Responses.
func (s *TwilioService) TwilioWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.Error("TwilioService webhook: failed to parse form", "error", err)
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if s.validator != nil && !s.validator.ValidateRequest(r) {
		slog.Warn("TwilioService webhook: invalid signature", "remote", r.RemoteAddr)
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	from := r.PostFormValue("From")
	body := r.PostFormValue("Body")
	if from == "" || body == "" {
		slog.Warn("TwilioService webhook: missing fields", "from_set", from != "", "body_set", body != "")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}
	userID, err := s.ValidateAndCanonicalizeRecipient(from)
	if err != nil {
		slog.Warn("TwilioService webhook: invalid sender", "error", err)
		http.Error(w, "Invalid sender", http.StatusBadRequest)
		return
	}

	msg := models.InboundMessage{
		UserID:      userID,
		ChatID:      userID,
		DisplayName: r.PostFormValue("ProfileName"),
		Text:        body,
		Time:        time.Now(),
	}
	if !s.emit(msg) {
		http.Error(w, "Service unavailable", http.StatusServiceUnavailable)
		return
	}
	// An empty TwiML document: replies are sent asynchronously through the REST API.
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "<Response></Response>")
}

func (s *TwilioService) emit(msg models.InboundMessage) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stopped {
		slog.Warn("TwilioService dropping inbound message (service stopped)", "from", msg.UserID)
		return false
	}
	if !emitWithTimeout(s.responses, msg) {
		slog.Warn("TwilioService responses channel blocked, dropping message", "from", msg.UserID)
		return false
	}
	slog.Debug("TwilioService emitted inbound message", "from", msg.UserID)
	return true
}
