// Package messaging connects chat transports to the dialog engine.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BTreeMap/TradeMentor/internal/i18n"
	"github.com/BTreeMap/TradeMentor/internal/models"
)

// Constants for service configuration
const (
	// DefaultChannelBufferSize defines the buffer size of the inbound message channel
	DefaultChannelBufferSize = 100
	// DefaultChannelTimeout bounds how long an inbound message waits for buffer space
	DefaultChannelTimeout = 1 * time.Second
)

// ErrServiceStopped is returned when sending through a stopped service.
var ErrServiceStopped = errors.New("messaging service stopped")

// Service defines a pluggable chat transport.
type Service interface {
	// ValidateAndCanonicalizeRecipient validates and canonicalizes a recipient identifier.
	// Each transport applies its own rules (chat ids for Telegram, phone numbers for WhatsApp).
	ValidateAndCanonicalizeRecipient(recipient string) (string, error)

	// SendMessage delivers one engine reply to a recipient.
	SendMessage(ctx context.Context, to string, msg models.OutboundMessage) error

	// Start begins any background processing (e.g., polling for updates).
	Start(ctx context.Context) error

	// Stop stops background processing and closes the Responses channel.
	Stop() error

	// Responses returns a channel of incoming user messages.
	Responses() <-chan models.InboundMessage
}

// RenderPlainText flattens a reply for transports without reply keyboards.
// Options become a numbered list followed by a localized hint; the engine accepts the numbers.
func RenderPlainText(msg models.OutboundMessage) string {
	if len(msg.Keyboard) == 0 {
		return msg.Text
	}
	var b strings.Builder
	b.WriteString(msg.Text)
	b.WriteString("\n")
	for i, opt := range msg.Keyboard {
		fmt.Fprintf(&b, "\n%d. %s", i+1, opt)
	}
	b.WriteString("\n\n")
	b.WriteString(i18n.Resolve(i18n.KeyChooseOptionHint, msg.Locale, nil))
	return b.String()
}

// emitWithTimeout pushes an inbound message, dropping it when the consumer stays blocked.
func emitWithTimeout(ch chan<- models.InboundMessage, msg models.InboundMessage) bool {
	select {
	case ch <- msg:
		return true
	case <-time.After(DefaultChannelTimeout):
		return false
	}
}
