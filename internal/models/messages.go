package models

import "time"

// InboundMessage is a text event delivered by a chat transport.
type InboundMessage struct {
	UserID      string    `json:"user_id"`
	ChatID      string    `json:"chat_id"` // reply address on the originating transport
	DisplayName string    `json:"display_name"`
	Text        string    `json:"text"`
	Time        time.Time `json:"time"`
}

// OutboundMessage is a reply produced by the dialog engine.
// Keyboard is only used at the language and persona selection states.
type OutboundMessage struct {
	Text           string   `json:"text"`
	Keyboard       []string `json:"keyboard,omitempty"`
	RemoveKeyboard bool     `json:"remove_keyboard,omitempty"`
	Locale         Locale   `json:"locale,omitempty"` // used by transports that render keyboards as text
}

// Text builds a plain outbound message.
func Text(body string) OutboundMessage {
	return OutboundMessage{Text: body}
}
