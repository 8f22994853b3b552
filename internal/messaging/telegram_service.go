package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/BTreeMap/TradeMentor/internal/models"
)

const (
	// telegramMaxMessageLen stays below Telegram's 4096 character limit.
	telegramMaxMessageLen = 4000
	// DefaultPollTimeout is the long polling timeout in seconds.
	DefaultPollTimeout = 30
)

// ErrTelegramTokenRequired is returned when no bot token is configured.
var ErrTelegramTokenRequired = errors.New("telegram token is required")

// TelegramBot is the subset of tgbotapi.BotAPI used by the service, so tests can mock it.
type TelegramBot interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetSelf() tgbotapi.User
}

type tgBotWrapper struct {
	bot *tgbotapi.BotAPI
}

func (w *tgBotWrapper) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return w.bot.GetUpdatesChan(config)
}

func (w *tgBotWrapper) StopReceivingUpdates() {
	w.bot.StopReceivingUpdates()
}

func (w *tgBotWrapper) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	return w.bot.Send(c)
}

func (w *tgBotWrapper) GetSelf() tgbotapi.User {
	return w.bot.Self
}

// BotFactory creates TelegramBot instances.
type BotFactory func(token, apiEndpoint string, client *http.Client) (TelegramBot, error)

var defaultBotFactory BotFactory = func(token, apiEndpoint string, client *http.Client) (TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(token, apiEndpoint, client)
	if err != nil {
		return nil, err
	}
	return &tgBotWrapper{bot: bot}, nil
}

// TelegramOpts holds configuration for the Telegram transport.
type TelegramOpts struct {
	Token       string
	PollTimeout int
	Debug       bool
	Factory     BotFactory
	HTTPClient  *http.Client
}

// TelegramOption configures a TelegramService.
type TelegramOption func(*TelegramOpts)

// WithTelegramToken sets the bot token.
func WithTelegramToken(token string) TelegramOption {
	return func(o *TelegramOpts) { o.Token = token }
}

// WithPollTimeout sets the long polling timeout in seconds.
func WithPollTimeout(seconds int) TelegramOption {
	return func(o *TelegramOpts) { o.PollTimeout = seconds }
}

// WithBotFactory replaces the bot constructor, for tests.
func WithBotFactory(f BotFactory) TelegramOption {
	return func(o *TelegramOpts) { o.Factory = f }
}

// WithTelegramDebug enables tgbotapi request logging.
func WithTelegramDebug(enabled bool) TelegramOption {
	return func(o *TelegramOpts) { o.Debug = enabled }
}

// TelegramService implements Service over the Telegram Bot API using long polling.
type TelegramService struct {
	opts      TelegramOpts
	bot       TelegramBot
	responses chan models.InboundMessage
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
	stopped   bool
}

// NewTelegramService creates a TelegramService. The bot is created on Start.
func NewTelegramService(opts ...TelegramOption) (*TelegramService, error) {
	cfg := TelegramOpts{
		PollTimeout: DefaultPollTimeout,
		Factory:     defaultBotFactory,
		HTTPClient:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Token == "" {
		return nil, ErrTelegramTokenRequired
	}
	return &TelegramService{
		opts:      cfg,
		responses: make(chan models.InboundMessage, DefaultChannelBufferSize),
	}, nil
}

// ValidateAndCanonicalizeRecipient accepts numeric Telegram chat ids, including negative group ids.
func (s *TelegramService) ValidateAndCanonicalizeRecipient(recipient string) (string, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return "", fmt.Errorf("recipient cannot be empty")
	}
	id, err := strconv.ParseInt(recipient, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid telegram chat id %q: %w", recipient, err)
	}
	return strconv.FormatInt(id, 10), nil
}

// Start connects the bot and begins polling for updates.
func (s *TelegramService) Start(ctx context.Context) error {
	bot, err := s.opts.Factory(s.opts.Token, tgbotapi.APIEndpoint, s.opts.HTTPClient)
	if err != nil {
		return fmt.Errorf("create telegram bot: %w", err)
	}
	if b, ok := bot.(*tgBotWrapper); ok {
		b.bot.Debug = s.opts.Debug
	}
	s.bot = bot
	slog.Info("TelegramService authorized", "username", bot.GetSelf().UserName)

	ctx, s.cancel = context.WithCancel(ctx)
	u := tgbotapi.NewUpdate(0)
	u.Timeout = s.opts.PollTimeout
	updates := bot.GetUpdatesChan(u)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case update, ok := <-updates:
				if !ok {
					return
				}
				s.handleUpdate(update)
			case <-ctx.Done():
				return
			}
		}
	}()
	slog.Info("TelegramService polling started", "timeout", s.opts.PollTimeout)
	return nil
}

// Stop ends polling and closes the Responses channel.
func (s *TelegramService) Stop() error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	if s.bot != nil {
		s.bot.StopReceivingUpdates()
	}
	s.wg.Wait()
	close(s.responses)
	slog.Info("TelegramService stopped")
	return nil
}

// Responses returns the channel of incoming messages.
func (s *TelegramService) Responses() <-chan models.InboundMessage {
	return s.responses
}

func (s *TelegramService) handleUpdate(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return
	}
	if msg.Text == "" {
		slog.Debug("TelegramService ignoring non-text message", "userID", msg.From.ID)
		return
	}
	name := msg.From.FirstName
	if name == "" {
		name = msg.From.UserName
	}
	in := models.InboundMessage{
		UserID:      strconv.FormatInt(msg.From.ID, 10),
		ChatID:      strconv.FormatInt(msg.Chat.ID, 10),
		DisplayName: name,
		Text:        msg.Text,
		Time:        time.Unix(int64(msg.Date), 0),
	}
	if !emitWithTimeout(s.responses, in) {
		slog.Warn("TelegramService responses channel blocked, dropping message", "userID", in.UserID, "timeout", DefaultChannelTimeout)
	}
}

// SendMessage sends a reply, splitting long texts. Keyboard changes ride on the last chunk.
func (s *TelegramService) SendMessage(ctx context.Context, to string, msg models.OutboundMessage) error {
	s.mu.RLock()
	stopped := s.stopped
	s.mu.RUnlock()
	if stopped {
		return ErrServiceStopped
	}
	if s.bot == nil {
		return fmt.Errorf("telegram bot not initialized")
	}
	canonical, err := s.ValidateAndCanonicalizeRecipient(to)
	if err != nil {
		return err
	}
	chatID, _ := strconv.ParseInt(canonical, 10, 64)

	chunks := splitMessage(msg.Text, telegramMaxMessageLen)
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		out := tgbotapi.NewMessage(chatID, chunk)
		if i == len(chunks)-1 {
			out.ReplyMarkup = replyMarkup(msg)
		}
		if err := s.send(out); err != nil {
			slog.Error("TelegramService SendMessage error", "error", err, "to", canonical)
			return fmt.Errorf("send telegram message: %w", err)
		}
	}
	slog.Debug("TelegramService message sent", "to", canonical, "chunks", len(chunks))
	return nil
}

// send tries Markdown first; catalog texts use *emphasis*, but user supplied text may not parse.
func (s *TelegramService) send(out tgbotapi.MessageConfig) error {
	out.ParseMode = tgbotapi.ModeMarkdown
	if _, err := s.bot.Send(out); err == nil {
		return nil
	}
	out.ParseMode = ""
	_, err := s.bot.Send(out)
	return err
}

func replyMarkup(msg models.OutboundMessage) interface{} {
	switch {
	case len(msg.Keyboard) > 0:
		rows := make([][]tgbotapi.KeyboardButton, 0, len(msg.Keyboard))
		for _, opt := range msg.Keyboard {
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(opt)))
		}
		kb := tgbotapi.NewReplyKeyboard(rows...)
		kb.OneTimeKeyboard = true
		kb.ResizeKeyboard = true
		return kb
	case msg.RemoveKeyboard:
		return tgbotapi.NewRemoveKeyboard(true)
	default:
		return nil
	}
}

// splitMessage cuts text into chunks of at most max bytes, preferring newline boundaries
// and never splitting a UTF-8 sequence. Empty text yields one empty chunk.
func splitMessage(text string, max int) []string {
	if len(text) <= max {
		return []string{text}
	}
	var chunks []string
	for len(text) > max {
		cut := strings.LastIndex(text[:max], "\n")
		if cut <= 0 {
			cut = max
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
		}
		chunks = append(chunks, text[:cut])
		text = strings.TrimPrefix(text[cut:], "\n")
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
