package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BTreeMap/TradeMentor/internal/api"
	"github.com/BTreeMap/TradeMentor/internal/feedback"
	"github.com/BTreeMap/TradeMentor/internal/flow"
	"github.com/BTreeMap/TradeMentor/internal/genai"
	"github.com/BTreeMap/TradeMentor/internal/lockfile"
	"github.com/BTreeMap/TradeMentor/internal/messaging"
	"github.com/BTreeMap/TradeMentor/internal/store"
	"github.com/BTreeMap/TradeMentor/internal/twiliowhatsapp"
	"github.com/BTreeMap/TradeMentor/internal/whatsapp"
	"golang.org/x/sync/errgroup"
)

// memoryDSN selects the in-memory store. Data is lost on exit.
const memoryDSN = "memory"

// openStore opens the application store selected by the DSN. SQL backends migrate on open.
func openStore(cfg Config) (store.Store, error) {
	if cfg.DBDSN == memoryDSN {
		slog.Warn("Using in-memory store; data will not survive a restart")
		return store.NewInMemoryStore(), nil
	}
	if store.DetectDSNType(cfg.DBDSN) == "postgres" {
		slog.Debug("Detected PostgreSQL DSN, configuring PostgreSQL store", "dsn_type", "postgresql")
		st, err := store.NewPostgresStore(store.WithPostgresDSN(cfg.DBDSN))
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return st, nil
	}
	slog.Debug("Detected SQLite DSN, configuring SQLite store", "dsn_type", "sqlite", "db_path", cfg.DBDSN)
	st, err := store.NewSQLiteStore(store.WithSQLiteDSN(cfg.DBDSN))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	return st, nil
}

// describeDSN names the backend without leaking credentials.
func describeDSN(dsn string) string {
	switch {
	case dsn == memoryDSN:
		return "memory"
	case store.DetectDSNType(dsn) == "postgres":
		return "postgres"
	default:
		return "sqlite " + strings.TrimPrefix(dsn, "file:")
	}
}

// newProvider builds the text-generation client for the configured provider.
func newProvider(ctx context.Context, cfg Config) (genai.Provider, error) {
	var opts []genai.Option
	if cfg.Model != "" {
		opts = append(opts, genai.WithModel(cfg.Model))
	}
	if cfg.Debug {
		opts = append(opts, genai.WithDebugMode(true, cfg.StateDir))
	}
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiKey != "" {
			opts = append(opts, genai.WithAPIKey(cfg.GeminiKey))
		}
		client, err := genai.NewGeminiClient(ctx, opts...)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		if cfg.OpenAIKey != "" {
			opts = append(opts, genai.WithAPIKey(cfg.OpenAIKey))
		}
		client, err := genai.NewClient(opts...)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

// newTransport builds the messaging service and any HTTP routes it needs.
func newTransport(ctx context.Context, cfg Config) (messaging.Service, []api.Option, error) {
	switch cfg.Transport {
	case TransportWhatsApp:
		waOpts := []whatsapp.Option{whatsapp.WithDBDSN(cfg.WhatsAppDSN), whatsapp.WithDebug(cfg.Debug)}
		if cfg.QROutput != "" {
			waOpts = append(waOpts, whatsapp.WithQRCodeOutput(cfg.QROutput))
		}
		if cfg.NumericCode {
			waOpts = append(waOpts, whatsapp.WithNumericCode())
		}
		client, err := whatsapp.NewClient(ctx, waOpts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create WhatsApp client: %w", err)
		}
		return messaging.NewWhatsAppService(client), nil, nil

	case TransportTwilio:
		client, err := twiliowhatsapp.NewClient()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Twilio client: %w", err)
		}
		svc := messaging.NewTwilioService(client, messaging.WithSignatureValidator(client.NewRequestValidator(cfg.TwilioPublicURL)))
		return svc, []api.Option{api.WithTwilioWebhook(svc.TwilioWebhookHandler)}, nil

	default:
		svc, err := messaging.NewTelegramService(
			messaging.WithTelegramToken(cfg.TelegramToken),
			messaging.WithTelegramDebug(cfg.Debug),
		)
		if err != nil {
			return nil, nil, err
		}
		return svc, nil, nil
	}
}

// newEngine wires the dialog engine from configuration.
func newEngine(cfg Config, st store.Store, provider genai.Provider) *flow.Engine {
	gen := feedback.NewService(provider, feedback.WithTimeout(cfg.FeedbackTimeout))
	sessions := flow.NewInMemorySessionStore(flow.WithSessionTTL(cfg.SessionTTL))
	return flow.NewEngine(st, gen,
		flow.WithSessionStore(sessions),
		flow.WithDailyLimit(cfg.DailyLimit),
		flow.WithCommunityLink(cfg.CommunityLink),
		flow.WithLocation(cfg.location()),
	)
}

// runServe owns the process lifecycle: lock, store, engine, transport, dispatcher and HTTP server.
// It returns when ctx is cancelled or any component fails.
func runServe(ctx context.Context, cfg Config) error {
	lock, err := lockfile.AcquireLock(cfg.StateDir, cfg.Transport)
	if err != nil {
		return err
	}
	defer lock.Release()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create %s provider: %w", cfg.Provider, err)
	}
	engine := newEngine(cfg, st, provider)

	svc, apiOpts, err := newTransport(ctx, cfg)
	if err != nil {
		return err
	}
	apiOpts = append(apiOpts, api.WithAddr(cfg.APIAddr), api.WithVersion(version))
	server := api.NewServer(st, apiOpts...)
	handler := messaging.NewResponseHandler(svc, engine)

	g, gctx := errgroup.WithContext(ctx)
	if err := svc.Start(gctx); err != nil {
		return fmt.Errorf("failed to start %s transport: %w", cfg.Transport, err)
	}
	g.Go(func() error { return handler.Run(gctx) })
	g.Go(func() error { return server.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		if err := svc.Stop(); err != nil && !errors.Is(err, messaging.ErrServiceStopped) {
			return fmt.Errorf("failed to stop %s transport: %w", cfg.Transport, err)
		}
		return nil
	})

	slog.Info("TradeMentor is running", "transport", cfg.Transport, "api_addr", cfg.APIAddr, "db", describeDSN(cfg.DBDSN))
	return g.Wait()
}
