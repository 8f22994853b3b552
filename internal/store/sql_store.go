package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BTreeMap/TradeMentor/internal/models"
)

// dbStore implements Store over database/sql. Queries are written with '?' placeholders and passed
// through bind for the target dialect.
type dbStore struct {
	db   *sql.DB
	name string // used as the log prefix, e.g. "SQLiteStore"
	bind func(string) string
}

func (s *dbStore) q(query string) string {
	if s.bind == nil {
		return query
	}
	return s.bind(query)
}

// EnsureUser inserts the user row if missing.
func (s *dbStore) EnsureUser(ctx context.Context, userID, displayName string) error {
	if userID == "" {
		return models.ErrEmptyUserID
	}
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO users (user_id, display_name, locale, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO NOTHING`),
		userID, displayName, string(models.DefaultLocale), time.Now().UTC())
	if err != nil {
		slog.Error(s.name+" EnsureUser failed", "error", err, "userID", userID)
		return fmt.Errorf("failed to ensure user %s: %w", userID, err)
	}
	slog.Debug(s.name+" EnsureUser succeeded", "userID", userID)
	return nil
}

// GetProfile returns nil when the user has no profile.
func (s *dbStore) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	var reason sql.NullString
	var persona string
	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT name, age, experience, satisfaction, inconsistency_reason, source, goal, fear, persona
		FROM user_profiles WHERE user_id = ?`), userID).Scan(
		&p.Name, &p.Age, &p.Experience, &p.Satisfaction, &reason, &p.Source, &p.Goal, &p.Fear, &persona)
	if errors.Is(err, sql.ErrNoRows) {
		slog.Debug(s.name+" GetProfile not found", "userID", userID)
		return nil, nil
	}
	if err != nil {
		slog.Error(s.name+" GetProfile failed", "error", err, "userID", userID)
		return nil, fmt.Errorf("failed to get profile for %s: %w", userID, err)
	}
	p.InconsistencyReason = stringPtr(reason)
	p.Persona = models.Persona(persona)
	return &p, nil
}

// UpsertProfile writes every column so a completed onboarding fully replaces the previous profile.
func (s *dbStore) UpsertProfile(ctx context.Context, userID string, p models.Profile) error {
	if userID == "" {
		return models.ErrEmptyUserID
	}
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO user_profiles (user_id, name, age, experience, satisfaction, inconsistency_reason, source, goal, fear, persona, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			experience = excluded.experience,
			satisfaction = excluded.satisfaction,
			inconsistency_reason = excluded.inconsistency_reason,
			source = excluded.source,
			goal = excluded.goal,
			fear = excluded.fear,
			persona = excluded.persona,
			updated_at = excluded.updated_at`),
		userID, p.Name, p.Age, p.Experience, p.Satisfaction, nilIfAbsent(p.InconsistencyReason),
		p.Source, p.Goal, p.Fear, string(p.Persona), time.Now().UTC())
	if err != nil {
		slog.Error(s.name+" UpsertProfile failed", "error", err, "userID", userID)
		return fmt.Errorf("failed to upsert profile for %s: %w", userID, err)
	}
	slog.Debug(s.name+" UpsertProfile succeeded", "userID", userID, "persona", p.Persona, "hasReason", p.HasReason())
	return nil
}

// DeleteUserData removes profile, plans and trades in one transaction.
func (s *dbStore) DeleteUserData(ctx context.Context, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error(s.name+" DeleteUserData begin failed", "error", err, "userID", userID)
		return fmt.Errorf("failed to begin reset for %s: %w", userID, err)
	}
	defer tx.Rollback()

	for _, table := range []string{"user_profiles", "daily_plans", "trades"} {
		if _, err := tx.ExecContext(ctx, s.q(`DELETE FROM `+table+` WHERE user_id = ?`), userID); err != nil {
			slog.Error(s.name+" DeleteUserData failed", "error", err, "userID", userID, "table", table)
			return fmt.Errorf("failed to delete %s for %s: %w", table, userID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		slog.Error(s.name+" DeleteUserData commit failed", "error", err, "userID", userID)
		return fmt.Errorf("failed to commit reset for %s: %w", userID, err)
	}
	slog.Info(s.name+" DeleteUserData succeeded", "userID", userID)
	return nil
}

func (s *dbStore) UpsertDailyPlan(ctx context.Context, userID, date, text string) error {
	if userID == "" {
		return models.ErrEmptyUserID
	}
	if text == "" {
		return models.ErrEmptyPlanText
	}
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO daily_plans (user_id, plan_date, plan_text, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, plan_date) DO UPDATE SET
			plan_text = excluded.plan_text,
			updated_at = excluded.updated_at`),
		userID, date, text, time.Now().UTC())
	if err != nil {
		slog.Error(s.name+" UpsertDailyPlan failed", "error", err, "userID", userID, "date", date)
		return fmt.Errorf("failed to upsert daily plan for %s: %w", userID, err)
	}
	slog.Debug(s.name+" UpsertDailyPlan succeeded", "userID", userID, "date", date)
	return nil
}

func (s *dbStore) GetDailyPlan(ctx context.Context, userID, date string) (*models.DailyPlan, error) {
	plan := models.DailyPlan{UserID: userID, Date: date}
	err := s.db.QueryRowContext(ctx, s.q(`SELECT plan_text FROM daily_plans WHERE user_id = ? AND plan_date = ?`),
		userID, date).Scan(&plan.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		slog.Error(s.name+" GetDailyPlan failed", "error", err, "userID", userID, "date", date)
		return nil, fmt.Errorf("failed to get daily plan for %s: %w", userID, err)
	}
	return &plan, nil
}

func (s *dbStore) AppendTradeRecord(ctx context.Context, r models.TradeRecord) error {
	if r.UserID == "" {
		return models.ErrEmptyUserID
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO trades (user_id, trade_description, emotion, unplanned_actions, ai_analysis, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`),
		r.UserID, r.Description, r.Emotion, r.UnplannedActions, r.Analysis, r.CreatedAt.UTC())
	if err != nil {
		slog.Error(s.name+" AppendTradeRecord failed", "error", err, "userID", r.UserID)
		return fmt.Errorf("failed to append trade record for %s: %w", r.UserID, err)
	}
	slog.Debug(s.name+" AppendTradeRecord succeeded", "userID", r.UserID)
	return nil
}

func (s *dbStore) AppendInteractionLog(ctx context.Context, in models.Interaction) error {
	if in.UserID == "" {
		return models.ErrEmptyUserID
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO interactions (user_id, command, user_message, ai_response, created_at)
		VALUES (?, ?, ?, ?, ?)`),
		in.UserID, in.Command, in.Input, in.Response, in.CreatedAt.UTC())
	if err != nil {
		slog.Error(s.name+" AppendInteractionLog failed", "error", err, "userID", in.UserID, "command", in.Command)
		return fmt.Errorf("failed to log interaction for %s: %w", in.UserID, err)
	}
	slog.Debug(s.name+" AppendInteractionLog succeeded", "userID", in.UserID, "command", in.Command)
	return nil
}

func (s *dbStore) CountInteractionsToday(ctx context.Context, userID string, dayStart, dayEnd time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT COUNT(*) FROM interactions
		WHERE user_id = ? AND created_at >= ? AND created_at < ?`),
		userID, dayStart.UTC(), dayEnd.UTC()).Scan(&count)
	if err != nil {
		slog.Error(s.name+" CountInteractionsToday failed", "error", err, "userID", userID)
		return 0, fmt.Errorf("failed to count interactions for %s: %w", userID, err)
	}
	return count, nil
}

func (s *dbStore) GetLocale(ctx context.Context, userID string) (models.Locale, error) {
	var locale string
	err := s.db.QueryRowContext(ctx, s.q(`SELECT locale FROM users WHERE user_id = ?`), userID).Scan(&locale)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultLocale, nil
	}
	if err != nil {
		slog.Error(s.name+" GetLocale failed", "error", err, "userID", userID)
		return "", fmt.Errorf("failed to get locale for %s: %w", userID, err)
	}
	if l := models.Locale(locale); l.IsValid() {
		return l, nil
	}
	return models.DefaultLocale, nil
}

// SetLocale stores the locale, creating the user row when needed.
func (s *dbStore) SetLocale(ctx context.Context, userID string, locale models.Locale) error {
	if !locale.IsValid() {
		return models.ErrInvalidLocale
	}
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO users (user_id, display_name, locale, created_at)
		VALUES (?, '', ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET locale = excluded.locale`),
		userID, string(locale), time.Now().UTC())
	if err != nil {
		slog.Error(s.name+" SetLocale failed", "error", err, "userID", userID, "locale", locale)
		return fmt.Errorf("failed to set locale for %s: %w", userID, err)
	}
	slog.Debug(s.name+" SetLocale succeeded", "userID", userID, "locale", locale)
	return nil
}

func (s *dbStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *dbStore) Close() error {
	slog.Debug("Closing " + s.name + " database connection")
	err := s.db.Close()
	if err != nil {
		slog.Error(s.name+" close failed", "error", err)
	}
	return err
}
