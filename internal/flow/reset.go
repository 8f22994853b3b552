package flow

import (
	"log/slog"

	"github.com/BTreeMap/TradeMentor/internal/i18n"
	"github.com/BTreeMap/TradeMentor/internal/models"
)

func startReset(t *turn) error {
	t.start(models.FlowTypeReset, models.StateAwaitingResetConfirmation)
	t.say(i18n.KeyRedefineConfirm, nil)
	return nil
}

// handleResetConfirmation deletes the profile, plans and trades on an affirmative answer.
// Both outcomes end the flow.
func handleResetConfirmation(t *turn, text string) error {
	t.finish()
	if !i18n.IsAffirmative(text, t.locale) {
		t.say(i18n.KeyRedefineCancel, nil)
		return nil
	}
	if err := t.e.store.DeleteUserData(t.ctx, t.userID); err != nil {
		return err
	}
	slog.Info("Engine reset: user data deleted", "userID", t.userID)
	t.say(i18n.KeyRedefineSuccess, nil)
	return nil
}
