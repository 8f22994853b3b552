package models

import "strings"

// Command is the internal intent behind a localized command label.
type Command string

const (
	CommandNone     Command = ""
	CommandStart    Command = "start"
	CommandProfile  Command = "profile"
	CommandReset    Command = "reset"
	CommandPretrade Command = "pretrade"
	CommandPostrade Command = "postrade"
	CommandEOD      Command = "eod"
	CommandSleep    Command = "sleep"
	CommandCancel   Command = "cancel"
	CommandUnknown  Command = "unknown"
)

// commandAliases maps every accepted label (without the slash) to its intent.
var commandAliases = map[string]Command{
	"start":     CommandStart,
	"perfil":    CommandProfile,
	"profile":   CommandProfile,
	"redefinir": CommandReset,
	"reset":     CommandReset,
	"reiniciar": CommandReset,
	"pretrade":  CommandPretrade,
	"postrade":  CommandPostrade,
	"eod":       CommandEOD,
	"dormir":    CommandSleep,
	"sleep":     CommandSleep,
	"cancel":    CommandCancel,
	"cancelar":  CommandCancel,
}

// ParseCommand extracts the command token of a message. Text that does not start with a slash
// yields CommandNone; unrecognized slash tokens yield CommandUnknown.
// A Telegram style "@botname" suffix on the token is ignored.
func ParseCommand(text string) Command {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return CommandNone
	}
	token := strings.Fields(text)[0][1:]
	if at := strings.IndexByte(token, '@'); at >= 0 {
		token = token[:at]
	}
	if cmd, ok := commandAliases[strings.ToLower(token)]; ok {
		return cmd
	}
	return CommandUnknown
}

// IsRitual reports whether the command enters one of the four daily rituals.
func (c Command) IsRitual() bool {
	switch c {
	case CommandPretrade, CommandPostrade, CommandEOD, CommandSleep:
		return true
	default:
		return false
	}
}
