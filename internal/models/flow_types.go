// Package models defines flow type definitions to avoid circular imports.
package models

// FlowType names one dialog flow.
type FlowType string

// StateType represents a specific state within a flow
type StateType string

// DataKey represents a key for an answer collected during a flow
type DataKey string

// Flow type constants.
const (
	FlowTypeOnboarding FlowType = "onboarding"
	FlowTypeReset      FlowType = "reset"
	FlowTypePretrade   FlowType = "pretrade"
	FlowTypePostrade   FlowType = "postrade"
	FlowTypeEOD        FlowType = "eod"
	FlowTypeSleep      FlowType = "dormir"
)

// StateNone means no flow is active for the user.
const StateNone StateType = ""

// Onboarding states.
const (
	StateAwaitingLanguage     StateType = "AWAITING_LANGUAGE"
	StateAwaitingPersona      StateType = "AWAITING_PERSONA"
	StateAwaitingName         StateType = "AWAITING_NAME"
	StateAwaitingAge          StateType = "AWAITING_AGE"
	StateAwaitingExperience   StateType = "AWAITING_EXPERIENCE"
	StateAwaitingSatisfaction StateType = "AWAITING_SATISFACTION"
	StateAwaitingReason       StateType = "AWAITING_REASON"
	StateAwaitingSource       StateType = "AWAITING_SOURCE"
	StateAwaitingGoal         StateType = "AWAITING_GOAL"
	StateAwaitingFear         StateType = "AWAITING_FEAR"
)

// Reset and ritual states.
const (
	StateAwaitingResetConfirmation     StateType = "AWAITING_RESET_CONFIRMATION"
	StateAwaitingPlan                  StateType = "AWAITING_PLAN"
	StateAwaitingDiagnosisConfirmation StateType = "AWAITING_DIAGNOSIS_CONFIRMATION"
	StateAwaitingFocusChoice           StateType = "AWAITING_FOCUS_CHOICE"
	StateAwaitingTradeDetails          StateType = "AWAITING_TRADE_DETAILS"
	StateAwaitingTradeEmotion          StateType = "AWAITING_TRADE_EMOTION"
	StateAwaitingTradeActions          StateType = "AWAITING_TRADE_ACTIONS"
	StateAwaitingReflection            StateType = "AWAITING_REFLECTION"
	StateAwaitingNightThought          StateType = "AWAITING_NIGHT_THOUGHT"
)

// Data keys for collected answers.
const (
	DataKeyPersona             DataKey = "persona"
	DataKeyName                DataKey = "name"
	DataKeyAge                 DataKey = "age"
	DataKeyExperience          DataKey = "experience"
	DataKeySatisfaction        DataKey = "satisfaction"
	DataKeyInconsistencyReason DataKey = "inconsistency_reason"
	DataKeySource              DataKey = "source"
	DataKeyGoal                DataKey = "goal"
	DataKeyFear                DataKey = "fear"
	DataKeyTradeDescription    DataKey = "trade_description"
	DataKeyTradeEmotion        DataKey = "trade_emotion"
	DataKeyTradeActions        DataKey = "trade_actions"
)
