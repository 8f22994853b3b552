package i18n

// Message keys. The same keys exist in every locale table.
const (
	KeyChooseLanguage     = "choose_language"
	KeyWelcomeNew         = "welcome_new"
	KeyWelcomeBack        = "welcome_back"
	KeyProfileNeeded      = "profile_needed"
	KeyRedefineConfirm    = "redefine_confirm"
	KeyRedefineSuccess    = "redefine_success"
	KeyRedefineCancel     = "redefine_cancel"
	KeyLimitReached       = "limit_reached"
	KeyCancelConversation = "cancel_conversation"
	KeyUnknownCommand     = "unknown_command"
	KeyNextStepPrompt     = "next_step_prompt"
	KeyElaborationNeeded  = "elaboration_needed"
	KeyGenericError       = "generic_error"
	KeyFeedbackFailed     = "feedback_unavailable"
	KeyChooseOptionHint   = "choose_option_hint"

	KeyProfileQPersona      = "profile_q_persona"
	KeyProfileQName         = "profile_q_name"
	KeyProfileQAge          = "profile_q_age"
	KeyProfileQExperience   = "profile_q_experience"
	KeyProfileQSatisfaction = "profile_q_satisfaction"
	KeyProfileQReason       = "profile_q_reason"
	KeyProfileQSource       = "profile_q_source"
	KeyProfileQGoal         = "profile_q_goal"
	KeyProfileQFear         = "profile_q_fear"
	KeyProfileComplete      = "profile_complete"

	KeyPretradeQPlan             = "pretrade_q_plan"
	KeyPretradeAnalyzing         = "pretrade_analyzing"
	KeyPretradeConfirmDiagnosis  = "pretrade_confirm_diagnosis"
	KeyPretradeDeclined          = "pretrade_declined"
	KeyPretradeNoPoints          = "pretrade_no_points"
	KeyPretradeChooseFocus       = "pretrade_choose_focus"
	KeyPretradeInvalidChoice     = "pretrade_invalid_choice"
	KeyPretradeInvalidNumber     = "pretrade_invalid_number"
	KeyPretradeActionPlanPending = "pretrade_action_plan_generating"
	KeyPretradeEODInstruction    = "pretrade_eod_instruction"

	KeyPostradeQDetails  = "postrade_q_details"
	KeyPostradeQEmotion  = "postrade_q_emotion"
	KeyPostradeQActions  = "postrade_q_actions"
	KeyPostradeAnalyzing = "postrade_analyzing"

	KeyEODQGeneric  = "eod_q_generic"
	KeyEODQPlan     = "eod_q_plan"
	KeyEODAnalyzing = "eod_analyzing"

	KeyDormirQ          = "dormir_q"
	KeyDormirProcessing = "dormir_processing"
)

// Prompt keys used to build text-generation requests.
const (
	KeyAISystemPromptMale   = "ai_system_prompt_male"
	KeyAISystemPromptFemale = "ai_system_prompt_female"
	KeyAITaskDiagnose       = "ai_task_diagnose"
	KeyAITaskImprove        = "ai_task_improve"
	KeyAITaskAffirmation    = "ai_task_affirmation"
	KeyAITaskRootBelief     = "ai_task_root_belief"
	KeyAITaskAdherence      = "ai_task_adherence"
	KeyAIDataHeader         = "ai_data_header"
	KeyAIProfileContext     = "ai_profile_context"
	KeyAIProfileReason      = "ai_profile_reason"
	KeyAIScenario           = "ai_scenario"
	KeyAIAnswer             = "ai_answer"
	KeyAITodaysPlan         = "ai_todays_plan"
	KeyAITradeDescription   = "ai_trade_description"
	KeyAITradeEmotion       = "ai_trade_emotion"
	KeyAITradeActions       = "ai_trade_actions"

	KeyScenarioPretrade = "scenario_pretrade"
	KeyScenarioFocus    = "scenario_focus"
	KeyScenarioPostrade = "scenario_postrade"
	KeyScenarioEOD      = "scenario_eod"
	KeyScenarioDormir   = "scenario_dormir"
)
