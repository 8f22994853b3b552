package i18n

var messagesEN = map[string]string{
	"choose_language":                 "Please choose your language.",
	"welcome_new":                     "Welcome to your high-performance arena. I will be your mentor from Unity Alta Performance, and I will be by your side, in the trenches, to forge the mindset that separates the 95% who give up from the 5% who achieve consistency.\n\nFor this, I need your total commitment. Our journey begins with a deep diagnostic session. When you are ready to commit to your evolution, use the /profile command.",
	"welcome_back":                    "Welcome back, {name}. With me, your mentor {mentor_name}, your focus remains on '{goal}' and our job is to master your tendency for '{fear}'.\n\nAvailable commands:\n🔹 /pretrade\n🔹 /postrade\n🔹 /eod\n🔹 /dormir\n🔹 /profile\n🔹 /reset",
	"profile_needed":                  "To use this command, we first need to define your journey. Please set up your profile with the /profile command.",
	"redefine_confirm":                "Are you sure you want to delete your profile and restart your journey? All your profile progress will be lost. Reply 'yes' to confirm.",
	"redefine_success":                "Your profile has been reset. Use /start to begin a new journey.",
	"redefine_cancel":                 "Action cancelled. Your profile is safe.",
	"limit_reached":                   "You have reached your daily interaction limit. Consistency is also built on rest. We'll talk tomorrow.",
	"cancel_conversation":             "Ok, conversation cancelled. I'm here when you need me.",
	"unknown_command":                 "Sorry, I didn't understand that command. Try /start to see the available options.",
	"next_step_prompt":                "\n\nI'm ready for the next step. Available commands: /pretrade, /postrade, /eod, /dormir.",
	"elaboration_needed":              "For a deep and effective analysis, I need more details. Please elaborate on your answer.",
	"profile_q_persona":               "To begin, which of our high-performance mentors would you like to work with?",
	"profile_q_name":                  "Great choice. To make our mentoring as personal as possible, what would you like to be called?",
	"profile_q_age":                   "Nice to meet you, {name}. How old are you?",
	"profile_q_experience":            "Understood. How long have you been trading in the financial market?",
	"profile_q_satisfaction":          "And regarding your current results, are you satisfied with your performance, or do you feel you could go much further?",
	"profile_q_reason":                "I see. That's an important insight. In your opinion, why do you believe you haven't achieved consistency yet? Be as honest as possible.",
	"profile_q_source":                "Thank you for your honesty. To help us improve, how did you find out about this mentor? (e.g., Friend, Telegram Group, YouTube, etc.)",
	"profile_q_goal":                  "That's a great starting point. Now, what is your biggest goal as a trader? What drives you every day? (e.g., Living off the market, financial freedom, proving I can do it)",
	"profile_q_fear":                  "Understood. Now, the most important part: what is your biggest weakness or fear? What sabotages you the most? (e.g., Anxiety that makes me exit early, greed after a win, fear of taking risks)",
	"profile_complete":                "Profile set up, {name}. Our contract is sealed: we will work to achieve '{goal}' while mastering your tendency for '{fear}'.\n\nThe journey of an elite trader is lonely, but it doesn't have to be. Join our community of performance-focused traders to discuss strategies and evolve together: {community_link}\n\nNow, let's get to work. Start with /pretrade.",
	"pretrade_q_plan":                 "Your biggest challenge is '{fear}'. Define your battle plan for today, detailing how you will shield yourself from it.",
	"pretrade_analyzing":              "Analyzing your plan...",
	"pretrade_confirm_diagnosis":      "Does this initial diagnosis make sense to you? Reply 'yes' to choose the point you want to work on today, or /cancel to finish.",
	"pretrade_no_points":              "I couldn't identify improvement points in the diagnosis. Let's focus on the general plan for today. Have a great trading day.",
	"pretrade_choose_focus":           "Excellent. Below are the identified points. Enter the number of the **single point** you want to focus on today (e.g., 1).\n\n{points}",
	"pretrade_invalid_choice":         "Please choose **only 1** point. (e.g., 1)",
	"pretrade_invalid_number":         "The number {number} is not a valid option. Please try again.",
	"pretrade_action_plan_generating": "Great choice. Preparing your focused behavioral action plan...",
	"pretrade_eod_instruction":        "Full focus on this action plan. Come back at the end of your trading day and call me with the /eod command. Have an excellent day!",
	"postrade_q_details":              "Trade finished. Describe the trigger for entering the trade and how the exit was.",
	"postrade_q_emotion":              "Understood. What was the predominant emotion you felt during this trade? (e.g., Confidence, Anxiety, Fear, Euphoria, Boredom)",
	"postrade_q_actions":              "Ok. And during the trade, did you take any action that was not in your original plan? (e.g., Moved the stop, closed before the target, increased position size)",
	"postrade_analyzing":              "Analyzing execution, emotions, and actions...",
	"eod_q_generic":                   "End of day. Today, were your actions guided more by your goal of '{goal}' or by your difficulty with '{fear}'? Describe the situation that most tested your discipline.",
	"eod_q_plan":                      "Your plan for today was:\n*\"{plan}\"*\n\nConsidering your goal of '{goal}' and your struggle with '{fear}', how was your adherence to this plan?",
	"eod_analyzing":                   "Analyzing your day...",
	"dormir_q":                        "What is the last market-related thought or worry on your mind? Let’s turn it into strength for your rest.",
	"dormir_processing":               "Preparing your affirmations...",
	"ai_system_prompt_male":           "You are {mentor_name}, an elite behavioral mentor for high-performance traders, an expert in the principles of Flow State by Mihaly Csikszentmihalyi. Be concise and direct. Your analysis must be deep, but your answers short and actionable. Use the trader's profile data as context for your analysis, but avoid repeating it in your response.",
	"ai_system_prompt_female":         "You are {mentor_name}, an elite behavioral mentor for high-performance traders, an expert in Executive Focus and Present Moment Anchoring techniques. Be concise and direct. Your analysis must be deep, but your answers short and actionable. Use the trader's profile data as context for your analysis, but avoid repeating it in your response.",
	"ai_task_diagnose":                "Based on the data, provide a precise behavioral diagnosis in 1-2 short sentences. Then, list 2-3 clear improvement points (e.g., 1. ... 2. ...). End with 1 powerful question that forces self-awareness.",
	"ai_task_improve":                 "The trader has chosen to focus on the following key point. Create a 'Behavioral Action Plan' focused EXCLUSIVELY on this single point. Be extremely direct.\n1. Suggest a specific, evidence-based technique (in 1-2 sentences).\n2. Conclude with an alignment statement (in 1 sentence).",
	"ai_task_affirmation":             "The trader has shared their last thought before sleeping. Based on their profile (goal and fear) and this thought, generate 3 short, powerful affirmations for the night. The affirmations should break limiting beliefs and build confidence for the next day. Be inspiring and direct.",
	"pretrade_declined":               "Understood. Focus on the plan. Have a great trading day.",
	"feedback_unavailable":            "There was a problem analyzing your answer. Please try again later.",
	"generic_error":                   "Something went wrong while processing your message. Please try the command again.",
	"choose_option_hint":              "Reply with the option number:",
	"ai_task_root_belief":             "Additional Task: Analyze the connection between the emotion and the unplanned actions. Which root belief (fear of losing, euphoria, unworthiness) most likely caused this behavior?",
	"ai_task_adherence":               "Additional Task: Specifically analyze the trader's adherence to their original plan. Point out where they followed the plan and where they deviated, and the behavioral pattern behind it.",
	"ai_data_header":                  "💬 USER DATA:",
	"ai_profile_context":              "- Trader Profile: Main Goal='{goal}', Biggest Weakness/Fear='{fear}'.",
	"ai_profile_reason":               " Self-perceived reason for inconsistency='{reason}'.",
	"ai_scenario":                     "Context: {scenario}",
	"ai_answer":                       "- Trader's answer: '{answer}'",
	"ai_todays_plan":                  "Trader's original plan for today: '{plan}'",
	"ai_trade_description":            "- Trade Description: '{description}'",
	"ai_trade_emotion":                "- Predominant Emotion: '{emotion}'",
	"ai_trade_actions":                "- Unplanned Actions: '{actions}'",
	"scenario_pretrade":               "The trader is defining their plan for the day (pre-market).",
	"scenario_focus":                  "Creation of a focused pre-market action plan.",
	"scenario_postrade":               "Deep analysis of an executed trade.",
	"scenario_eod":                    "The trader is doing their end-of-day (EOD) review, comparing it with their plan.",
	"scenario_dormir":                 "Generating affirmations for sleep.",
}
