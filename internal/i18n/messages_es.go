package i18n

var messagesES = map[string]string{
	"choose_language":                 "Por favor, elija su idioma.",
	"welcome_new":                     "Bienvenido a tu arena de alto rendimiento. Seré tu mentor de Unity Alta Performance, y estaré a tu lado, en las trincheras, para forjar la mentalidad que separa al 95% que abandona del 5% que alcanza la consistencia.\n\nPara ello, necesito tu compromiso total. Nuestro viaje comienza con una sesión de diagnóstico profundo. Cuando estés listo para comprometerte con tu evolución, usa el comando /perfil.",
	"welcome_back":                    "Bienvenido de nuevo, {name}. Conmigo, tu mentor {mentor_name}, tu enfoque sigue siendo '{goal}' y nuestro trabajo es dominar tu tendencia a '{fear}'.\n\nComandos disponibles:\n🔹 /pretrade\n🔹 /postrade\n🔹 /eod\n🔹 /dormir\n🔹 /perfil\n🔹 /reiniciar",
	"profile_needed":                  "Para usar este comando, primero debemos definir tu viaje. Por favor, configura tu perfil con el comando /perfil.",
	"redefine_confirm":                "¿Estás seguro de que quieres borrar tu perfil y reiniciar tu viaje? Todo el progreso de tu perfil se perderá. Responde 'sí' para confirmar.",
	"redefine_success":                "Tu perfil ha sido reiniciado. Usa /start para comenzar un nuevo viaje.",
	"redefine_cancel":                 "Acción cancelada. Tu perfil está a salvo.",
	"limit_reached":                   "Has alcanzado tu límite diario de interacciones. La consistencia también se construye con el descanso. Hablamos mañana.",
	"cancel_conversation":             "Ok, conversación cancelada. Estoy aquí cuando me necesites.",
	"unknown_command":                 "Lo siento, no entendí ese comando. Prueba /start para ver las opciones disponibles.",
	"next_step_prompt":                "\n\nEstoy listo para el siguiente paso. Comandos disponibles: /pretrade, /postrade, /eod, /dormir.",
	"elaboration_needed":              "Para un análisis profundo y eficaz, necesito más detalles. Por favor, elabora tu respuesta.",
	"profile_q_persona":               "Para empezar, ¿con cuál de nuestros mentores de alto rendimiento te gustaría trabajar?",
	"profile_q_name":                  "Excelente elección. Para que nuestra mentoría sea lo más personal posible, ¿cómo te gustaría que te llamara?",
	"profile_q_age":                   "Encantado de conocerte, {name}. ¿Cuántos años tienes?",
	"profile_q_experience":            "Entendido. ¿Cuánto tiempo llevas operando en el mercado financiero?",
	"profile_q_satisfaction":          "Y sobre tus resultados actuales, ¿estás satisfecho con tu rendimiento o sientes que podrías llegar mucho más lejos?",
	"profile_q_reason":                "Entiendo. Es una percepción importante. En tu opinión, ¿por qué crees que aún no has alcanzado la consistencia? Sé lo más honesto posible.",
	"profile_q_source":                "Gracias por tu honestidad. Para ayudarnos a mejorar, ¿cómo descubriste a este mentor? (Ej: Amigo, Grupo de Telegram, YouTube, etc.)",
	"profile_q_goal":                  "Ese es un gran punto de partida. Ahora, ¿cuál es tu mayor objetivo como trader? ¿Qué te mueve cada día? (Ej: Vivir del mercado, tener libertad financiera, demostrar que soy capaz)",
	"profile_q_fear":                  "Entendido. Ahora, la parte más importante: ¿cuál es tu mayor debilidad o miedo? ¿Qué es lo que más te sabotea? (Ej: Ansiedad que me hace salir pronto, codicia después de una victoria, miedo a arriesgar)",
	"profile_complete":                "Perfil configurado, {name}. Nuestro contrato está sellado: trabajaremos para alcanzar '{goal}' mientras dominamos tu tendencia a '{fear}'.\n\nEl viaje de un trader de élite es solitario, pero no tiene por qué serlo. Únete a nuestra comunidad de operadores centrados en el rendimiento para discutir estrategias y evolucionar juntos: {community_link}\n\nAhora, manos a la obra. Comienza con /pretrade.",
	"pretrade_q_plan":                 "Tu mayor desafío es '{fear}'. Define tu plan de batalla para hoy, detallando cómo te protegerás de él.",
	"pretrade_analyzing":              "Analizando tu plan...",
	"pretrade_confirm_diagnosis":      "¿Este diagnóstico inicial tiene sentido para ti? Responde 'sí' para elegir los puntos en los que quieres trabajar hoy, o /cancel para terminar.",
	"pretrade_no_points":              "No pude identificar puntos de mejora en el diagnóstico. Centrémonos en el plan general por hoy. Que tengas un gran día de trading.",
	"pretrade_choose_focus":           "Excelente. A continuación se muestran los puntos identificados. Escribe el número del **único punto** en el que quieres centrarte hoy (ej: 1).\n\n{points}",
	"pretrade_invalid_choice":         "Por favor, elige **solo 1** punto. (Ej: 1)",
	"pretrade_invalid_number":         "El número {number} no es una opción válida. Inténtalo de nuevo.",
	"pretrade_action_plan_generating": "Gran elección. Preparando tu plan de acción conductual enfocado...",
	"pretrade_eod_instruction":        "Enfoque total en este plan de acción. Vuelve al final de tu día de operaciones y llámame con el comando /eod. ¡Que tengas un excelente día!",
	"postrade_q_details":              "Operación finalizada. Describe el detonante para entrar en la operación y cómo fue la salida.",
	"postrade_q_emotion":              "Entendido. ¿Cuál fue la emoción predominante que sentiste durante esta operación? (Ej: Confianza, Ansiedad, Miedo, Euforia, Aburrimiento)",
	"postrade_q_actions":              "Ok. Y durante la operación, ¿realizaste alguna acción que no estuviera en tu plan original? (Ej: Moví el stop, cerré antes del objetivo, aumenté la posición)",
	"postrade_analyzing":              "Analizando ejecución, emociones y acciones...",
	"eod_q_generic":                   "Fin del día. Hoy, ¿tus acciones fueron guiadas más por tu objetivo de '{goal}' o por tu dificultad con '{fear}'? Describe la situación que más puso a prueba tu disciplina.",
	"eod_q_plan":                      "Tu plan para hoy era:\n*\"{plan}\"*\n\nConsiderando tu objetivo de '{goal}' y tu lucha contra '{fear}', ¿cómo fue tu adherencia a este plan?",
	"eod_analyzing":                   "Analizando tu día...",
	"dormir_q":                        "¿Cuál es el último pensamiento o preocupación sobre el mercado que tienes en mente? Vamos a convertirlo en fuerza para tu descanso.",
	"dormir_processing":               "Preparando tus afirmaciones...",
	"ai_system_prompt_male":           "Eres {mentor_name}, un mentor de comportamiento de élite para traders de alto rendimiento, experto en los principios del Estado de Flujo de Mihaly Csikszentmihalyi. Sé conciso y directo. Tu análisis debe ser profundo, pero tus respuestas cortas y accionables. Usa los datos del perfil del trader como contexto para tu análisis, pero evita repetirlos en tu respuesta.",
	"ai_system_prompt_female":         "Eres {mentor_name}, una mentora de comportamiento de élite para traders de alto rendimiento, experta en técnicas de Enfoque Ejecutivo y Anclaje en el Presente. Sé conciso y directo. Tu análisis debe ser profundo, pero tus respuestas cortas y accionables. Usa los datos del perfil del trader como contexto para tu análisis, pero evita repetirlos en tu respuesta.",
	"ai_task_diagnose":                "Basado en los datos proporcionados, realiza un diagnóstico conductual preciso en 1-2 frases cortas. Luego, lista 2-3 puntos de mejora claros (Ej: 1. ... 2. ...). Finaliza con 1 pregunta final poderosa que fuerce la autoconciencia.",
	"ai_task_improve":                 "El trader ha elegido centrarse en el siguiente punto clave. Crea un 'Plan de Acción Conductual' enfocado EXCLUSIVAMENTE en este único punto. Sé extremadamente directo.\n1. Sugiere una técnica específica y basada en evidencia (en 1-2 frases).\n2. Concluye con una frase de alineación (en 1 frase).",
	"ai_task_affirmation":             "El trader ha compartido su último pensamiento antes de dormir. Basado en su perfil (objetivo y miedo) y en este pensamiento, genera 3 afirmaciones cortas y poderosas para la noche. Las afirmaciones deben romper creencias limitantes y fortalecer la confianza para el día siguiente. Sé inspirador y directo.",
	"pretrade_declined":               "Entendido. Enfócate en el plan. Que tengas un gran día de operaciones.",
	"feedback_unavailable":            "Hubo un problema al analizar tu respuesta. Por favor, inténtalo de nuevo más tarde.",
	"generic_error":                   "Ocurrió un error al procesar tu mensaje. Por favor, intenta el comando de nuevo.",
	"choose_option_hint":              "Responde con el número de la opción:",
	"ai_task_root_belief":             "Tarea Adicional: Analiza la conexión entre la emoción y las acciones no planificadas. ¿Qué creencia raíz (miedo a perder, euforia, no merecimiento) probablemente causó este comportamiento?",
	"ai_task_adherence":               "Tarea Adicional: Analiza específicamente la adherencia del trader a su plan original. Señala dónde siguió el plan y dónde se desvió, y cuál es el patrón conductual detrás de ello.",
	"ai_data_header":                  "💬 DATOS DEL USUARIO:",
	"ai_profile_context":              "- Perfil del Trader: Objetivo Principal='{goal}', Mayor Debilidad/Miedo='{fear}'.",
	"ai_profile_reason":               " Razón autopercibida de la inconsistencia='{reason}'.",
	"ai_scenario":                     "Contexto: {scenario}",
	"ai_answer":                       "- Respuesta del trader: '{answer}'",
	"ai_todays_plan":                  "Plan original del trader para hoy: '{plan}'",
	"ai_trade_description":            "- Descripción de la Operación: '{description}'",
	"ai_trade_emotion":                "- Emoción Predominante: '{emotion}'",
	"ai_trade_actions":                "- Acciones No Planificadas: '{actions}'",
	"scenario_pretrade":               "El trader está definiendo su plan para el día (pre-mercado).",
	"scenario_focus":                  "Creación de un plan de acción pre-mercado enfocado.",
	"scenario_postrade":               "Análisis profundo de una operación ejecutada.",
	"scenario_eod":                    "El trader está haciendo su revisión de fin de día (EOD), comparándola con su plan.",
	"scenario_dormir":                 "Generación de afirmaciones para el sueño.",
}
