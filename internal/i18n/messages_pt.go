package i18n

var messagesPT = map[string]string{
	"choose_language":                 "Por favor, escolha seu idioma. | Please choose your language. | Por favor, elija su idioma.",
	"welcome_new":                     "Bem-vindo à sua arena de alta performance. Serei seu mentor da Unity Alta Performance e estarei ao seu lado para forjar a mentalidade que separa os 95% que desistem dos 5% que alcançam a consistência.\n\nPara isso, preciso do seu compromisso total. Nossa jornada começa com uma sessão de diagnóstico profundo. Quando estiver pronto para se comprometer com a sua evolução, use o comando /perfil.",
	"welcome_back":                    "Bem-vindo de volta, {name}. Comigo, seu mentor {mentor_name}, seu foco continua sendo '{goal}' e nosso trabalho é dominar sua tendência de '{fear}'.\n\nComandos disponíveis:\n🔹 /pretrade\n🔹 /postrade\n🔹 /eod\n🔹 /dormir\n🔹 /perfil\n🔹 /redefinir",
	"profile_needed":                  "Para usar este comando, primeiro precisamos definir sua jornada. Por favor, configure seu perfil com o comando /perfil.",
	"redefine_confirm":                "Você tem certeza que deseja apagar seu perfil e recomeçar sua jornada? Todo o seu progresso de perfil será perdido. Responda 'sim' para confirmar.",
	"redefine_success":                "Seu perfil foi redefinido. Use /start para começar uma nova jornada.",
	"redefine_cancel":                 "Ação cancelada. Seu perfil está seguro.",
	"limit_reached":                   "Você atingiu seu limite de interações por hoje. A consistência também se constrói no descanso. Nos falamos amanhã.",
	"cancel_conversation":             "Ok, conversa cancelada. Estou aqui quando precisar.",
	"unknown_command":                 "Desculpe, não entendi esse comando. Tente /start para ver as opções disponíveis.",
	"next_step_prompt":                "\n\nEstou pronto para o próximo passo. Comandos disponíveis: /pretrade, /postrade, /eod, /dormir.",
	"elaboration_needed":              "Para uma análise profunda e eficaz, preciso de mais detalhes. Por favor, elabore sua resposta.",
	"profile_q_persona":               "Para começar, com qual de nossos mentores de alta performance você gostaria de trabalhar?",
	"profile_q_name":                  "Ótima escolha. Para tornar nossa mentoria o mais pessoal possível, como você gostaria de ser chamado?",
	"profile_q_age":                   "Prazer, {name}. Quantos anos você tem?",
	"profile_q_experience":            "Entendido. Há quanto tempo você opera no mercado financeiro?",
	"profile_q_satisfaction":          "E sobre seus resultados atuais, você está satisfeito com sua performance ou sente que poderia ir muito além?",
	"profile_q_reason":                "Entendi. Essa é uma percepção importante. Na sua opinião, por que você acredita que ainda não alcançou a consistência? Seja o mais honesto possível.",
	"profile_q_source":                "Obrigado pela honestidade. Para nos ajudar a melhorar, como você descobriu este mentor? (Ex: Amigo, Grupo no Telegram, YouTube, etc.)",
	"profile_q_goal":                  "Isso é um ótimo ponto de partida. Agora, qual é o seu maior objetivo como trader? O que te move todos os dias? (Ex: Viver do mercado, ter liberdade financeira, provar que sou capaz)",
	"profile_q_fear":                  "Entendido. Agora, a parte mais importante: qual é a sua maior fraqueza ou medo? O que mais te sabota? (Ex: Ansiedade que me faz sair cedo, ganância após uma vitória, medo de arriscar)",
	"profile_complete":                "Perfil configurado, {name}. Nosso contrato está selado: vamos trabalhar para alcançar '{goal}' enquanto dominamos sua tendência de '{fear}'.\n\nA jornada de um trader de elite é solitária, mas não precisa ser. Junte-se à nossa comunidade de operadores focados em performance para discutir estratégias e evoluir em conjunto: {community_link}\n\nAgora, vamos ao trabalho. Comece com /pretrade.",
	"pretrade_q_plan":                 "Seu maior desafio é '{fear}'. Defina seu plano de trading para hoje, detalhando como você vai se blindar contra isso.",
	"pretrade_analyzing":              "Analisando seu plano...",
	"pretrade_confirm_diagnosis":      "Este diagnóstico inicial faz sentido para você? Responda 'sim' para escolher o ponto que deseja trabalhar hoje, ou /cancel para concluir.",
	"pretrade_no_points":              "Não consegui identificar os pontos de melhoria no diagnóstico. Vamos focar no plano geral por hoje. Um ótimo dia de operações.",
	"pretrade_choose_focus":           "Excelente. Abaixo estão os pontos identificados. Digite o número do **único ponto** que você quer focar hoje (ex: 1).\n\n{points}",
	"pretrade_invalid_choice":         "Por favor, escolha **apenas 1** ponto. (Ex: 1)",
	"pretrade_invalid_number":         "O número {number} não é uma opção válida. Tente novamente.",
	"pretrade_action_plan_generating": "Ótima escolha. Preparando seu plano de ação comportamental focado...",
	"pretrade_eod_instruction":        "Foco total neste plano de ação. Volte no final do seu dia de operações e me chame com o comando /eod. Um excelente dia!",
	"postrade_q_details":              "Operação finalizada. Descreva o gatilho para entrar na operação e como foi a saída.",
	"postrade_q_emotion":              "Entendido. Qual foi a emoção predominante que você sentiu durante esta operação? (Ex: Confiança, Ansiedade, Medo, Euforia, Tédio)",
	"postrade_q_actions":              "Ok. E durante a operação, você realizou alguma ação que não estava no seu plano original? (Ex: Movi o stop, zerei antes do alvo, aumentei a mão)",
	"postrade_analyzing":              "Analisando a execução, emoções e ações...",
	"eod_q_generic":                   "Fim do dia. Hoje, suas ações foram guiadas mais pelo seu objetivo de '{goal}' ou pela sua dificuldade com '{fear}'? Descreva a situação que mais testou sua disciplina.",
	"eod_q_plan":                      "Seu plano para hoje era:\n*\"{plan}\"*\n\nConsiderando seu objetivo de '{goal}' e sua luta contra '{fear}', como foi sua aderência a este plano?",
	"eod_analyzing":                   "Analisando seu dia...",
	"dormir_q":                        "Qual o último pensamento ou preocupação sobre o mercado que está na sua mente? Vamos transformá-lo em força para o descanso.",
	"dormir_processing":               "Preparando suas afirmações...",
	"ai_system_prompt_male":           "Você é o {mentor_name}, um mentor comportamental de elite para traders, especialista nos princípios do Estado de Flow de Mihaly Csikszentmihalyi. Seja conciso e direto. Sua análise deve ser profunda, mas suas respostas, curtas e acionáveis. Use os dados do perfil do trader como contexto para sua análise, mas evite repeti-los na sua resposta.",
	"ai_system_prompt_female":         "Você é a {mentor_name}, uma mentora comportamental de elite para traders, especialista em técnicas de Foco Executivo e Ancoragem no Presente. Seja concisa e direta. Sua análise deve ser profunda, mas suas respostas, curtas e acionáveis. Use os dados do perfil do trader como contexto para sua análise, mas evite repeti-los na sua resposta.",
	"ai_task_diagnose":                "Com base nos dados, faça um diagnóstico comportamental preciso em 1-2 frases. Depois, liste de 2 a 3 pontos de melhoria claros (Ex: 1. ... 2. ...). Finalize com 1 pergunta poderosa que force a autoconsciência.",
	"ai_task_improve":                 "O trader escolheu focar no seguinte ponto-chave. Crie um 'Plano de Ação Comportamental' focado EXCLUSIVAMENTE neste único ponto. Seja extremamente direto.\n1. Sugira uma técnica específica e baseada em evidências (em 1-2 frases).\n2. Finalize com uma frase de alinhamento (em 1 frase).",
	"ai_task_affirmation":             "O trader compartilhou seu último pensamento antes de dormir. Com base no seu perfil (objetivo e medo) e neste pensamento, gere 3 afirmações curtas e poderosas para a noite. As afirmações devem quebrar crenças limitantes e fortalecer a confiança para o próximo dia. Seja inspirador e direto.",
	"pretrade_declined":               "Entendido. Foco no plano. Um ótimo dia de operações.",
	"feedback_unavailable":            "Houve um problema ao analisar sua resposta. Por favor, tente novamente mais tarde.",
	"generic_error":                   "Ocorreu um erro ao processar sua mensagem. Por favor, tente novamente o comando desejado.",
	"choose_option_hint":              "Responda com o número da opção:",
	"ai_task_root_belief":             "Tarefa Adicional: Analise a conexão entre a emoção e as ações não planejadas. Qual crença raiz (medo de perder, euforia, não merecimento) provavelmente causou este comportamento?",
	"ai_task_adherence":               "Tarefa Adicional: Analise especificamente a aderência do trader ao seu plano original. Aponte onde ele seguiu o plano e onde desviou, e qual o padrão comportamental por trás disso.",
	"ai_data_header":                  "💬 DADOS DO USUÁRIO:",
	"ai_profile_context":              "- Perfil do Trader: Objetivo Principal='{goal}', Maior Fraqueza/Medo='{fear}'.",
	"ai_profile_reason":               " Razão auto-percebida para inconsistência='{reason}'.",
	"ai_scenario":                     "Contexto: {scenario}",
	"ai_answer":                       "- Resposta do trader: '{answer}'",
	"ai_todays_plan":                  "Plano original do trader para hoje: '{plan}'",
	"ai_trade_description":            "- Descrição da Operação: '{description}'",
	"ai_trade_emotion":                "- Emoção Predominante: '{emotion}'",
	"ai_trade_actions":                "- Ações Não Planejadas: '{actions}'",
	"scenario_pretrade":               "O trader está definindo seu plano para o dia (pré-mercado).",
	"scenario_focus":                  "Criação de plano de ação pré-mercado focado.",
	"scenario_postrade":               "Análise profunda de uma operação executada.",
	"scenario_eod":                    "O trader está fazendo sua revisão de fim de dia (EOD), comparando com seu plano.",
	"scenario_dormir":                 "Geração de afirmações para o sono.",
}
