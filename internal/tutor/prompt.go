package tutor

import (
	"fmt"
	"strings"
)

// personaPrompt is the tutor persona sent as the system instruction on
// every backend call. It constrains the model to in-domain tutoring
// content and instructs it to decline anything else.
const personaPrompt = `You are a language tutor helping a student learn a foreign language.

Rules:
- Only answer questions about the language being studied: vocabulary, grammar, usage, pronunciation.
- If the student asks about anything unrelated to language learning, politely decline and steer them back to studying.
- Match explanations to the student's stated proficiency level.
- Keep answers short and plain: this is a chat, not an essay.`

// languageNames maps language codes to English names for prompts.
var languageNames = map[string]string{
	"en": "English",
	"fr": "French",
	"it": "Italian",
	"de": "German",
	"es": "Spanish",
}

// levelNames maps proficiency tiers to prompt descriptions.
var levelNames = map[string]string{
	"beginner":     "complete beginner (A0)",
	"elementary":   "elementary (A1-A2)",
	"intermediate": "intermediate (B1-B2)",
	"advanced":     "advanced (C1)",
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

func levelName(level string) string {
	if name, ok := levelNames[level]; ok {
		return name
	}
	return "unspecified"
}

func buildIntroducePrompt(language, level string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pick one useful %s word for a %s student to learn.\n",
		languageName(language), levelName(level))
	b.WriteString("Respond with a JSON object holding the word and its English translation, ")
	b.WriteString(`for example {"term": "chat", "translation": "cat"}.`)
	return b.String()
}

func buildGradePrompt(language, term, answer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The student was asked to translate the %s word %q into English.\n",
		languageName(language), term)
	fmt.Fprintf(&b, "Their answer: %q\n", answer)
	b.WriteString("Is the answer an acceptable translation? Reply with exactly one word: yes or no.")
	return b.String()
}

func buildExplainPrompt(language, level string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain one %s grammar topic appropriate for a %s student.\n",
		languageName(language), levelName(level))
	b.WriteString("Pick the topic yourself and include two or three short examples.")
	return b.String()
}

func buildAnswerPrompt(language, level, question string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The student is learning %s at the %s level. Their question:\n\n",
		languageName(language), levelName(level))
	b.WriteString(question)
	return b.String()
}
