package dialog

import "fmt"

// Reply is one outbound message, optionally with keyboard options the
// transport renders as buttons.
type Reply struct {
	Text    string
	Options []string
}

func text(s string) Reply { return Reply{Text: s} }

const (
	msgAskName = "Welcome! Let's get you registered.\n" +
		"Send your surname and first name, separated by a space (for example: Smith John)."
	msgNameFormat = "That doesn't look right. Send exactly two words: surname, then first name (for example: Smith John)."

	msgChooseLanguage  = "Which language would you like to study?"
	msgLanguageWarning = "Heads up: switching languages clears your current word list."
	msgUnknownLanguage = "I don't know that language. Pick one of the options, or send Cancel."

	msgChooseLevel  = "How well do you know it already?"
	msgUnknownLevel = "Pick one of the listed levels: beginner, elementary, intermediate or advanced."

	msgAskReminderHour = "At which hour should I remind you to practice? " +
		"Send a number from 0 to 23, 'off' to disable reminders, or 'cancel' to keep things as they are."
	msgInvalidHour = "That's not a valid hour. Send a whole number from 0 to 23, 'off', or 'cancel'."

	msgCancelled   = "Okay, nothing changed."
	msgReminderOff = "Reminders are off."

	msgNeedLanguage  = "Pick a language first with /language."
	msgRegisterFirst = "We haven't met yet. Send /start to register."
	msgTryLater      = "The tutor is unavailable right now. Please try again in a bit."

	msgIdleFallback = "Ask me anything about the language you're studying, or see /help for commands."

	msgHelp = `Here's what I can do:
/start - register or show this menu
/language - pick the language to study
/level - change your proficiency level
/learn - practice: a quiz or a new word
/explain - a grammar topic explained at your level
/reminder - set a daily practice reminder
/help - this message

Anything else you type is treated as a question for your tutor.`
)

func msgRegistered(name string) Reply {
	return text(fmt.Sprintf("Nice to meet you, %s!", name))
}

func msgWelcomeBack(name string) Reply {
	return text(fmt.Sprintf("Welcome back, %s! Send /learn to practice or /help for commands.", name))
}

func msgLanguageSet(code string) Reply {
	return text(fmt.Sprintf("Great, we'll study %s.", languageLabel(code)))
}

func msgLevelSet(level string) Reply {
	return text(fmt.Sprintf("Got it, %s level. Send /learn when you're ready to practice.", level))
}

func msgReminderSet(hour int) Reply {
	return text(fmt.Sprintf("Done. I'll remind you to practice every day around %d:00.", hour))
}

func msgQuiz(term string) Reply {
	return text(fmt.Sprintf("Translate into English: %s", term))
}

func msgNewWord(term, translation string) Reply {
	return text(fmt.Sprintf("New word: %s — %s\nIt'll come up in practice until you've got it.", term, translation))
}

func msgGradeCorrect() Reply {
	return text("Correct!")
}

func msgGradeIncorrect(term, translation string) Reply {
	if translation == "" {
		return text(fmt.Sprintf("Not quite. We'll practice %s again.", term))
	}
	return text(fmt.Sprintf("Not quite. %s means %q. We'll practice it again.", term, translation))
}

// languageKeyboard lists the language labels plus a cancel button.
func languageKeyboard() []string {
	opts := make([]string, 0, len(Languages)+1)
	for _, l := range Languages {
		opts = append(opts, l.Label)
	}
	return append(opts, "Cancel")
}

// levelKeyboard lists the proficiency tiers.
func levelKeyboard() []string {
	return append([]string(nil), Levels...)
}
