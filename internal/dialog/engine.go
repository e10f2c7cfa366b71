package dialog

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/osokin/lingvo/internal/store"
	"github.com/osokin/lingvo/internal/tutor"
)

// Engine routes inbound events through the conversation state machine.
// Dispatch is a deterministic table keyed by (step, event kind); every
// user-visible outcome is a Reply, never a raw internal error.
type Engine struct {
	users  store.UserRepo
	vocab  store.VocabRepo
	states *StateStore
	tutor  *tutor.Session
	audit  store.AuditRepo
	log    *logrus.Logger

	// sessionID tags audit records from this process run.
	sessionID string

	dispatch map[dispatchKey]handlerFunc
}

type dispatchKey struct {
	step Step
	kind Kind
}

// handlerFunc processes one event for a user. user is nil only before
// registration completes.
type handlerFunc func(ctx context.Context, ev Event, user *store.UserProfile) []Reply

// NewEngine wires the state machine over the given stores and tutor.
func NewEngine(users store.UserRepo, vocab store.VocabRepo, states *StateStore, session *tutor.Session, audit store.AuditRepo, log *logrus.Logger) *Engine {
	e := &Engine{
		users:     users,
		vocab:     vocab,
		states:    states,
		tutor:     session,
		audit:     audit,
		log:       log,
		sessionID: uuid.NewString(),
	}
	e.dispatch = map[dispatchKey]handlerFunc{
		{StepIdle, KindCommand}: e.handleCommand,
		{StepIdle, KindMessage}: e.handleIdleMessage,
		{StepIdle, KindButton}:  e.handleIdleMessage,

		{StepAwaitingName, KindMessage}: e.handleName,

		{StepAwaitingLanguage, KindMessage}: e.handleLanguage,
		{StepAwaitingLanguage, KindButton}:  e.handleLanguage,

		{StepAwaitingLevel, KindMessage}: e.handleLevel,
		{StepAwaitingLevel, KindButton}:  e.handleLevel,

		{StepAwaitingReminderHour, KindMessage}: e.handleReminderHour,
		{StepAwaitingReminderHour, KindButton}:  e.handleReminderHour,

		{StepAwaitingTranslation, KindMessage}: e.handleTranslation,
	}
	return e
}

// Handle processes one inbound event to completion and returns the
// replies to send.
func (e *Engine) Handle(ctx context.Context, ev Event) []Reply {
	st := e.states.Get(ev.UserID)

	if err := e.audit.AppendMessage(ctx, store.MessageEventData{
		UserID:    ev.UserID,
		Kind:      ev.Kind.String(),
		Text:      ev.Text,
		State:     st.Step.String(),
		SessionID: e.sessionID,
	}); err != nil {
		e.log.WithError(err).Warn("recording inbound event")
	}

	user, err := e.users.Get(ctx, ev.UserID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		user = nil
	case err != nil:
		e.log.WithError(err).Error("loading profile")
		return []Reply{text(msgTryLater)}
	}

	// Everything except registration itself requires a profile.
	if user == nil && st.Step != StepAwaitingName && ev.Command() != "start" {
		return []Reply{text(msgRegisterFirst)}
	}

	h, ok := e.dispatch[dispatchKey{st.Step, ev.Kind}]
	if !ok {
		return e.reprompt(st)
	}
	return h(ctx, ev, user)
}

// reprompt restates the expected input for the current step without
// changing state.
func (e *Engine) reprompt(st State) []Reply {
	switch st.Step {
	case StepAwaitingName:
		return []Reply{text(msgNameFormat)}
	case StepAwaitingLanguage:
		return []Reply{{Text: msgUnknownLanguage, Options: languageKeyboard()}}
	case StepAwaitingLevel:
		return []Reply{{Text: msgUnknownLevel, Options: levelKeyboard()}}
	case StepAwaitingReminderHour:
		return []Reply{text(msgInvalidHour)}
	case StepAwaitingTranslation:
		return []Reply{msgQuiz(st.PendingTerm)}
	default:
		return []Reply{text(msgIdleFallback)}
	}
}

func (e *Engine) handleCommand(ctx context.Context, ev Event, user *store.UserProfile) []Reply {
	switch ev.Command() {
	case "start":
		if user == nil {
			e.states.Set(ev.UserID, State{Step: StepAwaitingName})
			return []Reply{text(msgAskName)}
		}
		return []Reply{msgWelcomeBack(user.Name)}

	case "help":
		return []Reply{text(msgHelp)}

	case "language":
		var replies []Reply
		if user.HasLanguage() {
			replies = append(replies, text(msgLanguageWarning))
		}
		e.states.Set(ev.UserID, State{Step: StepAwaitingLanguage})
		return append(replies, Reply{Text: msgChooseLanguage, Options: languageKeyboard()})

	case "level":
		if !user.HasLanguage() {
			return []Reply{text(msgNeedLanguage)}
		}
		e.states.Set(ev.UserID, State{Step: StepAwaitingLevel})
		return []Reply{{Text: msgChooseLevel, Options: levelKeyboard()}}

	case "reminder":
		if !user.HasLanguage() {
			return []Reply{text(msgNeedLanguage)}
		}
		e.states.Set(ev.UserID, State{Step: StepAwaitingReminderHour})
		return []Reply{text(msgAskReminderHour)}

	case "learn":
		if !user.HasLanguage() {
			return []Reply{text(msgNeedLanguage)}
		}
		return e.handleLearn(ctx, user)

	case "explain":
		if !user.HasLanguage() {
			return []Reply{text(msgNeedLanguage)}
		}
		explanation, err := e.tutor.ExplainTopic(ctx, user)
		if err != nil {
			e.log.WithError(err).Warn("explain failed")
			return []Reply{text(msgTryLater)}
		}
		return []Reply{text(explanation)}

	default:
		return []Reply{text("I don't know that command. See /help.")}
	}
}

// handleLearn either quizzes a due word or introduces a new one.
func (e *Engine) handleLearn(ctx context.Context, user *store.UserProfile) []Reply {
	entry, err := e.tutor.NextQuizWord(ctx, user.ID)
	if err != nil {
		e.log.WithError(err).Error("selecting quiz word")
		return []Reply{text(msgTryLater)}
	}
	if entry != nil {
		e.states.Set(user.ID, State{Step: StepAwaitingTranslation, PendingTerm: entry.Term})
		return []Reply{msgQuiz(entry.Term)}
	}

	pair, err := e.tutor.IntroduceWord(ctx, user)
	if err != nil {
		e.log.WithError(err).Warn("introducing word failed")
		return []Reply{text(msgTryLater)}
	}
	return []Reply{msgNewWord(pair.Term, pair.Translation)}
}

func (e *Engine) handleIdleMessage(ctx context.Context, ev Event, user *store.UserProfile) []Reply {
	if strings.TrimSpace(ev.Text) == "" {
		return []Reply{text(msgIdleFallback)}
	}
	if !user.HasLanguage() {
		return []Reply{text(msgNeedLanguage)}
	}
	answer, err := e.tutor.Answer(ctx, user, ev.Text)
	if err != nil {
		e.log.WithError(err).Warn("freeform answer failed")
		return []Reply{text(msgTryLater)}
	}
	return []Reply{text(answer)}
}

func (e *Engine) handleName(ctx context.Context, ev Event, _ *store.UserProfile) []Reply {
	tokens := strings.Fields(ev.Text)
	if len(tokens) != 2 {
		return []Reply{text(msgNameFormat)}
	}
	name := tokens[0] + " " + tokens[1]

	err := e.users.Create(ctx, ev.UserID, name)
	if err != nil && !errors.Is(err, store.ErrExists) {
		e.log.WithError(err).Error("creating profile")
		return []Reply{text(msgTryLater)}
	}

	e.states.Set(ev.UserID, State{Step: StepAwaitingLanguage})
	return []Reply{
		msgRegistered(name),
		{Text: msgChooseLanguage, Options: languageKeyboard()},
	}
}

func (e *Engine) handleLanguage(ctx context.Context, ev Event, user *store.UserProfile) []Reply {
	if isCancel(ev.Text) {
		e.states.Clear(ev.UserID)
		return []Reply{text(msgCancelled)}
	}

	code, ok := matchLanguage(ev.Text)
	if !ok {
		return []Reply{{Text: msgUnknownLanguage, Options: languageKeyboard()}}
	}

	if err := e.users.SetLanguage(ctx, user.ID, code); err != nil {
		e.log.WithError(err).Error("setting language")
		return []Reply{text(msgTryLater)}
	}

	e.states.Set(ev.UserID, State{Step: StepAwaitingLevel})
	return []Reply{
		msgLanguageSet(code),
		{Text: msgChooseLevel, Options: levelKeyboard()},
	}
}

func (e *Engine) handleLevel(ctx context.Context, ev Event, user *store.UserProfile) []Reply {
	level, ok := matchLevel(ev.Text)
	if !ok {
		return []Reply{{Text: msgUnknownLevel, Options: levelKeyboard()}}
	}

	if err := e.users.SetLevel(ctx, user.ID, level); err != nil {
		e.log.WithError(err).Error("setting level")
		return []Reply{text(msgTryLater)}
	}

	e.states.Clear(ev.UserID)
	return []Reply{msgLevelSet(level)}
}

func (e *Engine) handleReminderHour(ctx context.Context, ev Event, user *store.UserProfile) []Reply {
	input := strings.TrimSpace(ev.Text)

	if isCancel(input) {
		e.states.Clear(ev.UserID)
		return []Reply{text(msgCancelled)}
	}
	if strings.EqualFold(input, "off") {
		if err := e.users.SetReminder(ctx, user.ID, nil); err != nil {
			e.log.WithError(err).Error("disabling reminder")
			return []Reply{text(msgTryLater)}
		}
		e.states.Clear(ev.UserID)
		return []Reply{text(msgReminderOff)}
	}

	hour, err := strconv.Atoi(input)
	if err != nil || hour < 0 || hour > 23 {
		return []Reply{text(msgInvalidHour)}
	}

	if err := e.users.SetReminder(ctx, user.ID, &hour); err != nil {
		if errors.Is(err, store.ErrInvalidHour) {
			return []Reply{text(msgInvalidHour)}
		}
		e.log.WithError(err).Error("setting reminder")
		return []Reply{text(msgTryLater)}
	}

	e.states.Clear(ev.UserID)
	return []Reply{msgReminderSet(hour)}
}

// handleTranslation grades the pending quiz. State is cleared before
// grading: whatever happens, the quiz is over.
func (e *Engine) handleTranslation(ctx context.Context, ev Event, user *store.UserProfile) []Reply {
	term := e.states.Get(ev.UserID).PendingTerm
	e.states.Clear(ev.UserID)

	correct, err := e.tutor.GradeTranslation(ctx, user, term, ev.Text)
	if err != nil {
		e.log.WithError(err).Warn("grading failed")
		return []Reply{text(msgTryLater)}
	}
	if correct {
		return []Reply{msgGradeCorrect()}
	}

	translation := ""
	if entry, err := e.vocab.Find(ctx, user.ID, term); err == nil {
		translation = entry.Translation
	}
	return []Reply{msgGradeIncorrect(term, translation)}
}
