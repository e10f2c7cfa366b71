// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/osokin/lingvo/ent/llmrequestevent"
	"github.com/osokin/lingvo/ent/messageevent"
	"github.com/osokin/lingvo/ent/schema"
	"github.com/osokin/lingvo/ent/user"
	"github.com/osokin/lingvo/ent/vocabentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	messageeventMixin := schema.MessageEvent{}.Mixin()
	messageeventMixinFields0 := messageeventMixin[0].Fields()
	_ = messageeventMixinFields0
	messageeventFields := schema.MessageEvent{}.Fields()
	_ = messageeventFields
	// messageeventDescTimestamp is the schema descriptor for timestamp field.
	messageeventDescTimestamp := messageeventMixinFields0[1].Descriptor()
	// messageevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	messageevent.DefaultTimestamp = messageeventDescTimestamp.Default.(func() time.Time)
	// messageeventDescUserID is the schema descriptor for user_id field.
	messageeventDescUserID := messageeventFields[0].Descriptor()
	// messageevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	messageevent.UserIDValidator = messageeventDescUserID.Validators[0].(func(string) error)
	// messageeventDescState is the schema descriptor for state field.
	messageeventDescState := messageeventFields[3].Descriptor()
	// messageevent.DefaultState holds the default value on creation for the state field.
	messageevent.DefaultState = messageeventDescState.Default.(string)
	// messageeventDescSessionID is the schema descriptor for session_id field.
	messageeventDescSessionID := messageeventFields[4].Descriptor()
	// messageevent.DefaultSessionID holds the default value on creation for the session_id field.
	messageevent.DefaultSessionID = messageeventDescSessionID.Default.(string)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescLanguage is the schema descriptor for language field.
	userDescLanguage := userFields[2].Descriptor()
	// user.DefaultLanguage holds the default value on creation for the language field.
	user.DefaultLanguage = userDescLanguage.Default.(string)
	// userDescLevel is the schema descriptor for level field.
	userDescLevel := userFields[3].Descriptor()
	// user.DefaultLevel holds the default value on creation for the level field.
	user.DefaultLevel = userDescLevel.Default.(string)
	// userDescReminderHour is the schema descriptor for reminder_hour field.
	userDescReminderHour := userFields[4].Descriptor()
	// user.ReminderHourValidator is a validator for the "reminder_hour" field. It is called by the builders before save.
	user.ReminderHourValidator = func() func(int) error {
		validators := userDescReminderHour.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(reminder_hour int) error {
			for _, fn := range fns {
				if err := fn(reminder_hour); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescLastRemindedOn is the schema descriptor for last_reminded_on field.
	userDescLastRemindedOn := userFields[5].Descriptor()
	// user.DefaultLastRemindedOn holds the default value on creation for the last_reminded_on field.
	user.DefaultLastRemindedOn = userDescLastRemindedOn.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.IDValidator is a validator for the "id" field. It is called by the builders before save.
	user.IDValidator = userDescID.Validators[0].(func(string) error)
	vocabentryFields := schema.VocabEntry{}.Fields()
	_ = vocabentryFields
	// vocabentryDescUserID is the schema descriptor for user_id field.
	vocabentryDescUserID := vocabentryFields[0].Descriptor()
	// vocabentry.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	vocabentry.UserIDValidator = vocabentryDescUserID.Validators[0].(func(string) error)
	// vocabentryDescLanguage is the schema descriptor for language field.
	vocabentryDescLanguage := vocabentryFields[1].Descriptor()
	// vocabentry.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	vocabentry.LanguageValidator = vocabentryDescLanguage.Validators[0].(func(string) error)
	// vocabentryDescTerm is the schema descriptor for term field.
	vocabentryDescTerm := vocabentryFields[2].Descriptor()
	// vocabentry.TermValidator is a validator for the "term" field. It is called by the builders before save.
	vocabentry.TermValidator = vocabentryDescTerm.Validators[0].(func(string) error)
	// vocabentryDescTranslation is the schema descriptor for translation field.
	vocabentryDescTranslation := vocabentryFields[3].Descriptor()
	// vocabentry.TranslationValidator is a validator for the "translation" field. It is called by the builders before save.
	vocabentry.TranslationValidator = vocabentryDescTranslation.Validators[0].(func(string) error)
	// vocabentryDescRepeatCount is the schema descriptor for repeat_count field.
	vocabentryDescRepeatCount := vocabentryFields[4].Descriptor()
	// vocabentry.RepeatCountValidator is a validator for the "repeat_count" field. It is called by the builders before save.
	vocabentry.RepeatCountValidator = vocabentryDescRepeatCount.Validators[0].(func(int) error)
	// vocabentryDescCreatedAt is the schema descriptor for created_at field.
	vocabentryDescCreatedAt := vocabentryFields[5].Descriptor()
	// vocabentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	vocabentry.DefaultCreatedAt = vocabentryDescCreatedAt.Default.(func() time.Time)
}
