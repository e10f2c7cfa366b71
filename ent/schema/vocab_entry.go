package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VocabEntry is one word introduced to a user, with its remaining
// repetition counter. Entries with repeat_count 0 are kept for history
// but excluded from quizzing.
type VocabEntry struct {
	ent.Schema
}

func (VocabEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("language").
			NotEmpty().
			Immutable().
			Comment("User's language at the time the word was introduced"),
		field.String("term").
			NotEmpty().
			Immutable(),
		field.String("translation").
			NotEmpty().
			Immutable(),
		field.Int("repeat_count").
			Min(0).
			Comment("Remaining correct recalls before the word is retired"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (VocabEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "term"),
	}
}
