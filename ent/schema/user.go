package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is the profile of a single learner. The ID is the opaque identifier
// assigned by the messaging transport, so there is no auto-increment key.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Transport-assigned user identifier"),
		field.String("name").
			Comment("Display name, set once at registration"),
		field.String("language").
			Default("").
			Comment("Target language code (en, fr, it, de, es); empty = not chosen"),
		field.String("level").
			Default("").
			Comment("Proficiency tier; empty = not chosen"),
		field.Int("reminder_hour").
			Optional().
			Nillable().
			Min(0).
			Max(23).
			Comment("Daily reminder hour in [0,23]; unset = reminders disabled"),
		field.String("last_reminded_on").
			Default("").
			Comment("ISO date (2006-01-02) of the last reminder sent"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("language"),
	}
}
