package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageEvent is the audit record of one inbound user event. Every
// event is logged before dispatch, whatever the conversation does with it.
type MessageEvent struct {
	ent.Schema
}

func (MessageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MessageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("kind").
			Comment("command, message, or button"),
		field.String("text").
			Comment("Raw inbound text"),
		field.String("state").
			Default("").
			Comment("Conversation state at the time of receipt"),
		field.String("session_id").
			Default("").
			Comment("Identifies the process run that received the event"),
	}
}

func (MessageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("kind"),
	}
}
