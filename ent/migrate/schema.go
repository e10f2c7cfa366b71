// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MessageEventsColumns holds the columns for the "message_events" table.
	MessageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "text", Type: field.TypeString},
		{Name: "state", Type: field.TypeString, Default: ""},
		{Name: "session_id", Type: field.TypeString, Default: ""},
	}
	// MessageEventsTable holds the schema information for the "message_events" table.
	MessageEventsTable = &schema.Table{
		Name:       "message_events",
		Columns:    MessageEventsColumns,
		PrimaryKey: []*schema.Column{MessageEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "messageevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[1]},
			},
			{
				Name:    "messageevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[2]},
			},
			{
				Name:    "messageevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[3]},
			},
			{
				Name:    "messageevent_kind",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Default: ""},
		{Name: "level", Type: field.TypeString, Default: ""},
		{Name: "reminder_hour", Type: field.TypeInt, Nullable: true},
		{Name: "last_reminded_on", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_language",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[2]},
			},
		},
	}
	// VocabEntriesColumns holds the columns for the "vocab_entries" table.
	VocabEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "term", Type: field.TypeString},
		{Name: "translation", Type: field.TypeString},
		{Name: "repeat_count", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VocabEntriesTable holds the schema information for the "vocab_entries" table.
	VocabEntriesTable = &schema.Table{
		Name:       "vocab_entries",
		Columns:    VocabEntriesColumns,
		PrimaryKey: []*schema.Column{VocabEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vocabentry_user_id",
				Unique:  false,
				Columns: []*schema.Column{VocabEntriesColumns[1]},
			},
			{
				Name:    "vocabentry_user_id_term",
				Unique:  false,
				Columns: []*schema.Column{VocabEntriesColumns[1], VocabEntriesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		MessageEventsTable,
		UsersTable,
		VocabEntriesTable,
	}
)

func init() {
}
