// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MessageEvent is the predicate function for messageevent builders.
type MessageEvent func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// VocabEntry is the predicate function for vocabentry builders.
type VocabEntry func(*sql.Selector)
