// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/osokin/lingvo/ent/vocabentry"
)

// VocabEntry is the model entity for the VocabEntry schema.
type VocabEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// User's language at the time the word was introduced
	Language string `json:"language,omitempty"`
	// Term holds the value of the "term" field.
	Term string `json:"term,omitempty"`
	// Translation holds the value of the "translation" field.
	Translation string `json:"translation,omitempty"`
	// Remaining correct recalls before the word is retired
	RepeatCount int `json:"repeat_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VocabEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vocabentry.FieldID, vocabentry.FieldRepeatCount:
			values[i] = new(sql.NullInt64)
		case vocabentry.FieldUserID, vocabentry.FieldLanguage, vocabentry.FieldTerm, vocabentry.FieldTranslation:
			values[i] = new(sql.NullString)
		case vocabentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VocabEntry fields.
func (_m *VocabEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vocabentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case vocabentry.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case vocabentry.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case vocabentry.FieldTerm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field term", values[i])
			} else if value.Valid {
				_m.Term = value.String
			}
		case vocabentry.FieldTranslation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field translation", values[i])
			} else if value.Valid {
				_m.Translation = value.String
			}
		case vocabentry.FieldRepeatCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repeat_count", values[i])
			} else if value.Valid {
				_m.RepeatCount = int(value.Int64)
			}
		case vocabentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VocabEntry.
// This includes values selected through modifiers, order, etc.
func (_m *VocabEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VocabEntry.
// Note that you need to call VocabEntry.Unwrap() before calling this method if this VocabEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VocabEntry) Update() *VocabEntryUpdateOne {
	return NewVocabEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VocabEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VocabEntry) Unwrap() *VocabEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VocabEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VocabEntry) String() string {
	var builder strings.Builder
	builder.WriteString("VocabEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("term=")
	builder.WriteString(_m.Term)
	builder.WriteString(", ")
	builder.WriteString("translation=")
	builder.WriteString(_m.Translation)
	builder.WriteString(", ")
	builder.WriteString("repeat_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RepeatCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VocabEntries is a parsable slice of VocabEntry.
type VocabEntries []*VocabEntry
