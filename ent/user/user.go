// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldReminderHour holds the string denoting the reminder_hour field in the database.
	FieldReminderHour = "reminder_hour"
	// FieldLastRemindedOn holds the string denoting the last_reminded_on field in the database.
	FieldLastRemindedOn = "last_reminded_on"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the user in the database.
	Table = "users"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldLanguage,
	FieldLevel,
	FieldReminderHour,
	FieldLastRemindedOn,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel string
	// ReminderHourValidator is a validator for the "reminder_hour" field. It is called by the builders before save.
	ReminderHourValidator func(int) error
	// DefaultLastRemindedOn holds the default value on creation for the "last_reminded_on" field.
	DefaultLastRemindedOn string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByReminderHour orders the results by the reminder_hour field.
func ByReminderHour(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReminderHour, opts...).ToFunc()
}

// ByLastRemindedOn orders the results by the last_reminded_on field.
func ByLastRemindedOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRemindedOn, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
