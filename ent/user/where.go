// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/osokin/lingvo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLanguage, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLevel, v))
}

// ReminderHour applies equality check predicate on the "reminder_hour" field. It's identical to ReminderHourEQ.
func ReminderHour(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldReminderHour, v))
}

// LastRemindedOn applies equality check predicate on the "last_reminded_on" field. It's identical to LastRemindedOnEQ.
func LastRemindedOn(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastRemindedOn, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldName, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldLanguage, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldLevel, v))
}

// ReminderHourEQ applies the EQ predicate on the "reminder_hour" field.
func ReminderHourEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldReminderHour, v))
}

// ReminderHourNEQ applies the NEQ predicate on the "reminder_hour" field.
func ReminderHourNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldReminderHour, v))
}

// ReminderHourIn applies the In predicate on the "reminder_hour" field.
func ReminderHourIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldReminderHour, vs...))
}

// ReminderHourNotIn applies the NotIn predicate on the "reminder_hour" field.
func ReminderHourNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldReminderHour, vs...))
}

// ReminderHourGT applies the GT predicate on the "reminder_hour" field.
func ReminderHourGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldReminderHour, v))
}

// ReminderHourGTE applies the GTE predicate on the "reminder_hour" field.
func ReminderHourGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldReminderHour, v))
}

// ReminderHourLT applies the LT predicate on the "reminder_hour" field.
func ReminderHourLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldReminderHour, v))
}

// ReminderHourLTE applies the LTE predicate on the "reminder_hour" field.
func ReminderHourLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldReminderHour, v))
}

// ReminderHourIsNil applies the IsNil predicate on the "reminder_hour" field.
func ReminderHourIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldReminderHour))
}

// ReminderHourNotNil applies the NotNil predicate on the "reminder_hour" field.
func ReminderHourNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldReminderHour))
}

// LastRemindedOnEQ applies the EQ predicate on the "last_reminded_on" field.
func LastRemindedOnEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastRemindedOn, v))
}

// LastRemindedOnNEQ applies the NEQ predicate on the "last_reminded_on" field.
func LastRemindedOnNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastRemindedOn, v))
}

// LastRemindedOnIn applies the In predicate on the "last_reminded_on" field.
func LastRemindedOnIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastRemindedOn, vs...))
}

// LastRemindedOnNotIn applies the NotIn predicate on the "last_reminded_on" field.
func LastRemindedOnNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastRemindedOn, vs...))
}

// LastRemindedOnGT applies the GT predicate on the "last_reminded_on" field.
func LastRemindedOnGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastRemindedOn, v))
}

// LastRemindedOnGTE applies the GTE predicate on the "last_reminded_on" field.
func LastRemindedOnGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastRemindedOn, v))
}

// LastRemindedOnLT applies the LT predicate on the "last_reminded_on" field.
func LastRemindedOnLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastRemindedOn, v))
}

// LastRemindedOnLTE applies the LTE predicate on the "last_reminded_on" field.
func LastRemindedOnLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastRemindedOn, v))
}

// LastRemindedOnContains applies the Contains predicate on the "last_reminded_on" field.
func LastRemindedOnContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldLastRemindedOn, v))
}

// LastRemindedOnHasPrefix applies the HasPrefix predicate on the "last_reminded_on" field.
func LastRemindedOnHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldLastRemindedOn, v))
}

// LastRemindedOnHasSuffix applies the HasSuffix predicate on the "last_reminded_on" field.
func LastRemindedOnHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldLastRemindedOn, v))
}

// LastRemindedOnEqualFold applies the EqualFold predicate on the "last_reminded_on" field.
func LastRemindedOnEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldLastRemindedOn, v))
}

// LastRemindedOnContainsFold applies the ContainsFold predicate on the "last_reminded_on" field.
func LastRemindedOnContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldLastRemindedOn, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
