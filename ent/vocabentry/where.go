// Code generated by ent, DO NOT EDIT.

package vocabentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/osokin/lingvo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldUserID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldLanguage, v))
}

// Term applies equality check predicate on the "term" field. It's identical to TermEQ.
func Term(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldTerm, v))
}

// Translation applies equality check predicate on the "translation" field. It's identical to TranslationEQ.
func Translation(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldTranslation, v))
}

// RepeatCount applies equality check predicate on the "repeat_count" field. It's identical to RepeatCountEQ.
func RepeatCount(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldRepeatCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldUserID, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldLanguage, v))
}

// TermEQ applies the EQ predicate on the "term" field.
func TermEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldTerm, v))
}

// TermNEQ applies the NEQ predicate on the "term" field.
func TermNEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldTerm, v))
}

// TermIn applies the In predicate on the "term" field.
func TermIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldTerm, vs...))
}

// TermNotIn applies the NotIn predicate on the "term" field.
func TermNotIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldTerm, vs...))
}

// TermGT applies the GT predicate on the "term" field.
func TermGT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldTerm, v))
}

// TermGTE applies the GTE predicate on the "term" field.
func TermGTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldTerm, v))
}

// TermLT applies the LT predicate on the "term" field.
func TermLT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldTerm, v))
}

// TermLTE applies the LTE predicate on the "term" field.
func TermLTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldTerm, v))
}

// TermContains applies the Contains predicate on the "term" field.
func TermContains(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContains(FieldTerm, v))
}

// TermHasPrefix applies the HasPrefix predicate on the "term" field.
func TermHasPrefix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasPrefix(FieldTerm, v))
}

// TermHasSuffix applies the HasSuffix predicate on the "term" field.
func TermHasSuffix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasSuffix(FieldTerm, v))
}

// TermEqualFold applies the EqualFold predicate on the "term" field.
func TermEqualFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldTerm, v))
}

// TermContainsFold applies the ContainsFold predicate on the "term" field.
func TermContainsFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldTerm, v))
}

// TranslationEQ applies the EQ predicate on the "translation" field.
func TranslationEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldTranslation, v))
}

// TranslationNEQ applies the NEQ predicate on the "translation" field.
func TranslationNEQ(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldTranslation, v))
}

// TranslationIn applies the In predicate on the "translation" field.
func TranslationIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldTranslation, vs...))
}

// TranslationNotIn applies the NotIn predicate on the "translation" field.
func TranslationNotIn(vs ...string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldTranslation, vs...))
}

// TranslationGT applies the GT predicate on the "translation" field.
func TranslationGT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldTranslation, v))
}

// TranslationGTE applies the GTE predicate on the "translation" field.
func TranslationGTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldTranslation, v))
}

// TranslationLT applies the LT predicate on the "translation" field.
func TranslationLT(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldTranslation, v))
}

// TranslationLTE applies the LTE predicate on the "translation" field.
func TranslationLTE(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldTranslation, v))
}

// TranslationContains applies the Contains predicate on the "translation" field.
func TranslationContains(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContains(FieldTranslation, v))
}

// TranslationHasPrefix applies the HasPrefix predicate on the "translation" field.
func TranslationHasPrefix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasPrefix(FieldTranslation, v))
}

// TranslationHasSuffix applies the HasSuffix predicate on the "translation" field.
func TranslationHasSuffix(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldHasSuffix(FieldTranslation, v))
}

// TranslationEqualFold applies the EqualFold predicate on the "translation" field.
func TranslationEqualFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEqualFold(FieldTranslation, v))
}

// TranslationContainsFold applies the ContainsFold predicate on the "translation" field.
func TranslationContainsFold(v string) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldContainsFold(FieldTranslation, v))
}

// RepeatCountEQ applies the EQ predicate on the "repeat_count" field.
func RepeatCountEQ(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldRepeatCount, v))
}

// RepeatCountNEQ applies the NEQ predicate on the "repeat_count" field.
func RepeatCountNEQ(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldRepeatCount, v))
}

// RepeatCountIn applies the In predicate on the "repeat_count" field.
func RepeatCountIn(vs ...int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldRepeatCount, vs...))
}

// RepeatCountNotIn applies the NotIn predicate on the "repeat_count" field.
func RepeatCountNotIn(vs ...int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldRepeatCount, vs...))
}

// RepeatCountGT applies the GT predicate on the "repeat_count" field.
func RepeatCountGT(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldRepeatCount, v))
}

// RepeatCountGTE applies the GTE predicate on the "repeat_count" field.
func RepeatCountGTE(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldRepeatCount, v))
}

// RepeatCountLT applies the LT predicate on the "repeat_count" field.
func RepeatCountLT(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldRepeatCount, v))
}

// RepeatCountLTE applies the LTE predicate on the "repeat_count" field.
func RepeatCountLTE(v int) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldRepeatCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VocabEntry {
	return predicate.VocabEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VocabEntry) predicate.VocabEntry {
	return predicate.VocabEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VocabEntry) predicate.VocabEntry {
	return predicate.VocabEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VocabEntry) predicate.VocabEntry {
	return predicate.VocabEntry(sql.NotPredicates(p))
}
