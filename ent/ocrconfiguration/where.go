// Code generated by ent, DO NOT EDIT.

package ocrconfiguration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/klartext-health/befund/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldLTE(FieldID, id))
}

// Engine applies equality check predicate on the "engine" field. It's identical to EngineEQ.
func Engine(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldEQ(FieldEngine, v))
}

// Endpoint applies equality check predicate on the "endpoint" field. It's identical to EndpointEQ.
func Endpoint(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldEQ(FieldEndpoint, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldEQ(FieldUpdatedAt, v))
}

// EngineEQ applies the EQ predicate on the "engine" field.
func EngineEQ(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldEQ(FieldEngine, v))
}

// EngineNEQ applies the NEQ predicate on the "engine" field.
func EngineNEQ(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldNEQ(FieldEngine, v))
}

// EngineIn applies the In predicate on the "engine" field.
func EngineIn(vs ...string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldIn(FieldEngine, vs...))
}

// EngineNotIn applies the NotIn predicate on the "engine" field.
func EngineNotIn(vs ...string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldNotIn(FieldEngine, vs...))
}

// EngineGT applies the GT predicate on the "engine" field.
func EngineGT(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldGT(FieldEngine, v))
}

// EngineGTE applies the GTE predicate on the "engine" field.
func EngineGTE(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldGTE(FieldEngine, v))
}

// EngineLT applies the LT predicate on the "engine" field.
func EngineLT(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldLT(FieldEngine, v))
}

// EngineLTE applies the LTE predicate on the "engine" field.
func EngineLTE(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldLTE(FieldEngine, v))
}

// EngineContains applies the Contains predicate on the "engine" field.
func EngineContains(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldContains(FieldEngine, v))
}

// EngineHasPrefix applies the HasPrefix predicate on the "engine" field.
func EngineHasPrefix(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldHasPrefix(FieldEngine, v))
}

// EngineHasSuffix applies the HasSuffix predicate on the "engine" field.
func EngineHasSuffix(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldHasSuffix(FieldEngine, v))
}

// EngineEqualFold applies the EqualFold predicate on the "engine" field.
func EngineEqualFold(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldEqualFold(FieldEngine, v))
}

// EngineContainsFold applies the ContainsFold predicate on the "engine" field.
func EngineContainsFold(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldContainsFold(FieldEngine, v))
}

// EndpointEQ applies the EQ predicate on the "endpoint" field.
func EndpointEQ(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldEQ(FieldEndpoint, v))
}

// EndpointNEQ applies the NEQ predicate on the "endpoint" field.
func EndpointNEQ(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldNEQ(FieldEndpoint, v))
}

// EndpointIn applies the In predicate on the "endpoint" field.
func EndpointIn(vs ...string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldIn(FieldEndpoint, vs...))
}

// EndpointNotIn applies the NotIn predicate on the "endpoint" field.
func EndpointNotIn(vs ...string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldNotIn(FieldEndpoint, vs...))
}

// EndpointGT applies the GT predicate on the "endpoint" field.
func EndpointGT(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldGT(FieldEndpoint, v))
}

// EndpointGTE applies the GTE predicate on the "endpoint" field.
func EndpointGTE(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldGTE(FieldEndpoint, v))
}

// EndpointLT applies the LT predicate on the "endpoint" field.
func EndpointLT(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldLT(FieldEndpoint, v))
}

// EndpointLTE applies the LTE predicate on the "endpoint" field.
func EndpointLTE(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldLTE(FieldEndpoint, v))
}

// EndpointContains applies the Contains predicate on the "endpoint" field.
func EndpointContains(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldContains(FieldEndpoint, v))
}

// EndpointHasPrefix applies the HasPrefix predicate on the "endpoint" field.
func EndpointHasPrefix(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldHasPrefix(FieldEndpoint, v))
}

// EndpointHasSuffix applies the HasSuffix predicate on the "endpoint" field.
func EndpointHasSuffix(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldHasSuffix(FieldEndpoint, v))
}

// EndpointIsNil applies the IsNil predicate on the "endpoint" field.
func EndpointIsNil() predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldIsNull(FieldEndpoint))
}

// EndpointNotNil applies the NotNil predicate on the "endpoint" field.
func EndpointNotNil() predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldNotNull(FieldEndpoint))
}

// EndpointEqualFold applies the EqualFold predicate on the "endpoint" field.
func EndpointEqualFold(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldEqualFold(FieldEndpoint, v))
}

// EndpointContainsFold applies the ContainsFold predicate on the "endpoint" field.
func EndpointContainsFold(v string) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldContainsFold(FieldEndpoint, v))
}

// LanguageHintsIsNil applies the IsNil predicate on the "language_hints" field.
func LanguageHintsIsNil() predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldIsNull(FieldLanguageHints))
}

// LanguageHintsNotNil applies the NotNil predicate on the "language_hints" field.
func LanguageHintsNotNil() predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldNotNull(FieldLanguageHints))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OCRConfiguration) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OCRConfiguration) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OCRConfiguration) predicate.OCRConfiguration {
	return predicate.OCRConfiguration(sql.NotPredicates(p))
}
