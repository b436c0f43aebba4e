// Code generated by ent, DO NOT EDIT.

package documentclass

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/klartext-health/befund/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldLTE(FieldID, id))
}

// ClassKey applies equality check predicate on the "class_key" field. It's identical to ClassKeyEQ.
func ClassKey(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldEQ(FieldClassKey, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldEQ(FieldDisplayName, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldEQ(FieldCreatedAt, v))
}

// ClassKeyEQ applies the EQ predicate on the "class_key" field.
func ClassKeyEQ(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldEQ(FieldClassKey, v))
}

// ClassKeyNEQ applies the NEQ predicate on the "class_key" field.
func ClassKeyNEQ(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldNEQ(FieldClassKey, v))
}

// ClassKeyIn applies the In predicate on the "class_key" field.
func ClassKeyIn(vs ...string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldIn(FieldClassKey, vs...))
}

// ClassKeyNotIn applies the NotIn predicate on the "class_key" field.
func ClassKeyNotIn(vs ...string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldNotIn(FieldClassKey, vs...))
}

// ClassKeyGT applies the GT predicate on the "class_key" field.
func ClassKeyGT(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldGT(FieldClassKey, v))
}

// ClassKeyGTE applies the GTE predicate on the "class_key" field.
func ClassKeyGTE(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldGTE(FieldClassKey, v))
}

// ClassKeyLT applies the LT predicate on the "class_key" field.
func ClassKeyLT(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldLT(FieldClassKey, v))
}

// ClassKeyLTE applies the LTE predicate on the "class_key" field.
func ClassKeyLTE(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldLTE(FieldClassKey, v))
}

// ClassKeyContains applies the Contains predicate on the "class_key" field.
func ClassKeyContains(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldContains(FieldClassKey, v))
}

// ClassKeyHasPrefix applies the HasPrefix predicate on the "class_key" field.
func ClassKeyHasPrefix(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldHasPrefix(FieldClassKey, v))
}

// ClassKeyHasSuffix applies the HasSuffix predicate on the "class_key" field.
func ClassKeyHasSuffix(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldHasSuffix(FieldClassKey, v))
}

// ClassKeyEqualFold applies the EqualFold predicate on the "class_key" field.
func ClassKeyEqualFold(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldEqualFold(FieldClassKey, v))
}

// ClassKeyContainsFold applies the ContainsFold predicate on the "class_key" field.
func ClassKeyContainsFold(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldContainsFold(FieldClassKey, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldContainsFold(FieldDisplayName, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DocumentClass {
	return predicate.DocumentClass(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.DocumentClass {
	return predicate.DocumentClass(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.PipelineStep) predicate.DocumentClass {
	return predicate.DocumentClass(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentClass) predicate.DocumentClass {
	return predicate.DocumentClass(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentClass) predicate.DocumentClass {
	return predicate.DocumentClass(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentClass) predicate.DocumentClass {
	return predicate.DocumentClass(sql.NotPredicates(p))
}
