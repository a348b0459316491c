// Code generated by ent, DO NOT EDIT.

package learningsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/tutorloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldUserID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldTopicID, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldState, v))
}

// SessionNumber applies equality check predicate on the "session_number" field. It's identical to SessionNumberEQ.
func SessionNumber(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldSessionNumber, v))
}

// PreExamScore applies equality check predicate on the "pre_exam_score" field. It's identical to PreExamScoreEQ.
func PreExamScore(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldPreExamScore, v))
}

// PostExamScore applies equality check predicate on the "post_exam_score" field. It's identical to PostExamScoreEQ.
func PostExamScore(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldPostExamScore, v))
}

// RemediationExamScore applies equality check predicate on the "remediation_exam_score" field. It's identical to RemediationExamScoreEQ.
func RemediationExamScore(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldRemediationExamScore, v))
}

// RemediationLoopCount applies equality check predicate on the "remediation_loop_count" field. It's identical to RemediationLoopCountEQ.
func RemediationLoopCount(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldRemediationLoopCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldUserID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldTopicID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldState, v))
}

// SessionNumberEQ applies the EQ predicate on the "session_number" field.
func SessionNumberEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldSessionNumber, v))
}

// SessionNumberNEQ applies the NEQ predicate on the "session_number" field.
func SessionNumberNEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldSessionNumber, v))
}

// SessionNumberIn applies the In predicate on the "session_number" field.
func SessionNumberIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldSessionNumber, vs...))
}

// SessionNumberNotIn applies the NotIn predicate on the "session_number" field.
func SessionNumberNotIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldSessionNumber, vs...))
}

// SessionNumberGT applies the GT predicate on the "session_number" field.
func SessionNumberGT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldSessionNumber, v))
}

// SessionNumberGTE applies the GTE predicate on the "session_number" field.
func SessionNumberGTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldSessionNumber, v))
}

// SessionNumberLT applies the LT predicate on the "session_number" field.
func SessionNumberLT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldSessionNumber, v))
}

// SessionNumberLTE applies the LTE predicate on the "session_number" field.
func SessionNumberLTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldSessionNumber, v))
}

// PreExamScoreEQ applies the EQ predicate on the "pre_exam_score" field.
func PreExamScoreEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldPreExamScore, v))
}

// PreExamScoreNEQ applies the NEQ predicate on the "pre_exam_score" field.
func PreExamScoreNEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldPreExamScore, v))
}

// PreExamScoreIn applies the In predicate on the "pre_exam_score" field.
func PreExamScoreIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldPreExamScore, vs...))
}

// PreExamScoreNotIn applies the NotIn predicate on the "pre_exam_score" field.
func PreExamScoreNotIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldPreExamScore, vs...))
}

// PreExamScoreGT applies the GT predicate on the "pre_exam_score" field.
func PreExamScoreGT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldPreExamScore, v))
}

// PreExamScoreGTE applies the GTE predicate on the "pre_exam_score" field.
func PreExamScoreGTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldPreExamScore, v))
}

// PreExamScoreLT applies the LT predicate on the "pre_exam_score" field.
func PreExamScoreLT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldPreExamScore, v))
}

// PreExamScoreLTE applies the LTE predicate on the "pre_exam_score" field.
func PreExamScoreLTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldPreExamScore, v))
}

// PreExamScoreIsNil applies the IsNil predicate on the "pre_exam_score" field.
func PreExamScoreIsNil() predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIsNull(FieldPreExamScore))
}

// PreExamScoreNotNil applies the NotNil predicate on the "pre_exam_score" field.
func PreExamScoreNotNil() predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotNull(FieldPreExamScore))
}

// PostExamScoreEQ applies the EQ predicate on the "post_exam_score" field.
func PostExamScoreEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldPostExamScore, v))
}

// PostExamScoreNEQ applies the NEQ predicate on the "post_exam_score" field.
func PostExamScoreNEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldPostExamScore, v))
}

// PostExamScoreIn applies the In predicate on the "post_exam_score" field.
func PostExamScoreIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldPostExamScore, vs...))
}

// PostExamScoreNotIn applies the NotIn predicate on the "post_exam_score" field.
func PostExamScoreNotIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldPostExamScore, vs...))
}

// PostExamScoreGT applies the GT predicate on the "post_exam_score" field.
func PostExamScoreGT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldPostExamScore, v))
}

// PostExamScoreGTE applies the GTE predicate on the "post_exam_score" field.
func PostExamScoreGTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldPostExamScore, v))
}

// PostExamScoreLT applies the LT predicate on the "post_exam_score" field.
func PostExamScoreLT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldPostExamScore, v))
}

// PostExamScoreLTE applies the LTE predicate on the "post_exam_score" field.
func PostExamScoreLTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldPostExamScore, v))
}

// PostExamScoreIsNil applies the IsNil predicate on the "post_exam_score" field.
func PostExamScoreIsNil() predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIsNull(FieldPostExamScore))
}

// PostExamScoreNotNil applies the NotNil predicate on the "post_exam_score" field.
func PostExamScoreNotNil() predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotNull(FieldPostExamScore))
}

// RemediationExamScoreEQ applies the EQ predicate on the "remediation_exam_score" field.
func RemediationExamScoreEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldRemediationExamScore, v))
}

// RemediationExamScoreNEQ applies the NEQ predicate on the "remediation_exam_score" field.
func RemediationExamScoreNEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldRemediationExamScore, v))
}

// RemediationExamScoreIn applies the In predicate on the "remediation_exam_score" field.
func RemediationExamScoreIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldRemediationExamScore, vs...))
}

// RemediationExamScoreNotIn applies the NotIn predicate on the "remediation_exam_score" field.
func RemediationExamScoreNotIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldRemediationExamScore, vs...))
}

// RemediationExamScoreGT applies the GT predicate on the "remediation_exam_score" field.
func RemediationExamScoreGT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldRemediationExamScore, v))
}

// RemediationExamScoreGTE applies the GTE predicate on the "remediation_exam_score" field.
func RemediationExamScoreGTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldRemediationExamScore, v))
}

// RemediationExamScoreLT applies the LT predicate on the "remediation_exam_score" field.
func RemediationExamScoreLT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldRemediationExamScore, v))
}

// RemediationExamScoreLTE applies the LTE predicate on the "remediation_exam_score" field.
func RemediationExamScoreLTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldRemediationExamScore, v))
}

// RemediationExamScoreIsNil applies the IsNil predicate on the "remediation_exam_score" field.
func RemediationExamScoreIsNil() predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIsNull(FieldRemediationExamScore))
}

// RemediationExamScoreNotNil applies the NotNil predicate on the "remediation_exam_score" field.
func RemediationExamScoreNotNil() predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotNull(FieldRemediationExamScore))
}

// RemediationLoopCountEQ applies the EQ predicate on the "remediation_loop_count" field.
func RemediationLoopCountEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldRemediationLoopCount, v))
}

// RemediationLoopCountNEQ applies the NEQ predicate on the "remediation_loop_count" field.
func RemediationLoopCountNEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldRemediationLoopCount, v))
}

// RemediationLoopCountIn applies the In predicate on the "remediation_loop_count" field.
func RemediationLoopCountIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldRemediationLoopCount, vs...))
}

// RemediationLoopCountNotIn applies the NotIn predicate on the "remediation_loop_count" field.
func RemediationLoopCountNotIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldRemediationLoopCount, vs...))
}

// RemediationLoopCountGT applies the GT predicate on the "remediation_loop_count" field.
func RemediationLoopCountGT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldRemediationLoopCount, v))
}

// RemediationLoopCountGTE applies the GTE predicate on the "remediation_loop_count" field.
func RemediationLoopCountGTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldRemediationLoopCount, v))
}

// RemediationLoopCountLT applies the LT predicate on the "remediation_loop_count" field.
func RemediationLoopCountLT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldRemediationLoopCount, v))
}

// RemediationLoopCountLTE applies the LTE predicate on the "remediation_loop_count" field.
func RemediationLoopCountLTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldRemediationLoopCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTopic applies the HasEdge predicate on the "topic" edge.
func HasTopic() predicate.LearningSession {
	return predicate.LearningSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, TopicTable, TopicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTopicWith applies the HasEdge predicate on the "topic" edge with a given conditions (other predicates).
func HasTopicWith(preds ...predicate.Topic) predicate.LearningSession {
	return predicate.LearningSession(func(s *sql.Selector) {
		step := newTopicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.LearningSession {
	return predicate.LearningSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.ExamQuestion) predicate.LearningSession {
	return predicate.LearningSession(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLessons applies the HasEdge predicate on the "lessons" edge.
func HasLessons() predicate.LearningSession {
	return predicate.LearningSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LessonsTable, LessonsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLessonsWith applies the HasEdge predicate on the "lessons" edge with a given conditions (other predicates).
func HasLessonsWith(preds ...predicate.Lesson) predicate.LearningSession {
	return predicate.LearningSession(func(s *sql.Selector) {
		step := newLessonsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningSession) predicate.LearningSession {
	return predicate.LearningSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningSession) predicate.LearningSession {
	return predicate.LearningSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningSession) predicate.LearningSession {
	return predicate.LearningSession(sql.NotPredicates(p))
}
