// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExamQuestion is the predicate function for examquestion builders.
type ExamQuestion func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearningSession is the predicate function for learningsession builders.
type LearningSession func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// RemediationMessage is the predicate function for remediationmessage builders.
type RemediationMessage func(*sql.Selector)

// RemediationThread is the predicate function for remediationthread builders.
type RemediationThread func(*sql.Selector)

// StudentModel is the predicate function for studentmodel builders.
type StudentModel func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// TopicProgress is the predicate function for topicprogress builders.
type TopicProgress func(*sql.Selector)
