// Package loop defines the learning-session state machine: the fixed set
// of session states, the legal transitions between them, and the branch
// decisions taken after post and remediation exams.
package loop

import (
	"fmt"

	"github.com/abhisek/tutorloop/internal/scoring"
)

// State is a learning-session state. The zero value is not a valid state.
type State string

const (
	PreExamPending             State = "pre_exam_pending"
	PreExamActive              State = "pre_exam_active"
	PreExamCompleted           State = "pre_exam_completed"
	LessonPending              State = "lesson_pending"
	LessonActive               State = "lesson_active"
	LessonCompleted            State = "lesson_completed"
	PostExamPending            State = "post_exam_pending"
	PostExamActive             State = "post_exam_active"
	PostExamCompleted          State = "post_exam_completed"
	RemediationActive          State = "remediation_active"
	RemediationLessonPending   State = "remediation_lesson_pending"
	RemediationLessonActive    State = "remediation_lesson_active"
	RemediationLessonCompleted State = "remediation_lesson_completed"
	RemediationExamPending     State = "remediation_exam_pending"
	RemediationExamActive      State = "remediation_exam_active"
	RemediationExamCompleted   State = "remediation_exam_completed"
	SessionPassed              State = "session_passed"
	SessionFailed              State = "session_failed"
)

// States lists every valid session state in loop order.
var States = []State{
	PreExamPending, PreExamActive, PreExamCompleted,
	LessonPending, LessonActive, LessonCompleted,
	PostExamPending, PostExamActive, PostExamCompleted,
	RemediationActive,
	RemediationLessonPending, RemediationLessonActive, RemediationLessonCompleted,
	RemediationExamPending, RemediationExamActive, RemediationExamCompleted,
	SessionPassed, SessionFailed,
}

// transitions is the strict adjacency list. Terminal states are absent,
// which makes their allow-lists empty.
var transitions = map[State][]State{
	PreExamPending:             {PreExamActive},
	PreExamActive:              {PreExamCompleted},
	PreExamCompleted:           {LessonPending},
	LessonPending:              {LessonActive},
	LessonActive:               {LessonCompleted},
	LessonCompleted:            {PostExamPending},
	PostExamPending:            {PostExamActive},
	PostExamActive:             {PostExamCompleted},
	PostExamCompleted:          {SessionPassed, RemediationActive},
	RemediationActive:          {RemediationLessonPending},
	RemediationLessonPending:   {RemediationLessonActive},
	RemediationLessonActive:    {RemediationLessonCompleted},
	RemediationLessonCompleted: {RemediationExamPending},
	RemediationExamPending:     {RemediationExamActive},
	RemediationExamActive:      {RemediationExamCompleted},
	RemediationExamCompleted:   {SessionPassed, RemediationActive, SessionFailed},
}

// Valid reports whether s is one of the fixed session states.
func Valid(s State) bool {
	for _, st := range States {
		if st == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s is a terminal state. Sessions in a
// terminal state are immutable.
func IsTerminal(s State) bool {
	return s == SessionPassed || s == SessionFailed
}

// CanTransition reports whether from → to is a legal transition.
// Unknown states never transition anywhere.
func CanTransition(from, to State) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// BranchContext carries the inputs to a branch decision. ExamScore is nil
// when no score is available, which is treated as failing.
type BranchContext struct {
	ExamScore            *int
	RemediationLoopCount int
}

// NextState computes the branch taken from one of the two branch states.
// For every other state it returns the empty State; the caller should use
// the plain table edge instead.
func NextState(state State, ctx BranchContext) State {
	switch state {
	case PostExamCompleted:
		if ctx.ExamScore != nil && scoring.IsPassing(*ctx.ExamScore) {
			return SessionPassed
		}
		return RemediationActive

	case RemediationExamCompleted:
		if ctx.ExamScore != nil && scoring.IsPassing(*ctx.ExamScore) {
			return SessionPassed
		}
		if ctx.RemediationLoopCount >= scoring.MaxRemediationLoops {
			return SessionFailed
		}
		return RemediationActive

	default:
		return ""
	}
}

// TransitionError reports a rejected state change.
type TransitionError struct {
	From State
	To   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s → %s", e.From, e.To)
}

// stateLabels maps states to learner-facing progress labels.
var stateLabels = map[State]string{
	PreExamPending:             "Ready for Pre-Exam",
	PreExamActive:              "Taking Pre-Exam",
	PreExamCompleted:           "Pre-Exam Complete",
	LessonPending:              "Ready for Lesson",
	LessonActive:               "Viewing Lesson",
	LessonCompleted:            "Lesson Complete",
	PostExamPending:            "Ready for Post-Exam",
	PostExamActive:             "Taking Post-Exam",
	PostExamCompleted:          "Post-Exam Complete",
	RemediationActive:          "Remediation in Progress",
	RemediationLessonPending:   "Ready for Remediation Lesson",
	RemediationLessonActive:    "Viewing Remediation Lesson",
	RemediationLessonCompleted: "Remediation Lesson Complete",
	RemediationExamPending:     "Ready for Remediation Exam",
	RemediationExamActive:      "Taking Remediation Exam",
	RemediationExamCompleted:   "Remediation Exam Complete",
	SessionPassed:              "Topic Passed",
	SessionFailed:              "Needs More Practice",
}

// Label returns a learner-facing label for s, or the raw state string for
// unknown states.
func Label(s State) string {
	if l, ok := stateLabels[s]; ok {
		return l
	}
	return string(s)
}
