package loop

import "testing"

func intPtr(n int) *int { return &n }

// legalEdges is the full expected transition table, used to verify
// CanTransition both positively and negatively.
var legalEdges = map[State][]State{
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
	SessionPassed:              {},
	SessionFailed:              {},
}

func TestCanTransitionExhaustive(t *testing.T) {
	for _, from := range States {
		allowed := make(map[State]bool)
		for _, to := range legalEdges[from] {
			allowed[to] = true
		}
		for _, to := range States {
			got := CanTransition(from, to)
			if got != allowed[to] {
				t.Errorf("CanTransition(%s, %s) = %t, want %t", from, to, got, allowed[to])
			}
		}
	}
}

func TestCanTransitionUnknownStates(t *testing.T) {
	if CanTransition("bogus", PreExamActive) {
		t.Error("unknown from-state must not transition")
	}
	if CanTransition(PreExamPending, "bogus") {
		t.Error("unknown to-state must not be reachable")
	}
	if CanTransition("", "") {
		t.Error("empty states must not transition")
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, terminal := range []State{SessionPassed, SessionFailed} {
		for _, to := range States {
			if CanTransition(terminal, to) {
				t.Errorf("terminal state %s must not transition to %s", terminal, to)
			}
		}
	}
}

func TestNextStatePostExam(t *testing.T) {
	tests := []struct {
		name  string
		score *int
		want  State
	}{
		{"exactly threshold passes", intPtr(80), SessionPassed},
		{"perfect passes", intPtr(100), SessionPassed},
		{"below threshold remediates", intPtr(79), RemediationActive},
		{"zero remediates", intPtr(0), RemediationActive},
		{"missing score remediates", nil, RemediationActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextState(PostExamCompleted, BranchContext{ExamScore: tt.score})
			if got != tt.want {
				t.Errorf("NextState(post_exam_completed) = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNextStateRemediationExam(t *testing.T) {
	tests := []struct {
		name  string
		score *int
		loops int
		want  State
	}{
		{"passing score wins regardless of loops", intPtr(80), 3, SessionPassed},
		{"failing with loops below cap re-enters remediation", intPtr(50), 2, RemediationActive},
		{"failing at loop cap fails session", intPtr(50), 3, SessionFailed},
		{"failing above loop cap fails session", intPtr(0), 4, SessionFailed},
		{"missing score with zero loops remediates", nil, 0, RemediationActive},
		{"missing score at cap fails", nil, 3, SessionFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextState(RemediationExamCompleted, BranchContext{
				ExamScore:            tt.score,
				RemediationLoopCount: tt.loops,
			})
			if got != tt.want {
				t.Errorf("NextState(remediation_exam_completed) = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNextStateUndefinedForNonBranchStates(t *testing.T) {
	for _, s := range States {
		if s == PostExamCompleted || s == RemediationExamCompleted {
			continue
		}
		if got := NextState(s, BranchContext{ExamScore: intPtr(100)}); got != "" {
			t.Errorf("NextState(%s) = %s, want empty", s, got)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range States {
		want := s == SessionPassed || s == SessionFailed
		if IsTerminal(s) != want {
			t.Errorf("IsTerminal(%s) = %t, want %t", s, IsTerminal(s), want)
		}
	}
}

func TestLabel(t *testing.T) {
	if Label(SessionPassed) != "Topic Passed" {
		t.Errorf("Label(session_passed) = %q", Label(SessionPassed))
	}
	if Label("weird_state") != "weird_state" {
		t.Error("unknown states label as themselves")
	}
}

func TestTransitionError(t *testing.T) {
	err := &TransitionError{From: LessonActive, To: PreExamPending}
	want := "invalid transition: lesson_active → pre_exam_pending"
	if err.Error() != want {
		t.Errorf("TransitionError = %q, want %q", err.Error(), want)
	}
}
