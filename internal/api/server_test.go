package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abhisek/tutorloop/internal/llm"
	"github.com/abhisek/tutorloop/internal/loop"
	"github.com/abhisek/tutorloop/internal/store"
)

func doJSON(t *testing.T, env *apiEnv, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("X-User-Id", "user-1")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestMissingIdentityHeader(t *testing.T) {
	env := newAPIEnv()

	req := httptest.NewRequest(http.MethodGet, "/api/progress", nil)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestSessionStartAndGet(t *testing.T) {
	env := newAPIEnv()

	rec := doJSON(t, env, http.MethodPost, "/api/session/start", map[string]string{
		"topicId": "linear-equations",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var started struct {
		SessionID     string `json:"sessionId"`
		State         string `json:"state"`
		SessionNumber int    `json:"sessionNumber"`
	}
	decodeBody(t, rec, &started)
	if started.State != string(loop.PreExamPending) || started.SessionNumber != 1 {
		t.Errorf("started = %+v", started)
	}

	rec = doJSON(t, env, http.MethodGet, "/api/session/"+started.SessionID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var got struct {
		Session    sessionPayload `json:"session"`
		StateLabel string         `json:"stateLabel"`
	}
	decodeBody(t, rec, &got)
	if got.Session.ID != started.SessionID {
		t.Errorf("session id = %q, want %q", got.Session.ID, started.SessionID)
	}
	if got.StateLabel != "Ready for Pre-Exam" {
		t.Errorf("stateLabel = %q", got.StateLabel)
	}
}

func TestSessionTransitionRejected(t *testing.T) {
	env := newAPIEnv()
	sess, _ := env.sessions.Create(nil, "user-1", "linear-equations", 1)

	rec := doJSON(t, env, http.MethodPost, "/api/session/transition", map[string]string{
		"sessionId":   sess.ID,
		"targetState": string(loop.LessonActive),
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid transition") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestSessionGetUnknown(t *testing.T) {
	env := newAPIEnv()

	rec := doJSON(t, env, http.MethodGet, "/api/session/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestExamGenerateWithholdsAnswerKey(t *testing.T) {
	env := newAPIEnv()
	sess, _ := env.sessions.Create(nil, "user-1", "linear-equations", 1)

	rec := doJSON(t, env, http.MethodPost, "/api/exam/generate", map[string]string{
		"sessionId": sess.ID,
		"examType":  "pre",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Questions []questionPayload `json:"questions"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(resp.Questions))
	}
	for _, q := range resp.Questions {
		if q.CorrectAnswer != "" || q.Explanation != "" {
			t.Errorf("question %s leaks the answer key", q.ID)
		}
	}
	if strings.Contains(rec.Body.String(), "correct_answer") {
		t.Error("response body contains correct_answer field")
	}
}

func TestExamSubmitGradesAndReveals(t *testing.T) {
	env := newAPIEnv()
	sess, _ := env.sessions.Create(nil, "user-1", "linear-equations", 1)

	gen := doJSON(t, env, http.MethodPost, "/api/exam/generate", map[string]string{
		"sessionId": sess.ID,
		"examType":  "pre",
	})
	var genResp struct {
		Questions []questionPayload `json:"questions"`
	}
	decodeBody(t, gen, &genResp)

	// Four right, one wrong: an 80 that moves the session forward.
	answers := make([]map[string]any, 0, len(genResp.Questions))
	for i, q := range genResp.Questions {
		answer := "A"
		if i == 0 {
			answer = "B"
		}
		answers = append(answers, map[string]any{"questionId": q.ID, "answer": answer})
	}

	rec := doJSON(t, env, http.MethodPost, "/api/exam/submit", map[string]any{
		"sessionId": sess.ID,
		"examType":  "pre",
		"answers":   answers,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Score           int    `json:"score"`
		NextState       string `json:"nextState"`
		HasWrongAnswers bool   `json:"hasWrongAnswers"`
		Results         []struct {
			QuestionID    string `json:"questionId"`
			IsCorrect     bool   `json:"isCorrect"`
			CorrectAnswer string `json:"correctAnswer"`
			Explanation   string `json:"explanation"`
		} `json:"results"`
	}
	decodeBody(t, rec, &resp)

	if resp.Score != 80 || !resp.HasWrongAnswers {
		t.Errorf("score = %d hasWrongAnswers = %t", resp.Score, resp.HasWrongAnswers)
	}
	if resp.NextState != string(loop.PreExamCompleted) {
		t.Errorf("nextState = %q", resp.NextState)
	}
	for _, r := range resp.Results {
		if r.CorrectAnswer == "" || r.Explanation == "" {
			t.Errorf("result %s missing revealed answer key", r.QuestionID)
		}
	}
}

func TestExamGenerateBadType(t *testing.T) {
	env := newAPIEnv()
	sess, _ := env.sessions.Create(nil, "user-1", "linear-equations", 1)

	rec := doJSON(t, env, http.MethodPost, "/api/exam/generate", map[string]string{
		"sessionId": sess.ID,
		"examType":  "final",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLessonGenerateStreams(t *testing.T) {
	env := newAPIEnv(llm.MockResponse{
		Content: []byte("Welcome to linear equations. "),
		Chunks:  []string{"Welcome to ", "linear equations. "},
	})
	sess, _ := env.sessions.Create(nil, "user-1", "linear-equations", 1)
	sess.State = string(loop.LessonPending)

	rec := doJSON(t, env, http.MethodPost, "/api/lesson/generate", map[string]string{
		"sessionId":  sess.ID,
		"lessonType": "initial",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.String() != "Welcome to linear equations. " {
		t.Errorf("body = %q", rec.Body.String())
	}
	if sess.State != string(loop.LessonCompleted) {
		t.Errorf("session state = %q", sess.State)
	}

	get := doJSON(t, env, http.MethodGet, "/api/lesson/"+sess.ID+"/initial", nil)
	if get.Code != http.StatusOK {
		t.Fatalf("lesson get status = %d", get.Code)
	}
	var stored struct {
		Lesson lessonPayload `json:"lesson"`
	}
	decodeBody(t, get, &stored)
	if stored.Lesson.Content == "" {
		t.Error("stored lesson has no content")
	}
}

func TestLessonGenerateRejectsWrongState(t *testing.T) {
	env := newAPIEnv()
	sess, _ := env.sessions.Create(nil, "user-1", "linear-equations", 1)
	sess.State = string(loop.PreExamActive)

	rec := doJSON(t, env, http.MethodPost, "/api/lesson/generate", map[string]string{
		"sessionId":  sess.ID,
		"lessonType": "initial",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
	}
}

func remediationFixture(env *apiEnv) *store.Session {
	sess, _ := env.sessions.Create(nil, "user-1", "linear-equations", 1)
	sess.State = string(loop.RemediationActive)
	sess.RemediationLoopCount = 1

	answer := "B"
	wrong := false
	env.questions.rows = append(env.questions.rows, &store.ExamQuestion{
		ID:            "question-wrong",
		SessionID:     sess.ID,
		UserID:        "user-1",
		ExamType:      "post",
		AttemptNumber: 1,
		QuestionText:  "Solve $2x = 6$.",
		Choices:       map[string]string{"A": "$3$", "B": "$2$", "C": "$6$", "D": "$12$"},
		CorrectAnswer: "A",
		Explanation:   "Divide both sides by 2.",
		UserAnswer:    &answer,
		IsCorrect:     &wrong,
	})
	return sess
}

func TestRemediationStartStreamsWithThreadHeader(t *testing.T) {
	env := newAPIEnv(llm.MockResponse{
		Content: []byte("What does the 2 do to x?"),
		Chunks:  []string{"What does ", "the 2 do to x?"},
	})
	sess := remediationFixture(env)

	rec := doJSON(t, env, http.MethodPost, "/api/remediation/start", map[string]string{
		"questionId": "question-wrong",
		"sessionId":  sess.ID,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	threadID := rec.Header().Get("X-Thread-Id")
	if threadID == "" {
		t.Fatal("missing X-Thread-Id header")
	}
	if rec.Body.String() != "What does the 2 do to x?" {
		t.Errorf("body = %q", rec.Body.String())
	}

	// A second start resumes the thread as JSON instead of streaming.
	rec = doJSON(t, env, http.MethodPost, "/api/remediation/start", map[string]string{
		"questionId": "question-wrong",
		"sessionId":  sess.ID,
	})
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("resumed Content-Type = %q", ct)
	}
	var resumed struct {
		Thread   threadPayload    `json:"thread"`
		Messages []messagePayload `json:"messages"`
	}
	decodeBody(t, rec, &resumed)
	if resumed.Thread.ID != threadID {
		t.Errorf("resumed thread = %q, want %q", resumed.Thread.ID, threadID)
	}
	if len(resumed.Messages) != 1 || resumed.Messages[0].Role != "assistant" {
		t.Errorf("messages = %+v", resumed.Messages)
	}
}

func TestRemediationRespond(t *testing.T) {
	env := newAPIEnv(llm.MockResponse{
		Content: []byte(`{"message": "Exactly right, $x = 3$.", "is_resolved": true}`),
	})
	sess := remediationFixture(env)
	th, _ := env.threads.CreateThread(nil, "question-wrong", sess.ID, "user-1")

	rec := doJSON(t, env, http.MethodPost, "/api/remediation/respond", map[string]string{
		"threadId": th.ID,
		"message":  "Divide both sides by 2, so x is 3.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message    string `json:"message"`
		IsResolved bool   `json:"isResolved"`
	}
	decodeBody(t, rec, &resp)
	if !resp.IsResolved || resp.Message == "" {
		t.Errorf("resp = %+v", resp)
	}

	// Further messages on the resolved thread are rejected.
	rec = doJSON(t, env, http.MethodPost, "/api/remediation/respond", map[string]string{
		"threadId": th.ID,
		"message":  "One more question.",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("resolved thread status = %d, want 400", rec.Code)
	}
}

func TestStudentModelUpdate(t *testing.T) {
	env := newAPIEnv(llm.MockResponse{
		Content: []byte(`{"strengths": ["slope"], "weaknesses": ["fractions"], "misconceptions": [], "mastery_level": 55}`),
	})
	sess := remediationFixture(env)

	rec := doJSON(t, env, http.MethodPost, "/api/student-model/update", map[string]string{
		"sessionId": sess.ID,
		"examType":  "post",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Update studentModelPayload `json:"update"`
	}
	decodeBody(t, rec, &resp)
	if resp.Update.MasteryLevel != 55 {
		t.Errorf("mastery = %d, want 55", resp.Update.MasteryLevel)
	}

	get := doJSON(t, env, http.MethodGet, "/api/student-model/linear-equations", nil)
	if get.Code != http.StatusOK {
		t.Fatalf("get status = %d", get.Code)
	}
}

func TestProgressListsCurriculum(t *testing.T) {
	env := newAPIEnv()

	rec := doJSON(t, env, http.MethodGet, "/api/progress", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Progress []progressPayload `json:"progress"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Progress) != 2 {
		t.Fatalf("got %d rows, want 2", len(resp.Progress))
	}

	byTopic := make(map[string]progressPayload)
	for _, p := range resp.Progress {
		byTopic[p.TopicID] = p
	}
	if byTopic["linear-equations"].Status != "available" {
		t.Errorf("first topic status = %q", byTopic["linear-equations"].Status)
	}
	if byTopic["systems"].Status != "locked" {
		t.Errorf("dependent topic status = %q", byTopic["systems"].Status)
	}
	if byTopic["linear-equations"].TopicName != "Linear Equations" {
		t.Errorf("topic name = %q", byTopic["linear-equations"].TopicName)
	}
}
