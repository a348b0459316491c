package api

import (
	"net/http"

	"github.com/abhisek/tutorloop/internal/exams"
)

func (s *Server) handleExamGenerate(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())

	var req struct {
		SessionID string `json:"sessionId"`
		ExamType  string `json:"examType"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.SessionID == "" || !validExamType(req.ExamType) {
		writeError(w, http.StatusBadRequest, "sessionId and examType (pre, post or remediation) required")
		return
	}

	questions, err := s.Exams.Generate(r.Context(), userID, req.SessionID, req.ExamType)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"questions": toQuestionPayloads(questions),
	})
}

func (s *Server) handleExamSubmit(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())

	var req struct {
		SessionID string `json:"sessionId"`
		ExamType  string `json:"examType"`
		Answers   []struct {
			QuestionID string  `json:"questionId"`
			Answer     *string `json:"answer"`
			IsIDK      bool    `json:"isIdk"`
		} `json:"answers"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.SessionID == "" || !validExamType(req.ExamType) {
		writeError(w, http.StatusBadRequest, "sessionId and examType (pre, post or remediation) required")
		return
	}

	answers := make([]exams.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, exams.Answer{
			QuestionID: a.QuestionID,
			Answer:     a.Answer,
			IsIDK:      a.IsIDK,
		})
	}

	result, err := s.Exams.Submit(r.Context(), userID, req.SessionID, req.ExamType, answers)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	results := make([]map[string]any, 0, len(result.Results))
	for _, qr := range result.Results {
		results = append(results, map[string]any{
			"questionId":    qr.QuestionID,
			"isCorrect":     qr.IsCorrect,
			"isIdk":         qr.IsIDK,
			"correctAnswer": qr.CorrectAnswer,
			"explanation":   qr.Explanation,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"score":           result.Score,
		"results":         results,
		"nextState":       result.NextState,
		"hasWrongAnswers": result.HasWrongAnswers,
	})
}
