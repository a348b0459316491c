package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleStudentModelUpdate(w http.ResponseWriter, r *http.Request) {
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

	model, err := s.StudentModel.Update(r.Context(), userID, req.SessionID, req.ExamType)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"update": toStudentModelPayload(model)})
}

func (s *Server) handleStudentModelGet(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())
	topicID := chi.URLParam(r, "topicID")

	model, err := s.StudentModel.Get(r.Context(), userID, topicID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	if model == nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"model": toStudentModelPayload(model)})
}
