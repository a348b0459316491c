package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/tutorloop/internal/loop"
)

func (s *Server) handleSessionStart(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())

	var req struct {
		TopicID string `json:"topicId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.TopicID == "" {
		writeError(w, http.StatusBadRequest, "topicId required")
		return
	}

	sess, err := s.Exams.StartSession(r.Context(), userID, req.TopicID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sessionId":     sess.ID,
		"state":         sess.State,
		"sessionNumber": sess.SessionNumber,
	})
}

func (s *Server) handleSessionTransition(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())

	var req struct {
		SessionID   string `json:"sessionId"`
		TargetState string `json:"targetState"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	target := loop.State(req.TargetState)
	if req.SessionID == "" || !loop.Valid(target) {
		writeError(w, http.StatusBadRequest, "sessionId and a valid targetState required")
		return
	}

	sess, err := s.Exams.Transition(r.Context(), userID, req.SessionID, target)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"state": sess.State})
}

func (s *Server) handleSessionGet(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())
	sessionID := chi.URLParam(r, "sessionID")

	sess, err := s.Exams.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session":    toSessionPayload(sess),
		"stateLabel": loop.Label(loop.State(sess.State)),
	})
}
