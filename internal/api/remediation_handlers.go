package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/tutorloop/internal/store"
)

func (s *Server) handleRemediationStart(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())

	var req struct {
		QuestionID string `json:"questionId"`
		SessionID  string `json:"sessionId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.QuestionID == "" || req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "questionId and sessionId required")
		return
	}

	// The thread id rides on a header because the opening message streams
	// in the body. Resumed threads skip the stream and return JSON.
	stream := newStreamWriter(w)
	onThread := func(th *store.Thread) {
		w.Header().Set("X-Thread-Id", th.ID)
	}

	result, err := s.Remediation.Start(r.Context(), userID, req.QuestionID, req.SessionID, onThread, stream.Delta)
	if err != nil {
		if !stream.started {
			s.serviceError(w, r, err)
			return
		}
		s.log().Error("remediation stream failed", "question_id", req.QuestionID, "err", err)
		return
	}

	if result.Resumed {
		writeJSON(w, http.StatusOK, map[string]any{
			"thread":   toThreadPayload(result.Thread),
			"messages": toMessagePayloads(result.Messages),
		})
	}
}

func (s *Server) handleRemediationRespond(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())

	var req struct {
		ThreadID string `json:"threadId"`
		Message  string `json:"message"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.ThreadID == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "threadId and message required")
		return
	}

	result, err := s.Remediation.Respond(r.Context(), userID, req.ThreadID, req.Message)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    result.Message,
		"isResolved": result.IsResolved,
	})
}

func (s *Server) handleRemediationThread(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())
	threadID := chi.URLParam(r, "threadID")

	thread, messages, err := s.Remediation.Thread(r.Context(), userID, threadID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"thread":   toThreadPayload(thread),
		"messages": toMessagePayloads(messages),
	})
}
