package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleLessonGenerate(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())

	var req struct {
		SessionID  string `json:"sessionId"`
		LessonType string `json:"lessonType"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.SessionID == "" || !validLessonType(req.LessonType) {
		writeError(w, http.StatusBadRequest, "sessionId and lessonType (initial or remediation) required")
		return
	}

	stream := newStreamWriter(w)
	_, err := s.Lessons.Generate(r.Context(), userID, req.SessionID, req.LessonType, stream.Delta)
	if err != nil {
		// Once deltas have gone out the status is already committed; the
		// client sees a truncated stream and the error lands in the log.
		if !stream.started {
			s.serviceError(w, r, err)
			return
		}
		s.log().Error("lesson stream failed", "session_id", req.SessionID, "err", err)
	}
}

func (s *Server) handleLessonGet(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())
	sessionID := chi.URLParam(r, "sessionID")
	lessonType := chi.URLParam(r, "lessonType")

	if !validLessonType(lessonType) {
		writeError(w, http.StatusBadRequest, "lessonType must be initial or remediation")
		return
	}

	lesson, err := s.Lessons.Get(r.Context(), userID, sessionID, lessonType)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	if lesson == nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"lesson": toLessonPayload(lesson)})
}

// streamWriter sends raw text deltas as a chunked plain-text response,
// flushing after every delta so tokens reach the client as they arrive.
type streamWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	started bool
}

func newStreamWriter(w http.ResponseWriter) *streamWriter {
	flusher, _ := w.(http.Flusher)
	return &streamWriter{w: w, flusher: flusher}
}

func (sw *streamWriter) Delta(delta string) {
	if !sw.started {
		sw.w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		sw.w.WriteHeader(http.StatusOK)
		sw.started = true
	}
	_, _ = sw.w.Write([]byte(delta))
	if sw.flusher != nil {
		sw.flusher.Flush()
	}
}
