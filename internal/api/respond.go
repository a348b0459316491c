package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abhisek/tutorloop/internal/examgen"
	"github.com/abhisek/tutorloop/internal/loop"
	"github.com/abhisek/tutorloop/internal/remediation"
	"github.com/abhisek/tutorloop/internal/store"
	"github.com/abhisek/tutorloop/internal/studentmodel"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// serviceError maps service-layer failures to HTTP responses. Transition
// violations and domain rule rejections are client errors; everything
// else is a 500 with the detail kept in the server log.
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	var te *loop.TransitionError
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.As(err, &te):
		writeError(w, http.StatusBadRequest, te.Error())
	case errors.Is(err, remediation.ErrThreadResolved):
		writeError(w, http.StatusBadRequest, "Thread already resolved")
	case errors.Is(err, remediation.ErrSessionClosed):
		writeError(w, http.StatusBadRequest, "Session is closed")
	case errors.Is(err, studentmodel.ErrNoExamResults):
		writeError(w, http.StatusBadRequest, "No exam results found")
	case errors.Is(err, examgen.ErrGenerationExhausted):
		s.log().Error("exam generation exhausted", "path", r.URL.Path, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate valid questions")
	default:
		s.log().Error("request failed", "path", r.URL.Path, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func validExamType(t string) bool {
	return t == "pre" || t == "post" || t == "remediation"
}

func validLessonType(t string) bool {
	return t == "initial" || t == "remediation"
}
