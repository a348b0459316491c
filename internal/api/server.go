// Package api exposes the learning loop over HTTP: session lifecycle,
// exam generation and grading, streamed lessons, remediation dialogue,
// student model updates and topic progress.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/tutorloop/internal/exams"
	"github.com/abhisek/tutorloop/internal/lessons"
	"github.com/abhisek/tutorloop/internal/progress"
	"github.com/abhisek/tutorloop/internal/remediation"
	"github.com/abhisek/tutorloop/internal/store"
	"github.com/abhisek/tutorloop/internal/studentmodel"
)

// Server wires the services into HTTP handlers. Identity comes from the
// X-User-Id header; real authentication sits in front of this service.
type Server struct {
	Exams        *exams.Service
	Lessons      *lessons.Service
	Remediation  *remediation.Service
	StudentModel *studentmodel.Service
	Progress     *progress.Service
	Topics       store.TopicRepo
	Students     store.StudentModelRepo
	Logger       *slog.Logger
}

// Routes builds the router with recovery, request logging and identity
// middleware applied to every endpoint.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recoverMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(userMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/session/start", s.handleSessionStart)
		r.Post("/session/transition", s.handleSessionTransition)
		r.Get("/session/{sessionID}", s.handleSessionGet)

		r.Post("/exam/generate", s.handleExamGenerate)
		r.Post("/exam/submit", s.handleExamSubmit)

		r.Post("/lesson/generate", s.handleLessonGenerate)
		r.Get("/lesson/{sessionID}/{lessonType}", s.handleLessonGet)

		r.Post("/remediation/start", s.handleRemediationStart)
		r.Post("/remediation/respond", s.handleRemediationRespond)
		r.Get("/remediation/thread/{threadID}", s.handleRemediationThread)

		r.Post("/student-model/update", s.handleStudentModelUpdate)
		r.Get("/student-model/{topicID}", s.handleStudentModelGet)

		r.Get("/progress", s.handleProgress)
		r.Get("/topics", s.handleTopics)
	})

	return r
}

func (s *Server) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
