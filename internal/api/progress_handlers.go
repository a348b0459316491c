package api

import (
	"net/http"
)

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())
	ctx := r.Context()

	// First call for a user lays down the progress rows so the curriculum
	// renders fully, with only the first topic unlocked.
	if err := s.Progress.Initialize(ctx, userID); err != nil {
		s.serviceError(w, r, err)
		return
	}

	rows, err := s.Progress.ListByUser(ctx, userID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	topics, err := s.Topics.List(ctx)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	topicByID := make(map[string]topicPayload, len(topics))
	for _, t := range topics {
		topicByID[t.ID] = toTopicPayload(t)
	}

	payload := make([]progressPayload, 0, len(rows))
	for _, p := range rows {
		entry := progressPayload{
			TopicID:   p.TopicID,
			Status:    p.Status,
			BestScore: p.BestScore,
			Attempts:  p.Attempts,
		}
		if t, ok := topicByID[p.TopicID]; ok {
			entry.TopicName = t.Name
			entry.DisplayOrder = t.DisplayOrder
		}
		model, err := s.Students.Get(ctx, userID, p.TopicID)
		if err != nil {
			s.serviceError(w, r, err)
			return
		}
		if model != nil {
			entry.MasteryLevel = model.MasteryLevel
		}
		payload = append(payload, entry)
	}

	writeJSON(w, http.StatusOK, map[string]any{"progress": payload})
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.Topics.List(r.Context())
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	payload := make([]topicPayload, 0, len(topics))
	for _, t := range topics {
		payload = append(payload, toTopicPayload(t))
	}
	writeJSON(w, http.StatusOK, map[string]any{"topics": payload})
}
