package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorloop/ent"
	"github.com/abhisek/tutorloop/ent/remediationmessage"
	"github.com/abhisek/tutorloop/ent/remediationthread"
)

// remediationRepo implements RemediationRepo using the ent client.
type remediationRepo struct {
	client *ent.Client
}

func (r *remediationRepo) GetThread(ctx context.Context, id string) (*Thread, error) {
	row, err := r.client.RemediationThread.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get thread: %w", err)
	}
	return threadFromEnt(row), nil
}

func (r *remediationRepo) ThreadByQuestion(ctx context.Context, questionID, userID string) (*Thread, error) {
	row, err := r.client.RemediationThread.Query().
		Where(
			remediationthread.QuestionID(questionID),
			remediationthread.UserID(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query thread by question: %w", err)
	}
	return threadFromEnt(row), nil
}

func (r *remediationRepo) ThreadsBySession(ctx context.Context, sessionID string) ([]*Thread, error) {
	rows, err := r.client.RemediationThread.Query().
		Where(remediationthread.SessionID(sessionID)).
		Order(ent.Asc(remediationthread.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session threads: %w", err)
	}
	out := make([]*Thread, len(rows))
	for i, row := range rows {
		out[i] = threadFromEnt(row)
	}
	return out, nil
}

func (r *remediationRepo) CreateThread(ctx context.Context, questionID, sessionID, userID string) (*Thread, error) {
	row, err := r.client.RemediationThread.Create().
		SetQuestionID(questionID).
		SetSessionID(sessionID).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create thread: %w", err)
	}
	return threadFromEnt(row), nil
}

func (r *remediationRepo) DeleteThread(ctx context.Context, id string) error {
	_, err := r.client.RemediationMessage.Delete().
		Where(remediationmessage.ThreadID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete thread messages: %w", err)
	}
	if err := r.client.RemediationThread.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete thread: %w", err)
	}
	return nil
}

func (r *remediationRepo) ResolveThread(ctx context.Context, id string) error {
	_, err := r.client.RemediationThread.UpdateOneID(id).
		SetIsResolved(true).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("resolve thread: %w", err)
	}
	return nil
}

func (r *remediationRepo) Messages(ctx context.Context, threadID string) ([]*Message, error) {
	rows, err := r.client.RemediationMessage.Query().
		Where(remediationmessage.ThreadID(threadID)).
		Order(ent.Asc(remediationmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	out := make([]*Message, len(rows))
	for i, row := range rows {
		out[i] = messageFromEnt(row)
	}
	return out, nil
}

func (r *remediationRepo) AddMessage(ctx context.Context, threadID, role, content string) (*Message, error) {
	row, err := r.client.RemediationMessage.Create().
		SetThreadID(threadID).
		SetRole(role).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("add message: %w", err)
	}
	return messageFromEnt(row), nil
}

func threadFromEnt(row *ent.RemediationThread) *Thread {
	return &Thread{
		ID:         row.ID,
		QuestionID: row.QuestionID,
		SessionID:  row.SessionID,
		UserID:     row.UserID,
		IsResolved: row.IsResolved,
		CreatedAt:  row.CreatedAt,
	}
}

func messageFromEnt(row *ent.RemediationMessage) *Message {
	return &Message{
		ID:        row.ID,
		ThreadID:  row.ThreadID,
		Role:      row.Role,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
	}
}
