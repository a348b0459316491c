package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorloop/ent"
	"github.com/abhisek/tutorloop/ent/topic"
)

// topicRepo implements TopicRepo using the ent client.
type topicRepo struct {
	client *ent.Client
}

func (r *topicRepo) Get(ctx context.Context, id string) (*Topic, error) {
	row, err := r.client.Topic.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return topicFromEnt(row), nil
}

func (r *topicRepo) List(ctx context.Context) ([]*Topic, error) {
	rows, err := r.client.Topic.Query().
		Order(ent.Asc(topic.FieldDisplayOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	out := make([]*Topic, len(rows))
	for i, row := range rows {
		out[i] = topicFromEnt(row)
	}
	return out, nil
}

func (r *topicRepo) Dependents(ctx context.Context, topicID string) ([]*Topic, error) {
	rows, err := r.client.Topic.Query().
		Where(topic.PrerequisiteID(topicID)).
		Order(ent.Asc(topic.FieldDisplayOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query dependent topics: %w", err)
	}
	out := make([]*Topic, len(rows))
	for i, row := range rows {
		out[i] = topicFromEnt(row)
	}
	return out, nil
}

func (r *topicRepo) UpsertAll(ctx context.Context, topics []*Topic) error {
	for _, t := range topics {
		exists, err := r.client.Topic.Query().
			Where(topic.ID(t.ID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("query topic %s: %w", t.ID, err)
		}
		if exists {
			builder := r.client.Topic.UpdateOneID(t.ID).
				SetName(t.Name).
				SetDescription(t.Description).
				SetDisplayOrder(t.DisplayOrder)
			if t.PrerequisiteID != "" {
				builder = builder.SetPrerequisiteID(t.PrerequisiteID)
			} else {
				builder = builder.ClearPrerequisite()
			}
			if _, err := builder.Save(ctx); err != nil {
				return fmt.Errorf("update topic %s: %w", t.ID, err)
			}
			continue
		}
		builder := r.client.Topic.Create().
			SetID(t.ID).
			SetName(t.Name).
			SetDescription(t.Description).
			SetDisplayOrder(t.DisplayOrder)
		if t.PrerequisiteID != "" {
			builder = builder.SetPrerequisiteID(t.PrerequisiteID)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create topic %s: %w", t.ID, err)
		}
	}
	return nil
}

func topicFromEnt(row *ent.Topic) *Topic {
	return &Topic{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		DisplayOrder:   row.DisplayOrder,
		PrerequisiteID: row.PrerequisiteID,
	}
}
