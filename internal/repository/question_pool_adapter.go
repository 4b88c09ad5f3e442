package repository

import (
	"context"
	"fmt"

	"cs-quiz/internal/domain"
	"cs-quiz/internal/repository/models"
)

// QuestionPoolDatabaseAdapter implements domain.QuestionPoolRepository using sqlx.
type QuestionPoolDatabaseAdapter struct {
	db DBTX
}

// NewQuestionPoolDatabaseAdapter creates a new instance of QuestionPoolDatabaseAdapter
func NewQuestionPoolDatabaseAdapter(db DBTX) domain.QuestionPoolRepository {
	return &QuestionPoolDatabaseAdapter{db: db}
}

// ListQuestionRefs returns every question ID with its topic, ordered by ID.
func (a *QuestionPoolDatabaseAdapter) ListQuestionRefs(ctx context.Context) ([]domain.QuestionRef, error) {
	var rows []models.QuestionRef
	query := `SELECT id "id", topic_id "topic_id" FROM questions ORDER BY id`

	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list question refs: %w", err)
	}

	refs := make([]domain.QuestionRef, len(rows))
	for i, row := range rows {
		refs[i] = domain.QuestionRef{ID: row.ID, TopicID: row.TopicID}
	}
	return refs, nil
}
