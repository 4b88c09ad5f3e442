package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cs-quiz/internal/domain"
	"cs-quiz/internal/repository/models"
)

// QuestionCatalogDatabaseAdapter implements domain.QuestionCatalogRepository
// using sqlx. Existing rows are left untouched.
type QuestionCatalogDatabaseAdapter struct {
	db DBTX
}

// NewQuestionCatalogDatabaseAdapter creates a new instance of QuestionCatalogDatabaseAdapter
func NewQuestionCatalogDatabaseAdapter(db DBTX) domain.QuestionCatalogRepository {
	return &QuestionCatalogDatabaseAdapter{db: db}
}

// SaveTopic implements domain.QuestionCatalogRepository
func (a *QuestionCatalogDatabaseAdapter) SaveTopic(ctx context.Context, topic *domain.Topic) (bool, error) {
	if topic == nil || topic.ID == "" {
		return false, fmt.Errorf("topic id is required")
	}
	row := models.Topic{ID: topic.ID, NameKo: topic.NameKo, NameEn: topic.NameEn}

	query := `MERGE INTO topics t
	USING (SELECT :1 AS id FROM dual) s
	ON (t.id = s.id)
	WHEN NOT MATCHED THEN
		INSERT (id, name_ko, name_en) VALUES (:2, :3, :4)`

	result, err := a.db.ExecContext(ctx, query, row.ID, row.ID, row.NameKo, row.NameEn)
	if err != nil {
		return false, fmt.Errorf("failed to save topic %s: %w", row.ID, err)
	}
	return inserted(result)
}

// SaveQuestion implements domain.QuestionCatalogRepository
func (a *QuestionCatalogDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) (bool, error) {
	if question == nil || question.ID == "" || question.TopicID == "" {
		return false, fmt.Errorf("question id and topic id are required")
	}
	row := toModelQuestion(question)
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}

	query := `MERGE INTO questions q
	USING (SELECT :1 AS id FROM dual) s
	ON (q.id = s.id)
	WHEN NOT MATCHED THEN
		INSERT (id, topic_id, text_ko, text_en, hint_ko, hint_en, created_at)
		VALUES (:2, :3, :4, :5, :6, :7, :8)`

	result, err := a.db.ExecContext(ctx, query,
		row.ID, row.ID, row.TopicID, row.TextKo, row.TextEn, row.HintKo, row.HintEn, row.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to save question %s: %w", row.ID, err)
	}
	return inserted(result)
}

// SaveAnswerOption implements domain.QuestionCatalogRepository
func (a *QuestionCatalogDatabaseAdapter) SaveAnswerOption(ctx context.Context, option *domain.AnswerOption) (bool, error) {
	if option == nil || option.QuestionID == "" || option.Position < 1 {
		return false, fmt.Errorf("answer option needs a question id and a positive position")
	}
	row := toModelAnswerOption(option)

	query := `MERGE INTO answer_options o
	USING (SELECT :1 AS question_id, :2 AS option_no FROM dual) s
	ON (o.question_id = s.question_id AND o.option_no = s.option_no)
	WHEN NOT MATCHED THEN
		INSERT (question_id, option_no, text_ko, text_en, rationale_ko, rationale_en, is_correct)
		VALUES (:3, :4, :5, :6, :7, :8, :9)`

	result, err := a.db.ExecContext(ctx, query,
		row.QuestionID, row.OptionNo,
		row.QuestionID, row.OptionNo, row.TextKo, row.TextEn, row.RationaleKo, row.RationaleEn, row.IsCorrect)
	if err != nil {
		return false, fmt.Errorf("failed to save answer option %d of question %s: %w", row.OptionNo, row.QuestionID, err)
	}
	return inserted(result)
}

func inserted(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:        q.ID,
		TopicID:   q.TopicID,
		TextKo:    q.TextKo,
		TextEn:    q.TextEn,
		HintKo:    sql.NullString{String: q.HintKo, Valid: q.HintKo != ""},
		HintEn:    sql.NullString{String: q.HintEn, Valid: q.HintEn != ""},
		CreatedAt: q.CreatedAt,
	}
}

func toModelAnswerOption(o *domain.AnswerOption) *models.AnswerOption {
	row := &models.AnswerOption{
		QuestionID:  o.QuestionID,
		OptionNo:    o.Position,
		TextKo:      o.TextKo,
		TextEn:      o.TextEn,
		RationaleKo: sql.NullString{String: o.RationaleKo, Valid: o.RationaleKo != ""},
		RationaleEn: sql.NullString{String: o.RationaleEn, Valid: o.RationaleEn != ""},
	}
	if o.IsCorrect {
		row.IsCorrect = 1
	}
	return row
}
