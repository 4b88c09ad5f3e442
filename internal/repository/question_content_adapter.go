package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cs-quiz/internal/domain"
	"cs-quiz/internal/repository/models"
)

// maxInListSize is Oracle's limit on expressions in an IN list (ORA-01795).
const maxInListSize = 1000

// QuestionContentDatabaseAdapter implements domain.QuestionContentRepository using sqlx.
type QuestionContentDatabaseAdapter struct {
	db DBTX
}

// NewQuestionContentDatabaseAdapter creates a new instance of QuestionContentDatabaseAdapter
func NewQuestionContentDatabaseAdapter(db DBTX) domain.QuestionContentRepository {
	return &QuestionContentDatabaseAdapter{db: db}
}

// GetQuestionContents implements domain.QuestionContentRepository
func (a *QuestionContentDatabaseAdapter) GetQuestionContents(ctx context.Context, ids []string) ([]domain.QuestionContent, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > maxInListSize {
		return nil, fmt.Errorf("cannot load %d questions at once, limit is %d", len(ids), maxInListSize)
	}

	binds, args := inList(ids)

	var rows []models.QuestionContent
	query := `SELECT q.id "id", q.topic_id "topic_id", q.text_ko "text_ko", q.text_en "text_en",
		q.hint_ko "hint_ko", q.hint_en "hint_en", t.name_ko "topic_name_ko", t.name_en "topic_name_en"
	FROM questions q
	JOIN topics t ON t.id = q.topic_id
	WHERE q.id IN (` + binds + `)`
	if err := a.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get question contents: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var options []models.AnswerOption
	optionsQuery := `SELECT question_id "question_id", option_no "option_no", text_ko "text_ko", text_en "text_en",
		rationale_ko "rationale_ko", rationale_en "rationale_en", is_correct "is_correct"
	FROM answer_options
	WHERE question_id IN (` + binds + `)
	ORDER BY question_id, option_no`
	if err := a.db.SelectContext(ctx, &options, optionsQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to get answer options: %w", err)
	}

	byQuestion := make(map[string][]domain.AnswerOption, len(rows))
	for _, o := range options {
		byQuestion[o.QuestionID] = append(byQuestion[o.QuestionID], toDomainAnswerOption(o))
	}

	contents := make([]domain.QuestionContent, len(rows))
	for i, row := range rows {
		contents[i] = domain.QuestionContent{
			Question: domain.Question{
				ID:      row.ID,
				TopicID: row.TopicID,
				TextKo:  row.TextKo,
				TextEn:  row.TextEn,
				HintKo:  row.HintKo.String,
				HintEn:  row.HintEn.String,
			},
			Topic:         domain.Topic{ID: row.TopicID, NameKo: row.TopicNameKo, NameEn: row.TopicNameEn},
			AnswerOptions: byQuestion[row.ID],
		}
	}
	return contents, nil
}

// inList builds positional binds ":1, :2, ..." for values.
func inList(values []string) (string, []interface{}) {
	binds := make([]string, len(values))
	args := make([]interface{}, len(values))
	for i, v := range values {
		binds[i] = ":" + strconv.Itoa(i+1)
		args[i] = v
	}
	return strings.Join(binds, ", "), args
}

func toDomainAnswerOption(o models.AnswerOption) domain.AnswerOption {
	return domain.AnswerOption{
		QuestionID:  o.QuestionID,
		Position:    o.OptionNo,
		TextKo:      o.TextKo,
		TextEn:      o.TextEn,
		RationaleKo: o.RationaleKo.String,
		RationaleEn: o.RationaleEn.String,
		IsCorrect:   o.IsCorrect != 0,
	}
}
