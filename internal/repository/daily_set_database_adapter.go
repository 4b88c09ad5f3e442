package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cs-quiz/internal/domain"
	"cs-quiz/internal/repository/models"
	"cs-quiz/internal/util"
)

// DailySetDatabaseAdapter implements domain.DailySetRepository using sqlx.
// Uniqueness per date comes from the unique constraint on set_date.
type DailySetDatabaseAdapter struct {
	db DBTX
}

// NewDailySetDatabaseAdapter creates a new instance of DailySetDatabaseAdapter
func NewDailySetDatabaseAdapter(db DBTX) domain.DailySetRepository {
	return &DailySetDatabaseAdapter{db: db}
}

// GetDailySetByDate implements domain.DailySetRepository
func (a *DailySetDatabaseAdapter) GetDailySetByDate(ctx context.Context, date time.Time) (*domain.DailySet, error) {
	var row models.DailyQuestionSet
	query := `SELECT
		id "id",
		set_date "set_date",
		question_ids "question_ids",
		created_at "created_at"
	FROM daily_question_sets
	WHERE set_date = :1`

	err := a.db.GetContext(ctx, &row, query, util.NormalizeDate(date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily set for %s: %w", util.FormatDate(date), err)
	}
	return toDomainDailySet(&row), nil
}

// SaveDailySet implements domain.DailySetRepository. A conflicting insert for
// the same date is reported as domain.ErrDailySetExists.
func (a *DailySetDatabaseAdapter) SaveDailySet(ctx context.Context, set *domain.DailySet) error {
	if set == nil {
		return fmt.Errorf("cannot save nil daily set")
	}
	row := toModelDailySet(set)
	if row.ID == "" {
		row.ID = util.NewULID()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO daily_question_sets (
		id, set_date, question_ids, created_at
	) VALUES (
		:1, :2, :3, :4
	)`

	_, err := a.db.ExecContext(ctx, query, row.ID, row.SetDate, row.QuestionIDs, row.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDailySetExists
		}
		return fmt.Errorf("failed to save daily set for %s: %w", util.FormatDate(row.SetDate), err)
	}

	set.ID = row.ID
	set.Date = row.SetDate
	set.CreatedAt = row.CreatedAt
	return nil
}

func toDomainDailySet(row *models.DailyQuestionSet) *domain.DailySet {
	ids := make([]string, len(row.QuestionIDs))
	copy(ids, row.QuestionIDs)
	return &domain.DailySet{
		ID:          row.ID,
		Date:        util.NormalizeDate(row.SetDate),
		QuestionIDs: ids,
		CreatedAt:   row.CreatedAt,
	}
}

func toModelDailySet(set *domain.DailySet) *models.DailyQuestionSet {
	return &models.DailyQuestionSet{
		ID:          set.ID,
		SetDate:     util.NormalizeDate(set.Date),
		QuestionIDs: models.StringSlice(set.QuestionIDs),
		CreatedAt:   set.CreatedAt,
	}
}
