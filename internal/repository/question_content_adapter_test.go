package repository

import (
	"context"
	"errors"
	"testing"

	"cs-quiz/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selectContentsPattern = `FROM questions q\s+JOIN topics t ON t.id = q.topic_id\s+WHERE q.id IN \(:1, :2, :3\)`
	selectOptionsPattern  = `FROM answer_options\s+WHERE question_id IN \(:1, :2, :3\)\s+ORDER BY question_id, option_no`
)

var (
	contentColumns = []string{"id", "topic_id", "text_ko", "text_en", "hint_ko", "hint_en", "topic_name_ko", "topic_name_en"}
	optionColumns  = []string{"question_id", "option_no", "text_ko", "text_en", "rationale_ko", "rationale_en", "is_correct"}
)

func TestGetQuestionContents(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionContentDatabaseAdapter(db)

	mock.ExpectQuery(selectContentsPattern).
		WithArgs("db001", "missing", "al001").
		WillReturnRows(sqlmock.NewRows(contentColumns).
			AddRow("al001", "algorithm", "퀵 정렬", "Quick sort", nil, "Divide and conquer", "알고리즘", "Algorithm").
			AddRow("db001", "database", "정규화", "Normalization", "설계 원칙", "Design principle", "데이터베이스", "Database"))
	mock.ExpectQuery(selectOptionsPattern).
		WithArgs("db001", "missing", "al001").
		WillReturnRows(sqlmock.NewRows(optionColumns).
			AddRow("db001", 1, "참", "True", "중복을 줄인다.", "Reduces redundancy.", 1).
			AddRow("db001", 2, "거짓", "False", nil, nil, 0))

	contents, err := repo.GetQuestionContents(context.Background(), []string{"db001", "missing", "al001"})

	require.NoError(t, err)
	require.Len(t, contents, 2)

	al := contents[0]
	assert.Equal(t, "al001", al.ID)
	assert.Equal(t, "Divide and conquer", al.HintEn)
	assert.Empty(t, al.HintKo)
	assert.Equal(t, domain.Topic{ID: "algorithm", NameKo: "알고리즘", NameEn: "Algorithm"}, al.Topic)
	assert.Empty(t, al.AnswerOptions)

	db1 := contents[1]
	assert.Equal(t, "정규화", db1.TextKo)
	assert.Equal(t, []domain.AnswerOption{
		{QuestionID: "db001", Position: 1, TextKo: "참", TextEn: "True", RationaleKo: "중복을 줄인다.", RationaleEn: "Reduces redundancy.", IsCorrect: true},
		{QuestionID: "db001", Position: 2, TextKo: "거짓", TextEn: "False"},
	}, db1.AnswerOptions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionContents_NoIDs(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionContentDatabaseAdapter(db)

	contents, err := repo.GetQuestionContents(context.Background(), nil)

	assert.NoError(t, err)
	assert.Nil(t, contents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionContents_NoMatches(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionContentDatabaseAdapter(db)

	mock.ExpectQuery(`WHERE q.id IN \(:1\)`).
		WithArgs("gone").
		WillReturnRows(sqlmock.NewRows(contentColumns))

	contents, err := repo.GetQuestionContents(context.Background(), []string{"gone"})

	assert.NoError(t, err)
	assert.Empty(t, contents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionContents_Errors(t *testing.T) {
	dbErr := errors.New("ORA-00942: table or view does not exist")

	t.Run("questions query fails", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionContentDatabaseAdapter(db)
		mock.ExpectQuery(`FROM questions q`).WillReturnError(dbErr)

		_, err := repo.GetQuestionContents(context.Background(), []string{"db001"})

		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("options query fails", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionContentDatabaseAdapter(db)
		mock.ExpectQuery(`FROM questions q`).
			WillReturnRows(sqlmock.NewRows(contentColumns).AddRow("db001", "database", "정규화", "Normalization", nil, nil, "데이터베이스", "Database"))
		mock.ExpectQuery(`FROM answer_options`).WillReturnError(dbErr)

		_, err := repo.GetQuestionContents(context.Background(), []string{"db001"})

		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("too many ids", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionContentDatabaseAdapter(db)

		_, err := repo.GetQuestionContents(context.Background(), make([]string, maxInListSize+1))

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
