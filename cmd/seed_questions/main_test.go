package main

import (
	"context"
	"errors"
	"testing"

	"cs-quiz/cmd/seed_questions/internal/seedmodels"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var databaseTopic = seedmodels.SeedTopic{
	ID:     "database",
	NameKo: "데이터베이스",
	NameEn: "Database",
	Questions: []seedmodels.SeedQuestion{
		{
			ID: "db001", TextKo: "정규화", TextEn: "Normalization",
			AnswerOptions: []seedmodels.SeedAnswerOption{
				{TextKo: "True", TextEn: "True", IsCorrect: true},
				{TextKo: "False", TextEn: "False"},
			},
		},
		{ID: "db002", TextKo: "원자성", TextEn: "Atomicity"},
	},
}

func TestSeedTopic_Commits(t *testing.T) {
	db, mock := setupTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`MERGE INTO topics`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`MERGE INTO questions`).WithArgs("db001", "db001", "database", sqlmock.AnyArg(), sqlmock.AnyArg(), nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`MERGE INTO answer_options`).WithArgs("db001", 1, "db001", 1, "True", "True", nil, nil, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`MERGE INTO answer_options`).WithArgs("db001", 2, "db001", 2, "False", "False", nil, nil, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`MERGE INTO questions`).WithArgs("db002", "db002", "database", sqlmock.AnyArg(), sqlmock.AnyArg(), nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, seedTopic(context.Background(), db, zap.NewNop(), databaseTopic))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedTopic_RollsBackOnError(t *testing.T) {
	db, mock := setupTestDB(t)
	dbErr := errors.New("ORA-02291: integrity constraint violated")

	mock.ExpectBegin()
	mock.ExpectExec(`MERGE INTO topics`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`MERGE INTO questions`).WillReturnError(dbErr)
	mock.ExpectRollback()

	err := seedTopic(context.Background(), db, zap.NewNop(), databaseTopic)

	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeedFile(t *testing.T) {
	topics, err := loadSeedFile("../../" + defaultSeedFilePath)
	require.NoError(t, err)
	require.NotEmpty(t, topics)

	seen := make(map[string]bool)
	for _, topic := range topics {
		assert.NotEmpty(t, topic.ID)
		assert.NotEmpty(t, topic.NameKo, topic.ID)
		assert.NotEmpty(t, topic.NameEn, topic.ID)
		for _, q := range topic.Questions {
			assert.False(t, seen[q.ID], "duplicate question id %s", q.ID)
			seen[q.ID] = true
			assert.NotEmpty(t, q.TextKo, q.ID)
			assert.NotEmpty(t, q.TextEn, q.ID)
			correct := 0
			for _, o := range q.AnswerOptions {
				assert.NotEmpty(t, o.TextKo, q.ID)
				assert.NotEmpty(t, o.TextEn, q.ID)
				if o.IsCorrect {
					correct++
				}
			}
			assert.Equal(t, 1, correct, "question %s needs exactly one correct option", q.ID)
		}
	}

	_, err = loadSeedFile("missing.json")
	assert.Error(t, err)
}
