package models

import (
	"database/sql"
	"time"
)

// Topic is a row of topics.
type Topic struct {
	ID     string `db:"id"`
	NameKo string `db:"name_ko"`
	NameEn string `db:"name_en"`
}

// Question is a row of questions.
type Question struct {
	ID        string         `db:"id"`
	TopicID   string         `db:"topic_id"`
	TextKo    string         `db:"text_ko"`
	TextEn    string         `db:"text_en"`
	HintKo    sql.NullString `db:"hint_ko"`
	HintEn    sql.NullString `db:"hint_en"`
	CreatedAt time.Time      `db:"created_at"`
}

// AnswerOption is a row of answer_options. IsCorrect is stored as NUMBER(1).
type AnswerOption struct {
	QuestionID  string         `db:"question_id"`
	OptionNo    int            `db:"option_no"`
	TextKo      string         `db:"text_ko"`
	TextEn      string         `db:"text_en"`
	RationaleKo sql.NullString `db:"rationale_ko"`
	RationaleEn sql.NullString `db:"rationale_en"`
	IsCorrect   int            `db:"is_correct"`
}

// QuestionContent is a question joined with its topic names.
type QuestionContent struct {
	ID          string         `db:"id"`
	TopicID     string         `db:"topic_id"`
	TextKo      string         `db:"text_ko"`
	TextEn      string         `db:"text_en"`
	HintKo      sql.NullString `db:"hint_ko"`
	HintEn      sql.NullString `db:"hint_en"`
	TopicNameKo string         `db:"topic_name_ko"`
	TopicNameEn string         `db:"topic_name_en"`
}
