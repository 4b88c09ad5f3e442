package domain

import (
	"context"
	"time"
)

// Topic groups questions by subject. Names are kept in both UI languages.
type Topic struct {
	ID     string
	NameKo string
	NameEn string
}

// Question is a bilingual quiz question.
type Question struct {
	ID        string
	TopicID   string
	TextKo    string
	TextEn    string
	HintKo    string
	HintEn    string
	CreatedAt time.Time
}

// AnswerOption is one selectable answer of a question. Position orders the
// options within the question, starting at 1.
type AnswerOption struct {
	QuestionID  string
	Position    int
	TextKo      string
	TextEn      string
	RationaleKo string
	RationaleEn string
	IsCorrect   bool
}

// QuestionContent is a question as shown to players: its topic and its
// answer options in position order.
type QuestionContent struct {
	Question
	Topic         Topic
	AnswerOptions []AnswerOption
}

// QuestionCatalogRepository writes topics, questions and answer options. All
// saves are idempotent and report whether a row was inserted.
type QuestionCatalogRepository interface {
	SaveTopic(ctx context.Context, topic *Topic) (bool, error)
	SaveQuestion(ctx context.Context, question *Question) (bool, error)
	SaveAnswerOption(ctx context.Context, option *AnswerOption) (bool, error)
}

// QuestionContentRepository reads full question content.
type QuestionContentRepository interface {
	// GetQuestionContents returns the questions with the given IDs in no
	// particular order. Unknown IDs are omitted.
	GetQuestionContents(ctx context.Context, ids []string) ([]QuestionContent, error)
}
