package domain

import (
	"context"
	"time"
)

// DailySet is the fixed, ordered group of questions served for one calendar
// date. Date is always UTC midnight of the canonical-timezone day.
type DailySet struct {
	ID          string
	Date        time.Time
	QuestionIDs []string
	CreatedAt   time.Time
}

// QuestionRef identifies a candidate question and its topic.
type QuestionRef struct {
	ID      string
	TopicID string
}

// QuestionPoolRepository lists every question that may appear in a daily set.
type QuestionPoolRepository interface {
	ListQuestionRefs(ctx context.Context) ([]QuestionRef, error)
}

// DailySetRepository persists daily sets. Implementations must enforce one
// set per date and report a conflicting insert as ErrDailySetExists.
type DailySetRepository interface {
	// GetDailySetByDate returns nil, nil when no set exists for date.
	GetDailySetByDate(ctx context.Context, date time.Time) (*DailySet, error)
	SaveDailySet(ctx context.Context, set *DailySet) error
}
