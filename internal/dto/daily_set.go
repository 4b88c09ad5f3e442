package dto

// DailySetResponse represents a daily question set in the API response
// @Description Daily question set shared by every user on a calendar date
type DailySetResponse struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	QuestionIDs []string `json:"question_ids"`
	Count       int      `json:"count"`
}

// DailyQuestionsResponse is a daily set expanded into questions in one language
// @Description Daily set questions in set order, localized to the requested language
type DailyQuestionsResponse struct {
	DailySetID string          `json:"daily_set_id"`
	Date       string          `json:"date"`
	Lang       string          `json:"lang"`
	Questions  []DailyQuestion `json:"questions"`
}

// DailyQuestion is one localized question of a daily set
type DailyQuestion struct {
	ID            string         `json:"id"`
	TopicID       string         `json:"topic_id"`
	TopicName     string         `json:"topic_name"`
	Question      string         `json:"question"`
	Hint          string         `json:"hint,omitempty"`
	AnswerOptions []AnswerOption `json:"answer_options"`
}

// AnswerOption is one localized answer option
type AnswerOption struct {
	Text      string `json:"text"`
	Rationale string `json:"rationale,omitempty"`
	IsCorrect bool   `json:"is_correct"`
}

// PregenerateStatus is the outcome of pre-generating a single date.
type PregenerateStatus string

const (
	PregenerateCreated PregenerateStatus = "created"
	PregenerateExists  PregenerateStatus = "exists"
	PregenerateError   PregenerateStatus = "error"
)

// PregenerateResult reports what happened for one date.
type PregenerateResult struct {
	Date   string            `json:"date"`
	Status PregenerateStatus `json:"status"`
	SetID  string            `json:"set_id,omitempty"`
	Count  int               `json:"count,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// PregenerateSummary aggregates per-date results of a pre-generation run.
type PregenerateSummary struct {
	Results []PregenerateResult `json:"results"`
	Created int                 `json:"created"`
	Exists  int                 `json:"exists"`
	Errors  int                 `json:"errors"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}
