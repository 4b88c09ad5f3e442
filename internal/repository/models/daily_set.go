package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a list of strings as a JSON array in a CLOB column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(bytesToParse, &out); err != nil {
		return fmt.Errorf("StringSlice Scan: %w", err)
	}
	*s = out
	return nil
}

// QuestionRef is the projection of the questions table used for daily set selection.
type QuestionRef struct {
	ID      string `db:"id"`
	TopicID string `db:"topic_id"`
}

// DailyQuestionSet is a row of daily_question_sets.
type DailyQuestionSet struct {
	ID          string      `db:"id"`
	SetDate     time.Time   `db:"set_date"`
	QuestionIDs StringSlice `db:"question_ids"`
	CreatedAt   time.Time   `db:"created_at"`
}

func (DailyQuestionSet) TableName() string {
	return "daily_question_sets"
}
