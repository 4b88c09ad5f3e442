package validation

import (
	"fmt"
	"strings"
	"time"

	"cs-quiz/internal/config"
	"cs-quiz/internal/domain"
	"cs-quiz/internal/util"
)

const (
	// MaxPregenerateDays caps a single pre-generation run.
	MaxPregenerateDays = 366
	// MaxQuestionCount caps the size of one daily set.
	MaxQuestionCount = 100
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateDate parses an optional YYYY-MM-DD value. ok is false when raw is
// blank, in which case the caller falls back to today.
func (v *Validator) ValidateDate(raw string) (date time.Time, ok bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false, nil
	}
	date, err = util.ParseDate(raw)
	if err != nil {
		return time.Time{}, false, domain.NewInvalidInputError(fmt.Sprintf("date must be formatted as YYYY-MM-DD, got %q", raw))
	}
	return date, true, nil
}

// ValidatePregenerateRequest checks the bounds of a pre-generation run. A
// count of zero means the configured default.
func (v *Validator) ValidatePregenerateRequest(days, count int) error {
	if days < 1 || days > MaxPregenerateDays {
		return domain.NewInvalidInputError(fmt.Sprintf("days must be between 1 and %d, got %d", MaxPregenerateDays, days))
	}
	if count < 0 || count > MaxQuestionCount {
		return domain.NewInvalidInputError(fmt.Sprintf("count must be between 0 and %d, got %d", MaxQuestionCount, count))
	}
	return nil
}

// ValidateDailySetConfig rejects settings that would store empty or oversized
// sets. Stored sets never change, so a bad value must fail at startup.
func (v *Validator) ValidateDailySetConfig(cfg config.DailySetConfig) error {
	if cfg.QuestionCount < 1 || cfg.QuestionCount > MaxQuestionCount {
		return fmt.Errorf("daily_set.question_count must be between 1 and %d, got %d", MaxQuestionCount, cfg.QuestionCount)
	}
	if cfg.MaxPerTopic < 1 {
		return fmt.Errorf("daily_set.max_per_topic must be positive, got %d", cfg.MaxPerTopic)
	}
	return nil
}
