package service

import (
	"context"
	"strings"
	"time"

	"cs-quiz/internal/domain"
	"cs-quiz/internal/dto"
	"cs-quiz/internal/logger"

	"go.uber.org/zap"
)

// Supported content languages. Anything else falls back to LangKo.
const (
	LangKo = "ko"
	LangEn = "en"
)

// DailyQuestionsService serves a daily set as full, localized questions.
type DailyQuestionsService interface {
	GetDailyQuestions(ctx context.Context, date time.Time, lang string) (*dto.DailyQuestionsResponse, error)
	GetTodayDailyQuestions(ctx context.Context, lang string) (*dto.DailyQuestionsResponse, error)
}

type dailyQuestionsService struct {
	sets    DailySetService
	content domain.QuestionContentRepository
}

// NewDailyQuestionsService creates a new instance of dailyQuestionsService
func NewDailyQuestionsService(sets DailySetService, content domain.QuestionContentRepository) DailyQuestionsService {
	return &dailyQuestionsService{sets: sets, content: content}
}

// GetDailyQuestions implements DailyQuestionsService
func (s *dailyQuestionsService) GetDailyQuestions(ctx context.Context, date time.Time, lang string) (*dto.DailyQuestionsResponse, error) {
	set, err := s.sets.GetDailySet(ctx, date)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, set, lang)
}

// GetTodayDailyQuestions implements DailyQuestionsService
func (s *dailyQuestionsService) GetTodayDailyQuestions(ctx context.Context, lang string) (*dto.DailyQuestionsResponse, error) {
	set, err := s.sets.GetTodayDailySet(ctx)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, set, lang)
}

// expand loads the set's questions and keeps the set order. IDs whose
// question no longer exists are skipped.
func (s *dailyQuestionsService) expand(ctx context.Context, set *dto.DailySetResponse, lang string) (*dto.DailyQuestionsResponse, error) {
	lang = normalizeLang(lang)

	contents, err := s.content.GetQuestionContents(ctx, set.QuestionIDs)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load daily set questions", err)
	}
	byID := make(map[string]*domain.QuestionContent, len(contents))
	for i := range contents {
		byID[contents[i].ID] = &contents[i]
	}

	questions := make([]dto.DailyQuestion, 0, len(set.QuestionIDs))
	var missing []string
	for _, id := range set.QuestionIDs {
		content, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		questions = append(questions, localizeQuestion(content, lang))
	}
	if len(missing) > 0 {
		logger.Get().Warn("Daily set references missing questions",
			zap.String("set_id", set.ID), zap.String("date", set.Date), zap.Strings("question_ids", missing))
	}

	return &dto.DailyQuestionsResponse{
		DailySetID: set.ID,
		Date:       set.Date,
		Lang:       lang,
		Questions:  questions,
	}, nil
}

func normalizeLang(lang string) string {
	if strings.EqualFold(strings.TrimSpace(lang), LangEn) {
		return LangEn
	}
	return LangKo
}

func localizeQuestion(q *domain.QuestionContent, lang string) dto.DailyQuestion {
	pick := func(ko, en string) string {
		if lang == LangEn {
			return en
		}
		return ko
	}

	options := make([]dto.AnswerOption, len(q.AnswerOptions))
	for i, o := range q.AnswerOptions {
		options[i] = dto.AnswerOption{
			Text:      pick(o.TextKo, o.TextEn),
			Rationale: pick(o.RationaleKo, o.RationaleEn),
			IsCorrect: o.IsCorrect,
		}
	}

	return dto.DailyQuestion{
		ID:            q.ID,
		TopicID:       q.TopicID,
		TopicName:     pick(q.Topic.NameKo, q.Topic.NameEn),
		Question:      pick(q.TextKo, q.TextEn),
		Hint:          pick(q.HintKo, q.HintEn),
		AnswerOptions: options,
	}
}
