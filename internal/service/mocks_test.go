package service

import (
	"context"
	"time"

	"cs-quiz/internal/domain"
	"cs-quiz/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionPoolRepository ---
type MockQuestionPoolRepository struct {
	mock.Mock
}

func (m *MockQuestionPoolRepository) ListQuestionRefs(ctx context.Context) ([]domain.QuestionRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuestionRef), args.Error(1)
}

// --- MockDailySetRepository ---
type MockDailySetRepository struct {
	mock.Mock
}

func (m *MockDailySetRepository) GetDailySetByDate(ctx context.Context, date time.Time) (*domain.DailySet, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySet), args.Error(1)
}

func (m *MockDailySetRepository) SaveDailySet(ctx context.Context, set *domain.DailySet) error {
	args := m.Called(ctx, set)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockQuestionContentRepository ---
type MockQuestionContentRepository struct {
	mock.Mock
}

func (m *MockQuestionContentRepository) GetQuestionContents(ctx context.Context, ids []string) ([]domain.QuestionContent, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuestionContent), args.Error(1)
}

// --- MockDailySetService ---
type MockDailySetService struct {
	mock.Mock
}

func (m *MockDailySetService) GetDailySet(ctx context.Context, date time.Time) (*dto.DailySetResponse, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DailySetResponse), args.Error(1)
}

func (m *MockDailySetService) GetTodayDailySet(ctx context.Context) (*dto.DailySetResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DailySetResponse), args.Error(1)
}

func (m *MockDailySetService) PregenerateDailySets(ctx context.Context, start time.Time, days int, questionCount int) (*dto.PregenerateSummary, error) {
	args := m.Called(ctx, start, days, questionCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PregenerateSummary), args.Error(1)
}
