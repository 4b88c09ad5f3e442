package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cs-quiz/internal/cache"
	"cs-quiz/internal/domain"
	"cs-quiz/internal/logger"
	"cs-quiz/internal/util"

	"go.uber.org/zap"
)

// DailySetCacheService keeps stored daily sets in a read cache keyed by date.
// A set never changes once stored, so entries never need invalidation.
type DailySetCacheService interface {
	// Get returns nil, nil on a cache miss.
	Get(ctx context.Context, date time.Time) (*domain.DailySet, error)
	Put(ctx context.Context, set *domain.DailySet) error
}

type cachedDailySet struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	QuestionIDs []string  `json:"question_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

type dailySetCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewDailySetCacheService creates a cache service backed by cache. A nil
// cache yields a no-op implementation.
func NewDailySetCacheService(cache domain.Cache, ttl time.Duration) DailySetCacheService {
	if cache == nil {
		logger.Get().Warn("DailySetCacheService initialized with nil cache. Service will be no-op.")
		return noopDailySetCacheService{}
	}
	return &dailySetCacheServiceImpl{cache: cache, ttl: ttl}
}

func (s *dailySetCacheServiceImpl) Get(ctx context.Context, date time.Time) (*domain.DailySet, error) {
	key := cache.DailySetKey(date)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, nil
		}
		return nil, domain.NewInternalError("failed to read daily set from cache", err)
	}

	var entry cachedDailySet
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		logger.Get().Warn("Discarding undecodable daily set cache entry", zap.String("key", key), zap.Error(err))
		return nil, nil
	}
	entryDate, err := util.ParseDate(entry.Date)
	if err != nil {
		logger.Get().Warn("Discarding daily set cache entry with bad date", zap.String("key", key), zap.Error(err))
		return nil, nil
	}

	return &domain.DailySet{
		ID:          entry.ID,
		Date:        entryDate,
		QuestionIDs: entry.QuestionIDs,
		CreatedAt:   entry.CreatedAt,
	}, nil
}

func (s *dailySetCacheServiceImpl) Put(ctx context.Context, set *domain.DailySet) error {
	if set == nil {
		return domain.NewInvalidInputError("cannot cache nil daily set")
	}

	data, err := json.Marshal(cachedDailySet{
		ID:          set.ID,
		Date:        util.FormatDate(set.Date),
		QuestionIDs: set.QuestionIDs,
		CreatedAt:   set.CreatedAt,
	})
	if err != nil {
		return domain.NewInternalError("failed to marshal daily set for caching", err)
	}

	key := cache.DailySetKey(set.Date)
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return domain.NewInternalError("failed to write daily set to cache", err)
	}
	logger.Get().Debug("Cached daily set", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

type noopDailySetCacheService struct{}

func (noopDailySetCacheService) Get(context.Context, time.Time) (*domain.DailySet, error) {
	return nil, nil
}

func (noopDailySetCacheService) Put(context.Context, *domain.DailySet) error {
	return nil
}
