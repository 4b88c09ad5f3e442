package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cs-quiz/internal/config"
	"cs-quiz/internal/dailyset"
	"cs-quiz/internal/domain"
	"cs-quiz/internal/dto"
	"cs-quiz/internal/logger"
	"cs-quiz/internal/util"
	"cs-quiz/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// pregenerateConcurrency bounds how many dates are generated at once.
const pregenerateConcurrency = 4

// DailySetService serves the daily question set. Today's set is generated on
// first access; other dates are only read, and are stored ahead of time by
// PregenerateDailySets.
//
// Two callers racing on a missing date both compute the same set, because
// generation is a pure function of the date and the pool. The storage unique
// constraint lets the first insert win; the loser re-reads the stored row.
type DailySetService interface {
	GetDailySet(ctx context.Context, date time.Time) (*dto.DailySetResponse, error)
	GetTodayDailySet(ctx context.Context) (*dto.DailySetResponse, error)
	PregenerateDailySets(ctx context.Context, start time.Time, days int, questionCount int) (*dto.PregenerateSummary, error)
}

type poolLoader func() ([]domain.QuestionRef, error)

type dailySetService struct {
	poolRepo domain.QuestionPoolRepository
	setRepo  domain.DailySetRepository
	setCache DailySetCacheService
	cfg      config.DailySetConfig
	strategy dailyset.Strategy
	loc      *time.Location
	now      func() time.Time
	inflight singleflight.Group
}

// NewDailySetService creates a new instance of dailySetService
func NewDailySetService(
	poolRepo domain.QuestionPoolRepository,
	setRepo domain.DailySetRepository,
	setCache DailySetCacheService,
	cfg *config.Config,
) (DailySetService, error) {
	if err := validation.NewValidator().ValidateDailySetConfig(cfg.DailySet); err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	if setCache == nil {
		setCache = noopDailySetCacheService{}
	}

	return &dailySetService{
		poolRepo: poolRepo,
		setRepo:  setRepo,
		setCache: setCache,
		cfg:      cfg.DailySet,
		strategy: parseStrategy(cfg.DailySet.Strategy),
		loc:      loc,
		now:      time.Now,
	}, nil
}

func parseStrategy(name string) dailyset.Strategy {
	switch dailyset.Strategy(name) {
	case dailyset.StrategyGlobal, "":
		return dailyset.StrategyGlobal
	case dailyset.StrategyPerTopic:
		return dailyset.StrategyPerTopic
	default:
		logger.Get().Warn("Unknown daily set strategy, falling back to global", zap.String("strategy", name))
		return dailyset.StrategyGlobal
	}
}

// GetTodayDailySet implements DailySetService
func (s *dailySetService) GetTodayDailySet(ctx context.Context) (*dto.DailySetResponse, error) {
	return s.GetDailySet(ctx, util.TodayIn(s.now(), s.loc))
}

// GetDailySet implements DailySetService
func (s *dailySetService) GetDailySet(ctx context.Context, date time.Time) (*dto.DailySetResponse, error) {
	date = util.NormalizeDate(date)

	cached, err := s.setCache.Get(ctx, date)
	if err != nil {
		logger.Get().Warn("DailySetService: cache lookup failed, falling back to storage",
			zap.String("date", util.FormatDate(date)), zap.Error(err))
	} else if cached != nil {
		return toDailySetResponse(cached), nil
	}

	generate := date.Equal(util.TodayIn(s.now(), s.loc))

	// Concurrent requests for the same date in this process share one lookup,
	// which must not fail for everyone when the first caller goes away.
	v, err, _ := s.inflight.Do(util.FormatDate(date), func() (interface{}, error) {
		sharedCtx := context.WithoutCancel(ctx)
		if !generate {
			return s.getStored(sharedCtx, date)
		}
		loader := func() ([]domain.QuestionRef, error) { return s.poolRepo.ListQuestionRefs(sharedCtx) }
		set, _, err := s.getOrCreate(sharedCtx, date, loader, s.cfg.QuestionCount)
		return set, err
	})
	if err != nil {
		return nil, err
	}
	set := v.(*domain.DailySet)

	s.cacheSet(ctx, set)
	return toDailySetResponse(set), nil
}

// PregenerateDailySets implements DailySetService. Each date is handled
// independently; a failure on one date is reported in the summary and does
// not stop the others.
func (s *dailySetService) PregenerateDailySets(ctx context.Context, start time.Time, days int, questionCount int) (*dto.PregenerateSummary, error) {
	if days <= 0 {
		return nil, domain.NewInvalidInputError("days must be positive")
	}
	if questionCount <= 0 {
		questionCount = s.cfg.QuestionCount
	}
	start = util.NormalizeDate(start)

	loader := poolLoader(sync.OnceValues(func() ([]domain.QuestionRef, error) {
		return s.poolRepo.ListQuestionRefs(ctx)
	}))

	results := make([]dto.PregenerateResult, days)
	var g errgroup.Group
	g.SetLimit(pregenerateConcurrency)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		g.Go(func() error {
			results[i] = s.pregenerateOne(ctx, date, loader, questionCount)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := &dto.PregenerateSummary{Results: results}
	for _, r := range results {
		switch r.Status {
		case dto.PregenerateCreated:
			summary.Created++
		case dto.PregenerateExists:
			summary.Exists++
		default:
			summary.Errors++
		}
	}

	logger.Get().Info("Daily set pre-generation finished",
		zap.String("start", util.FormatDate(start)),
		zap.Int("days", days),
		zap.Int("created", summary.Created),
		zap.Int("exists", summary.Exists),
		zap.Int("errors", summary.Errors),
	)
	return summary, nil
}

func (s *dailySetService) pregenerateOne(ctx context.Context, date time.Time, loader poolLoader, questionCount int) dto.PregenerateResult {
	result := dto.PregenerateResult{Date: util.FormatDate(date)}

	set, created, err := s.getOrCreate(ctx, date, loader, questionCount)
	if err != nil {
		logger.Get().Error("Failed to pre-generate daily set", zap.String("date", result.Date), zap.Error(err))
		result.Status = dto.PregenerateError
		result.Error = err.Error()
		return result
	}

	s.cacheSet(ctx, set)
	result.SetID = set.ID
	result.Count = len(set.QuestionIDs)
	if created {
		result.Status = dto.PregenerateCreated
	} else {
		result.Status = dto.PregenerateExists
	}
	return result
}

// getStored returns the stored set for date without generating one.
func (s *dailySetService) getStored(ctx context.Context, date time.Time) (*domain.DailySet, error) {
	set, err := s.setRepo.GetDailySetByDate(ctx, date)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get daily set", err)
	}
	if set == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("No daily set stored for %s", util.FormatDate(date)))
	}
	return set, nil
}

// getOrCreate returns the stored set for date, generating and storing it when
// absent. created is false when another writer stored the set first.
func (s *dailySetService) getOrCreate(ctx context.Context, date time.Time, loader poolLoader, questionCount int) (*domain.DailySet, bool, error) {
	existing, err := s.setRepo.GetDailySetByDate(ctx, date)
	if err != nil {
		return nil, false, domain.NewInternalError("Failed to get daily set", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	pool, err := loader()
	if err != nil {
		return nil, false, domain.NewInternalError("Failed to load question pool", err)
	}

	set, err := s.generate(date, pool, questionCount)
	if err != nil {
		return nil, false, err
	}

	err = s.setRepo.SaveDailySet(ctx, set)
	if errors.Is(err, domain.ErrDailySetExists) {
		logger.Get().Info("Daily set stored concurrently, using stored copy", zap.String("date", util.FormatDate(date)))
		stored, getErr := s.setRepo.GetDailySetByDate(ctx, date)
		if getErr != nil {
			return nil, false, domain.NewInternalError("Failed to re-read daily set after conflict", getErr)
		}
		if stored == nil {
			return nil, false, domain.NewInternalError("Daily set conflict reported but no set stored", err)
		}
		return stored, false, nil
	}
	if err != nil {
		return nil, false, domain.NewInternalError("Failed to save daily set", err)
	}

	logger.Get().Info("Generated daily set",
		zap.String("date", util.FormatDate(date)),
		zap.String("set_id", set.ID),
		zap.Int("pool_size", len(pool)),
		zap.Int("selected", len(set.QuestionIDs)),
		zap.String("strategy", string(s.strategy)),
	)
	return set, true, nil
}

func (s *dailySetService) generate(date time.Time, pool []domain.QuestionRef, questionCount int) (*domain.DailySet, error) {
	refs := make([]dailyset.QuestionRef, len(pool))
	for i, q := range pool {
		refs[i] = dailyset.QuestionRef{ID: q.ID, TopicID: q.TopicID}
	}

	ids, err := dailyset.Generate(date, refs, dailyset.Options{
		RequestedSize: questionCount,
		MaxPerTopic:   s.cfg.MaxPerTopic,
		Strategy:      s.strategy,
	})
	if err != nil {
		if errors.Is(err, dailyset.ErrPoolEmpty) {
			return nil, domain.NewPoolEmptyError(err)
		}
		return nil, domain.NewInternalError("Failed to generate daily set", err)
	}

	return &domain.DailySet{
		ID:          util.NewULID(),
		Date:        date,
		QuestionIDs: ids,
		CreatedAt:   s.now().UTC(),
	}, nil
}

func (s *dailySetService) cacheSet(ctx context.Context, set *domain.DailySet) {
	if err := s.setCache.Put(ctx, set); err != nil {
		logger.Get().Warn("DailySetService: failed to cache daily set",
			zap.String("date", util.FormatDate(set.Date)), zap.Error(err))
	}
}

func toDailySetResponse(set *domain.DailySet) *dto.DailySetResponse {
	ids := set.QuestionIDs
	if ids == nil {
		ids = []string{}
	}
	return &dto.DailySetResponse{
		ID:          set.ID,
		Date:        util.FormatDate(set.Date),
		QuestionIDs: ids,
		Count:       len(ids),
	}
}
