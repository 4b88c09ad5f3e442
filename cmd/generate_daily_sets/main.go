// Package main provides the CLI that pre-generates daily question sets.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"cs-quiz/internal/adapter"
	"cs-quiz/internal/cache"
	"cs-quiz/internal/config"
	"cs-quiz/internal/database"
	"cs-quiz/internal/domain"
	"cs-quiz/internal/dto"
	"cs-quiz/internal/logger"
	"cs-quiz/internal/repository"
	"cs-quiz/internal/service"
	"cs-quiz/internal/util"
	"cs-quiz/internal/validation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serviceFactory builds the service the command runs against. cleanup
// releases its connections.
type serviceFactory func(cfg *config.Config) (svc service.DailySetService, cleanup func(), err error)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(cfg, openDailySetService, time.Now)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, open serviceFactory, now func() time.Time) *cobra.Command {
	var (
		days  int
		count int
		start string
	)

	cmd := &cobra.Command{
		Use:   "generate_daily_sets",
		Short: "Pre-generate daily question sets",
		Long: `Pre-generate the daily question sets for a range of dates.

Dates that already have a stored set are left untouched, so the command is
safe to run repeatedly. The run fails if any date could not be generated.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := validation.NewValidator()
			if err := v.ValidatePregenerateRequest(days, count); err != nil {
				return err
			}

			startDate, ok, err := v.ValidateDate(start)
			if err != nil {
				return err
			}
			if !ok {
				loc, err := cfg.Location()
				if err != nil {
					return err
				}
				startDate = util.TodayIn(now(), loc)
			}

			svc, cleanup, err := open(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			summary, err := svc.PregenerateDailySets(cmd.Context(), startDate, days, count)
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), summary)
			if summary.Errors > 0 {
				return fmt.Errorf("%d of %d dates failed", summary.Errors, len(summary.Results))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 1, "Number of consecutive dates to generate")
	cmd.Flags().IntVar(&count, "count", 0, "Questions per set (0 uses daily_set.question_count)")
	cmd.Flags().StringVar(&start, "start", "", "First date to generate (YYYY-MM-DD, defaults to today)")

	return cmd
}

func printSummary(w io.Writer, summary *dto.PregenerateSummary) {
	for _, r := range summary.Results {
		switch r.Status {
		case dto.PregenerateError:
			fmt.Fprintf(w, "%s  %-7s  %s\n", r.Date, r.Status, r.Error)
		default:
			fmt.Fprintf(w, "%s  %-7s  %s (%d questions)\n", r.Date, r.Status, r.SetID, r.Count)
		}
	}
	fmt.Fprintf(w, "created=%d exists=%d errors=%d\n", summary.Created, summary.Exists, summary.Errors)
}

func openDailySetService(cfg *config.Config) (service.DailySetService, func(), error) {
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		return nil, nil, err
	}
	closers := []func() error{db.Close}

	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Get().Warn("Redis unavailable, generated sets will not be cached", zap.Error(err))
	} else {
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		closers = append(closers, redisClient.Close)
	}

	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logger.Get().Warn("Failed to close connection", zap.Error(err))
			}
		}
	}

	svc, err := service.NewDailySetService(
		repository.NewQuestionPoolDatabaseAdapter(db),
		repository.NewDailySetDatabaseAdapter(db),
		service.NewDailySetCacheService(cacheAdapter, cfg.DailySet.CacheTTL),
		cfg,
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
