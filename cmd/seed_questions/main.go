// Package main loads topics and questions from a JSON seed file into Oracle.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"cs-quiz/cmd/seed_questions/internal/seedmodels"
	"cs-quiz/internal/config"
	"cs-quiz/internal/database"
	"cs-quiz/internal/domain"
	"cs-quiz/internal/logger"
	"cs-quiz/internal/repository"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const defaultSeedFilePath = "database/seed/questions.json"

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path to the JSON seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	topics, err := loadSeedFile(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to load seed file", zap.String("path", *seedFilePath), zap.Error(err))
	}
	log.Info("Loaded seed data", zap.String("path", *seedFilePath), zap.Int("topics", len(topics)))

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	failed := 0
	for _, topic := range topics {
		if err := seedTopic(ctx, db, log, topic); err != nil {
			log.Error("Error seeding topic, transaction rolled back", zap.String("topic", topic.ID), zap.Error(err))
			failed++
		}
	}
	if failed > 0 {
		log.Error("Seeding finished with errors", zap.Int("failed_topics", failed))
		logger.Sync()
		os.Exit(1)
	}
	log.Info("Seeding finished")
}

func loadSeedFile(path string) ([]seedmodels.SeedTopic, error) {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var topics []seedmodels.SeedTopic
	if err := json.Unmarshal(byteValue, &topics); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}
	return topics, nil
}

// seedTopic writes one topic and its questions in a single transaction.
// Rows that already exist are skipped, so reseeding is safe.
func seedTopic(ctx context.Context, db *sqlx.DB, log *zap.Logger, topic seedmodels.SeedTopic) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for topic %s: %w", topic.ID, err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("Failed to rollback transaction", zap.Error(rbErr))
			}
		} else if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("failed to commit topic %s: %w", topic.ID, cErr)
		}
	}()

	catalog := repository.NewQuestionCatalogDatabaseAdapter(tx)

	created, err := catalog.SaveTopic(ctx, &domain.Topic{ID: topic.ID, NameKo: topic.NameKo, NameEn: topic.NameEn})
	if err != nil {
		return err
	}

	insertedQuestions := 0
	for _, q := range topic.Questions {
		inserted, err := catalog.SaveQuestion(ctx, &domain.Question{
			ID:      q.ID,
			TopicID: topic.ID,
			TextKo:  q.TextKo,
			TextEn:  q.TextEn,
			HintKo:  q.HintKo,
			HintEn:  q.HintEn,
		})
		if err != nil {
			return err
		}
		if inserted {
			insertedQuestions++
		}

		for i, o := range q.AnswerOptions {
			if _, err := catalog.SaveAnswerOption(ctx, &domain.AnswerOption{
				QuestionID:  q.ID,
				Position:    i + 1,
				TextKo:      o.TextKo,
				TextEn:      o.TextEn,
				RationaleKo: o.RationaleKo,
				RationaleEn: o.RationaleEn,
				IsCorrect:   o.IsCorrect,
			}); err != nil {
				return err
			}
		}
	}

	log.Info("Seeded topic",
		zap.String("topic", topic.ID),
		zap.Bool("topic_created", created),
		zap.Int("questions_inserted", insertedQuestions),
		zap.Int("questions_skipped", len(topic.Questions)-insertedQuestions),
	)
	return nil
}
