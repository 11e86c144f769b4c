//go:generate mockery --name ProblemService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"leetcode_journey/internal/config"
	"leetcode_journey/internal/middleware"
	"leetcode_journey/internal/model"
	"leetcode_journey/internal/repository"
	"leetcode_journey/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	msgFirstProblem = "First problem logged successfully."
	msgNewProblem   = "New problem logged successfully."
)

type ProblemService interface {
	LogProblem(ctx context.Context, req *model.LogRequest) (*model.LogResponse, error)
	ListProblems(ctx context.Context) ([]*model.Problem, error)
	DueReviews(ctx context.Context, day string) ([]*model.Problem, error)
	TopicStats(ctx context.Context) ([]*model.TopicStat, error)
	Summary(ctx context.Context) (*model.SummaryResponse, error)
}

type problemService struct {
	db   *gorm.DB
	repo repository.ProblemRepository
	cfg  *config.Config
	now  func() time.Time
}

func NewProblemService(db *gorm.DB, repo repository.ProblemRepository, cfg *config.Config) ProblemService {
	return &problemService{
		db:   db,
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
}

// internalError はストレージ起因の失敗をクライアント向けメッセージ付きで包む
func internalError(err error) *model.AppError {
	return model.NewAppError(
		"INTERNAL_SERVER_ERROR",
		"An internal error occurred: "+err.Error(),
		"",
		fmt.Errorf("%w: %w", model.ErrInternalServer, err),
	)
}

// LogProblem は問題を記録し、次回の復習日を計算します。
// 既に記録済みの問題番号なら復習として扱い、回数と履歴を更新する。
func (s *problemService) LogProblem(ctx context.Context, req *model.LogRequest) (*model.LogResponse, error) {
	logger := middleware.GetLogger(ctx).With("problem_number", req.ProblemNumber)

	difficulty, err := model.ParseDifficulty(req.Difficulty)
	if err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "difficulty must be one of [Easy Medium Hard].", "difficulty", err)
	}

	today := s.now()
	todayStr := today.Format(model.DateLayout)

	var resp *model.LogResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		total, err := s.repo.Count(ctx, tx)
		if err != nil {
			logger.Error("Failed to count problems", "error", err)
			return internalError(err)
		}

		existing, err := s.repo.FindByNumber(ctx, tx, req.ProblemNumber)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to find problem", "error", err)
			return internalError(err)
		}

		if existing == nil {
			// --- 新規 ---
			next, err := schedule.NextReviewDate(today, difficulty, 0)
			if err != nil {
				return internalError(err)
			}
			problem := &model.Problem{
				ProblemID:      uuid.New(),
				Number:         req.ProblemNumber,
				Name:           req.Name,
				URL:            req.URL,
				Difficulty:     difficulty,
				Topics:         req.Topic,
				LoggedOn:       todayStr,
				NextReviewOn:   next.Format(model.DateLayout),
				ReviewCount:    1,
				LastReviewedOn: todayStr,
				ReviewHistory:  todayStr,
				Notes:          req.Notes,
			}
			if err := s.repo.Create(ctx, tx, problem); err != nil {
				if errors.Is(err, model.ErrConflict) {
					return model.NewAppError("CONFLICT", fmt.Sprintf("Problem #%s was logged concurrently, please retry.", req.ProblemNumber), "problem_number", err)
				}
				logger.Error("Failed to create problem", "error", err)
				return internalError(err)
			}

			msg := msgNewProblem
			if total == 0 {
				msg = msgFirstProblem
			}
			logger.Info("New problem logged", "next_review", problem.NextReviewOn)
			resp = &model.LogResponse{
				Status:      "success",
				Message:     msg,
				NextReview:  problem.NextReviewOn,
				ReviewCount: problem.ReviewCount,
			}
			return nil
		}

		// --- 復習 ---
		// 間隔は記録済みの回数から求め、そのあと回数を進める
		next, err := schedule.NextReviewDate(today, difficulty, existing.ReviewCount)
		if err != nil {
			return internalError(err)
		}
		existing.Name = req.Name
		existing.URL = req.URL
		existing.Difficulty = difficulty
		existing.Topics = req.Topic
		existing.Notes = req.Notes
		existing.LoggedOn = todayStr
		existing.LastReviewedOn = todayStr
		existing.NextReviewOn = next.Format(model.DateLayout)
		existing.ReviewCount++
		if existing.ReviewHistory == "" {
			existing.ReviewHistory = todayStr
		} else {
			existing.ReviewHistory += model.HistorySeparator + todayStr
		}

		if err := s.repo.Update(ctx, tx, existing); err != nil {
			logger.Error("Failed to update problem", "error", err)
			return internalError(err)
		}

		logger.Info("Review logged", "review_count", existing.ReviewCount, "next_review", existing.NextReviewOn)
		resp = &model.LogResponse{
			Status: "success",
			Message: fmt.Sprintf("Problem #%s review logged! Review count: %d, Next review: %s",
				existing.Number, existing.ReviewCount, existing.NextReviewOn),
			NextReview:  existing.NextReviewOn,
			ReviewCount: existing.ReviewCount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *problemService) ListProblems(ctx context.Context) ([]*model.Problem, error) {
	problems, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list problems", "error", err)
		return nil, internalError(err)
	}
	return problems, nil
}

// DueReviews は day (YYYY-MM-DD、空なら今日) までに復習日が来ている問題を返します
func (s *problemService) DueReviews(ctx context.Context, day string) ([]*model.Problem, error) {
	logger := middleware.GetLogger(ctx)

	if day == "" {
		day = s.now().Format(model.DateLayout)
	} else if _, err := time.Parse(model.DateLayout, day); err != nil {
		return nil, model.NewAppError("INVALID_DATE", "date must be in YYYY-MM-DD format.", "date",
			fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	}

	problems, err := s.repo.FindDue(ctx, s.db, day, s.cfg.App.ReviewLimit)
	if err != nil {
		logger.Error("Failed to find due problems", "error", err, "day", day)
		return nil, internalError(err)
	}
	logger.Info("Retrieved due reviews", "day", day, "count", len(problems))
	return problems, nil
}

// TopicStats はトピック一覧の各トピックについて、該当する問題数と全体に対する割合(%)を返します
func (s *problemService) TopicStats(ctx context.Context) ([]*model.TopicStat, error) {
	logger := middleware.GetLogger(ctx)

	total, err := s.repo.Count(ctx, s.db)
	if err != nil {
		logger.Error("Failed to count problems", "error", err)
		return nil, internalError(err)
	}

	stats := make([]*model.TopicStat, 0, len(model.TopicList))
	for _, topic := range model.TopicList {
		count, err := s.repo.CountByTopic(ctx, s.db, topic)
		if err != nil {
			logger.Error("Failed to count topic", "error", err, "topic", topic)
			return nil, internalError(err)
		}
		stats = append(stats, &model.TopicStat{
			Topic:      topic,
			Count:      count,
			Percentage: percentage(count, total),
		})
	}
	return stats, nil
}

// Summary はダッシュボードの数値を返します。
// 今週は今日から7日後まで、今月は記録日が今月1日から月末までのもの。
func (s *problemService) Summary(ctx context.Context) (*model.SummaryResponse, error) {
	logger := middleware.GetLogger(ctx)
	now := s.now()
	today := now.Format(model.DateLayout)
	weekEnd := now.AddDate(0, 0, 7).Format(model.DateLayout)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	total, err := s.repo.Count(ctx, s.db)
	if err != nil {
		logger.Error("Failed to count problems", "error", err)
		return nil, internalError(err)
	}
	byDifficulty, err := s.repo.CountByDifficulty(ctx, s.db)
	if err != nil {
		logger.Error("Failed to count by difficulty", "error", err)
		return nil, internalError(err)
	}
	due, err := s.repo.CountDue(ctx, s.db, today)
	if err != nil {
		logger.Error("Failed to count due problems", "error", err)
		return nil, internalError(err)
	}
	overdue, err := s.repo.CountOverdue(ctx, s.db, today)
	if err != nil {
		logger.Error("Failed to count overdue problems", "error", err)
		return nil, internalError(err)
	}
	week, err := s.repo.CountDueBetween(ctx, s.db, today, weekEnd)
	if err != nil {
		logger.Error("Failed to count problems due this week", "error", err)
		return nil, internalError(err)
	}
	month, err := s.repo.CountLoggedBetween(ctx, s.db,
		monthStart.Format(model.DateLayout), monthEnd.Format(model.DateLayout))
	if err != nil {
		logger.Error("Failed to count problems logged this month", "error", err)
		return nil, internalError(err)
	}
	reviews, err := s.repo.SumReviewCount(ctx, s.db)
	if err != nil {
		logger.Error("Failed to sum review counts", "error", err)
		return nil, internalError(err)
	}

	return &model.SummaryResponse{
		TotalProblems: total,
		ByDifficulty:  byDifficulty,
		DueToday:      due,
		Overdue:       overdue,
		DueThisWeek:   week,
		LoggedMonth:   month,
		TotalReviews:  reviews,
		AvgReviews:    average(reviews, total),
		Date:          today,
	}, nil
}

// average は小数第1位で丸めた平均。total が 0 なら 0
func average(sum, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(total)*10) / 10
}

// percentage は小数第1位で丸めた百分率。total が 0 なら 0
func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}
