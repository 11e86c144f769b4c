//go:generate mockery --name ProblemRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"leetcode_journey/internal/middleware"
	"leetcode_journey/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation は postgres の一意制約違反コード
const uniqueViolation = "23505"

type ProblemRepository interface {
	Create(ctx context.Context, tx *gorm.DB, problem *model.Problem) error
	FindByNumber(ctx context.Context, db *gorm.DB, number string) (*model.Problem, error)
	Update(ctx context.Context, tx *gorm.DB, problem *model.Problem) error
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Problem, error)
	FindDue(ctx context.Context, db *gorm.DB, day string, limit int) ([]*model.Problem, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	CountByDifficulty(ctx context.Context, db *gorm.DB) (map[model.Difficulty]int64, error)
	CountByTopic(ctx context.Context, db *gorm.DB, topic string) (int64, error)
	CountDue(ctx context.Context, db *gorm.DB, day string) (int64, error)
	CountOverdue(ctx context.Context, db *gorm.DB, day string) (int64, error)
	CountDueBetween(ctx context.Context, db *gorm.DB, from, to string) (int64, error)
	CountLoggedBetween(ctx context.Context, db *gorm.DB, from, to string) (int64, error)
	SumReviewCount(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormProblemRepository struct{}

func NewGormProblemRepository() ProblemRepository {
	return &gormProblemRepository{}
}

func (r *gormProblemRepository) Create(ctx context.Context, tx *gorm.DB, problem *model.Problem) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(problem)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) || (errors.As(result.Error, &pgErr) && pgErr.Code == uniqueViolation) {
			logger.Warn("Duplicate problem number on create", "problem_number", problem.Number, "error", result.Error)
			return model.ErrConflict
		}
		logger.Error("Error creating problem in DB", "error", result.Error, "problem_number", problem.Number)
		return fmt.Errorf("gormProblemRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProblemRepository) FindByNumber(ctx context.Context, db *gorm.DB, number string) (*model.Problem, error) {
	var problem model.Problem
	result := db.WithContext(ctx).Where("number = ?", number).First(&problem)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding problem by number in DB", "error", result.Error, "problem_number", number)
		return nil, fmt.Errorf("gormProblemRepository.FindByNumber: %w", result.Error)
	}
	return &problem, nil
}

func (r *gormProblemRepository) Update(ctx context.Context, tx *gorm.DB, problem *model.Problem) error {
	result := tx.WithContext(ctx).Model(problem).Select("*").Omit("problem_id", "created_at").Updates(problem)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating problem in DB", "error", result.Error, "problem_number", problem.Number)
		return fmt.Errorf("gormProblemRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormProblemRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Problem, error) {
	var problems []*model.Problem
	result := db.WithContext(ctx).Order("logged_on DESC, number ASC").Find(&problems)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error listing problems in DB", "error", result.Error)
		return nil, fmt.Errorf("gormProblemRepository.FindAll: %w", result.Error)
	}
	return problems, nil
}

// FindDue は day 以前に復習日が来ている問題を復習日の古い順に返します (day は YYYY-MM-DD)
func (r *gormProblemRepository) FindDue(ctx context.Context, db *gorm.DB, day string, limit int) ([]*model.Problem, error) {
	var problems []*model.Problem
	result := db.WithContext(ctx).
		Where("next_review_on <= ?", day).
		Order("next_review_on ASC, number ASC").
		Limit(limit).
		Find(&problems)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding due problems in DB", "error", result.Error, "day", day)
		return nil, fmt.Errorf("gormProblemRepository.FindDue: %w", result.Error)
	}
	return problems, nil
}

func (r *gormProblemRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Problem{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("gormProblemRepository.Count: %w", err)
	}
	return count, nil
}

func (r *gormProblemRepository) CountByDifficulty(ctx context.Context, db *gorm.DB) (map[model.Difficulty]int64, error) {
	var rows []struct {
		Difficulty model.Difficulty
		Count      int64
	}
	err := db.WithContext(ctx).Model(&model.Problem{}).
		Select("difficulty, COUNT(*) AS count").
		Group("difficulty").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gormProblemRepository.CountByDifficulty: %w", err)
	}

	counts := make(map[model.Difficulty]int64, len(model.Difficulties))
	for _, d := range model.Difficulties {
		counts[d] = 0
	}
	for _, row := range rows {
		counts[row.Difficulty] = row.Count
	}
	return counts, nil
}

// CountByTopic はトピック文字列に topic を含む問題数を返します (大文字小文字は区別しない。"Tree" は "Binary Tree" にも一致する)
func (r *gormProblemRepository) CountByTopic(ctx context.Context, db *gorm.DB, topic string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Problem{}).
		Where("LOWER(topics) LIKE ?", "%"+strings.ToLower(topic)+"%").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gormProblemRepository.CountByTopic: %w", err)
	}
	return count, nil
}

func (r *gormProblemRepository) CountDue(ctx context.Context, db *gorm.DB, day string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Problem{}).
		Where("next_review_on <= ?", day).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gormProblemRepository.CountDue: %w", err)
	}
	return count, nil
}

// CountOverdue は復習日が day より前の問題数
func (r *gormProblemRepository) CountOverdue(ctx context.Context, db *gorm.DB, day string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Problem{}).
		Where("next_review_on < ?", day).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gormProblemRepository.CountOverdue: %w", err)
	}
	return count, nil
}

// CountDueBetween は復習日が from 以上 to 以下の問題数
func (r *gormProblemRepository) CountDueBetween(ctx context.Context, db *gorm.DB, from, to string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Problem{}).
		Where("next_review_on BETWEEN ? AND ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gormProblemRepository.CountDueBetween: %w", err)
	}
	return count, nil
}

// CountLoggedBetween は最後に記録した日が from 以上 to 以下の問題数
func (r *gormProblemRepository) CountLoggedBetween(ctx context.Context, db *gorm.DB, from, to string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Problem{}).
		Where("logged_on BETWEEN ? AND ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gormProblemRepository.CountLoggedBetween: %w", err)
	}
	return count, nil
}

func (r *gormProblemRepository) SumReviewCount(ctx context.Context, db *gorm.DB) (int64, error) {
	var sum int64
	err := db.WithContext(ctx).Model(&model.Problem{}).
		Select("COALESCE(SUM(review_count), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("gormProblemRepository.SumReviewCount: %w", err)
	}
	return sum, nil
}
