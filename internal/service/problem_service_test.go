// internal/service/problem_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"leetcode_journey/internal/config"
	"leetcode_journey/internal/model"
	"leetcode_journey/internal/repository"
	"leetcode_journey/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testConfig = &config.Config{App: config.AppConfig{ReviewLimit: 10}}

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB(config.DatabaseConfig{Driver: config.DriverSQLite, URL: dsn}, testLogger)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func fixedClock(day string) func() time.Time {
	return func() time.Time {
		tm, _ := time.Parse(model.DateLayout, day)
		return tm.Add(10 * time.Hour)
	}
}

func newTestService(db *gorm.DB, repo repository.ProblemRepository, day string) *problemService {
	s := NewProblemService(db, repo, testConfig).(*problemService)
	s.now = fixedClock(day)
	return s
}

func logReq(number, difficulty string) *model.LogRequest {
	return &model.LogRequest{
		ProblemNumber: number,
		Name:          "Problem " + number,
		URL:           "https://leetcode.com/problems/p" + number + "/",
		Difficulty:    difficulty,
		Topic:         "Array, Hash Table",
		Notes:         "note",
	}
}

// 実リポジトリ + sqlite で記録の流れを確認する
func Test_problemService_LogProblem_Flow(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormProblemRepository()
	svc := newTestService(db, repo, "2025-01-30")

	t.Run("正常系: 最初の1件", func(t *testing.T) {
		resp, err := svc.LogProblem(ctx, logReq("1", "Easy"))
		require.NoError(t, err)
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "First problem logged successfully.", resp.Message)
		assert.Equal(t, "2025-02-13", resp.NextReview)
		assert.Equal(t, 1, resp.ReviewCount)
	})

	t.Run("正常系: 2件目以降の新規", func(t *testing.T) {
		resp, err := svc.LogProblem(ctx, logReq("2", "medium"))
		require.NoError(t, err)
		assert.Equal(t, "New problem logged successfully.", resp.Message)
		assert.Equal(t, "2025-02-06", resp.NextReview)

		p, err := repo.FindByNumber(ctx, db, "2")
		require.NoError(t, err)
		assert.Equal(t, model.Medium, p.Difficulty)
		assert.Equal(t, 1, p.ReviewCount)
		assert.Equal(t, "2025-01-30", p.ReviewHistory)
	})

	t.Run("正常系: 復習の記録は回数と履歴を進める", func(t *testing.T) {
		svc.now = fixedClock("2025-02-13")
		req := logReq("1", "Easy")
		req.Notes = "second pass"
		resp, err := svc.LogProblem(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Problem #1 review logged! Review count: 2, Next review: 2025-03-20", resp.Message)
		assert.Equal(t, 2, resp.ReviewCount)

		p, err := repo.FindByNumber(ctx, db, "1")
		require.NoError(t, err)
		assert.Equal(t, 2, p.ReviewCount)
		assert.Equal(t, "2025-01-30; 2025-02-13", p.ReviewHistory)
		assert.Equal(t, "2025-02-13", p.LastReviewedOn)
		assert.Equal(t, "2025-02-13", p.LoggedOn)
		assert.Equal(t, "2025-03-20", p.NextReviewOn)
		assert.Equal(t, "second pass", p.Notes)
	})

	t.Run("正常系: 難易度の変更は次の間隔に反映される", func(t *testing.T) {
		svc.now = fixedClock("2025-02-06")
		resp, err := svc.LogProblem(ctx, logReq("2", "Hard"))
		require.NoError(t, err)
		// Hard, 記録済み1回: round(3 * 2.5) = 8
		assert.Equal(t, "2025-02-14", resp.NextReview)
	})

	all, err := repo.FindAll(ctx, db)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func Test_problemService_LogProblem_Errors(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	dbErr := errors.New("database is locked")

	tests := []struct {
		name      string
		req       *model.LogRequest
		setupMock func(m *mocks.ProblemRepository)
		wantErr   error
		wantCode  string
	}{
		{
			name:     "異常系: 難易度が不正",
			req:      logReq("1", "Extreme"),
			wantErr:  model.ErrInvalidInput,
			wantCode: "VALIDATION_ERROR",
		},
		{
			name: "異常系: 件数取得でDBエラー",
			req:  logReq("1", "Easy"),
			setupMock: func(m *mocks.ProblemRepository) {
				m.On("Count", ctx, mock.Anything).Return(int64(0), dbErr).Once()
			},
			wantErr:  model.ErrInternalServer,
			wantCode: "INTERNAL_SERVER_ERROR",
		},
		{
			name: "異常系: 検索でDBエラー",
			req:  logReq("1", "Easy"),
			setupMock: func(m *mocks.ProblemRepository) {
				m.On("Count", ctx, mock.Anything).Return(int64(3), nil).Once()
				m.On("FindByNumber", ctx, mock.Anything, "1").Return(nil, dbErr).Once()
			},
			wantErr:  model.ErrInternalServer,
			wantCode: "INTERNAL_SERVER_ERROR",
		},
		{
			name: "異常系: 同時登録による重複",
			req:  logReq("1", "Easy"),
			setupMock: func(m *mocks.ProblemRepository) {
				m.On("Count", ctx, mock.Anything).Return(int64(3), nil).Once()
				m.On("FindByNumber", ctx, mock.Anything, "1").Return(nil, model.ErrNotFound).Once()
				m.On("Create", ctx, mock.Anything, mock.AnythingOfType("*model.Problem")).Return(model.ErrConflict).Once()
			},
			wantErr:  model.ErrConflict,
			wantCode: "CONFLICT",
		},
		{
			name: "異常系: 更新でDBエラー",
			req:  logReq("1", "Easy"),
			setupMock: func(m *mocks.ProblemRepository) {
				m.On("Count", ctx, mock.Anything).Return(int64(3), nil).Once()
				m.On("FindByNumber", ctx, mock.Anything, "1").
					Return(&model.Problem{ProblemID: uuid.New(), Number: "1", ReviewCount: 1, ReviewHistory: "2025-01-01"}, nil).Once()
				m.On("Update", ctx, mock.Anything, mock.AnythingOfType("*model.Problem")).Return(dbErr).Once()
			},
			wantErr:  model.ErrInternalServer,
			wantCode: "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks.NewProblemRepository(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}
			svc := newTestService(db, m, "2025-01-30")

			resp, err := svc.LogProblem(ctx, tt.req)
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			if tt.wantCode == "INTERNAL_SERVER_ERROR" {
				assert.Equal(t, "An internal error occurred: database is locked", appErr.Message)
			}
		})
	}
}

func Test_problemService_DueReviews(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	due := []*model.Problem{{Number: "42"}, {Number: "1"}}

	tests := []struct {
		name      string
		day       string
		setupMock func(m *mocks.ProblemRepository)
		wantErr   error
		wantLen   int
	}{
		{
			name: "正常系: 日付省略時は今日",
			day:  "",
			setupMock: func(m *mocks.ProblemRepository) {
				m.On("FindDue", ctx, db, "2025-01-30", 10).Return(due, nil).Once()
			},
			wantLen: 2,
		},
		{
			name: "正常系: 日付指定",
			day:  "2025-03-01",
			setupMock: func(m *mocks.ProblemRepository) {
				m.On("FindDue", ctx, db, "2025-03-01", 10).Return([]*model.Problem{}, nil).Once()
			},
			wantLen: 0,
		},
		{
			name:    "異常系: 日付の形式が不正",
			day:     "03/01/2025",
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: DBエラー",
			day:  "2025-03-01",
			setupMock: func(m *mocks.ProblemRepository) {
				m.On("FindDue", ctx, db, "2025-03-01", 10).Return(nil, errors.New("boom")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks.NewProblemRepository(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}
			svc := newTestService(db, m, "2025-01-30")

			got, err := svc.DueReviews(ctx, tt.day)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func Test_problemService_TopicStats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	t.Run("正常系: 割合は小数第1位まで", func(t *testing.T) {
		m := mocks.NewProblemRepository(t)
		m.On("Count", ctx, db).Return(int64(3), nil).Once()
		m.On("CountByTopic", ctx, db, "Array").Return(int64(2), nil).Once()
		m.On("CountByTopic", ctx, db, "Tree").Return(int64(1), nil).Once()
		m.On("CountByTopic", ctx, db, mock.AnythingOfType("string")).Return(int64(0), nil)
		svc := newTestService(db, m, "2025-01-30")

		stats, err := svc.TopicStats(ctx)
		require.NoError(t, err)
		require.Len(t, stats, len(model.TopicList))

		byTopic := make(map[string]*model.TopicStat, len(stats))
		for _, s := range stats {
			byTopic[s.Topic] = s
		}
		assert.Equal(t, int64(2), byTopic["Array"].Count)
		assert.Equal(t, 66.7, byTopic["Array"].Percentage)
		assert.Equal(t, 33.3, byTopic["Tree"].Percentage)
		assert.Equal(t, 0.0, byTopic["Graph"].Percentage)
		assert.Equal(t, "Array", stats[0].Topic)
	})

	t.Run("正常系: 0件なら割合も0", func(t *testing.T) {
		m := mocks.NewProblemRepository(t)
		m.On("Count", ctx, db).Return(int64(0), nil).Once()
		m.On("CountByTopic", ctx, db, mock.AnythingOfType("string")).Return(int64(0), nil)
		svc := newTestService(db, m, "2025-01-30")

		stats, err := svc.TopicStats(ctx)
		require.NoError(t, err)
		for _, s := range stats {
			assert.Zero(t, s.Percentage)
		}
	})

	t.Run("異常系: トピック集計でDBエラー", func(t *testing.T) {
		m := mocks.NewProblemRepository(t)
		m.On("Count", ctx, db).Return(int64(3), nil).Once()
		m.On("CountByTopic", ctx, db, "Array").Return(int64(0), errors.New("boom")).Once()
		svc := newTestService(db, m, "2025-01-30")

		_, err := svc.TopicStats(ctx)
		assert.ErrorIs(t, err, model.ErrInternalServer)
	})
}

func Test_problemService_Summary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	t.Run("正常系", func(t *testing.T) {
		m := mocks.NewProblemRepository(t)
		byDiff := map[model.Difficulty]int64{model.Easy: 2, model.Medium: 1, model.Hard: 0}
		m.On("Count", ctx, db).Return(int64(3), nil).Once()
		m.On("CountByDifficulty", ctx, db).Return(byDiff, nil).Once()
		m.On("CountDue", ctx, db, "2025-01-30").Return(int64(1), nil).Once()
		m.On("CountOverdue", ctx, db, "2025-01-30").Return(int64(1), nil).Once()
		m.On("CountDueBetween", ctx, db, "2025-01-30", "2025-02-06").Return(int64(2), nil).Once()
		m.On("CountLoggedBetween", ctx, db, "2025-01-01", "2025-01-31").Return(int64(3), nil).Once()
		m.On("SumReviewCount", ctx, db).Return(int64(5), nil).Once()
		svc := newTestService(db, m, "2025-01-30")

		got, err := svc.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, &model.SummaryResponse{
			TotalProblems: 3,
			ByDifficulty:  byDiff,
			DueToday:      1,
			Overdue:       1,
			DueThisWeek:   2,
			LoggedMonth:   3,
			TotalReviews:  5,
			AvgReviews:    1.7,
			Date:          "2025-01-30",
		}, got)
	})

	t.Run("正常系: 2月の月末と0件の平均", func(t *testing.T) {
		m := mocks.NewProblemRepository(t)
		m.On("Count", ctx, db).Return(int64(0), nil).Once()
		m.On("CountByDifficulty", ctx, db).Return(map[model.Difficulty]int64{}, nil).Once()
		m.On("CountDue", ctx, db, "2024-02-10").Return(int64(0), nil).Once()
		m.On("CountOverdue", ctx, db, "2024-02-10").Return(int64(0), nil).Once()
		m.On("CountDueBetween", ctx, db, "2024-02-10", "2024-02-17").Return(int64(0), nil).Once()
		m.On("CountLoggedBetween", ctx, db, "2024-02-01", "2024-02-29").Return(int64(0), nil).Once()
		m.On("SumReviewCount", ctx, db).Return(int64(0), nil).Once()
		svc := newTestService(db, m, "2024-02-10")

		got, err := svc.Summary(ctx)
		require.NoError(t, err)
		assert.Zero(t, got.AvgReviews)
	})

	t.Run("異常系: 期限切れ集計でDBエラー", func(t *testing.T) {
		m := mocks.NewProblemRepository(t)
		m.On("Count", ctx, db).Return(int64(3), nil).Once()
		m.On("CountByDifficulty", ctx, db).Return(map[model.Difficulty]int64{}, nil).Once()
		m.On("CountDue", ctx, db, "2025-01-30").Return(int64(1), nil).Once()
		m.On("CountOverdue", ctx, db, "2025-01-30").Return(int64(0), errors.New("boom")).Once()
		svc := newTestService(db, m, "2025-01-30")

		_, err := svc.Summary(ctx)
		assert.ErrorIs(t, err, model.ErrInternalServer)
	})

	t.Run("異常系: DBエラー", func(t *testing.T) {
		m := mocks.NewProblemRepository(t)
		m.On("Count", ctx, db).Return(int64(3), nil).Once()
		m.On("CountByDifficulty", ctx, db).Return(nil, errors.New("boom")).Once()
		svc := newTestService(db, m, "2025-01-30")

		got, err := svc.Summary(ctx)
		assert.ErrorIs(t, err, model.ErrInternalServer)
		assert.Nil(t, got)
	})
}

func Test_problemService_ListProblems(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	m := mocks.NewProblemRepository(t)
	m.On("FindAll", ctx, db).Return([]*model.Problem{{Number: "1"}}, nil).Once()
	svc := newTestService(db, m, "2025-01-30")

	got, err := svc.ListProblems(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
