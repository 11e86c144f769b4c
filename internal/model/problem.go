// internal/model/problem.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout は日付カラムの形式 (ISO 8601 の日付部分)。文字列比較で大小が決まる。
const DateLayout = "2006-01-02"

// HistorySeparator は ReviewHistory の区切り文字
const HistorySeparator = "; "

// Problem は記録された問題1件 (問題番号ごとに1行) を表します
type Problem struct {
	ProblemID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"problem_id"`
	Number         string     `gorm:"type:varchar(32);not null;uniqueIndex" json:"problem_number"`
	Name           string     `gorm:"not null" json:"name"`
	URL            string     `gorm:"not null" json:"url"`
	Difficulty     Difficulty `gorm:"type:varchar(16);not null" json:"difficulty"`
	Topics         string     `json:"topic"`
	LoggedOn       string     `gorm:"type:varchar(10);not null" json:"date"`
	NextReviewOn   string     `gorm:"type:varchar(10);not null;index" json:"next_review"`
	ReviewCount    int        `gorm:"not null;default:1" json:"review_count"`
	LastReviewedOn string     `gorm:"type:varchar(10)" json:"last_review"`
	ReviewHistory  string     `json:"review_history"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (Problem) TableName() string {
	return "problems"
}

// LogRequest は POST /log のリクエストボディ (DTO)
type LogRequest struct {
	ProblemNumber string `json:"problem_number" validate:"required,max=32"`
	Name          string `json:"name" validate:"required,max=200"`
	URL           string `json:"url" validate:"required,url"`
	Difficulty    string `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	Topic         string `json:"topic,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// LogResponse は POST /log の成功レスポンス
type LogResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	NextReview  string `json:"next_review,omitempty"`
	ReviewCount int    `json:"review_count,omitempty"`
}

// HealthResponse は GET / のレスポンス。拡張機能の接続確認に使われる
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
