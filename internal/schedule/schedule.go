// internal/schedule/schedule.go
package schedule

import (
	"fmt"
	"math"
	"time"

	"leetcode_journey/internal/model"
)

const (
	// Multiplier は復習1回ごとに間隔へ掛ける係数
	Multiplier = 2.5
	// MaxIntervalDays は間隔の上限 (1年)
	MaxIntervalDays = 365
)

// 難易度ごとの基本間隔 (日)
var baseDays = map[model.Difficulty]int{
	model.Easy:   14,
	model.Medium: 7,
	model.Hard:   3,
}

// BaseInterval は難易度の基本間隔を返します。
func BaseInterval(d model.Difficulty) (int, error) {
	base, ok := baseDays[d]
	if !ok {
		return 0, fmt.Errorf("%w: unknown difficulty %q", model.ErrInvalidInput, string(d))
	}
	return base, nil
}

// NextInterval は次の復習までの日数を計算します。
// reviewCount はこれまでの復習回数 (初回は0)。
// interval = base * 2.5^reviewCount を最も近い整数に丸め、365日で打ち止めにする。
func NextInterval(d model.Difficulty, reviewCount int) (int, error) {
	base, err := BaseInterval(d)
	if err != nil {
		return 0, err
	}
	if reviewCount < 0 {
		return 0, fmt.Errorf("%w: review count must be >= 0, got %d", model.ErrInvalidInput, reviewCount)
	}

	// reviewCount が大きいと +Inf になるが、上限との比較で吸収される
	interval := float64(base) * math.Pow(Multiplier, float64(reviewCount))
	if interval >= MaxIntervalDays {
		return MaxIntervalDays, nil
	}
	return int(math.Round(interval)), nil
}

// NextReviewDate は from の日付に NextInterval を足した日付を返します。
func NextReviewDate(from time.Time, d model.Difficulty, reviewCount int) (time.Time, error) {
	days, err := NextInterval(d, reviewCount)
	if err != nil {
		return time.Time{}, err
	}
	y, m, day := from.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, from.Location()).AddDate(0, 0, days), nil
}
