// internal/schedule/schedule_test.go
package schedule

import (
	"testing"
	"time"

	"leetcode_journey/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextInterval(t *testing.T) {
	tests := []struct {
		name        string
		difficulty  model.Difficulty
		reviewCount int
		want        int
	}{
		{name: "正常系: Easy 初回", difficulty: model.Easy, reviewCount: 0, want: 14},
		{name: "正常系: Medium 初回", difficulty: model.Medium, reviewCount: 0, want: 7},
		{name: "正常系: Hard 初回", difficulty: model.Hard, reviewCount: 0, want: 3},
		{name: "正常系: Easy 1回復習済み", difficulty: model.Easy, reviewCount: 1, want: 35},
		{name: "正常系: Medium 1回復習済み (17.5 は切り上げ)", difficulty: model.Medium, reviewCount: 1, want: 18},
		{name: "正常系: Hard 2回復習済み", difficulty: model.Hard, reviewCount: 2, want: 19},
		{name: "正常系: Easy 2回復習済み", difficulty: model.Easy, reviewCount: 2, want: 88},
		{name: "正常系: Medium 4回復習済み", difficulty: model.Medium, reviewCount: 4, want: 273},
		{name: "正常系: Easy 10回は上限365", difficulty: model.Easy, reviewCount: 10, want: 365},
		{name: "正常系: Hard 6回は上限365", difficulty: model.Hard, reviewCount: 6, want: 365},
		{name: "正常系: 巨大な回数でも上限365", difficulty: model.Hard, reviewCount: 100000, want: 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextInterval(tt.difficulty, tt.reviewCount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextInterval_InvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		difficulty  model.Difficulty
		reviewCount int
	}{
		{name: "異常系: 未知の難易度", difficulty: model.Difficulty("Insane"), reviewCount: 0},
		{name: "異常系: 空の難易度", difficulty: model.Difficulty(""), reviewCount: 0},
		{name: "異常系: 小文字の難易度", difficulty: model.Difficulty("easy"), reviewCount: 0},
		{name: "異常系: 負の復習回数", difficulty: model.Easy, reviewCount: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NextInterval(tt.difficulty, tt.reviewCount)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

// すべての難易度・回数で結果が [3, 365] に収まり、回数に対して単調非減少であること
func TestNextInterval_Bounds(t *testing.T) {
	for _, d := range model.Difficulties {
		prev := 0
		for n := 0; n <= 50; n++ {
			got, err := NextInterval(d, n)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 3, "difficulty=%s count=%d", d, n)
			assert.LessOrEqual(t, got, MaxIntervalDays, "difficulty=%s count=%d", d, n)
			assert.GreaterOrEqual(t, got, prev, "difficulty=%s count=%d", d, n)
			prev = got
		}
	}
}

func TestNextReviewDate(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	from := time.Date(2025, 1, 30, 23, 59, 0, 0, jst)

	got, err := NextReviewDate(from, model.Easy, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-06", got.Format(model.DateLayout))
	assert.Equal(t, jst, got.Location())

	_, err = NextReviewDate(from, model.Difficulty("?"), 0)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
