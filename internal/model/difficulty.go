// internal/model/difficulty.go
package model

import (
	"fmt"
	"strings"
)

// Difficulty は問題の難易度です
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties は有効な難易度の一覧 (表示順)
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) String() string {
	return string(d)
}

// IsValid は d が Easy / Medium / Hard のいずれかかを返します。
func (d Difficulty) IsValid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// ParseDifficulty は大文字小文字を区別せずに難易度を解釈します。
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, s)
}
