// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidURL         = errors.New("invalid url")
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrServerError        = errors.New("server error")
	ErrInternalServer     = errors.New("internal server error")
	ErrConflict           = errors.New("resource conflict") // 重複エラー用
)

// AppError はクライアントに返すコード・メッセージと根本原因のエラーをまとめたものです。
type AppError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{Code: code, Message: message, Field: field, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// APIErrorResponse はAPIエラーレスポンスの構造体
// クライアントは message をそのまま表示する
type APIErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}
