package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"leetcode_journey/internal/model"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 拡張機能に表示されるメッセージを短くする
	registerTranslation := func(tag, msg string) {
		_ = Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field(), fe.Param())
			return t
		})
	}
	registerTranslation("required", "Missing required field: {0}.")
	registerTranslation("oneof", "{0} must be one of [{1}].")
}

// ValidateStruct は req を検証し、失敗した場合は最初のエラーを AppError にして返します。
func ValidateStruct(req interface{}) error {
	err := Validator.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// バリデーションライブラリ自体のエラー
		return err
	}
	return NewValidationError(validationErrors)
}

// NewValidationError は最初のエラーを代表として AppError を生成します
func NewValidationError(errs validator.ValidationErrors) *model.AppError {
	first := errs[0]
	code := "VALIDATION_ERROR"
	if first.Tag() == "required" {
		code = "MISSING_FIELD"
	}
	return model.NewAppError(code, first.Translate(Trans), first.Field(), model.ErrInvalidInput)
}
