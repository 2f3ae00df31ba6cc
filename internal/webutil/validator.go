package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

// エラーメッセージに出すフィールド名 (jsonタグ名 → 表示名)
var fieldNameTranslations = map[string]string{
	"document_id": "Document ID",
	"reflection":  "Reflection",
	"question":    "Question",
	"context":     "Context",
	"ai_level":    "AI level",
	"title":       "Title",
	"content":     "Content",
	"text":        "Text",
}

func displayName(field string) string {
	if name, ok := fieldNameTranslations[field]; ok {
		return name
	}
	return field
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得する
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

	// required / min / max / oneof は表示名を使うように上書き
	register := func(tag, msg string, withParam bool) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			var t string
			if withParam {
				t, _ = ut.T(tag, displayName(fe.Field()), fe.Param())
			} else {
				t, _ = ut.T(tag, displayName(fe.Field()))
			}
			return t
		})
	}
	register("required", "{0} is required", false)
	register("min", "{0} must be at least {1} characters", true)
	register("max", "{0} must be at most {1} characters", true)
	register("oneof", "{0} must be one of [{1}]", true)
}
