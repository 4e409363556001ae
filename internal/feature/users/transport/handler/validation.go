package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingErrorMessage はginのバインディングエラーをフィールドごとのメッセージに展開し、
// ", " で連結した1つのメッセージにまとめます。
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, ", ")
}

// fieldMessage は1つのフィールドエラーを利用者向けメッセージに変換します。
func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	default:
		return field + " is invalid"
	}
}
