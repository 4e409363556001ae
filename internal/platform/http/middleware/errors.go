// Package middleware はアプリケーション共通のginミドルウェアを提供します。
package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/shared/response"
	"auth_backend/internal/shared/status"
)

// ErrorHandler はチェーン実行後にコンテキストへ集約されたエラーを検査し、
// 最初のApiErrorをエラーエンベロープとして書き込む単一の失敗出口です。
// ApiError以外の値は汎用の500エンベロープに包まれます。
// 失敗は常にちょうど1つのJSONエラーオブジェクトと正しいステータスコードになります。
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		var apiErr *response.ApiError
		if !errors.As(c.Errors[0].Err, &apiErr) {
			apiErr = response.NewApiError(status.InternalServerError, "An unexpected error occurred", c.Errors[0].Err)
		}

		c.JSON(apiErr.Status, apiErr)
	}
}
