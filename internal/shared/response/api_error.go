// Package response はHTTPレスポンス/エラーのエンベロープを提供します。
// すべての失敗はコンポーネント境界を越える前にApiErrorへ正規化されます。
package response

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"auth_backend/internal/shared/status"
)

// ApiError はシンボリックタイプ・解決済みステータス・メッセージを持つ失敗値です。
// errorインターフェースを実装し、システム全体のエラー伝播の通貨として使われます。
type ApiError struct {
	// Type はカテゴリ表に対して解決済みのシンボリックタイプです。
	Type string
	// Status は解決済みのHTTPステータスコードです。
	Status int
	// Title は解決済みシンボルを反映します。
	Title string
	// Message は利用者向けのメッセージです。
	Message string
}

// NewApiError は指定タイプのApiErrorを生成します。
// 未知のタイプは INTERNAL_SERVER_ERROR / 500 に収束します。
// detailsが与えられた場合は診断ログとして出力するだけで、レスポンスには含めません。
func NewApiError(errType, message string, details ...any) *ApiError {
	resolved, _ := status.Resolve(errType)
	e := &ApiError{
		Type:    resolved,
		Status:  status.Code(resolved),
		Title:   resolved,
		Message: message,
	}

	for _, detail := range details {
		if detail == nil {
			continue
		}
		// 詳細はログ出力のみ。伝播経路ではない。
		switch d := detail.(type) {
		case error:
			slog.Error("api error detail", "status", e.Status, "type", e.Type, "detail", fmt.Sprintf("%T: %v", d, d))
		default:
			slog.Error("api error detail", "status", e.Status, "type", e.Type, "detail", d)
		}
	}

	return e
}

// Error はerrorインターフェースを実装します。
func (e *ApiError) Error() string {
	return e.Message
}

// errorBody はApiErrorのシリアライズ契約を定義します。
type errorBody struct {
	Type    string `json:"type"`
	Status  int    `json:"status"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// MarshalJSON は {"error":{"type","status","title","message"}} 形式で出力します。
func (e *ApiError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Error errorBody `json:"error"`
	}{
		Error: errorBody{
			Type:    e.Type,
			Status:  e.Status,
			Title:   e.Title,
			Message: e.Message,
		},
	})
}
