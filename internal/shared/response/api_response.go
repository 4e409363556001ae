package response

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/shared/status"
)

// defaultMessage は成功レスポンスの既定メッセージです。
const defaultMessage = "Success"

// ApiResponse は成功レスポンスのエンベロープです。構築後は不変として扱います。
type ApiResponse struct {
	// Type はステータスシンボルです。
	Type string
	// Status は解決済みのHTTPステータスコードです。未解決の場合はOK(200)になります。
	Status int
	// Message はレスポンスメッセージです。省略時は "Success"。
	Message string
	// Data は任意形状のペイロードです。
	Data any
}

// NewApiResponse は成功エンベロープを生成します。
// typeが成功カテゴリに解決できない場合、ステータスはOK(200)にフォールバックします。
func NewApiResponse(statusType, message string, data any) *ApiResponse {
	resolvedStatus := status.Code(statusType)
	if cat, ok := status.Lookup(statusType); !ok || cat != status.CategorySuccess {
		statusType = status.OK
		resolvedStatus = status.Code(status.OK)
	}
	if message == "" {
		message = defaultMessage
	}
	return &ApiResponse{
		Type:    statusType,
		Status:  resolvedStatus,
		Message: message,
		Data:    data,
	}
}

// successBody はApiResponseのシリアライズ契約を定義します。
type successBody struct {
	Type    string `json:"type"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// MarshalJSON は {"success":{"type","status","message","data"}} 形式で出力します。
func (r *ApiResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Success successBody `json:"success"`
	}{
		Success: successBody{
			Type:    r.Type,
			Status:  r.Status,
			Message: r.Message,
			Data:    r.Data,
		},
	})
}

// Send は解決済みステータスコードとシリアライズ済みボディをレスポンスに書き込みます。
func (r *ApiResponse) Send(c *gin.Context) {
	c.JSON(r.Status, r)
}

// Handler は構築とトランスポートアダプタを分離するファクトリです。
// 同じ引数を受け取り、送信可能なクロージャを返します。
func Handler(statusType, message string, data any) func(*gin.Context) {
	r := NewApiResponse(statusType, message, data)
	return r.Send
}
