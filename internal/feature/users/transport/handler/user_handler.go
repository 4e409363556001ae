package handler

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/users/domain/entity"
	"auth_backend/internal/feature/users/transport/http/dto"
	"auth_backend/internal/feature/users/usecase"
	"auth_backend/internal/shared/response"
	"auth_backend/internal/shared/status"
)

// UserReader はユーザー参照系のユースケースを定義します。
type UserReader interface {
	// GetUserByID はIDでユーザーを取得します。
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetAllUsers はオフセットページネーション付きでユーザー一覧を返します。
	GetAllUsers(ctx context.Context, filter usecase.Filter, page, limit int) (*usecase.ListResult, error)
}

// UserHandler はユーザー参照操作のHTTPリクエストを処理します。
type UserHandler struct {
	users UserReader
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserReader) *UserHandler {
	return &UserHandler{users: users}
}

// List はユーザー一覧APIエンドポイントを処理します。
// クエリパラメータ page / limit / role / region を受け付けます。
func (h *UserHandler) List(c *gin.Context) {
	var req dto.ListUsersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		fail(c, response.NewApiError(status.BadRequest, bindingErrorMessage(err)))
		return
	}

	filter := usecase.Filter{
		Role:   entity.Role(req.Role),
		Region: entity.Region(req.Region),
	}

	result, err := h.users.GetAllUsers(c.Request.Context(), filter, req.Page, req.Limit)
	if err != nil {
		slog.Warn("list users failed", "error", err, "remote_addr", c.ClientIP())
		fail(c, err)
		return
	}

	response.Handler(status.OK, "", result)(c)
}

// GetByID はユーザー取得APIエンドポイントを処理します。
// 存在しない場合は404のエラーエンベロープを返します。
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.users.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Warn("get user failed", "error", err, "id", c.Param("id"), "remote_addr", c.ClientIP())
		fail(c, err)
		return
	}

	response.Handler(status.OK, "", user)(c)
}
