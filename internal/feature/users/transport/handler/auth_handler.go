// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/users/domain/entity"
	"auth_backend/internal/feature/users/transport/http/dto"
	"auth_backend/internal/shared/response"
	"auth_backend/internal/shared/status"
)

// UserUsecase はユーザーライフサイクル操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	// CreateUser は一意性チェック後に新規ユーザーを永続化し、サニタイズ済みのユーザーを返します。
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// Login はユーザーを認証し、成功時にサニタイズ済みのユーザーを返します。
	Login(ctx context.Context, email, password string) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	users UserUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からUserUsecaseを注入します。
func NewAuthHandler(users UserUsecase) *AuthHandler {
	return &AuthHandler{users: users}
}

// fail はエラーをApiErrorに正規化してエラーハンドリングミドルウェアに渡します。
// 既にApiErrorならそのまま転送し、それ以外は元の分類を破棄して汎用の500に包みます。
func fail(c *gin.Context, err error) {
	var apiErr *response.ApiError
	if !errors.As(err, &apiErr) {
		apiErr = response.NewApiError(status.InternalServerError, "An unexpected error occurred", err)
	}
	_ = c.Error(apiErr)
	c.Abort()
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は全フィールドの理由を", "で連結した400を返却
// - 認証成功時はサニタイズ済みユーザーを200で返却
// - 失敗時はApiErrorをそのまま転送（ApiError以外は汎用500に包む）
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		fail(c, response.NewApiError(status.BadRequest, bindingErrorMessage(err)))
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		fail(c, err)
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, user)
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 作成成功時は201の成功エンベロープで返却
// - ユーザー名/メール重複時は409（どちらが衝突したかは明かさない）
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		fail(c, response.NewApiError(status.BadRequest, bindingErrorMessage(err)))
		return
	}

	user := &entity.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		Region:   entity.Region(req.Region),
		IP:       c.ClientIP(),
	}

	created, err := h.users.CreateUser(c.Request.Context(), user)
	if err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		fail(c, err)
		return
	}

	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	response.Handler(status.Created, "User created successfully", created)(c)
}
