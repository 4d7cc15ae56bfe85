// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"places_backend/internal/feature/auth/domain/entity"
	"places_backend/internal/feature/auth/transport/http/dto"
	"places_backend/internal/feature/auth/usecase"
	jwtmw "places_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は入力値を検証し新規ユーザーを登録します。
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	// Login はユーザーを認証し、成功時にアクセストークンを返します。
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時はフィールド別メッセージ付きで400を返却
// - ユーザー名重複時は400を返却
// - 成功時は200を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := usecase.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		SecondName:      req.SecondName,
		Phone:           req.Phone,
	}
	if _, err := h.auth.Register(c.Request.Context(), in); err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			slog.Warn("register rejected", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": vErr.Fields})
		case errors.Is(err, usecase.ErrUsernameTaken):
			slog.Warn("register duplicate username", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already registered"})
		case errors.Is(err, usecase.ErrPhoneTaken):
			slog.Warn("register duplicate phone", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone already registered"})
		default:
			// ストレージ障害の詳細は外部に漏らさない
			slog.Error("register failed", "error", err, "username", req.Username)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	slog.Info("user registered", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は400を返却（ユーザー不存在とパスワード不一致を区別しない）
// - 認証成功時はアクセストークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
			slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect username or password"})
			return
		}
		slog.Error("login error", "error", err, "username", req.Username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// Me は認証済みユーザー自身の情報を返します。
// ユーザーの解決はAuthRequiredミドルウェアで行われます。
func (h *AuthHandler) Me(c *gin.Context) {
	user := jwtmw.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	c.JSON(http.StatusOK, user)
}
