// Package handler はlocationフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"places_backend/internal/feature/location/domain/entity"
	"places_backend/internal/feature/location/transport/http/dto"
	"places_backend/internal/feature/location/usecase"
	jwtmw "places_backend/internal/platform/jwt"
)

// LocationUsecase はロケーション操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type LocationUsecase interface {
	Create(ctx context.Context, actor usecase.Actor, in usecase.LocationInput) (*entity.Location, error)
	List(ctx context.Context) ([]entity.Location, error)
	Get(ctx context.Context, id uint) (*entity.Location, error)
	Update(ctx context.Context, id uint, actor usecase.Actor, in usecase.LocationInput) (*entity.Location, error)
	Delete(ctx context.Context, id uint, actor usecase.Actor) error
	AttachOwnerInfo(ctx context.Context, locationID uint, actor usecase.Actor, in usecase.OwnerInfoInput) (*entity.OwnerInfo, error)
	AddReview(ctx context.Context, locationID uint, actor usecase.Actor, rating int, comment string) (*entity.Review, error)
	ListReviews(ctx context.Context, locationID uint) ([]entity.Review, error)
}

// createdLocation はオーナー情報付きのロケーション作成レスポンスです。
type createdLocation struct {
	*entity.Location
	OwnerInfo *entity.OwnerInfo `json:"owner_info,omitempty"`
}

// LocationHandler はロケーション操作のHTTPリクエストを処理します。
type LocationHandler struct {
	locations LocationUsecase
}

// NewLocationHandler はLocationHandlerの新しいインスタンスを生成します。
func NewLocationHandler(locations LocationUsecase) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// actorFrom はミドルウェアが解決したユーザーを操作主体に変換します。
func actorFrom(c *gin.Context) (usecase.Actor, bool) {
	user := jwtmw.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return usecase.Actor{}, false
	}
	return usecase.Actor{ID: user.ID, Admin: user.IsAdmin()}, true
}

// locationID はパスパラメータからロケーションIDを取り出します。
func locationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return 0, false
	}
	return uint(id), true
}

// Create はロケーション作成APIエンドポイントを処理します。
// リクエストにowner_infoが含まれる場合、作成者本人として同時に添付します。
func (h *LocationHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.LocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("location validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc, err := h.locations.Create(c.Request.Context(), actor, locationInput(req))
	if err != nil {
		slog.Error("location create failed", "error", err, "actor", actor.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := createdLocation{Location: loc}
	if req.OwnerInfo != nil {
		info, err := h.locations.AttachOwnerInfo(c.Request.Context(), loc.ID, actor, usecase.OwnerInfoInput{
			Website:   req.OwnerInfo.Website,
			OwnerInfo: req.OwnerInfo.OwnerInfo,
		})
		if err != nil {
			slog.Error("owner info attach failed", "error", err, "location", loc.ID, "actor", actor.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		resp.OwnerInfo = info
	}

	slog.Info("location created", "location", loc.ID, "actor", actor.ID)
	c.JSON(http.StatusOK, resp)
}

// List は全ロケーションを返します。認証不要の公開エンドポイントです。
func (h *LocationHandler) List(c *gin.Context) {
	locs, err := h.locations.List(c.Request.Context())
	if err != nil {
		slog.Error("location list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, locs)
}

// Get はIDで単一ロケーションを返します。認証不要の公開エンドポイントです。
func (h *LocationHandler) Get(c *gin.Context) {
	id, ok := locationID(c)
	if !ok {
		return
	}

	loc, err := h.locations.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
			return
		}
		slog.Error("location get failed", "error", err, "location", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, loc)
}

// Update はロケーション更新APIエンドポイントを処理します。
// 作成者以外からの更新は403を返します。
func (h *LocationHandler) Update(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := locationID(c)
	if !ok {
		return
	}

	var req dto.LocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("location validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc, err := h.locations.Update(c.Request.Context(), id, actor, locationInput(req))
	if err != nil {
		h.writeLocationError(c, err, id)
		return
	}

	slog.Info("location updated", "location", id, "actor", actor.ID)
	c.JSON(http.StatusOK, loc)
}

// Delete はロケーション削除APIエンドポイントを処理します。管理者専用です。
func (h *LocationHandler) Delete(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := locationID(c)
	if !ok {
		return
	}

	if err := h.locations.Delete(c.Request.Context(), id, actor); err != nil {
		h.writeLocationError(c, err, id)
		return
	}

	slog.Info("location deleted", "location", id, "actor", actor.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Location deleted"})
}

// AttachOwnerInfo はオーナー情報添付APIエンドポイントを処理します。
// ロケーションの作成者以外からの添付は403を返します。
func (h *LocationHandler) AttachOwnerInfo(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.OwnerInfoAttachReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("owner info validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := h.locations.AttachOwnerInfo(c.Request.Context(), req.LocationID, actor, usecase.OwnerInfoInput{
		Website:   req.Website,
		OwnerInfo: req.OwnerInfo,
	})
	if err != nil {
		h.writeLocationError(c, err, req.LocationID)
		return
	}

	slog.Info("owner info attached", "location", req.LocationID, "actor", actor.ID)
	c.JSON(http.StatusOK, info)
}

// AddReview はレビュー投稿APIエンドポイントを処理します。
// 評価集計は投稿と同一トランザクション内で更新されます。
func (h *LocationHandler) AddReview(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := locationID(c)
	if !ok {
		return
	}

	var req dto.ReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("review validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.locations.AddReview(c.Request.Context(), id, actor, req.Rating, req.Comment)
	if err != nil {
		h.writeLocationError(c, err, id)
		return
	}

	slog.Info("review added", "location", id, "actor", actor.ID, "rating", req.Rating)
	c.JSON(http.StatusOK, review)
}

// ListReviews はロケーションのレビュー一覧を返します。認証不要です。
func (h *LocationHandler) ListReviews(c *gin.Context) {
	id, ok := locationID(c)
	if !ok {
		return
	}

	reviews, err := h.locations.ListReviews(c.Request.Context(), id)
	if err != nil {
		h.writeLocationError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// writeLocationError はユースケースのエラーをHTTPステータスに変換します。
// ストレージ障害の詳細は外部に漏らしません。
func (h *LocationHandler) writeLocationError(c *gin.Context, err error, id uint) {
	switch {
	case errors.Is(err, usecase.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
	default:
		slog.Error("location operation failed", "error", err, "location", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// locationInput はDTOをユースケース入力に変換します。
func locationInput(req dto.LocationReq) usecase.LocationInput {
	return usecase.LocationInput{
		Name:              req.Name,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		Address:           req.Address,
		WorkingHoursStart: req.WorkingHoursStart,
		WorkingHoursEnd:   req.WorkingHoursEnd,
		AverageCheck:      req.AverageCheck,
	}
}
