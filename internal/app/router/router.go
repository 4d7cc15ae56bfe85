package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "places_backend/internal/feature/auth/transport/handler"
	locationhandler "places_backend/internal/feature/location/transport/handler"
	platformhandler "places_backend/internal/platform/http/handler"
	jwtmw "places_backend/internal/platform/jwt"
)

// Options はルータ構築に必要な依存をまとめます。
type Options struct {
	Auth      *authhandler.AuthHandler
	Locations *locationhandler.LocationHandler

	// Tokens と Users はAuthRequiredミドルウェアのトークン検証・ユーザー解決に使用します。
	Tokens jwtmw.Verifier
	Users  jwtmw.UserResolver

	// LoginLimiter は/auth/loginに適用するレートリミットミドルウェアです。
	LoginLimiter gin.HandlerFunc

	// CORSOrigin はフロントエンドのオリジンです。
	CORSOrigin string

	// GoogleMapsAPIKey は/google-maps-keyで公開されます。
	GoogleMapsAPIKey string
}

func NewRouter(opts Options) *gin.Engine {
	r := gin.Default()

	// CORS設定（フロントエンドとの連携用）
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{opts.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	authRequired := jwtmw.AuthRequired(opts.Tokens, opts.Users)

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// フロントエンドの地図描画用APIキー
	r.GET("/google-maps-key", platformhandler.GoogleMapsKey(opts.GoogleMapsAPIKey))

	auth := r.Group("/auth")
	{
		// 新規ユーザー登録
		auth.POST("/register", opts.Auth.Register)
		// ログイン（トークン発行） レートリミット付き
		auth.POST("/login", opts.LoginLimiter, opts.Auth.Login)
		// 認証済みユーザー自身の情報
		auth.GET("/me", authRequired, opts.Auth.Me)
	}

	locations := r.Group("/locations")
	{
		// 公開読み取り
		locations.GET("/", opts.Locations.List)
		locations.GET("/:id", opts.Locations.Get)
		locations.GET("/:id/reviews", opts.Locations.ListReviews)

		// 認証必須のルート
		locations.POST("/add-location", authRequired, opts.Locations.Create)
		locations.PUT("/:id", authRequired, opts.Locations.Update)
		locations.DELETE("/:id", authRequired, opts.Locations.Delete)
		// オーナー情報の添付
		locations.POST("/", authRequired, opts.Locations.AttachOwnerInfo)
		// レビュー投稿
		locations.POST("/:id/reviews", authRequired, opts.Locations.AddReview)
	}

	return r
}
