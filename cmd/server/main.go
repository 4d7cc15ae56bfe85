package main

import (
	"log"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"places_backend/internal/app/router"
	authadapters "places_backend/internal/feature/auth/adapters"
	authhandler "places_backend/internal/feature/auth/transport/handler"
	authusecase "places_backend/internal/feature/auth/usecase"
	locationadapters "places_backend/internal/feature/location/adapters"
	locationhandler "places_backend/internal/feature/location/transport/handler"
	locationusecase "places_backend/internal/feature/location/usecase"
	"places_backend/internal/platform/cache"
	"places_backend/internal/platform/config"
	infradb "places_backend/internal/platform/db"
	jwtmw "places_backend/internal/platform/jwt"
	"places_backend/internal/platform/ratelimit"
	infraredis "places_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg := config.Load()

	// SECRET_KEYチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] SECRET_KEY is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB(cfg.DatabaseDSN, cfg.RunMigrations)

	// Redis（キャッシュとログインのレートリミットに使用、無くても起動する）
	var rdb *redisv9.Client
	if cfg.RedisAddr == "" {
		rdb = nil
	} else if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache and rate limiting.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	locationRepo := locationadapters.NewLocationGorm(db)
	ownerInfoRepo := locationadapters.NewOwnerInfoGorm(db)

	// 公開読み取りをRedisキャッシュでラップ
	cachedLocationRepo := cache.NewCachingLocationRepository(rdb, cfg.CacheTTL, locationRepo, "locations")

	// Token service
	tokens := jwtmw.NewService(jwtmw.Config{
		Secret:     []byte(cfg.JWTSecret),
		DefaultTTL: cfg.AccessTokenTTL,
	})

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, cfg.AccessTokenTTL)
	locationUC := locationusecase.NewLocationUsecase(cachedLocationRepo, ownerInfoRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	locationH := locationhandler.NewLocationHandler(locationUC)

	// ルータ生成
	r := router.NewRouter(router.Options{
		Auth:             authH,
		Locations:        locationH,
		Tokens:           tokens,
		Users:            authUC,
		LoginLimiter:     ratelimit.LoginLimiter(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow),
		CORSOrigin:       cfg.CORSOrigin,
		GoogleMapsAPIKey: cfg.GoogleMapsAPIKey,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
