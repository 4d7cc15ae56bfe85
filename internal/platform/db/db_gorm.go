package db

import (
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "places_backend/internal/feature/auth/domain/entity"
	locationentity "places_backend/internal/feature/location/domain/entity"
)

// OpenDB は指定されたDSNでPostgreSQLに接続します。
// 起動直後のDB未準備に備え、最大60秒までリトライします。
func OpenDB(dsn string, runMigrations bool) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateErrorによりユニーク制約違反をドライバ非依存で検出できる
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if runMigrations {
		// マイグレーション（user, location, review, ownerinfo）
		if err := db.AutoMigrate(
			&authentity.User{},
			&locationentity.Location{},
			&locationentity.Review{},
			&locationentity.OwnerInfo{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
