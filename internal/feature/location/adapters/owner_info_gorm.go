package adapters

import (
	"context"

	"gorm.io/gorm"

	"places_backend/internal/feature/location/domain/entity"
	"places_backend/internal/feature/location/usecase"
)

// ownerInfoGorm はOwnerInfoRepositoryインターフェースのGORM実装です。
type ownerInfoGorm struct {
	db *gorm.DB
}

// ownerInfoGormがOwnerInfoRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.OwnerInfoRepository = (*ownerInfoGorm)(nil)

// NewOwnerInfoGorm は指定されたgorm.DB接続でownerInfoGormの新しいインスタンスを生成します。
func NewOwnerInfoGorm(db *gorm.DB) *ownerInfoGorm {
	return &ownerInfoGorm{db: db}
}

// Create はオーナー情報をデータベースに追加します。
func (r *ownerInfoGorm) Create(ctx context.Context, info *entity.OwnerInfo) error {
	return r.db.WithContext(ctx).Create(info).Error
}
