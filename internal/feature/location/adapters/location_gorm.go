// Package adapters はlocationフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"places_backend/internal/feature/location/domain/entity"
	"places_backend/internal/feature/location/usecase"
)

// locationGorm はLocationRepositoryインターフェースのGORM実装です。
type locationGorm struct {
	db *gorm.DB
}

// locationGormがLocationRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.LocationRepository = (*locationGorm)(nil)

// NewLocationGorm は指定されたgorm.DB接続でlocationGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewLocationGorm(db *gorm.DB) *locationGorm {
	return &locationGorm{db: db}
}

// Create はロケーションをデータベースに追加します。
func (r *locationGorm) Create(ctx context.Context, loc *entity.Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

// FindAll は全ロケーションを主キー順で取得します。
func (r *locationGorm) FindAll(ctx context.Context) ([]entity.Location, error) {
	var locs []entity.Location
	if err := r.db.WithContext(ctx).Order("id").Find(&locs).Error; err != nil {
		return nil, err
	}
	return locs, nil
}

// FindByID はIDでロケーションを取得します。
// ロケーションが存在しない場合、usecase.ErrLocationNotFoundを返します。
func (r *locationGorm) FindByID(ctx context.Context, id uint) (*entity.Location, error) {
	var loc entity.Location
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&loc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrLocationNotFound
		}
		return nil, err
	}
	return &loc, nil
}

// Update は編集可能なカラムのみを保存します。
// average_rating / rating_count はレビュー書き込みが管理する導出値のため、
// 古いスナップショットで上書きしないよう更新対象に含めません。
// AverageCheckのNULL化も反映するため、Selectでカラムを明示します。
func (r *locationGorm) Update(ctx context.Context, loc *entity.Location) error {
	return r.db.WithContext(ctx).Model(loc).
		Select("name", "address", "working_hours_start", "working_hours_end", "average_check").
		Updates(loc).Error
}

// Delete はIDでロケーションを削除します。
// 対象行が存在しない場合、usecase.ErrLocationNotFoundを返します。
func (r *locationGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Location{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrLocationNotFound
	}
	return nil
}

// AddReview はレビューを挿入し、ロケーションの評価集計を再計算します。
// 挿入と再計算は同一トランザクション内で行われ、並行するレビュー追加が
// あっても集計はレビューテーブルの実データと一致します。
func (r *locationGorm) AddReview(ctx context.Context, review *entity.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}

		// rating付きレビューのみ集計対象
		var agg struct {
			Avg   float64
			Count int
		}
		err := tx.Model(&entity.Review{}).
			Select("COALESCE(AVG(rating), 0) AS avg, COUNT(rating) AS count").
			Where("location_id = ?", review.LocationID).
			Scan(&agg).Error
		if err != nil {
			return err
		}

		return tx.Model(&entity.Location{}).
			Where("id = ?", review.LocationID).
			Updates(map[string]any{
				"average_rating": agg.Avg,
				"rating_count":   agg.Count,
			}).Error
	})
}

// FindReviews はロケーションのレビューを作成順で取得します。
func (r *locationGorm) FindReviews(ctx context.Context, locationID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("id").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
