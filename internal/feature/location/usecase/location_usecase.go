// Package usecase はlocationフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"places_backend/internal/feature/location/domain/entity"
)

// LocationRepository はロケーションエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type LocationRepository interface {
	// Create は新しいロケーションをストレージに永続化します。
	Create(ctx context.Context, loc *entity.Location) error

	// FindAll は全ロケーションを主キー順で取得します。
	FindAll(ctx context.Context) ([]entity.Location, error)

	// FindByID は指定されたIDに一致するロケーションを取得します。
	// ロケーションが存在しない場合、ErrLocationNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Location, error)

	// Update はロケーションの変更を保存します。
	Update(ctx context.Context, loc *entity.Location) error

	// Delete は指定されたIDのロケーションを削除します。
	// ロケーションが存在しない場合、ErrLocationNotFoundを返します。
	Delete(ctx context.Context, id uint) error

	// AddReview はレビューを挿入し、対象ロケーションのaverage_ratingと
	// rating_countを同一トランザクション内で再計算します。
	AddReview(ctx context.Context, review *entity.Review) error

	// FindReviews は指定されたロケーションのレビューを取得します。
	FindReviews(ctx context.Context, locationID uint) ([]entity.Review, error)
}

// OwnerInfoRepository はオーナー情報エンティティの永続化層を抽象化します。
type OwnerInfoRepository interface {
	// Create は新しいオーナー情報をストレージに永続化します。
	Create(ctx context.Context, info *entity.OwnerInfo) error
}

// Actor は認証済みユーザーの操作主体を表します。
type Actor struct {
	ID    uint
	Admin bool
}

// LocationInput はロケーション作成・更新リクエストの入力値です。
type LocationInput struct {
	Name              string
	Latitude          float64
	Longitude         float64
	Address           string
	WorkingHoursStart string
	WorkingHoursEnd   string
	AverageCheck      *int
}

// OwnerInfoInput はオーナー情報添付リクエストの入力値です。
type OwnerInfoInput struct {
	Website   string
	OwnerInfo string
}

// locationUsecase はロケーションのビジネスロジックを実装します。
type locationUsecase struct {
	locations LocationRepository
	ownerInfo OwnerInfoRepository
}

// NewLocationUsecase はlocationUsecaseの新しいインスタンスを生成します。
func NewLocationUsecase(locations LocationRepository, ownerInfo OwnerInfoRepository) *locationUsecase {
	return &locationUsecase{
		locations: locations,
		ownerInfo: ownerInfo,
	}
}

// Create は操作主体を作成者として新しいロケーションを登録します。
// 評価関連フィールドはゼロで初期化されます。
func (u *locationUsecase) Create(ctx context.Context, actor Actor, in LocationInput) (*entity.Location, error) {
	loc := &entity.Location{
		Name:              in.Name,
		Latitude:          in.Latitude,
		Longitude:         in.Longitude,
		AverageRating:     0,
		RatingCount:       0,
		Address:           in.Address,
		WorkingHoursStart: in.WorkingHoursStart,
		WorkingHoursEnd:   in.WorkingHoursEnd,
		AverageCheck:      in.AverageCheck,
		CreatedBy:         actor.ID,
	}
	if err := u.locations.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// List は全ロケーションを取得します。順序は主キーの挿入順です。
func (u *locationUsecase) List(ctx context.Context) ([]entity.Location, error) {
	return u.locations.FindAll(ctx)
}

// Get はIDでロケーションを取得します。
func (u *locationUsecase) Get(ctx context.Context, id uint) (*entity.Location, error) {
	return u.locations.FindByID(ctx, id)
}

// Update はロケーションの編集可能フィールドを上書きします。
// 作成者以外の操作主体にはErrForbiddenを返します（ポリシー判断、DESIGN.md参照）。
// 座標と評価関連フィールドは更新対象外です。
func (u *locationUsecase) Update(ctx context.Context, id uint, actor Actor, in LocationInput) (*entity.Location, error) {
	loc, err := u.locations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc.CreatedBy != actor.ID {
		return nil, ErrForbidden
	}

	loc.Name = in.Name
	loc.Address = in.Address
	loc.WorkingHoursStart = in.WorkingHoursStart
	loc.WorkingHoursEnd = in.WorkingHoursEnd
	loc.AverageCheck = in.AverageCheck

	if err := u.locations.Update(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// Delete はロケーションを削除します。管理者ロールが必要です。
func (u *locationUsecase) Delete(ctx context.Context, id uint, actor Actor) error {
	if !actor.Admin {
		return ErrForbidden
	}
	if _, err := u.locations.FindByID(ctx, id); err != nil {
		return err
	}
	return u.locations.Delete(ctx, id)
}

// AttachOwnerInfo はロケーションにオーナー情報を添付します。
// 操作主体がロケーションの作成者と一致しない場合、ErrForbiddenを返します。
func (u *locationUsecase) AttachOwnerInfo(ctx context.Context, locationID uint, actor Actor, in OwnerInfoInput) (*entity.OwnerInfo, error) {
	loc, err := u.locations.FindByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if loc.CreatedBy != actor.ID {
		return nil, ErrForbidden
	}

	info := &entity.OwnerInfo{
		UserID:     actor.ID,
		LocationID: locationID,
		Website:    in.Website,
		OwnerInfo:  in.OwnerInfo,
	}
	if err := u.ownerInfo.Create(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

// AddReview はロケーションにレビューを追加します。
// 評価集計の更新はリポジトリ側で同一トランザクション内に行われます。
func (u *locationUsecase) AddReview(ctx context.Context, locationID uint, actor Actor, rating int, comment string) (*entity.Review, error) {
	if _, err := u.locations.FindByID(ctx, locationID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		UserID:     actor.ID,
		LocationID: locationID,
		Rating:     &rating,
		Comment:    comment,
	}
	if err := u.locations.AddReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListReviews はロケーションのレビュー一覧を取得します。
func (u *locationUsecase) ListReviews(ctx context.Context, locationID uint) ([]entity.Review, error) {
	if _, err := u.locations.FindByID(ctx, locationID); err != nil {
		return nil, err
	}
	return u.locations.FindReviews(ctx, locationID)
}
