// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"places_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// maxNameLength はユーザー名・氏名の最大文字数を定義します。
	maxNameLength = 150
)

var (
	// lettersOnly はユーザー名・氏名に許可される文字パターンです。
	lettersOnly = regexp.MustCompile(`^[a-zA-Z]+$`)

	// digitsOnly は電話番号に許可される文字パターンです。
	digitsOnly = regexp.MustCompile(`^[0-9]+$`)
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// ユニーク制約（username, phone_hash）に違反した場合、ErrUsernameTakenを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// TokenIssuer はアクセストークン発行のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	// Issue は指定されたサブジェクトの署名済みトークンを生成します。
	Issue(subject string, ttl time.Duration) (string, error)
}

// RegisterInput は新規登録リクエストの入力値です。
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	SecondName      string
	Phone           string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users    UserRepository
	tokens   TokenIssuer
	tokenTTL time.Duration
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
// tokenTTLはログイン時に発行するアクセストークンの有効期間です。
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, tokenTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:    users,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

// validateRegistration は登録入力がフィールドごとの要件を満たしているかチェックします。
// 違反があればフィールド名をキーにしたValidationErrorを返します。
func validateRegistration(in RegisterInput) error {
	fields := map[string]string{}

	checkName := func(field, value string) {
		if value == "" || len(value) > maxNameLength || !lettersOnly.MatchString(value) {
			fields[field] = "must contain only letters"
		}
	}
	checkName("username", in.Username)
	checkName("first_name", in.FirstName)
	checkName("second_name", in.SecondName)

	if !digitsOnly.MatchString(in.Phone) {
		fields["phone"] = "must contain only digits"
	}

	switch {
	case len(in.Password) < minPasswordLength:
		fields["password"] = fmt.Sprintf("must be at least %d characters long", minPasswordLength)
	case in.Password != in.ConfirmPassword:
		fields["confirm_password"] = "passwords do not match"
	case !strings.ContainsFunc(in.Password, unicode.IsDigit) ||
		!strings.ContainsFunc(in.Password, unicode.IsLower):
		fields["password"] = "must contain at least one digit and one lowercase letter"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// hashPhone は電話番号の決定的なダイジェストを返します。
// phone_hashのユニークインデックスが機能するよう、ソルトなしのSHA-256を使用します。
func hashPhone(phone string) string {
	sum := sha256.Sum256([]byte(phone))
	return hex.EncodeToString(sum[:])
}

// Register は入力値を検証し、ハッシュ化された資格情報で新規ユーザーを登録します。
// ユーザー名の重複はストレージのユニーク制約でも検出されます（check-then-actの競合対策）。
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	// 既存ユーザー名の事前チェック
	if _, err := u.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hashed),
		FirstName:    in.FirstName,
		SecondName:   in.SecondName,
		PhoneHash:    hashPhone(in.Phone),
		Role:         entity.RoleUser,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時にアクセストークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.PasswordHash
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.Issue(user.Username, u.tokenTTL)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return token, nil
}

// CurrentUser はトークンのサブジェクトをユーザーに解決します。
// トークン発行後に削除されたユーザーの場合、ErrUserNotFoundを返します。
func (u *authUsecase) CurrentUser(ctx context.Context, subject string) (*entity.User, error) {
	return u.users.FindByUsername(ctx, subject)
}
