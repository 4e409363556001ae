// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"auth_backend/internal/feature/users/domain/entity"
	"auth_backend/internal/shared/response"
	"auth_backend/internal/shared/status"
)

const (
	// bcryptCost はパスワードハッシュのワークファクタです。
	bcryptCost = 10

	// defaultPage / defaultLimit はページネーションの既定値です。
	defaultPage  = 1
	defaultLimit = 10

	// maxLimit は1ページあたりの上限です。過大なペイロードを防ぎます。
	maxLimit = 100

	// userSerialKey はユーザー連番の採番に使うカウンターキーです。
	// 単一キーから採番することで連番のグローバル一意性を保証します。
	userSerialKey = "users"
)

// Filter はユーザー一覧の絞り込み条件です。ゼロ値のフィールドは無視されます。
type Filter struct {
	Name     string
	Username string
	Email    string
	Role     entity.Role
	Region   entity.Region
}

// ListResult はオフセットページネーションの結果です。
type ListResult struct {
	Users []*entity.User `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// ユニーク制約に違反した場合、ErrDuplicateUserを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// 存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	// 存在しない場合、ErrUserNotFoundを返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// 存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByUsername はユーザー名の存在チェックを行います。比較はバイト一致（大文字小文字を区別）です。
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail はメールアドレスの存在チェックを行います。比較はバイト一致（大文字小文字を区別）です。
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List は条件に一致するユーザーのスライスと総件数を返します。
	List(ctx context.Context, filter Filter, offset, limit int) ([]*entity.User, int64, error)
}

// SequenceRepository はキーごとの連番カウンターを抽象化します。
type SequenceRepository interface {
	// NextSequence はキーのカウンターをアトミックにインクリメントし、インクリメント後の値を返します。
	// 未知のキーに対する最初の呼び出しはカウンターを作成して1を返します。
	NextSequence(ctx context.Context, key string) (int64, error)
}

// userUsecase はユーザーのライフサイクル管理を実装します。
// すべての失敗はこの境界を越える前に *response.ApiError へ正規化されます。
type userUsecase struct {
	users    UserRepository
	counters SequenceRepository
}

// NewUserUsecase はuserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository, counters SequenceRepository) *userUsecase {
	return &userUsecase{
		users:    users,
		counters: counters,
	}
}

// GenerateID は連番カウンターとは独立した、新しいグローバル一意IDを生成します。
func (u *userUsecase) GenerateID() string {
	return uuid.NewString()
}

// UsernameExists はユーザー名が既に使われているかを返します。
func (u *userUsecase) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := u.users.ExistsByUsername(ctx, username)
	if err != nil {
		return false, response.NewApiError(status.InternalServerError, "Failed to check username", err)
	}
	return exists, nil
}

// EmailExists はメールアドレスが既に使われているかを返します。
func (u *userUsecase) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return false, response.NewApiError(status.InternalServerError, "Failed to check email", err)
	}
	return exists, nil
}

// prePersist は永続化の直前に必ず呼ばれる変換関数です。
// ID未設定なら生成し、連番未割当なら採番し、パスワードが平文で変更された場合のみ再ハッシュします。
// フレームワークの暗黙フックではなく、ライフサイクルマネージャーが明示的に適用します。
func (u *userUsecase) prePersist(ctx context.Context, user *entity.User, passwordModified bool) error {
	if user.ID == "" {
		user.ID = u.GenerateID()
	}

	if user.SerialNumber == 0 {
		serial, err := u.counters.NextSequence(ctx, userSerialKey)
		if err != nil {
			return fmt.Errorf("failed to assign serial number: %w", err)
		}
		user.SerialNumber = serial
	}

	if passwordModified {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if user.Role == "" {
		user.Role = entity.DefaultRole
	}
	if user.Region == "" {
		user.Region = entity.DefaultRegion
	}
	if user.IP == "" {
		user.IP = entity.DefaultIP
	}

	if !user.Role.Valid() {
		return fmt.Errorf("invalid role %q", user.Role)
	}
	if !user.Region.Valid() {
		return fmt.Errorf("invalid region %q", user.Region)
	}

	return nil
}

// CreateUser は両方の一意性チェックを行ってから新規ユーザーを永続化します。
// どちらかが既に存在する場合、どのフィールドが衝突したかを明かさないConflictエラーを返します。
// 成功時はセンシティブなフィールドを除いたユーザーを返します。
func (u *userUsecase) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	usernameExists, err := u.users.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return nil, response.NewApiError(status.InternalServerError, "Failed to create user", err)
	}
	emailExists, err := u.users.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, response.NewApiError(status.InternalServerError, "Failed to create user", err)
	}
	if usernameExists || emailExists {
		// 列挙攻撃対策: どちらが衝突したかは明かさない
		return nil, response.NewApiError(status.Conflict, "Username or email already exists")
	}

	if err := u.prePersist(ctx, user, true); err != nil {
		return nil, response.NewApiError(status.InternalServerError, fmt.Sprintf("Failed to create user: %v", err), err)
	}

	if err := u.users.Create(ctx, user); err != nil {
		// 存在チェックと書き込みの間の競合はユニークインデックスが拾う
		if errors.Is(err, ErrDuplicateUser) {
			return nil, response.NewApiError(status.Conflict, "Username or email already exists")
		}
		return nil, response.NewApiError(status.InternalServerError, fmt.Sprintf("Failed to create user: %v", err), err)
	}

	return user.Sanitized(), nil
}

// GetUserByID はIDでユーザーを取得します。存在しない場合はNot-Foundエラーです。
func (u *userUsecase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, response.NewApiError(status.NotFound, fmt.Sprintf("User with ID %s not found", id))
		}
		return nil, response.NewApiError(status.InternalServerError, "Failed to get user", err)
	}
	return user.Sanitized(), nil
}

// GetUserByUsername はユーザー名でユーザーを取得します。存在しない場合はNot-Foundエラーです。
func (u *userUsecase) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, response.NewApiError(status.NotFound, fmt.Sprintf("User with username %s not found", username))
		}
		return nil, response.NewApiError(status.InternalServerError, "Failed to get user", err)
	}
	return user.Sanitized(), nil
}

// GetAllUsers はオフセットページネーション付きでユーザー一覧を返します。
// pageは未指定・非正なら1、limitは未指定・非正なら10、上限は100です。
func (u *userUsecase) GetAllUsers(ctx context.Context, filter Filter, page, limit int) (*ListResult, error) {
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := (page - 1) * limit

	users, total, err := u.users.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, response.NewApiError(status.InternalServerError, "Failed to list users", err)
	}

	sanitized := make([]*entity.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitized())
	}

	return &ListResult{
		Users: sanitized,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// Login はメールアドレスとパスワードでユーザーを認証します。
// メール未登録はNot-Found、パスワード不一致はUnauthorizedを返します。
// この区別はライフサイクル層では保持されます（ハンドラー側の方針とは独立）。
func (u *userUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, response.NewApiError(status.NotFound, fmt.Sprintf("User with email %s not found", email))
		}
		return nil, response.NewApiError(status.InternalServerError, "Failed to login", err)
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, response.NewApiError(status.Unauthorized, "Invalid email or password")
	}

	return user.Sanitized(), nil
}
