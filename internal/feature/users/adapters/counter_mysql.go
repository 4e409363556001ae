package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"auth_backend/internal/feature/users/domain/entity"
	"auth_backend/internal/feature/users/usecase"
)

// counterMySQL はSequenceRepositoryインターフェースのMySQL実装です。
// インクリメントと取得はトランザクション内の行ロックで単一のアトミック操作にします。
type counterMySQL struct {
	db *gorm.DB
}

// counterMySQLがSequenceRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.SequenceRepository = (*counterMySQL)(nil)

// NewCounterMySQL は指定されたgorm.DB接続でcounterMySQLの新しいインスタンスを生成します。
func NewCounterMySQL(db *gorm.DB) *counterMySQL {
	return &counterMySQL{db: db}
}

// NextSequence はキーのカウンター行をfind-or-createし、1インクリメントした値を返します。
// 未知のキーに対する最初の呼び出しはカウンターを作成して1を返します。
// SELECT ... FOR UPDATE の行ロックにより、同一キーへの並行呼び出しでも
// read-then-write競合は発生しません。
func (r *counterMySQL) NextSequence(ctx context.Context, key string) (int64, error) {
	var next int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter entity.Counter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", key).
			First(&counter).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			counter = entity.Counter{ID: key, SerialNumber: 1}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
			next = counter.SerialNumber
			return nil
		}
		if err != nil {
			return err
		}

		counter.SerialNumber++
		if err := tx.Model(&entity.Counter{}).
			Where("id = ?", key).
			Update("serial_number", counter.SerialNumber).Error; err != nil {
			return err
		}
		next = counter.SerialNumber
		return nil
	})
	if err != nil {
		return 0, err
	}

	return next, nil
}
