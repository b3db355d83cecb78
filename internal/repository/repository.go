package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperr "dmg-assess/pkg/errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// mysqlDuplicateEntry MySQL 唯一键冲突错误码
const mysqlDuplicateEntry = 1062

// Repository 汇总各实体的数据访问层
type Repository struct {
	Scene      *SceneRepository
	Parameter  *ParameterRepository
	Result     *ResultRepository
	Report     *ReportRepository
	Ammunition *AmmunitionRepository
	Target     *TargetRepository
	User       *UserRepository
}

// NewRepository 创建全部Repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Scene:      NewSceneRepository(db),
		Parameter:  NewParameterRepository(db),
		Result:     NewResultRepository(db),
		Report:     NewReportRepository(db),
		Ammunition: NewAmmunitionRepository(db),
		Target:     NewTargetRepository(db),
		User:       NewUserRepository(db),
	}
}

// withConn 为一次操作独占一个连接，fn 返回后无论成败都归还连接。
// 插入语句和随后读取自增ID在同一连接上完成。
func withConn(ctx context.Context, db *gorm.DB, op string, fn func(tx *gorm.DB) error) error {
	err := db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		// NewDB 会话让每条链式调用都从干净的 Statement 开始，但仍落在 conn 上
		return fn(conn.Session(&gorm.Session{NewDB: true}))
	})
	return classify(op, err)
}

// classify 把驱动错误归类到 pkg/errors 的错误体系
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrNotFound),
		errors.Is(err, apperr.ErrDuplicateKey),
		errors.Is(err, apperr.ErrIntegrity),
		apperr.IsValidation(err):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	case isDuplicate(err):
		return fmt.Errorf("%s: %w", op, apperr.ErrDuplicateKey)
	default:
		return &apperr.StorageError{Op: op, Err: err}
	}
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysqldriver.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}

// rowExists 主键对应的行是否存在（不区分软删除状态）
func rowExists(tx *gorm.DB, model interface{}, pk string, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var count int64
	if err := tx.Model(model).Where(pk+" = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// stampNow 当前时间，截断到秒与 DATETIME 精度一致
func stampNow() time.Time {
	return time.Now().Truncate(time.Second)
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likePattern 构造不区分大小写的子串匹配模式，配合 ESCAPE '!' 使用
func likePattern(keyword string) string {
	return "%" + strings.ToLower(likeEscaper.Replace(strings.TrimSpace(keyword))) + "%"
}

// likeClause 生成 "(LOWER(a) LIKE ? ESCAPE '!' OR LOWER(b) LIKE ? ESCAPE '!')" 及参数
func likeClause(keyword string, columns ...string) (string, []interface{}) {
	pattern := likePattern(keyword)
	parts := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '!'", col))
		args = append(args, pattern)
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}
