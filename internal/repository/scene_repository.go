package repository

import (
	"context"

	"dmg-assess/internal/models"
	apperr "dmg-assess/pkg/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sceneUpdateColumns 更新时写入的列，主键、创建时间和状态不在其中
var sceneUpdateColumns = []string{
	"DSCode", "DSName", "DSOffensive", "DSDefensive", "DSBattle",
	"AMID", "AMCode", "TargetType", "TargetID", "TargetCode", "UpdatedTime",
}

// SceneRepository 毁伤场景数据访问层
type SceneRepository struct {
	db *gorm.DB
}

// NewSceneRepository 创建场景Repository
func NewSceneRepository(db *gorm.DB) *SceneRepository {
	return &SceneRepository{db: db}
}

// Add 新增场景，返回自增ID。编号或名称与有效场景重复时返回 ErrDuplicateKey。
//
// 查重和插入在同一事务内，查重时锁住命中的索引区间，并发新增同名场景只有一个能成功。
func (r *SceneRepository) Add(ctx context.Context, scene *models.DamageScene) (uint, error) {
	err := withConn(ctx, r.db, "新增场景", func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			dup, err := r.duplicated(tx, scene.DSCode, scene.DSName, 0)
			if err != nil {
				return err
			}
			if dup {
				return apperr.ErrDuplicateKey
			}

			created, updated := stampNow(), stampNow()
			scene.DSID = 0
			scene.DSStatus = models.StatusActive
			scene.CreatedTime = &created
			scene.UpdatedTime = &updated
			return tx.Create(scene).Error
		})
	})
	if err != nil {
		return 0, err
	}
	return scene.DSID, nil
}

// Update 更新场景，主键不存在时返回 false
func (r *SceneRepository) Update(ctx context.Context, scene *models.DamageScene) (bool, error) {
	var ok bool
	err := withConn(ctx, r.db, "更新场景", func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			found, err := rowExists(tx, &models.DamageScene{}, "DSID", scene.DSID)
			if err != nil || !found {
				return err
			}

			dup, err := r.duplicated(tx, scene.DSCode, scene.DSName, scene.DSID)
			if err != nil {
				return err
			}
			if dup {
				return apperr.ErrDuplicateKey
			}

			now := stampNow()
			scene.UpdatedTime = &now
			if err := tx.Model(scene).Select(sceneUpdateColumns).Updates(scene).Error; err != nil {
				return err
			}
			ok = true
			return nil
		})
	})
	return ok, err
}

// Delete 软删除场景（DSStatus 置 0），主键不存在时返回 false
func (r *SceneRepository) Delete(ctx context.Context, id uint) (bool, error) {
	var ok bool
	err := withConn(ctx, r.db, "删除场景", func(tx *gorm.DB) error {
		found, err := rowExists(tx, &models.DamageScene{}, "DSID", id)
		if err != nil || !found {
			return err
		}
		err = tx.Model(&models.DamageScene{}).Where("DSID = ?", id).Updates(map[string]interface{}{
			"DSStatus":    models.StatusDeleted,
			"UpdatedTime": stampNow(),
		}).Error
		if err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok, err
}

// GetByID 根据ID获取场景，已软删除的场景同样可以取到
func (r *SceneRepository) GetByID(ctx context.Context, id uint) (*models.DamageScene, error) {
	var scene models.DamageScene
	err := withConn(ctx, r.db, "查询场景", func(tx *gorm.DB) error {
		return tx.Where("DSID = ?", id).First(&scene).Error
	})
	if err != nil {
		return nil, err
	}
	return &scene, nil
}

// GetAll 获取全部有效场景，按ID倒序
func (r *SceneRepository) GetAll(ctx context.Context) ([]models.DamageScene, error) {
	var scenes []models.DamageScene
	err := withConn(ctx, r.db, "查询场景列表", func(tx *gorm.DB) error {
		return tx.Where("DSStatus = ?", models.StatusActive).Order("DSID DESC").Find(&scenes).Error
	})
	return scenes, err
}

// Search 按场景编号或名称模糊查询有效场景
func (r *SceneRepository) Search(ctx context.Context, keyword string) ([]models.DamageScene, error) {
	var scenes []models.DamageScene
	clause, args := likeClause(keyword, "DSCode", "DSName")
	err := withConn(ctx, r.db, "搜索场景", func(tx *gorm.DB) error {
		return tx.Where("DSStatus = ?", models.StatusActive).
			Where(clause, args...).
			Order("DSID DESC").
			Find(&scenes).Error
	})
	return scenes, err
}

// duplicated 编号或名称是否已被其他有效场景占用；须在事务内调用，
// MySQL 下 FOR UPDATE 会锁住 DSCode/DSName 索引上的区间，SQLite 忽略该子句
func (r *SceneRepository) duplicated(tx *gorm.DB, code, name string, excludeID uint) (bool, error) {
	var ids []uint
	query := tx.Model(&models.DamageScene{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("DSStatus = ?", models.StatusActive).
		Where("(DSCode = ? OR DSName = ?)", code, name)
	if excludeID != 0 {
		query = query.Where("DSID <> ?", excludeID)
	}
	if err := query.Limit(1).Pluck("DSID", &ids).Error; err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}
