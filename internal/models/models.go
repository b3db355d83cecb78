package models

import (
	"fmt"
	"time"

	"dmg-assess/internal/config"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 全局数据库实例
var DB *gorm.DB

// InitDB 初始化数据库
func InitDB(cfg *config.Config) error {
	db, err := Open(&cfg.Database)
	if err != nil {
		return err
	}
	DB = db

	if cfg.Database.AutoMigrate {
		return AutoMigrate()
	}
	return nil
}

// Open 按驱动类型打开数据库连接
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(mysqlDSN(cfg))
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}

	logMode := logger.Silent // 使用静默模式
	if cfg.Debug {
		logMode = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logMode),
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取连接池失败: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func mysqlDSN(cfg *config.DatabaseConfig) string {
	c := mysqldriver.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = cfg.GetAddress()
	c.DBName = cfg.Name
	c.ParseTime = true
	c.Loc = time.Local
	c.Params = map[string]string{"charset": cfg.Charset}
	return c.FormatDSN()
}

// AutoMigrate 自动迁移数据库表(仅在新数据库时使用)
//
// 弹药、目标、用户表归外部子系统所有，这里不建表。
func AutoMigrate() error {
	return Migrate(DB)
}

// Migrate 在指定连接上迁移本系统拥有的四张表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&DamageScene{},
		&DamageParameter{},
		&AssessmentResult{},
		&AssessmentReport{},
	)
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return DB
}
