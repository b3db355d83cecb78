package main

import (
	"context"
	"log"
	"time"

	"dmg-assess/internal/config"
	"dmg-assess/internal/models"
	"dmg-assess/internal/router"
	"dmg-assess/internal/utils"

	"github.com/go-redis/redis/v8"
)

func main() {
	// 加载配置（从项目根目录读取）
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	logger, err := utils.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}

	// 初始化数据库
	if err := models.InitDB(cfg); err != nil {
		logger.Fatalf("初始化数据库失败: %v", err)
	}
	db := models.GetDB()
	logger.WithField("driver", cfg.Database.Driver).Info("数据库已连接")

	// Redis 可选，未配置或不可用时导出状态保存在进程内
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddress(),
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := client.Ping(ctx).Err()
		cancel()
		if err != nil {
			logger.WithError(err).Warn("Redis 不可用，导出状态改用进程内存储")
			client.Close()
		} else {
			redisClient = client
			logger.WithField("addr", cfg.Redis.GetAddress()).Info("Redis 已连接")
		}
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.SecretKey,
		cfg.JWT.Algorithm,
		cfg.JWT.GetExpireDuration(),
	)

	// 设置路由
	r := router.SetupRouter(cfg, jwtManager, logger, db, redisClient)

	addr := cfg.Server.GetAddress()
	logger.Infof("服务器启动在 %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("启动服务器失败: %v", err)
	}
}
