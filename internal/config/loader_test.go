package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "db", "test.db")
	path := writeConfig(t, `
jwt:
  secret_key: s3cret
database:
  path: `+dbPath+`
`)

	cfg, err := loadConfigFromFile(path)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if cfg.Server.Port != 18080 || cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Database.Charset != "utf8mb4" {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
		t.Errorf("应自动创建数据库目录: %v", err)
	}
	if cfg.Redis.Enabled() {
		t.Error("未配置 host 时 Redis 不应启用")
	}
	if cfg.JWT.GetExpireDuration() != 720*time.Minute {
		t.Errorf("JWT 过期时间 = %v", cfg.JWT.GetExpireDuration())
	}
	if cfg.Export.OutputDir != "./exports" || cfg.Export.MaxConcurrent != 2 || cfg.Export.GetProgressTTL() != time.Hour {
		t.Errorf("Export = %+v", cfg.Export)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadConfig_MySQLAndRedis(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret_key: s3cret
database:
  driver: MySQL
  host: db.internal
  user: dmg
redis_service:
  host: cache.internal
`)

	cfg, err := loadConfigFromFile(path)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if cfg.Database.Driver != "mysql" || cfg.Database.GetAddress() != "db.internal:3306" {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if !cfg.Redis.Enabled() || cfg.Redis.GetAddress() != "cache.internal:6379" {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"缺少JWT密钥", "server:\n  port: 8080\n", "JWT密钥不能为空"},
		{"端口越界", "jwt:\n  secret_key: x\nserver:\n  port: 70000\n", "无效的服务器端口"},
		{"MySQL缺少主机", "jwt:\n  secret_key: x\ndatabase:\n  driver: mysql\n  user: u\n", "MySQL 主机地址不能为空"},
		{"未知驱动", "jwt:\n  secret_key: x\ndatabase:\n  driver: oracle\n", "不支持的数据库驱动"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfigFromFile(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("期望包含 %q 的错误，实际 %v", tt.want, err)
			}
		})
	}
}
