package utils

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("secret", "HS256", time.Hour)

	token, err := m.GenerateToken(42, "analyst", true)
	if err != nil {
		t.Fatalf("GenerateToken 出错: %v", err)
	}
	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken 出错: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "analyst" || !claims.IsAdmin || claims.Subject != "42" {
		t.Errorf("claims = %+v", claims)
	}

	other := NewJWTManager("another-secret", "HS256", time.Hour)
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("密钥不同应校验失败，实际 %v", err)
	}

	expired := NewJWTManager("secret", "HS256", -time.Minute)
	old, _ := expired.GenerateToken(42, "analyst", false)
	if _, err := m.ValidateToken(old); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("过期 Token 应校验失败，实际 %v", err)
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("pass123")
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckPassword("pass123", hash); err != nil {
		t.Errorf("正确密码校验失败: %v", err)
	}
	if err := CheckPassword("pass124", hash); err == nil {
		t.Error("错误密码不应通过")
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", "text")
	if err != nil {
		t.Fatal(err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("formatter = %T", logger.Formatter)
	}

	if _, err := NewLogger("loud", "json"); err == nil {
		t.Error("无效级别应报错")
	}
	if _, err := NewLogger("info", "xml"); err == nil {
		t.Error("无效格式应报错")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "out.csv")
	content := WithBOM([]byte("DSID,DSCode\r\n1,DS001\r\n"))

	if err := WriteFile(path, content); err != nil {
		t.Fatalf("WriteFile 出错: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, content) || !bytes.HasPrefix(data, UTF8BOM) {
		t.Errorf("文件内容 = %q", data)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("目录中应只剩目标文件，实际 %d 个", len(entries))
	}
}
