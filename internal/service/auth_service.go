package service

import (
	"context"
	"errors"
	"fmt"

	"dmg-assess/internal/dto"
	"dmg-assess/internal/models"
	"dmg-assess/internal/utils"
	apperr "dmg-assess/pkg/errors"
)

// AuthService 认证服务
type AuthService struct {
	users      UserDirectory
	jwtManager *utils.JWTManager
}

// NewAuthService 创建认证服务
func NewAuthService(users UserDirectory, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		users:      users,
		jwtManager: jwtManager,
	}
}

// Login 用户登录
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 获取用户
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 验证密码
	if err := utils.CheckPassword(req.Password, user.UPassword); err != nil {
		return nil, ErrWrongPassword
	}

	// 状态1表示启用
	if user.UStatus != models.StatusActive {
		return nil, ErrUserDisabled
	}

	// 生成Token
	token, err := s.jwtManager.GenerateToken(user.UID, user.UserName, user.IsAdmin())
	if err != nil {
		return nil, fmt.Errorf("生成Token失败: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        userInfo(user),
	}, nil
}

// GetMe 获取当前用户信息
func (s *AuthService) GetMe(ctx context.Context, session *Session) (*dto.UserInfo, error) {
	if session == nil || session.UserID == 0 {
		return nil, ErrNoSession
	}
	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	info := userInfo(user)
	return &info, nil
}

func userInfo(user *models.User) dto.UserInfo {
	return dto.UserInfo{
		ID:       user.UID,
		Username: user.UserName,
		TrueName: user.DisplayName(),
		IsActive: user.UStatus == models.StatusActive,
		IsAdmin:  user.IsAdmin(),
	}
}
