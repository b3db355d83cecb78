package middleware

import (
	"strings"

	"dmg-assess/internal/service"
	"dmg-assess/internal/utils"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// AuthMiddleware JWT认证中间件，通过后把 *service.Session 存入上下文
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "未认证")
			c.Abort()
			return
		}

		// 解析Bearer Token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.Unauthorized(c, "无效的认证格式")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			utils.Unauthorized(c, "Token无效或已过期")
			c.Abort()
			return
		}

		c.Set(sessionKey, &service.Session{
			UserID:   claims.UserID,
			UserName: claims.Username,
			IsAdmin:  claims.IsAdmin,
		})
		c.Next()
	}
}

// GetSession 从上下文获取当前操作人，未认证时返回 nil
func GetSession(c *gin.Context) *service.Session {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	session, _ := v.(*service.Session)
	return session
}
