package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/starwars-api/backend/internal/model"
	"github.com/starwars-api/backend/internal/service"
)

const authUserKey = "auth_user"

// Authenticate - 1단계 게이트. 라우트 테이블을 보고 public이면 그대로 통과,
// 아니면 Bearer 토큰을 검증해서 인증 주체를 컨텍스트에 붙인다.
// 실패 사유(누락/만료/변조/페이로드 형태)는 로그로만 구분하고
// 응답은 전부 동일한 401로 정규화한다.
func Authenticate(table *RouteTable, authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		req, ok := table.Lookup(c.Request.Method, c.FullPath())
		if !ok || req.Public {
			// 미등록 라우트는 보호 대상이 아니다 (gin 404로 흘러감)
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		user, err := authService.ParseAccessToken(token)
		if err != nil {
			log.Printf("[Auth] token rejected on %s %s: %v", c.Request.Method, c.FullPath(), err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

// Authorize - 2단계 게이트. 라우트에 role 제한이 있으면
// 인증 주체의 role이 그 집합에 포함되는지만 본다.
func Authorize(table *RouteTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		req, ok := table.Lookup(c.Request.Method, c.FullPath())
		if !ok || len(req.Roles) == 0 {
			c.Next()
			return
		}

		user := GetAuthUser(c)
		if user == nil {
			// role 제한 라우트는 public일 수 없으므로 (등록 시점 불변식)
			// 여기 도달했다면 Authenticate가 주체를 붙였어야 한다
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		for _, role := range req.Roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		c.Abort()
	}
}

func GetAuthUser(c *gin.Context) *model.AuthUser {
	if value, ok := c.Get(authUserKey); ok {
		if user, ok := value.(*model.AuthUser); ok {
			return user
		}
	}
	return nil
}
