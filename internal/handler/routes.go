package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/starwars-api/backend/internal/service"
)

// RouteRequirement - 라우트별 접근 정책. 기동 시 한 번 등록되고 이후 불변.
type RouteRequirement struct {
	Public bool
	Roles  []string
}

// RouteTable - "METHOD /path" 키로 RouteRequirement를 조회하는 테이블
type RouteTable struct {
	rules map[string]RouteRequirement
}

func NewRouteTable() *RouteTable {
	return &RouteTable{rules: make(map[string]RouteRequirement)}
}

// Add - 라우트 정책 등록.
// 불변식: role 제한이 있는 라우트는 public일 수 없다. 위반은 기동 시점에 panic.
func (t *RouteTable) Add(method, path string, req RouteRequirement) {
	if req.Public && len(req.Roles) > 0 {
		panic(fmt.Sprintf("route %s %s: public route cannot require roles", method, path))
	}
	t.rules[routeKey(method, path)] = req
}

func (t *RouteTable) Lookup(method, path string) (RouteRequirement, bool) {
	req, ok := t.rules[routeKey(method, path)]
	return req, ok
}

func routeKey(method, path string) string {
	return method + " " + path
}

// NewRouter - 전체 라우트와 접근 정책을 한 곳에서 선언한다.
// 모든 요청은 Authenticate → Authorize → 핸들러 순으로 흐른다.
func NewRouter(
	authSvc *service.AuthService,
	authHandler *AuthHandler,
	usersHandler *UsersHandler,
	moviesHandler *MoviesHandler,
	healthHandler *HealthHandler,
) *gin.Engine {
	router := gin.Default()

	table := NewRouteTable()
	router.Use(Authenticate(table, authSvc))
	router.Use(Authorize(table))

	handle := func(method, path string, req RouteRequirement, h gin.HandlerFunc) {
		table.Add(method, path, req)
		router.Handle(method, path, h)
	}

	public := RouteRequirement{Public: true}
	authenticated := RouteRequirement{}
	userOnly := RouteRequirement{Roles: []string{"user"}}
	adminOnly := RouteRequirement{Roles: []string{"admin"}}

	// Health
	handle("GET", "/", public, healthHandler.Ok)
	handle("GET", "/info", public, healthHandler.Info)
	handle("GET", "/openapi.json", public, OpenAPIDoc)

	// Auth
	handle("POST", "/auth/login", public, authHandler.Login)
	handle("POST", "/auth/register", public, authHandler.Register)

	// Users
	handle("GET", "/users", adminOnly, usersHandler.FindAll)
	handle("GET", "/users/:id", authenticated, usersHandler.FindOne)
	handle("POST", "/users", adminOnly, usersHandler.Create)
	handle("PUT", "/users/:id", adminOnly, usersHandler.Update)

	// Movies
	handle("GET", "/movies", public, moviesHandler.FindAll)
	handle("GET", "/movies/:id", userOnly, moviesHandler.FindOne)
	handle("POST", "/movies", adminOnly, moviesHandler.Create)
	handle("PATCH", "/movies/:id", adminOnly, moviesHandler.Update)
	handle("DELETE", "/movies/:id", adminOnly, moviesHandler.Remove)

	return router
}
