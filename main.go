package main

import (
	"context"
	"log"
	"time"

	"github.com/starwars-api/backend/internal/client"
	"github.com/starwars-api/backend/internal/config"
	"github.com/starwars-api/backend/internal/db"
	"github.com/starwars-api/backend/internal/handler"
	"github.com/starwars-api/backend/internal/service"
)

// @title starwars-api
// @version 0.0.1
// @description Movie catalog backend with JWT authentication and a Star Wars film importer.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	ctx := context.Background()

	// PostgreSQL 연결
	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := &db.Postgres{Pool: pool}

	// 스키마 보장
	if err := repo.EnsureUserSchema(ctx); err != nil {
		log.Fatalf("failed to ensure user schema: %v", err)
	}
	if err := repo.EnsureMovieSchema(ctx); err != nil {
		log.Fatalf("failed to ensure movie schema: %v", err)
	}

	// 서비스 구성
	usersSvc := service.NewUsersService(repo)
	authSvc, err := service.NewAuthService(usersSvc, cfg.Auth)
	if err != nil {
		log.Fatalf("failed to init auth service: %v", err)
	}
	moviesSvc := service.NewMoviesService(repo)

	// Star Wars 임포터 (STARWARS_API 미설정 시 비활성화)
	starwarsClient := client.NewStarwarsClient(cfg.Starwars)
	if starwarsClient.IsConfigured() {
		interval, err := time.ParseDuration(cfg.Starwars.FetchInterval)
		if err != nil {
			log.Fatalf("invalid STARWARS_FETCH_INTERVAL: %v", err)
		}
		starwarsSvc := service.NewStarwarsService(moviesSvc, starwarsClient, interval)
		go starwarsSvc.Run(ctx)
	} else {
		log.Printf("[Starwars] STARWARS_API not set, importer disabled")
	}

	// 라우터 구성
	router := handler.NewRouter(
		authSvc,
		handler.NewAuthHandler(authSvc),
		handler.NewUsersHandler(usersSvc, authSvc),
		handler.NewMoviesHandler(moviesSvc),
		handler.NewHealthHandler(cfg.Server),
	)

	log.Printf("service %s listening on port %s (env=%s)", cfg.Server.ServiceName, cfg.Server.Port, cfg.Server.Environment)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
