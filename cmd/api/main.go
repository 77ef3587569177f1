package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jmkcontents/jmkcontents/internal/config"
	"github.com/jmkcontents/jmkcontents/internal/docstore"
	"github.com/jmkcontents/jmkcontents/internal/handler"
	"github.com/jmkcontents/jmkcontents/internal/middleware"
	"github.com/jmkcontents/jmkcontents/internal/repository"
	"github.com/jmkcontents/jmkcontents/internal/routes"
	"github.com/jmkcontents/jmkcontents/internal/service"
	pkgcache "github.com/jmkcontents/jmkcontents/pkg/cache"
	pkglogger "github.com/jmkcontents/jmkcontents/pkg/logger"
	pkgredis "github.com/jmkcontents/jmkcontents/pkg/redis"
)

// @title           JMK Contents API
// @version         1.0
// @description     자격증 수험 앱 카탈로그 및 관리자 CMS API
//
// @host            localhost:8080
// @BasePath        /api

func main() {
	dotenvFiles := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 로거 초기화
	pkglogger.InitStructured(cfg.Environment)
	pkglogger.GetLogger().Info().
		Str("environment", cfg.Environment).
		Strs("env_files", dotenvFiles).
		Msg("starting server")

	if cfg.AdminPassword == "" {
		pkglogger.GetLogger().Warn().
			Msg("ADMIN_PASSWORD is not set; admin login is disabled")
	}

	// Redis 연결 (문서 저장소 + 캐시)
	redisClient, err := pkgredis.NewClient(
		cfg.RedisHost,
		cfg.RedisPort,
		cfg.RedisPassword,
		cfg.RedisDB,
		cfg.RedisPoolSize,
	)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	pkglogger.GetLogger().Info().
		Str("host", cfg.RedisHost).
		Int("port", cfg.RedisPort).
		Msg("connected to Redis")

	store := docstore.NewRedisStore(redisClient)
	cacheService := pkgcache.NewService(redisClient)

	// Repository 초기화
	appRepo := repository.NewAppRepository(store)
	conceptRepo := repository.NewConceptRepository(store)
	lectureRepo := repository.NewLectureRepository(store)
	adRepo := repository.NewAffiliateAdRepository(store)
	contactRepo := repository.NewContactRepository(store)

	// Service 초기화
	authService := service.NewAuthService(cfg.AdminPassword)
	appService := service.NewAppService(appRepo, cacheService)
	conceptService := service.NewConceptService(conceptRepo, cacheService)
	lectureService := service.NewLectureService(lectureRepo, cacheService)
	adService := service.NewAffiliateAdService(adRepo)
	contactService := service.NewContactService(contactRepo)

	// Handler 초기화
	authHandler := handler.NewAuthHandler(authService)
	appHandler := handler.NewAppHandler(appService)
	conceptHandler := handler.NewConceptHandler(conceptService)
	lectureHandler := handler.NewLectureHandler(lectureService)
	adHandler := handler.NewAffiliateAdHandler(adService)
	contactHandler := handler.NewContactHandler(contactService)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())

	// CORS 설정 (관리자 프론트엔드는 별도 오리진에서 쿠키 인증으로 호출)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(cfg.CORSAllowOrigins),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	routes.Setup(
		router,
		authHandler,
		appHandler,
		conceptHandler,
		lectureHandler,
		adHandler,
		contactHandler,
	)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	pkglogger.GetLogger().Info().Str("addr", addr).Msg("server listening")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// splitAndTrim splits a comma-separated list and trims spaces
func splitAndTrim(s string) []string {
	parts := []string{}
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
