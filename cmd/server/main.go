package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/tuanhng/me-api/adapters/event"
	httpAdapter "github.com/tuanhng/me-api/adapters/http"
	"github.com/tuanhng/me-api/adapters/persistence"
	profileUC "github.com/tuanhng/me-api/internal/application/usecase/profile"
	projectUC "github.com/tuanhng/me-api/internal/application/usecase/project"
	searchUC "github.com/tuanhng/me-api/internal/application/usecase/search"
	skillUC "github.com/tuanhng/me-api/internal/application/usecase/skill"
	"github.com/tuanhng/me-api/internal/config"
	"github.com/tuanhng/me-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Start Me-API Playground server...")

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	workRepo := persistence.NewPostgresWorkRepo(dbPool, appLogger)
	linkRepo := persistence.NewPostgresLinkRepo(dbPool, appLogger)
	healthRepo := persistence.NewHealthRepo(dbPool, appLogger)
	profileCache := persistence.NewRedisProfileCache(redisClient, appLogger)

	// Use cases
	aggregator := profileUC.NewAggregator(skillRepo, projectRepo, workRepo, linkRepo, appLogger)
	getProfileUseCase := profileUC.NewGetProfileUseCase(
		profileRepo, aggregator, profileCache, kafkaClient, cfg.Profile.DefaultID, appLogger)
	createProfileUseCase := profileUC.NewCreateProfileUseCase(
		profileRepo, aggregator, profileCache, kafkaClient, appLogger)
	updateProfileUseCase := profileUC.NewUpdateProfileUseCase(
		profileRepo, aggregator, profileCache, kafkaClient, appLogger)
	listSkillsUseCase := skillUC.NewListSkillsUseCase(skillRepo)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo)
	searchUseCase := searchUC.NewSearchUseCase(skillRepo, projectRepo, workRepo, appLogger)

	// HTTP handlers
	profileHandler := httpAdapter.NewProfileHandler(
		getProfileUseCase, createProfileUseCase, updateProfileUseCase, cfg.Profile.DefaultID, appLogger)
	skillHandler := httpAdapter.NewSkillHandler(listSkillsUseCase, cfg.Profile.DefaultID, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(listProjectsUseCase, cfg.Profile.DefaultID, appLogger)
	searchHandler := httpAdapter.NewSearchHandler(searchUseCase, cfg.Profile.DefaultID, appLogger)
	healthHandler := httpAdapter.NewHealthHandler(healthRepo, redisClient, appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(httpAdapter.RequestIDMiddleware())
	router.Use(httpAdapter.CORSMiddleware())
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	router.GET("/health", healthHandler.Check)

	api := router.Group("/api")
	{
		api.GET("/profile", profileHandler.GetProfile)
		api.POST("/profile", profileHandler.CreateProfile)
		api.PUT("/profile/:id", profileHandler.UpdateProfile)
		api.GET("/skills", skillHandler.ListSkills)
		api.GET("/projects", projectHandler.ListProjects)
		api.GET("/search", searchHandler.Search)
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
