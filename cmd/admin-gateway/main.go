package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/campus-tools/advising-admin/api/swagger"
	"github.com/campus-tools/advising-admin/internal/catalog"
	"github.com/campus-tools/advising-admin/internal/dto"
	"github.com/campus-tools/advising-admin/internal/handler"
	"github.com/campus-tools/advising-admin/internal/middleware"
	"github.com/campus-tools/advising-admin/internal/models"
	"github.com/campus-tools/advising-admin/internal/provider"
	"github.com/campus-tools/advising-admin/internal/repository"
	"github.com/campus-tools/advising-admin/internal/service"
	"github.com/campus-tools/advising-admin/internal/tableview"
	"github.com/campus-tools/advising-admin/pkg/cache"
	"github.com/campus-tools/advising-admin/pkg/config"
	"github.com/campus-tools/advising-admin/pkg/database"
	"github.com/campus-tools/advising-admin/pkg/logger"
	corsmiddleware "github.com/campus-tools/advising-admin/pkg/middleware/cors"
	reqidmiddleware "github.com/campus-tools/advising-admin/pkg/middleware/requestid"
)

// @title Curriculum Advising Admin Gateway
// @version 1.0.0
// @description Backend for the curriculum advising administrative dashboard
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect redis", "error", err)
	}
	defer redisClient.Close()

	metrics := service.NewMetricsService()
	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	authSvc := service.NewAuthService(userRepo, auditRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "advising-admin",
		SingleSession:      false,
	})

	upstream := provider.NewClient(cfg.Upstream, provider.StaticTokenSource(cfg.Upstream.ServiceToken), logr, metrics)
	viewStore := tableview.NewRedisStore(redisClient, cfg.Views.SnapshotTTL)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	metricsHandler := handler.NewMetricsHandler(metrics, func(c *gin.Context) error {
		if err := db.PingContext(c.Request.Context()); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		return nil
	})
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	handler.NewAuthHandler(authSvc).Routes(api)

	protected := api.Group("", middleware.JWT(authSvc))
	deps := entityDeps{
		cfg:      cfg,
		client:   upstream,
		store:    viewStore,
		metrics:  metrics,
		audit:    auditRepo,
		validate: validate,
		logger:   logr,
	}
	mount[models.Student, dto.CreateStudentRequest, dto.UpdateStudentRequest](protected, catalog.Students(), deps)
	mount[models.Coach, dto.CreateCoachRequest, dto.UpdateCoachRequest](protected, catalog.Coaches(), deps)
	mount[models.Curriculum, dto.CreateCurriculumRequest, dto.UpdateCurriculumRequest](protected, catalog.Curricula(), deps)
	mount[models.Course, dto.CreateCourseRequest, dto.UpdateCourseRequest](protected, catalog.Courses(), deps)
	mount[models.Enrollment, dto.CreateEnrollmentRequest, dto.UpdateEnrollmentRequest](protected, catalog.Enrollments(), deps)
	mount[models.Remark, dto.CreateRemarkRequest, dto.UpdateRemarkRequest](protected, catalog.Remarks(), deps)
	mount[models.Assignment, dto.CreateAssignmentRequest, dto.UpdateAssignmentRequest](protected, catalog.Assignments(), deps)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("gateway starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("gateway failed", "error", err)
	}
}

type entityDeps struct {
	cfg      *config.Config
	client   *provider.Client
	store    tableview.Store
	metrics  *service.MetricsService
	audit    middleware.AuditRecorder
	validate *validator.Validate
	logger   *zap.Logger
}

// mount registers one entity's CRUD passthrough and table view endpoints.
func mount[R, C, U any](rg *gin.RouterGroup, ent catalog.Entity[R], deps entityDeps) {
	if ent.Table.PageSize <= 0 {
		ent.Table.PageSize = deps.cfg.Views.DefaultPageSize
	}

	resource := provider.NewResource[R](deps.client, ent.Path)
	handler.NewResourceHandler[R, C, U](ent, resource, deps.validate).Routes(rg, deps.audit)

	fetch := func(ctx context.Context) ([]R, error) {
		return resource.List(ctx, nil)
	}
	views := tableview.NewService[R](ent.Name, ent.Table, ent.Columns, fetch, deps.store, deps.logger)
	handler.NewViewHandler[R](ent, views, deps.metrics, deps.cfg.Export.PDFEnabled).Routes(rg, deps.audit)
}
