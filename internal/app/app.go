package app

import (
	"context"
	"job_portal_backend/internal/config"
	"job_portal_backend/internal/controller"
	"job_portal_backend/internal/model"
	"job_portal_backend/internal/repository"
	"job_portal_backend/internal/service"
	"job_portal_backend/pkg/configwatcher"
	"job_portal_backend/pkg/database"
	"job_portal_backend/pkg/logger"
	"job_portal_backend/pkg/monitoring"
	"job_portal_backend/pkg/security"
	"job_portal_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const configFile = "configs/config.yaml"

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracer          *sdktrace.TracerProvider
	ctx             context.Context
	cancel          context.CancelFunc
	closeOnce       sync.Once
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	course       *repository.CourseRepository
	job          *repository.JobRepository
	mentor       *repository.MentorRepository
	test         *repository.TestRepository
	challenge    *repository.ChallengeRepository
	internship   *repository.InternshipRepository
	notification *repository.NotificationRepository
	resume       *repository.ResumeRepository
	review       *repository.ReviewRepository
}

type services struct {
	auth           *service.AuthService
	storage        *service.StorageService
	notification   *service.NotificationService
	hub            *service.NotificationHub
	course         *service.CourseService
	job            *service.JobService
	mentor         *service.MentorService
	test           *service.TestService
	challenge      *service.ChallengeService
	internship     *service.InternshipService
	resume         *service.ResumeService
	review         *service.ReviewService
	dashboard      *service.DashboardService
	recommendation *service.RecommendationService
}

type controllers struct {
	auth           *controller.AuthController
	health         *controller.HealthController
	dashboard      *controller.DashboardController
	course         *controller.CourseController
	job            *controller.JobController
	mentor         *controller.MentorController
	test           *controller.TestController
	challenge      *controller.ChallengeController
	internship     *controller.InternshipController
	recommendation *controller.RecommendationController
	notification   *controller.NotificationController
	resume         *controller.ResumeController
	review         *controller.ReviewController
	admin          *controller.AdminController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		course:       repository.NewCourseRepository(db),
		job:          repository.NewJobRepository(db),
		mentor:       repository.NewMentorRepository(db),
		test:         repository.NewTestRepository(db),
		challenge:    repository.NewChallengeRepository(db),
		internship:   repository.NewInternshipRepository(db),
		notification: repository.NewNotificationRepository(db),
		resume:       repository.NewResumeRepository(db),
		review:       repository.NewReviewRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(&cfg.Storage)
	s.auth = service.NewAuthService(repos.user, cfg.JWT.Secret, cfg.JWT.ExpireTime)

	s.hub = service.NewNotificationHub(rdb)
	s.notification = service.NewNotificationService(repos.notification, s.hub)

	s.course = service.NewCourseService(repos.course, rdb, cfg.CourseCacheTTL())
	s.job = service.NewJobService(repos.job, s.notification)
	s.mentor = service.NewMentorService(repos.mentor, s.notification)
	s.test = service.NewTestService(repos.test, s.notification)
	s.challenge = service.NewChallengeService(repos.challenge, s.notification)
	s.internship = service.NewInternshipService(repos.internship, s.notification)
	s.resume = service.NewResumeService(repos.resume, s.storage)
	s.review = service.NewReviewService(repos.review)

	s.dashboard = &service.DashboardService{
		UserRepo:       repos.user,
		CourseRepo:     repos.course,
		JobRepo:        repos.job,
		InternshipRepo: repos.internship,
		MentorRepo:     repos.mentor,
		ChallengeRepo:  repos.challenge,
		Now:            time.Now,
	}
	s.recommendation = &service.RecommendationService{
		UserRepo:   repos.user,
		CourseRepo: repos.course,
		JobRepo:    repos.job,
	}

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		health:         controller.NewHealthController(db, rdb),
		dashboard:      controller.NewDashboardController(s.dashboard),
		course:         controller.NewCourseController(s.course),
		job:            controller.NewJobController(s.job),
		mentor:         controller.NewMentorController(s.mentor),
		test:           controller.NewTestController(s.test),
		challenge:      controller.NewChallengeController(s.challenge),
		internship:     controller.NewInternshipController(s.internship),
		recommendation: controller.NewRecommendationController(s.recommendation),
		notification:   controller.NewNotificationController(s.notification, s.hub),
		resume:         controller.NewResumeController(s.resume),
		review:         controller.NewReviewController(s.review),
		admin: &controller.AdminController{
			CourseService:     s.course,
			JobService:        s.job,
			MentorService:     s.mentor,
			TestService:       s.test,
			ChallengeService:  s.challenge,
			InternshipService: s.internship,
		},
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.ctx, cfg.RateLimit.MaxRequests, cfg.RateLimitWindow()))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config: cfg,
		DB:     db,
		ctx:    ctx,
		cancel: cancel,
	}

	if cfg.MigrateOnly {
		return app
	}

	// 未配置 Redis 时课程缓存关闭，通知只推送给本实例的连接
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	} else {
		logger.Log.Warn("Redis not configured, course cache and cross-instance notifications disabled")
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	app.services = app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(app.services, db, rdb)

	if err := app.services.hub.Start(ctx); err != nil {
		logger.Log.Fatal("Failed to subscribe notification channel", zap.Error(err))
	}

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
		logger.Log.Info("Log level updated", zap.String("level", logger.Level().String()))
	})

	return app
}

// CreateAdmin 命令行创建管理员账号
func (a *App) CreateAdmin(name, email, password string) (*model.User, error) {
	authService := service.NewAuthService(repository.NewUserRepository(a.DB), a.Config.JWT.Secret, a.Config.JWT.ExpireTime)
	return authService.CreateAdmin(a.ctx, name, email, password)
}

func (a *App) watchConfig() {
	path, err := filepath.Abs(configFile)
	if err != nil {
		return
	}
	if _, err := os.Stat(path); err != nil {
		logger.Log.Info("Config file not found, hot reload disabled", zap.String("path", path))
		return
	}

	go func() {
		err := configwatcher.WatchConfig(a.ctx, path, func(newCfg *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(newCfg)
			}
		})
		if err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	a.watchConfig()

	// 等待中断信号，5 秒内优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	if a.services != nil && a.services.hub != nil {
		a.services.hub.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close()
	logger.Log.Info("Server exiting")
}

// Close 释放后台协程与外部连接，可重复调用
func (a *App) Close() {
	a.closeOnce.Do(a.close)
}

func (a *App) close() {
	a.cancel()

	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Log.Sync()
}
