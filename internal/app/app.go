package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pattern_edu_backend/internal/config"
	"pattern_edu_backend/internal/controller"
	"pattern_edu_backend/internal/repository"
	"pattern_edu_backend/internal/service"
	"pattern_edu_backend/pkg/configwatcher"
	"pattern_edu_backend/pkg/database"
	"pattern_edu_backend/pkg/logger"
	"pattern_edu_backend/pkg/mailer"
	"pattern_edu_backend/pkg/monitoring"
	"pattern_edu_backend/pkg/security"
	"pattern_edu_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// resetTokenTTL bounds how long a password reset link stays valid.
const resetTokenTTL = 30 * time.Minute

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	session    *repository.SessionRepository
	resetToken *repository.ResetTokenRepository
	pattern    *repository.PatternRepository
	profile    *repository.ProfileRepository
	quiz       *repository.QuizRepository
	reflection *repository.ReflectionRepository
	practice   *repository.PracticeRepository
	uml        *repository.UmlRepository
	dashboard  *repository.DashboardRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	pattern    *service.PatternService
	profile    *service.ProfileService
	quiz       *service.QuizService
	reflection *service.ReflectionService
	practice   *service.PracticeService
	uml        *service.UmlService
	dashboard  *service.DashboardService
	storage    *service.StorageService
}

type controllers struct {
	auth       *controller.AuthController
	pattern    *controller.PatternController
	profile    *controller.ProfileController
	quiz       *controller.QuizController
	reflection *controller.ReflectionController
	practice   *controller.PracticeController
	uml        *controller.UmlController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	// A session record may outlive the idle window in redis; the gate enforces
	// the timeout from last_activity, the TTL just garbage-collects.
	sessionTTL := 2 * cfg.Session.IdleTimeout

	return &repositories{
		user:       repository.NewUserRepository(db),
		session:    repository.NewSessionRepository(rdb, sessionTTL),
		resetToken: repository.NewResetTokenRepository(rdb, resetTokenTTL),
		pattern:    repository.NewPatternRepository(db),
		profile:    repository.NewProfileRepository(db),
		quiz:       repository.NewQuizRepository(db),
		reflection: repository.NewReflectionRepository(db),
		practice:   repository.NewPracticeRepository(db),
		uml:        repository.NewUmlRepository(db),
		dashboard:  repository.NewDashboardRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	s := &services{storage: storage}
	s.auth = service.NewAuthService(repos.user, repos.session, repos.resetToken, mailer.New(&cfg.Mail), cfg)
	s.user = service.NewUserService(repos.user)
	s.pattern = service.NewPatternService(repos.pattern)
	s.profile = service.NewProfileService(repos.profile)
	s.quiz = service.NewQuizService(repos.quiz)
	s.reflection = service.NewReflectionService(repos.reflection)
	s.practice = service.NewPracticeService(repos.practice, repos.profile)
	s.uml = service.NewUmlService(repos.uml, storage)
	s.dashboard = service.NewDashboardService(repos.dashboard)
	return s, nil
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, repos.session, a.Config),
		pattern:    controller.NewPatternController(s.pattern),
		profile:    controller.NewProfileController(s.profile),
		quiz:       controller.NewQuizController(s.quiz),
		reflection: controller.NewReflectionController(s.reflection),
		practice:   controller.NewPracticeController(s.practice),
		uml:        controller.NewUmlController(s.uml),
		dashboard:  controller.NewDashboardController(s.dashboard, s.user),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb, cfg)
	services, err := app.initServices(repos, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, repos, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("pattern-learning-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	// Only the idle window is applied hot; middleware reads it per request.
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		a.Config.Session.IdleTimeout = newCfg.Session.IdleTimeout
	})

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
