package app

import (
	"pattern_edu_backend/internal/config"
	"pattern_edu_backend/internal/middleware"
	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/pkg/monitoring"

	_ "pattern_edu_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	api.GET("/health", c.health.HealthCheck)

	// Auth pages hit these without a session; /session runs the gate in
	// advisory mode so the page can redirect an already-signed-in visitor.
	auth := api.Group("/auth")
	{
		auth.POST("/signup", c.auth.Signup)
		auth.POST("/login", c.auth.Login)
		auth.POST("/set-session", c.auth.SetSession)
		auth.POST("/forgot-password", c.auth.ForgotPassword)
		auth.POST("/reset-password", c.auth.ResetPassword)
		auth.GET("/session", middleware.TryAuthMiddleware(cfg, repos.session), c.auth.CheckSession)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg, repos.session))
	{
		authed.POST("/auth/logout", c.auth.Logout)
		authed.GET("/profile", c.auth.GetProfile)

		authed.GET("/patterns", c.pattern.ListPatterns)
		authed.GET("/patterns/:id", c.pattern.GetPattern)

		authed.GET("/pattern-profile", c.profile.ListPatternProfiles)
		authed.GET("/pattern-profile/:id", c.profile.GetPatternProfile)

		reflection := authed.Group("/reflection")
		{
			reflection.GET("/form/:patternId", c.reflection.GetForm)
			reflection.POST("/submit", c.reflection.SubmitResponses)
		}

		practice := authed.Group("/practice")
		{
			practice.GET("/:patternId/questions", c.practice.GetQuestions)
			practice.POST("/submit", c.practice.Submit)
			practice.GET("/history", c.practice.GetHistory)
		}

		quiz := authed.Group("/final-quiz")
		{
			quiz.GET("/gate", c.quiz.GetGate)
			quiz.POST("/start", c.quiz.StartAttempt)
			quiz.POST("/submit", c.quiz.SubmitAttempt)
			quiz.POST("/cheat-sheet-access", c.quiz.LogCheatSheetAccess)
		}

		uml := authed.Group("/uml")
		{
			uml.GET("/exercises/:patternId", c.uml.GetExercises)
			uml.POST("/submissions", c.uml.SubmitDiagram)
			uml.GET("/submissions/my", c.uml.GetMySubmissions)
		}

		educator := authed.Group("/educator")
		educator.Use(middleware.RoleMiddleware(model.Educator))
		{
			educator.GET("/dashboard", c.dashboard.GetOverview)
			educator.GET("/students", c.dashboard.ListStudents)
			educator.GET("/reflection/:patternId/responses", c.reflection.ListResponses)
			educator.GET("/uml/:exerciseId/submissions", c.uml.ListSubmissions)
		}

		authed.POST("/auth/force-logout/:id", middleware.RoleMiddleware(model.Educator), c.auth.ForceLogout)
	}
}
