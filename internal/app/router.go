package app

import (
	"job_portal_backend/docs"
	"job_portal_backend/internal/config"
	"job_portal_backend/internal/middleware"
	"job_portal_backend/internal/model"
	"job_portal_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	auth := middleware.AuthMiddleware(cfg.JWT.Secret)

	user := router.Group("/api/user")
	user.Use(auth, middleware.RoleMiddleware(model.RoleUser))
	a.registerUserRoutes(user, c)

	admin := router.Group("/api/admin")
	admin.Use(auth, middleware.RoleMiddleware(model.RoleAdmin))
	a.registerAdminRoutes(admin, c)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/dashboard", c.dashboard.GetDashboard)
	rg.GET("/analytics", c.dashboard.GetAnalytics)
	rg.GET("/recommendations", c.recommendation.Recommend)

	courses := rg.Group("/courses")
	{
		courses.GET("", c.course.ListCourses)
		courses.GET("/progress", c.course.Progress)
		courses.POST("/:courseId/enroll", c.course.Enroll)
	}

	jobs := rg.Group("/jobs")
	{
		jobs.GET("", c.job.ListJobs)
		jobs.POST("/:jobId/apply", c.job.Apply)
		jobs.POST("/:jobId/bookmark", c.job.Bookmark)
	}

	mentors := rg.Group("/mentors")
	{
		mentors.GET("", c.mentor.ListMentors)
		mentors.POST("/book", c.mentor.Book)
	}

	tests := rg.Group("/tests")
	{
		tests.GET("", c.test.ListTests)
		tests.GET("/:testId/start", c.test.StartTest)
		tests.POST("/:testId/submit", c.test.SubmitTest)
		tests.GET("/:testId/leaderboard", c.test.Leaderboard)
	}

	challenges := rg.Group("/challenges")
	{
		challenges.GET("/daily", c.challenge.Daily)
		challenges.GET("/weekly", c.challenge.Weekly)
		challenges.POST("/:challengeId/submit", c.challenge.Submit)
	}

	internships := rg.Group("/internships")
	{
		internships.GET("", c.internship.ListInternships)
		internships.POST("/:internId/apply", c.internship.Apply)
		internships.POST("/:internId/tasks/:taskId/complete", c.internship.CompleteTask)
	}

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", c.notification.List)
		notifications.GET("/ws", c.notification.HandleWS)
		notifications.PATCH("/:id/read", c.notification.MarkRead)
	}

	resume := rg.Group("/resume")
	{
		resume.GET("", c.resume.Get)
		resume.POST("", c.resume.Save)
		resume.POST("/pdf", c.resume.UploadPDF)
	}

	reviews := rg.Group("/reviews")
	{
		reviews.GET("", c.review.List)
		reviews.POST("", c.review.Create)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/courses", c.admin.CreateCourse)
	rg.POST("/jobs", c.admin.CreateJob)
	rg.POST("/mentors", c.admin.CreateMentor)
	rg.POST("/tests", c.admin.CreateTest)
	rg.POST("/challenges", c.admin.CreateChallenge)
	rg.POST("/internships", c.admin.CreateInternship)
}
