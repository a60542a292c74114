package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/websaga/websaga-backend/internal/handlers"
	"github.com/websaga/websaga-backend/internal/metrics"
	"github.com/websaga/websaga-backend/internal/middleware"
)

type RouterConfig struct {
	CORSOrigins []string

	AuthMiddleware     *middleware.AuthMiddleware
	AuthHandler        *handlers.AuthHandler
	ProgramHandler     *handlers.ProgramHandler
	BranchHandler      *handlers.BranchHandler
	RegulationHandler  *handlers.RegulationHandler
	CourseHandler      *handlers.CourseHandler
	FacultyHandler     *handlers.FacultyHandler
	GeneratedQPHandler *handlers.GeneratedQPHandler
	LookupHandler      *handlers.LookupHandler
	MappingHandler     *handlers.MappingHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	auth := router.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.GET("/users", cfg.AuthHandler.Users)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}

	programs := router.Group("/programs")
	{
		programs.GET("/", cfg.ProgramHandler.List)
		programs.GET("/:id", cfg.ProgramHandler.Get)
		programs.POST("/", cfg.ProgramHandler.Create)
		programs.PUT("/:id", cfg.ProgramHandler.Update)
		programs.DELETE("/:id", cfg.ProgramHandler.Delete)
	}

	branches := router.Group("/branches")
	{
		branches.GET("/", cfg.BranchHandler.List)
		branches.GET("/:id", cfg.BranchHandler.Get)
		branches.POST("/", cfg.BranchHandler.Create)
		branches.PUT("/:id", cfg.BranchHandler.Update)
		branches.DELETE("/:id", cfg.BranchHandler.Delete)
	}

	regulations := router.Group("/regulations")
	{
		regulations.GET("/", cfg.RegulationHandler.List)
		regulations.GET("/:id", cfg.RegulationHandler.Get)
		regulations.POST("/", cfg.RegulationHandler.Create)
		regulations.PUT("/:id", cfg.RegulationHandler.Update)
		regulations.DELETE("/:id", cfg.RegulationHandler.Delete)
	}

	courses := router.Group("/courses")
	{
		courses.GET("/", cfg.CourseHandler.List)
		courses.GET("/:id", cfg.CourseHandler.Get)
		courses.POST("/", cfg.CourseHandler.Create)
		courses.PUT("/:id", cfg.CourseHandler.Update)
		courses.DELETE("/:id", cfg.CourseHandler.Delete)
		courses.GET("/:id/outcomes", cfg.CourseHandler.ListOutcomes)
		courses.POST("/:id/outcomes", cfg.CourseHandler.CreateOutcome)
		courses.GET("/:id/questions", cfg.CourseHandler.ListQuestions)
		courses.POST("/:id/questions", cfg.CourseHandler.CreateQuestion)
	}

	faculties := router.Group("/faculties")
	{
		faculties.GET("/", cfg.FacultyHandler.List)
		faculties.GET("/:id", cfg.FacultyHandler.Get)
		faculties.POST("/", cfg.FacultyHandler.Create)
		faculties.PUT("/:id", cfg.FacultyHandler.Update)
		faculties.DELETE("/:id", cfg.FacultyHandler.Delete)
	}

	generatedQPs := router.Group("/generated_qps")
	{
		generatedQPs.GET("/", cfg.GeneratedQPHandler.List)
		generatedQPs.GET("/:id", cfg.GeneratedQPHandler.Get)
		generatedQPs.POST("/", cfg.GeneratedQPHandler.Create)
	}

	router.GET("/blooms_levels/", cfg.LookupHandler.ListBloomsLevels)
	router.POST("/blooms_levels/", cfg.LookupHandler.CreateBloomsLevel)
	router.GET("/difficulty_levels/", cfg.LookupHandler.ListDifficultyLevels)
	router.POST("/difficulty_levels/", cfg.LookupHandler.CreateDifficultyLevel)
	router.GET("/units/", cfg.LookupHandler.ListUnits)
	router.POST("/units/", cfg.LookupHandler.CreateUnit)

	router.GET("/branch_course_mappings/", cfg.MappingHandler.ListBranchCourseMappings)
	router.POST("/branch_course_mappings/", cfg.MappingHandler.CreateBranchCourseMapping)
	router.GET("/faculty_course_mappings/", cfg.MappingHandler.ListFacultyCourseMappings)
	router.POST("/faculty_course_mappings/", cfg.MappingHandler.CreateFacultyCourseMapping)

	return router
}
