package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/websaga/websaga-backend/internal/config"
	"github.com/websaga/websaga-backend/internal/db"
	"github.com/websaga/websaga-backend/internal/handlers"
	"github.com/websaga/websaga-backend/internal/middleware"
	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/repos"
	"github.com/websaga/websaga-backend/internal/server"
	"github.com/websaga/websaga-backend/internal/services"
)

func main() {
	_ = godotenv.Load()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	postgresService, err := db.NewPostgresService(cfg.Postgres, log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	gdb := postgresService.DB()

	// Repos
	log.Info("Setting up repos...")
	programRepo := repos.NewProgramRepo(gdb, log)
	branchRepo := repos.NewBranchRepo(gdb, log)
	regulationRepo := repos.NewRegulationRepo(gdb, log)
	pbMappingRepo := repos.NewProgramBranchMappingRepo(gdb, log)
	courseRepo := repos.NewCourseRepo(gdb, log)
	bcMappingRepo := repos.NewBranchCourseMappingRepo(gdb, log)
	facultyRepo := repos.NewFacultyRepo(gdb, log)
	fcMappingRepo := repos.NewFacultyCourseMappingRepo(gdb, log)
	bloomsRepo := repos.NewBloomsLevelRepo(gdb, log)
	difficultyRepo := repos.NewDifficultyLevelRepo(gdb, log)
	unitRepo := repos.NewUnitRepo(gdb, log)
	outcomeRepo := repos.NewCourseOutcomeRepo(gdb, log)
	questionRepo := repos.NewQuestionRepo(gdb, log)
	qpRepo := repos.NewGeneratedQPRepo(gdb, log)

	// Services
	log.Info("Setting up services...")
	branchService := services.NewBranchService(gdb, log, branchRepo, pbMappingRepo, programRepo)
	facultyService := services.NewFacultyService(log, facultyRepo)
	authService := services.NewAuthService(log, facultyRepo, cfg.JWTSecretKey, cfg.AccessTokenTTL)
	qpService := services.NewGeneratedQPService(log, qpRepo)

	// Handlers
	router := server.NewRouter(server.RouterConfig{
		CORSOrigins:        cfg.CORSOrigins,
		AuthMiddleware:     middleware.NewAuthMiddleware(log, authService),
		AuthHandler:        handlers.NewAuthHandler(authService, facultyService),
		ProgramHandler:     handlers.NewProgramHandler(programRepo),
		BranchHandler:      handlers.NewBranchHandler(branchService),
		RegulationHandler:  handlers.NewRegulationHandler(regulationRepo),
		CourseHandler:      handlers.NewCourseHandler(courseRepo, outcomeRepo, questionRepo),
		FacultyHandler:     handlers.NewFacultyHandler(facultyService),
		GeneratedQPHandler: handlers.NewGeneratedQPHandler(qpService),
		LookupHandler:      handlers.NewLookupHandler(bloomsRepo, difficultyRepo, unitRepo),
		MappingHandler:     handlers.NewMappingHandler(bcMappingRepo, fcMappingRepo),
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server exited with error", "error", err)
	}
	log.Info("Server stopped")
}
