package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/websaga/websaga-backend/internal/config"
	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/types"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(cfg config.Postgres, log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	serviceLog.Info("Connecting to Postgres...", "host", cfg.Host, "database", cfg.Name)
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	return nil
}

// AutoMigrateAll migrates the full schema on the given handle. Shared with
// tests, which run the same migrations against an in-memory SQLite DB.
func AutoMigrateAll(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&types.Program{},
		&types.Branch{},
		&types.Regulation{},
		&types.ProgramBranchMapping{},
		&types.Course{},
		&types.BranchCourseMapping{},
		&types.Faculty{},
		&types.FacultyCourseMapping{},
		&types.BloomsLevel{},
		&types.DifficultyLevel{},
		&types.Unit{},
		&types.CourseOutcome{},
		&types.Question{},
		&types.GeneratedQP{},
	)
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
