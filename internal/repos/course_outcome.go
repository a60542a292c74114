package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/types"
)

type CourseOutcomeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, outcome *types.CourseOutcome) (*types.CourseOutcome, error)
	ListByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.CourseOutcome, error)
}

type courseOutcomeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseOutcomeRepo(db *gorm.DB, baseLog *logger.Logger) CourseOutcomeRepo {
	repoLog := baseLog.With("repo", "CourseOutcomeRepo")
	return &courseOutcomeRepo{db: db, log: repoLog}
}

func (or *courseOutcomeRepo) Create(ctx context.Context, tx *gorm.DB, outcome *types.CourseOutcome) (*types.CourseOutcome, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	if err := transaction.WithContext(ctx).Create(outcome).Error; err != nil {
		return nil, err
	}
	return outcome, nil
}

func (or *courseOutcomeRepo) ListByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.CourseOutcome, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var results []*types.CourseOutcome
	if err := transaction.WithContext(ctx).
		Where("course_id = ?", courseID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
