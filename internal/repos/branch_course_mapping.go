package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/types"
)

type BranchCourseMappingRepo interface {
	Create(ctx context.Context, tx *gorm.DB, mapping *types.BranchCourseMapping) (*types.BranchCourseMapping, error)
	List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.BranchCourseMapping, error)
}

type branchCourseMappingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBranchCourseMappingRepo(db *gorm.DB, baseLog *logger.Logger) BranchCourseMappingRepo {
	repoLog := baseLog.With("repo", "BranchCourseMappingRepo")
	return &branchCourseMappingRepo{db: db, log: repoLog}
}

func (mr *branchCourseMappingRepo) Create(ctx context.Context, tx *gorm.DB, mapping *types.BranchCourseMapping) (*types.BranchCourseMapping, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if err := transaction.WithContext(ctx).Create(mapping).Error; err != nil {
		return nil, err
	}
	return mapping, nil
}

func (mr *branchCourseMappingRepo) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.BranchCourseMapping, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.BranchCourseMapping
	if err := transaction.WithContext(ctx).
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
