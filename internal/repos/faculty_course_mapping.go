package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/types"
)

type FacultyCourseMappingRepo interface {
	Create(ctx context.Context, tx *gorm.DB, mapping *types.FacultyCourseMapping) (*types.FacultyCourseMapping, error)
	List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.FacultyCourseMapping, error)
}

type facultyCourseMappingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFacultyCourseMappingRepo(db *gorm.DB, baseLog *logger.Logger) FacultyCourseMappingRepo {
	repoLog := baseLog.With("repo", "FacultyCourseMappingRepo")
	return &facultyCourseMappingRepo{db: db, log: repoLog}
}

func (mr *facultyCourseMappingRepo) Create(ctx context.Context, tx *gorm.DB, mapping *types.FacultyCourseMapping) (*types.FacultyCourseMapping, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if err := transaction.WithContext(ctx).Create(mapping).Error; err != nil {
		return nil, err
	}
	return mapping, nil
}

func (mr *facultyCourseMappingRepo) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.FacultyCourseMapping, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.FacultyCourseMapping
	if err := transaction.WithContext(ctx).
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
