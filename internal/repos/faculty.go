package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/types"
)

type FacultyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, faculty *types.Faculty) (*types.Faculty, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Faculty, error)
	GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*types.Faculty, error)
	List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Faculty, error)
	Save(ctx context.Context, tx *gorm.DB, faculty *types.Faculty) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) (*types.Faculty, error)
}

type facultyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFacultyRepo(db *gorm.DB, baseLog *logger.Logger) FacultyRepo {
	repoLog := baseLog.With("repo", "FacultyRepo")
	return &facultyRepo{db: db, log: repoLog}
}

func (fr *facultyRepo) Create(ctx context.Context, tx *gorm.DB, faculty *types.Faculty) (*types.Faculty, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	if err := transaction.WithContext(ctx).Create(faculty).Error; err != nil {
		return nil, err
	}
	return faculty, nil
}

func (fr *facultyRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Faculty, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var result types.Faculty
	if err := transaction.WithContext(ctx).First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (fr *facultyRepo) GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*types.Faculty, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var result types.Faculty
	if err := transaction.WithContext(ctx).
		Where("username = ?", username).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (fr *facultyRepo) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Faculty, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var results []*types.Faculty
	if err := transaction.WithContext(ctx).
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *facultyRepo) Save(ctx context.Context, tx *gorm.DB, faculty *types.Faculty) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	return transaction.WithContext(ctx).Save(faculty).Error
}

func (fr *facultyRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) (*types.Faculty, error) {
	removed, err := fr.GetByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	if err := transaction.WithContext(ctx).Delete(&types.Faculty{}, id).Error; err != nil {
		return nil, err
	}
	return removed, nil
}
