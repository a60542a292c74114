package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/types"
)

type ProgramRepo interface {
	Create(ctx context.Context, tx *gorm.DB, program *types.Program) (*types.Program, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Program, error)
	List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Program, error)
	Save(ctx context.Context, tx *gorm.DB, program *types.Program) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) (*types.Program, error)
}

type programRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgramRepo(db *gorm.DB, baseLog *logger.Logger) ProgramRepo {
	repoLog := baseLog.With("repo", "ProgramRepo")
	return &programRepo{db: db, log: repoLog}
}

func (pr *programRepo) Create(ctx context.Context, tx *gorm.DB, program *types.Program) (*types.Program, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(program).Error; err != nil {
		return nil, err
	}
	return program, nil
}

func (pr *programRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Program, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result types.Program
	if err := transaction.WithContext(ctx).First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (pr *programRepo) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Program, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Program
	if err := transaction.WithContext(ctx).
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *programRepo) Save(ctx context.Context, tx *gorm.DB, program *types.Program) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Save(program).Error
}

func (pr *programRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) (*types.Program, error) {
	removed, err := pr.GetByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Delete(&types.Program{}, id).Error; err != nil {
		return nil, err
	}
	return removed, nil
}
