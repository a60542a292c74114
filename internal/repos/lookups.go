package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/types"
)

// Repositories for the flat classification lookups. The admin surface
// only ever lists and seeds these, so no point accessors exist.

type BloomsLevelRepo interface {
	Create(ctx context.Context, tx *gorm.DB, level *types.BloomsLevel) (*types.BloomsLevel, error)
	List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.BloomsLevel, error)
}

type bloomsLevelRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBloomsLevelRepo(db *gorm.DB, baseLog *logger.Logger) BloomsLevelRepo {
	repoLog := baseLog.With("repo", "BloomsLevelRepo")
	return &bloomsLevelRepo{db: db, log: repoLog}
}

func (lr *bloomsLevelRepo) Create(ctx context.Context, tx *gorm.DB, level *types.BloomsLevel) (*types.BloomsLevel, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	if err := transaction.WithContext(ctx).Create(level).Error; err != nil {
		return nil, err
	}
	return level, nil
}

func (lr *bloomsLevelRepo) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.BloomsLevel, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var results []*types.BloomsLevel
	if err := transaction.WithContext(ctx).
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

type DifficultyLevelRepo interface {
	Create(ctx context.Context, tx *gorm.DB, level *types.DifficultyLevel) (*types.DifficultyLevel, error)
	List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.DifficultyLevel, error)
}

type difficultyLevelRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDifficultyLevelRepo(db *gorm.DB, baseLog *logger.Logger) DifficultyLevelRepo {
	repoLog := baseLog.With("repo", "DifficultyLevelRepo")
	return &difficultyLevelRepo{db: db, log: repoLog}
}

func (lr *difficultyLevelRepo) Create(ctx context.Context, tx *gorm.DB, level *types.DifficultyLevel) (*types.DifficultyLevel, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	if err := transaction.WithContext(ctx).Create(level).Error; err != nil {
		return nil, err
	}
	return level, nil
}

func (lr *difficultyLevelRepo) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.DifficultyLevel, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var results []*types.DifficultyLevel
	if err := transaction.WithContext(ctx).
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

type UnitRepo interface {
	Create(ctx context.Context, tx *gorm.DB, unit *types.Unit) (*types.Unit, error)
	List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Unit, error)
}

type unitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUnitRepo(db *gorm.DB, baseLog *logger.Logger) UnitRepo {
	repoLog := baseLog.With("repo", "UnitRepo")
	return &unitRepo{db: db, log: repoLog}
}

func (ur *unitRepo) Create(ctx context.Context, tx *gorm.DB, unit *types.Unit) (*types.Unit, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	if err := transaction.WithContext(ctx).Create(unit).Error; err != nil {
		return nil, err
	}
	return unit, nil
}

func (ur *unitRepo) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Unit, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var results []*types.Unit
	if err := transaction.WithContext(ctx).
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
