package services

import (
	"context"
	"time"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/repos"
	"github.com/websaga/websaga-backend/internal/types"
)

type GeneratedQPService interface {
	CreateGeneratedQP(ctx context.Context, qp *types.GeneratedQP) (*types.GeneratedQP, error)
	GetGeneratedQP(ctx context.Context, id uint) (*types.GeneratedQP, error)
	ListGeneratedQPs(ctx context.Context, skip, limit int) ([]*types.GeneratedQP, error)
}

type generatedQPService struct {
	log    *logger.Logger
	qpRepo repos.GeneratedQPRepo
	now    func() time.Time
}

func NewGeneratedQPService(log *logger.Logger, qpRepo repos.GeneratedQPRepo) GeneratedQPService {
	serviceLog := log.With("service", "GeneratedQPService")
	return &generatedQPService{log: serviceLog, qpRepo: qpRepo, now: time.Now}
}

// CreateGeneratedQP stamps created_at with the current UTC time when the
// caller leaves it empty. The questions blob is stored untouched.
func (gs *generatedQPService) CreateGeneratedQP(ctx context.Context, qp *types.GeneratedQP) (*types.GeneratedQP, error) {
	if qp.CreatedAt == "" {
		qp.CreatedAt = gs.now().UTC().Format(time.RFC3339)
	}
	return gs.qpRepo.Create(ctx, nil, qp)
}

func (gs *generatedQPService) GetGeneratedQP(ctx context.Context, id uint) (*types.GeneratedQP, error) {
	return gs.qpRepo.GetByID(ctx, nil, id)
}

func (gs *generatedQPService) ListGeneratedQPs(ctx context.Context, skip, limit int) ([]*types.GeneratedQP, error) {
	return gs.qpRepo.List(ctx, nil, skip, limit)
}
