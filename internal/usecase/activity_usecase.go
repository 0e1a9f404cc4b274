package usecase

import (
	"context"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
)

// ActivityUseCase exposes the owner's activity trail.
type ActivityUseCase struct {
	activityRepo ActivityRepository
}

// NewActivityUseCase creates a new ActivityUseCase.
func NewActivityUseCase(activityRepo ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{activityRepo: activityRepo}
}

// List returns recent activity for the owner, newest first.
func (uc *ActivityUseCase) List(ctx context.Context, filter domain.ActivityFilter) ([]*domain.Activity, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)
	return uc.activityRepo.List(ctx, filter)
}
