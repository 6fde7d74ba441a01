package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/tuanhng/me-api/internal/domain/profile"
	"github.com/tuanhng/me-api/pkg/logger"
)

type UpdateProfileUseCase struct {
	profiles   profile.Repository
	aggregator *Aggregator
	cache      RepresentationCache
	events     EventPublisher
	logger     logger.Logger
}

func NewUpdateProfileUseCase(
	repo profile.Repository,
	aggregator *Aggregator,
	cache RepresentationCache,
	events EventPublisher,
	log logger.Logger,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profiles:   repo,
		aggregator: aggregator,
		cache:      cache,
		events:     events,
		logger:     log,
	}
}

type UpdateProfileInput struct {
	ID     int64
	Update profile.Update
}

type UpdateProfileOutput struct {
	Representation *profile.Representation
}

// Execute updates name/email/education only; child collections are not
// mutated through this path.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	updated, err := uc.profiles.Update(ctx, input.ID, input.Update)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("updated profile", zap.Int64("profile_id", updated.ID))
	uc.cache.Invalidate(ctx, updated.ID)
	publishEvent(ctx, uc.events, uc.logger, EventUpdated, updated.ID)

	rep := uc.aggregator.Assemble(ctx, updated)
	return &UpdateProfileOutput{Representation: rep}, nil
}
