package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/tuanhng/me-api/internal/domain/profile"
	"github.com/tuanhng/me-api/pkg/logger"
)

type CreateProfileUseCase struct {
	profiles   profile.Repository
	aggregator *Aggregator
	cache      RepresentationCache
	events     EventPublisher
	logger     logger.Logger
}

func NewCreateProfileUseCase(
	repo profile.Repository,
	aggregator *Aggregator,
	cache RepresentationCache,
	events EventPublisher,
	log logger.Logger,
) *CreateProfileUseCase {
	return &CreateProfileUseCase{
		profiles:   repo,
		aggregator: aggregator,
		cache:      cache,
		events:     events,
		logger:     log,
	}
}

type CreateProfileInput struct {
	Bundle *profile.Bundle
}

type CreateProfileOutput struct {
	Representation *profile.Representation
}

func (uc *CreateProfileUseCase) Execute(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	created, err := uc.profiles.CreateWithChildren(ctx, input.Bundle)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("created profile", zap.Int64("profile_id", created.ID), zap.String("email", created.Email))
	uc.cache.Invalidate(ctx, created.ID)
	publishEvent(ctx, uc.events, uc.logger, EventCreated, created.ID)

	rep := uc.aggregator.Assemble(ctx, created)
	return &CreateProfileOutput{Representation: rep}, nil
}
