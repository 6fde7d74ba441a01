package profile

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tuanhng/me-api/internal/domain/profile"
	"github.com/tuanhng/me-api/pkg/apperror"
	"github.com/tuanhng/me-api/pkg/logger"
)

type GetProfileUseCase struct {
	profiles   profile.Repository
	aggregator *Aggregator
	cache      RepresentationCache
	events     EventPublisher
	defaultID  int64
	logger     logger.Logger
}

func NewGetProfileUseCase(
	repo profile.Repository,
	aggregator *Aggregator,
	cache RepresentationCache,
	events EventPublisher,
	defaultID int64,
	log logger.Logger,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		profiles:   repo,
		aggregator: aggregator,
		cache:      cache,
		events:     events,
		defaultID:  defaultID,
		logger:     log,
	}
}

type GetProfileInput struct {
	ID int64
}

type GetProfileOutput struct {
	Representation *profile.Representation
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	if rep, ok := uc.cache.Get(ctx, input.ID); ok {
		return &GetProfileOutput{Representation: rep}, nil
	}

	p, err := uc.profiles.FindByID(ctx, input.ID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) || input.ID != uc.defaultID {
			return nil, err
		}
		// first access to the well-known default id: provision the seed
		// dataset instead of returning "not found"
		p, err = uc.provisionDefault(ctx)
		if err != nil {
			return nil, err
		}
	}

	rep := uc.aggregator.Assemble(ctx, p)
	uc.cache.Set(ctx, p.ID, rep)
	return &GetProfileOutput{Representation: rep}, nil
}

func (uc *GetProfileUseCase) provisionDefault(ctx context.Context) (*profile.Profile, error) {
	created, err := uc.profiles.CreateWithChildren(ctx, seedBundle())
	if err != nil {
		// A concurrent first read may have provisioned already; the unique
		// email constraint fails this writer, which then retries as a read.
		if errors.Is(err, apperror.ErrConflict) {
			uc.logger.Warn("concurrent default-profile provisioning detected, re-reading")
			return uc.profiles.FindByID(ctx, uc.defaultID)
		}
		return nil, err
	}

	uc.logger.Info("provisioned default profile", zap.Int64("profile_id", created.ID))
	publishEvent(ctx, uc.events, uc.logger, EventProvisioned, created.ID)
	return created, nil
}

func publishEvent(ctx context.Context, events EventPublisher, log logger.Logger, action string, profileID int64) {
	if err := events.PublishProfileEvent(ctx, action, profileID); err != nil {
		log.Warn("profile event publish failed",
			zap.String("action", action), zap.Int64("profile_id", profileID), zap.Error(err))
	}
}
