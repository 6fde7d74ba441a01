package profile

import (
	"context"

	"github.com/tuanhng/me-api/internal/domain/profile"
)

// RepresentationCache is the read-through cache for assembled profiles.
// Implementations must treat failures as misses; these methods never error.
type RepresentationCache interface {
	Get(ctx context.Context, id int64) (*profile.Representation, bool)
	Set(ctx context.Context, id int64, rep *profile.Representation)
	Invalidate(ctx context.Context, id int64)
}

// EventPublisher emits profile lifecycle events after successful writes.
type EventPublisher interface {
	PublishProfileEvent(ctx context.Context, action string, profileID int64) error
}

const (
	EventCreated     = "created"
	EventUpdated     = "updated"
	EventProvisioned = "provisioned"
)
