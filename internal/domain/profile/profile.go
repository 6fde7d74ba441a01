package profile

import (
	"context"
	"time"

	"github.com/tuanhng/me-api/internal/domain/link"
	"github.com/tuanhng/me-api/internal/domain/project"
	"github.com/tuanhng/me-api/internal/domain/skill"
	"github.com/tuanhng/me-api/internal/domain/work"
)

type Profile struct {
	ID        int64
	Name      string
	Email     string
	Education *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Representation is the nested shape served for a profile. All four child
// collection keys are always present, even when empty.
type Representation struct {
	ID        int64                    `json:"id"`
	Name      string                   `json:"name"`
	Email     string                   `json:"email"`
	Education *string                  `json:"education"`
	Skills    []skill.Representation   `json:"skills"`
	Projects  []project.Representation `json:"projects"`
	Work      []work.Representation    `json:"work"`
	Links     map[string]string        `json:"links"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// Bundle is a profile plus its children, persisted as a single transaction.
type Bundle struct {
	Profile  Profile
	Skills   []skill.Skill
	Projects []project.Project
	Work     []work.WorkExperience
	Links    []link.Link
}

// Update carries the PUT payload; nil fields keep their stored value.
type Update struct {
	Name      *string
	Email     *string
	Education *string
}

type Repository interface {
	FindByID(ctx context.Context, id int64) (*Profile, error)
	// CreateWithChildren persists the bundle atomically and returns the
	// profile with its assigned id. The children's ProfileID fields are
	// filled in by the store.
	CreateWithChildren(ctx context.Context, b *Bundle) (*Profile, error)
	Update(ctx context.Context, id int64, upd Update) (*Profile, error)
}
