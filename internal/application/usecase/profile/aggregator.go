package profile

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tuanhng/me-api/internal/domain/link"
	"github.com/tuanhng/me-api/internal/domain/profile"
	"github.com/tuanhng/me-api/internal/domain/project"
	"github.com/tuanhng/me-api/internal/domain/skill"
	"github.com/tuanhng/me-api/internal/domain/work"
	"github.com/tuanhng/me-api/pkg/logger"
)

// Aggregator assembles a profile with its four child collections. Assembly is
// two-tier: the composed path fails on the first broken collection, after
// which the resilient path re-attempts each collection independently and
// substitutes an empty one only where the load still fails. A partially
// materialized object graph is a recoverable condition here, not a fatal one.
type Aggregator struct {
	skills   skill.Repository
	projects project.Repository
	work     work.Repository
	links    link.Repository
	logger   logger.Logger
}

func NewAggregator(
	skills skill.Repository,
	projects project.Repository,
	workRepo work.Repository,
	links link.Repository,
	log logger.Logger,
) *Aggregator {
	return &Aggregator{
		skills:   skills,
		projects: projects,
		work:     workRepo,
		links:    links,
		logger:   log,
	}
}

// Assemble builds the nested representation for an already-loaded profile.
// It never fails: all four collection keys are always present in the result.
func (a *Aggregator) Assemble(ctx context.Context, p *profile.Profile) *profile.Representation {
	rep, err := a.compose(ctx, p)
	if err == nil {
		return rep
	}

	a.logger.Warn("profile composition failed, degrading per collection",
		zap.Int64("profile_id", p.ID), zap.Error(err))
	return a.composeResilient(ctx, p)
}

func (a *Aggregator) compose(ctx context.Context, p *profile.Profile) (*profile.Representation, error) {
	skills, err := a.skills.ListByProfile(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}
	projects, err := a.projects.ListByProfile(ctx, p.ID, "")
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	experiences, err := a.work.ListByProfile(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("load work experiences: %w", err)
	}
	links, err := a.links.ListByProfile(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}

	return newRepresentation(p, skills, projects, experiences, links), nil
}

// composeResilient rebuilds the representation from the raw profile fields,
// attempting each child collection on its own. A failure in one collection
// must not blunt the other three.
func (a *Aggregator) composeResilient(ctx context.Context, p *profile.Profile) *profile.Representation {
	skills, err := a.skills.ListByProfile(ctx, p.ID)
	if err != nil {
		a.logger.Warn("skills unavailable, serving empty collection", zap.Int64("profile_id", p.ID), zap.Error(err))
		skills = nil
	}
	projects, err := a.projects.ListByProfile(ctx, p.ID, "")
	if err != nil {
		a.logger.Warn("projects unavailable, serving empty collection", zap.Int64("profile_id", p.ID), zap.Error(err))
		projects = nil
	}
	experiences, err := a.work.ListByProfile(ctx, p.ID)
	if err != nil {
		a.logger.Warn("work experiences unavailable, serving empty collection", zap.Int64("profile_id", p.ID), zap.Error(err))
		experiences = nil
	}
	links, err := a.links.ListByProfile(ctx, p.ID)
	if err != nil {
		a.logger.Warn("links unavailable, serving empty collection", zap.Int64("profile_id", p.ID), zap.Error(err))
		links = nil
	}

	return newRepresentation(p, skills, projects, experiences, links)
}

func newRepresentation(
	p *profile.Profile,
	skills []skill.Skill,
	projects []project.Project,
	experiences []work.WorkExperience,
	links []link.Link,
) *profile.Representation {
	return &profile.Representation{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Education: p.Education,
		Skills:    skill.Representations(skills),
		Projects:  project.Representations(projects),
		Work:      work.Representations(experiences),
		Links:     link.CanonicalMap(links),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
