package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/tuanhng/me-api/internal/domain/project"
	"github.com/tuanhng/me-api/internal/domain/skill"
	"github.com/tuanhng/me-api/internal/domain/work"
	"github.com/tuanhng/me-api/pkg/apperror"
	"github.com/tuanhng/me-api/pkg/logger"
)

type SearchUseCase struct {
	skills   skill.Repository
	projects project.Repository
	work     work.Repository
	logger   logger.Logger
}

func NewSearchUseCase(
	skills skill.Repository,
	projects project.Repository,
	workRepo work.Repository,
	log logger.Logger,
) *SearchUseCase {
	return &SearchUseCase{
		skills:   skills,
		projects: projects,
		work:     workRepo,
		logger:   log,
	}
}

type SearchInput struct {
	ProfileID int64
	Query     string
}

// SearchOutput always carries all three keys, each in store order.
type SearchOutput struct {
	Skills   []skill.Representation   `json:"skills"`
	Projects []project.Representation `json:"projects"`
	Work     []work.Representation    `json:"work"`
}

// Execute runs a case-insensitive substring search across the profile's
// skills, projects and work experiences. An empty query is a client error,
// never a scan-all.
func (uc *SearchUseCase) Execute(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	if input.Query == "" {
		return nil, apperror.NewInvalidInput("'q' query param is required", nil)
	}

	uc.logger.Info("executing profile search",
		zap.String("query", input.Query), zap.Int64("profile_id", input.ProfileID))

	skills, err := uc.skills.SearchByName(ctx, input.ProfileID, input.Query)
	if err != nil {
		return nil, err
	}
	projects, err := uc.projects.Search(ctx, input.ProfileID, input.Query)
	if err != nil {
		return nil, err
	}
	experiences, err := uc.work.Search(ctx, input.ProfileID, input.Query)
	if err != nil {
		return nil, err
	}

	return &SearchOutput{
		Skills:   skill.Representations(skills),
		Projects: project.Representations(projects),
		Work:     work.Representations(experiences),
	}, nil
}
