package project

import (
	"context"
	"fmt"

	"github.com/tuanhng/me-api/internal/domain/project"
)

type ListProjectsUseCase struct {
	projects project.Repository
}

func NewListProjectsUseCase(repo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projects: repo}
}

type ListProjectsInput struct {
	ProfileID int64
	// Tag restricts the list to projects carrying the tag as an exact
	// technology element.
	Tag string
}

type ListProjectsOutput struct {
	Projects []project.Representation
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	items, err := uc.projects.ListByProfile(ctx, input.ProfileID, input.Tag)
	if err != nil {
		return nil, fmt.Errorf("list projects failed: %w", err)
	}
	return &ListProjectsOutput{Projects: project.Representations(items)}, nil
}
