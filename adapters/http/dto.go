package http

import (
	"fmt"
	"time"

	"github.com/tuanhng/me-api/internal/domain/link"
	"github.com/tuanhng/me-api/internal/domain/profile"
	"github.com/tuanhng/me-api/internal/domain/project"
	"github.com/tuanhng/me-api/internal/domain/skill"
	"github.com/tuanhng/me-api/internal/domain/work"
)

type CreateSkillRequest struct {
	Name  string `json:"name" binding:"required"`
	Level string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
}

type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubURL    *string  `json:"github_url"`
	DemoURL      *string  `json:"demo_url"`
}

type CreateWorkRequest struct {
	Company     string `json:"company" binding:"required"`
	Position    string `json:"position" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
}

type CreateProfileRequest struct {
	Name      string                 `json:"name" binding:"required"`
	Email     string                 `json:"email" binding:"required"`
	Education *string                `json:"education"`
	Skills    []CreateSkillRequest   `json:"skills" binding:"omitempty,dive"`
	Projects  []CreateProjectRequest `json:"projects" binding:"omitempty,dive"`
	Work      []CreateWorkRequest    `json:"work" binding:"omitempty,dive"`
	Links     map[string]string      `json:"links"`
}

// ToBundle maps the request body onto a domain bundle. Dates must be
// YYYY-MM-DD; links with an empty URL are skipped.
func (r *CreateProfileRequest) ToBundle() (*profile.Bundle, error) {
	b := &profile.Bundle{
		Profile: profile.Profile{
			Name:      r.Name,
			Email:     r.Email,
			Education: r.Education,
		},
	}

	for _, s := range r.Skills {
		level := s.Level
		if level == "" {
			level = skill.LevelBeginner
		}
		b.Skills = append(b.Skills, skill.Skill{Name: s.Name, Level: level})
	}

	for _, p := range r.Projects {
		b.Projects = append(b.Projects, project.Project{
			Title:        p.Title,
			Description:  p.Description,
			Technologies: project.EncodeTechnologies(p.Technologies),
			GithubURL:    p.GithubURL,
			DemoURL:      p.DemoURL,
		})
	}

	for _, w := range r.Work {
		start, err := parseDate(w.StartDate, "start_date")
		if err != nil {
			return nil, err
		}
		end, err := parseDate(w.EndDate, "end_date")
		if err != nil {
			return nil, err
		}
		b.Work = append(b.Work, work.WorkExperience{
			Company:     w.Company,
			Position:    w.Position,
			Description: w.Description,
			StartDate:   start,
			EndDate:     end,
			IsCurrent:   w.IsCurrent,
		})
	}

	for linkType, url := range r.Links {
		if url == "" {
			continue
		}
		b.Links = append(b.Links, link.Link{Type: linkType, URL: url})
	}

	return b, nil
}

func parseDate(s, field string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(work.DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%s must be formatted as %s: %w", field, work.DateLayout, err)
	}
	return &t, nil
}

type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Education *string `json:"education"`
}

func (r *UpdateProfileRequest) ToDomainUpdate() profile.Update {
	return profile.Update{
		Name:      r.Name,
		Email:     r.Email,
		Education: r.Education,
	}
}
