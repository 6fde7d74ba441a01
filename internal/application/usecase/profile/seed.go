package profile

import (
	"time"

	"github.com/tuanhng/me-api/internal/domain/link"
	"github.com/tuanhng/me-api/internal/domain/profile"
	"github.com/tuanhng/me-api/internal/domain/project"
	"github.com/tuanhng/me-api/internal/domain/skill"
	"github.com/tuanhng/me-api/internal/domain/work"
)

// seedBundle is the demo dataset provisioned on first access to the default
// profile, so the common read returns data instead of "not found".
func seedBundle() *profile.Bundle {
	education := "B.Tech in Computer Science"
	github := "https://github.com/demo-user/me-api-playground"
	demo := "https://me-api-playground.onrender.com"
	started := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)

	return &profile.Bundle{
		Profile: profile.Profile{
			Name:      "Demo User",
			Email:     "demo@me-api.dev",
			Education: &education,
		},
		Skills: []skill.Skill{
			{Name: "Python", Level: skill.LevelAdvanced},
			{Name: "Flask", Level: skill.LevelAdvanced},
			{Name: "JavaScript", Level: skill.LevelIntermediate},
			{Name: "React", Level: skill.LevelIntermediate},
			{Name: "MySQL", Level: skill.LevelIntermediate},
			{Name: "Git", Level: skill.LevelAdvanced},
		},
		Projects: []project.Project{
			{
				Title:        "Me-API Playground",
				Description:  "Personal profile API with CRUD, filtering and cross-entity search.",
				Technologies: project.EncodeTechnologies([]string{"Python", "Flask", "MySQL", "React"}),
				GithubURL:    &github,
				DemoURL:      &demo,
			},
		},
		Work: []work.WorkExperience{
			{
				Company:     "Tech Solutions Inc.",
				Position:    "Software Developer",
				Description: "Building and operating internal web services.",
				StartDate:   &started,
				IsCurrent:   true,
			},
		},
		Links: []link.Link{
			{Type: link.TypeGithub, URL: "https://github.com/demo-user"},
			{Type: link.TypeLinkedin, URL: "https://linkedin.com/in/demo-user"},
		},
	}
}
