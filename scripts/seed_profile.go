package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Seeds the demo profile directly, for environments where the first API read
// should not be the one paying the provisioning cost.
func main() {
	fmt.Println("seeding demo profile into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")

	pool, err := pgxpool.New(context.Background(), DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	query := `
		INSERT INTO profiles (name, email, education)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
		RETURNING id
	`
	var profileID int64
	err = pool.QueryRow(ctx, query, "Demo User", "demo@me-api.dev", "B.Tech in Computer Science").Scan(&profileID)
	if err != nil {
		log.Fatalf("profile already seeded or insert failed: %v", err)
	}

	skills := [][2]string{
		{"Python", "advanced"},
		{"Flask", "advanced"},
		{"JavaScript", "intermediate"},
		{"React", "intermediate"},
		{"MySQL", "intermediate"},
		{"Git", "advanced"},
	}
	for _, s := range skills {
		_, err = pool.Exec(ctx,
			`INSERT INTO skills (profile_id, name, level) VALUES ($1, $2, $3)`,
			profileID, s[0], s[1],
		)
		if err != nil {
			log.Fatalf("cannot add skill '%s': %v", s[0], err)
		}
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO projects (profile_id, title, description, technologies, github_url, demo_url)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		profileID,
		"Me-API Playground",
		"Personal profile API with CRUD, filtering and cross-entity search.",
		`["Python","Flask","MySQL","React"]`,
		"https://github.com/demo-user/me-api-playground",
		"https://me-api-playground.onrender.com",
	)
	if err != nil {
		log.Fatalf("cannot add project: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO work_experiences (profile_id, company, position, description, start_date, is_current)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		profileID,
		"Tech Solutions Inc.",
		"Software Developer",
		"Building and operating internal web services.",
		"2023-06-01",
		true,
	)
	if err != nil {
		log.Fatalf("cannot add work experience: %v", err)
	}

	links := [][2]string{
		{"github", "https://github.com/demo-user"},
		{"linkedin", "https://linkedin.com/in/demo-user"},
	}
	for _, l := range links {
		_, err = pool.Exec(ctx,
			`INSERT INTO links (profile_id, link_type, url) VALUES ($1, $2, $3)`,
			profileID, l[0], l[1],
		)
		if err != nil {
			log.Fatalf("cannot add link '%s': %v", l[0], err)
		}
	}

	fmt.Printf("seeded demo profile with id %d successfully!\n", profileID)
}
