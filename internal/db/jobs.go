package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SoapDevX/pathfinder-ai/internal/types"
)

// UpsertJob inserts or updates a job keyed by its case-insensitive
// title+company identity. Last write wins on conflict.
func (db *DB) UpsertJob(ctx context.Context, job types.Job, skills []string) error {
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}

	location := job.Location
	if location == "" {
		location = "Remote"
	}
	jobType := job.JobType
	if jobType == "" {
		jobType = "full-time"
	}
	source := job.Source
	if source == "" {
		source = "unknown"
	}
	posted := job.PostedDate
	if posted.IsZero() {
		posted = time.Now()
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO jobs (title, company, location, description, requirements,
		                   salary, job_type, remote, source, source_url, posted_date, skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (LOWER(title), LOWER(company)) DO UPDATE SET
		     location = $3, description = $4, requirements = $5, salary = $6,
		     job_type = $7, remote = $8, source = $9, source_url = $10,
		     posted_date = $11, skills = $12, updated_at = NOW()`,
		job.Title, job.Company, location, job.Description, job.Requirements,
		nullIfEmpty(job.Salary), jobType, job.Remote, source, job.SourceURL,
		posted, skillsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert job: %w", err)
	}
	return nil
}

// ListRecentJobs returns stored jobs ordered by posted date, newest first.
func (db *DB) ListRecentJobs(ctx context.Context, limit int) ([]types.Job, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT title, company, location, description, requirements,
		        COALESCE(salary, ''), job_type, remote, source, source_url, posted_date
		 FROM jobs
		 ORDER BY posted_date DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		var j types.Job
		if err := rows.Scan(&j.Title, &j.Company, &j.Location, &j.Description,
			&j.Requirements, &j.Salary, &j.JobType, &j.Remote, &j.Source,
			&j.SourceURL, &j.PostedDate); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}
	return jobs, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
