package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hireboard/recruitment-service/internal/domain"
)

// JobRepository encapsulates job persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	ListByRecruiter(ctx context.Context, recruiterID int64) ([]domain.Job, error)
	// ListForApplicant returns every job annotated with the applicant's
	// application status, if any.
	ListForApplicant(ctx context.Context, applicantID int64) ([]domain.JobListing, error)
	// DeleteOwned removes the given jobs and their applications atomically.
	// When any id is not a job owned by recruiterID nothing is deleted and the
	// offending ids are returned.
	DeleteOwned(ctx context.Context, recruiterID int64, ids []int64) (deleted int, missing []int64, err error)
	ListRecords(ctx context.Context) ([]domain.JobRecord, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobColumns = `id, recruiter_id, company, job_role, description, skills, salary, created_at`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (recruiter_id, company, job_role, description, skills, salary)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query,
		job.RecruiterID,
		job.Company,
		job.Role,
		job.Description,
		job.Skills,
		job.Salary,
	).Scan(&job.ID, &job.CreatedAt)
	return classifyWriteErr(err)
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id=$1`
	var job domain.Job
	if err := scanJob(r.pool.QueryRow(ctx, query, id), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) ListByRecruiter(ctx context.Context, recruiterID int64) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE recruiter_id=$1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Job{}
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}

func (r *jobRepository) ListForApplicant(ctx context.Context, applicantID int64) ([]domain.JobListing, error) {
	const query = `
        SELECT j.id, j.recruiter_id, j.company, j.job_role, j.description, j.skills, j.salary, j.created_at, a.status
        FROM jobs j
        LEFT JOIN applications a ON a.job_id = j.id AND a.applicant_id = $1
        ORDER BY j.id`
	rows, err := r.pool.Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.JobListing{}
	for rows.Next() {
		var listing domain.JobListing
		var status *string
		if err := rows.Scan(
			&listing.Job.ID,
			&listing.Job.RecruiterID,
			&listing.Job.Company,
			&listing.Job.Role,
			&listing.Job.Description,
			&listing.Job.Skills,
			&listing.Job.Salary,
			&listing.Job.CreatedAt,
			&status,
		); err != nil {
			return nil, err
		}
		if status != nil {
			s := domain.ApplicationStatus(*status)
			listing.Status = &s
		}
		result = append(result, listing)
	}
	return result, rows.Err()
}

func (r *jobRepository) DeleteOwned(ctx context.Context, recruiterID int64, ids []int64) (int, []int64, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return 0, nil, nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	rows, err := tx.Query(ctx,
		`SELECT id FROM jobs WHERE recruiter_id=$1 AND id = ANY($2) FOR UPDATE`,
		recruiterID, ids)
	if err != nil {
		return 0, nil, err
	}
	owned := make(map[int64]struct{}, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, nil, err
		}
		owned[id] = struct{}{}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, nil, err
	}

	missing := missingIDs(ids, owned)
	if len(missing) > 0 {
		return 0, missing, nil
	}

	// Children first: applications reference jobs without ON DELETE CASCADE.
	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE job_id = ANY($1)`, ids); err != nil {
		return 0, nil, fmt.Errorf("delete applications: %w", err)
	}
	cmd, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, nil, fmt.Errorf("delete jobs: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, nil, err
	}
	return int(cmd.RowsAffected()), nil, nil
}

func (r *jobRepository) ListRecords(ctx context.Context) ([]domain.JobRecord, error) {
	const query = `
        SELECT j.id, u.username, j.company, j.job_role, j.description, j.created_at
        FROM jobs j
        JOIN users u ON j.recruiter_id = u.id
        ORDER BY j.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.JobRecord{}
	for rows.Next() {
		var rec domain.JobRecord
		if err := rows.Scan(&rec.ID, &rec.Recruiter, &rec.Company, &rec.Title, &rec.Description, &rec.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func scanJob(row pgx.Row, job *domain.Job) error {
	return row.Scan(
		&job.ID,
		&job.RecruiterID,
		&job.Company,
		&job.Role,
		&job.Description,
		&job.Skills,
		&job.Salary,
		&job.CreatedAt,
	)
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingIDs(ids []int64, found map[int64]struct{}) []int64 {
	var missing []int64
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
