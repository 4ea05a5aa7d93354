package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hireboard/recruitment-service/internal/domain"
)

// ApplicationRepository encapsulates application persistence.
type ApplicationRepository interface {
	// Create inserts a submission. A second submission for the same job and
	// applicant fails with ErrDuplicate.
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*domain.Application, error)
	DeleteByJobAndApplicant(ctx context.Context, jobID, applicantID int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
	ListApplicantsByJob(ctx context.Context, jobID int64) ([]domain.ApplicantRecord, error)
	CountByJob(ctx context.Context, jobID int64) (int, error)
	ListRecords(ctx context.Context) ([]domain.ApplicationRecord, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository instantiates repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `id, job_id, applicant_id, name, email, phone, gender, nationality, resume_text, status, applied_at`

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	const query = `
        INSERT INTO applications (job_id, applicant_id, name, email, phone, gender, nationality, resume_text, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, applied_at`
	if app.Status == "" {
		app.Status = domain.StatusPending
	}
	err := r.pool.QueryRow(ctx, query,
		app.JobID,
		app.ApplicantID,
		app.Name,
		app.Email,
		app.Phone,
		app.Gender,
		app.Nationality,
		app.ResumeText,
		app.Status,
	).Scan(&app.ID, &app.AppliedAt)
	return classifyWriteErr(err)
}

func (r *applicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *applicationRepository) GetByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id=$1 AND applicant_id=$2`
	return r.fetchSingle(ctx, query, jobID, applicantID)
}

func (r *applicationRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.Application, error) {
	var app domain.Application
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&app.ID,
		&app.JobID,
		&app.ApplicantID,
		&app.Name,
		&app.Email,
		&app.Phone,
		&app.Gender,
		&app.Nationality,
		&app.ResumeText,
		&app.Status,
		&app.AppliedAt,
	); err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) DeleteByJobAndApplicant(ctx context.Context, jobID, applicantID int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE job_id=$1 AND applicant_id=$2`, jobID, applicantID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE applications SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) ListApplicantsByJob(ctx context.Context, jobID int64) ([]domain.ApplicantRecord, error) {
	const query = `
        SELECT a.id, u.username, a.name, a.email, a.phone, a.gender, a.nationality, a.status, a.resume_text, a.applied_at
        FROM applications a
        JOIN users u ON a.applicant_id = u.id
        WHERE a.job_id = $1
        ORDER BY a.id`
	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ApplicantRecord{}
	for rows.Next() {
		var rec domain.ApplicantRecord
		if err := rows.Scan(
			&rec.ApplicationID,
			&rec.Username,
			&rec.Name,
			&rec.Email,
			&rec.Phone,
			&rec.Gender,
			&rec.Nationality,
			&rec.Status,
			&rec.ResumeText,
			&rec.AppliedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func (r *applicationRepository) CountByJob(ctx context.Context, jobID int64) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE job_id=$1`, jobID).Scan(&count)
	return count, err
}

func (r *applicationRepository) ListRecords(ctx context.Context) ([]domain.ApplicationRecord, error) {
	const query = `
        SELECT a.id, u.username, j.job_role, a.status, a.applied_at
        FROM applications a
        JOIN users u ON a.applicant_id = u.id
        JOIN jobs j ON a.job_id = j.id
        ORDER BY a.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ApplicationRecord{}
	for rows.Next() {
		var rec domain.ApplicationRecord
		if err := rows.Scan(&rec.ID, &rec.Applicant, &rec.JobTitle, &rec.Status, &rec.AppliedAt); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}
