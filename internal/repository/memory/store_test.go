package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/hireboard/recruitment-service/internal/domain"
	"github.com/hireboard/recruitment-service/internal/repository"
)

func seed(t *testing.T, s *Store) (recruiter, applicant domain.User, job domain.Job) {
	t.Helper()
	ctx := context.Background()
	recruiter = domain.User{Username: "rita", PasswordHash: "x", Role: domain.RoleRecruiter}
	applicant = domain.User{Username: "andy", PasswordHash: "x", Role: domain.RoleApplicant}
	if err := s.Users().Create(ctx, &recruiter); err != nil {
		t.Fatalf("create recruiter: %v", err)
	}
	if err := s.Users().Create(ctx, &applicant); err != nil {
		t.Fatalf("create applicant: %v", err)
	}
	job = domain.Job{RecruiterID: recruiter.ID, Company: "Acme", Role: "Engineer", Description: "d", Skills: "s", Salary: "1"}
	if err := s.Jobs().Create(ctx, &job); err != nil {
		t.Fatalf("create job: %v", err)
	}
	return recruiter, applicant, job
}

func TestDuplicateUsernameRejected(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	if err := s.Users().Create(ctx, &domain.User{Username: "sam", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := s.Users().Create(ctx, &domain.User{Username: "sam", Role: domain.RoleApplicant})
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestApplicationUniquePerJobAndApplicant(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_, applicant, job := seed(t, s)

	first := domain.Application{JobID: job.ID, ApplicantID: applicant.ID, Name: "Andy"}
	if err := s.Applications().Create(ctx, &first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Status != domain.StatusPending {
		t.Fatalf("expected default Pending, got %s", first.Status)
	}
	second := domain.Application{JobID: job.ID, ApplicantID: applicant.ID, Name: "Andy"}
	if err := s.Applications().Create(ctx, &second); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestApplicationRequiresExistingJob(t *testing.T) {
	s := NewStore()
	_, applicant, _ := seed(t, s)
	err := s.Applications().Create(context.Background(), &domain.Application{JobID: 99, ApplicantID: applicant.ID})
	if !errors.Is(err, repository.ErrMissingReference) {
		t.Fatalf("expected ErrMissingReference, got %v", err)
	}
}

func TestDeleteOwnedRemovesApplications(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	recruiter, applicant, job := seed(t, s)
	if err := s.Applications().Create(ctx, &domain.Application{JobID: job.ID, ApplicantID: applicant.ID}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	deleted, missing, err := s.Jobs().DeleteOwned(ctx, recruiter.ID, []int64{job.ID, job.ID})
	if err != nil || len(missing) != 0 {
		t.Fatalf("delete: %v missing=%v", err, missing)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deleted, got %d", deleted)
	}
	count, _ := s.Applications().CountByJob(ctx, job.ID)
	if count != 0 {
		t.Fatalf("expected applications removed, got %d", count)
	}
	if _, err := s.Jobs().GetByID(ctx, job.ID); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected job gone, got %v", err)
	}
}

func TestDeleteOwnedIsAllOrNothing(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	recruiter, _, job := seed(t, s)

	other := domain.User{Username: "otto", Role: domain.RoleRecruiter}
	if err := s.Users().Create(ctx, &other); err != nil {
		t.Fatalf("create: %v", err)
	}
	foreign := domain.Job{RecruiterID: other.ID, Company: "Other"}
	if err := s.Jobs().Create(ctx, &foreign); err != nil {
		t.Fatalf("create job: %v", err)
	}

	deleted, missing, err := s.Jobs().DeleteOwned(ctx, recruiter.ID, []int64{job.ID, foreign.ID})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted != 0 || len(missing) != 1 || missing[0] != foreign.ID {
		t.Fatalf("unexpected result deleted=%d missing=%v", deleted, missing)
	}
	if _, err := s.Jobs().GetByID(ctx, job.ID); err != nil {
		t.Fatalf("owned job should survive a rejected batch: %v", err)
	}
}

func TestListForApplicantAnnotatesStatus(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	recruiter, applicant, job := seed(t, s)
	second := domain.Job{RecruiterID: recruiter.ID, Company: "Beta", Role: "Analyst"}
	if err := s.Jobs().Create(ctx, &second); err != nil {
		t.Fatalf("create job: %v", err)
	}
	if err := s.Applications().Create(ctx, &domain.Application{JobID: job.ID, ApplicantID: applicant.ID}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	listings, err := s.Jobs().ListForApplicant(ctx, applicant.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	if listings[0].StatusLabel() != "Pending" || listings[1].StatusLabel() != domain.NotAppliedLabel {
		t.Fatalf("unexpected labels %q %q", listings[0].StatusLabel(), listings[1].StatusLabel())
	}
}

func TestApplicationStatusMustBeKnown(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_, applicant, job := seed(t, s)

	bad := domain.Application{JobID: job.ID, ApplicantID: applicant.ID, Name: "Andy", Status: "Ghosted"}
	if err := s.Applications().Create(ctx, &bad); err == nil {
		t.Fatal("expected unknown status to be rejected on create")
	}

	app := domain.Application{JobID: job.ID, ApplicantID: applicant.ID, Name: "Andy"}
	if err := s.Applications().Create(ctx, &app); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Applications().UpdateStatus(ctx, app.ID, "Ghosted"); err == nil {
		t.Fatal("expected unknown status to be rejected on update")
	}
	if err := s.Applications().UpdateStatus(ctx, app.ID, domain.StatusHired); err != nil {
		t.Fatalf("update: %v", err)
	}
	stored, err := s.Applications().GetByID(ctx, app.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != domain.StatusHired {
		t.Fatalf("expected Hired, got %s", stored.Status)
	}
}
