package service

import (
	"context"
	"testing"

	"github.com/hireboard/recruitment-service/internal/domain"
)

func TestDashboardDispatchesOnRole(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	rita := h.login(t, "rita", domain.RoleRecruiter)
	andy := h.login(t, "andy", domain.RoleApplicant)
	root := h.login(t, "root", domain.RoleAdmin)
	job := h.postJob(t, rita, "Acme")

	if _, err := h.board.ViewJob(ctx, andy, job.ID); err != nil {
		t.Fatalf("view: %v", err)
	}
	view, err := h.dashboard.Render(ctx, andy)
	if err != nil {
		t.Fatalf("render applicant: %v", err)
	}
	applicant, ok := view.Content.(ApplicantDashboard)
	if !ok {
		t.Fatalf("expected ApplicantDashboard, got %T", view.Content)
	}
	if len(applicant.Jobs) != 1 || applicant.Selected == nil || applicant.Selected.Job.ID != job.ID {
		t.Fatalf("unexpected applicant dashboard %+v", applicant)
	}

	view, err = h.dashboard.Render(ctx, rita)
	if err != nil {
		t.Fatalf("render recruiter: %v", err)
	}
	recruiter, ok := view.Content.(RecruiterDashboard)
	if !ok || len(recruiter.Jobs) != 1 || recruiter.Applicants != nil {
		t.Fatalf("unexpected recruiter dashboard %+v", view.Content)
	}

	view, err = h.dashboard.Render(ctx, root)
	if err != nil {
		t.Fatalf("render admin: %v", err)
	}
	overview, ok := view.Content.(*AdminOverview)
	if !ok || len(overview.Users) != 3 || len(overview.Jobs) != 1 {
		t.Fatalf("unexpected admin dashboard %+v", view.Content)
	}
	if overview.Jobs[0].Recruiter != "rita" {
		t.Fatalf("expected recruiter username, got %q", overview.Jobs[0].Recruiter)
	}

	if _, err := h.dashboard.Render(ctx, &domain.Session{Role: "guest"}); errorCode(err) != "FORBIDDEN" {
		t.Fatalf("expected FORBIDDEN for unknown role, got %v", err)
	}
}

func TestRoleGuards(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	andy := h.login(t, "andy", domain.RoleApplicant)
	rita := h.login(t, "rita", domain.RoleRecruiter)

	if _, err := h.recruiter.PostJob(ctx, andy, JobInput{}); errorCode(err) != "FORBIDDEN" {
		t.Fatalf("applicant posting: expected FORBIDDEN, got %v", err)
	}
	if _, err := h.board.ListJobs(ctx, rita); errorCode(err) != "FORBIDDEN" {
		t.Fatalf("recruiter browsing: expected FORBIDDEN, got %v", err)
	}
	if _, err := h.admin.ListUsers(ctx, rita); errorCode(err) != "FORBIDDEN" {
		t.Fatalf("recruiter admin view: expected FORBIDDEN, got %v", err)
	}
}

func TestAdminRecordsJoinNames(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	rita := h.login(t, "rita", domain.RoleRecruiter)
	andy := h.login(t, "andy", domain.RoleApplicant)
	root := h.login(t, "root", domain.RoleAdmin)
	job := h.postJob(t, rita, "Acme")
	if _, err := h.board.Apply(ctx, andy, job.ID, applyInput("Andy", "Male", "Peru")); err != nil {
		t.Fatalf("apply: %v", err)
	}

	apps, err := h.admin.ListApplications(ctx, root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(apps) != 1 || apps[0].Applicant != "andy" || apps[0].JobTitle != "Engineer" || apps[0].Status != domain.StatusPending {
		t.Fatalf("unexpected records %+v", apps)
	}
}
