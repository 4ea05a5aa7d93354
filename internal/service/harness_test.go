package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hireboard/recruitment-service/internal/config"
	"github.com/hireboard/recruitment-service/internal/domain"
	"github.com/hireboard/recruitment-service/internal/events"
	"github.com/hireboard/recruitment-service/internal/observability"
	"github.com/hireboard/recruitment-service/internal/repository/memory"
	"github.com/hireboard/recruitment-service/internal/session"
	apperrors "github.com/hireboard/recruitment-service/pkg/util/errorutil"
)

type harness struct {
	store     *memory.Store
	sessions  *session.MemoryStore
	metrics   *observability.Metrics
	auth      *AuthService
	board     *JobBoardService
	recruiter *RecruiterService
	admin     *AdminService
	dashboard *DashboardService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 5, BcryptCost: bcrypt.MinCost}}
	store := memory.NewStore()
	sessions := session.NewMemoryStore()
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	logger := zap.NewNop()

	NewActivityService(dispatcher, logger, metrics).RegisterHandlers()

	h := &harness{store: store, sessions: sessions, metrics: metrics}
	h.auth = NewAuthService(cfg, AuthDependencies{UserRepo: store.Users(), Sessions: sessions, Dispatcher: dispatcher, Logger: logger})
	h.board = NewJobBoardService(JobBoardDependencies{
		JobRepo: store.Jobs(), ApplicationRepo: store.Applications(), Sessions: sessions,
		Dispatcher: dispatcher, Logger: logger, MaxResumeBytes: 1024,
	})
	h.recruiter = NewRecruiterService(RecruiterDependencies{
		JobRepo: store.Jobs(), ApplicationRepo: store.Applications(), Sessions: sessions,
		Dispatcher: dispatcher, Logger: logger,
	})
	h.admin = NewAdminService(AdminDependencies{UserRepo: store.Users(), JobRepo: store.Jobs(), ApplicationRepo: store.Applications()})
	h.dashboard = NewDashboardService(
		NewApplicantDashboard(h.board),
		NewRecruiterDashboard(h.recruiter),
		NewAdminDashboard(h.admin),
	)
	return h
}

// login registers an account and returns its live session.
func (h *harness) login(t *testing.T, username string, role domain.Role) *domain.Session {
	t.Helper()
	ctx := context.Background()
	creds := Credentials{Username: username, Password: "pw-" + username, Role: role}
	if _, err := h.auth.Register(ctx, creds); err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	result, err := h.auth.Login(ctx, creds)
	if err != nil {
		t.Fatalf("login %s: %v", username, err)
	}
	return result.Session
}

func (h *harness) postJob(t *testing.T, sess *domain.Session, company string) *domain.Job {
	t.Helper()
	job, err := h.recruiter.PostJob(context.Background(), sess, JobInput{
		Company: company, Role: "Engineer", Description: "Build things", Skills: "Go, SQL", Salary: "$100k",
	})
	if err != nil {
		t.Fatalf("post job: %v", err)
	}
	return job
}

func applyInput(name, gender, nationality string) ApplyInput {
	return ApplyInput{
		Name: name, Email: "jane@x.com", Phone: "555-1234", Gender: gender, Nationality: nationality,
		Resume: &ResumeUpload{Filename: "cv.txt", ContentType: "text/plain", Data: []byte("I am a great engineer.")},
	}
}

func errorCode(err error) string {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

func statusOf(t *testing.T, listings []domain.JobListing, jobID int64) string {
	t.Helper()
	for _, l := range listings {
		if l.Job.ID == jobID {
			return l.StatusLabel()
		}
	}
	t.Fatalf("job %d not listed", jobID)
	return ""
}
