package contact

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-agency-site/internal/logging"
	"github.com/goliatone/go-agency-site/internal/validation"
	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

// Service accepts contact submissions. No mail is sent; submissions are
// stored for follow up.
type Service interface {
	Submit(ctx context.Context, submission Submission) (*Record, error)
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	List(ctx context.Context) ([]*Record, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp submissions.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides the submission id generator.
func WithIDGenerator(gen func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if gen != nil {
			s.id = gen
		}
	}
}

// WithLocales restricts the accepted submission languages.
func WithLocales(locales ...string) ServiceOption {
	return func(s *service) {
		if len(locales) > 0 {
			s.locales = append([]string{}, locales...)
		}
	}
}

// WithLogger overrides the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repo    Repository
	locales []string
	logger  interfaces.Logger
	now     func() time.Time
	id      func() uuid.UUID
}

// NewService constructs a contact service storing into repo. A nil repo
// falls back to an in-memory repository.
func NewService(repo Repository, opts ...ServiceOption) Service {
	if repo == nil {
		repo = NewMemoryRepository()
	}
	s := &service{
		repo:    repo,
		locales: DefaultLocales,
		logger:  logging.NoOp(),
		now:     func() time.Time { return time.Now().UTC() },
		id:      uuid.New,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *service) Submit(ctx context.Context, submission Submission) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized := submission.Normalize()
	if err := normalized.ValidateFor(s.locales); err != nil {
		return nil, validation.FromOzzo(err)
	}

	record := &Record{
		ID:        s.id(),
		Name:      normalized.Name,
		Email:     normalized.Email,
		Company:   normalized.Company,
		Phone:     normalized.Phone,
		Subject:   normalized.Subject,
		Message:   normalized.Message,
		Lang:      normalized.Lang,
		CreatedAt: s.now(),
	}

	stored, err := s.repo.Create(ctx, record)
	if err != nil {
		s.logger.Error("contact submission persist failed", "submission_id", record.ID, "error", err)
		return nil, err
	}

	s.logger.Info("contact submission stored", "submission_id", stored.ID, "lang", stored.Lang)
	return stored, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// List returns stored submissions, newest first.
func (s *service) List(ctx context.Context) ([]*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}
