package estimate

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-agency-site/internal/logging"
	"github.com/goliatone/go-agency-site/internal/validation"
	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

// Estimate is a calculation result with its log identity.
type Estimate struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Result
}

// Service validates requests, runs the calculator and logs the outcome.
type Service interface {
	Estimate(ctx context.Context, req Request) (*Estimate, error)
	Get(ctx context.Context, id uuid.UUID) (*Estimate, error)
	List(ctx context.Context) ([]*Estimate, error)
	Catalog() Catalog
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithRepository enables persistence of computed estimates.
func WithRepository(repo Repository) ServiceOption {
	return func(s *service) {
		s.repo = repo
	}
}

// WithClock overrides the clock used to stamp estimates.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides the estimate id generator.
func WithIDGenerator(gen func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if gen != nil {
			s.id = gen
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
	calc   Calculator
	repo   Repository
	logger interfaces.Logger
	now    func() time.Time
	id     func() uuid.UUID
}

// NewService constructs an estimate service quoting within ±band.
func NewService(band float64, opts ...ServiceOption) Service {
	s := &service{
		calc:   NewCalculator(band),
		logger: logging.NoOp(),
		now:    func() time.Time { return time.Now().UTC() },
		id:     uuid.New,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *service) Estimate(ctx context.Context, req Request) (*Estimate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized := req.Normalize()
	if err := normalized.Validate(); err != nil {
		return nil, validation.FromOzzo(err)
	}

	result := s.calc.Calculate(normalized)
	out := &Estimate{
		ID:        s.id(),
		CreatedAt: s.now(),
		Result:    result,
	}

	if s.repo != nil {
		if _, err := s.repo.Create(ctx, NewRecord(out.ID, result, out.CreatedAt)); err != nil {
			// persistence failures are logged, not returned
			s.logger.Error("estimate persist failed", "estimate_id", out.ID, "error", err)
		}
	}

	s.logger.Info("estimate computed",
		"estimate_id", out.ID,
		"project_type", result.ProjectType,
		"scale", result.Scale,
		"features", len(result.Features),
		"total", result.Total,
	)
	return out, nil
}

// Get reads a logged estimate. Without a repository nothing is logged, so
// every lookup is a NotFoundError.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Estimate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.repo == nil {
		return nil, &NotFoundError{ID: id}
	}
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return record.Estimate(), nil
}

// List returns logged estimates, newest first.
func (s *service) List(ctx context.Context) ([]*Estimate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.repo == nil {
		return []*Estimate{}, nil
	}
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Estimate, 0, len(records))
	for _, record := range records {
		out = append(out, record.Estimate())
	}
	return out, nil
}

func (s *service) Catalog() Catalog {
	return NewCatalog(s.calc.Band())
}
