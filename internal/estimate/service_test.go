package estimate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/goliatone/go-agency-site/internal/validation"
)

func TestServiceEstimatePersists(t *testing.T) {
	repo := NewMemoryRepository()
	fixedID := uuid.MustParse("8f7d1a52-5b8c-4d0e-9a51-2f3c4d5e6f70")
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	svc := NewService(DefaultPriceBand,
		WithRepository(repo),
		WithIDGenerator(func() uuid.UUID { return fixedID }),
		WithClock(func() time.Time { return fixedTime }),
	)

	got, err := svc.Estimate(context.Background(), Request{ProjectType: "web", Scale: "basic", TimelinePriority: 1})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if got.ID != fixedID || !got.CreatedAt.Equal(fixedTime) {
		t.Fatalf("unexpected identity %s %s", got.ID, got.CreatedAt)
	}
	if got.Total != 650 {
		t.Fatalf("expected total 650, got %v", got.Total)
	}

	stored, err := repo.GetByID(context.Background(), fixedID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.PriceMin != 585 || stored.PriceMax != 715 {
		t.Fatalf("unexpected stored range %d-%d", stored.PriceMin, stored.PriceMax)
	}
}

func TestServiceGetReturnsLoggedEstimate(t *testing.T) {
	svc := NewService(DefaultPriceBand, WithRepository(NewMemoryRepository()))

	created, err := svc.Estimate(context.Background(), Request{
		ProjectType:      "chatbot",
		Scale:            "advanced",
		Features:         []string{"chatbot_feature2"},
		TimelinePriority: 3,
		SupportPlan:      "standard",
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(created, got); diff != "" {
		t.Fatalf("logged estimate differs (-want +got):\n%s", diff)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("unexpected list %#v", list)
	}

	_, err = svc.Get(context.Background(), uuid.New())
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestServiceWithoutRepositoryLogsNothing(t *testing.T) {
	svc := NewService(DefaultPriceBand)

	created, err := svc.Estimate(context.Background(), Request{ProjectType: "web", Scale: "basic", TimelinePriority: 1})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	_, err = svc.Get(context.Background(), created.ID)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	list, err := svc.List(context.Background())
	if err != nil || len(list) != 0 {
		t.Fatalf("expected empty list, got %v %v", list, err)
	}
}

func TestServiceEstimateRejectsInvalidRequest(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(DefaultPriceBand, WithRepository(repo))

	_, err := svc.Estimate(context.Background(), Request{ProjectType: "web", Scale: "basic", TimelinePriority: 7})
	if !errors.Is(err, validation.ErrSchemaValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	records, _ := repo.List(context.Background())
	if len(records) != 0 {
		t.Fatalf("invalid requests must not be persisted")
	}
}

func TestServiceEstimateSurvivesPersistFailure(t *testing.T) {
	svc := NewService(DefaultPriceBand, WithRepository(failingRepository{}))
	got, err := svc.Estimate(context.Background(), Request{ProjectType: "web", Scale: "basic", TimelinePriority: 1})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if got.Total != 650 {
		t.Fatalf("unexpected total %v", got.Total)
	}
}

func TestServiceCatalogUsesBand(t *testing.T) {
	if band := NewService(0.05).Catalog().PriceBand; band != 0.05 {
		t.Fatalf("expected band 0.05, got %v", band)
	}
}

type failingRepository struct{}

func (failingRepository) Create(context.Context, *Record) (*Record, error) {
	return nil, errors.New("disk full")
}

func (failingRepository) GetByID(_ context.Context, id uuid.UUID) (*Record, error) {
	return nil, &NotFoundError{ID: id}
}

func (failingRepository) List(context.Context) ([]*Record, error) { return nil, nil }
