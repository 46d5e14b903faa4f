package di

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-agency-site/internal/commands/fixtures"
	estimatecmd "github.com/goliatone/go-agency-site/internal/commands/estimate"
	"github.com/goliatone/go-agency-site/internal/contact"
	"github.com/goliatone/go-agency-site/internal/content"
	"github.com/goliatone/go-agency-site/internal/logging/gologger"
	"github.com/goliatone/go-agency-site/internal/runtimeconfig"
	"github.com/goliatone/go-agency-site/internal/validation"
	"github.com/goliatone/go-agency-site/pkg/testsupport"
)

func testFS() fstest.MapFS {
	return testsupport.ContentFS(map[string]string{
		"services/web.nl.md": "---\ntitle: Websites\norder: 1\n---\nWij bouwen sites.",
		"services/web.en.md": "---\ntitle: Websites\norder: 1\n---\nWe build sites.",
	})
}

func TestNewContainerWiresServices(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Routes.BaseURL = "https://example.nl"

	container, err := NewContainer(cfg, WithContentFS(testFS()))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	t.Cleanup(func() { _ = container.Close() })

	if _, ok := container.LoggerProvider().(*gologger.Provider); !ok {
		t.Fatalf("expected go-logger provider, got %T", container.LoggerProvider())
	}
	if container.DB() != nil {
		t.Fatal("expected no database when storage is disabled")
	}
	if container.EstimateRepository() != nil {
		t.Fatal("expected no estimate log when persistence is disabled")
	}

	item, err := container.ContentStore().Get(context.Background(), content.KindServices, "web", "en")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if item.URL != "https://example.nl/en/services/web" {
		t.Fatalf("unexpected permalink %q", item.URL)
	}

	handler, err := container.API().Handler()
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/services", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"slug":"web"`) {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewContainerPersistsEstimatesInSQLite(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Enabled = true
	cfg.Storage.Driver = "sqlite3"
	cfg.Storage.DSN = "file:di_container_test?mode=memory&cache=shared"
	cfg.Estimate.Persist = true

	registry := fixtures.NewRecordingRegistry()
	container, err := NewContainer(cfg, WithContentFS(testFS()), WithCommandRegistry(registry))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	t.Cleanup(func() { _ = container.Close() })

	if container.DB() == nil {
		t.Fatal("expected database")
	}
	if len(registry.Handlers) != 2 {
		t.Fatalf("expected two registered handlers, got %d", len(registry.Handlers))
	}

	err = container.EstimateCommands().Calculate.Execute(context.Background(), estimatecmd.CalculateEstimateCommand{
		ProjectType:      "automation",
		Scale:            "basic",
		TimelinePriority: 1,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	records, err := container.EstimateRepository().List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one stored estimate, got %d", len(records))
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Estimate.Persist = true

	_, err := NewContainer(cfg, WithContentFS(testFS()))
	if !errors.Is(err, runtimeconfig.ErrEstimatePersistNeedsStore) {
		t.Fatalf("expected ErrEstimatePersistNeedsStore, got %v", err)
	}
}

func TestNewContainerRejectsMissingContentDir(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.Dir = t.TempDir() + "/missing"

	if _, err := NewContainer(cfg); err == nil {
		t.Fatal("expected error for missing content directory")
	}
}

func TestNewContainerContactAcceptsConfiguredLocales(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.Locales = []string{"nl", "de"}

	container, err := NewContainer(cfg, WithContentFS(testFS()))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	t.Cleanup(func() { _ = container.Close() })

	submission := contact.Submission{
		Name:    "Jonas Weber",
		Email:   "jonas@example.de",
		Message: "Wir brauchen eine neue Website.",
		Lang:    "de",
	}
	record, err := container.ContactService().Submit(context.Background(), submission)
	if err != nil {
		t.Fatalf("Submit de: %v", err)
	}
	if record.Lang != "de" {
		t.Fatalf("lang = %q, want de", record.Lang)
	}

	submission.Lang = "en"
	if _, err := container.ContactService().Submit(context.Background(), submission); !errors.Is(err, validation.ErrSchemaValidation) {
		t.Fatalf("expected en to be rejected, got %v", err)
	}
}
