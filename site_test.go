package site_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	site "github.com/goliatone/go-agency-site"
	"github.com/goliatone/go-agency-site/internal/estimate"
)

func contentFS() fstest.MapFS {
	return fstest.MapFS{
		"services/web.nl.md":      {Data: []byte("---\ntitle: Websites\norder: 2\n---\nWij bouwen **sites**.")},
		"services/bots.nl.md":     {Data: []byte("---\ntitle: Chatbots\norder: 1\n---\nGesprekken.")},
		"services/web.en.md":      {Data: []byte("---\ntitle: Websites\norder: 2\n---\nWe build sites.")},
		"services/bots.en.md":     {Data: []byte("---\ntitle: Chatbots\norder: 1\n---\nConversations.")},
		"blog/hello.nl.md":        {Data: []byte("---\ntitle: Hallo\ndate: 2024-01-01\n---\nWelkom.")},
		"blog/hello.en.md":        {Data: []byte("---\ntitle: Hello\ndate: 2024-01-01\n---\nWelcome.")},
		"case-studies/acme.nl.md": {Data: []byte("---\ntitle: Acme\n---\nAcme.")},
		"case-studies/acme.en.md": {Data: []byte("---\ntitle: Acme\n---\nAcme.")},
	}
}

func newModule(t *testing.T) *site.Module {
	t.Helper()
	module, err := site.New(site.DefaultConfig(), site.WithContentFS(contentFS()))
	if err != nil {
		t.Fatalf("site.New: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })
	return module
}

func TestModuleServesContent(t *testing.T) {
	module := newModule(t)

	handler, err := module.Handler()
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/services", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success bool             `json:"success"`
		Data    []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || len(body.Data) != 2 || body.Data[0]["slug"] != "bots" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestModuleRegisterOnExistingMux(t *testing.T) {
	module := newModule(t)

	mux := http.NewServeMux()
	if err := module.Register(mux); err != nil {
		t.Fatalf("Register: %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blog/hello?lang=en", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<p>Welcome.</p>") {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}

func TestModuleEstimateCommand(t *testing.T) {
	module := newModule(t)

	var got *estimate.Estimate
	err := module.EstimateHandler().Execute(context.Background(), site.EstimateCommand{
		ProjectType:      "combined",
		Scale:            "custom",
		Features:         []string{"web_feature4", "chatbot_feature1", "automation_feature3"},
		TimelinePriority: 2,
		SupportPlan:      "premium",
		OnComplete:       func(e *estimate.Estimate) { got = e },
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	// round(2500*1.6) = 4000; features 800+300+500 = 1600; (5600)*1.25
	if got.Total != 7000 || got.MonthlySupport != 129 {
		t.Fatalf("unexpected estimate total=%v support=%v", got.Total, got.MonthlySupport)
	}
}

func TestModuleCheckCommand(t *testing.T) {
	module := newModule(t)

	var report *site.CheckReport
	err := module.CheckHandler().Execute(context.Background(), site.CheckContentCommand{
		Locales:    []string{"nl", "en"},
		OnComplete: func(r *site.CheckReport) { report = r },
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !report.OK() {
		t.Fatalf("expected clean report, got %+v", report.Issues)
	}
	if report.Checked != 8 {
		t.Fatalf("checked = %d, want 8", report.Checked)
	}
}

func TestModulePersistsEstimatesInSQLite(t *testing.T) {
	cfg := site.DefaultConfig()
	cfg.Storage.Enabled = true
	cfg.Storage.Driver = "sqlite3"
	cfg.Storage.DSN = "file:site_module_persist?mode=memory&cache=shared&_fk=1"
	cfg.Estimate.Persist = true

	module, err := site.New(cfg, site.WithContentFS(contentFS()))
	if err != nil {
		t.Fatalf("site.New: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })

	created, err := module.Estimates().Estimate(context.Background(), estimate.Request{
		ProjectType:      "web",
		Scale:            "basic",
		TimelinePriority: 1,
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	logged, err := module.Estimates().Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if logged.Total != 650 || logged.PriceRange != created.PriceRange {
		t.Fatalf("unexpected logged estimate %+v", logged)
	}

	handler, err := module.Handler()
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/estimate/"+created.ID.String(), nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), created.ID.String()) {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := site.DefaultConfig()
	cfg.Content.DefaultLocale = "de"

	if _, err := site.New(cfg, site.WithContentFS(contentFS())); !errors.Is(err, site.ErrDefaultLocaleUnknown) {
		t.Fatalf("expected ErrDefaultLocaleUnknown, got %v", err)
	}
}
