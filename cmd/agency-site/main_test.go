package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	site "github.com/goliatone/go-agency-site"
	"github.com/goliatone/go-agency-site/internal/contact"
)

func writeContent(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func cleanTree(t *testing.T) string {
	return writeContent(t, map[string]string{
		"services/web.nl.md":    "---\ntitle: Websites\n---\nWij bouwen sites.",
		"services/web.en.md":    "---\ntitle: Websites\n---\nWe build sites.",
		"blog/launch.nl.md":     "---\ntitle: Lancering\n---\n# Nieuw\n\n- snel",
		"blog/launch.en.md":     "---\ntitle: Launch\n---\n# New\n\n- fast",
		"case-studies/.gitkeep": "",
	})
}

func TestEstimateCommandPrintsJSON(t *testing.T) {
	dir := cleanTree(t)

	out, err := runCLI(t, "--content-dir", dir, "estimate",
		"--type", "web", "--scale", "medium",
		"--feature", "web_feature2", "--feature", "web_feature5",
		"--priority", "2", "--json")
	if err != nil {
		t.Fatalf("estimate: %v (%s)", err, out)
	}

	var result struct {
		Scale string  `json:"scale"`
		Total float64 `json:"total"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode: %v (%s)", err, out)
	}
	// (1250 + 250 + 200) * 1.25
	if result.Scale != "advanced" || result.Total != 2125 {
		t.Fatalf("unexpected estimate %+v", result)
	}
}

func TestEstimateCommandRejectsInvalidInput(t *testing.T) {
	dir := cleanTree(t)

	if _, err := runCLI(t, "--content-dir", dir, "estimate", "--type", "game"); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestCheckCommand(t *testing.T) {
	out, err := runCLI(t, "--content-dir", cleanTree(t), "check")
	if err != nil {
		t.Fatalf("check on clean tree: %v (%s)", err, out)
	}
	if !strings.Contains(out, "checked 4 files, 0 issues") {
		t.Fatalf("unexpected output %q", out)
	}

	dirty := writeContent(t, map[string]string{
		"services/web.nl.md":    "---\norder: 1\n---\nGeen titel.",
		"blog/.gitkeep":         "",
		"case-studies/.gitkeep": "",
	})
	out, err = runCLI(t, "--content-dir", dirty, "check")
	if err == nil {
		t.Fatalf("expected check failure, got %q", out)
	}
	if !strings.Contains(out, "missing_title") || !strings.Contains(out, "missing_translation") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderCommand(t *testing.T) {
	out, err := runCLI(t, "--content-dir", cleanTree(t), "render", "blog", "launch", "--lang", "en")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(out) != "<h1>New</h1>\n<ul>\n<li>fast</li>\n</ul>" {
		t.Fatalf("unexpected html %q", out)
	}

	if _, err := runCLI(t, "--content-dir", cleanTree(t), "render", "blog", "missing"); err == nil {
		t.Fatal("expected not found error")
	}
	if _, err := runCLI(t, "--content-dir", cleanTree(t), "render", "recipes", "x"); err == nil {
		t.Fatal("expected unknown kind error")
	}
}

func persistentConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	dsn := "file:" + filepath.ToSlash(filepath.Join(dir, "site.db")) + "?_fk=1"
	body := "estimate:\n  persist: true\nstorage:\n  enabled: true\n  driver: sqlite3\n  dsn: \"" + dsn + "\"\n"
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEstimatesCommandReadsLog(t *testing.T) {
	dir := cleanTree(t)
	cfg := persistentConfig(t)

	out, err := runCLI(t, "--config", cfg, "--content-dir", dir, "estimate", "--type", "web", "--scale", "basic", "--json")
	if err != nil {
		t.Fatalf("estimate: %v (%s)", err, out)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(out), &created); err != nil || created.ID == "" {
		t.Fatalf("decode: %v (%s)", err, out)
	}

	out, err = runCLI(t, "--config", cfg, "--content-dir", dir, "estimates")
	if err != nil {
		t.Fatalf("estimates: %v (%s)", err, out)
	}
	if !strings.Contains(out, created.ID) || !strings.Contains(out, "650.00 EUR") {
		t.Fatalf("unexpected listing %q", out)
	}

	out, err = runCLI(t, "--config", cfg, "--content-dir", dir, "estimates", created.ID, "--json")
	if err != nil {
		t.Fatalf("estimates <id>: %v (%s)", err, out)
	}
	var logged struct {
		Total      float64 `json:"total"`
		PriceRange struct {
			Min int `json:"min"`
			Max int `json:"max"`
		} `json:"priceRange"`
	}
	if err := json.Unmarshal([]byte(out), &logged); err != nil {
		t.Fatalf("decode: %v (%s)", err, out)
	}
	if logged.Total != 650 || logged.PriceRange.Min != 585 || logged.PriceRange.Max != 715 {
		t.Fatalf("unexpected logged estimate %+v", logged)
	}

	if _, err := runCLI(t, "--config", cfg, "--content-dir", dir, "estimates", "not-a-uuid"); err == nil {
		t.Fatal("expected invalid id error")
	}
}

func TestInboxCommandListsSubmissions(t *testing.T) {
	dir := cleanTree(t)
	path := persistentConfig(t)

	cfg, _, err := site.LoadConfig(site.LoadOptions{File: path})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg.Content.Dir = dir
	cfg.Logging.Level = "error"
	module, err := site.New(cfg)
	if err != nil {
		t.Fatalf("site.New: %v", err)
	}
	record, err := module.Contact().Submit(context.Background(), contact.Submission{
		Name:    "Anne de Vries",
		Email:   "anne@example.nl",
		Subject: "Offerte",
		Message: "Graag een offerte voor een nieuwe site.",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := module.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	out, err := runCLI(t, "--config", path, "--content-dir", dir, "inbox")
	if err != nil {
		t.Fatalf("inbox: %v (%s)", err, out)
	}
	if !strings.Contains(out, record.ID.String()) || !strings.Contains(out, "anne@example.nl") {
		t.Fatalf("unexpected listing %q", out)
	}

	out, err = runCLI(t, "--config", path, "--content-dir", dir, "inbox", record.ID.String())
	if err != nil {
		t.Fatalf("inbox <id>: %v (%s)", err, out)
	}
	if !strings.Contains(out, "subject:   Offerte") || !strings.Contains(out, "Graag een offerte voor een nieuwe site.") {
		t.Fatalf("unexpected submission %q", out)
	}
}

func TestInboxCommandEmpty(t *testing.T) {
	out, err := runCLI(t, "--content-dir", cleanTree(t), "inbox")
	if err != nil {
		t.Fatalf("inbox: %v (%s)", err, out)
	}
	if !strings.Contains(out, "inbox is empty") {
		t.Fatalf("unexpected output %q", out)
	}
}
