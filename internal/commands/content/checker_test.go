package contentcmd

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-agency-site/internal/commands/fixtures"
	"github.com/goliatone/go-agency-site/internal/content"
	"github.com/goliatone/go-agency-site/internal/markdown"
)

func newMarkdownService(t *testing.T, files fstest.MapFS) *markdown.Service {
	t.Helper()
	svc, err := markdown.NewService(markdown.Config{FS: files, Locales: []string{"nl", "en"}}, nil)
	if err != nil {
		t.Fatalf("markdown.NewService: %v", err)
	}
	return svc
}

func lintFS() fstest.MapFS {
	return fstest.MapFS{
		"services/web.nl.md":        {Data: []byte("---\ntitle: Websites\n---\nBody.")},
		"services/web.en.md":        {Data: []byte("---\ntitle: Websites\n---\nBody.")},
		"services/chatbot.nl.md":    {Data: []byte("---\norder: 1\n---\nGeen titel.")},
		"services/Web Design.nl.md": {Data: []byte("---\ntitle: Ontwerp\n---\nBody.")},
		"services/broken.en.md":     {Data: []byte("---\ntitle: [oops\n---\nBody.")},
		"case-studies/.keep":        {Data: []byte{}},
		"blog/launch.nl.md":         {Data: []byte("---\ntitle: Lancering\n---\nBody.")},
		"blog/launch.en.md":         {Data: []byte("---\ntitle: Launch\n---\nBody.")},
	}
}

type issueKey struct {
	Path string
	Code IssueCode
}

func TestCheckerReportsIssues(t *testing.T) {
	checker := NewChecker(newMarkdownService(t, lintFS()))

	report, err := checker.Check(context.Background(), content.Kinds(), []string{"nl", "en"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	var got []issueKey
	for _, issue := range report.Issues {
		got = append(got, issueKey{Path: issue.Path, Code: issue.Code})
	}
	want := []issueKey{
		{Path: "services/Web Design.en.md", Code: IssueMissingTranslation},
		{Path: "services/Web Design.nl.md", Code: IssueInvalidSlug},
		{Path: "services/broken.en.md", Code: IssueMalformedFrontMatter},
		{Path: "services/broken.nl.md", Code: IssueMissingTranslation},
		{Path: "services/chatbot.en.md", Code: IssueMissingTranslation},
		{Path: "services/chatbot.nl.md", Code: IssueMissingTitle},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if report.Checked != 7 {
		t.Fatalf("checked = %d, want 7", report.Checked)
	}
	if report.OK() {
		t.Fatal("expected report with issues")
	}
	if report.Count(IssueMissingTranslation) != 3 {
		t.Fatalf("missing translations = %d", report.Count(IssueMissingTranslation))
	}
}

func TestCheckerReportsUnreadableDirectory(t *testing.T) {
	checker := NewChecker(newMarkdownService(t, fstest.MapFS{
		"services/web.nl.md": {Data: []byte("---\ntitle: Web\n---\nBody.")},
	}))

	report, err := checker.Check(context.Background(), []content.Kind{content.KindBlog}, []string{"nl"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if report.Count(IssueUnreadableDirectory) != 1 {
		t.Fatalf("expected unreadable directory issue, got %+v", report.Issues)
	}
}

func TestCheckerHonoursCancelledContext(t *testing.T) {
	checker := NewChecker(newMarkdownService(t, lintFS()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := checker.Check(ctx, content.Kinds(), []string{"nl"}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestCheckContentCommandValidate(t *testing.T) {
	if err := (CheckContentCommand{Locales: []string{"nl"}}).Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}
	if err := (CheckContentCommand{}).Validate(); err == nil {
		t.Fatal("expected missing locales to fail")
	}
	if err := (CheckContentCommand{Locales: []string{"nl"}, Kinds: []string{"recipes"}}).Validate(); err == nil {
		t.Fatal("expected unknown kind to fail")
	}
}

func TestCheckContentHandler(t *testing.T) {
	reg := fixtures.NewRecordingRegistry()
	handler, err := RegisterContentCommands(reg, newMarkdownService(t, lintFS()), nil)
	if err != nil {
		t.Fatalf("RegisterContentCommands: %v", err)
	}
	if len(reg.Handlers) != 1 {
		t.Fatalf("expected one registered handler, got %d", len(reg.Handlers))
	}

	var report *Report
	err = handler.Execute(context.Background(), CheckContentCommand{
		Kinds:      []string{"blog"},
		Locales:    []string{"nl", "en"},
		OnComplete: func(r *Report) { report = r },
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !report.OK() || report.Checked != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}

	err = handler.Execute(context.Background(), CheckContentCommand{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}
