package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

func TestGoldmarkParserDefaults(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\n- [x] done\n\nVisit https://example.com"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out := string(html)
	for _, fragment := range []string{`<h1 id="heading">Heading</h1>`, `type="checkbox"`, `<a href="https://example.com">`} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, out)
		}
	}
}

func TestGoldmarkParserSafeModeStripsRawHTML(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})
	source := []byte("<div class=\"cta\">hi</div>")

	unsafe, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(unsafe), `<div class="cta">`) {
		t.Fatalf("expected raw HTML to pass through, got %q", unsafe)
	}

	safe, err := parser.ParseWithOptions(source, interfaces.ParseOptions{SafeMode: true})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if strings.Contains(string(safe), `<div class="cta">`) {
		t.Fatalf("expected raw HTML to be omitted in safe mode, got %q", safe)
	}
}

func TestGoldmarkParserHardWraps(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})
	html, err := parser.ParseWithOptions([]byte("one\ntwo"), interfaces.ParseOptions{HardWraps: true})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if !strings.Contains(string(html), "<br>") {
		t.Fatalf("expected hard wrap, got %q", html)
	}
}

func TestCollectExtensionsSkipsUnknownAndDuplicates(t *testing.T) {
	got := collectExtensions([]string{"table", "TABLE", "unknown", "footnote", ""})
	if len(got) != 2 {
		t.Fatalf("expected 2 extensions, got %d", len(got))
	}
}
