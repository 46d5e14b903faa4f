package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

// GoldmarkParser implements interfaces.MarkdownParser using the goldmark
// engine. It is stateless and safe for concurrent use.
type GoldmarkParser struct {
	defaultOptions interfaces.ParseOptions
}

var _ interfaces.MarkdownParser = (*GoldmarkParser)(nil)

// NewGoldmarkParser constructs a parser with the supplied defaults.
func NewGoldmarkParser(defaults interfaces.ParseOptions) *GoldmarkParser {
	return &GoldmarkParser{
		defaultOptions: defaults,
	}
}

// Parse renders Markdown into HTML using the parser's default configuration.
func (p *GoldmarkParser) Parse(markdown []byte) ([]byte, error) {
	return p.ParseWithOptions(markdown, p.defaultOptions)
}

// ParseWithOptions renders Markdown into HTML using the provided options.
func (p *GoldmarkParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := newGoldmarkEngine(opts).Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown parse: %w", err)
	}
	return buf.Bytes(), nil
}

func newGoldmarkEngine(opts interfaces.ParseOptions) goldmark.Markdown {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	// content files embed raw HTML (iframes, figures) unless safe mode is on
	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithExtensions(collectExtensions(opts.Extensions)...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := seen[key]; ok || key == "" {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}
	return extenders
}
