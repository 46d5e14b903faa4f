package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

// Rendering engines selectable through Config.Engine.
const (
	EngineSite     = "site"
	EngineGoldmark = "goldmark"
)

// ErrUnknownEngine is returned for an unsupported Config.Engine value.
var ErrUnknownEngine = errors.New("markdown: unknown rendering engine")

// Config controls how the Markdown service discovers and renders files.
type Config struct {
	// BasePath is the content root on disk. Ignored when FS is set.
	BasePath string
	// FS overrides the filesystem, mostly for tests (fstest.MapFS).
	FS      fs.FS
	Locales []string
	Engine  string
	Parser  interfaces.ParseOptions
}

// Service implements interfaces.MarkdownService for filesystem-backed documents.
type Service struct {
	cfg    Config
	parser interfaces.MarkdownParser
	loader *Loader
}

var _ interfaces.MarkdownService = (*Service)(nil)

// NewService constructs a Markdown service. When parser is nil one is built
// from cfg.Engine.
func NewService(cfg Config, parser interfaces.MarkdownParser) (*Service, error) {
	filesystem := cfg.FS
	if filesystem == nil {
		prepared, err := prepareFilesystem(cfg.BasePath)
		if err != nil {
			return nil, err
		}
		filesystem = prepared
	}

	if parser == nil {
		built, err := NewParser(cfg.Engine, cfg.Parser)
		if err != nil {
			return nil, err
		}
		parser = built
	}

	return &Service{
		cfg:    cfg,
		parser: parser,
		loader: NewLoader(filesystem, LoaderConfig{Locales: cfg.Locales}),
	}, nil
}

// NewParser returns the parser for the named engine; empty selects the site converter.
func NewParser(engine string, opts interfaces.ParseOptions) (interfaces.MarkdownParser, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineSite:
		return NewSiteConverter(), nil
	case EngineGoldmark:
		return NewGoldmarkParser(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, engine)
	}
}

// Load reads a single Markdown document relative to the content root.
func (s *Service) Load(ctx context.Context, name string) (*interfaces.Document, error) {
	return s.loader.LoadFile(ctx, normalisePath(name))
}

// LoadDirectory reads the documents of one locale within dir.
func (s *Service) LoadDirectory(ctx context.Context, dir string, locale string) (*interfaces.DirectoryResult, error) {
	return s.loader.LoadDirectory(ctx, normalisePath(dir), locale)
}

// Render converts Markdown bytes into HTML using the configured parser.
func (s *Service) Render(ctx context.Context, markdown []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.parser.ParseWithOptions(markdown, s.cfg.Parser)
}

// RenderDocument renders the document body and stores the result in BodyHTML.
func (s *Service) RenderDocument(ctx context.Context, doc *interfaces.Document) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("markdown service: document is nil")
	}
	html, err := s.Render(ctx, doc.Body)
	if err != nil {
		return nil, fmt.Errorf("markdown render document %s: %w", doc.FilePath, err)
	}
	doc.BodyHTML = html
	return html, nil
}

func normalisePath(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "."
	}
	return path.Clean(strings.TrimPrefix(strings.ReplaceAll(trimmed, "\\", "/"), "/"))
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("markdown service: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
