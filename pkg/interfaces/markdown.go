package interfaces

import (
	"context"
	"time"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations must be safe for reuse across requests.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// MarkdownService exposes the file workflows used by the content store.
type MarkdownService interface {
	Load(ctx context.Context, path string) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, locale string) (*DirectoryResult, error)
	Render(ctx context.Context, markdown []byte) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document) ([]byte, error)
}

// Document represents a `<slug>.<locale>.md` file with parsed metadata and
// content. Body is trimmed; BodyHTML stays empty until a caller renders it.
type Document struct {
	FilePath     string
	Slug         string
	Locale       string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
}

// FrontMatter holds the YAML metadata block of a document. Values are
// normalised so nested mappings always use string keys.
type FrontMatter map[string]any

// Title returns the title key when it is a non-empty string.
func (fm FrontMatter) Title() string {
	if fm == nil {
		return ""
	}
	title, _ := fm["title"].(string)
	return title
}

// FileError reports a document that could not be parsed during a directory load.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e FileError) Unwrap() error {
	return e.Err
}

// DirectoryResult carries the documents loaded from a directory together with
// the files that were skipped because they failed to parse.
type DirectoryResult struct {
	Documents []*Document
	Skipped   []FileError
}
