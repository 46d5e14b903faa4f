package content

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"strings"

	"github.com/goliatone/go-agency-site/internal/logging"
	"github.com/goliatone/go-agency-site/internal/markdown"
	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

// Store reads content items from Markdown files. Every call goes to the
// filesystem; nothing is cached.
type Store struct {
	markdown   interfaces.MarkdownService
	logger     interfaces.Logger
	permalinks Permalinks
}

// StoreOption configures the store at construction time.
type StoreOption func(*Store)

// WithLogger overrides the logger used for skipped files and permalink failures.
func WithLogger(logger interfaces.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPermalinks enables the `url` field on returned items.
func WithPermalinks(permalinks Permalinks) StoreOption {
	return func(s *Store) {
		s.permalinks = permalinks
	}
}

// NewStore constructs a store on top of a Markdown service.
func NewStore(md interfaces.MarkdownService, opts ...StoreOption) *Store {
	s := &Store{
		markdown: md,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// List returns every item of kind in locale, sorted by the kind's rule.
// An unknown locale yields an empty slice. Files with malformed front matter
// are skipped and logged.
func (s *Store) List(ctx context.Context, kind Kind, locale string) ([]*Item, error) {
	result, err := s.markdown.LoadDirectory(ctx, kind.Dir(), locale)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &ReadError{Op: "list", Path: kind.Dir(), Err: err}
	}

	for _, skipped := range result.Skipped {
		logging.WithContentContext(s.logger, kind.String(), locale, "").
			Warn("content file skipped", "path", skipped.Path, "error", skipped.Err)
	}

	items := make([]*Item, 0, len(result.Documents))
	for _, doc := range result.Documents {
		item := newItem(kind, doc)
		s.attachPermalink(item)
		items = append(items, item)
	}

	sortItems(kind, items)
	return items, nil
}

// Get returns a single item with its body rendered to HTML.
func (s *Store) Get(ctx context.Context, kind Kind, slug, locale string) (*Item, error) {
	key := slug + "." + locale
	if !validSlug(slug) || strings.TrimSpace(locale) == "" {
		return nil, &NotFoundError{Resource: kind.String(), Key: key}
	}

	name := path.Join(kind.Dir(), markdown.FileName(slug, locale))
	doc, err := s.markdown.Load(ctx, name)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, markdown.ErrUnrecognisedName):
			return nil, &NotFoundError{Resource: kind.String(), Key: key}
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			return nil, &ReadError{Op: "read", Path: name, Err: err}
		}
	}

	html, err := s.markdown.RenderDocument(ctx, doc)
	if err != nil {
		return nil, &ReadError{Op: "render", Path: name, Err: err}
	}

	item := newItem(kind, doc)
	item.Content = string(html)
	s.attachPermalink(item)
	return item, nil
}

func (s *Store) attachPermalink(item *Item) {
	if s.permalinks == nil {
		return
	}
	url, err := s.permalinks.Permalink(item.Kind, item.Lang, item.Slug)
	if err != nil {
		logging.WithContentContext(s.logger, item.Kind.String(), item.Lang, item.Slug).
			Debug("permalink unavailable", "error", err)
		return
	}
	item.URL = url
}

func validSlug(slug string) bool {
	trimmed := strings.TrimSpace(slug)
	if trimmed == "" || trimmed != slug {
		return false
	}
	if strings.ContainsAny(slug, `/\`) || strings.Contains(slug, "..") || strings.HasPrefix(slug, ".") {
		return false
	}
	return true
}
