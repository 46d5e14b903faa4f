package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

const markdownExt = ".md"

// ErrUnrecognisedName is returned when a file name does not follow the
// `<slug>.<locale>.md` convention.
var ErrUnrecognisedName = errors.New("markdown: file name must follow <slug>.<locale>.md")

// LoaderConfig configures how Markdown files are discovered.
type LoaderConfig struct {
	// Locales enumerates the known locales (e.g. ["nl", "en"]). When empty any
	// suffix is accepted as a locale.
	Locales []string
}

// Loader turns filesystem paths into Markdown documents with metadata.
type Loader struct {
	fs      fs.FS
	locales map[string]struct{}
}

// NewLoader constructs a Loader using the provided filesystem and configuration.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	locales := make(map[string]struct{}, len(cfg.Locales))
	for _, locale := range cfg.Locales {
		if trimmed := strings.TrimSpace(locale); trimmed != "" {
			locales[trimmed] = struct{}{}
		}
	}
	return &Loader{
		fs:      filesystem,
		locales: locales,
	}
}

// SplitName derives slug and locale from a `<slug>.<locale>.md` file name.
func SplitName(name string) (slug, locale string, ok bool) {
	base := path.Base(name)
	if !strings.HasSuffix(base, markdownExt) {
		return "", "", false
	}
	stem := strings.TrimSuffix(base, markdownExt)
	idx := strings.LastIndex(stem, ".")
	if idx <= 0 || idx == len(stem)-1 {
		return "", "", false
	}
	return stem[:idx], stem[idx+1:], true
}

// FileName builds the `<slug>.<locale>.md` name for a document.
func FileName(slug, locale string) string {
	return slug + "." + locale + markdownExt
}

// LoadFile reads and parses a single Markdown document. The path is slash
// separated and relative to the loader filesystem.
func (l *Loader) LoadFile(ctx context.Context, name string) (*interfaces.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slug, locale, ok := SplitName(name)
	if !ok || !l.knownLocale(locale) {
		return nil, fmt.Errorf("%w: %s", ErrUnrecognisedName, name)
	}

	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", name, err)
	}

	info, err := fs.Stat(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("markdown loader stat %s: %w", name, err)
	}

	doc, err := BuildDocument(name, slug, locale, data, info.ModTime())
	if err != nil {
		return nil, fmt.Errorf("markdown loader %s: %w", name, err)
	}
	return doc, nil
}

// LoadDirectory returns every document directly under dir whose name ends
// with `.<locale>.md`. Listing failures abort the call; files that cannot be
// read or parsed are reported in DirectoryResult.Skipped.
func (l *Loader) LoadDirectory(ctx context.Context, dir string, locale string) (*interfaces.DirectoryResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("markdown loader list %s: %w", dir, err)
	}

	result := &interfaces.DirectoryResult{
		Documents: []*interfaces.Document{},
	}

	locale = strings.TrimSpace(locale)
	if locale == "" || !l.knownLocale(locale) {
		return result, nil
	}
	suffix := "." + locale + markdownExt

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rel := path.Join(dir, entry.Name())
		doc, err := l.LoadFile(ctx, rel)
		if err != nil {
			result.Skipped = append(result.Skipped, interfaces.FileError{Path: rel, Err: err})
			continue
		}
		result.Documents = append(result.Documents, doc)
	}

	sort.Slice(result.Documents, func(i, j int) bool {
		return result.Documents[i].FilePath < result.Documents[j].FilePath
	})

	return result, nil
}

func (l *Loader) knownLocale(locale string) bool {
	if len(l.locales) == 0 {
		return locale != ""
	}
	_, ok := l.locales[locale]
	return ok
}
