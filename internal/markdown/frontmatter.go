package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. Sources without a front matter block yield an empty
// mapping and the full source as body.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	raw := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &raw)
	if err != nil {
		return nil, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	meta := make(interfaces.FrontMatter, len(raw))
	for key, value := range raw {
		meta[key] = normalizeValue(value)
	}
	return meta, body, nil
}

// BuildDocument assembles a Document from a file path, its derived slug and
// locale, the raw content, and its modification time. BodyHTML is left empty
// so callers can render lazily.
func BuildDocument(path, slug, locale string, source []byte, modified time.Time) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		FilePath:     path,
		Slug:         slug,
		Locale:       locale,
		FrontMatter:  meta,
		Body:         bytes.TrimSpace(body),
		LastModified: modified,
	}, nil
}

// normalizeValue converts YAML decoded values into JSON friendly shapes:
// nested mappings keyed by interface{} become map[string]any.
func normalizeValue(value any) any {
	switch typed := value.(type) {
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			out[fmt.Sprint(key)] = normalizeValue(inner)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			out[key] = normalizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, inner := range typed {
			out[i] = normalizeValue(inner)
		}
		return out
	default:
		return value
	}
}
