package content

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-agency-site/internal/identity"
	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

// Item is one content file projected for the API.
type Item struct {
	ID           uuid.UUID
	Group        uuid.UUID
	Kind         Kind
	Slug         string
	Lang         string
	URL          string
	FrontMatter  interfaces.FrontMatter
	Content      string
	LastModified time.Time
}

func newItem(kind Kind, doc *interfaces.Document) *Item {
	meta := doc.FrontMatter
	if meta == nil {
		meta = interfaces.FrontMatter{}
	}
	return &Item{
		ID:           identity.ContentUUID(string(kind), doc.Locale, doc.Slug),
		Group:        identity.TranslationGroupUUID(string(kind), doc.Slug),
		Kind:         kind,
		Slug:         doc.Slug,
		Lang:         doc.Locale,
		FrontMatter:  meta,
		Content:      string(doc.Body),
		LastModified: doc.LastModified,
	}
}

// Title returns the front matter title, falling back to a title cased slug.
func (i *Item) Title() string {
	if title := i.FrontMatter.Title(); title != "" {
		return title
	}
	return TitleFromSlug(i.Slug)
}

// TitleFromSlug turns `web-design_nl` into `Web Design Nl`.
func TitleFromSlug(slug string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return cases.Title(language.English).String(strings.TrimSpace(words))
}

// MarshalJSON flattens the front matter into the item object. Derived keys
// (id, translationGroup, slug, lang, url, content) take precedence over
// front matter keys.
func (i Item) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(i.FrontMatter)+7)
	for key, value := range i.FrontMatter {
		out[key] = value
	}
	if _, ok := out["title"]; !ok {
		out["title"] = i.Title()
	}
	out["id"] = i.ID.String()
	if i.Group != uuid.Nil {
		out["translationGroup"] = i.Group.String()
	}
	out["slug"] = i.Slug
	out["lang"] = i.Lang
	if i.URL != "" {
		out["url"] = i.URL
	}
	out["content"] = i.Content

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
