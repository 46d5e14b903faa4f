package content

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names a content collection. Its value doubles as the directory name
// under the content root.
type Kind string

const (
	KindServices    Kind = "services"
	KindCaseStudies Kind = "case-studies"
	KindBlog        Kind = "blog"
)

// ErrUnknownKind is returned by ParseKind for unsupported collections.
var ErrUnknownKind = errors.New("content: unknown kind")

// Kinds lists every collection served by the store.
func Kinds() []Kind {
	return []Kind{KindServices, KindCaseStudies, KindBlog}
}

// ParseKind resolves a collection name. Underscored spellings are accepted.
func ParseKind(raw string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-")
	for _, kind := range Kinds() {
		if string(kind) == normalized {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
}

// Dir returns the directory holding the collection, relative to the content root.
func (k Kind) Dir() string {
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}

// sortedByOrder reports whether the collection is ordered by the numeric
// `order` key instead of featured flag and date.
func (k Kind) sortedByOrder() bool {
	return k == KindServices
}
