package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const namespace = "agency-site"

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ContentUUID identifies a content item across restarts. The same slug in two
// locales yields two identifiers.
func ContentUUID(kind, locale, slug string) uuid.UUID {
	return UUID(namespace + ":content:" + strings.ToLower(strings.TrimSpace(kind)) + ":" +
		strings.ToLower(strings.TrimSpace(locale)) + ":" + strings.TrimSpace(slug))
}

// TranslationGroupUUID links the locale variants of one content item.
func TranslationGroupUUID(kind, slug string) uuid.UUID {
	return UUID(namespace + ":translation:" + strings.ToLower(strings.TrimSpace(kind)) + ":" + strings.TrimSpace(slug))
}
