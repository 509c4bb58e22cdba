package domain

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var tagTitleCaser = cases.Title(language.Spanish)

// NormalizeTag canonicalizes a URL-path tag token into the display label
// used both for query parameterization and for the response echo:
// "casas-en-venta" -> "Casas En Venta". Idempotent: normalizing the
// output reproduces it.
func NormalizeTag(token string) string {
	decoded, err := url.PathUnescape(token)
	if err != nil {
		decoded = token
	}
	segments := strings.Split(decoded, "-")
	for i, seg := range segments {
		segments[i] = tagTitleCaser.String(strings.TrimSpace(seg))
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

// TagSlug is the inverse-direction projection used in responses: the
// canonical label lowered and hyphenated back into a URL token.
func TagSlug(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), "-"))
}
