package i18n

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Catalog is the message-catalog collaborator: a store of translated
// strings keyed by (code, locale). Implementations must return
// ErrMessageNotFound (or an error wrapping it) for a plain miss so
// callers can distinguish "no such message" from catalog failure.
//
// Lookups run inline on the request path and are expected to be
// in-memory or cached; no implementation here blocks on I/O at
// lookup time.
type Catalog interface {
	// Lookup resolves a message code for a locale and substitutes the
	// positional arguments into the template.
	Lookup(ctx context.Context, code string, args []any, loc Locale) (string, error)
}

// argIndexRegex finds positional placeholders of the form {0}, {1}, …
var argIndexRegex = regexp.MustCompile(`\{(\d+)\}`)

// formatArgs substitutes indexed placeholders with the corresponding
// argument. Out-of-range indexes keep their placeholder, so a template
// is never mangled by a short argument list.
func formatArgs(tmpl string, args []any) string {
	if len(args) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	return argIndexRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		var idx int
		if _, err := fmt.Sscanf(match, "{%d}", &idx); err != nil {
			return match
		}
		if idx < 0 || idx >= len(args) {
			return match
		}
		return fmt.Sprint(args[idx])
	})
}

// MapCatalog is an in-memory catalog backed by a nested map keyed by
// lowercase locale tag, then by message code. It is read-only after
// construction and safe for concurrent use.
type MapCatalog struct {
	messages map[string]map[string]string
}

// NewMapCatalog builds a catalog from the given data. Locale keys are
// lowercased; nil data yields an empty catalog that misses every
// lookup.
func NewMapCatalog(data map[string]map[string]string) *MapCatalog {
	messages := make(map[string]map[string]string, len(data))
	for tag, entries := range data {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || entries == nil {
			continue
		}
		bucket, ok := messages[tag]
		if !ok {
			bucket = make(map[string]string, len(entries))
			messages[tag] = bucket
		}
		for code, text := range entries {
			bucket[code] = text
		}
	}
	return &MapCatalog{messages: messages}
}

// Lookup resolves (code, locale) with locale fallback: the exact
// lowercase tag first, then the language-only prefix. A miss on both
// returns ErrMessageNotFound.
func (c *MapCatalog) Lookup(_ context.Context, code string, args []any, loc Locale) (string, error) {
	tag := strings.ToLower(loc.String())

	if text, ok := c.lookupTag(tag, code); ok {
		return formatArgs(text, args), nil
	}
	if lang := loc.Language(); lang != "" && lang != tag {
		if text, ok := c.lookupTag(lang, code); ok {
			return formatArgs(text, args), nil
		}
	}

	return "", fmt.Errorf("%w: code %q, locale %q", ErrMessageNotFound, code, loc.String())
}

func (c *MapCatalog) lookupTag(tag, code string) (string, bool) {
	bucket, ok := c.messages[tag]
	if !ok {
		return "", false
	}
	text, ok := bucket[code]
	return text, ok
}

// Locales returns the lowercase locale tags the catalog holds entries
// for, in unspecified order.
func (c *MapCatalog) Locales() []string {
	tags := make([]string, 0, len(c.messages))
	for tag := range c.messages {
		tags = append(tags, tag)
	}
	return tags
}
