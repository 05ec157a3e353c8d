package i18n

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language tag used when no usable locale can be
// determined from any source.
const DefaultLanguage = "en"

// maxLocaleTagLength caps the accepted tag length. RFC 5646 recommends
// 35 characters as a practical maximum; anything longer is treated as
// malformed input rather than parsed.
const maxLocaleTagLength = 35

// localeTagRegex matches canonical tags such as "en" or "zh-CN".
var localeTagRegex = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

// Locale is an immutable language identifier with an optional region,
// canonically rendered as "ll" or "ll-RR" (e.g. "en", "zh-CN").
// The zero value is "no locale"; use IsZero to test for it.
type Locale struct {
	lang   string
	region string
}

// Default returns the process-wide default locale.
func Default() Locale {
	return Locale{lang: DefaultLanguage}
}

// NewLocale builds a locale from explicit language and region parts.
// Parts are re-cased to the canonical form; the region may be empty.
func NewLocale(lang, region string) Locale {
	return Locale{
		lang:   strings.ToLower(strings.TrimSpace(lang)),
		region: strings.ToUpper(strings.TrimSpace(region)),
	}
}

// Parse converts an arbitrary locale-bearing string into a Locale.
// It accepts simple tags ("en", "zh_CN", "zh-CN") as well as weighted
// Accept-Language lists ("zh-CN,zh;q=0.9,en;q=0.8"), in which case the
// first candidate wins and weights are discarded.
//
// Parse is total: malformed input yields the default locale, never an
// error. Tags that do not match the canonical ll-RR shape are still
// constructed from the normalized string — parsing is deliberately
// permissive, see TestParse_PermissiveShape.
func Parse(raw string) Locale {
	return ParseSafely(raw, Default())
}

// ParseSafely is Parse with a caller-supplied fallback instead of the
// default locale. A zero fallback means "use the default locale".
func ParseSafely(raw string, fallback Locale) Locale {
	if fallback.IsZero() {
		fallback = Default()
	}

	candidate := firstCandidate(raw)
	if candidate == "" || len(candidate) > maxLocaleTagLength {
		return fallback
	}

	// Underscore-separated tags ("zh_CN") normalize to the dash form.
	normalized := strings.ReplaceAll(candidate, "_", "-")

	// Construction is permissive: the identifier built from the
	// normalized string is returned whether or not it matches the
	// canonical shape. IsValidTag exposes the shape check to callers
	// that want to gate on it.
	lang, region, _ := strings.Cut(normalized, "-")
	return NewLocale(lang, region)
}

// firstCandidate reduces a possibly weighted, possibly multi-valued
// locale string to its first candidate tag.
func firstCandidate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	// First entry of a comma-separated list wins.
	if idx := strings.Index(s, ","); idx >= 0 {
		s = s[:idx]
	}
	// Quality values ("en;q=0.8") are discarded.
	if idx := strings.Index(s, ";"); idx >= 0 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}

// IsValidTag reports whether a tag matches the canonical ll-RR shape
// after re-casing. Validation is advisory: Parse constructs a Locale
// from the normalized string whether or not the shape matches.
func IsValidTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}

	parts := strings.Split(tag, "-")
	switch len(parts) {
	case 1:
		return localeTagRegex.MatchString(strings.ToLower(parts[0]))
	case 2:
		recased := strings.ToLower(parts[0]) + "-" + strings.ToUpper(parts[1])
		return localeTagRegex.MatchString(recased)
	default:
		return false
	}
}

// String renders the canonical dash form, e.g. "zh-CN".
func (l Locale) String() string {
	if l.region == "" {
		return l.lang
	}
	return l.lang + "-" + l.region
}

// Language returns the lowercase language part of the tag.
func (l Locale) Language() string {
	return l.lang
}

// Region returns the uppercase region part of the tag, or "" when the
// locale carries no region.
func (l Locale) Region() string {
	return l.region
}

// IsZero reports whether the locale carries no value at all.
func (l Locale) IsZero() bool {
	return l.lang == "" && l.region == ""
}

// Equal compares two locales case-insensitively on the full tag.
// Locales built through NewLocale or Parse are already canonically
// cased, so this is equivalent to == for well-formed values.
func (l Locale) Equal(other Locale) bool {
	return strings.EqualFold(l.String(), other.String())
}

// Tag converts the locale into a golang.org/x/text language.Tag for
// interop with matchers, collators and formatters. Conversion is
// best-effort and never fails.
func (l Locale) Tag() language.Tag {
	if l.IsZero() {
		return language.Make(DefaultLanguage)
	}
	return language.Make(l.String())
}
