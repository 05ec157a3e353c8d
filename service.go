package i18n

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
)

// Service resolves message codes against a Catalog collaborator with
// layered fallback: explicit default, then code-echo (when configured),
// then the empty string. Message lookup never aborts request handling —
// every catalog failure degrades to a usable string.
//
// A Service holds no mutable state after construction and is safe for
// unsynchronized concurrent use.
type Service struct {
	catalog          Catalog
	defaultLocale    Locale
	declaredLocales  []string
	useCodeAsDefault bool
	logger           *slog.Logger
}

// ServiceOption configures a Service instance.
type ServiceOption func(*Service)

// WithLogger provides a logger for the service. A discard logger is
// used when not specified.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCodeAsDefault overrides whether a catalog miss without an
// explicit default echoes the message code.
func WithCodeAsDefault(echo bool) ServiceOption {
	return func(s *Service) {
		s.useCodeAsDefault = echo
	}
}

// NewService builds a Service over the given catalog and configuration.
func NewService(catalog Catalog, cfg Config, opts ...ServiceOption) (*Service, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}

	s := &Service{
		catalog:          catalog,
		defaultLocale:    cfg.defaultLocale(),
		declaredLocales:  cfg.SupportedLocales,
		useCodeAsDefault: cfg.UseCodeAsDefault,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CurrentLocale returns the locale governing a lookup: the explicit
// argument when non-zero, else the ambient request locale, else the
// package default.
func (s *Service) CurrentLocale(ctx context.Context, explicit Locale) Locale {
	if !explicit.IsZero() {
		return explicit
	}
	if ambient := LocaleFromContext(ctx); !ambient.IsZero() {
		return ambient
	}
	return Default()
}

// Message resolves a code using the ambient locale. On a miss the code
// itself is returned when code-echo is configured, otherwise "".
func (s *Service) Message(ctx context.Context, code string, args ...any) string {
	return s.resolve(ctx, code, args, false, "", Locale{})
}

// MessageIn is Message with an explicit locale override.
func (s *Service) MessageIn(ctx context.Context, loc Locale, code string, args ...any) string {
	return s.resolve(ctx, code, args, false, "", loc)
}

// MessageOr resolves a code using the ambient locale, answering the
// explicit default when the catalog has no entry.
func (s *Service) MessageOr(ctx context.Context, code, defaultMessage string, args ...any) string {
	return s.resolve(ctx, code, args, true, defaultMessage, Locale{})
}

// MessageOrIn is MessageOr with an explicit locale override.
func (s *Service) MessageOrIn(ctx context.Context, loc Locale, code, defaultMessage string, args ...any) string {
	return s.resolve(ctx, code, args, true, defaultMessage, loc)
}

// resolve is the layered core shared by every public lookup.
func (s *Service) resolve(ctx context.Context, code string, args []any, hasDefault bool, defaultMessage string, explicit Locale) string {
	// A blank code never consults the catalog.
	if code == "" {
		if hasDefault {
			return defaultMessage
		}
		return ""
	}

	loc := s.CurrentLocale(ctx, explicit)

	text, err := s.catalog.Lookup(ctx, code, args, loc)
	if err == nil {
		return text
	}

	if errors.Is(err, ErrMessageNotFound) {
		s.logger.DebugContext(ctx, "no message found for code",
			"code", code, "locale", loc.String())
		if hasDefault {
			return defaultMessage
		}
		if s.useCodeAsDefault {
			return code
		}
		return ""
	}

	// Catalog failure other than a miss: degrade to the default or the
	// bare code rather than letting the failure reach the caller.
	s.logger.ErrorContext(ctx, "error retrieving message",
		"code", code, "locale", loc.String(), "error", err)
	if hasDefault {
		return defaultMessage
	}
	return code
}

// Exists reports whether the catalog can produce a non-missing result
// for the (code, locale) pair. A blank code is always false; a zero
// locale means the ambient locale. Exists never fails: a broken
// catalog reads as "does not exist".
func (s *Service) Exists(ctx context.Context, code string, loc Locale) bool {
	if code == "" {
		return false
	}
	_, err := s.catalog.Lookup(ctx, code, nil, s.CurrentLocale(ctx, loc))
	return err == nil
}

// Batch resolves several codes in one call. Input codes are
// de-duplicated preserving first-seen order, each resolved
// independently with no default and no arguments. Empty input yields
// an empty, non-nil result.
func (s *Service) Batch(ctx context.Context, codes []string, loc Locale) *Messages {
	resolved := s.CurrentLocale(ctx, loc)

	result := &Messages{byCode: make(map[string]string, len(codes))}
	for _, code := range codes {
		if _, seen := result.byCode[code]; seen {
			continue
		}
		result.codes = append(result.codes, code)
		result.byCode[code] = s.resolve(ctx, code, nil, false, "", resolved)
	}
	return result
}

// SupportedLocales returns the declared locales in configuration
// order, duplicates removed. When none are declared it returns exactly
// the parsed default locale.
func (s *Service) SupportedLocales() []Locale {
	if len(s.declaredLocales) == 0 {
		return []Locale{s.defaultLocale}
	}

	seen := make(map[string]struct{}, len(s.declaredLocales))
	locales := make([]Locale, 0, len(s.declaredLocales))
	for _, tag := range s.declaredLocales {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		loc := Parse(tag)
		if _, dup := seen[loc.String()]; dup {
			continue
		}
		seen[loc.String()] = struct{}{}
		locales = append(locales, loc)
	}
	return locales
}

// Messages is an order-preserving mapping of message code to resolved
// text, as produced by Batch.
type Messages struct {
	codes  []string
	byCode map[string]string
}

// Len returns the number of resolved codes.
func (m *Messages) Len() int {
	return len(m.codes)
}

// Codes returns the codes in first-seen order.
func (m *Messages) Codes() []string {
	out := make([]string, len(m.codes))
	copy(out, m.codes)
	return out
}

// Get returns the resolved text for a code and whether it was part of
// the batch.
func (m *Messages) Get(code string) (string, bool) {
	text, ok := m.byCode[code]
	return text, ok
}

// Map returns a plain map copy of the mapping, losing order.
func (m *Messages) Map() map[string]string {
	out := make(map[string]string, len(m.byCode))
	for code, text := range m.byCode {
		out[code] = text
	}
	return out
}
