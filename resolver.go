package i18n

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// ContentLanguageHeader is the response header announcing the locale
// that governs the response body.
const ContentLanguageHeader = "Content-Language"

// Resolver determines the effective locale for one request by applying
// source precedence (header, then parameter) and the configured
// support-list gate. It holds no mutable state after construction and
// is safe for unsynchronized concurrent use.
type Resolver struct {
	headerName    string
	paramName     string
	supported     map[string]struct{}
	defaultLocale Locale
	enabled       bool
	logger        *slog.Logger
}

// ResolverOption configures a Resolver instance.
type ResolverOption func(*Resolver)

// WithResolverLogger provides a logger for debug-level diagnostics on
// rejected candidates. A discard logger is used when not specified.
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver builds a Resolver from the given configuration. The
// configured default locale is trusted as-is and never checked against
// the support set.
func NewResolver(cfg Config, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		headerName:    cfg.HeaderName,
		paramName:     cfg.ParamName,
		supported:     cfg.supportSet(),
		defaultLocale: cfg.defaultLocale(),
		enabled:       cfg.Enabled,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if r.headerName == "" {
		r.headerName = "Accept-Language"
	}
	if r.paramName == "" {
		r.paramName = "lang"
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultLocale returns the locale served when no usable candidate
// survives resolution.
func (r *Resolver) DefaultLocale() Locale {
	return r.defaultLocale
}

// Enabled reports whether locale resolution is active.
func (r *Resolver) Enabled() bool {
	return r.enabled
}

// Resolve returns the effective locale for the request. The header is
// consulted first — it is the only source where a weighted list such as
// "zh-CN,zh;q=0.9,en;q=0.8" is expected — then the query/form
// parameter. The winning candidate must pass the support-list gate;
// otherwise the default locale is returned. Resolve is a pure function
// of the request and the policy the Resolver was constructed with.
func (r *Resolver) Resolve(req *http.Request) Locale {
	if !r.enabled || req == nil {
		return r.defaultLocale
	}

	candidate, ok := r.candidate(req)
	if !ok {
		return r.defaultLocale
	}

	if !r.IsSupported(candidate) {
		r.logger.Debug("locale not in support set, falling back to default",
			"candidate", candidate.String(), "default", r.defaultLocale.String())
		return r.defaultLocale
	}

	return candidate
}

// candidate extracts the first usable locale from the request sources
// in precedence order. Header presence wins outright: a non-blank
// header always produces a candidate, so the parameter is only read
// when the header is absent or blank.
func (r *Resolver) candidate(req *http.Request) (Locale, bool) {
	if raw := req.Header.Get(r.headerName); raw != "" {
		return Parse(raw), true
	}
	if raw := req.FormValue(r.paramName); raw != "" {
		return Parse(raw), true
	}
	return Locale{}, false
}

// IsSupported reports whether the locale passes the support-list gate:
// accepted when the set is empty, or contains the full lowercase tag,
// or contains the lowercase language-only prefix.
func (r *Resolver) IsSupported(loc Locale) bool {
	if loc.IsZero() {
		return false
	}
	if len(r.supported) == 0 {
		return true
	}
	if _, ok := r.supported[strings.ToLower(loc.String())]; ok {
		return true
	}
	_, ok := r.supported[loc.Language()]
	return ok
}

// Announce sets the Content-Language response header to the locale's
// canonical tag when it passes the support-list gate. Intended for
// collaborators that manage their own request lifecycle and only need
// the passive resolve-and-announce half of the middleware.
func (r *Resolver) Announce(w http.ResponseWriter, loc Locale) {
	if w == nil || loc.IsZero() {
		return
	}
	if r.IsSupported(loc) {
		w.Header().Set(ContentLanguageHeader, loc.String())
	}
}
