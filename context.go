package i18n

import "context"

// Two context keys mirror the two request-scoped values the middleware
// installs: the structured locale and its plain string form.
type (
	localeContextKey struct{}
	langContextKey   struct{}
)

// WithLocale installs the locale into the context under both keys.
// The binding lives and dies with the derived context, so per-request
// contexts cannot leak a locale into unrelated requests.
func WithLocale(ctx context.Context, loc Locale) context.Context {
	ctx = context.WithValue(ctx, localeContextKey{}, loc)
	return context.WithValue(ctx, langContextKey{}, loc.String())
}

// LocaleFromContext returns the ambient locale, or the zero Locale
// when none is bound.
func LocaleFromContext(ctx context.Context) Locale {
	if ctx == nil {
		return Locale{}
	}
	loc, _ := ctx.Value(localeContextKey{}).(Locale)
	return loc
}

// LangFromContext returns the ambient locale's string form, or ""
// when none is bound.
func LangFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	lang, _ := ctx.Value(langContextKey{}).(string)
	return lang
}

// ClearLocale returns a context with both locale values removed. Use
// it when handing a request-derived context to work that must not
// observe the request's locale.
func ClearLocale(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, localeContextKey{}, nil)
	return context.WithValue(ctx, langContextKey{}, nil)
}
