package i18n

import "net/http"

// Middleware binds the resolved locale to the request before the
// handler runs. It installs the locale into the request context under
// both keys, announces it via the Content-Language response header,
// and serves the wrapped handler.
//
// The binding is carried on the per-request context, so it is torn down
// with the request on every exit path — normal return or panic — and
// cannot leak into a subsequent request handled by the same worker.
//
// When resolution is disabled by configuration the middleware is an
// identity wrapper.
func Middleware(resolver *Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if resolver == nil || !resolver.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc := resolveDefensively(resolver, r)

			w.Header().Set(ContentLanguageHeader, loc.String())
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), loc)))
		})
	}
}

// resolveDefensively shields the binding step from a panicking
// resolver. Resolve is total by contract, but a failure here must
// install the default locale rather than skip the bound transition.
func resolveDefensively(resolver *Resolver, r *http.Request) (loc Locale) {
	defer func() {
		if recover() != nil {
			loc = resolver.DefaultLocale()
		}
	}()
	return resolver.Resolve(r)
}
