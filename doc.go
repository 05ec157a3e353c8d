// Package i18n resolves, per inbound request, which natural-language
// locale should govern response content, and serves translated message
// strings keyed by a stable code with deterministic fallback. It is
// thread-safe for concurrent use in production request handling.
//
// The package allows you to:
//
//   - Parse a usable locale out of heterogeneous textual sources: plain
//     tags ("en"), underscore or dash separated tags ("zh_CN", "zh-CN"),
//     and weighted Accept-Language lists ("zh-CN,zh;q=0.9,en;q=0.8").
//   - Resolve the effective locale for a request by source precedence
//     (header first, then query/form parameter) constrained to an
//     operator-declared support list.
//   - Carry the resolved locale on the request context via middleware,
//     announced to clients through the Content-Language header.
//   - Resolve message codes against a pluggable Catalog with layered
//     fallback: explicit default, code-echo, empty string.
//   - Reach the message service from call sites without dependency
//     injection through a process-wide facade bound exactly once.
//
// # Architecture
//
// At its core the package revolves around two collaborating types. The
// Resolver turns one request into one Locale by applying the configured
// precedence policy and support-list gate; it is a pure function of its
// inputs. The Service resolves (code, locale) pairs against a Catalog
// collaborator, degrading every failure to a usable string because
// message lookup must never abort request handling.
//
// The ambient "current locale" is plain context.Context state installed
// by Middleware and read back by the Service when no explicit locale is
// given, so each request's locale is invisible to concurrently handled
// requests and is torn down with the request on every exit path.
//
// # Usage
//
// Basic set-up with a catalog loaded from an embedded file system:
//
//	cfg := i18n.MustLoadConfig()
//
//	catalog, err := i18n.NewCatalogFromFS(translationsFS, "i18n/messages.yaml")
//	if err != nil {
//		log.Fatalf("failed to load catalog: %v", err)
//	}
//
//	svc, err := i18n.NewService(catalog, cfg)
//	if err != nil {
//		log.Fatalf("failed to init service: %v", err)
//	}
//	i18n.SetDefault(svc)
//
//	resolver := i18n.NewResolver(cfg)
//	http.Handle("/", i18n.Middleware(resolver)(handler))
//
// Inside a handler the ambient locale drives every lookup:
//
//	msg := svc.Message(r.Context(), "user.not_found", userID)
//	// or, without the service at hand:
//	msg := i18n.M(r.Context(), "user.not_found", userID)
//
// # Error Handling
//
// Lookups on the request path never fail: malformed locale input parses
// to a fallback, unsupported locales redirect to the default, missing
// messages resolve through the fallback chain, and broken catalogs
// degrade to the explicit default or the bare code. The one fatal
// condition is using the facade before a default service is bound,
// which panics with ErrFacadeNotInitialized since it is a wiring
// defect rather than a request condition.
package i18n
