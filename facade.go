package i18n

import (
	"context"
	"sync"
	"sync/atomic"
)

// The facade gives call sites without access to the constructed
// Service a process-wide handle. It is bound at most once: explicitly
// through SetDefault at wiring time, or lazily through a registered
// provider on first use. Using the facade before either happens is a
// wiring defect and fails fast.
var facade facadeState

type facadeState struct {
	service  atomic.Pointer[Service]
	mu       sync.Mutex
	provider func() *Service
}

// SetDefault binds the process-wide service instance. Nil is ignored.
func SetDefault(s *Service) {
	if s == nil {
		return
	}
	facade.service.Store(s)
}

// SetDefaultProvider registers a lazy source for the process-wide
// service, invoked at most once on first facade use. It has no effect
// once a service is already bound.
func SetDefaultProvider(fn func() *Service) {
	facade.mu.Lock()
	defer facade.mu.Unlock()
	facade.provider = fn
}

// DefaultService returns the bound service, consulting the registered
// provider once under mutual exclusion if no instance is bound yet.
// It panics with ErrFacadeNotInitialized when neither is available:
// every subsequent facade call would otherwise silently misbehave.
func DefaultService() *Service {
	if s := facade.service.Load(); s != nil {
		return s
	}

	facade.mu.Lock()
	defer facade.mu.Unlock()

	if s := facade.service.Load(); s != nil {
		return s
	}
	if facade.provider != nil {
		if s := facade.provider(); s != nil {
			facade.service.Store(s)
			return s
		}
	}

	panic(ErrFacadeNotInitialized)
}

// resetFacade clears the bound service and provider. Test hook only.
func resetFacade() {
	facade.mu.Lock()
	defer facade.mu.Unlock()
	facade.service.Store(nil)
	facade.provider = nil
}

// M resolves a code through the default service using the ambient
// locale. A blank code yields "" without touching the service.
func M(ctx context.Context, code string, args ...any) string {
	if code == "" {
		return ""
	}
	return DefaultService().Message(ctx, code, args...)
}

// MIn is M with an explicit locale override.
func MIn(ctx context.Context, loc Locale, code string, args ...any) string {
	if code == "" {
		return ""
	}
	return DefaultService().MessageIn(ctx, loc, code, args...)
}

// MOr resolves a code through the default service, answering the
// explicit default on a miss. A blank code yields "" without touching
// the service.
func MOr(ctx context.Context, code, defaultMessage string, args ...any) string {
	if code == "" {
		return ""
	}
	return DefaultService().MessageOr(ctx, code, defaultMessage, args...)
}

// Has reports whether a message exists for the (code, locale) pair. A
// blank code is false without touching the service; a zero locale
// means the ambient locale.
func Has(ctx context.Context, code string, loc Locale) bool {
	if code == "" {
		return false
	}
	return DefaultService().Exists(ctx, code, loc)
}

// Batch resolves several codes through the default service with the
// ambient locale. Empty input yields an empty result without touching
// the service.
func Batch(ctx context.Context, codes ...string) *Messages {
	if len(codes) == 0 {
		return &Messages{byCode: make(map[string]string)}
	}
	return DefaultService().Batch(ctx, codes, Locale{})
}
