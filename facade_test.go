package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Facade tests share package-global state, so they run sequentially
// and reset the binding around each case.

func facadeTestService(t *testing.T) *Service {
	t.Helper()
	catalog := NewMapCatalog(map[string]map[string]string{
		"en": {
			"greeting":       "Hello",
			"user.not_found": "User {0} was not found",
		},
		"fr": {
			"greeting": "Bonjour",
		},
	})
	svc, err := NewService(catalog, Config{DefaultLocale: "en", UseCodeAsDefault: true})
	require.NoError(t, err)
	return svc
}

func TestFacade_SetDefault(t *testing.T) {
	resetFacade()
	t.Cleanup(resetFacade)

	svc := facadeTestService(t)
	SetDefault(svc)

	ctx := context.Background()
	assert.Equal(t, "Hello", M(ctx, "greeting"))
	assert.Equal(t, "User 7 was not found", M(ctx, "user.not_found", 7))
	assert.Equal(t, "Bonjour", MIn(ctx, Parse("fr"), "greeting"))
	assert.Equal(t, "N/A", MOr(ctx, "nope.missing", "N/A"))
	assert.True(t, Has(ctx, "greeting", Parse("en")))
	assert.False(t, Has(ctx, "nope.missing", Parse("en")))

	got := Batch(ctx, "greeting", "greeting", "user.not_found")
	assert.Equal(t, []string{"greeting", "user.not_found"}, got.Codes())
}

func TestFacade_AmbientLocale(t *testing.T) {
	resetFacade()
	t.Cleanup(resetFacade)

	SetDefault(facadeTestService(t))

	ctx := WithLocale(context.Background(), Parse("fr"))
	assert.Equal(t, "Bonjour", M(ctx, "greeting"))
}

func TestFacade_Provider(t *testing.T) {
	resetFacade()
	t.Cleanup(resetFacade)

	calls := 0
	svc := facadeTestService(t)
	SetDefaultProvider(func() *Service {
		calls++
		return svc
	})

	ctx := context.Background()
	assert.Equal(t, "Hello", M(ctx, "greeting"))
	assert.Equal(t, "Hello", M(ctx, "greeting"))
	assert.Equal(t, 1, calls, "provider is consulted at most once")
}

func TestFacade_SetDefaultWinsOverProvider(t *testing.T) {
	resetFacade()
	t.Cleanup(resetFacade)

	bound := facadeTestService(t)
	SetDefault(bound)
	SetDefaultProvider(func() *Service {
		t.Fatal("provider must not be consulted once a service is bound")
		return nil
	})

	assert.Equal(t, "Hello", M(context.Background(), "greeting"))
}

func TestFacade_UnboundPanics(t *testing.T) {
	resetFacade()
	t.Cleanup(resetFacade)

	assert.PanicsWithError(t, ErrFacadeNotInitialized.Error(), func() {
		_ = M(context.Background(), "greeting")
	})

	// A provider answering nil is the same wiring defect.
	SetDefaultProvider(func() *Service { return nil })
	assert.PanicsWithError(t, ErrFacadeNotInitialized.Error(), func() {
		_ = DefaultService()
	})
}

// Blank codes never reach the service, so they are safe even before
// the facade is bound.
func TestFacade_BlankCodes(t *testing.T) {
	resetFacade()
	t.Cleanup(resetFacade)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		assert.Empty(t, M(ctx, ""))
		assert.Empty(t, MOr(ctx, "", "default"))
		assert.Empty(t, MIn(ctx, Parse("en"), ""))
		assert.False(t, Has(ctx, "", Locale{}))
		assert.Equal(t, 0, Batch(ctx).Len())
	})
}
