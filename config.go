package i18n

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the operator surface of the package, read once at startup
// and immutable thereafter. All fields are bindable from the
// environment; zero-config deployments get the documented defaults.
type Config struct {
	Enabled          bool          `env:"I18N_ENABLED" envDefault:"true"`                                             // Enabled toggles locale resolution; when false every request resolves to the default locale.
	DefaultLocale    string        `env:"I18N_DEFAULT_LOCALE" envDefault:"en"`                                        // DefaultLocale is the tag served when no usable candidate survives resolution.
	SupportedLocales []string      `env:"I18N_SUPPORTED_LOCALES" envSeparator:","`                                    // SupportedLocales is the allow-list of tags; empty means all locales are accepted.
	HeaderName       string        `env:"I18N_HEADER_NAME" envDefault:"Accept-Language"`                              // HeaderName is the request header inspected first.
	ParamName        string        `env:"I18N_PARAM_NAME" envDefault:"lang"`                                          // ParamName is the query/form parameter inspected when the header is absent.
	CatalogBaseNames []string      `env:"I18N_CATALOG_BASE_NAMES" envSeparator:"," envDefault:"i18n/errors,i18n/messages"` // CatalogBaseNames lists catalog document base paths, consumed by the catalog loader.
	CatalogEncoding  string        `env:"I18N_CATALOG_ENCODING" envDefault:"UTF-8"`                                   // CatalogEncoding is the declared encoding of catalog documents.
	CatalogCacheTTL  time.Duration `env:"I18N_CATALOG_CACHE_TTL" envDefault:"30m"`                                    // CatalogCacheTTL is how long a catalog implementation may cache loaded entries.
	UseCodeAsDefault bool          `env:"I18N_USE_CODE_AS_DEFAULT" envDefault:"true"`                                 // UseCodeAsDefault echoes the message code when a lookup misses and no explicit default was given.
}

var defaultEnvLoaded sync.Once

// LoadConfig populates a Config from the environment. A .env file in
// the working directory is loaded once per process if present; its
// absence is not an error.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoadConfig works like LoadConfig but panics on failure. Useful
// for configurations required for the application to start.
func MustLoadConfig() Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return cfg
}

// defaultLocale parses the configured default tag, falling back to the
// package default when the configuration carries no value.
func (c Config) defaultLocale() Locale {
	if c.DefaultLocale == "" {
		return Default()
	}
	return Parse(c.DefaultLocale)
}

// supportSet lowercases the configured allow-list into a set. An empty
// set means all locales are accepted.
func (c Config) supportSet() map[string]struct{} {
	if len(c.SupportedLocales) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(c.SupportedLocales))
	for _, tag := range c.SupportedLocales {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		set[tag] = struct{}{}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
