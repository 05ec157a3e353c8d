package i18n

import (
	"context"
	"log/slog"
)

// LocaleLogExtractor returns a context extractor that surfaces the
// ambient locale as a "locale" attribute on every log record, for use
// with context-aware slog handler decorators.
func LocaleLogExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if lang := LangFromContext(ctx); lang != "" {
			return slog.String("locale", lang), true
		}
		return slog.Attr{}, false
	}
}
