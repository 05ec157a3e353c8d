package i18n_test

import (
	"testing"

	"github.com/gostarterkit/i18n"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "bare language code",
			raw:      "en",
			expected: "en",
		},
		{
			name:     "dash separated tag",
			raw:      "zh-CN",
			expected: "zh-CN",
		},
		{
			name:     "underscore separated tag normalizes to dash",
			raw:      "zh_CN",
			expected: "zh-CN",
		},
		{
			name:     "mixed casing canonicalizes",
			raw:      "ZH-cn",
			expected: "zh-CN",
		},
		{
			name:     "weighted list takes first candidate",
			raw:      "zh-CN,zh;q=0.9,en;q=0.8",
			expected: "zh-CN",
		},
		{
			name:     "quality value on single candidate discarded",
			raw:      "fr;q=0.7",
			expected: "fr",
		},
		{
			name:     "surrounding whitespace trimmed",
			raw:      "  en-US  ",
			expected: "en-US",
		},
		{
			name:     "blank input yields default",
			raw:      "",
			expected: "en",
		},
		{
			name:     "whitespace-only input yields default",
			raw:      "   ",
			expected: "en",
		},
		{
			name:     "list with blank first entry yields default",
			raw:      " ,zh;q=0.9",
			expected: "en",
		},
		{
			name:     "oversized tag yields default",
			raw:      "abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz",
			expected: "en",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := i18n.Parse(tt.raw)
			assert.Equal(t, tt.expected, got.String())
			assert.False(t, got.IsZero(), "Parse must always construct an identifier")
		})
	}
}

// Parse deliberately constructs an identifier even when the tag does
// not match the canonical ll-RR shape. This documents the permissive
// behavior rather than hiding it: an out-of-shape tag passes through
// normalized instead of collapsing to the default.
func TestParse_PermissiveShape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "english-US", i18n.Parse("english_us").String())
	assert.Equal(t, "de-DEV", i18n.Parse("de-dev").String())

	assert.False(t, i18n.IsValidTag("english-US"))
	assert.False(t, i18n.IsValidTag("de-DEV"))
	assert.True(t, i18n.IsValidTag("zh-cn"), "shape check re-cases before matching")
	assert.True(t, i18n.IsValidTag("en"))
	assert.False(t, i18n.IsValidTag(""))
	assert.False(t, i18n.IsValidTag("zh-CN-Hans"))
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	underscore := i18n.Parse("zh_CN")
	dash := i18n.Parse("zh-CN")

	assert.Equal(t, underscore, dash)
	assert.True(t, underscore.Equal(dash))
	assert.Equal(t, "zh", dash.Language())
	assert.Equal(t, "CN", dash.Region())
}

func TestParseSafely(t *testing.T) {
	t.Parallel()

	fallback := i18n.NewLocale("fr", "FR")

	t.Run("valid input ignores fallback", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "en-US", i18n.ParseSafely("en_US", fallback).String())
	})

	t.Run("blank input yields fallback", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, fallback, i18n.ParseSafely("", fallback))
	})

	t.Run("zero fallback means default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, i18n.Default(), i18n.ParseSafely("", i18n.Locale{}))
	})
}

func TestLocale_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, i18n.NewLocale("EN", "us").Equal(i18n.NewLocale("en", "US")))
	assert.False(t, i18n.NewLocale("en", "US").Equal(i18n.NewLocale("en", "GB")))
	assert.True(t, i18n.Locale{}.Equal(i18n.Locale{}))
}

func TestLocale_Tag(t *testing.T) {
	t.Parallel()

	tag := i18n.Parse("zh_CN").Tag()
	assert.Equal(t, "zh-CN", tag.String())

	// Interop with the x/text matcher.
	matcher := language.NewMatcher([]language.Tag{language.English, language.SimplifiedChinese})
	_, idx, _ := matcher.Match(tag)
	assert.Equal(t, 1, idx)

	assert.Equal(t, "en", i18n.Locale{}.Tag().String(), "zero locale maps to the default tag")
}

func TestLocale_Idempotence(t *testing.T) {
	t.Parallel()

	first := i18n.Parse("zh-CN,zh;q=0.9,en;q=0.8")
	second := i18n.Parse("zh-CN,zh;q=0.9,en;q=0.8")
	assert.Equal(t, first, second)
}
