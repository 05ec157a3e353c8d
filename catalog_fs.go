package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// NewCatalogFromFS loads catalog documents from a file system — an
// embed.FS, an os.DirFS, or a fstest.MapFS in tests — and collapses
// them into a MapCatalog. Each document is a YAML or JSON mapping of
// locale tag to message entries; nested mappings are flattened into
// dot-separated codes, so
//
//	en:
//	  user:
//	    not_found: "User {0} was not found"
//
// yields the code "user.not_found" for locale "en". Documents loaded
// later override earlier entries for the same (locale, code) pair.
//
// Loading happens once at construction; the returned catalog serves
// lookups from memory.
func NewCatalogFromFS(fsys fs.FS, paths ...string) (*MapCatalog, error) {
	merged := make(map[string]map[string]string)

	for _, p := range paths {
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadCatalogFile, err)
		}
		if len(content) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyCatalogFile, p)
		}

		doc, err := parseCatalogDocument(p, content)
		if err != nil {
			return nil, err
		}

		for tag, entries := range doc {
			tag = strings.ToLower(tag)
			bucket, ok := merged[tag]
			if !ok {
				bucket = make(map[string]string, len(entries))
				merged[tag] = bucket
			}
			for code, text := range entries {
				bucket[code] = text
			}
		}
	}

	return NewMapCatalog(merged), nil
}

// parseCatalogDocument unmarshals one document by extension and
// flattens every locale's entries.
func parseCatalogDocument(name string, content []byte) (map[string]map[string]string, error) {
	var raw map[string]any

	switch ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")); ext {
	case "yaml", "yml":
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, errors.Join(ErrFailedToParseCatalogFile, err)
		}
	case "json":
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, errors.Join(ErrFailedToParseCatalogFile, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q in %s", ErrFailedToParseCatalogFile, ext, name)
	}

	doc := make(map[string]map[string]string, len(raw))
	for tag, val := range raw {
		entries, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: locale %q in %s is not a mapping", ErrInvalidCatalogStructure, tag, name)
		}
		flat := make(map[string]string)
		flattenEntries("", entries, flat)
		doc[tag] = flat
	}
	return doc, nil
}

// flattenEntries joins nested mapping keys with dots and stringifies
// scalar leaves.
func flattenEntries(prefix string, entries map[string]any, out map[string]string) {
	for key, val := range entries {
		code := key
		if prefix != "" {
			code = prefix + "." + key
		}
		switch v := val.(type) {
		case map[string]any:
			flattenEntries(code, v, out)
		case map[any]any:
			converted := make(map[string]any, len(v))
			for k, inner := range v {
				if ks, ok := k.(string); ok {
					converted[ks] = inner
				}
			}
			flattenEntries(code, converted, out)
		case string:
			out[code] = v
		default:
			out[code] = fmt.Sprint(v)
		}
	}
}
