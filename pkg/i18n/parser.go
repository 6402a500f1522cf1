package i18n

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Parser decodes one message file into a flat key to text map. Nested
// mappings are flattened with '.' so {"toc": {"hide": "x"}} gives "toc.hide".
type Parser interface {
	Parse(ctx context.Context, data []byte) (map[string]string, error)
	// Extensions lists the file extensions the parser reads, without the dot.
	Extensions() []string
}

// DefaultParsers reads JSON and YAML message files.
func DefaultParsers() []Parser {
	return []Parser{JSONParser{}, YAMLParser{}}
}

func parserFor(parsers []Parser, name string) (Parser, string, bool) {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	for _, p := range parsers {
		for _, e := range p.Extensions() {
			if strings.EqualFold(e, ext) {
				return p, strings.TrimSuffix(name, path.Ext(name)), true
			}
		}
	}
	return nil, "", false
}

// flatten copies the string leaves of src into dst. Keys starting with '@'
// hold file metadata and are skipped.
func flatten(dst map[string]string, prefix string, src map[string]any) error {
	for k, v := range src {
		if strings.HasPrefix(k, "@") {
			continue
		}
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			dst[key] = val
		case map[string]any:
			if err := flatten(dst, key, val); err != nil {
				return err
			}
		case bool, int, int64, float64:
			dst[key] = fmt.Sprint(val)
		default:
			return fmt.Errorf("%w: key %q holds %T", ErrInvalidMessages, key, v)
		}
	}
	return nil
}
