package i18n

import (
	"context"
	"errors"

	"gopkg.in/yaml.v3"
)

// YAMLParser reads message files written as YAML mappings.
type YAMLParser struct{}

func (YAMLParser) Parse(ctx context.Context, data []byte) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidMessages, err)
	}
	out := make(map[string]string, len(raw))
	if err := flatten(out, "", raw); err != nil {
		return nil, err
	}
	return out, nil
}

func (YAMLParser) Extensions() []string {
	return []string{"yaml", "yml"}
}
