package i18n

import (
	"context"
	"encoding/json"
	"errors"
)

// JSONParser reads MediaWiki style message files: one object per language,
// with an optional "@metadata" entry.
type JSONParser struct{}

func (JSONParser) Parse(ctx context.Context, data []byte) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidMessages, err)
	}
	out := make(map[string]string, len(raw))
	if err := flatten(out, "", raw); err != nil {
		return nil, err
	}
	return out, nil
}

func (JSONParser) Extensions() []string {
	return []string{"json"}
}
