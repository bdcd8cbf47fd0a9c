package build

import (
	"encoding/json"

	"github.com/talav/c2openapi/example"
	"github.com/talav/c2openapi/internal/model"
)

// parseExampleValue decodes a documented @example directive's raw text as
// JSON when possible, so an author can write {"id": 1} or [1, 2, 3]
// inline, falling back to the literal string for a bare scalar like "ok"
// that is not valid JSON on its own.
func parseExampleValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}

	return raw
}

// namedExample builds one model.Example from a documented @example
// directive's raw text, going through the example package's own
// constructor so a hand-built example.Example and a parsed doc-comment one
// round trip through the same conversion.
func namedExample(raw string) *model.Example {
	return toModelExample(example.New("", parseExampleValue(raw)))
}

func toModelExample(ex example.Example) *model.Example {
	if ex.IsExternal() {
		return &model.Example{
			Summary:       ex.Summary(),
			Description:   ex.Description(),
			ExternalValue: ex.ExternalValue(),
		}
	}

	return &model.Example{
		Summary:     ex.Summary(),
		Description: ex.Description(),
		Value:       ex.Value(),
	}
}
