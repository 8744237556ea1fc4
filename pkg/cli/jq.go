package cli

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// applyJQ runs a jq expression over the result and returns every value
// the filter emits. The result is round-tripped through JSON so the
// filter sees plain maps and slices.
func applyJQ(result any, expr string) ([]any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression %q: %w", expr, err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}

	var out []any
	iter := query.Run(value)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("jq: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}
