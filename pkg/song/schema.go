package song

import (
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// docSchema validates a raw song document before it becomes a Song.
var docSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"name", "bpm", "jianpu"},
	Properties: map[string]*jsonschema.Schema{
		"name": {Type: "string", MinLength: ptr(1)},
		"bpm":  {Type: "integer", Minimum: ptr(1.0)},
		"jianpu": {
			Type:     "array",
			MinItems: ptr(1),
			Items:    &jsonschema.Schema{Type: "string"},
		},
		"offset":      {Type: "number"},
		"description": {Type: "string"},
	},
}

var resolveSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return docSchema.Resolve(nil)
})

// ValidateDoc checks a decoded song document against the song schema.
func ValidateDoc(doc map[string]any) error {
	resolved, err := resolveSchema()
	if err != nil {
		return fmt.Errorf("resolve song schema: %w", err)
	}
	if err := resolved.Validate(doc); err != nil {
		return fmt.Errorf("invalid song document: %w", err)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
