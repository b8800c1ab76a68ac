package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const poolSchemaURL = "schema://question-pool.json"

// poolSchema describes a question pool file: a JSON array of questions.
var poolSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"id", "domain", "difficulty"},
		"properties": map[string]any{
			"id":         map[string]any{"type": "string", "minLength": 1},
			"field":      map[string]any{"type": "integer", "minimum": 0, "maximum": 46},
			"domain":     map[string]any{"type": "integer", "minimum": 0, "maximum": 7},
			"difficulty": map[string]any{"type": "integer", "minimum": 0, "maximum": 2},
			"answer":     map[string]any{"type": "string"},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// poolValidator compiles the pool schema once.
func poolValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(poolSchemaURL, poolSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(poolSchemaURL)
	})
	return compiled, compileErr
}

// ParsePool validates raw against the pool schema and decodes it. Duplicate
// question ids are rejected.
func ParsePool(raw []byte) ([]Question, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := poolValidator()
	if err != nil {
		return nil, fmt.Errorf("compile pool schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("pool schema validation failed: %w", err)
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode pool: %w", err)
	}

	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
	}
	return questions, nil
}

// LoadPool reads and parses a pool file.
func LoadPool(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pool: %w", err)
	}
	return ParsePool(raw)
}

// Find returns the question with the given id.
func Find(pool []Question, id string) (Question, bool) {
	for _, q := range pool {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
