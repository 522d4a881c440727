// Package task provides the task data model and persistence for todo.
// This file validates the persisted document against a JSON schema.
package task

import (
	"encoding/json"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema describes the persisted envelope. A document that fails
// this schema is treated as malformed content, which loads as empty.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["tasks"],
  "properties": {
    "metadata": {
      "type": "object",
      "properties": {
        "version": {"type": "string"},
        "next_id": {"type": "integer", "minimum": 1}
      }
    },
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "description", "priority", "completed", "created_at"],
        "properties": {
          "id": {"type": "integer", "minimum": 1},
          "description": {"type": "string", "minLength": 1},
          "priority": {"enum": ["high", "medium", "low"]},
          "due_date": {
            "type": ["string", "null"],
            "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"
          },
          "completed": {"type": "boolean"},
          "created_at": {"type": "string"}
        }
      }
    }
  }
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("todo.schema.json", strings.NewReader(documentSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("todo.schema.json")
}

// validateDocument checks raw file content against the document schema.
func validateDocument(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return compiledSchema.Validate(doc)
}
