package mapping

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// documentSchema is the JSON schema of an index definition file.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["table", "columns"],
  "additionalProperties": false,
  "properties": {
    "table": {"type": "string", "minLength": 1},
    "types": {
      "type": ["object", "null"],
      "additionalProperties": {
        "type": "object",
        "additionalProperties": {"type": "string", "minLength": 1}
      }
    },
    "columns": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {
        "oneOf": [
          {"type": "string", "minLength": 1},
          {
            "type": "object",
            "required": ["type"],
            "additionalProperties": false,
            "properties": {
              "type": {"type": "string", "minLength": 1},
              "role": {"enum": ["regular", "partition_key", "clustering_key", "index"]}
            }
          }
        ]
      }
    },
    "schema": {
      "type": "object",
      "properties": {
        "fields": {
          "type": ["object", "null"],
          "additionalProperties": {
            "oneOf": [
              {"type": "string", "minLength": 1},
              {
                "type": "object",
                "required": ["type"],
                "properties": {
                  "type": {"type": "string", "minLength": 1},
                  "column": {"type": "string", "minLength": 1}
                }
              }
            ]
          }
        }
      }
    }
  }
}`

var documentSchemaLoader = gojsonschema.NewStringLoader(documentSchema)

// CheckDocument validates the shape of a definition file against the
// document JSON schema. It reports every violation found, unlike Build,
// which stops at the first semantic error.
func CheckDocument(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse definition YAML: %w", err)
	}

	result, err := gojsonschema.Validate(documentSchemaLoader, gojsonschema.NewGoLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		msgs = append(msgs, re.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidDefinition, strings.Join(msgs, "; "))
}
