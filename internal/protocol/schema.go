package protocol

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const obsSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "WorldObservation",
  "type": "object",
  "required": ["position", "energy", "neighbors"],
  "properties": {
    "tick": {"type": "integer", "minimum": 0},
    "agent_id": {"type": "string"},
    "energy": {"type": "integer", "minimum": 0},
    "neighbors": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["energy"],
        "properties": {
          "energy": {"type": "integer"},
          "agent_id": {"type": "string"}
        }
      }
    },
    "generation": {"type": "integer", "minimum": 0},
    "timeout_ms": {"type": "integer", "minimum": 0}
  }
}`

var obsSchema = jsonschema.MustCompileString("observation.schema.json", obsSchemaJSON)
