package store

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Structured keys carry a JSON-schema guard: a persisted payload failing its
// schema is treated exactly like a corrupt value and replaced with the
// caller's default. Preference keys (scalars) skip the guard, their decode
// failure already falls back.
var guardSources = map[string]string{
	KeyPosts: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["slug", "title", "body"],
			"properties": {
				"slug":    {"type": "string", "minLength": 1},
				"title":   {"type": "string"},
				"author":  {"type": "string"},
				"date":    {"type": "string"},
				"hero":    {"type": "string"},
				"tags":    {"type": ["array", "null"], "items": {"type": "string"}},
				"minutes": {"type": "integer", "minimum": 0},
				"body":    {"type": "string"}
			}
		}
	}`,
	KeySubmissions: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "name", "email", "title", "body", "status"],
			"properties": {
				"id":     {"type": "integer"},
				"name":   {"type": "string", "minLength": 1},
				"email":  {"type": "string", "minLength": 1},
				"title":  {"type": "string", "minLength": 1},
				"body":   {"type": "string", "minLength": 1},
				"status": {"type": "string", "enum": ["pending"]},
				"agree":  {"type": "boolean"}
			}
		}
	}`,
	commentKeyPrefix: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "name", "text"],
			"properties": {
				"id":   {"type": "integer"},
				"name": {"type": "string", "minLength": 1},
				"text": {"type": "string", "minLength": 1},
				"date": {"type": "string"}
			}
		}
	}`,
}

var guards = compileGuards()

func compileGuards() map[string]*jsonschema.Schema {
	compiled := make(map[string]*jsonschema.Schema, len(guardSources))
	for key, source := range guardSources {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("guard.json", bytes.NewReader([]byte(source))); err != nil {
			panic("store: invalid guard schema for " + key + ": " + err.Error())
		}
		schema, err := compiler.Compile("guard.json")
		if err != nil {
			panic("store: invalid guard schema for " + key + ": " + err.Error())
		}
		compiled[key] = schema
	}
	return compiled
}

// guardFor resolves the schema guarding a key, if any. Comment threads share
// one guard through their key prefix.
func guardFor(key string) *jsonschema.Schema {
	if schema, ok := guards[key]; ok {
		return schema
	}
	if strings.HasPrefix(key, commentKeyPrefix) {
		return guards[commentKeyPrefix]
	}
	return nil
}

// validPayload reports whether raw is well-formed JSON that satisfies the
// guard registered for key. Keys without a guard only need to decode.
func validPayload(key string, raw []byte) bool {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return false
	}
	schema := guardFor(key)
	if schema == nil {
		return true
	}
	return schema.Validate(decoded) == nil
}
