package oaskema_test

import (
	stdjson "encoding/json"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	js "github.com/reoring/oaskema/jsonschema"
)

// normalize marshals v to JSON and unmarshals back into interface{} to remove ordering effects.
func normalize(t *testing.T, v any) any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var out any
	require.NoError(t, stdjson.Unmarshal(b, &out))
	return out
}

// requireSchema compares got with want after JSON normalization.
func requireSchema(t *testing.T, want any, got *js.Schema) {
	t.Helper()
	require.Equal(t, normalize(t, want), normalize(t, got))
}

type obj = map[string]any

type list = []any
