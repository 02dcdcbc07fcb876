package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-json-experiment/json/jsontext"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the fragment with keywords in insertion order.
func (s *Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	var err error
	s.Range(func(k string, v any) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		var kb, vb []byte
		if kb, err = json.Marshal(k); err != nil {
			return false
		}
		if vb, err = json.Marshal(v); err != nil {
			err = fmt.Errorf("jsonschema: encode %q: %w", k, err)
			return false
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping key order. Nested objects
// become *Schema values and arrays become []any.
func (s *Schema) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("jsonschema: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("jsonschema: document must be a JSON object")
	}
	out, err := readObject(dec)
	if err != nil {
		return err
	}
	*s = *out
	return nil
}

// MarshalYAML renders the fragment as an ordered YAML mapping.
func (s *Schema) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	var err error
	s.Range(func(k string, v any) bool {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		val := &yaml.Node{}
		if err = val.Encode(v); err != nil {
			err = fmt.Errorf("jsonschema: encode %q: %w", k, err)
			return false
		}
		node.Content = append(node.Content, key, val)
		return true
	})
	if err != nil {
		return nil, err
	}
	return node, nil
}

// Marshal returns the JSON encoding of s in declaration order.
func Marshal(s *Schema) ([]byte, error) { return json.Marshal(s) }

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(s *Schema, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(s, prefix, indent)
}

// MarshalCanonical returns the RFC 8785 canonical JSON form of s: keys
// sorted, numbers and strings normalized. Useful for golden files and
// cache keys where declaration order must not matter.
func MarshalCanonical(s *Schema) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	v := jsontext.Value(b)
	if err := v.Canonicalize(); err != nil {
		return nil, fmt.Errorf("jsonschema: canonicalize: %w", err)
	}
	return v, nil
}

// ToYAML returns the YAML encoding of s in declaration order.
func ToYAML(s *Schema) ([]byte, error) { return yaml.Marshal(s) }

// Parse decodes a JSON document into an ordered fragment.
func Parse(data []byte) (*Schema, error) {
	s := New()
	if err := s.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return s, nil
}

func readObject(dec *json.Decoder) (*Schema, error) {
	out := New()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, unexpected(err)
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return out, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("jsonschema: expected object key, got %v", tok)
		}
		v, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		out.Set(key, v)
	}
}

func readArray(dec *json.Decoder) ([]any, error) {
	out := []any{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, unexpected(err)
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return out, nil
		}
		v, err := valueOf(dec, tok)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

func readValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, unexpected(err)
	}
	return valueOf(dec, tok)
}

func valueOf(dec *json.Decoder, tok json.Token) (any, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		}
		return nil, fmt.Errorf("jsonschema: unexpected delimiter %q", rune(v))
	case json.Number:
		if i, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return nil, fmt.Errorf("jsonschema: invalid number %q: %w", v, err)
		}
		return f, nil
	default:
		return v, nil
	}
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("jsonschema: %w", io.ErrUnexpectedEOF)
	}
	return fmt.Errorf("jsonschema: %w", err)
}
