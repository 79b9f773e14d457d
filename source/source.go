// Package source decodes notation documents written in JSON, YAML or TOML
// into plain Go values (map[string]any, []any and scalars) that notation
// parsers accept.
//
// Numbers come back as json.Number in every format so that a version such
// as 1.0 is not turned into 1 when read back with notation.GetString. JSON and
// YAML keep the number text exactly as written. TOML does not expose it: its
// integers are printed in decimal and its floats in the shortest form that
// still has a decimal point, so 1.0 stays 1.0 but 1.50 becomes 1.5 and 0x1F
// becomes 31. Quote TOML values whose exact text matters.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format names a document syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for formats and file extensions without a decoder.
var ErrUnknownFormat = errors.New("source: unknown format")

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Decode decodes data in the given format.
func Decode(format Format, data []byte) (any, error) {
	switch format {
	case FormatJSON:
		return JSON(data)
	case FormatYAML:
		return YAML(data)
	case FormatTOML:
		return TOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// ReadFile reads and decodes the file at path, choosing the decoder by extension.
func ReadFile(path string) (any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("source: decode %s: %w", path, err)
	}
	return v, nil
}

// JSON decodes a single JSON value. Trailing values are rejected.
func JSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errors.New("source: unexpected data after the first JSON value")
	}
	return v, nil
}

// YAML decodes a YAML stream. A single document is returned as is; several
// documents are returned as a []any in stream order. Maps are normalised to
// map[string]any and numbers keep their text as json.Number.
func YAML(data []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []any
	for {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		v, err := yamlValue(&node)
		if err != nil {
			return nil, err
		}
		docs = append(docs, v)
	}
	switch len(docs) {
	case 0:
		return nil, nil
	case 1:
		return docs[0], nil
	default:
		return docs, nil
	}
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.SequenceNode:
		arr := make([]any, len(n.Content))
		for i, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			arr[i] = v
		}
		return arr, nil
	case yaml.MappingNode:
		return yamlMapping(n)
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!int", "!!float":
			return json.Number(n.Value), nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("source: unexpected YAML node kind %d at line %d", n.Kind, n.Line)
	}
}

// yamlMapping builds a map from key/value node pairs. Entries merged with
// "<<" never override keys written in the mapping itself.
func yamlMapping(n *yaml.Node) (map[string]any, error) {
	out := make(map[string]any, len(n.Content)/2)
	var merged []map[string]any
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, vn := n.Content[i], n.Content[i+1]
		if k.ShortTag() == "!!merge" {
			v, err := yamlValue(vn)
			if err != nil {
				return nil, err
			}
			switch t := v.(type) {
			case map[string]any:
				merged = append(merged, t)
			case []any:
				for _, e := range t {
					if m, ok := e.(map[string]any); ok {
						merged = append(merged, m)
					}
				}
			}
			continue
		}
		key, err := yamlValue(k)
		if err != nil {
			return nil, err
		}
		v, err := yamlValue(vn)
		if err != nil {
			return nil, err
		}
		out[fmt.Sprint(key)] = v
	}
	for _, m := range merged {
		for k, v := range m {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}
	return out, nil
}

// TOML decodes a TOML document. The root is always a table.
func TOML(data []byte) (any, error) {
	var m map[string]any
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, err
	}
	return tomlValue(m), nil
}

// tomlNumber renders a decoded TOML float as json.Number, keeping a decimal
// point on integral values.
func tomlNumber(f float64) json.Number {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		s = strconv.FormatFloat(f, 'g', -1, 64)
	} else if !strings.Contains(s, ".") {
		s += ".0"
	}
	return json.Number(s)
}

// Notations splits a decoded document into individual notations: a list
// yields its elements, a table whose only key is "notations" yields that
// list, and anything else is a single notation.
func Notations(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	case map[string]any:
		if len(t) == 1 {
			if list, ok := t["notations"].([]any); ok {
				return list
			}
		}
	}
	return []any{v}
}

// tomlValue turns []map[string]any (arrays of tables) into []any and
// numbers into json.Number, recursively.
func tomlValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = tomlValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = tomlValue(t[i])
		}
		return arr
	case []map[string]any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = tomlValue(t[i])
		}
		return arr
	case int64:
		return json.Number(strconv.FormatInt(t, 10))
	case float64:
		return tomlNumber(t)
	default:
		return v
	}
}
