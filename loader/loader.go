// Package loader decodes documents into plain map[string]any trees ready for
// observe.MakeReactive.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
	FormatHCL
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatHCL:
		return "hcl"
	default:
		return "unknown"
	}
}

var (
	ErrUnknownFormat = errors.New("unknown document format")
	ErrNotMapping    = errors.New("document root is not a mapping")
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".hcl":
		return FormatHCL
	default:
		return FormatUnknown
	}
}

func Load(path string) (map[string]any, error) {
	f := FormatFromPath(path)
	if f == FormatUnknown {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return Decode(data, f, path)
}

// Decode parses data as f. name is only used in error messages.
func Decode(data []byte, f Format, name string) (map[string]any, error) {
	switch f {
	case FormatJSON, FormatYAML:
		// JSON documents are valid YAML
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding %s %s: %w", f, name, err)
		}
		if v == nil {
			return map[string]any{}, nil
		}
		m, ok := normalize(v).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, ErrNotMapping)
		}
		return m, nil
	case FormatHCL:
		return decodeHCL(data, name)
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownFormat)
	}
}

// ParseValue reads a command-line value as a YAML scalar or flow collection:
// "20" is an int, "true" a bool, "{a: 1}" a mapping, anything else a string.
func ParseValue(s string) (any, error) {
	if s == "" {
		return "", nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("parsing value %q: %w", s, err)
	}
	return normalize(v), nil
}

// normalize turns the map[any]any values yaml produces for non-string keys
// into map[string]any.
func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, val := range v {
			v[k] = normalize(val)
		}
		return v
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = normalize(val)
		}
		return m
	case []any:
		for i, val := range v {
			v[i] = normalize(val)
		}
		return v
	default:
		return v
	}
}
