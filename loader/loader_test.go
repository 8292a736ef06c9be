package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/delaneyj/deptrack/loader"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var person = map[string]any{
	"person": map[string]any{
		"name":      "Tom",
		"age":       20,
		"height":    1.8,
		"interests": []any{"go", "chess"},
	},
	"message": "hi",
}

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		format loader.Format
		doc    string
	}{
		{loader.FormatJSON, `{"person": {"name": "Tom", "age": 20, "height": 1.8, "interests": ["go", "chess"]}, "message": "hi"}`},
		{loader.FormatYAML, `
person:
  name: Tom
  age: 20
  height: 1.8
  interests: [go, chess]
message: hi
`},
		{loader.FormatHCL, `
person = {
  name      = "Tom"
  age       = 20
  height    = 1.8
  interests = ["go", "chess"]
}
message = "hi"
`},
	} {
		t.Run(tc.format.String(), func(t *testing.T) {
			got, err := loader.Decode([]byte(tc.doc), tc.format, "doc")
			require.NoError(t, err)
			if diff := cmp.Diff(person, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeNonStringKeys(t *testing.T) {
	got, err := loader.Decode([]byte("codes:\n  1: one\n  true: yes\n"), loader.FormatYAML, "doc")
	require.NoError(t, err)
	want := map[string]any{"codes": map[string]any{"1": "one", "true": "yes"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := loader.Decode([]byte("- a\n- b\n"), loader.FormatYAML, "list.yaml")
	assert.ErrorIs(t, err, loader.ErrNotMapping)

	_, err = loader.Decode([]byte("a: [\n"), loader.FormatYAML, "broken.yaml")
	assert.Error(t, err)

	_, err = loader.Decode([]byte("block {\n  a = 1\n}\n"), loader.FormatHCL, "block.hcl")
	assert.Error(t, err)

	_, err = loader.Decode(nil, loader.FormatUnknown, "x")
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)

	got, err := loader.Decode(nil, loader.FormatYAML, "empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.yml")
	require.NoError(t, os.WriteFile(path, []byte("a:\n  b: 1\n"), 0o644))

	got, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": 1}}, got)

	_, err = loader.Load(filepath.Join(dir, "data.toml"))
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)

	_, err = loader.Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, loader.FormatJSON, loader.FormatFromPath("a/b.JSON"))
	assert.Equal(t, loader.FormatYAML, loader.FormatFromPath("b.yaml"))
	assert.Equal(t, loader.FormatHCL, loader.FormatFromPath("b.hcl"))
	assert.Equal(t, loader.FormatUnknown, loader.FormatFromPath("b"))
}

func TestParseValue(t *testing.T) {
	for in, want := range map[string]any{
		"Jerry":  "Jerry",
		"20":     20,
		"1.5":    1.5,
		"true":   true,
		"null":   nil,
		"":       "",
		"{a: 1}": map[string]any{"a": 1},
		"[1, x]": []any{1, "x"},
	} {
		got, err := loader.ParseValue(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := loader.ParseValue("{a: ")
	assert.Error(t, err)
}
