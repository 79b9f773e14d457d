package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/notation/source"
)

func TestJSON_KeepsNumberText(t *testing.T) {
	v, err := source.JSON([]byte(`{"group":"org.gradle","name":"gradle-core","version":1.0}`))
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("1.0"), m["version"])
}

func TestJSON_RejectsTrailingValues(t *testing.T) {
	_, err := source.JSON([]byte(`{"a":1} {"b":2}`))
	require.Error(t, err)
}

func TestYAML_NestedMapsAreStringKeyed(t *testing.T) {
	v, err := source.YAML([]byte("source:\n  path: /out/app.zip\n1: one\n"))
	require.NoError(t, err)

	want := map[string]any{
		"source": map[string]any{"path": "/out/app.zip"},
		"1":      "one",
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestYAML_NumbersKeepTheirText(t *testing.T) {
	v, err := source.YAML([]byte("version: 1.0\nminor: 1.10\nbuild: 42\nflag: true\nname: core\nnothing: null\n"))
	require.NoError(t, err)

	want := map[string]any{
		"version": json.Number("1.0"),
		"minor":   json.Number("1.10"),
		"build":   json.Number("42"),
		"flag":    true,
		"name":    "core",
		"nothing": nil,
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestYAML_AliasesAndMergeKeys(t *testing.T) {
	doc := `
base: &base
  group: org.gradle
  version: 1.0
dep:
  <<: *base
  name: gradle-core
  version: 2.0
`
	v, err := source.YAML([]byte(doc))
	require.NoError(t, err)

	dep := v.(map[string]any)["dep"]
	want := map[string]any{
		"group":   "org.gradle",
		"name":    "gradle-core",
		"version": json.Number("2.0"),
	}
	if diff := cmp.Diff(want, dep); diff != "" {
		t.Fatalf("merged mismatch (-want +got):\n%s", diff)
	}
}

func TestTOML_NumbersAsCanonicalText(t *testing.T) {
	v, err := source.TOML([]byte("version = 1.0\nminor = 1.50\ncount = 0x1F\nexp = 1e3\n"))
	require.NoError(t, err)

	want := map[string]any{
		"version": json.Number("1.0"),
		"minor":   json.Number("1.5"),
		"count":   json.Number("31"),
		"exp":     json.Number("1000.0"),
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestYAML_MultipleDocuments(t *testing.T) {
	v, err := source.YAML([]byte("name: a\n---\nname: b\n"))
	require.NoError(t, err)

	want := []any{map[string]any{"name": "a"}, map[string]any{"name": "b"}}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestTOML_ArrayOfTables(t *testing.T) {
	doc := `
[[notations]]
group = "org.gradle"
name = "gradle-core"

[[notations]]
name = "missing-group"
`
	v, err := source.TOML([]byte(doc))
	require.NoError(t, err)

	ns := source.Notations(v)
	require.Len(t, ns, 2)
	assert.Equal(t, map[string]any{"group": "org.gradle", "name": "gradle-core"}, ns[0])
	assert.Equal(t, map[string]any{"name": "missing-group"}, ns[1])
}

func TestNotations(t *testing.T) {
	assert.Nil(t, source.Notations(nil))
	assert.Equal(t, []any{"a", "b"}, source.Notations([]any{"a", "b"}))
	assert.Equal(t, []any{"report.zip"}, source.Notations("report.zip"))

	single := map[string]any{"notations": "not a list"}
	assert.Equal(t, []any{single}, source.Notations(single))
}

func TestReadFile_PicksDecoderByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deps.yml")
	require.NoError(t, os.WriteFile(path, []byte("- group: g\n  name: n\n"), 0o600))

	v, err := source.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"group": "g", "name": "n"}}, v)
}

func TestReadFile_UnknownExtension(t *testing.T) {
	_, err := source.ReadFile(filepath.Join(t.TempDir(), "deps.ini"))
	require.ErrorIs(t, err, source.ErrUnknownFormat)
}
