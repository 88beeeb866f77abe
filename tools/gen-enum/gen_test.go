package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKebab(t *testing.T) {
	testCases := []struct {
		name string
		want string
	}{
		{"SupportsAdd", "supports-add"},
		{"KnownOrder", "known-order"},
		{"AllowsNilValues", "allows-nil-values"},
		{"HTTPServer", "http-server"},
		{"READ_ONLY", "read-only"},
		{"Red", "red"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, kebab(tc.name))
		})
	}
}

func TestRender(t *testing.T) {
	src, err := render(templateData{
		Args:        []string{"-type", "Color"},
		PackageName: "paint",
		Type:        "Color",
		SetImport:   defaultSetImport,
		GenerateSet: true,
		Values: []Value{
			{Name: "red", OriginalName: "Red", Value: 0},
			{Name: "dark-blue", OriginalName: "DarkBlue", Value: 1},
		},
	})
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, `// Code generated by "gen-enum -type Color"; DO NOT EDIT.`)
	assert.Contains(t, out, "package paint")
	assert.Contains(t, out, `"github.com/rdeusser/sets/set"`)
	assert.Contains(t, out, "_ = x[DarkBlue-1]")
	assert.Contains(t, out, `"dark-blue": DarkBlue,`)
	assert.Contains(t, out, "func ParseColor(s string) (Color, error) {")
	assert.Contains(t, out, "func ColorList() []Color {")
	assert.Contains(t, out, "func NewColorSet(items ...Color) *set.EnumSet[Color] {")
}

func TestRenderWithoutSet(t *testing.T) {
	src, err := render(templateData{
		PackageName: "paint",
		Type:        "Color",
		Values:      []Value{{Name: "red", OriginalName: "Red"}},
	})
	require.NoError(t, err)

	out := string(src)
	assert.NotContains(t, out, "rdeusser/sets/set")
	assert.NotContains(t, out, "NewColorSet")
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/paint\n\ngo 1.23\n")
	writeFile(t, filepath.Join(dir, "color.go"), `package paint

type Color uint8

const (
	Red Color = iota
	DarkBlue
	_
	Green // name="lime"
)
`)

	src, err := NewGenerator(GeneratorOptions{
		Args:   []string{"-type", "Color"},
		Output: dir,
		Type:   "Color",
		NoSet:  true,
	}).Run()
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, `Red:      "red",`)
	assert.Contains(t, out, `DarkBlue: "dark-blue",`)
	assert.Contains(t, out, `Green:    "lime",`)
	assert.Contains(t, out, "_ = x[Green-3]")

	written, err := os.ReadFile(filepath.Join(dir, "color_enum.go"))
	require.NoError(t, err)
	assert.Equal(t, src, written)
}

func TestRunWithoutConstants(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/paint\n\ngo 1.23\n")
	writeFile(t, filepath.Join(dir, "color.go"), "package paint\n\ntype Color int\n")

	_, err := NewGenerator(GeneratorOptions{Output: dir, Type: "Color"}).Run()
	assert.EqualError(t, err, `no constants of type "Color" found`)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
