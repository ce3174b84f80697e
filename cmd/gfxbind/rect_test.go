package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagFloat = false
	flagConfig = ""
	flagResult = "regions"

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRectCommands(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"contains_lower_bound", []string{"rect", "contains", "0", "0", "10", "10", "0", "0"}, "true\n"},
		{"contains_upper_bound", []string{"rect", "contains", "0", "0", "10", "10", "10", "0"}, "false\n"},
		{"contains_negative", []string{"rect", "contains", "10", "10", "-5", "-5", "5", "5"}, "true\n"},
		{"contains_float", []string{"rect", "contains", "--float", "0", "0", "1.5", "1.5", "1.25", "0"}, "true\n"},
		{"intersect", []string{"rect", "intersect", "0", "0", "10", "10", "5", "5", "10", "10"}, "(5, 5, 5, 5)\n"},
		{"intersect_none", []string{"rect", "intersect", "0", "0", "10", "10", "20", "20", "5", "5"}, "(0, 0, 0, 0) (no overlap)\n"},
		{"convert_widen", []string{"rect", "convert", "1", "2", "3", "4"}, "(1, 2, 3, 4)\n"},
		{"convert_truncate", []string{"rect", "convert", "--float", "1.9", "-1.9", "2.5", "0.5"}, "(1, -1, 2, 0)\n"},
		{"encode", []string{"rect", "encode", "1", "-2", "3", "4"}, "01000000feffffff0300000004000000\n"},
		{"intersect_negative_extent", []string{"rect", "intersect", "10", "10", "-5", "-5", "0", "0", "7", "7"}, "(5, 5, 2, 2)\n"},
		{"intersect_leading_negative", []string{"rect", "intersect", "--", "-5", "-5", "10", "10", "0", "0", "10", "10"}, "(0, 0, 5, 5)\n"},
		{"encode_float_negative", []string{"rect", "encode", "--float", "0.5", "-1", "0", "0"}, "0000003f000080bf0000000000000000\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := execute(t, c.args...)
			require.NoError(t, err)
			assert.Equal(t, c.want, out)
		})
	}
}

func TestRectCommandErrors(t *testing.T) {
	_, err := execute(t, "rect", "contains", "0", "0", "10", "10", "1.5", "0")
	assert.Error(t, err)

	_, err = execute(t, "rect", "intersect", "0", "0", "10")
	assert.Error(t, err)

	_, err = execute(t, "--log-level", "loud", "rect", "convert", "1", "2", "3", "4")
	assert.Error(t, err)
}

func TestScriptCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.tengo")
	src := `geom := import("geom")
out := {overlap: geom.intersects(regions.a, regions.b)}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	out, err := execute(t, "script", "--result", "out", path)
	require.NoError(t, err)
	assert.Equal(t, "overlap: [140, 100, 60, 60]", strings.TrimSpace(out))
}
