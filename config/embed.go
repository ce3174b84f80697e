package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var configFS embed.FS

// DefaultName is the embedded configuration used when no file is given.
const DefaultName = "gfxbind.yaml"

// Read returns the named file from disk, falling back to the embedded copy.
func Read(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	return configFS.ReadFile(cleanConfigPath(name))
}

func cleanConfigPath(path string) string {
	if path == "" {
		return DefaultName
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "config/"); ok {
		return after
	}
	return filepath.Base(s)
}
