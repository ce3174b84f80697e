// Package assets embeds the Kage shader sources and images shipped with
// gfxbind.
package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"
)

//go:embed shaders/*.kage images/*.png
var assetsFS embed.FS

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// LoadShaderSource loads an embedded Kage source by file name, e.g.
// "outline.kage".
func LoadShaderSource(name string) ([]byte, error) {
	clean := cleanAssetPath(name)
	if !strings.HasPrefix(clean, "shaders/") {
		clean = "shaders/" + clean
	}
	return assetsFS.ReadFile(clean)
}

// LoadImage decodes an embedded image by assets-relative path.
func LoadImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return img, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
