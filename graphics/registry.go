package graphics

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/milk9111/gfxbind/assets"
	"github.com/milk9111/gfxbind/logging"
)

var (
	texturesMu sync.Mutex
	textures   = map[string]*Texture{}
)

// RegisterTexture stores a texture by key.
func RegisterTexture(key string, tex *Texture) {
	if key == "" || tex == nil {
		return
	}
	texturesMu.Lock()
	textures[key] = tex
	texturesMu.Unlock()
}

// GetTexture returns a cached texture by key.
func GetTexture(key string) *Texture {
	if key == "" {
		return nil
	}
	texturesMu.Lock()
	defer texturesMu.Unlock()
	tex := textures[key]
	if tex.IsDisposed() {
		return nil
	}
	return tex
}

// ForgetTexture drops key from the cache and disposes its texture.
func ForgetTexture(key string) {
	texturesMu.Lock()
	tex := textures[key]
	delete(textures, key)
	texturesMu.Unlock()
	tex.Dispose()
}

// LoadTexture loads an image from the embedded assets or the filesystem and
// caches it by key.
func LoadTexture(key string) (*Texture, error) {
	if key == "" {
		return nil, fmt.Errorf("graphics: empty texture key")
	}
	if tex := GetTexture(key); tex != nil {
		return tex, nil
	}
	img, err := loadImageFromAssetsOrFS(key)
	if err != nil {
		return nil, err
	}
	tex, err := NewTextureFromImage(img)
	if err != nil {
		return nil, err
	}
	RegisterTexture(key, tex)
	logging.With("texture").Debug("loaded", "key", key, "size", tex.Size())
	return tex, nil
}

func loadImageFromAssetsOrFS(path string) (image.Image, error) {
	if img, err := assets.LoadImage(path); err == nil {
		return img, nil
	}
	tried := []string{path, filepath.Join("assets", path), filepath.Base(path)}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			if im, _, err := image.Decode(bytes.NewReader(b)); err == nil {
				return im, nil
			}
		}
	}
	return nil, fmt.Errorf("graphics: load texture %s: not found", path)
}
