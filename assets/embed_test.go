package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShaderSource(t *testing.T) {
	for _, name := range []string{"outline.kage", "shaders/outline.kage", "assets/shaders/outline.kage", "/opt/x/assets/shaders/outline.kage"} {
		src, err := LoadShaderSource(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(src), "func Fragment")
	}

	_, err := LoadShaderSource("missing.kage")
	assert.Error(t, err)
}

func TestLoadImage(t *testing.T) {
	for _, name := range []string{"images/tile.png", "assets/images/tile.png"} {
		img, err := LoadImage(name)
		require.NoError(t, err, name)
		assert.Equal(t, 32, img.Bounds().Dx())
		assert.Equal(t, 32, img.Bounds().Dy())

		_, _, _, a := img.At(0, 0).RGBA()
		assert.Zero(t, a, "border is transparent")
		_, _, _, a = img.At(4, 4).RGBA()
		assert.NotZero(t, a)
	}

	_, err := LoadImage("images/missing.png")
	assert.Error(t, err)
	_, err = LoadImage("shaders/outline.kage")
	assert.Error(t, err)
}
