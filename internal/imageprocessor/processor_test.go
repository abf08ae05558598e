package imageprocessor_test

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novanest_backend/internal/imageprocessor"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestProcessImage_DownscalesToBounds(t *testing.T) {
	p := imageprocessor.NewProcessor(85)

	out, err := p.ProcessImage(encodePNG(t, 2000, 1000), imageprocessor.SizeLogo)
	require.NoError(t, err)

	decoded, format, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "png", format, "output keeps the source format")
	assert.LessOrEqual(t, decoded.Bounds().Dx(), imageprocessor.SizeLogo.Width)
	assert.LessOrEqual(t, decoded.Bounds().Dy(), imageprocessor.SizeLogo.Height)
}

func TestProcessImage_SmallImageKeepsDimensions(t *testing.T) {
	p := imageprocessor.NewProcessor(85)

	out, err := p.ProcessImage(encodePNG(t, 100, 50), imageprocessor.SizeLogo)
	require.NoError(t, err)

	decoded, _, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 50, decoded.Bounds().Dy())
}

func TestProcessImage_RejectsNonImage(t *testing.T) {
	p := imageprocessor.NewProcessor(85)

	_, err := p.ProcessImage(strings.NewReader("definitely not pixels"), imageprocessor.SizeThumbnail)
	assert.Error(t, err)
}

func TestIsValidImage(t *testing.T) {
	assert.True(t, imageprocessor.IsValidImage(encodePNG(t, 10, 10)))
	assert.False(t, imageprocessor.IsValidImage(strings.NewReader("nope")))
}
