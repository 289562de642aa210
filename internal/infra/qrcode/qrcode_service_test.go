package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47}

func TestGeneratePNG(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "M")

	png, err := svc.GeneratePNG("https://waste.example.com/subscribe")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestGeneratePNG_EmptyContent(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "M")

	_, err := svc.GeneratePNG("")
	require.Error(t, err)
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	t.Parallel()

	// Unknown correction level and non-positive size fall back to defaults.
	svc := NewQRCodeService(0, "X")

	png, err := svc.GeneratePNG("fallback")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
