package qrcode

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(128, tt.errorCorrectionLevel)
			pngBytes, err := service.EncodePNG("https://shop.example.com/orders/abc")
			require.NoError(t, err)
			assert.NotEmpty(t, pngBytes)
		})
	}
}

func TestQRCodeService_EncodePNGSize(t *testing.T) {
	service := NewQRCodeService(200, "M")

	pngBytes, err := service.EncodePNG("https://shop.example.com/orders/abc")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestQRCodeService_EncodeDataURI(t *testing.T) {
	service := NewQRCodeService(128, "M")

	uri, err := service.EncodeDataURI("o-123")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	_, err = base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	assert.NoError(t, err)
}

func TestQRCodeService_EmptyContent(t *testing.T) {
	service := NewQRCodeService(128, "M")

	_, err := service.EncodePNG("")
	assert.Error(t, err)
}

func TestNew_UsesInvoiceSize(t *testing.T) {
	svc := New(&config.Config{Invoice: &config.InvoiceConfig{QRSize: 120}})
	pngBytes, err := svc.EncodePNG("https://shop.example.com/orders/abc")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())

	svc = New(&config.Config{})
	pngBytes, err = svc.EncodePNG("x")
	require.NoError(t, err)
	img, err = png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, defaultSize, img.Bounds().Dx())
}
