package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShareCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewShareCodeService("http://localhost:3000", tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestShareCodeService_ChannelShareQR(t *testing.T) {
	service := NewShareCodeService("http://localhost:3000", 256, "M")

	qrBytes, err := service.ChannelShareQR("maya")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestShareCodeService_ChannelShareQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewShareCodeService("https://clipstream.example", tt.size, "M")

			qrBytes, err := service.ChannelShareQR("maya")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestShareCodeService_TrimsTrailingSlash(t *testing.T) {
	withSlash := NewShareCodeService("https://clipstream.example/", 128, "M")
	withoutSlash := NewShareCodeService("https://clipstream.example", 128, "M")

	a, err := withSlash.ChannelShareQR("maya")
	require.NoError(t, err)
	b, err := withoutSlash.ChannelShareQR("maya")
	require.NoError(t, err)

	// Same target URL encodes to the same code.
	assert.Equal(t, a, b)
}
