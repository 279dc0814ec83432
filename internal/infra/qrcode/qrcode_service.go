// Package qrcode renders share codes for public channel pages.
package qrcode

import (
	"fmt"
	"strings"

	"clipstream/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type shareCodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewShareCodeService creates a new share code service instance.
func NewShareCodeService(baseURL string, size int, errorCorrectionLevel string) service.ShareCodeService {
	if size <= 0 {
		size = 256
	}

	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &shareCodeService{
		baseURL:              strings.TrimSuffix(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// ChannelShareQR renders a PNG QR code pointing at the channel page.
func (s *shareCodeService) ChannelShareQR(username string) ([]byte, error) {
	target := s.baseURL + "/c/" + username

	qrCode, err := qrcode.New(target, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
