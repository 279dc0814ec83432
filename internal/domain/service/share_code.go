package service

// ShareCodeService generates scannable share codes for public pages.
type ShareCodeService interface {
	// ChannelShareQR renders a PNG QR code pointing at the channel page.
	ChannelShareQR(username string) ([]byte, error)
}
