package service

// QRCodeService renders QR codes for printed documents.
type QRCodeService interface {
	// EncodePNG renders content as a PNG QR code.
	EncodePNG(content string) ([]byte, error)

	// EncodeDataURI renders content as a base64 PNG data URI for inline HTML.
	EncodeDataURI(content string) (string, error)
}
