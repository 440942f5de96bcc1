package service

// PickupCodeService defines the interface for order pickup QR codes
type PickupCodeService interface {
	// GeneratePickupQR renders a PNG QR code identifying an order
	GeneratePickupQR(orderID string) ([]byte, error)

	// ParsePickupQR extracts the order ID from scanned QR code data
	ParsePickupQR(qrData string) (string, error)
}
