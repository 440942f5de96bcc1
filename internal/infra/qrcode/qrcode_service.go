package qrcode

import (
	"encoding/json"

	"canteen/config"
	"canteen/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	pickupType      = "pickup"
	defaultSize     = 256
	defaultRecovery = "M"
)

type pickupCodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PickupData is the payload encoded in a pickup QR code.
type PickupData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewPickupCodeService creates a pickup QR code service instance
func NewPickupCodeService(size int, errorCorrectionLevel string) service.PickupCodeService {
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

	if size <= 0 {
		size = defaultSize
	}

	return &pickupCodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewFromConfig creates the service from the qrcode section, using defaults when absent.
func NewFromConfig(cfg *config.Config) service.PickupCodeService {
	if cfg.QRCode == nil {
		return NewPickupCodeService(defaultSize, defaultRecovery)
	}

	return NewPickupCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GeneratePickupQR renders a PNG QR code identifying an order
func (s *pickupCodeService) GeneratePickupQR(orderID string) ([]byte, error) {
	if orderID == "" {
		return nil, errors.New("order ID is required")
	}

	jsonData, err := json.Marshal(PickupData{OrderID: orderID, Type: pickupType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePickupQR extracts the order ID from scanned QR code data
func (s *pickupCodeService) ParsePickupQR(qrData string) (string, error) {
	var data PickupData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != pickupType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.OrderID == "" {
		return "", errors.New("QR code carries no order ID")
	}

	return data.OrderID, nil
}
