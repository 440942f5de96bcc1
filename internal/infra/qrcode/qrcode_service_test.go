package qrcode

import (
	"encoding/json"
	"testing"

	"canteen/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickupPayload(t *testing.T, data PickupData) string {
	t.Helper()

	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	return string(jsonData)
}

func TestNewPickupCodeService(t *testing.T) {
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
			service := NewPickupCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	svc := NewFromConfig(&config.Config{})
	assert.Equal(t, defaultSize, svc.(*pickupCodeService).size)

	svc = NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}})
	assert.Equal(t, 128, svc.(*pickupCodeService).size)
}

func TestPickupCodeService_GeneratePickupQR(t *testing.T) {
	service := NewPickupCodeService(256, "M")

	qrBytes, err := service.GeneratePickupQR("order-123")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestPickupCodeService_GeneratePickupQR_EmptyID(t *testing.T) {
	service := NewPickupCodeService(256, "M")

	_, err := service.GeneratePickupQR("")
	assert.Error(t, err)
}

func TestPickupCodeService_ParsePickupQR(t *testing.T) {
	service := NewPickupCodeService(256, "M")

	orderID, err := service.ParsePickupQR(pickupPayload(t, PickupData{OrderID: "order-123", Type: "pickup"}))
	require.NoError(t, err)
	assert.Equal(t, "order-123", orderID)
}

func TestPickupCodeService_ParsePickupQR_Invalid(t *testing.T) {
	service := NewPickupCodeService(256, "M")

	tests := []struct {
		name    string
		payload string
		errMsg  string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"wrong type", pickupPayload(t, PickupData{OrderID: "order-123", Type: "subscription"}), "invalid QR code type"},
		{"missing order", pickupPayload(t, PickupData{Type: "pickup"}), "no order ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParsePickupQR(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
