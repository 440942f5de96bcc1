package notification

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"canteen/config"
	firebaseapp "canteen/internal/infra/firebase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FallsBackToLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := &config.Config{}

	svc, err := New(Params{
		Ctx:      context.Background(),
		Config:   cfg,
		Logger:   logger,
		Firebase: firebaseapp.NewAppProvider(context.Background(), cfg),
	})
	require.NoError(t, err)

	require.NoError(t, svc.SendToTopic(context.Background(), "user-E1", "Order ready", "Thali is ready", map[string]string{"order_id": "o1"}))
	assert.Contains(t, buf.String(), "topic=user-E1")
	assert.Contains(t, buf.String(), "Order ready")
}
