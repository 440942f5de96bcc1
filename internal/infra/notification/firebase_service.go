package notification

import (
	"context"
	"log/slog"

	"canteen/config"
	"canteen/internal/domain/service"
	firebaseapp "canteen/internal/infra/firebase"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a Firebase Cloud Messaging notification service.
func NewFirebaseService(ctx context.Context, apps *firebaseapp.AppProvider) (service.NotificationService, error) {
	app, err := apps.App()
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendToTopic sends a push notification to every device subscribed to topic.
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	return nil
}

// logService writes notifications to the log instead of sending them.
type logService struct {
	logger *slog.Logger
}

// NewLogService creates a notification service for environments without FCM.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

// SendToTopic logs the notification.
func (s *logService) SendToTopic(_ context.Context, topic, title, body string, data map[string]string) error {
	s.logger.Info("[LogNotification] Notification",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}

// Params holds dependencies for the notification service, injected by Fx.
type Params struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebaseapp.AppProvider
}

// New sends through FCM when a Firebase project is configured and logs otherwise.
func New(params Params) (service.NotificationService, error) {
	fb := params.Config.Firebase
	if fb == nil || (fb.ProjectID == "" && fb.CredentialsPath == "") {
		params.Logger.Info("Firebase not configured, logging notifications")

		return NewLogService(params.Logger), nil
	}

	params.Logger.Info("Using Firebase Cloud Messaging", slog.String("project_id", fb.ProjectID))

	return NewFirebaseService(params.Ctx, params.Firebase)
}
