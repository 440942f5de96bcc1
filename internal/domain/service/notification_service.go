package service

import (
	"context"
	"strings"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendToTopic sends a push notification to every device subscribed to topic
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}

// UserTopic returns the messaging topic a user's devices subscribe to. Characters
// outside the topic alphabet [a-zA-Z0-9-_.~] are replaced with '_'.
func UserTopic(userKey string) string {
	return "user-" + strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.' || r == '~':
			return r
		default:
			return '_'
		}
	}, userKey)
}
