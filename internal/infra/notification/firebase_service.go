// Package notification sends push alerts through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"jelpi/config"
	"jelpi/internal/domain/service"
	"jelpi/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
}

// Params holds dependencies for the notification service, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService returns the Firebase service, or a no-op one when
// Firebase is not configured.
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, scan alerts are disabled")

		return NewNoopService(params.Logger), nil
	}

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath, params.Logger)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// SendToTopic sends a push notification to every app instance subscribed to topic
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	s.logger.DebugContext(ctx, "Topic notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			s.logger.WarnContext(ctx, "Dropping notification for invalid token", slog.Any("error", err))

			return nil
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

type noopService struct {
	logger *slog.Logger
}

// NewNoopService returns a notification service that only logs.
func NewNoopService(logger *slog.Logger) service.NotificationService {
	return &noopService{logger: logger}
}

func (s *noopService) SendToTopic(ctx context.Context, topic, title, _ string, _ map[string]string) error {
	s.logger.DebugContext(ctx, "Notifications disabled, skipping",
		slog.String("topic", topic),
		slog.String("title", title),
	)

	return nil
}

func (s *noopService) SendSingleNotification(ctx context.Context, _, title, _ string, _ map[string]string) error {
	s.logger.DebugContext(ctx, "Notifications disabled, skipping", slog.String("title", title))

	return nil
}
